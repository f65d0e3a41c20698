package taxonomy

import (
	"reflect"
	"testing"
)

func TestInferDomainsThreshold(t *testing.T) {
	// Six of the seven fullstack characteristic skills; frontend and backend
	// also clear the threshold through overlap.
	skills := []string{"react", "nodejs", "javascript", "express", "mongodb", "postgresql"}

	got := InferDomains(skills)

	if !contains(got, "fullstack") {
		t.Fatalf("expected fullstack in %v", got)
	}
	if !contains(got, "frontend") || !contains(got, "backend") {
		t.Fatalf("expected frontend and backend via overlap, got %v", got)
	}
}

func TestInferDomainsDeclarationOrder(t *testing.T) {
	skills := []string{"docker", "kubernetes", "react", "javascript"}

	got := InferDomains(skills)

	want := []string{"frontend", "devops", "cloud"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected declaration order %v, got %v", want, got)
	}
}

func TestInferDomainsGeneralFallback(t *testing.T) {
	cases := [][]string{
		nil,
		{},
		{"rust"},
		{"rust", "elixir"},
	}
	for _, skills := range cases {
		got := InferDomains(skills)
		if !reflect.DeepEqual(got, []string{"general"}) {
			t.Fatalf("skills %v: expected [general], got %v", skills, got)
		}
	}
}

func TestInferDomainsSingleSkillBelowThreshold(t *testing.T) {
	// One characteristic skill is never enough.
	got := InferDomains([]string{"docker"})
	if !reflect.DeepEqual(got, []string{"general"}) {
		t.Fatalf("expected [general], got %v", got)
	}
}

func TestDomainForTitle(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Senior Frontend Developer", "frontend"},
		{"Backend API Engineer", "backend"},
		{"Full Stack Developer", "fullstack"},
		{"DevOps Engineer", "devops"},
		{"Data Scientist", "data science"},
		{"Machine Learning Engineer", "machine learning"},
		{"iOS Developer", "mobile"},
		{"QA Automation Engineer", "qa"},
		{"Security Analyst", "security"},
		{"Gardener", "general"},
	}
	for _, tc := range cases {
		got := DomainForTitle(tc.title)
		if got != tc.want {
			t.Fatalf("title %q: expected %q, got %q", tc.title, tc.want, got)
		}
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
