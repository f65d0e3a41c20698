package match

import (
	"reflect"
	"testing"
)

func TestScoreEmptySkills(t *testing.T) {
	if got := Score(nil, []string{"React", "SQL"}); got != 0 {
		t.Fatalf("expected 0 for empty skills, got %d", got)
	}
	if got := Score([]string{}, nil); got != 0 {
		t.Fatalf("expected 0 for empty skills and requirements, got %d", got)
	}
}

func TestScoreEmptyRequirementsIsNeutral(t *testing.T) {
	for _, skills := range [][]string{
		{"go"},
		{"go", "sql", "docker"},
	} {
		if got := Score(skills, nil); got != 50 {
			t.Fatalf("skills %v: expected neutral 50, got %d", skills, got)
		}
	}
}

func TestScoreRequirementCoverage(t *testing.T) {
	// 1 of 3 requirements covered -> 33.
	skills := []string{"react", "node"}
	requirements := []string{"React", "5+ years", "AWS"}

	if got := Score(skills, requirements); got != 33 {
		t.Fatalf("expected 33, got %d", got)
	}
}

func TestScoreOrderIndependent(t *testing.T) {
	skills := []string{"react", "sql", "docker"}
	a := []string{"React experience", "strong SQL", "Kubernetes", "AWS"}
	b := []string{"AWS", "Kubernetes", "strong SQL", "React experience"}

	if Score(skills, a) != Score(skills, b) {
		t.Fatalf("score depends on requirement order: %d vs %d", Score(skills, a), Score(skills, b))
	}
}

func TestScoreBidirectionalContainment(t *testing.T) {
	// Skill inside requirement.
	if got := Score([]string{"sql"}, []string{"5+ years SQL"}); got != 100 {
		t.Fatalf("skill-in-requirement: expected 100, got %d", got)
	}
	// Requirement inside skill.
	if got := Score([]string{"machine learning"}, []string{"learning"}); got != 100 {
		t.Fatalf("requirement-in-skill: expected 100, got %d", got)
	}
}

func TestScoreRequirementCountedOnce(t *testing.T) {
	// Many skills covering the same single requirement still yield one match.
	skills := []string{"sql", "mysql", "postgresql"}
	requirements := []string{"SQL databases", "Go"}

	if got := Score(skills, requirements); got != 50 {
		t.Fatalf("expected 50 (1 of 2), got %d", got)
	}
}

func TestScoreIsRequirementBased(t *testing.T) {
	// 50 skills against 2 requirements caps at 100, driven by requirement
	// coverage alone.
	skills := make([]string, 0, 50)
	for i := 0; i < 50; i++ {
		skills = append(skills, "skill")
	}
	skills[0] = "react"
	skills[1] = "sql"

	if got := Score(skills, []string{"React", "SQL"}); got != 100 {
		t.Fatalf("expected 100, got %d", got)
	}
}

func TestScoreRounding(t *testing.T) {
	// 2 of 3 -> 66.67 -> 67.
	if got := Score([]string{"react", "sql"}, []string{"React", "SQL", "AWS"}); got != 67 {
		t.Fatalf("expected 67, got %d", got)
	}
}

func TestMatchingSkillsReturnsSkillStrings(t *testing.T) {
	skills := []string{"salesforce", "apex", "sql"}
	requirements := []string{"Salesforce", "Apex"}

	got := MatchingSkills(skills, requirements)
	want := []string{"salesforce", "apex"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestMatchingSkillsEmpty(t *testing.T) {
	if got := MatchingSkills(nil, []string{"Go"}); len(got) != 0 {
		t.Fatalf("expected no matches, got %v", got)
	}
	if got := MatchingSkills([]string{"go"}, nil); len(got) != 0 {
		t.Fatalf("expected no matches for empty requirements, got %v", got)
	}
}
