package ingest

import "errors"

var ErrNotFound = errors.New("not found")
