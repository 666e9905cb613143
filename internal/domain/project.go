package domain

import (
	"strings"
	"time"
)

// Project groups tracked time under a user-chosen name. Names are stored
// case-folded; duplicates are allowed. Projects are archived, never deleted,
// so historical entries can always resolve their project name.
type Project struct {
	ID        string
	Name      string
	Archived  bool
	CreatedAt time.Time
}

// NormalizeProjectName trims surrounding whitespace and case-folds the name.
// An empty result means there is nothing to store and the write should be
// skipped.
func NormalizeProjectName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
