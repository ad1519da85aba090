// Package activity contains the pure business logic for academic activities.
// This is part of the Functional Core - no I/O, only pure functions.
package activity

import (
	"fmt"
	"strings"
)

// Type is the kind of an academic activity.
type Type string

// Activity types. The values are the labels persisted in the store.
const (
	TypeResearch Type = "Pesquisa"
	TypeTeaching Type = "Docência"
	TypeOutreach Type = "Extensão"
)

// Types lists every activity type in display order.
var Types = []Type{TypeResearch, TypeTeaching, TypeOutreach}

// Name returns the English name of the type.
func (t Type) Name() string {
	switch t {
	case TypeResearch:
		return "Research"
	case TypeTeaching:
		return "Teaching"
	case TypeOutreach:
		return "Outreach"
	}
	return string(t)
}

// Valid reports whether t is one of the three known types.
func (t Type) Valid() bool {
	switch t {
	case TypeResearch, TypeTeaching, TypeOutreach:
		return true
	}
	return false
}

// ParseType accepts either the English name or the stored label.
// Matching ignores case, and the labels also match without accents.
func ParseType(s string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "research", "pesquisa":
		return TypeResearch, nil
	case "teaching", "docência", "docencia":
		return TypeTeaching, nil
	case "outreach", "extensão", "extensao":
		return TypeOutreach, nil
	}
	return "", fmt.Errorf("invalid activity type %q (expected Research, Teaching or Outreach)", s)
}
