// answers.go
package models

import "strings"

// AnswerSet maps question id to the submitted answer: a string for single
// selects, a list of strings (or a comma-joined string) for multi selects.
// Values arrive straight from JSON, so entries are untyped; the accessors
// below normalize them. Missing or oddly typed answers are never an error,
// the engine substitutes its "unsure" defaults instead.
type AnswerSet map[string]any

// String returns the single-select answer for id, or "" when unanswered.
func (a AnswerSet) String(id string) string {
	if a == nil {
		return ""
	}
	s, _ := a[id].(string)
	return s
}

// List normalizes the answer for id to a list of selections: an existing
// list is flattened to its string members, a comma-joined string is split,
// anything else yields an empty list.
func (a AnswerSet) List(id string) []string {
	if a == nil {
		return nil
	}
	switch v := a[id].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok && s != "" {
				out = append(out, s)
			}
		}
		return out
	case string:
		if v == "" {
			return nil
		}
		parts := strings.Split(v, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		return out
	default:
		return nil
	}
}

// Has reports whether id was answered at all (non-empty string or
// non-empty list).
func (a AnswerSet) Has(id string) bool {
	if a == nil {
		return false
	}
	switch v := a[id].(type) {
	case string:
		return v != ""
	case []string:
		return len(v) > 0
	case []any:
		return len(v) > 0
	default:
		return false
	}
}
