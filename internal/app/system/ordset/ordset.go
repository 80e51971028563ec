// internal/app/system/ordset/ordset.go
//
// Package ordset deduplicates string slices while keeping insertion
// order, comparing entries case-insensitively via the same fold the
// *_ci database fields use.
package ordset

import (
	"strings"

	"github.com/dalemusser/waffle/pantry/text"
)

// Fold returns values with trimmed entries, empty entries dropped, and
// case-insensitive duplicates removed. The first occurrence wins and
// keeps its original casing and position.
func Fold(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		key := text.Fold(v)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
