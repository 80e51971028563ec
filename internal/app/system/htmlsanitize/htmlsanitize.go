// internal/app/system/htmlsanitize/htmlsanitize.go
//
// Package htmlsanitize strips dangerous markup from user-authored text
// before it is stored. Project abstracts and methodologies arrive from
// rich-text editors, so a small set of formatting tags is allowed;
// scripts, event handlers, and javascript: URLs are not.
package htmlsanitize

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	once   sync.Once
	policy *bluemonday.Policy
)

func getPolicy() *bluemonday.Policy {
	once.Do(func() {
		p := bluemonday.UGCPolicy()
		p.RequireNoFollowOnLinks(true)
		policy = p
	})
	return policy
}

// Sanitize returns s with disallowed HTML removed. Plain text passes
// through unchanged.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	return getPolicy().Sanitize(s)
}

// SanitizeAll sanitizes every entry of values in place and returns it.
func SanitizeAll(values []string) []string {
	for i, v := range values {
		values[i] = Sanitize(v)
	}
	return values
}
