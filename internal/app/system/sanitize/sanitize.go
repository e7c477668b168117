// Package sanitize strips markup from user-supplied free text before it
// is stored. Request messages, addresses, and display names are rendered
// back to other users' clients, so anything that isn't plain text is
// removed on the way in.
package sanitize

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	once   sync.Once
	policy *bluemonday.Policy
)

func get() *bluemonday.Policy {
	once.Do(func() {
		policy = bluemonday.StrictPolicy()
	})
	return policy
}

// Text removes all HTML from s and trims surrounding whitespace.
func Text(s string) string {
	return strings.TrimSpace(get().Sanitize(s))
}
