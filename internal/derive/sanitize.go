package derive

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	descriptionPolicyOnce sync.Once
	descriptionPolicy     *bluemonday.Policy
)

// sanitizeDescription strips markup from description strings sourced from
// untrusted documents before they become UI display text.
func sanitizeDescription(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	policy := descriptionSanitizer()
	return strings.TrimSpace(policy.Sanitize(trimmed))
}

func descriptionSanitizer() *bluemonday.Policy {
	descriptionPolicyOnce.Do(func() {
		descriptionPolicy = bluemonday.StrictPolicy()
	})
	return descriptionPolicy
}
