package vanilla

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

// Properties whose values may carry inline markup shown to the user. They
// run through the sanitizer before being emitted as attributes.
var richTextProps = map[string]bool{
	"help":       true,
	"hover_text": true,
	"tooltip":    true,
}

var (
	richTextPolicyOnce sync.Once
	richTextPolicy     *bluemonday.Policy
)

func sanitizeRichText(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(richTextSanitizer().Sanitize(trimmed))
}

func richTextSanitizer() *bluemonday.Policy {
	richTextPolicyOnce.Do(func() {
		policy := bluemonday.NewPolicy()
		policy.AllowStandardURLs()
		policy.AllowElements("b", "i", "em", "strong", "code", "small", "span", "br")
		policy.AllowAttrs("href").OnElements("a")
		policy.AllowAttrs("class").OnElements("span")
		richTextPolicy = policy
	})
	return richTextPolicy
}
