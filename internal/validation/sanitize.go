package validation

import "strings"

var htmlReplacer = strings.NewReplacer( //nolint:gochecknoglobals
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#x27;",
	"/", "&#x2F;",
)

// Sanitize escapes user generated text before it is stored.
// It escapes the slash as well, unlike html.EscapeString.
func Sanitize(s string) string {
	return htmlReplacer.Replace(s)
}
