package format

import "strings"

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

// EscapeHTML escapes text for safe interpolation into HTML parse mode
// messages. Telegram only recognizes &, < and > as markup in message text.
func EscapeHTML(text string) string {
	return htmlEscaper.Replace(text)
}
