package tweet

import "strings"

// Both replacers work in a single left-to-right pass, so an escaped
// "&amp;#x2f;" decodes to the literal "&#x2f;" and not to "/".
var (
	escaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		"/", "&#x2f;",
	)
	unescaper = strings.NewReplacer(
		"&lt;", "<",
		"&gt;", ">",
		"&amp;", "&",
		"&#x2f;", "/",
	)
)

// Escape encodes the characters the server escapes before storing a message.
func Escape(s string) string {
	return escaper.Replace(s)
}

// Unescape reverses Escape.
func Unescape(s string) string {
	return unescaper.Replace(s)
}
