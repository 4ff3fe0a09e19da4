package log

import (
	"strings"
)

// Sanitize keeps a message on a single line.
func Sanitize(in string) string {
	return strings.NewReplacer("\r\n", `\n`, "\n", `\n`, "\r", `\n`).Replace(in)
}
