package slug

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	nonAlphaNum = regexp.MustCompile(`[^a-z0-9]+`)
	replacer    = strings.NewReplacer("&", " and ", "+", " plus ", "/", " ")
)

func Make(input string) string {
	s := strings.ToLower(strings.TrimSpace(input))
	s = replacer.Replace(s)
	s = nonAlphaNum.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if s == "" {
		return "untitled"
	}
	return s
}

// Numbered prefixes the slug with a zero-padded position so files list in roadmap order.
func Numbered(position int, input string) string {
	return fmt.Sprintf("%02d-%s", position, Make(input))
}
