package entity

import (
	"strings"

	"github.com/iancoleman/strcase"
)

// NormalizeName converts an incoming key to the snake_case form used by
// declarations: "firstName", "FirstName" and "first-name" all become
// "first_name". Digits stay attached to their neighbours, so "address1",
// "line2" and "s3_key" are unchanged.
func NormalizeName(name string) string {
	return joinDigits(strings.TrimSpace(name), strcase.ToSnake(name))
}

// joinDigits drops the underscores strcase inserts before a digit and
// between a digit and a lowercase letter. A digit followed by an uppercase
// letter still starts a new word: "address1Line" becomes "address1_line".
// snake is src with delimiters mapped one to one plus inserted underscores,
// so the two are walked in step; any other shape is returned unchanged.
func joinDigits(src, snake string) string {
	var b strings.Builder
	b.Grow(len(snake))
	j := 0
	for i := 0; i < len(snake); i++ {
		c := snake[i]
		if c == '_' && (j >= len(src) || !isDelimiter(src[j])) {
			nextDigit := i+1 < len(snake) && isDigit(snake[i+1])
			afterDigit := i > 0 && isDigit(snake[i-1]) && j < len(src) && !isUpper(src[j])
			if nextDigit || afterDigit {
				continue
			}
			b.WriteByte(c)
			continue
		}
		if j >= len(src) {
			return snake
		}
		j++
		b.WriteByte(c)
	}
	if j != len(src) {
		return snake
	}
	return b.String()
}

func isDelimiter(c byte) bool {
	return c == '_' || c == '-' || c == ' ' || c == '.'
}

func isUpper(c byte) bool {
	return c >= 'A' && c <= 'Z'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
