package client

import (
	"fmt"
	"maps"
	"reflect"
	"regexp"
	"strings"

	"github.com/spf13/cast"
)

// placeholderPattern matches a /:name segment in a root template.
var placeholderPattern = regexp.MustCompile(`/:([a-z_]+)`)

// BuildURL assembles root, prefix, path and the path arguments into a URL and
// fills its placeholders from values. A nil path means no path segment.
// values is not modified.
func BuildURL(root string, prefix, path any, args []any, values map[string]any) string {
	suffix := JoinPath(args...)
	url := JoinPath(root, JoinPath(prefix), JoinPath(path), suffix)
	return ReplacePlaceholders(url, values)
}

// JoinPath stringifies parts and joins them with "/". Blank parts (nil, false,
// empty strings, empty slices and maps) are dropped; slices are flattened.
func JoinPath(parts ...any) string {
	segments := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := segment(p); s != "" {
			segments = append(segments, s)
		}
	}
	return strings.Join(segments, "/")
}

// ReplacePlaceholders replaces each /:name segment of url, left to right.
// A name with a present value becomes /value; an absent or blank value
// removes the segment. Each value is consumed by its first occurrence, so a
// repeated name is removed on later occurrences. values is not modified.
func ReplacePlaceholders(url string, values map[string]any) string {
	remaining := maps.Clone(values)
	return placeholderPattern.ReplaceAllStringFunc(url, func(match string) string {
		name := match[2:]
		value, ok := remaining[name]
		delete(remaining, name)
		if !ok {
			return ""
		}
		s := segment(value)
		if s == "" {
			return ""
		}
		return "/" + s
	})
}

// segment renders one path part, or "" when it is blank.
func segment(v any) string {
	if isBlank(v) {
		return ""
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if _, ok := v.([]byte); ok {
			return string(v.([]byte))
		}
		items := make([]any, rv.Len())
		for i := range items {
			items[i] = rv.Index(i).Interface()
		}
		return JoinPath(items...)
	}
	return stringify(v)
}

// isBlank reports whether v renders to nothing in a path.
func isBlank(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case bool:
		return !t
	case string:
		return t == ""
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len() == 0
	case reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// stringify renders scalars the way they appear in URLs.
func stringify(v any) string {
	if s, err := cast.ToStringE(v); err == nil {
		return s
	}
	return fmt.Sprint(v)
}
