package models

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Document is a markdown file split into its frontmatter and body.
type Document struct {
	Frontmatter map[string]any
	Body        string
	Slug        string
}

// Title returns frontmatter "title", or the slug in title case.
func (d Document) Title() string {
	return GetStringMeta(d.Frontmatter, "title", slugTitle(d.Slug))
}

// Description returns frontmatter "description" or "".
func (d Document) Description() string {
	return GetStringMeta(d.Frontmatter, "description", "")
}

func slugTitle(slug string) string {
	s := strings.NewReplacer("-", " ", "_", " ").Replace(slug)
	return cases.Title(language.Und).String(s)
}

// GetStringMeta reads a scalar frontmatter value as a string.
func GetStringMeta(data map[string]any, key, defaultVal string) string {
	val, ok := data[key]
	if !ok || val == nil {
		return defaultVal
	}
	switch v := val.(type) {
	case string:
		if v == "" {
			return defaultVal
		}
		return v
	case fmt.Stringer:
		return v.String()
	case int, int64, float64, bool:
		return fmt.Sprint(v)
	}
	return defaultVal
}

// GetSliceMeta reads a frontmatter list of strings; other items are skipped.
func GetSliceMeta(data map[string]any, key string) []string {
	slice, ok := data[key].([]any)
	if !ok {
		return []string{}
	}
	result := make([]string, 0, len(slice))
	for _, item := range slice {
		if str, ok := item.(string); ok {
			result = append(result, str)
		}
	}
	return result
}
