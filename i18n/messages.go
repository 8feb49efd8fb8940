package i18n

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Messages is the decoded translation tree of one language. Nested objects
// are addressed with dotted keys, e.g. "home.hero.cta.projects".
type Messages map[string]any

// LoadMessages reads dir/{lang}.json. A missing file is reported with an
// error wrapping fs.ErrNotExist and an empty, usable Messages.
func LoadMessages(dir string, lang Lang) (Messages, error) {
	path := filepath.Join(dir, string(lang)+".json")

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Messages{}, fmt.Errorf("messages %s: %w", path, fs.ErrNotExist)
		}
		return Messages{}, fmt.Errorf("read messages %s: %w", path, err)
	}

	var m Messages
	if err := json.Unmarshal(data, &m); err != nil {
		return Messages{}, fmt.Errorf("parse messages %s: %w", path, err)
	}
	if m == nil {
		m = Messages{}
	}
	return m, nil
}

// T returns the string at key, or fallback when the key is absent or does
// not hold a string.
func (m Messages) T(key, fallback string) string {
	if s, ok := m.lookup(key).(string); ok && s != "" {
		return s
	}
	return fallback
}

// Section returns the subtree at key; missing keys yield an empty tree.
func (m Messages) Section(key string) Messages {
	if sub, ok := m.lookup(key).(map[string]any); ok {
		return Messages(sub)
	}
	return Messages{}
}

func (m Messages) lookup(key string) any {
	var cur any = map[string]any(m)
	for _, part := range strings.Split(key, ".") {
		node, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		if cur, ok = node[part]; !ok {
			return nil
		}
	}
	return cur
}
