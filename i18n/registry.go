package i18n

import (
	"errors"
	"fmt"

	"golang.org/x/text/language"
)

// Lang represents a supported language
type Lang string

const (
	EN Lang = "en"
	FR Lang = "fr"
	AR Lang = "ar"
	ES Lang = "es"
	TR Lang = "tr"
)

// ErrUnknownLocale is returned for a code that is not in the registry.
var ErrUnknownLocale = errors.New("unknown locale")

// Info describes how a language is presented to the user.
type Info struct {
	Name string
	Flag string
	RTL  bool
}

// Entry is one row of the locale table.
type Entry struct {
	Lang Lang
	Name string
	Flag string
}

// Registry is the immutable table of supported languages. Build it once at
// startup and share the pointer.
type Registry struct {
	langs   []Lang
	def     Lang
	info    map[Lang]Info
	matcher language.Matcher
}

var rtlLangs = []Lang{AR}

var defaultEntries = []Entry{
	{Lang: EN, Name: "English", Flag: "US"},
	{Lang: FR, Name: "Français", Flag: "FR"},
	{Lang: AR, Name: "العربية", Flag: "AR"},
	{Lang: ES, Name: "Español", Flag: "ES"},
	{Lang: TR, Name: "Türkçe", Flag: "TR"},
}

// DefaultRegistry returns the site's locale table with English as default.
func DefaultRegistry() *Registry {
	r, err := NewRegistry(EN, defaultEntries)
	if err != nil {
		panic(err)
	}
	return r
}

// NewRegistry validates entries and builds a registry. Every entry needs a
// name and a flag, codes must be unique and def must be one of them.
func NewRegistry(def Lang, entries []Entry) (*Registry, error) {
	r := &Registry{
		def:  def,
		info: make(map[Lang]Info, len(entries)),
	}

	tags := make([]language.Tag, 0, len(entries))
	for _, e := range entries {
		if e.Lang == "" || e.Name == "" || e.Flag == "" {
			return nil, fmt.Errorf("locale table: incomplete entry %q", e.Lang)
		}
		if _, dup := r.info[e.Lang]; dup {
			return nil, fmt.Errorf("locale table: duplicate entry %q", e.Lang)
		}
		tag, err := language.Parse(string(e.Lang))
		if err != nil {
			return nil, fmt.Errorf("locale table: %q: %w", e.Lang, err)
		}

		r.langs = append(r.langs, e.Lang)
		r.info[e.Lang] = Info{Name: e.Name, Flag: e.Flag, RTL: isRTL(e.Lang)}
		tags = append(tags, tag)
	}

	if _, ok := r.info[def]; !ok {
		return nil, fmt.Errorf("locale table: default %q: %w", def, ErrUnknownLocale)
	}
	r.matcher = language.NewMatcher(tags)

	return r, nil
}

func isRTL(lang Lang) bool {
	for _, l := range rtlLangs {
		if l == lang {
			return true
		}
	}
	return false
}

// IsSupported reports whether code is in the table.
func (r *Registry) IsSupported(code string) bool {
	_, ok := r.info[Lang(code)]
	return ok
}

// Info returns the display information for code.
func (r *Registry) Info(code string) (Info, error) {
	info, ok := r.info[Lang(code)]
	if !ok {
		return Info{}, fmt.Errorf("%w: %q", ErrUnknownLocale, code)
	}
	return info, nil
}

// Direction returns "rtl" or "ltr" for the given code.
func (r *Registry) Direction(code string) string {
	if isRTL(Lang(code)) {
		return "rtl"
	}
	return "ltr"
}

// Langs returns all supported languages in table order.
func (r *Registry) Langs() []Lang {
	out := make([]Lang, len(r.langs))
	copy(out, r.langs)
	return out
}

// DefaultLang returns the fallback language.
func (r *Registry) DefaultLang() Lang {
	return r.def
}

// Parse converts code into a supported Lang.
func (r *Registry) Parse(code string) (Lang, error) {
	if !r.IsSupported(code) {
		return "", fmt.Errorf("%w: %q", ErrUnknownLocale, code)
	}
	return Lang(code), nil
}

// Match picks the best Accept-Language match, or the default.
func (r *Registry) Match(acceptLanguage string) Lang {
	if acceptLanguage == "" {
		return r.def
	}

	prefs, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(prefs) == 0 {
		return r.def
	}

	_, idx, conf := r.matcher.Match(prefs...)
	if conf == language.No {
		return r.def
	}
	return r.langs[idx]
}
