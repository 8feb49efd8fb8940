package i18n

import "context"

type contextKey struct{}

// WithLang stores the request language in ctx.
func WithLang(ctx context.Context, lang Lang) context.Context {
	return context.WithValue(ctx, contextKey{}, lang)
}

// FromContext returns the request language, or def when none was set.
func FromContext(ctx context.Context, def Lang) Lang {
	if lang, ok := ctx.Value(contextKey{}).(Lang); ok {
		return lang
	}
	return def
}
