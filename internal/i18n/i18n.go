// Package i18n holds the Arabic/English message catalog and the request
// language negotiation used by every user-facing message.
package i18n

import (
	"context"

	"golang.org/x/text/language"
)

type Lang string

const (
	English Lang = "en"
	Arabic  Lang = "ar"
)

// order matters: the first tag is the matcher's fallback
var supported = []Lang{English, Arabic}

var matcher = language.NewMatcher([]language.Tag{language.English, language.Arabic})

type ctxKey struct{}

// Negotiate picks the response language. An explicit ?lang= value wins over
// the Accept-Language header; anything unrecognised falls back to English.
func Negotiate(queryLang, acceptLanguage string) Lang {

	var tags []language.Tag

	if queryLang != "" {
		if tag, err := language.Parse(queryLang); err == nil {
			tags = append(tags, tag)
		}
	}

	if len(tags) == 0 && acceptLanguage != "" {
		parsed, _, err := language.ParseAcceptLanguage(acceptLanguage)
		if err == nil {
			tags = parsed
		}
	}

	if len(tags) == 0 {
		return English
	}

	_, idx, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return English
	}

	return supported[idx]
}

func WithLang(ctx context.Context, lang Lang) context.Context {
	return context.WithValue(ctx, ctxKey{}, lang)
}

func FromContext(ctx context.Context) Lang {
	if lang, ok := ctx.Value(ctxKey{}).(Lang); ok {
		return lang
	}

	return English
}

// T returns the message for key in lang, falling back to English and then to
// the key itself.
func T(lang Lang, key string) string {
	entry, ok := catalog[key]
	if !ok {
		return key
	}

	if msg, ok := entry[lang]; ok {
		return msg
	}

	return entry[English]
}

// TC is T with the language taken from ctx.
func TC(ctx context.Context, key string) string {
	return T(FromContext(ctx), key)
}

// Dir reports the text direction clients should render lang with.
func (l Lang) Dir() string {
	if l == Arabic {
		return "rtl"
	}

	return "ltr"
}
