package i18n

import (
	"context"
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"github.com/example/portfolio/internal/ctxutil"
)

var supported = []language.Tag{language.English, language.BrazilianPortuguese}

// Catalog resolves message keys for the locale carried in the context.
// It holds no per-call state: switching locales only requires a different context.
type Catalog struct {
	builder  *catalog.Builder
	matcher  language.Matcher
	fallback language.Tag
}

// NewCatalog builds the catalog with every known message. defaultLocale is used
// when the context carries no locale or an unsupported one.
func NewCatalog(defaultLocale string) (*Catalog, error) {
	fallback := language.English
	if defaultLocale != "" {
		tag, err := language.Parse(defaultLocale)
		if err != nil {
			return nil, fmt.Errorf("invalid default locale %q: %w", defaultLocale, err)
		}
		fallback = tag
	}

	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for key, t := range messages {
		if err := b.SetString(language.English, string(key), t.en); err != nil {
			return nil, fmt.Errorf("failed to register %s: %w", key, err)
		}
		if err := b.SetString(language.BrazilianPortuguese, string(key), t.ptBR); err != nil {
			return nil, fmt.Errorf("failed to register %s: %w", key, err)
		}
	}

	c := &Catalog{
		builder: b,
		matcher: language.NewMatcher(supported),
	}
	c.fallback = c.match(fallback.String(), language.English)
	return c, nil
}

// MustCatalog is NewCatalog for static locales; it panics on a malformed tag.
func MustCatalog(defaultLocale string) *Catalog {
	c, err := NewCatalog(defaultLocale)
	if err != nil {
		panic(err)
	}
	return c
}

// Resolve formats key in the context's locale.
func (c *Catalog) Resolve(ctx context.Context, key Key, args ...any) string {
	return c.ResolveIn(ctxutil.LocaleFromContext(ctx), key, args...)
}

// ResolveIn formats key in an explicit locale.
func (c *Catalog) ResolveIn(locale string, key Key, args ...any) string {
	p := message.NewPrinter(c.match(locale, c.fallback), message.Catalog(c.builder))

	resolved := make([]any, len(args))
	for i, a := range args {
		if k, ok := a.(Key); ok {
			resolved[i] = p.Sprintf(string(k))
			continue
		}
		resolved[i] = a
	}
	return p.Sprintf(string(key), resolved...)
}

// Supported returns the locales the catalog has translations for.
func (c *Catalog) Supported() []string {
	out := make([]string, len(supported))
	for i, t := range supported {
		out[i] = t.String()
	}
	return out
}

func (c *Catalog) match(locale string, def language.Tag) language.Tag {
	if locale == "" {
		return def
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return def
	}
	_, idx, conf := c.matcher.Match(tag)
	if conf == language.No {
		return def
	}
	return supported[idx]
}
