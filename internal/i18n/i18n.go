// Package i18n provides the user-facing message catalogs.
package i18n

import (
	"fmt"
	"log/slog"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Supported lists the UI languages in matcher priority order.
var Supported = []language.Tag{
	language.English,
	language.SimplifiedChinese,
}

var (
	matcher = language.NewMatcher(Supported)
	builder = newCatalog()
)

func newCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for key, msg := range zhHans {
		if err := b.SetString(language.SimplifiedChinese, key, msg); err != nil {
			panic(fmt.Sprintf("i18n: register %q: %v", key, err))
		}
	}
	return b
}

// Match resolves a user-supplied language preference, such as "zh",
// "zh-CN" or "en-GB", to one of the supported tags.
func Match(pref string) language.Tag {
	if pref == "" {
		return Supported[0]
	}
	tag, err := language.Parse(pref)
	if err != nil {
		slog.Warn("unrecognised language, using default", "lang", pref, "error", err)
		return Supported[0]
	}
	_, idx, _ := matcher.Match(tag)
	return Supported[idx]
}

// Printer formats messages in one language.
type Printer struct {
	tag language.Tag
	p   *message.Printer
}

// New returns a printer for the best supported match of pref.
func New(pref string) *Printer {
	tag := Match(pref)
	return &Printer{tag: tag, p: message.NewPrinter(tag, message.Catalog(builder))}
}

// Tag returns the resolved language.
func (p *Printer) Tag() language.Tag {
	return p.tag
}

// T formats the message for key.
func (p *Printer) T(key string, args ...any) string {
	return p.p.Sprintf(key, args...)
}

// LanguageName returns the English name of the language, used to tell the
// tutor which language to answer in.
func (p *Printer) LanguageName() string {
	if p.tag == language.SimplifiedChinese {
		return "Chinese (Simplified)"
	}
	return "English"
}

// LevelUp implements xp.Messages.
func (p *Printer) LevelUp(level int) string {
	return p.T(LevelUp, level)
}

// XPGained implements xp.Messages.
func (p *Printer) XPGained(amount int) string {
	return p.T(XPGained, amount)
}
