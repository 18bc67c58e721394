package locale

import (
	"embed"
	"log"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"bettools-app/internal/domain/access"
)

//go:embed locales/*.toml
var localeFS embed.FS

const DefaultLang = "en"

var supported = []string{"en", "hu"}

var bundleInstance *i18n.Bundle

// GetBundle lazily loads the message files. All IDs carry English default
// messages, so a missing file degrades to English instead of failing.
func GetBundle() *i18n.Bundle {
	if bundleInstance == nil {
		return LoadTranslations()
	}
	return bundleInstance
}

func LoadTranslations() *i18n.Bundle {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, lang := range supported {
		path := "locales/active." + lang + ".toml"
		buf, err := localeFS.ReadFile(path)
		if err != nil {
			log.Printf("Localization file for language %s not found, falling back to %s\n", lang, DefaultLang)
			continue
		}
		if _, err := bundle.ParseMessageFileBytes(buf, path); err != nil {
			log.Printf("Failed to parse %s: %v\n", path, err)
		}
	}

	bundleInstance = bundle
	return bundle
}

// Normalize maps an arbitrary requested language to a supported one.
func Normalize(lang string) string {
	for _, s := range supported {
		if lang == s {
			return s
		}
	}
	return DefaultLang
}

// Localize renders a message for lang, falling back to the message's
// English default.
func Localize(lang string, message *i18n.Message, templateData map[string]interface{}) string {
	localizer := i18n.NewLocalizer(GetBundle(), Normalize(lang), DefaultLang)
	return localizer.MustLocalize(&i18n.LocalizeConfig{
		DefaultMessage: message,
		TemplateData:   templateData,
	})
}

var (
	msgCountdownDay    = &i18n.Message{ID: "countdown.day", Other: "d"}
	msgCountdownHour   = &i18n.Message{ID: "countdown.hour", Other: "h"}
	msgCountdownMinute = &i18n.Message{ID: "countdown.minute", Other: "m"}
	msgCountdownSecond = &i18n.Message{ID: "countdown.second", Other: "s"}

	msgExpiryLayout = &i18n.Message{ID: "expiry.layout", Other: "Jan 2, 2006 15:04"}
	msgExpiresOn    = &i18n.Message{ID: "expiry.expires_on", Other: "Expires on {{.Date}}"}
)

// CountdownLabels returns the unit suffixes for lang.
func CountdownLabels(lang string) access.CountdownLabels {
	return access.CountdownLabels{
		Day:    Localize(lang, msgCountdownDay, nil),
		Hour:   Localize(lang, msgCountdownHour, nil),
		Minute: Localize(lang, msgCountdownMinute, nil),
		Second: Localize(lang, msgCountdownSecond, nil),
	}
}

// FormatCountdown renders a remaining duration with lang's unit labels.
func FormatCountdown(lang string, d time.Duration) string {
	return access.FormatCountdown(d, CountdownLabels(lang))
}

// FormatExpiry renders an absolute expiry in lang's date layout.
func FormatExpiry(lang string, t time.Time) string {
	layout := Localize(lang, msgExpiryLayout, nil)
	return Localize(lang, msgExpiresOn, map[string]interface{}{
		"Date": t.Format(layout),
	})
}
