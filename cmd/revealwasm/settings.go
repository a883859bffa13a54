package main

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/Zachkp/portfolio/internal/i18n"
	"github.com/Zachkp/portfolio/internal/reveal"
)

// Keys of the data attributes the host renders on <body>.
const (
	attrIntroMS        = "introMs"
	attrImageTimeoutMS = "imageTimeoutMs"
	attrStrict         = "strict"
	attrLang           = "lang"
)

// cookieMaxAge matches the host's language cookie lifetime.
const cookieMaxAge = 365 * 24 * 60 * 60

// parseConfig builds the coordinator config from the body dataset. Bad
// values are reported and replaced by the defaults.
func parseConfig(data map[string]string) (reveal.Config, error) {
	cfg := reveal.DefaultConfig()
	var errs []error
	if d, ok, err := millis(data, attrIntroMS); err != nil {
		errs = append(errs, err)
	} else if ok {
		cfg.IntroDuration = d
	}
	if d, ok, err := millis(data, attrImageTimeoutMS); err != nil {
		errs = append(errs, err)
	} else if ok {
		cfg.ImageTimeout = d
	}
	if v, ok := data[attrStrict]; ok && v != "" {
		strict, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("data-strict: %w", err))
		} else {
			cfg.Strict = strict
		}
	}
	return cfg, errors.Join(errs...)
}

func millis(data map[string]string, key string) (time.Duration, bool, error) {
	v, ok := data[key]
	if !ok || v == "" {
		return 0, false, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("data-%s: %w", key, err)
	}
	if n <= 0 {
		return 0, false, fmt.Errorf("data-%s: must be positive, got %d", key, n)
	}
	return time.Duration(n) * time.Millisecond, true, nil
}

// pickLanguage prefers a stored choice over the language the host rendered.
func pickLanguage(stored, rendered string) string {
	for _, lang := range []string{stored, rendered} {
		for _, tag := range i18n.Supported() {
			if lang == i18n.Code(tag) {
				return lang
			}
		}
	}
	return i18n.Code(i18n.Default())
}

// languageCookie is the document.cookie assignment that persists lang for
// the host.
func languageCookie(lang string) string {
	return i18n.LangCookieName + "=" + lang + "; path=/; max-age=" + strconv.Itoa(cookieMaxAge) + "; SameSite=Lax"
}

// progressText renders the loading label with the settled percentage.
func progressText(label string, settled, total int) string {
	if total <= 0 {
		return label
	}
	if settled > total {
		settled = total
	}
	return label + " " + strconv.Itoa(settled*100/total) + "%"
}
