package yue

import (
	jj "github.com/cloudfoundry/jibber_jabber"
	"golang.org/x/text/language"
)

// DirectionForLocale returns the script direction suitable for a locale,
// given as an IETF language tag. Locales written in traditional script
// (e.g. zh-HK, zh-TW, yue) map to ToTraditional, locales written in simplified
// script map to ToSimplified. Locales with other scripts return the default.
func DirectionForLocale(locale string) Direction {
	tag, err := language.Parse(locale)
	if err != nil {
		tracer().Debugf("cannot parse locale %q: %v", locale, err)
		return DefaultConfig().Direction
	}
	script, confidence := tag.Script()
	if confidence == language.No {
		return DefaultConfig().Direction
	}
	switch script.String() {
	case "Hant":
		return ToTraditional
	case "Hans":
		return ToSimplified
	}
	return DefaultConfig().Direction
}

// DirectionFromEnvironment returns the script direction suitable for the
// locale of the user, as found in the environment. If no locale can be
// detected, the default direction is returned.
func DirectionFromEnvironment() Direction {
	userLocale, err := jj.DetectIETF()
	if err != nil {
		tracer().Infof("cannot detect user locale: %v", err)
		return DefaultConfig().Direction
	}
	tracer().Infof("detected user locale %v", userLocale)
	return DirectionForLocale(userLocale)
}
