package pages

// Known page keys, the stable identifiers for the site's logical pages.
const (
	KeyHome       = "home"
	KeyAbout      = "about"
	KeyPrograms   = "programs"
	KeyMembership = "membership"
	KeyCamps      = "camps"
	KeyContact    = "contact"
)

const (
	LocaleEN = "en"
	LocaleHY = "hy"
)

// All returns every known page key in declaration order.
func All() []string {
	return []string{
		KeyHome,
		KeyAbout,
		KeyPrograms,
		KeyMembership,
		KeyCamps,
		KeyContact,
	}
}

func IsValid(key string) bool {
	for _, k := range All() {
		if k == key {
			return true
		}
	}
	return false
}

// FormAllowed lists the pages that may carry a dynamic form.
func FormAllowed() []string {
	return []string{KeyMembership, KeyCamps, KeyContact}
}

func IsFormAllowed(key string) bool {
	for _, k := range FormAllowed() {
		if k == key {
			return true
		}
	}
	return false
}

func Locales() []string {
	return []string{LocaleEN, LocaleHY}
}

func IsValidLocale(locale string) bool {
	return locale == LocaleEN || locale == LocaleHY
}

// NormalizeLocale maps an unknown or empty locale to the default ("en").
func NormalizeLocale(locale string) string {
	if IsValidLocale(locale) {
		return locale
	}
	return LocaleEN
}
