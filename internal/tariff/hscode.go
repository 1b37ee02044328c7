package tariff

import "strings"

// NormalizeHSCode strips the separators commonly found in HS codes
// ("2204.21-10" -> "22042110").
func NormalizeHSCode(code string) string {
	replacer := strings.NewReplacer(".", "", "-", "", " ", "")
	return replacer.Replace(code)
}

// ValidHSCode reports whether the code is 4-10 digits after separator
// stripping. Validity is advisory: callers downgrade a failure to a warning
// and keep going.
func ValidHSCode(code string) bool {
	cleaned := NormalizeHSCode(code)
	if len(cleaned) < 4 || len(cleaned) > 10 {
		return false
	}
	return isDigits(cleaned)
}

// Chapter extracts the 2-digit HS chapter prefix. A code whose prefix is not
// numeric yields "" so that no chapter rule can match it.
func Chapter(code string) string {
	cleaned := NormalizeHSCode(code)
	if len(cleaned) < 2 || !isDigits(cleaned[:2]) {
		return ""
	}
	return cleaned[:2]
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
