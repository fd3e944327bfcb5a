package utils

import "strings"

// CardFilename builds the download filename for a composed card from the
// person's name: spaces become underscores and anything outside letters,
// digits, '-' and '_' is dropped, so path separators and header tricks never
// reach the Content-Disposition value.
func CardFilename(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		case r == ' ':
			b.WriteRune('_')
		}
	}

	sanitized := strings.Trim(b.String(), "_")
	if sanitized == "" {
		return "id_card.png"
	}
	return sanitized + "_id_card.png"
}
