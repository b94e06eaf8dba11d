package slug

import "strings"

// Derive converts a title into a URL slug: lower-cased, runs of
// non-alphanumeric characters collapsed to single hyphens, leading and
// trailing hyphens trimmed.
func Derive(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	var sb strings.Builder
	lastHyphen := false
	for _, r := range s {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			sb.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen && sb.Len() > 0 {
				sb.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.Trim(sb.String(), "-")
}

// OrDerive returns the slug unchanged when already set, otherwise derives it
// from the title. Derivation runs once per entity: a manually edited slug is
// never overwritten.
func OrDerive(current, title string) string {
	if current != "" {
		return current
	}
	return Derive(title)
}
