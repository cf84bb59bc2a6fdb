package discord

import "strings"

// NormalizeToken trims whitespace and quotes left by copy and paste and
// removes an optional leading "Bot " prefix.
func NormalizeToken(token string) string {
	t := strings.TrimSpace(token)
	t = strings.Trim(t, "\"'")
	t = strings.TrimSpace(t)

	parts := strings.Fields(t)
	if len(parts) >= 2 && strings.EqualFold(parts[0], "bot") {
		return strings.Join(parts[1:], "")
	}
	return t
}
