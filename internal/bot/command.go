package bot

import (
	"strings"
	"unicode"

	"github.com/nao1215/lookupbot/internal/normalize"
)

// Command names understood by the bot.
const (
	CommandSearch = "search"
	CommandHelp   = "help"
	CommandPing   = "ping"
	CommandStats  = "stats"
)

// ParseCommand splits content into a command name and its argument.
// ok is false when content does not start with prefix or names no command.
// Names are matched case-insensitively and returned in lower case.
func ParseCommand(prefix, content string) (name, arg string, ok bool) {
	content = strings.TrimSpace(content)
	if prefix == "" || !strings.HasPrefix(content, prefix) {
		return "", "", false
	}

	rest := strings.TrimPrefix(content, prefix)
	end := strings.IndexFunc(rest, unicode.IsSpace)
	switch end {
	case 0:
		return "", "", false
	case -1:
		if rest == "" {
			return "", "", false
		}
		return strings.ToLower(rest), "", true
	}
	return strings.ToLower(rest[:end]), strings.TrimSpace(rest[end:]), true
}

// ValidateQuery extracts the number to search for from a search argument.
func ValidateQuery(arg string) (string, error) {
	if strings.TrimSpace(arg) == "" {
		return "", ErrMissingQuery
	}

	number, ok := normalize.ExtractNumber(arg)
	if !ok {
		return "", ErrNoNumber
	}
	return number, nil
}
