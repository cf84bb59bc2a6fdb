package present

import (
	"strings"

	"github.com/nao1215/lookupbot/internal/report"
)

// exportActionPrefix starts every export action ID.
const exportActionPrefix = "export"

// ExportActionID builds the action ID for exporting result set setID in
// format f, e.g. "export:json:3f0c...".
func ExportActionID(f report.Format, setID string) string {
	return exportActionPrefix + ":" + string(f) + ":" + setID
}

// ParseExportActionID splits an ID built by ExportActionID.
// ok is false for IDs that are not export actions or name an unknown format.
func ParseExportActionID(id string) (f report.Format, setID string, ok bool) {
	parts := strings.SplitN(id, ":", 3)
	if len(parts) != 3 || parts[0] != exportActionPrefix || parts[2] == "" {
		return "", "", false
	}

	f, err := report.ParseFormat(parts[1])
	if err != nil {
		return "", "", false
	}
	return f, parts[2], true
}
