package conflicts

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/Gobusters/ectoerror/httperror"
)

// Upload limits for bulk screening files. Size is checked once, up front;
// parsing never inspects it again.
const (
	MaxUploadBytes  = 1 << 20 // 1 MiB
	MinPartyNameLen = 2
	MaxPartyNameLen = 200
)

// Content types accepted for party list uploads. Browsers are inconsistent
// about CSV, so the common aliases are all allowed.
var allowedUploadTypes = map[string]struct{}{
	"text/csv":                 {},
	"text/plain":               {},
	"application/csv":          {},
	"application/vnd.ms-excel": {},
}

// listPrefix strips bullet and numbering prefixes like "- ", "* ", "1.", "2)"
var listPrefix = regexp.MustCompile(`^\s*(?:[-*•]+|\d+[.)])\s*`)

// ValidateFile rejects oversized or unrecognized uploads before any parsing
// work happens. A rejection is a validation error, distinct from a screen
// that simply finds no conflicts.
func ValidateFile(size int64, contentType string) error {
	if size > MaxUploadBytes {
		return httperror.NewHTTPErrorf(http.StatusBadRequest, "file too large: %d bytes exceeds the %d byte limit", size, MaxUploadBytes)
	}

	mediaType := contentType
	if i := strings.Index(mediaType, ";"); i >= 0 {
		mediaType = mediaType[:i]
	}
	mediaType = strings.TrimSpace(strings.ToLower(mediaType))

	if _, ok := allowedUploadTypes[mediaType]; !ok {
		return httperror.NewHTTPErrorf(http.StatusBadRequest, "unsupported file type %q: upload a CSV or plain text file", contentType)
	}

	return nil
}

// ParseParties extracts party names from uploaded file content. CSV content
// is split per cell, freeform text per line with comma and semicolon
// separators. Names are trimmed, stripped of bullet/numbering prefixes,
// bounded to 2-200 characters, and de-duplicated preserving first
// occurrence order.
func ParseParties(content, contentType string) []string {
	var fields []string
	if isCSVType(contentType) {
		fields = splitCSV(content)
	} else {
		fields = splitFreeform(content)
	}

	seen := make(map[string]struct{}, len(fields))
	parties := make([]string, 0, len(fields))

	for _, field := range fields {
		name := normalizePartyName(field)
		if len(name) < MinPartyNameLen || len(name) > MaxPartyNameLen {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		parties = append(parties, name)
	}

	return parties
}

func isCSVType(contentType string) bool {
	ct := strings.ToLower(contentType)
	return strings.Contains(ct, "csv") || strings.Contains(ct, "ms-excel")
}

func splitCSV(content string) []string {
	var cells []string
	for _, line := range strings.Split(content, "\n") {
		for _, cell := range strings.Split(line, ",") {
			cells = append(cells, cell)
		}
	}
	return cells
}

func splitFreeform(content string) []string {
	return strings.FieldsFunc(content, func(r rune) bool {
		return r == '\n' || r == '\r' || r == ',' || r == ';'
	})
}

func normalizePartyName(field string) string {
	name := strings.TrimSpace(field)
	name = strings.Trim(name, `"'`)
	name = listPrefix.ReplaceAllString(name, "")
	return strings.TrimSpace(name)
}
