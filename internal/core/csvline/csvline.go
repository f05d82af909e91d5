// Package csvline provides the line-oriented CSV field splitter used by
// the bulk importer
//
// The splitter is deliberately simpler than a full RFC 4180 reader: a
// double quote toggles quoted mode, a comma outside quotes ends the
// field, and everything else is carried through verbatim. Escaped quotes
// ("") and embedded newlines are not supported; input files are one
// record per line
package csvline

import "strings"

// ParseLine splits a single CSV line into raw fields
func ParseLine(line string) []string {
	fields := make([]string, 0, 8)
	var cur strings.Builder
	inQuotes := false

	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case r == ',' && !inQuotes:
			fields = append(fields, cur.String())
			cur.Reset()
		default:
			cur.WriteRune(r)
		}
	}
	fields = append(fields, cur.String())
	return fields
}

// CleanField trims surrounding whitespace, then surrounding double quotes
func CleanField(s string) string {
	s = strings.TrimSpace(s)
	return strings.Trim(s, `"`)
}

// Field returns the cleaned field at idx, or "" and false when the line
// has fewer columns
func Field(fields []string, idx int) (string, bool) {
	if idx < 0 || idx >= len(fields) {
		return "", false
	}
	return CleanField(fields[idx]), true
}
