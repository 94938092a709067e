package parser

import "strings"

// Lines splits raw file text into trimmed, non-empty lines. Carriage
// returns from CRLF exports are removed by the trim.
func Lines(text string) []string {
	raw := strings.Split(text, "\n")
	out := make([]string, 0, len(raw))
	for _, l := range raw {
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, l)
		}
	}
	return out
}

// SplitFields splits one line on commas that are outside double quotes.
// Quote characters toggle quoting and are dropped; each field is trimmed.
// The last field is always emitted, so a trailing comma yields an empty
// final field.
func SplitFields(line string) []string {
	var (
		fields   []string
		cur      strings.Builder
		inQuotes bool
	)
	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case r == ',' && !inQuotes:
			fields = append(fields, strings.TrimSpace(cur.String()))
			cur.Reset()
		default:
			cur.WriteRune(r)
		}
	}
	return append(fields, strings.TrimSpace(cur.String()))
}

// zip joins headers and values positionally. Missing values become "".
func zip(headers, values []string) map[string]string {
	rec := make(map[string]string, len(headers))
	for i, h := range headers {
		if i < len(values) {
			rec[h] = values[i]
		} else {
			rec[h] = ""
		}
	}
	return rec
}
