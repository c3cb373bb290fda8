package utils

import "strings"

// SplitRow splits a plain comma separated row. Empty fields are kept so
// positional columns line up.
func SplitRow(line string) []string {
	return strings.Split(line, ",")
}

// JoinRow joins fields with commas, no quoting.
func JoinRow(fields []string) string {
	return strings.Join(fields, ",")
}

// SplitQuotedRow splits a row where fields containing commas were written
// inside double quotes. A doubled quote inside a quoted field is a literal
// quote.
func SplitQuotedRow(line string) []string {
	var fields []string
	var sb strings.Builder
	inQuotes := false
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == '"':
			if inQuotes && i+1 < len(line) && line[i+1] == '"' {
				sb.WriteByte('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case c == ',' && !inQuotes:
			fields = append(fields, sb.String())
			sb.Reset()
		default:
			sb.WriteByte(c)
		}
	}
	fields = append(fields, sb.String())
	return fields
}

// JoinQuotedRow joins fields, quoting any field that contains a comma,
// quote or newline.
func JoinQuotedRow(fields []string) string {
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = quoteIfNeeded(f)
	}
	return strings.Join(quoted, ",")
}

func quoteIfNeeded(field string) string {
	if strings.ContainsAny(field, ",\"\n") {
		return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
	}
	return field
}
