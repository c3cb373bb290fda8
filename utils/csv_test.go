package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitRowKeepsEmptyFields(t *testing.T) {
	assert.Equal(t, []string{"a", "", "c", ""}, SplitRow("a,,c,"))
}

func TestJoinRow(t *testing.T) {
	assert.Equal(t, "a,b,c", JoinRow([]string{"a", "b", "c"}))
}

func TestQuotedRowRoundTrip(t *testing.T) {
	fields := []string{
		"SUP001",
		"Tan Trading, Sdn Bhd",
		`says "fresh" daily`,
		"plain",
		"",
	}
	row := JoinQuotedRow(fields)
	assert.Equal(t, fields, SplitQuotedRow(row))
}

func TestSplitQuotedRowEscapedQuote(t *testing.T) {
	got := SplitQuotedRow(`"a ""b"" c",d`)
	assert.Equal(t, []string{`a "b" c`, "d"}, got)
}

func TestJoinQuotedRowOnlyQuotesWhenNeeded(t *testing.T) {
	assert.Equal(t, `plain,"with,comma"`, JoinQuotedRow([]string{"plain", "with,comma"}))
}
