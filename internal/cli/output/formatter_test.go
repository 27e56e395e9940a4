package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opsdesk/rosterdiff/pkg/report"
)

func TestNewFormatter(t *testing.T) {
	tests := []struct {
		format Format
		want   any
	}{
		{FormatJSON, &JSONFormatter{}},
		{FormatYAML, &YAMLFormatter{}},
		{FormatTable, &TableFormatter{}},
		{Format("bogus"), &TableFormatter{}},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			assert.IsType(t, tt.want, NewFormatter(tt.format))
		})
	}
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := &JSONFormatter{Indent: "  "}
	data := FromReport(report.ReconciliationHeader(), []report.Row{
		{"platform", "a@example.com", "", "Created", ""},
	})

	require.NoError(t, f.Format(&buf, data))

	var decoded Data
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, data.Headers, decoded.Headers)
	assert.Equal(t, data.Rows, decoded.Rows)
}

func TestYAMLFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := &YAMLFormatter{}
	require.NoError(t, f.Format(&buf, Data{Headers: []string{"Team"}, Rows: [][]string{{"platform"}}}))
	assert.Contains(t, buf.String(), "headers:")
	assert.Contains(t, buf.String(), "platform")
}

func TestTableFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := &TableFormatter{}
	data := FromReport(report.DuplicateCheckHeader(), []report.Row{
		{"platform", "a@example.com", "b@example.com", "Duplicate", "3回出現"},
	})

	require.NoError(t, f.Format(&buf, data))
	assert.Contains(t, buf.String(), "platform")
	assert.Contains(t, buf.String(), "3回出現")
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"table", FormatTable, false},
		{"JSON", FormatJSON, false},
		{"yaml", FormatYAML, false},
		{"", Format(""), false},
		{"xml", "", true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}
