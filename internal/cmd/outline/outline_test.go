package outline

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dwomick/adoc-mode/internal/config"
	"github.com/dwomick/adoc-mode/pkg/adoc"
)

const sampleDoc = "= Manual\n\nintro text\n\n== Install\n\nSetup\n-----\n\n=== Linux\n\nmore text\n"

func writeDoc(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.adoc")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestCollect_FindsAllKinds(t *testing.T) {
	entries := collect(sampleDoc, adoc.DefaultGrammar(), -1)

	require.Len(t, entries, 4)
	assert.Equal(t, entry{Level: 0, Line: 1, Text: "Manual", Kind: "one-line"}, entries[0])
	assert.Equal(t, entry{Level: 1, Line: 5, Text: "Install", Kind: "one-line"}, entries[1])
	assert.Equal(t, entry{Level: 1, Line: 7, Text: "Setup", Kind: "two-line"}, entries[2])
	assert.Equal(t, entry{Level: 2, Line: 10, Text: "Linux", Kind: "one-line"}, entries[3])
}

func TestCollect_UnderlineNotReportedTwice(t *testing.T) {
	// The underline line of a two-line title must not count as a heading
	// or a delimiter line of its own.
	entries := collect("Setup\n-----\n", adoc.DefaultGrammar(), -1)
	require.Len(t, entries, 1)
	assert.Equal(t, "Setup", entries[0].Text)
}

func TestCollect_MaxLevelFilters(t *testing.T) {
	entries := collect(sampleDoc, adoc.DefaultGrammar(), 1)
	require.Len(t, entries, 3)
	for _, e := range entries {
		assert.LessOrEqual(t, e.Level, 1)
	}
}

func TestCollect_NoHeadings(t *testing.T) {
	assert.Empty(t, collect("plain text\nmore text\n", adoc.DefaultGrammar(), -1))
}

func TestRunOutline_Indented(t *testing.T) {
	var buf bytes.Buffer
	path := writeDoc(t, sampleDoc)
	opts := &outlineOptions{file: path, maxLevel: -1, output: "table", noColor: true, writer: &buf}
	require.NoError(t, runOutline(opts, config.Default()))

	out := buf.String()
	assert.Contains(t, out, "Manual\n")
	assert.Contains(t, out, "  Install\n")
	assert.Contains(t, out, "    Linux\n")
}

func TestRunOutline_JSON(t *testing.T) {
	var buf bytes.Buffer
	path := writeDoc(t, sampleDoc)
	opts := &outlineOptions{file: path, maxLevel: -1, output: "json", noColor: true, writer: &buf}
	require.NoError(t, runOutline(opts, config.Default()))

	var entries []entry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entries))
	assert.Len(t, entries, 4)
}

func TestRunOutline_Empty(t *testing.T) {
	var buf bytes.Buffer
	path := writeDoc(t, "nothing here\n")
	opts := &outlineOptions{file: path, maxLevel: -1, output: "table", noColor: true, writer: &buf}
	require.NoError(t, runOutline(opts, config.Default()))
	assert.Contains(t, buf.String(), "No headings")
}

func TestRunOutline_BadFormat(t *testing.T) {
	opts := &outlineOptions{output: "yaml"}
	require.Error(t, runOutline(opts, config.Default()))
}
