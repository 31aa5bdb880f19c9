package classify

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dwomick/adoc-mode/internal/config"
)

func writeDoc(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.adoc")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRunClassify_Table(t *testing.T) {
	path := writeDoc(t, "== Section\n\n* item one\n")

	var buf bytes.Buffer
	opts := &classifyOptions{file: path, end: -1, output: "table", noColor: true, writer: &buf}
	require.NoError(t, runClassify(opts, config.Default()))

	out := buf.String()
	assert.Contains(t, out, "title1")
	assert.Contains(t, out, "list-marker")
	assert.Contains(t, out, "Section")
}

func TestRunClassify_JSON(t *testing.T) {
	path := writeDoc(t, "= Doc\n")

	var buf bytes.Buffer
	opts := &classifyOptions{file: path, end: -1, output: "json", noColor: true, writer: &buf}
	require.NoError(t, runClassify(opts, config.Default()))

	var records []map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &records))
	require.NotEmpty(t, records)
	assert.Equal(t, "Doc", records[len(records)-1]["text"])
}

func TestRunClassify_HonorsExplicitConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := config.Default()
	cfg.TitleMaxLevel = 0
	cfgPath := filepath.Join(t.TempDir(), "custom.yml")
	require.NoError(t, cfg.Save(cfgPath))

	path := writeDoc(t, "== Section\n\n* item one\n")

	var buf bytes.Buffer
	opts := &classifyOptions{file: path, end: -1, configPath: cfgPath,
		output: "table", noColor: true, writer: &buf}
	require.NoError(t, runClassify(opts, nil))

	// Level 1 headings are beyond the configured maximum; the default
	// config at the XDG path would have recognized them.
	out := buf.String()
	assert.NotContains(t, out, "title1")
	assert.Contains(t, out, "list-marker")
}

func TestRunClassify_Region(t *testing.T) {
	path := writeDoc(t, "== One\n== Two\n")

	var buf bytes.Buffer
	opts := &classifyOptions{file: path, start: 0, end: 7, output: "table", noColor: true, writer: &buf}
	require.NoError(t, runClassify(opts, config.Default()))

	out := buf.String()
	assert.Contains(t, out, "One")
	assert.NotContains(t, out, "Two")
}

func TestRunClassify_RegionOutOfBounds(t *testing.T) {
	path := writeDoc(t, "short\n")

	opts := &classifyOptions{file: path, start: 0, end: 999, output: "table", noColor: true}
	require.Error(t, runClassify(opts, config.Default()))
}

func TestRunClassify_Source(t *testing.T) {
	doc := "== Section\n\ntext with **bold** words\n"
	path := writeDoc(t, doc)

	var buf bytes.Buffer
	opts := &classifyOptions{file: path, end: -1, source: true, output: "table", noColor: true, writer: &buf}
	require.NoError(t, runClassify(opts, config.Default()))

	// Styled source preserves the document bytes when colors are off.
	assert.Equal(t, doc, buf.String())
}

func TestRunClassify_MissingFile(t *testing.T) {
	opts := &classifyOptions{file: "/nonexistent/doc.adoc", end: -1, output: "table", noColor: true}
	require.Error(t, runClassify(opts, config.Default()))
}

func TestRunClassify_BadFormat(t *testing.T) {
	opts := &classifyOptions{output: "yaml"}
	require.Error(t, runClassify(opts, config.Default()))
}

func TestRunClassify_InvalidConfig(t *testing.T) {
	path := writeDoc(t, "text\n")
	cfg := config.Default()
	cfg.TitleMaxLevel = 9

	opts := &classifyOptions{file: path, end: -1, output: "table", noColor: true}
	require.Error(t, runClassify(opts, cfg))
}
