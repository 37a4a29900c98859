package export_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/letteragent/letteragent/pkg/export"
)

const sampleLetter = "Dana Smith\n\nDear Committee,\n\nLine one.\nLine two.\n\nSincerely,\nDana"

func TestPrintHTML(t *testing.T) {
	doc := export.PrintHTML(sampleLetter)

	t.Run("LetterEmbeddedInPre", func(t *testing.T) {
		assert.Contains(t, doc, "<pre>"+sampleLetter+"</pre>")
	})

	t.Run("PrintCSSPresent", func(t *testing.T) {
		assert.Contains(t, doc, "size: A4;")
		assert.Contains(t, doc, "margin: 2cm;")
		assert.Contains(t, doc, "'Times New Roman', Times, serif")
		assert.Contains(t, doc, "white-space: pre-wrap;")
	})

	t.Run("MarkupEscaped", func(t *testing.T) {
		doc := export.PrintHTML("a <b> & 'c'")
		assert.Contains(t, doc, "a &lt;b&gt; &amp;")
		assert.NotContains(t, doc, "<pre>a <b>")
	})
}

func TestWordDoc(t *testing.T) {
	doc := export.WordDoc(sampleLetter)

	t.Run("StartsWithBOM", func(t *testing.T) {
		assert.True(t, strings.HasPrefix(string(doc), "\ufeff"))
	})

	t.Run("OfficeNamespacesPresent", func(t *testing.T) {
		assert.Contains(t, string(doc), "urn:schemas-microsoft-com:office:word")
		assert.Contains(t, string(doc), "urn:schemas-microsoft-com:office:office")
	})

	t.Run("LetterEmbeddedVerbatim", func(t *testing.T) {
		assert.Contains(t, string(doc), "<pre>"+sampleLetter+"</pre>")
	})
}

func TestWriteHTML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "letter.html")
	require.NoError(t, export.WriteHTML(path, sampleLetter))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, export.PrintHTML(sampleLetter), string(data))
}

func TestWriteDoc(t *testing.T) {
	path := filepath.Join(t.TempDir(), "letter.doc")
	require.NoError(t, export.WriteDoc(path, sampleLetter))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, export.WordDoc(sampleLetter), data)
}
