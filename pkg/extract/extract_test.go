package extract

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildDocx(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(documentXML))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestText_UnsupportedFormat(t *testing.T) {
	_, err := Text("resume.txt", "text/plain", []byte("plain text"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = Text("resume", "", []byte("no extension, no mime"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestText_FormatFromMimeType(t *testing.T) {
	docx := buildDocx(t, `<w:document><w:body><w:p><w:r><w:t>Go developer</w:t></w:r></w:p></w:body></w:document>`)
	out, err := Text("upload", mimeDocx, docx)
	require.NoError(t, err)
	assert.Contains(t, out, "Go developer")
}

func TestText_CorruptPDF(t *testing.T) {
	_, err := Text("resume.pdf", mimePDF, []byte("definitely not a pdf"))
	assert.ErrorIs(t, err, ErrCorruptDocument)
}

func TestText_CorruptDocx(t *testing.T) {
	_, err := Text("resume.docx", mimeDocx, []byte("not a zip archive"))
	assert.ErrorIs(t, err, ErrCorruptDocument)
}

func TestText_DocxWithoutDocumentXML(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/styles.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte("<w:styles/>"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	_, err = Text("resume.docx", "", buf.Bytes())
	assert.ErrorIs(t, err, ErrCorruptDocument)
}

func TestText_DocxParagraphs(t *testing.T) {
	docx := buildDocx(t, `<w:document><w:body>`+
		`<w:p><w:r><w:t>Senior Go engineer</w:t></w:r></w:p>`+
		`<w:p><w:r><w:t>PostgreSQL</w:t></w:r><w:tab/><w:r><w:t>Docker</w:t></w:r></w:p>`+
		`</w:body></w:document>`)

	out, err := Text("resume.docx", "", docx)
	require.NoError(t, err)
	assert.Contains(t, out, "Senior Go engineer")
	assert.Contains(t, out, "PostgreSQL")
	assert.Contains(t, out, "Docker")
	// paragraph boundary survives as a newline
	assert.Contains(t, out, "\n")
}
