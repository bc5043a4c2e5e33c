// Package extract converts uploaded resume documents (PDF/DOCX) into plain
// text. It is purely structural: no interpretation of the content happens
// here, keyword matching is handled downstream.
package extract

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	pdf "github.com/ledongthuc/pdf"
)

var (
	// ErrUnsupportedFormat is returned when neither the file extension nor
	// the MIME type identifies a supported document format.
	ErrUnsupportedFormat = errors.New("unsupported document format: only pdf and docx are allowed")
	// ErrCorruptDocument is returned when the container itself cannot be
	// parsed. Callers can distinguish "no skills found" from "could not read
	// the document" through it.
	ErrCorruptDocument = errors.New("document cannot be parsed")
)

const (
	mimePDF  = "application/pdf"
	mimeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// Text extracts plain text from a resume file. The format is detected from
// the filename extension first, then from the MIME type.
func Text(filename, mimeType string, data []byte) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return pdfText(data)
	case ".docx":
		return docxText(data)
	}
	switch mimeType {
	case mimePDF:
		return pdfText(data)
	case mimeDocx:
		return docxText(data)
	}
	return "", ErrUnsupportedFormat
}

func pdfText(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCorruptDocument, err)
	}
	rs, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCorruptDocument, err)
	}
	var buf bytes.Buffer
	if _, err = io.Copy(&buf, rs); err != nil {
		return "", fmt.Errorf("%w: %v", ErrCorruptDocument, err)
	}
	return collapseWhitespace(buf.String()), nil
}

func docxText(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCorruptDocument, err)
	}
	var docXML []byte
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			rc, err := f.Open()
			if err != nil {
				return "", fmt.Errorf("%w: %v", ErrCorruptDocument, err)
			}
			docXML, err = io.ReadAll(rc)
			rc.Close()
			if err != nil {
				return "", fmt.Errorf("%w: %v", ErrCorruptDocument, err)
			}
			break
		}
	}
	if len(docXML) == 0 {
		return "", fmt.Errorf("%w: no word/document.xml in archive", ErrCorruptDocument)
	}
	xml := string(docXML)
	// Paragraph ends become newlines, tabs stay tabs, every other tag is
	// stripped. Naive, but resumes only need readable running text.
	xml = strings.ReplaceAll(xml, "</w:p>", "\n")
	xml = strings.ReplaceAll(xml, "<w:tab/>", "\t")
	reTags := regexp.MustCompile(`<[^>]+>`)
	return collapseWhitespace(reTags.ReplaceAllString(xml, " ")), nil
}

var (
	reBlank    = regexp.MustCompile(`[ \t\r\f\v]+`)
	reNewlines = regexp.MustCompile(`\n+`)
)

func collapseWhitespace(s string) string {
	s = strings.ReplaceAll(s, "\u00A0", " ")
	s = reBlank.ReplaceAllString(s, " ")
	s = reNewlines.ReplaceAllString(s, "\n")
	return strings.TrimSpace(s)
}
