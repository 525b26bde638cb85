// Package extract turns uploaded documents into plain text.
package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/DanRulev/vocadeck/internal/models"
	"github.com/ledongthuc/pdf"
	"golang.org/x/text/encoding/charmap"
)

type Format string

const (
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
	FormatTXT  Format = "txt"
)

const (
	mimePDF  = "application/pdf"
	mimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

type Document struct {
	Name     string
	MIMEType string
	Data     []byte
}

// DetectFormat picks the format from the file extension, then the MIME type.
// Anything unrecognised is read as plain text only if it is declared as text.
func DetectFormat(name, mimeType string) (Format, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf":
		return FormatPDF, nil
	case ".docx":
		return FormatDOCX, nil
	case ".txt", ".text", ".md":
		return FormatTXT, nil
	}

	mimeType = strings.ToLower(strings.TrimSpace(mimeType))
	switch {
	case mimeType == mimePDF:
		return FormatPDF, nil
	case mimeType == mimeDOCX:
		return FormatDOCX, nil
	case strings.HasPrefix(mimeType, "text/"):
		return FormatTXT, nil
	}
	return "", fmt.Errorf("%w: %s", models.ErrUnsupportedFormat, name)
}

// Text extracts the raw text of doc.
func Text(doc Document) (string, error) {
	format, err := DetectFormat(doc.Name, doc.MIMEType)
	if err != nil {
		return "", err
	}

	var text string
	switch format {
	case FormatPDF:
		text, err = PDF(doc.Data)
	case FormatDOCX:
		text, err = DOCX(doc.Data)
	default:
		text, err = TXT(doc.Data)
	}
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", models.ErrExtraction, doc.Name, err)
	}
	return text, nil
}

func PDF(data []byte) (text string, err error) {
	// the pdf reader panics on some malformed object streams
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("read pdf: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		if content != "" {
			sb.WriteString(content)
			sb.WriteString("\n")
		}
	}
	return sb.String(), nil
}

// DOCX reads word/document.xml and joins the <w:t> runs, one line per paragraph.
func DOCX(data []byte) (string, error) {
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open docx: %w", err)
	}

	var docFile *zip.File
	for _, f := range r.File {
		if f.Name == "word/document.xml" {
			docFile = f
			break
		}
	}
	if docFile == nil {
		return "", fmt.Errorf("word/document.xml not found")
	}

	rc, err := docFile.Open()
	if err != nil {
		return "", err
	}
	defer rc.Close()

	var (
		sb   strings.Builder
		line strings.Builder
	)
	decoder := xml.NewDecoder(rc)
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("parse document.xml: %w", err)
		}
		switch se := tok.(type) {
		case xml.StartElement:
			if se.Name.Local == "t" {
				var text string
				if err := decoder.DecodeElement(&text, &se); err == nil {
					line.WriteString(text)
				}
			}
		case xml.EndElement:
			if se.Name.Local == "p" && line.Len() > 0 {
				sb.WriteString(line.String())
				sb.WriteString("\n")
				line.Reset()
			}
		}
	}
	if line.Len() > 0 {
		sb.WriteString(line.String())
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

// TXT decodes UTF-8 and falls back to Latin-1 when the bytes are not valid UTF-8.
func TXT(data []byte) (string, error) {
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))
	if utf8.Valid(data) {
		return string(data), nil
	}
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("decode latin-1: %w", err)
	}
	return string(decoded), nil
}
