package extract

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/DanRulev/vocadeck/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func docxBytes(t *testing.T, documentXML string) []byte {
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

func TestDetectFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		fileName string
		mimeType string
		want     Format
		wantErr  bool
	}{
		{name: "pdf by extension", fileName: "book.PDF", want: FormatPDF},
		{name: "docx by extension", fileName: "notes.docx", want: FormatDOCX},
		{name: "txt by extension", fileName: "words.txt", want: FormatTXT},
		{name: "pdf by mime", fileName: "upload", mimeType: "application/pdf", want: FormatPDF},
		{name: "docx by mime", fileName: "upload", mimeType: mimeDOCX, want: FormatDOCX},
		{name: "text mime", fileName: "upload", mimeType: "text/plain; charset=utf-8", want: FormatTXT},
		{name: "unsupported", fileName: "picture.png", mimeType: "image/png", wantErr: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := DetectFormat(tt.fileName, tt.mimeType)
			if tt.wantErr {
				require.ErrorIs(t, err, models.ErrUnsupportedFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestText(t *testing.T) {
	t.Parallel()

	docXML := `<?xml version="1.0" encoding="UTF-8"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:body>
<w:p><w:r><w:t>Привет </w:t></w:r><w:r><w:t>мир</w:t></w:r></w:p>
<w:p><w:r><w:t>学习中文</w:t></w:r></w:p>
</w:body>
</w:document>`

	tests := []struct {
		name    string
		doc     Document
		want    string
		wantErr error
	}{
		{
			name: "utf-8 text",
			doc:  Document{Name: "a.txt", Data: []byte("кот и собака")},
			want: "кот и собака",
		},
		{
			name: "utf-8 bom stripped",
			doc:  Document{Name: "a.txt", Data: append([]byte("\xef\xbb\xbf"), []byte("кот")...)},
			want: "кот",
		},
		{
			name: "latin-1 fallback",
			doc:  Document{Name: "a.txt", Data: []byte{'c', 'a', 'f', 0xe9}},
			want: "café",
		},
		{
			name: "docx paragraphs",
			doc:  Document{Name: "a.docx", Data: docxBytes(t, docXML)},
			want: "Привет мир\n学习中文\n",
		},
		{
			name:    "docx without document.xml",
			doc:     Document{Name: "a.docx", Data: docxBytesWithout(t)},
			wantErr: models.ErrExtraction,
		},
		{
			name:    "broken pdf",
			doc:     Document{Name: "a.pdf", Data: []byte("not a pdf")},
			wantErr: models.ErrExtraction,
		},
		{
			name:    "unsupported format",
			doc:     Document{Name: "a.png", MIMEType: "image/png"},
			wantErr: models.ErrUnsupportedFormat,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Text(tt.doc)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func docxBytesWithout(t *testing.T) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/styles.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte("<styles/>"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}
