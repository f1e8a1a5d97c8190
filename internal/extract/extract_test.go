package extract

import (
	"archive/zip"
	"bytes"
	"strings"
	"testing"
)

func buildDocx(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if _, err := w.Write([]byte(documentXML)); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

const sampleDocumentXML = `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Senior engineer with Python and React experience.</w:t></w:r></w:p>
    <w:p><w:r><w:t>Built data pipelines.</w:t></w:r></w:p>
  </w:body>
</w:document>`

func TestTextExtractsDocx(t *testing.T) {
	data := buildDocx(t, sampleDocumentXML)

	text, err := Extractor{}.Text(data, "application/vnd.openxmlformats-officedocument.wordprocessingml.document", "cv.docx")
	if err != nil {
		t.Fatalf("Text: %v", err)
	}
	if !strings.Contains(text, "Python and React") {
		t.Fatalf("missing body text: %q", text)
	}
	if !strings.Contains(text, "\n") {
		t.Fatalf("expected paragraph break: %q", text)
	}
}

func TestTextDetectsDocxFromZipPayload(t *testing.T) {
	data := buildDocx(t, sampleDocumentXML)

	// Browsers sometimes report DOCX uploads as generic zip.
	text, err := Extractor{}.Text(data, "application/zip", "cv.docx")
	if err != nil {
		t.Fatalf("Text: %v", err)
	}
	if !strings.Contains(text, "data pipelines") {
		t.Fatalf("missing body text: %q", text)
	}
}

func TestTextFallsBackToExtension(t *testing.T) {
	data := buildDocx(t, sampleDocumentXML)

	if _, err := (Extractor{}).Text(data, "application/octet-stream", "cv.docx"); err != nil {
		t.Fatalf("Text: %v", err)
	}
}

func TestTextRejectsUnsupportedType(t *testing.T) {
	if _, err := (Extractor{}).Text([]byte("hello"), "text/plain", "cv.txt"); err == nil {
		t.Fatalf("expected error for unsupported type")
	}
}

func TestTextRejectsEmptyPayload(t *testing.T) {
	if _, err := (Extractor{}).Text(nil, "application/pdf", "cv.pdf"); err == nil {
		t.Fatalf("expected error for empty payload")
	}
}

func TestTextRejectsZipWithoutDocument(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/other.xml")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if _, err := w.Write([]byte("<x/>")); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}

	if _, err := (Extractor{}).Text(buf.Bytes(), "application/vnd.openxmlformats-officedocument.wordprocessingml.document", "cv.docx"); err == nil {
		t.Fatalf("expected error when document.xml is missing")
	}
}
