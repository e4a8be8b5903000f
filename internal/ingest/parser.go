// Package ingest extracts plain text from the document formats a
// grader is likely to receive.
package ingest

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/h2non/filetype"
	"github.com/ledongthuc/pdf"
)

// Parsed is one document ready for scoring.
type Parsed struct {
	Title      string
	SourcePath string
	Text       string
}

// SupportedExt reports whether files with this extension can be parsed.
func SupportedExt(ext string) bool {
	switch strings.ToLower(ext) {
	case ".txt", ".md", ".docx", ".pdf":
		return true
	}
	return false
}

// ParseFile extracts text from the document at path. Files without a
// usable extension are sniffed by content.
func ParseFile(path string) (*Parsed, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if !SupportedExt(ext) {
		ext = sniffExt(raw)
	}

	var text string
	switch ext {
	case ".txt", ".md":
		text = string(raw)
	case ".docx":
		text, err = parseDOCX(raw)
		if err != nil {
			return nil, err
		}
	case ".pdf":
		text, err = parsePDF(path)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported file type: %s", filepath.Base(path))
	}

	title := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return &Parsed{
		Title:      title,
		SourcePath: path,
		Text:       normalizeWhitespace(text),
	}, nil
}

// sniffExt guesses a supported extension from file content. Word
// documents and PDFs carry magic bytes; anything else that holds
// valid UTF-8 is treated as plain text.
func sniffExt(raw []byte) string {
	kind, err := filetype.Match(raw)
	if err == nil && kind != filetype.Unknown {
		switch kind.Extension {
		case "docx":
			return ".docx"
		case "pdf":
			return ".pdf"
		}
	}
	if utf8.Valid(raw) {
		return ".txt"
	}
	return ""
}

func parseDOCX(raw []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		return "", fmt.Errorf("open docx archive: %w", err)
	}

	var doc *zip.File
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			doc = f
			break
		}
	}
	if doc == nil {
		return "", fmt.Errorf("word/document.xml not found")
	}

	rc, err := doc.Open()
	if err != nil {
		return "", fmt.Errorf("open document.xml: %w", err)
	}
	defer rc.Close()

	decoder := xml.NewDecoder(rc)
	var b strings.Builder
	inText := false
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("decode document.xml: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inText = true
			case "p":
				if b.Len() > 0 {
					b.WriteByte('\n')
				}
			}
		case xml.EndElement:
			if t.Name.Local == "t" {
				inText = false
			}
		case xml.CharData:
			if inText {
				b.Write(t)
			}
		}
	}
	return b.String(), nil
}

func parsePDF(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	var b strings.Builder
	total := r.NumPage()
	for i := 1; i <= total; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		content, pageErr := p.GetPlainText(nil)
		if pageErr != nil {
			continue
		}
		b.WriteString(content)
		b.WriteByte('\n')
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("no extractable text found in pdf")
	}
	return b.String(), nil
}

func normalizeWhitespace(text string) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, strings.Join(strings.Fields(line), " "))
	}
	return strings.Join(out, "\n")
}
