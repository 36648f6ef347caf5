package extract

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Media types accepted for upload.
const (
	MediaTypePDF  = "application/pdf"
	MediaTypeText = "text/plain"
)

var (
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrExtraction           = errors.New("could not extract document text")
)

// Extract converts raw uploaded bytes into plain text according to the
// declared media type. Plain text is decoded verbatim; PDF pages are
// concatenated in page order.
func Extract(content []byte, mediaType string) (string, error) {
	switch normalizeMediaType(mediaType) {
	case MediaTypePDF:
		return extractPDF(content)
	case MediaTypeText:
		return string(content), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedMediaType, mediaType)
	}
}

func normalizeMediaType(mt string) string {
	mt = strings.ToLower(strings.TrimSpace(mt))
	// strip parameters like "; charset=utf-8"
	if i := strings.IndexByte(mt, ';'); i >= 0 {
		mt = strings.TrimSpace(mt[:i])
	}
	return mt
}

func extractPDF(content []byte) (text string, err error) {
	// the pdf package panics on some malformed files
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrExtraction, r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrExtraction, err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("%w: page %d: %v", ErrExtraction, i, err)
		}
		sb.WriteString(pageText)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}
