// Package extract converts uploaded binary documents into plain text.
package extract

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/atstailor/resume-tailor/internal/domain"
)

// Text extracts the concatenated textual content of a PDF document.
// Malformed input is reported as domain.ErrExtraction.
func Text(data []byte) (text string, err error) {
	// The parser panics on some malformed inputs; convert that into an
	// extraction error instead of taking the process down.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("%w: %v", domain.ErrExtraction, r)
		}
	}()

	if len(data) == 0 {
		return "", fmt.Errorf("%w: empty input", domain.ErrExtraction)
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrExtraction, err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(pageText)
	}
	return sb.String(), nil
}
