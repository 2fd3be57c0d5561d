package extraction

import (
	"bytes"
	"strings"

	"github.com/ledongthuc/pdf"
)

// pdfText extracts plain text from PDF bytes, one page at a time, joined by
// newlines in page order. Pages that fail to decode are skipped rather than
// failing the whole document.
func pdfText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	var pages []string
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		pages = append(pages, text)
	}

	return strings.Join(pages, "\n"), nil
}
