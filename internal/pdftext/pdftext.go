package pdftext

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"

	"brokerdocs/internal/services"
	"brokerdocs/internal/textutil"
)

// Extractor reads the plain text of the leading pages of a PDF.
type Extractor struct {
	maxPages int
}

// New returns an extractor reading at most maxPages pages. Values below one
// read a single page.
func New(maxPages int) *Extractor {
	if maxPages < 1 {
		maxPages = 1
	}
	return &Extractor{maxPages: maxPages}
}

// ExtractText returns the NFC-normalized text of the first pages of path.
// Malformed files yield an error rather than a panic.
func (e *Extractor) ExtractText(ctx context.Context, path string) (text string, err error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = services.Wrap(services.ErrValidation, "pdftext", "parse", path, fmt.Errorf("malformed pdf: %v", r))
		}
	}()

	file, err := os.Open(path)
	if err != nil {
		return "", services.Wrap(services.ErrFilesystem, "pdftext", "open", path, err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return "", services.Wrap(services.ErrFilesystem, "pdftext", "stat", path, err)
	}

	reader, err := pdf.NewReader(file, info.Size())
	if err != nil {
		return "", services.Wrap(services.ErrValidation, "pdftext", "parse", path, err)
	}

	pages := reader.NumPage()
	if pages > e.maxPages {
		pages = e.maxPages
	}

	var b strings.Builder
	fonts := make(map[string]*pdf.Font)
	for i := 1; i <= pages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		for _, name := range page.Fonts() {
			if _, ok := fonts[name]; !ok {
				f := page.Font(name)
				fonts[name] = &f
			}
		}
		content, err := page.GetPlainText(fonts)
		if err != nil {
			return "", services.Wrap(services.ErrValidation, "pdftext", "page text", fmt.Sprintf("%s page %d", path, i), err)
		}
		b.WriteString(content)
		b.WriteByte('\n')
	}

	return textutil.NFC(b.String()), nil
}
