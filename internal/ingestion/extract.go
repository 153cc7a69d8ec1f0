// Package ingestion converts uploaded resume documents into plain text.
package ingestion

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
	"go.uber.org/zap"

	"github.com/jonathan/resume-screener/internal/types"
)

// Extractor turns raw document bytes into plain text. Parse failures are
// logged and degrade to empty text; the caller always gets a string back.
type Extractor struct {
	logger *zap.Logger
}

// NewExtractor creates an Extractor. A nil logger disables logging.
func NewExtractor(logger *zap.Logger) *Extractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Extractor{logger: logger}
}

// ExtractText extracts plain text from a document of the given format.
// Unknown formats and unparseable documents both yield "": callers cannot
// tell an empty document from a rejected one by the text alone.
func (e *Extractor) ExtractText(data []byte, format types.DocumentFormat) string {
	var (
		text string
		err  error
	)

	switch format {
	case types.FormatPDF:
		text, err = extractPDF(data)
	case types.FormatDOCX:
		text, err = extractDOCX(data)
	default:
		return ""
	}

	if err != nil {
		e.logger.Warn("document text extraction failed",
			zap.String("format", string(format)),
			zap.Int("size_bytes", len(data)),
			zap.Error(err))
		return ""
	}
	return text
}

// extractPDF concatenates the plain text of every page in page order.
// The pdf library panics on some malformed files, so parse failures are
// recovered into an error here.
func extractPDF(data []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("pdf parse panic: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
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

// extractDOCX concatenates the text of every paragraph, each followed by a
// newline.
func extractDOCX(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	return paragraphsToText(doc.Editable().GetContent()), nil
}
