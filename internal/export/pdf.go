package export

import (
	"bytes"
	"context"
	"fmt"

	"github.com/go-pdf/fpdf"

	"slidecraft/internal/slides"
)

// One landscape A4 page per slide: title, bullets, and the slide image on
// the right half when available.
func (e *Exporter) exportPDF(ctx context.Context, deck *slides.Deck) ([]byte, error) {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetTitle(deck.Topic, true)

	for _, slide := range deck.Slides {
		pdf.AddPage()

		pdf.SetFont("Helvetica", "B", 28)
		pdf.SetTextColor(30, 30, 30)
		pdf.MultiCell(0, 14, slide.Title, "", "L", false)
		pdf.Ln(4)

		pdf.SetFont("Helvetica", "", 14)
		pdf.SetTextColor(60, 60, 60)
		for _, bullet := range slide.Bullets {
			pdf.MultiCell(140, 8, "- "+bullet, "", "L", false)
			pdf.Ln(2)
		}

		if data := e.fetchImage(ctx, slide.Image); data != nil {
			e.placePDFImage(pdf, slide.ID, data)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (e *Exporter) placePDFImage(pdf *fpdf.Fpdf, slideID int, data []byte) {
	imgType := detectImageType(data)
	if imgType == "" {
		return
	}

	name := fmt.Sprintf("slide-%d", slideID)
	opts := fpdf.ImageOptions{ImageType: imgType, ReadDpi: true}
	pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(data))
	if pdf.Err() {
		return
	}
	pdf.ImageOptions(name, 170, 60, 110, 0, false, opts, 0, "")
}
