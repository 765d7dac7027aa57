package document

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/skip2/go-qrcode"

	"github.com/srgjo27/ticketing_client/internal/core/domain"
)

const (
	pdfQRSize    = 512
	dateLayout   = "Monday 02 January 2006, 15:04"
	marginMM     = 12.0
	qrWidthMM    = 70.0
	bodyFontSize = 11.0
)

// Renderer draws tickets as QR PNG images and printable PDF pages.
type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (r *Renderer) RenderQR(ticket *domain.Ticket, size int) ([]byte, error) {
	if ticket == nil || ticket.QRPayload == "" {
		return nil, domain.ErrTicketUnavailable
	}

	return qrcode.Encode(ticket.QRPayload, qrcode.Medium, size)
}

// RenderPDF lays out one A5 page: event title, date, location,
// description, holder name and the QR code.
func (r *Renderer) RenderPDF(ticket *domain.Ticket) ([]byte, error) {
	png, err := r.RenderQR(ticket, pdfQRSize)
	if err != nil {
		return nil, err
	}

	pdf := fpdf.New("P", "mm", "A5", "")
	pdf.SetTitle(ticket.Title, true)
	pdf.SetMargins(marginMM, marginMM, marginMM)
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pageWidth, _ := pdf.GetPageSize()
	contentWidth := pageWidth - 2*marginMM

	pdf.SetFont("Helvetica", "B", 18)
	pdf.MultiCell(contentWidth, 9, tr(ticket.Title), "", "C", false)
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", bodyFontSize)
	if !ticket.Date.IsZero() {
		pdf.MultiCell(contentWidth, 6, tr(ticket.Date.Format(dateLayout)), "", "C", false)
	}
	if ticket.Localisation != "" {
		pdf.MultiCell(contentWidth, 6, tr(ticket.Localisation), "", "C", false)
	}
	pdf.Ln(4)

	if ticket.Description != "" {
		pdf.SetFont("Helvetica", "I", bodyFontSize)
		pdf.MultiCell(contentWidth, 5, tr(ticket.Description), "", "L", false)
		pdf.Ln(4)
	}

	pdf.SetFont("Helvetica", "B", bodyFontSize)
	pdf.MultiCell(contentWidth, 6, tr(fmt.Sprintf("Nom : %s", ticket.HolderName)), "", "L", false)
	pdf.SetFont("Helvetica", "", bodyFontSize)
	pdf.MultiCell(contentWidth, 6, tr(ticket.Admission), "", "L", false)
	pdf.Ln(6)

	imageName := "qr-" + string(ticket.ReservationID)
	options := fpdf.ImageOptions{ImageType: "PNG", ReadDpi: false}
	pdf.RegisterImageOptionsReader(imageName, options, bytes.NewReader(png))
	pdf.ImageOptions(imageName, (pageWidth-qrWidthMM)/2, pdf.GetY(), qrWidthMM, qrWidthMM, false, options, 0, "")

	pdf.SetY(pdf.GetY() + qrWidthMM + 4)
	pdf.SetFont("Helvetica", "", 9)
	pdf.MultiCell(contentWidth, 5, tr(fmt.Sprintf("Réservation n° %s", ticket.ReservationID)), "", "C", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
