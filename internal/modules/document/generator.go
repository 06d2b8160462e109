// Package document renders approved submissions into downloadable PDF
// brochures. The admin module triggers rendering after an approval; the
// resulting URL is attached to the submission once the file is on disk.
package document

import (
	"fmt"
	"os"
	"path/filepath"

	"tripdesk/internal/domain"

	"github.com/phpdave11/gofpdf"
)

// Generator produces a fetchable document for a decided submission and
// returns its public URL.
type Generator interface {
	Generate(sub *domain.Submission) (string, error)
}

// PDFGenerator renders brochures with gofpdf into docsDir. Files are named
// by submission ID so regeneration overwrites instead of accumulating.
type PDFGenerator struct {
	docsDir       string
	publicBaseURL string
}

func NewPDFGenerator(docsDir, publicBaseURL string) *PDFGenerator {
	return &PDFGenerator{docsDir: docsDir, publicBaseURL: publicBaseURL}
}

func (g *PDFGenerator) Generate(sub *domain.Submission) (string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	switch sub.Kind {
	case domain.KindItinerary:
		draft, err := sub.Itinerary()
		if err != nil {
			return "", err
		}
		renderItinerary(pdf, draft)
	case domain.KindBooking:
		booking, err := sub.Booking()
		if err != nil {
			return "", err
		}
		renderBooking(pdf, booking)
	default:
		return "", fmt.Errorf("unknown submission kind %q", sub.Kind)
	}

	if err := os.MkdirAll(g.docsDir, 0o755); err != nil {
		return "", err
	}

	path := filepath.Join(g.docsDir, sub.ID+".pdf")
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", err
	}

	return g.publicBaseURL + "/static/docs/" + sub.ID + ".pdf", nil
}

func renderItinerary(pdf *gofpdf.Fpdf, d *domain.ItineraryDraft) {
	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(0, 12, fmt.Sprintf("%s Itinerary", orDefault(d.Destination, "Travel")))
	pdf.Ln(14)

	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 8, fmt.Sprintf("Guest: %s", d.GuestName))
	pdf.Ln(6)
	pdf.Cell(0, 8, fmt.Sprintf("Start: %s    Duration: %d nights", d.StartDate, d.Duration))
	pdf.Ln(6)
	pdf.Cell(0, 8, fmt.Sprintf("Pax: %d adults, %d children, %d infants", d.Adults, d.Children, d.Infants))
	pdf.Ln(6)
	if d.TripID != "" {
		pdf.Cell(0, 8, fmt.Sprintf("Trip ID: %s", d.TripID))
		pdf.Ln(6)
	}
	if d.QuotePrice > 0 {
		pdf.Cell(0, 8, fmt.Sprintf("Quote: %.2f  %s", d.QuotePrice, d.PaymentNote))
		pdf.Ln(6)
	}
	pdf.Ln(4)

	sectionTitle(pdf, "Day-by-Day Plan")
	for _, day := range d.Days {
		pdf.SetFont("Arial", "B", 12)
		pdf.Cell(0, 8, fmt.Sprintf("Day %d - %s", day.DayNumber, day.Title))
		pdf.Ln(7)
		pdf.SetFont("Arial", "", 10)
		if day.Date != "" {
			pdf.Cell(0, 6, day.Date)
			pdf.Ln(5)
		}
		pdf.MultiCell(0, 5, day.Description, "", "L", false)
		if day.TicketInclusion != "" {
			pdf.MultiCell(0, 5, "Tickets: "+day.TicketInclusion, "", "L", false)
		}
		pdf.Ln(3)
	}

	sectionTitle(pdf, "Accommodation")
	for _, night := range d.Hotels {
		pdf.SetFont("Arial", "", 10)
		pdf.MultiCell(0, 5, fmt.Sprintf(
			"Night %d - %s, %s (%s). Check-in %s, %s, %d room(s), %s, %s",
			night.NightNumber, night.Name, night.Location, night.StarRating,
			night.CheckInDate, night.RoomType, night.NumberOfRooms,
			night.PaxDistribution, night.MealPlan,
		), "", "L", false)
		pdf.Ln(2)
	}

	if len(d.Transportation) > 0 {
		sectionTitle(pdf, "Transportation")
		for _, tr := range d.Transportation {
			pdf.SetFont("Arial", "", 10)
			line := fmt.Sprintf("%s: %s", tr.Day, tr.ServiceDescription)
			if tr.VehicleType != "" {
				line += " (" + tr.VehicleType + ")"
			}
			if tr.FerryDetails != "" {
				line += " Ferry: " + tr.FerryDetails
			}
			pdf.MultiCell(0, 5, line, "", "L", false)
		}
		pdf.Ln(3)
	}

	if len(d.Activities) > 0 {
		sectionTitle(pdf, "Optional Activities")
		for _, a := range d.Activities {
			pdf.SetFont("Arial", "", 10)
			pdf.MultiCell(0, 5, fmt.Sprintf("%s - %.2f per person. %s", a.ActivityName, a.PricePerPerson, a.Note), "", "L", false)
		}
		pdf.Ln(3)
	}

	renderInclusionSets(pdf, d.Inclusions, d.Exclusions)

	if d.Consultant.Name != "" || d.Consultant.Phone != "" || d.Consultant.Email != "" {
		sectionTitle(pdf, "Your Travel Consultant")
		pdf.SetFont("Arial", "", 10)
		pdf.MultiCell(0, 5, fmt.Sprintf("%s  %s  %s", d.Consultant.Name, d.Consultant.Phone, d.Consultant.Email), "", "L", false)
	}
}

func renderBooking(pdf *gofpdf.Fpdf, b *domain.BookingForm) {
	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(0, 12, "Booking Estimate")
	pdf.Ln(14)

	pdf.SetFont("Arial", "", 10)
	for name, value := range b.Fields {
		pdf.Cell(0, 6, fmt.Sprintf("%s: %v", name, value))
		pdf.Ln(5)
	}
	pdf.Ln(4)

	sectionTitle(pdf, "Day-by-Day Plan")
	for _, day := range b.Days {
		pdf.SetFont("Arial", "B", 12)
		pdf.Cell(0, 8, fmt.Sprintf("Day %d - %s", day.DayNumber, day.Title))
		pdf.Ln(7)
		pdf.SetFont("Arial", "", 10)
		pdf.MultiCell(0, 5, day.Description, "", "L", false)
		pdf.Ln(2)
	}

	sectionTitle(pdf, "Hotel Options")
	for _, opt := range b.HotelOptions {
		pdf.SetFont("Arial", "", 10)
		pdf.MultiCell(0, 5, fmt.Sprintf(
			"%s (%s) - %.2f per person, %.2f per child",
			opt.Name, opt.Category, opt.PackageCostPerPerson, opt.PackageCostPerChild,
		), "", "L", false)
	}
	pdf.Ln(3)

	renderInclusionSets(pdf, b.Inclusions, b.Exclusions)
}

func renderInclusionSets(pdf *gofpdf.Fpdf, inclusions, exclusions domain.InclusionSet) {
	sectionTitle(pdf, "Inclusions")
	pdf.SetFont("Arial", "", 10)
	for _, item := range inclusions.Selected {
		pdf.Cell(0, 5, "- "+item)
		pdf.Ln(5)
	}
	if inclusions.CustomNote != "" {
		pdf.MultiCell(0, 5, inclusions.CustomNote, "", "L", false)
	}
	pdf.Ln(3)

	if len(exclusions.Selected) > 0 || exclusions.CustomNote != "" {
		sectionTitle(pdf, "Exclusions")
		pdf.SetFont("Arial", "", 10)
		for _, item := range exclusions.Selected {
			pdf.Cell(0, 5, "- "+item)
			pdf.Ln(5)
		}
		if exclusions.CustomNote != "" {
			pdf.MultiCell(0, 5, exclusions.CustomNote, "", "L", false)
		}
		pdf.Ln(3)
	}
}

func sectionTitle(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, title)
	pdf.Ln(10)
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
