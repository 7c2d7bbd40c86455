// services/sheets_service.go
package services

import (
	"context"
	"time"

	"aiva-backend/config"
	"aiva-backend/models"

	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

const (
	bookingsSheetRange    = "Sheet1!A1"
	techniciansSheetRange = "Technicians_Sheet!A1"
)

// SheetsExporter mirrors bookings and technician signups into a Google
// spreadsheet. Export is fire-and-forget: failures are logged, never
// surfaced to the client.
type SheetsExporter struct {
	srv     *sheets.Service
	sheetID string
}

// Sheets is nil when GOOGLE_CREDENTIALS_FILE / SHEET_ID are not configured;
// callers must check before exporting.
var Sheets *SheetsExporter

// InitSheets wires the global exporter from configuration. Returns without
// error when the integration is not configured.
func InitSheets(ctx context.Context) error {
	if config.C.GoogleCredentialsFile == "" || config.C.SheetID == "" {
		log.Info().Msg("sheets export disabled, no credentials configured")
		return nil
	}

	srv, err := sheets.NewService(ctx, option.WithCredentialsFile(config.C.GoogleCredentialsFile))
	if err != nil {
		return err
	}
	Sheets = &SheetsExporter{srv: srv, sheetID: config.C.SheetID}
	log.Info().Str("sheet_id", config.C.SheetID).Msg("sheets export enabled")
	return nil
}

func (e *SheetsExporter) append(sheetRange string, row []interface{}) {
	_, err := e.srv.Spreadsheets.Values.
		Append(e.sheetID, sheetRange, &sheets.ValueRange{Values: [][]interface{}{row}}).
		ValueInputOption("USER_ENTERED").
		Do()
	if err != nil {
		log.Error().Err(err).Str("range", sheetRange).Msg("sheets append failed")
	}
}

// AppendBooking exports one booking row.
func (e *SheetsExporter) AppendBooking(technicianEmail, serviceName string, b *models.Booking) {
	e.append(bookingsSheetRange, []interface{}{
		technicianEmail,
		b.ClientName,
		serviceName,
		b.AppointmentDate,
		b.AppointmentTime,
		b.ClientEmail,
		b.Status,
	})
}

// AppendTechnician exports one signup row.
func (e *SheetsExporter) AppendTechnician(t *models.Technician) {
	e.append(techniciansSheetRange, []interface{}{
		t.FullName,
		t.Email,
		t.BusinessName,
		t.AssistantName,
		t.Country,
		t.City,
		t.Website,
		t.Tone,
		t.PaymentProvider,
		t.PayoutEmail,
		time.Now().Format("2006-01-02 15:04:05"),
	})
}
