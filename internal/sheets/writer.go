package sheets

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/censodigital/censo_registro_bot/internal/registration"
)

// Writer appends confirmed registrations to the census spreadsheet.
// Stateless per call; one instance is shared by all sessions.
type Writer struct {
	service       *sheetsapi.Service
	spreadsheetID string
	sheetRange    string
}

func NewWriter(ctx context.Context, credentialsFile, spreadsheetID, sheetRange string) (*Writer, error) {
	service, err := sheetsapi.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(sheetsapi.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("sheets.NewWriter: cannot create sheets service: %w", err)
	}

	return &Writer{
		service:       service,
		spreadsheetID: spreadsheetID,
		sheetRange:    sheetRange,
	}, nil
}

// AppendRecord writes the record as one row. A single append call, no
// batching and no retry; the caller decides what to tell the user.
func (w *Writer) AppendRecord(ctx context.Context, rec *registration.Record) error {
	row := rec.Row()
	cells := make([]interface{}, len(row))
	for i, v := range row {
		cells[i] = v
	}

	body := &sheetsapi.ValueRange{
		Values: [][]interface{}{cells},
	}

	_, err := w.service.Spreadsheets.Values.
		Append(w.spreadsheetID, w.sheetRange, body).
		ValueInputOption("USER_ENTERED").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("sheets.AppendRecord: %w", err)
	}

	return nil
}
