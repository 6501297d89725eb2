package helper

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"

	"resto_manager/config"
	"resto_manager/constants"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	sheets "google.golang.org/api/sheets/v4"
)

// ErrSheetsKeyMissing is a configuration error: surfaced immediately, never
// retried.
var ErrSheetsKeyMissing = errors.New(constants.SHEETS_KEY_NOT_SET)

// FetchSheetRange reads one A1 range from a Google spreadsheet using the
// public Sheets API with an API key. Transport or auth failure is fatal for
// the whole ingestion run; the upstream error body is preserved so the caller
// can show it.
func FetchSheetRange(ctx context.Context, sheetId, readRange string) ([][]interface{}, error) {
	apiKey := config.Config("GOOGLE_SHEETS_API_KEY")
	if apiKey == "" {
		return nil, ErrSheetsKeyMissing
	}

	srv, err := sheets.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("sheets client: %w", err)
	}

	resp, err := srv.Spreadsheets.Values.Get(sheetId, readRange).Context(ctx).Do()
	if err != nil {
		var gerr *googleapi.Error
		if errors.As(err, &gerr) {
			return nil, fmt.Errorf("sheets fetch failed (%d): %s", gerr.Code, gerr.Body)
		}
		return nil, fmt.Errorf("sheets fetch failed: %w", err)
	}

	return resp.Values, nil
}

// FetchCsv pulls a published-to-web CSV export. The P&L sync offers this as a
// bypass because the Sheets API caches published tabs aggressively.
func FetchCsv(ctx context.Context, csvUrl string) ([][]interface{}, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, csvUrl, nil)
	if err != nil {
		return nil, err
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("csv fetch failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return nil, fmt.Errorf("csv fetch failed (%d): %s", resp.StatusCode, string(body))
	}

	reader := csv.NewReader(resp.Body)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csv parse failed: %w", err)
	}

	rows := make([][]interface{}, len(records))
	for i, record := range records {
		row := make([]interface{}, len(record))
		for j, cell := range record {
			row[j] = cell
		}
		rows[i] = row
	}
	return rows, nil
}
