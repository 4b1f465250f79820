// Package export renders a filtered record set plus its aggregate totals
// into the semicolon-delimited report layout consumed by spreadsheet tools
// configured for French locales.
package export

import (
	"encoding/csv"
	"io"

	"recouvra/internal/domain"
	"recouvra/internal/util"
)

var header = []string{"Date", "Magasin", "Attendu", "Recouvré", "Dépenses", "Écart", "Observations"}

// WriteReport writes the report payload: a header row, one row per record
// with the date reformatted to DD/MM/YYYY, a blank line, then label/value
// total lines. The semicolon delimiter is deliberate; comma-decimal locales
// choke on comma-delimited exports.
//
// Callers must guard against empty record sets: an empty export is a no-op,
// not an empty file. WriteReport returns domain.ErrNoRecords so the guard
// cannot be forgotten.
func WriteReport(w io.Writer, records []domain.DailyRecovery, totals domain.PeriodTotals) error {
	if len(records) == 0 {
		return domain.ErrNoRecords
	}

	writer := csv.NewWriter(w)
	writer.Comma = ';'

	if err := writer.Write(header); err != nil {
		return err
	}

	for _, r := range records {
		storeName := ""
		if r.Store != nil {
			storeName = r.Store.Name
		}
		observations := ""
		if r.Observations != nil {
			observations = *r.Observations
		}
		row := []string{
			r.Date.Format("02/01/2006"),
			storeName,
			r.ExpectedAmount.String(),
			r.RecoveredAmount.String(),
			r.Expenses.String(),
			r.Gap.String(),
			observations,
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return err
	}
	// A bare blank line separates the rows from the totals; csv.Writer
	// would quote a single empty field, so it is written directly.
	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}

	totalRows := [][]string{
		{"Total Attendu", totals.Expected.String()},
		{"Total Recouvré", totals.Recovered.String()},
		{"Total Dépenses", totals.Expenses.String()},
		{"Total Écart", totals.Gap.String()},
	}
	for _, row := range totalRows {
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// ReportFilename builds the download name, e.g.
// rapport_Tous_les_magasins_janvier_2024.csv. Spaces are normalized to
// underscores.
func ReportFilename(storeName, periodLabel string) string {
	return "rapport_" + util.NormalizeLabel(storeName) + "_" + util.NormalizeLabel(periodLabel) + ".csv"
}
