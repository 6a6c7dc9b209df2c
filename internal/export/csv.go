// Package export serializes in-memory lists to CSV files locally. No
// server endpoint is involved; this mirrors what the dashboard's export
// button does in the browser.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/schollz/progressbar/v3"

	"github.com/Sharma7422/fintrack/internal/model"
)

// quote wraps s in double quotes, doubling any embedded quote.
func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// WriteCategories writes the categories-and-tags export: a Type,Name
// header followed by one quoted row per category, then per tag.
func WriteCategories(w io.Writer, categories []model.Category, tags []model.Tag) error {
	var b strings.Builder
	b.WriteString("Type,Name\n")
	for _, c := range categories {
		b.WriteString("Category," + quote(c.Name) + "\n")
	}
	for _, t := range tags {
		b.WriteString("Tag," + quote(t.Name) + "\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// WriteTransactions writes one row per record with a progress bar on
// stderr when showProgress is set. Amounts keep two decimal places.
func WriteTransactions(w io.Writer, records []model.FinancialRecord, showProgress bool) error {
	if _, err := io.WriteString(w, "Date,Type,Category,Title,Amount,Notes\n"); err != nil {
		return err
	}

	var bar *progressbar.ProgressBar
	if showProgress {
		bar = progressbar.Default(int64(len(records)), "exporting")
	}

	for _, r := range records {
		row := fmt.Sprintf("%s,%s,%s,%s,%.2f,%s\n",
			r.Date.Format("2006-01-02"),
			r.Type,
			quote(r.Category),
			quote(r.Title),
			r.Amount,
			quote(r.Notes))
		if _, err := io.WriteString(w, row); err != nil {
			return err
		}
		if bar != nil {
			_ = bar.Add(1)
		}
	}
	if bar != nil {
		_ = bar.Finish()
	}
	return nil
}
