package sweep

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"sync"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/quadlab/grhverify/internal/store"
)

// summaryHeader is the column layout of the summary CSV.
var summaryHeader = []string{"d", "eta", "zeros_used"}

// WriteSummaryCSV renders stored results as the per-discriminant summary,
// one row per (d, eta) pair in the order given. Only verified rows carry a
// meaningful minimal zero count; inconclusive rows are written with the
// zeros actually spent so they remain visible in the report.
func WriteSummaryCSV(w io.Writer, results []store.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(summaryHeader); err != nil {
		return fmt.Errorf("write summary header: %w", err)
	}
	for _, r := range results {
		row := []string{
			strconv.FormatInt(r.D, 10),
			strconv.FormatFloat(r.Eta, 'g', -1, 64),
			strconv.Itoa(r.ZerosUsed),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write summary row d=%d: %w", r.D, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush summary: %w", err)
	}
	return nil
}

// WriteReport renders a human-readable sweep summary. Counts are grouped
// per the English locale since sweep ranges routinely cover millions of
// candidate discriminants.
func WriteReport(w io.Writer, sum Summary) error {
	p := message.NewPrinter(language.English)
	_, err := p.Fprintf(w,
		"run %s: %d fundamental discriminants, %d verified, %d inconclusive, %d skipped, %d failed\n",
		sum.RunID, sum.Candidates, sum.Verified, sum.Inconclusive, sum.Skipped, sum.Failed,
	)
	return err
}

// ErrorLog records per-discriminant failures without stopping the sweep.
// Safe for concurrent use by pool workers.
type ErrorLog struct {
	mu  sync.Mutex
	w   io.Writer
	now func() time.Time
}

// NewErrorLog creates an ErrorLog writing to w.
func NewErrorLog(w io.Writer) *ErrorLog {
	return &ErrorLog{w: w, now: time.Now}
}

// Record appends one failure line for d.
func (l *ErrorLog) Record(d int64, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.w, "%s d=%d error=%v\n", l.now().UTC().Format(time.RFC3339), d, err)
}
