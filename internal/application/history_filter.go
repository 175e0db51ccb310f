// internal/application/history_filter.go
package application

import (
	"strings"
	"time"

	"github.com/helpway/helpway-core/internal/domain"
)

type HistoryQuery struct {
	Name     string
	DateFrom string
	DateTo   string
}

var recordDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// CalendarDate reduces a record timestamp to its UTC YYYY-MM-DD form.
func CalendarDate(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	for _, layout := range recordDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC().Format("2006-01-02"), true
		}
	}
	return "", false
}

// Validate rejects a non-empty bound that is not a recognizable date.
func (q HistoryQuery) Validate() error {
	for _, bound := range []string{q.DateFrom, q.DateTo} {
		if b := strings.TrimSpace(bound); b != "" {
			if _, ok := CalendarDate(b); !ok {
				return domain.Invalid("date", "Data inválida. Use o formato AAAA-MM-DD.")
			}
		}
	}
	return nil
}

func normalizeBound(bound string) string {
	bound = strings.TrimSpace(bound)
	if d, ok := CalendarDate(bound); ok {
		return d
	}
	return bound
}

// FilterHistory keeps, in order, the records matching the name and the inclusive date range.
func FilterHistory(records []domain.DonationRecord, q HistoryQuery) []domain.DonationRecord {
	name := strings.ToLower(strings.TrimSpace(q.Name))
	from, to := normalizeBound(q.DateFrom), normalizeBound(q.DateTo)

	out := make([]domain.DonationRecord, 0, len(records))
	for _, r := range records {
		if name != "" && !strings.Contains(strings.ToLower(r.SearchName()), name) {
			continue
		}
		if !withinDates(r.Date, from, to) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// withinDates lets undated records through only when the range is unbounded.
func withinDates(raw, from, to string) bool {
	if from == "" && to == "" {
		return true
	}
	day, ok := CalendarDate(raw)
	if !ok {
		return false
	}
	if from != "" && day < from {
		return false
	}
	if to != "" && day > to {
		return false
	}
	return true
}
