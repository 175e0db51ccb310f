// internal/application/history_filter_test.go
package application

import (
	"testing"

	"github.com/helpway/helpway-core/internal/domain"
)

func historyFixture() []domain.DonationRecord {
	return []domain.DonationRecord{
		{ID: "a", Perspective: domain.PerspectiveReceived, DonorName: "Maria Silva", Amount: 50, Date: "2024-05-10T14:00:00.000Z"},
		{ID: "b", Perspective: domain.PerspectiveReceived, DonorName: "João Souza", Amount: 20, Date: "2024-05-20"},
		{ID: "c", Perspective: domain.PerspectiveReceived, DonorName: "Ana Maria", Amount: 10, Date: "not a date"},
		{ID: "d", Perspective: domain.PerspectiveMade, CampaignTitle: "Ajude o RS", OrganizerName: "Defesa Civil", Amount: 100, Date: "2024-06-01T02:30:00-03:00"},
		{ID: "e", Perspective: domain.PerspectiveMade, CampaignTitle: "Ajuda Médica", OrganizerName: "Hospital", Amount: 40, Date: ""},
	}
}

func recordIDs(records []domain.DonationRecord) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.ID)
	}
	return out
}

func TestFilterHistory(t *testing.T) {
	tests := []struct {
		name  string
		query HistoryQuery
		want  []string
	}{
		{"no filters keeps undated records", HistoryQuery{}, []string{"a", "b", "c", "d", "e"}},
		{"donor name is case-insensitive", HistoryQuery{Name: "MARIA"}, []string{"a", "c"}},
		{"made records match campaign title", HistoryQuery{Name: "ajude"}, []string{"d"}},
		{"made records match organizer name", HistoryQuery{Name: "hospital"}, []string{"e"}},
		{"inclusive range", HistoryQuery{DateFrom: "2024-05-10", DateTo: "2024-05-20"}, []string{"a", "b"}},
		{"lower bound only drops undated", HistoryQuery{DateFrom: "2024-05-15"}, []string{"b", "d"}},
		{"upper bound only", HistoryQuery{DateTo: "2024-05-10"}, []string{"a"}},
		{"offset timestamp uses UTC day", HistoryQuery{DateFrom: "2024-06-01", DateTo: "2024-06-01"}, []string{"d"}},
		{"empty range", HistoryQuery{DateFrom: "2025-01-01"}, []string{}},
		{"name and dates combined", HistoryQuery{Name: "jo", DateFrom: "2024-05-01", DateTo: "2024-05-31"}, []string{"b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := recordIDs(FilterHistory(historyFixture(), tt.query))
			if !equalIDs(got, tt.want) {
				t.Errorf("FilterHistory() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHistoryQuery_Validate(t *testing.T) {
	tests := []struct {
		name    string
		query   HistoryQuery
		wantErr bool
	}{
		{"unbounded", HistoryQuery{Name: "ana"}, false},
		{"iso bounds", HistoryQuery{DateFrom: "2024-05-10", DateTo: "2024-05-20T10:00:00Z"}, false},
		{"blank bound", HistoryQuery{DateFrom: "  "}, false},
		{"day-first lower bound", HistoryQuery{DateFrom: "10/05/2024"}, true},
		{"garbage upper bound", HistoryQuery{DateTo: "ontem"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.query.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestCalendarDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"2024-05-10T23:59:59Z", "2024-05-10", true},
		{"2024-05-10T22:00:00-03:00", "2024-05-11", true},
		{"2024-05-10T10:00:00", "2024-05-10", true},
		{"2024-05-10 10:00:00", "2024-05-10", true},
		{"2024-05-10", "2024-05-10", true},
		{"10/05/2024", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := CalendarDate(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("CalendarDate(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}
