// internal/application/campaign_filter_test.go
package application

import (
	"testing"

	"github.com/helpway/helpway-core/internal/domain"
)

var (
	saoPaulo    = domain.Coordinate{Latitude: -23.5505, Longitude: -46.6333}
	portoAlegre = domain.Coordinate{Latitude: -30.0346, Longitude: -51.2177}
	campinas    = domain.Coordinate{Latitude: -22.9056, Longitude: -47.0608}
)

func seedCampaigns() []domain.Campaign {
	poa, sp := portoAlegre, saoPaulo
	return []domain.Campaign{
		{ID: "1", Title: "Ajude o RS", Subtitle: "Defesa Civil", Raised: ptr(3000), Goal: ptr(10000), AcceptsMoney: true, AcceptsFood: true, Location: &poa},
		{ID: "2", Title: "Ajuda Médica", Subtitle: "Hospital Central", Raised: ptr(5000), Goal: ptr(15000), AcceptsGoods: true, Location: &sp},
	}
}

func ids(campaigns []domain.Campaign) []string {
	out := make([]string, 0, len(campaigns))
	for _, c := range campaigns {
		out = append(out, c.ID)
	}
	return out
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestAvailable(t *testing.T) {
	campaigns := []domain.Campaign{
		{ID: "open", Raised: ptr(10), Goal: ptr(100)},
		{ID: "reached", Raised: ptr(100), Goal: ptr(100)},
		{ID: "exceeded", Raised: ptr(120), Goal: ptr(100)},
		{ID: "nil raised", Goal: ptr(100)},
		{ID: "nil goal", Raised: ptr(10)},
		{ID: "both nil"},
	}
	got := ids(Available(campaigns))
	want := []string{"open", "nil raised"}
	if !equalIDs(got, want) {
		t.Errorf("Available() = %v, want %v", got, want)
	}
}

func TestFilterCampaigns(t *testing.T) {
	poa := portoAlegre
	zero := domain.Coordinate{}
	campaigns := append(seedCampaigns(),
		domain.Campaign{ID: "3", Title: "Sopão", Subtitle: "Paróquia", AcceptsFood: true},
		domain.Campaign{ID: "4", Title: "Cobertores", Subtitle: "ONG Abrigo", AcceptsGoods: true, Location: &zero},
	)

	tests := []struct {
		name  string
		query CampaignQuery
		want  []string
	}{
		{"empty query keeps everything", CampaignQuery{}, []string{"1", "2", "3", "4"}},
		{"text matches title case-insensitively", CampaignQuery{Text: "ajude"}, []string{"1"}},
		{"text matches subtitle", CampaignQuery{Text: "hospital"}, []string{"2"}},
		{"text with no match", CampaignQuery{Text: "inexistente"}, []string{}},
		{"type money", CampaignQuery{Types: []domain.DonationType{domain.DonationMoney}}, []string{"1"}},
		{"type food or goods", CampaignQuery{Types: []domain.DonationType{domain.DonationFood, domain.DonationGoods}}, []string{"1", "2", "3", "4"}},
		{
			"regional radius from Porto Alegre keeps unlocated campaigns",
			CampaignQuery{MaxDistanceKm: RegionalRadiusKm, Origin: &poa},
			[]string{"1", "3", "4"},
		},
		{
			"national radius from Porto Alegre",
			CampaignQuery{MaxDistanceKm: NationalRadiusKm, Origin: &poa},
			[]string{"1", "2", "3", "4"},
		},
		{
			"unknown origin disables distance",
			CampaignQuery{MaxDistanceKm: 1},
			[]string{"1", "2", "3", "4"},
		},
		{
			"criteria are combined",
			CampaignQuery{Text: "aju", Types: []domain.DonationType{domain.DonationGoods}, MaxDistanceKm: NationalRadiusKm, Origin: &poa},
			[]string{"2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(FilterCampaigns(campaigns, tt.query))
			if !equalIDs(got, tt.want) {
				t.Errorf("FilterCampaigns() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilterCampaigns_EndToEnd(t *testing.T) {
	sp := saoPaulo
	result := FilterCampaigns(Available(seedCampaigns()), CampaignQuery{
		Text:          "ajude",
		Types:         []domain.DonationType{domain.DonationMoney},
		MaxDistanceKm: NationalRadiusKm,
		Origin:        &sp,
	})
	if len(result) != 1 || result[0].ID != "1" {
		t.Fatalf("expected only the first campaign, got %v", ids(result))
	}
	if got := ProgressPercent(result[0].Raised, result[0].Goal); got != 30 {
		t.Errorf("ProgressPercent() = %d, want 30", got)
	}
}

func TestFilterCampaigns_OverFundedAndRegional(t *testing.T) {
	origin := saoPaulo
	near := domain.Coordinate{Latitude: saoPaulo.Latitude + 0.09, Longitude: saoPaulo.Longitude}
	far := domain.Coordinate{Latitude: saoPaulo.Latitude + 5.4, Longitude: saoPaulo.Longitude}
	campaigns := []domain.Campaign{
		{ID: "near", Title: "Agasalhos", Raised: ptr(3000), Goal: ptr(10000), AcceptsMoney: true, AcceptsGoods: true, Location: &near},
		{ID: "far", Title: "Cestas", Raised: ptr(15000), Goal: ptr(15000), AcceptsFood: true, Location: &far},
	}

	result := FilterCampaigns(Available(campaigns), CampaignQuery{MaxDistanceKm: RegionalRadiusKm, Origin: &origin})
	if !equalIDs(ids(result), []string{"near"}) {
		t.Fatalf("FilterCampaigns() = %v, want [near]", ids(result))
	}
	if got := ProgressPercent(result[0].Raised, result[0].Goal); got != 30 {
		t.Errorf("ProgressPercent() = %d, want 30", got)
	}
}

func TestSortByDistance(t *testing.T) {
	zero := domain.Coordinate{}
	cps := campinas
	campaigns := append(seedCampaigns(),
		domain.Campaign{ID: "3", Title: "Sem local"},
		domain.Campaign{ID: "4", Title: "Sentinela", Location: &zero},
		domain.Campaign{ID: "5", Title: "Campinas", Location: &cps},
	)

	got := SortByDistance(campaigns, saoPaulo)
	wantOrder := []string{"2", "5", "1"}
	if len(got) != len(wantOrder) {
		t.Fatalf("SortByDistance() returned %d campaigns, want %d", len(got), len(wantOrder))
	}
	for i, n := range got {
		if n.Campaign.ID != wantOrder[i] {
			t.Errorf("position %d = %s, want %s", i, n.Campaign.ID, wantOrder[i])
		}
		if i > 0 && n.DistanceKm < got[i-1].DistanceKm {
			t.Errorf("distances not ascending at %d", i)
		}
	}
	if got[0].DistanceKm != 0 {
		t.Errorf("distance to own location = %v, want 0", got[0].DistanceKm)
	}
}

func TestGlobalCeilingKm(t *testing.T) {
	sp, poa := saoPaulo, portoAlegre
	near := domain.Coordinate{Latitude: -23.56, Longitude: -46.64}
	same := saoPaulo

	tests := []struct {
		name      string
		campaigns []domain.Campaign
		origin    *domain.Coordinate
		want      float64
	}{
		{"no origin", seedCampaigns(), nil, DefaultGlobalRadiusKm},
		{"no located campaigns", []domain.Campaign{{ID: "x"}}, &sp, DefaultGlobalRadiusKm},
		{"rounds up to next hundred", seedCampaigns(), &sp, 900},
		{"small distance rounds to a hundred", []domain.Campaign{{ID: "n", Location: &near}}, &sp, 100},
		{"floor of fifty", []domain.Campaign{{ID: "s", Location: &same}}, &sp, 50},
		{"from Porto Alegre", seedCampaigns(), &poa, 900},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GlobalCeilingKm(tt.campaigns, tt.origin); got != tt.want {
				t.Errorf("GlobalCeilingKm() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseDonationType(t *testing.T) {
	tests := []struct {
		in   string
		want domain.DonationType
		ok   bool
	}{
		{"Dinheiro", domain.DonationMoney, true},
		{"Alimentação", domain.DonationFood, true},
		{"Utensílio", domain.DonationGoods, true},
		{"Utensílios/Vestimenta", domain.DonationGoods, true},
		{"Vestuário", domain.DonationGoods, true},
		{"Cripto", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseDonationType(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseDonationType(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestCampaignBrowser(t *testing.T) {
	b := NewCampaignBrowser()
	if tier, radius := b.Radius(); tier != TierGlobal || radius != DefaultGlobalRadiusKm {
		t.Fatalf("initial radius = %s %v", tier, radius)
	}

	completed := domain.Campaign{ID: "done", Title: "Concluída", Raised: ptr(10), Goal: ptr(10)}
	b.SetCampaigns(append(seedCampaigns(), completed))
	sp := saoPaulo
	b.SetOrigin(&sp)

	tiers := b.Tiers()
	if tiers[TierGlobal] != 900 || tiers[TierRegional] != 50 || tiers[TierNational] != 2000 {
		t.Errorf("Tiers() = %v", tiers)
	}
	if _, radius := b.Radius(); radius != 900 {
		t.Errorf("radius after origin change = %v, want 900", radius)
	}

	if got := ids(b.Search("", nil)); !equalIDs(got, []string{"1", "2"}) {
		t.Errorf("Search() = %v, want completed campaign excluded", got)
	}

	if r := b.SelectTier(TierRegional); r != RegionalRadiusKm {
		t.Errorf("SelectTier(REGIONAL) = %v", r)
	}
	if got := ids(b.Search("", nil)); !equalIDs(got, []string{"2"}) {
		t.Errorf("regional Search() = %v, want [2]", got)
	}

	b.SetRadius(1000)
	if tier, radius := b.Radius(); tier != "" || radius != 1000 {
		t.Errorf("Radius() after SetRadius = %q %v", tier, radius)
	}
	if got := ids(b.Search("", nil)); !equalIDs(got, []string{"1", "2"}) {
		t.Errorf("Search() within 1000 km = %v", got)
	}

	b.SetOrigin(nil)
	if tier, radius := b.Radius(); tier != TierGlobal || radius != DefaultGlobalRadiusKm {
		t.Errorf("radius after clearing origin = %s %v", tier, radius)
	}
}
