// internal/application/campaign_filter.go
package application

import (
	"math"
	"sort"
	"strings"
	"sync"

	"github.com/helpway/helpway-core/internal/domain"
	"github.com/helpway/helpway-core/pkg/geo"
)

type RadiusTier string

const (
	TierRegional RadiusTier = "REGIONAL"
	TierNational RadiusTier = "NACIONAL"
	TierGlobal   RadiusTier = "MUNDIAL"

	RegionalRadiusKm = 50.0
	NationalRadiusKm = 2000.0
	// DefaultGlobalRadiusKm applies until a ceiling can be computed from campaign locations.
	DefaultGlobalRadiusKm = 5000.0
	minGlobalRadiusKm     = 50.0
)

type CampaignQuery struct {
	Text          string
	Types         []domain.DonationType
	MaxDistanceKm float64
	Origin        *domain.Coordinate
}

type NearbyCampaign struct {
	Campaign   domain.Campaign `json:"campaign"`
	DistanceKm float64         `json:"distance_km"`
}

// ParseDonationType maps a tag, including the edit form's aliases, to its canonical value.
func ParseDonationType(tag string) (domain.DonationType, bool) {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case "dinheiro", "money":
		return domain.DonationMoney, true
	case "alimentação", "alimentacao", "food":
		return domain.DonationFood, true
	case "utensílio", "utensilio", "utensílios/vestimenta", "vestuário", "vestuario", "goods":
		return domain.DonationGoods, true
	}
	return "", false
}

// Available drops campaigns that already reached their goal.
func Available(campaigns []domain.Campaign) []domain.Campaign {
	out := make([]domain.Campaign, 0, len(campaigns))
	for _, c := range campaigns {
		if amount(c.Goal) > amount(c.Raised) {
			out = append(out, c)
		}
	}
	return out
}

// FilterCampaigns keeps, in order, the campaigns matching every criterion of q.
func FilterCampaigns(campaigns []domain.Campaign, q CampaignQuery) []domain.Campaign {
	text := strings.ToLower(strings.TrimSpace(q.Text))
	out := make([]domain.Campaign, 0, len(campaigns))
	for _, c := range campaigns {
		if matchesText(c, text) && matchesTypes(c, q.Types) && withinDistance(c, q.Origin, q.MaxDistanceKm) {
			out = append(out, c)
		}
	}
	return out
}

func matchesText(c domain.Campaign, text string) bool {
	if text == "" {
		return true
	}
	return strings.Contains(strings.ToLower(c.Title), text) ||
		strings.Contains(strings.ToLower(c.Subtitle), text)
}

func matchesTypes(c domain.Campaign, selected []domain.DonationType) bool {
	if len(selected) == 0 {
		return true
	}
	tags := c.Tags()
	for _, s := range selected {
		for _, t := range tags {
			if s == t {
				return true
			}
		}
	}
	return false
}

// withinDistance treats an unknown origin or campaign location as a match.
func withinDistance(c domain.Campaign, origin *domain.Coordinate, maxKm float64) bool {
	if origin == nil || !origin.Valid() || !c.HasLocation() {
		return true
	}
	return distanceTo(*origin, *c.Location) <= maxKm
}

func distanceTo(a, b domain.Coordinate) float64 {
	return geo.DistanceKm(a.Latitude, a.Longitude, b.Latitude, b.Longitude)
}

// SortByDistance returns the located campaigns annotated with their distance
// from origin, nearest first.
func SortByDistance(campaigns []domain.Campaign, origin domain.Coordinate) []NearbyCampaign {
	out := make([]NearbyCampaign, 0, len(campaigns))
	for _, c := range campaigns {
		if !c.HasLocation() {
			continue
		}
		out = append(out, NearbyCampaign{Campaign: c, DistanceKm: distanceTo(origin, *c.Location)})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].DistanceKm < out[j].DistanceKm })
	return out
}

// GlobalCeilingKm rounds the farthest located campaign up to the next 100 km.
func GlobalCeilingKm(campaigns []domain.Campaign, origin *domain.Coordinate) float64 {
	if origin == nil || !origin.Valid() {
		return DefaultGlobalRadiusKm
	}
	maxDist, located := 0.0, false
	for _, c := range campaigns {
		if !c.HasLocation() {
			continue
		}
		located = true
		maxDist = math.Max(maxDist, distanceTo(*origin, *c.Location))
	}
	if !located {
		return DefaultGlobalRadiusKm
	}
	return math.Max(minGlobalRadiusKm, math.Ceil(maxDist/100)*100)
}

// TierRadiusKm maps a tier to its ceiling. Unknown tiers fall back to the global ceiling.
func TierRadiusKm(tier RadiusTier, globalKm float64) float64 {
	switch tier {
	case TierRegional:
		return RegionalRadiusKm
	case TierNational:
		return NationalRadiusKm
	}
	return globalKm
}

// CampaignBrowser holds the state behind one search screen.
type CampaignBrowser struct {
	mu        sync.RWMutex
	campaigns []domain.Campaign
	origin    *domain.Coordinate
	globalKm  float64
	tier      RadiusTier
	radiusKm  float64
}

func NewCampaignBrowser() *CampaignBrowser {
	return &CampaignBrowser{
		globalKm: DefaultGlobalRadiusKm,
		tier:     TierGlobal,
		radiusKm: DefaultGlobalRadiusKm,
	}
}

// SetCampaigns replaces the campaign set with its available subset.
func (b *CampaignBrowser) SetCampaigns(campaigns []domain.Campaign) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.campaigns = Available(campaigns)
	b.recompute()
}

func (b *CampaignBrowser) SetOrigin(origin *domain.Coordinate) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if origin != nil {
		o := *origin
		origin = &o
	}
	b.origin = origin
	b.recompute()
}

// recompute resets the active radius to the new global ceiling. Caller holds mu.
func (b *CampaignBrowser) recompute() {
	b.globalKm = GlobalCeilingKm(b.campaigns, b.origin)
	b.tier = TierGlobal
	b.radiusKm = b.globalKm
}

func (b *CampaignBrowser) SelectTier(tier RadiusTier) float64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.tier = tier
	b.radiusKm = TierRadiusKm(tier, b.globalKm)
	return b.radiusKm
}

// SetRadius applies a free radius, as chosen on the slider.
func (b *CampaignBrowser) SetRadius(km float64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.tier = ""
	b.radiusKm = km
}

func (b *CampaignBrowser) Tiers() map[RadiusTier]float64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return map[RadiusTier]float64{
		TierRegional: RegionalRadiusKm,
		TierNational: NationalRadiusKm,
		TierGlobal:   b.globalKm,
	}
}

func (b *CampaignBrowser) Radius() (RadiusTier, float64) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.tier, b.radiusKm
}

func (b *CampaignBrowser) Search(text string, types []domain.DonationType) []domain.Campaign {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return FilterCampaigns(b.campaigns, CampaignQuery{
		Text:          text,
		Types:         types,
		MaxDistanceKm: b.radiusKm,
		Origin:        b.origin,
	})
}
