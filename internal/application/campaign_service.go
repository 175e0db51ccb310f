// internal/application/campaign_service.go
package application

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"github.com/helpway/helpway-core/internal/domain"
	"github.com/helpway/helpway-core/internal/ports"
)

const (
	campaignCachePrefix = "campaigns:"
	allCampaignsKey     = campaignCachePrefix + "all"

	SubjectCampaignChanged = "campaign.changed"
)

// CampaignChanged is published after any write that alters a campaign.
type CampaignChanged struct {
	CampaignID string `json:"campaign_id"`
	Reason     string `json:"reason"`
}

type CampaignCard struct {
	Campaign        domain.Campaign       `json:"campaign"`
	ProgressPercent int                   `json:"progress_percent"`
	Tags            []domain.DonationType `json:"tags"`
}

func NewCampaignCard(c domain.Campaign) CampaignCard {
	return CampaignCard{Campaign: c, ProgressPercent: ProgressPercent(c.Raised, c.Goal), Tags: c.Tags()}
}

type SearchRequest struct {
	Text     string
	Types    []domain.DonationType
	Origin   *domain.Coordinate
	Tier     RadiusTier // ignored when RadiusKm > 0
	RadiusKm float64
}

type SearchResult struct {
	Cards    []CampaignCard
	Tier     RadiusTier
	RadiusKm float64
	Tiers    map[RadiusTier]float64
}

type CampaignService struct {
	api      ports.HelpwayAPIPort
	cache    ports.CachePort
	events   ports.EventPublisherPort
	sessions *SessionService
}

// NewCampaignService accepts a nil cache or publisher.
func NewCampaignService(api ports.HelpwayAPIPort, cache ports.CachePort, events ports.EventPublisherPort, sessions *SessionService) *CampaignService {
	return &CampaignService{api: api, cache: cache, events: events, sessions: sessions}
}

func (s *CampaignService) cached(ctx context.Context, key string, fetch func() ([]domain.Campaign, error)) ([]domain.Campaign, error) {
	if s.cache != nil {
		if data, err := s.cache.Get(ctx, key); err == nil {
			var campaigns []domain.Campaign
			if err := json.Unmarshal(data, &campaigns); err == nil {
				return campaigns, nil
			}
		}
	}
	campaigns, err := fetch()
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.Set(ctx, key, campaigns); err != nil {
			log.Printf("campaign cache: set %s: %v", key, err)
		}
	}
	return campaigns, nil
}

// InvalidateCache drops every cached campaign list. Failures are logged only.
func (s *CampaignService) InvalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeleteByPrefix(ctx, campaignCachePrefix); err != nil {
		log.Printf("campaign cache: invalidate: %v", err)
	}
}

func (s *CampaignService) changed(ctx context.Context, campaignID, reason string) {
	s.InvalidateCache(ctx)
	if s.events == nil {
		return
	}
	if err := s.events.Publish(ctx, SubjectCampaignChanged, CampaignChanged{CampaignID: campaignID, Reason: reason}); err != nil {
		log.Printf("campaign events: publish %s: %v", reason, err)
	}
}

func (s *CampaignService) List(ctx context.Context) ([]domain.Campaign, error) {
	return s.cached(ctx, allCampaignsKey, func() ([]domain.Campaign, error) {
		return s.api.ListCampaigns(ctx)
	})
}

// Search runs the list-screen pipeline: availability, then text, type and radius filters.
func (s *CampaignService) Search(ctx context.Context, req SearchRequest) (*SearchResult, error) {
	campaigns, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	b := NewCampaignBrowser()
	b.SetCampaigns(campaigns)
	b.SetOrigin(req.Origin)
	switch {
	case req.RadiusKm > 0:
		b.SetRadius(req.RadiusKm)
	case req.Tier != "":
		b.SelectTier(req.Tier)
	}

	found := b.Search(req.Text, req.Types)
	cards := make([]CampaignCard, 0, len(found))
	for _, c := range found {
		cards = append(cards, NewCampaignCard(c))
	}
	tier, radius := b.Radius()
	return &SearchResult{Cards: cards, Tier: tier, RadiusKm: radius, Tiers: b.Tiers()}, nil
}

// Nearby lists every located campaign by distance, as the map does.
func (s *CampaignService) Nearby(ctx context.Context, origin domain.Coordinate) ([]NearbyCampaign, error) {
	if !origin.Valid() {
		return nil, domain.Invalid("origin", "Localização atual indisponível")
	}
	campaigns, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return SortByDistance(campaigns, origin), nil
}

func (s *CampaignService) Tiers(ctx context.Context, origin *domain.Coordinate) (map[RadiusTier]float64, error) {
	campaigns, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	b := NewCampaignBrowser()
	b.SetCampaigns(campaigns)
	b.SetOrigin(origin)
	return b.Tiers(), nil
}

func (s *CampaignService) Get(ctx context.Context, id string) (*domain.Campaign, error) {
	if strings.TrimSpace(id) == "" {
		return nil, domain.Invalid("id", "Campanha não encontrada")
	}
	return s.api.GetCampaign(ctx, id)
}

func (s *CampaignService) organizer() (*domain.Session, error) {
	sess := s.sessions.Current()
	if sess == nil {
		return nil, domain.ErrNoSession
	}
	return sess, nil
}

func validateCampaignDraft(d domain.CampaignDraft) error {
	if strings.TrimSpace(d.Title) == "" || d.Goal <= 0 || strings.TrimSpace(d.Subtitle) == "" ||
		len(d.Types) == 0 || strings.TrimSpace(d.Description) == "" {
		return domain.Invalid("fields", "Preencha todos os campos obrigatórios e selecione ao menos um tipo de doação.")
	}
	if hasDonationType(d.Types, domain.DonationMoney) && strings.TrimSpace(d.PixKey) == "" {
		return domain.Invalid("pix_key", "Informe a chave PIX para receber doações em dinheiro.")
	}
	return nil
}

func validateCampaignUpdate(u domain.CampaignUpdate) error {
	if strings.TrimSpace(u.Title) == "" || strings.TrimSpace(u.Subtitle) == "" ||
		len(u.Types) == 0 || strings.TrimSpace(u.Description) == "" {
		return domain.Invalid("fields", "Preencha todos os campos obrigatórios e selecione ao menos um tipo de doação.")
	}
	if hasDonationType(u.Types, domain.DonationMoney) && strings.TrimSpace(u.PixKey) == "" {
		return domain.Invalid("pix_key", "Informe a chave PIX para receber doações em dinheiro.")
	}
	return nil
}

func hasDonationType(types []domain.DonationType, want domain.DonationType) bool {
	for _, t := range types {
		if t == want {
			return true
		}
	}
	return false
}

// Create submits a new campaign owned by the logged-in user.
func (s *CampaignService) Create(ctx context.Context, d domain.CampaignDraft) (*domain.Campaign, error) {
	sess, err := s.organizer()
	if err != nil {
		return nil, err
	}
	if err := validateCampaignDraft(d); err != nil {
		return nil, err
	}
	if d.Location != nil && !d.Location.Valid() {
		d.Location = nil
	}
	if !hasDonationType(d.Types, domain.DonationMoney) {
		d.PixKey = ""
	}
	d.OrganizerID = sess.User.ID
	created, err := s.api.CreateCampaign(ctx, d)
	if err != nil {
		return nil, err
	}
	s.changed(ctx, created.ID, "created")
	return created, nil
}

func (s *CampaignService) Update(ctx context.Context, id string, u domain.CampaignUpdate) (*domain.Campaign, error) {
	if _, err := s.organizer(); err != nil {
		return nil, err
	}
	if err := validateCampaignUpdate(u); err != nil {
		return nil, err
	}
	if !hasDonationType(u.Types, domain.DonationMoney) {
		u.PixKey = ""
	}
	updated, err := s.api.UpdateCampaign(ctx, id, u)
	if err != nil {
		return nil, err
	}
	s.changed(ctx, id, "updated")
	return updated, nil
}

func (s *CampaignService) SetLocation(ctx context.Context, id string, loc domain.Coordinate) error {
	if _, err := s.organizer(); err != nil {
		return err
	}
	if !loc.Valid() {
		return domain.Invalid("location", "Localização inválida")
	}
	if err := s.api.UpdateCampaignLocation(ctx, id, loc); err != nil {
		return err
	}
	s.changed(ctx, id, "relocated")
	return nil
}

// Mine lists the campaigns organized by the logged-in user.
func (s *CampaignService) Mine(ctx context.Context) ([]CampaignCard, error) {
	sess, err := s.organizer()
	if err != nil {
		return nil, err
	}
	campaigns, err := s.cached(ctx, campaignCachePrefix+"user:"+sess.User.ID, func() ([]domain.Campaign, error) {
		return s.api.ListUserCampaigns(ctx, sess.User.ID)
	})
	if err != nil {
		return nil, err
	}
	cards := make([]CampaignCard, 0, len(campaigns))
	for _, c := range campaigns {
		cards = append(cards, NewCampaignCard(c))
	}
	return cards, nil
}
