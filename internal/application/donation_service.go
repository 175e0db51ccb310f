// internal/application/donation_service.go
package application

import (
	"context"
	"fmt"
	"log"
	"math"
	"strconv"
	"strings"

	"golang.org/x/sync/singleflight"

	"github.com/helpway/helpway-core/internal/domain"
	"github.com/helpway/helpway-core/internal/ports"
)

const SubjectDonationRegistered = "donation.registered"

type DonationRegistered struct {
	DonationID string  `json:"donation_id"`
	CampaignID string  `json:"campaign_id"`
	Amount     float64 `json:"amount"`
}

// PixInstructions is what the donor needs to pay a campaign outside the app.
type PixInstructions struct {
	CampaignID    string `json:"campaign_id"`
	CampaignTitle string `json:"campaign_title"`
	PixKey        string `json:"pix_key"`
}

type HistoryRequest struct {
	Query      HistoryQuery
	CampaignID string // organizer only; empty means every campaign
}

type DonationService struct {
	api       ports.HelpwayAPIPort
	events    ports.EventPublisherPort
	sessions  *SessionService
	campaigns *CampaignService
	inflight  singleflight.Group
}

func NewDonationService(api ports.HelpwayAPIPort, events ports.EventPublisherPort, sessions *SessionService, campaigns *CampaignService) *DonationService {
	return &DonationService{api: api, events: events, sessions: sessions, campaigns: campaigns}
}

// ParseAmount reads a user-typed amount, accepting a decimal comma.
func ParseAmount(raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(raw), ",", "."), 64)
	if err != nil || v <= 0 || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, domain.Invalid("amount", "Informe um valor válido para a doação.")
	}
	return v, nil
}

// moneyCampaign loads a campaign and requires it to take PIX payments.
func (s *DonationService) moneyCampaign(ctx context.Context, campaignID string) (*domain.Campaign, error) {
	c, err := s.campaigns.Get(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if !c.AcceptsMoney || c.PixKey == "" {
		return nil, domain.Invalid("campaign", "Esta campanha não recebe doações em dinheiro.")
	}
	return c, nil
}

// Pix returns the payment key of a campaign that accepts money.
func (s *DonationService) Pix(ctx context.Context, campaignID string) (*PixInstructions, error) {
	c, err := s.moneyCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	return &PixInstructions{CampaignID: c.ID, CampaignTitle: c.Title, PixKey: c.PixKey}, nil
}

// Donate records a PIX donation made by the logged-in user. Identical
// submissions still in flight share a single API call, which outlives the
// cancellation of any one caller.
func (s *DonationService) Donate(ctx context.Context, campaignID string, amount float64) (*domain.DonationRecord, error) {
	sess := s.sessions.Current()
	if sess == nil {
		return nil, domain.ErrNoSession
	}
	if amount <= 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return nil, domain.Invalid("amount", "Informe um valor válido para a doação.")
	}
	if strings.TrimSpace(campaignID) == "" {
		return nil, domain.Invalid("campaign", "Campanha não encontrada")
	}
	if _, err := s.moneyCampaign(ctx, campaignID); err != nil {
		return nil, err
	}

	key := fmt.Sprintf("%s|%s|%.2f", campaignID, sess.User.ID, amount)
	ch := s.inflight.DoChan(key, func() (interface{}, error) {
		flightCtx := context.WithoutCancel(ctx)
		rec, err := s.api.RegisterDonation(flightCtx, domain.DonationRequest{
			CampaignID: campaignID,
			DonorID:    sess.User.ID,
			Amount:     amount,
		})
		if err != nil {
			return nil, err
		}
		if rec == nil {
			return nil, domain.ErrMalformedResponse
		}
		s.registered(flightCtx, campaignID, rec)
		return rec, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		if res.Shared {
			log.Printf("donation: duplicate submission for campaign %s collapsed", campaignID)
		}
		rec := *res.Val.(*domain.DonationRecord)
		return &rec, nil
	}
}

func (s *DonationService) registered(ctx context.Context, campaignID string, rec *domain.DonationRecord) {
	s.campaigns.InvalidateCache(ctx)
	if s.events == nil {
		return
	}
	evt := DonationRegistered{DonationID: rec.ID, CampaignID: campaignID, Amount: rec.Amount}
	if err := s.events.Publish(ctx, SubjectDonationRegistered, evt); err != nil {
		log.Printf("donation events: publish: %v", err)
	}
}

// History returns the logged-in user's donations filtered by req.Query.
// Donors see what they gave; organizers see what they received.
func (s *DonationService) History(ctx context.Context, req HistoryRequest) ([]domain.DonationRecord, error) {
	sess := s.sessions.Current()
	if sess == nil {
		return nil, domain.ErrNoSession
	}
	if err := req.Query.Validate(); err != nil {
		return nil, err
	}
	var (
		records []domain.DonationRecord
		err     error
	)
	switch {
	case sess.User.Role != domain.RoleOrganizer:
		records, err = s.api.ListDonationsMade(ctx, sess.User.ID)
	case req.CampaignID != "":
		records, err = s.api.ListCampaignDonations(ctx, req.CampaignID)
	default:
		records, err = s.api.ListDonationsReceived(ctx, sess.User.ID)
	}
	if err != nil {
		return nil, err
	}
	return FilterHistory(records, req.Query), nil
}

// Certificate builds the certificate of one of the logged-in donor's donations.
func (s *DonationService) Certificate(ctx context.Context, donationID string) (*Certificate, error) {
	sess := s.sessions.Current()
	if sess == nil {
		return nil, domain.ErrNoSession
	}
	made, err := s.api.ListDonationsMade(ctx, sess.User.ID)
	if err != nil {
		return nil, err
	}
	for _, r := range made {
		if r.ID == donationID {
			c := NewCertificate(r, sess.User.Name)
			return &c, nil
		}
	}
	return nil, domain.Invalid("donation", "Doação não encontrada")
}
