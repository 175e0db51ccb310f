// internal/ports/ports.go
package ports

import (
	"context"

	"github.com/helpway/helpway-core/internal/domain"
)

// HelpwayAPIPort is the remote Helpway REST API.
type HelpwayAPIPort interface {
	Login(ctx context.Context, email, password string) (*domain.User, error)
	CreateUser(ctx context.Context, user domain.NewUser) (*domain.User, error)
	UpdateUser(ctx context.Context, id string, update domain.UserUpdate) error
	GetUser(ctx context.Context, id string) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	CreateCampaign(ctx context.Context, draft domain.CampaignDraft) (*domain.Campaign, error)
	ListCampaigns(ctx context.Context) ([]domain.Campaign, error)
	GetCampaign(ctx context.Context, id string) (*domain.Campaign, error)
	UpdateCampaign(ctx context.Context, id string, update domain.CampaignUpdate) (*domain.Campaign, error)
	UpdateCampaignLocation(ctx context.Context, id string, location domain.Coordinate) error
	ListUserCampaigns(ctx context.Context, userID string) ([]domain.Campaign, error)
	ListDonationsMade(ctx context.Context, userID string) ([]domain.DonationRecord, error)
	ListDonationsReceived(ctx context.Context, userID string) ([]domain.DonationRecord, error)
	ListCampaignDonations(ctx context.Context, campaignID string) ([]domain.DonationRecord, error)
	RegisterDonation(ctx context.Context, req domain.DonationRequest) (*domain.DonationRecord, error)
}

// SecureStorePort is the device's encrypted key-value store. Get returns nil, nil for a missing key.
type SecureStorePort interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// UnlockPort is the local user-presence check gating stored-credential login.
// Reset forgets the enrolled secret.
type UnlockPort interface {
	Unlock(ctx context.Context, secret string) error
	Reset(ctx context.Context) error
}

type CachePort interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value interface{}) error
	DeleteByPrefix(ctx context.Context, prefix string) error
	Ping(ctx context.Context) error
}

type EventPublisherPort interface {
	Publish(ctx context.Context, subject string, event interface{}) error
}

type RoutePort interface {
	Route(ctx context.Context, from, to domain.Coordinate) ([]domain.Coordinate, error)
}
