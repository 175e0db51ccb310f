// internal/domain/models.go
package domain

import "math"

type UserRole int

const (
	RoleDonor     UserRole = 1
	RoleOrganizer UserRole = 2
)

func (r UserRole) String() string {
	switch r {
	case RoleDonor:
		return "donor"
	case RoleOrganizer:
		return "organizer"
	}
	return "unknown"
}

type User struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	BirthDate string   `json:"birth_date,omitempty"`
	Image     string   `json:"image,omitempty"`
	Role      UserRole `json:"role"`
}

// NewUser is the registration payload.
type NewUser struct {
	Name      string
	Email     string
	BirthDate string
	Password  string
	Image     string
	Role      UserRole
}

// UserUpdate carries a profile change. CurrentPassword is always sent;
// NewPassword only when the password changes.
type UserUpdate struct {
	Name            string
	Email           string
	BirthDate       string
	Role            UserRole
	Image           string
	CurrentPassword string
	NewPassword     string
}

type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// IsSentinel reports the (0,0) placeholder the backend stores for "no location".
func (c Coordinate) IsSentinel() bool {
	return c.Latitude == 0 && c.Longitude == 0
}

// Valid reports whether c can take part in distance computations.
func (c Coordinate) Valid() bool {
	if c.IsSentinel() {
		return false
	}
	for _, v := range []float64{c.Latitude, c.Longitude} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

type DonationType string

const (
	DonationMoney DonationType = "Dinheiro"
	DonationFood  DonationType = "Alimentação"
	DonationGoods DonationType = "Utensílio"
)

type Campaign struct {
	ID           string      `json:"id"`
	Title        string      `json:"title"`
	Subtitle     string      `json:"subtitle,omitempty"`
	Description  string      `json:"description,omitempty"`
	Image        string      `json:"image,omitempty"`
	Raised       *float64    `json:"raised,omitempty"`
	Goal         *float64    `json:"goal,omitempty"`
	AcceptsMoney bool        `json:"accepts_money"`
	AcceptsFood  bool        `json:"accepts_food"`
	AcceptsGoods bool        `json:"accepts_goods"`
	Location     *Coordinate `json:"location,omitempty"`
	PixKey       string      `json:"pix_key,omitempty"`
	OrganizerID  string      `json:"organizer_id,omitempty"`
}

// Tags lists the donation types accepted by the campaign in display order.
func (c Campaign) Tags() []DonationType {
	var tags []DonationType
	if c.AcceptsMoney {
		tags = append(tags, DonationMoney)
	}
	if c.AcceptsFood {
		tags = append(tags, DonationFood)
	}
	if c.AcceptsGoods {
		tags = append(tags, DonationGoods)
	}
	return tags
}

// HasLocation reports whether the campaign carries a usable coordinate.
func (c Campaign) HasLocation() bool {
	return c.Location != nil && c.Location.Valid()
}

// CampaignDraft is the creation payload.
type CampaignDraft struct {
	Title       string
	Subtitle    string
	Description string
	Image       string
	Goal        float64
	Types       []DonationType
	PixKey      string
	Location    *Coordinate
	OrganizerID string
}

// CampaignUpdate is the edit payload. An empty Image leaves the stored image untouched.
type CampaignUpdate struct {
	Title       string
	Subtitle    string
	Description string
	Image       string
	Types       []DonationType
	PixKey      string
}

type Perspective string

const (
	PerspectiveMade     Perspective = "made"
	PerspectiveReceived Perspective = "received"
)

type DonationRecord struct {
	ID            string      `json:"id"`
	Perspective   Perspective `json:"perspective"`
	CampaignTitle string      `json:"campaign_title,omitempty"`
	OrganizerName string      `json:"organizer_name,omitempty"`
	DonorName     string      `json:"donor_name,omitempty"`
	Amount        float64     `json:"amount"`
	Date          string      `json:"date"`
}

// SearchName is the text the history name filter matches against.
func (r DonationRecord) SearchName() string {
	if r.Perspective == PerspectiveReceived {
		return r.DonorName
	}
	return r.CampaignTitle + " " + r.OrganizerName
}

// DonationRequest is always a money donation; the API's food and goods flags are sent false.
type DonationRequest struct {
	CampaignID string
	DonorID    string
	Amount     float64
}

type Session struct {
	User              User   `json:"user"`
	Credential        string `json:"credential"`
	BiometricsEnabled bool   `json:"-"`
}

// Complete reports whether every field a restored session depends on is present.
func (s *Session) Complete() bool {
	return s != nil && s.User.ID != "" && s.User.Email != "" && s.Credential != ""
}
