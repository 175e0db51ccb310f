// internal/adapters/httpapi/wire.go
package httpapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/helpway/helpway-core/internal/domain"
)

// flexID accepts ids sent as JSON numbers or strings.
type flexID string

func (id *flexID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = flexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("id: %w", err)
	}
	*id = flexID(n.String())
	return nil
}

// MarshalJSON sends integer ids back as numbers.
func (id flexID) MarshalJSON() ([]byte, error) {
	if _, err := strconv.ParseInt(string(id), 10, 64); err == nil {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

// optFloat accepts numbers, numeric strings and null.
type optFloat struct {
	Value float64
	Set   bool
}

func (f *optFloat) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*f = optFloat{}
		return nil
	}
	raw := string(b)
	if len(b) > 0 && b[0] == '"' {
		if err := json.Unmarshal(b, &raw); err != nil {
			return err
		}
		raw = strings.TrimSpace(raw)
		if raw == "" {
			*f = optFloat{}
			return nil
		}
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fmt.Errorf("number: %w", err)
	}
	*f = optFloat{Value: v, Set: true}
	return nil
}

func (f optFloat) ptr() *float64 {
	if !f.Set {
		return nil
	}
	v := f.Value
	return &v
}

// flexBool accepts booleans and the 0/1 flags some rows carry.
type flexBool bool

func (fb *flexBool) UnmarshalJSON(b []byte) error {
	switch strings.Trim(string(bytes.TrimSpace(b)), `"`) {
	case "true", "1", "t":
		*fb = true
	case "false", "0", "f", "null", "":
		*fb = false
	default:
		return fmt.Errorf("flag: unexpected value %s", b)
	}
	return nil
}

type wireLocation struct {
	Latitude  optFloat `json:"latitude"`
	Longitude optFloat `json:"longitude"`
}

type wireCampaign struct {
	ID           flexID        `json:"id"`
	Title        *string       `json:"titulo"`
	Subtitle     string        `json:"subtitulo"`
	Description  string        `json:"descricao"`
	Image        string        `json:"imagem_base64"`
	Raised       optFloat      `json:"valor_levantado"`
	Goal         optFloat      `json:"meta_doacoes"`
	AcceptsMoney flexBool      `json:"fg_dinheiro"`
	AcceptsFood  flexBool      `json:"fg_alimentacao"`
	AcceptsGoods flexBool      `json:"fg_vestuario"`
	Location     *wireLocation `json:"localizacao"`
	PixKey       *string       `json:"chave_pix"`
	OrganizerID  flexID        `json:"id_organizador"`
}

func (w wireCampaign) toDomain() (domain.Campaign, error) {
	if w.ID == "" || w.Title == nil {
		return domain.Campaign{}, fmt.Errorf("%w: campaign without id or titulo", domain.ErrMalformedResponse)
	}
	c := domain.Campaign{
		ID:           string(w.ID),
		Title:        *w.Title,
		Subtitle:     w.Subtitle,
		Description:  w.Description,
		Image:        w.Image,
		Raised:       w.Raised.ptr(),
		Goal:         w.Goal.ptr(),
		AcceptsMoney: bool(w.AcceptsMoney),
		AcceptsFood:  bool(w.AcceptsFood),
		AcceptsGoods: bool(w.AcceptsGoods),
		OrganizerID:  string(w.OrganizerID),
	}
	if w.PixKey != nil {
		c.PixKey = *w.PixKey
	}
	if w.Location != nil && w.Location.Latitude.Set && w.Location.Longitude.Set {
		c.Location = &domain.Coordinate{Latitude: w.Location.Latitude.Value, Longitude: w.Location.Longitude.Value}
	}
	return c, nil
}

type wireUser struct {
	ID        flexID  `json:"id"`
	Name      string  `json:"nome"`
	Email     *string `json:"email"`
	BirthDate string  `json:"dt_nascimento"`
	Image     string  `json:"img_usuario"`
	Role      int     `json:"tp_usuario"`
}

func (w wireUser) toDomain() (domain.User, error) {
	if w.ID == "" || w.Email == nil || *w.Email == "" {
		return domain.User{}, fmt.Errorf("%w: user without id or email", domain.ErrMalformedResponse)
	}
	return domain.User{
		ID:        string(w.ID),
		Name:      w.Name,
		Email:     *w.Email,
		BirthDate: w.BirthDate,
		Image:     w.Image,
		Role:      domain.UserRole(w.Role),
	}, nil
}

// wireDonation covers both history shapes; the endpoint decides the perspective.
type wireDonation struct {
	ID            flexID   `json:"id"`
	CampaignTitle string   `json:"titulo_campanha"`
	OrganizerName string   `json:"nome_organizador"`
	DonorName     string   `json:"donorName"`
	Amount        optFloat `json:"valor"`
	Date          string   `json:"date"`
}

func (w wireDonation) toDomain(p domain.Perspective) (domain.DonationRecord, error) {
	if w.ID == "" {
		return domain.DonationRecord{}, fmt.Errorf("%w: donation without id", domain.ErrMalformedResponse)
	}
	return domain.DonationRecord{
		ID:            string(w.ID),
		Perspective:   p,
		CampaignTitle: w.CampaignTitle,
		OrganizerName: w.OrganizerName,
		DonorName:     w.DonorName,
		Amount:        w.Amount.Value,
		Date:          w.Date,
	}, nil
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"senha"`
}

type createUserRequest struct {
	Name      string `json:"nome"`
	Email     string `json:"email"`
	BirthDate string `json:"dt_nascimento"`
	Password  string `json:"senha"`
	Image     string `json:"img_usuario,omitempty"`
	Role      int    `json:"tp_usuario"`
}

type updateUserRequest struct {
	Name            string `json:"nome,omitempty"`
	Email           string `json:"email,omitempty"`
	BirthDate       string `json:"dt_nascimento,omitempty"`
	Role            int    `json:"tp_usuario,omitempty"`
	Image           string `json:"img_usuario,omitempty"`
	CurrentPassword string `json:"senha_atual"`
	NewPassword     string `json:"nova_senha,omitempty"`
}

type locationBody struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type createCampaignRequest struct {
	Title        string        `json:"titulo"`
	Subtitle     string        `json:"subtitulo"`
	Description  string        `json:"descricao"`
	Image        string        `json:"imagem_base64,omitempty"`
	Goal         float64       `json:"meta_doacoes"`
	Raised       float64       `json:"valor_levantado"`
	AcceptsMoney bool          `json:"fg_dinheiro"`
	AcceptsFood  bool          `json:"fg_alimentacao"`
	AcceptsGoods bool          `json:"fg_vestuario"`
	PixKey       *string       `json:"chave_pix"`
	Location     *locationBody `json:"localizacao,omitempty"`
	OrganizerID  flexID        `json:"id_organizador"`
}

type updateCampaignRequest struct {
	Title        string  `json:"titulo"`
	Subtitle     string  `json:"subtitulo"`
	Description  string  `json:"descricao"`
	Image        string  `json:"imagem_base64,omitempty"`
	AcceptsMoney bool    `json:"fg_dinheiro"`
	AcceptsFood  bool    `json:"fg_alimentacao"`
	AcceptsGoods bool    `json:"fg_vestuario"`
	PixKey       *string `json:"chave_pix"`
}

type donationRequest struct {
	CampaignID   flexID  `json:"id_campanha"`
	DonorID      flexID  `json:"id_doador"`
	Amount       float64 `json:"valor"`
	AcceptsMoney bool    `json:"fg_dinheiro"`
	AcceptsFood  bool    `json:"fg_alimentacao"`
	AcceptsGoods bool    `json:"fg_vestuario"`
}

type errorBody struct {
	Message string `json:"message"`
}

func hasType(types []domain.DonationType, want domain.DonationType) bool {
	for _, t := range types {
		if t == want {
			return true
		}
	}
	return false
}

// pixKey is null unless the campaign accepts money.
func pixKey(types []domain.DonationType, key string) *string {
	if !hasType(types, domain.DonationMoney) {
		return nil
	}
	return &key
}
