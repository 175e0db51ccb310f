// internal/adapters/httpapi/client.go
package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/helpway/helpway-core/internal/domain"
	"github.com/helpway/helpway-core/internal/ports"
)

const DefaultBaseURL = "https://helpway-api.onrender.com"

// Fallback messages shown when the API does not explain a failure.
const (
	msgLogin             = "Email ou senha incorretos"
	msgCreateUser        = "Erro ao criar usuário"
	msgUpdateUser        = "Erro ao atualizar usuário"
	msgUserNotFound      = "Usuário não encontrado"
	msgCreateCampaign    = "Erro ao criar campanha"
	msgListCampaigns     = "Erro ao buscar campanhas"
	msgCampaignNotFound  = "Campanha não encontrada"
	msgUpdateCampaign    = "Erro ao atualizar campanha"
	msgUpdateLocation    = "Erro ao atualizar localização"
	msgUserCampaigns     = "Erro ao buscar campanhas do usuário"
	msgDonationsMade     = "Erro ao buscar histórico de doações feitas"
	msgDonationsReceived = "Erro ao buscar histórico de doações recebidas"
	msgCampaignDonations = "Erro ao buscar doações desta campanha"
	msgRegisterDonation  = "Erro ao registrar doação"
)

// Client talks JSON to the Helpway REST API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	newKey     func() string
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		newKey:     func() string { return uuid.NewString() },
	}
}

var _ ports.HelpwayAPIPort = (*Client)(nil)

type call struct {
	op         string
	method     string
	path       string
	body       interface{}
	fallback   string
	headers    map[string]string
	acceptNull bool
}

// do sends c and decodes a successful answer into out.
func (cl *Client) do(ctx context.Context, c call, out interface{}) error {
	var reader io.Reader
	if c.body != nil {
		payload, err := json.Marshal(c.body)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", c.op, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, c.method, cl.baseURL+c.path, reader)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", c.op, err)
	}
	req.Header.Set("Accept", "application/json")
	if c.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}

	resp, err := cl.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrTransport, c.op, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %s: read body: %v", domain.ErrTransport, c.op, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := c.fallback
		var eb errorBody
		if json.Unmarshal(body, &eb) == nil && strings.TrimSpace(eb.Message) != "" {
			msg = eb.Message
		}
		return &domain.APIError{Op: c.op, StatusCode: resp.StatusCode, Message: msg}
	}

	if out == nil {
		return nil
	}
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		if c.acceptNull {
			return nil
		}
		return fmt.Errorf("%w: %s: empty body", domain.ErrMalformedResponse, c.op)
	}
	if err := json.Unmarshal(trimmed, out); err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrMalformedResponse, c.op, err)
	}
	return nil
}

func (cl *Client) user(ctx context.Context, c call) (*domain.User, error) {
	var w wireUser
	if err := cl.do(ctx, c, &w); err != nil {
		return nil, err
	}
	u, err := w.toDomain()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", c.op, err)
	}
	return &u, nil
}

func (cl *Client) campaign(ctx context.Context, c call) (*domain.Campaign, error) {
	var w wireCampaign
	if err := cl.do(ctx, c, &w); err != nil {
		return nil, err
	}
	camp, err := w.toDomain()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", c.op, err)
	}
	return &camp, nil
}

func (cl *Client) campaigns(ctx context.Context, c call) ([]domain.Campaign, error) {
	var ws []wireCampaign
	c.acceptNull = true
	if err := cl.do(ctx, c, &ws); err != nil {
		return nil, err
	}
	out := make([]domain.Campaign, 0, len(ws))
	for _, w := range ws {
		camp, err := w.toDomain()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", c.op, err)
		}
		out = append(out, camp)
	}
	return out, nil
}

func (cl *Client) donations(ctx context.Context, c call, p domain.Perspective) ([]domain.DonationRecord, error) {
	var ws []wireDonation
	c.acceptNull = true
	if err := cl.do(ctx, c, &ws); err != nil {
		return nil, err
	}
	out := make([]domain.DonationRecord, 0, len(ws))
	for _, w := range ws {
		r, err := w.toDomain(p)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", c.op, err)
		}
		out = append(out, r)
	}
	return out, nil
}

func seg(s string) string {
	return url.PathEscape(s)
}

func (cl *Client) Login(ctx context.Context, email, password string) (*domain.User, error) {
	return cl.user(ctx, call{
		op: "login", method: http.MethodPost, path: "/usuario/login",
		body: loginRequest{Email: email, Password: password}, fallback: msgLogin,
	})
}

func (cl *Client) CreateUser(ctx context.Context, u domain.NewUser) (*domain.User, error) {
	return cl.user(ctx, call{
		op: "create user", method: http.MethodPost, path: "/usuario",
		body: createUserRequest{
			Name:      u.Name,
			Email:     u.Email,
			BirthDate: u.BirthDate,
			Password:  u.Password,
			Image:     u.Image,
			Role:      int(u.Role),
		},
		fallback: msgCreateUser,
	})
}

func (cl *Client) UpdateUser(ctx context.Context, id string, u domain.UserUpdate) error {
	return cl.do(ctx, call{
		op: "update user", method: http.MethodPatch, path: "/usuario/" + seg(id),
		body: updateUserRequest{
			Name:            u.Name,
			Email:           u.Email,
			BirthDate:       u.BirthDate,
			Role:            int(u.Role),
			Image:           u.Image,
			CurrentPassword: u.CurrentPassword,
			NewPassword:     u.NewPassword,
		},
		fallback: msgUpdateUser,
	}, nil)
}

func (cl *Client) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return cl.user(ctx, call{op: "get user", method: http.MethodGet, path: "/usuario/" + seg(id), fallback: msgUserNotFound})
}

func (cl *Client) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return cl.user(ctx, call{op: "get user by email", method: http.MethodGet, path: "/usuario/email/" + seg(email), fallback: msgUserNotFound})
}

func (cl *Client) CreateCampaign(ctx context.Context, d domain.CampaignDraft) (*domain.Campaign, error) {
	body := createCampaignRequest{
		Title:        d.Title,
		Subtitle:     d.Subtitle,
		Description:  d.Description,
		Image:        d.Image,
		Goal:         d.Goal,
		AcceptsMoney: hasType(d.Types, domain.DonationMoney),
		AcceptsFood:  hasType(d.Types, domain.DonationFood),
		AcceptsGoods: hasType(d.Types, domain.DonationGoods),
		PixKey:       pixKey(d.Types, d.PixKey),
		OrganizerID:  flexID(d.OrganizerID),
	}
	if d.Location != nil {
		body.Location = &locationBody{Latitude: d.Location.Latitude, Longitude: d.Location.Longitude}
	}
	return cl.campaign(ctx, call{op: "create campaign", method: http.MethodPost, path: "/campanha", body: body, fallback: msgCreateCampaign})
}

func (cl *Client) ListCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	return cl.campaigns(ctx, call{op: "list campaigns", method: http.MethodGet, path: "/campanha", fallback: msgListCampaigns})
}

func (cl *Client) GetCampaign(ctx context.Context, id string) (*domain.Campaign, error) {
	return cl.campaign(ctx, call{op: "get campaign", method: http.MethodGet, path: "/campanha/" + seg(id), fallback: msgCampaignNotFound})
}

func (cl *Client) UpdateCampaign(ctx context.Context, id string, u domain.CampaignUpdate) (*domain.Campaign, error) {
	body := updateCampaignRequest{
		Title:        u.Title,
		Subtitle:     u.Subtitle,
		Description:  u.Description,
		Image:        u.Image,
		AcceptsMoney: hasType(u.Types, domain.DonationMoney),
		AcceptsFood:  hasType(u.Types, domain.DonationFood),
		AcceptsGoods: hasType(u.Types, domain.DonationGoods),
		PixKey:       pixKey(u.Types, u.PixKey),
	}
	return cl.campaign(ctx, call{op: "update campaign", method: http.MethodPatch, path: "/campanha/" + seg(id), body: body, fallback: msgUpdateCampaign})
}

func (cl *Client) UpdateCampaignLocation(ctx context.Context, id string, loc domain.Coordinate) error {
	return cl.do(ctx, call{
		op: "update campaign location", method: http.MethodPatch, path: "/campanha/" + seg(id) + "/localizacao",
		body: locationBody{Latitude: loc.Latitude, Longitude: loc.Longitude}, fallback: msgUpdateLocation,
	}, nil)
}

func (cl *Client) ListUserCampaigns(ctx context.Context, userID string) ([]domain.Campaign, error) {
	return cl.campaigns(ctx, call{op: "list user campaigns", method: http.MethodGet, path: "/usuario/" + seg(userID) + "/campanhas", fallback: msgUserCampaigns})
}

func (cl *Client) ListDonationsMade(ctx context.Context, userID string) ([]domain.DonationRecord, error) {
	return cl.donations(ctx, call{op: "list donations made", method: http.MethodGet, path: "/usuario/" + seg(userID) + "/doacoes", fallback: msgDonationsMade}, domain.PerspectiveMade)
}

func (cl *Client) ListDonationsReceived(ctx context.Context, userID string) ([]domain.DonationRecord, error) {
	return cl.donations(ctx, call{op: "list donations received", method: http.MethodGet, path: "/usuario/" + seg(userID) + "/doacoes-recebidas", fallback: msgDonationsReceived}, domain.PerspectiveReceived)
}

func (cl *Client) ListCampaignDonations(ctx context.Context, campaignID string) ([]domain.DonationRecord, error) {
	return cl.donations(ctx, call{op: "list campaign donations", method: http.MethodGet, path: "/campanha/" + seg(campaignID) + "/doacoes-recebidas", fallback: msgCampaignDonations}, domain.PerspectiveReceived)
}

// RegisterDonation posts a PIX donation. Each call carries a fresh Idempotency-Key.
func (cl *Client) RegisterDonation(ctx context.Context, r domain.DonationRequest) (*domain.DonationRecord, error) {
	var w wireDonation
	err := cl.do(ctx, call{
		op: "register donation", method: http.MethodPost, path: "/doacao",
		body: donationRequest{
			CampaignID:   flexID(r.CampaignID),
			DonorID:      flexID(r.DonorID),
			Amount:       r.Amount,
			AcceptsMoney: true,
			AcceptsFood:  false,
			AcceptsGoods: false,
		},
		fallback:   msgRegisterDonation,
		headers:    map[string]string{"Idempotency-Key": cl.newKey()},
		acceptNull: true,
	}, &w)
	if err != nil {
		return nil, err
	}
	rec := domain.DonationRecord{
		ID:          string(w.ID),
		Perspective: domain.PerspectiveMade,
		Amount:      r.Amount,
		Date:        w.Date,
	}
	if w.Amount.Set {
		rec.Amount = w.Amount.Value
	}
	return &rec, nil
}
