// internal/adapters/grpc/service.go
package grpc

import (
	"context"

	"google.golang.org/grpc"

	"github.com/helpway/helpway-core/internal/application"
	"github.com/helpway/helpway-core/internal/domain"
)

const ServiceName = "helpway.HelpwayService"

// Envelope is carried by every response. Code mirrors an HTTP status.
type Envelope struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Code    int32  `json:"code"`
}

func (e Envelope) OK() bool {
	return e.Type == "success"
}

type Empty struct{}

type StatusResponse struct {
	Envelope
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	BirthDate       string `json:"birth_date"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	Image           string `json:"image,omitempty"`
	Role            int32  `json:"role"`
}

type ReauthenticateRequest struct {
	UnlockSecret string `json:"unlock_secret"`
}

type AuthResponse struct {
	Envelope
	TokenType   string       `json:"token_type,omitempty"`
	ExpiresIn   int64        `json:"expires_in,omitempty"`
	AccessToken string       `json:"access_token,omitempty"`
	User        *domain.User `json:"user,omitempty"`
	Biometrics  bool         `json:"biometrics,omitempty"`
}

// SessionStatusResponse answers Restore; it never carries a token or the user.
type SessionStatusResponse struct {
	Envelope
	Active     bool `json:"active"`
	Biometrics bool `json:"biometrics,omitempty"`
}

type BiometricsRequest struct {
	Enabled bool `json:"enabled"`
}

type PINRequest struct {
	PIN string `json:"pin"`
}

type UpdateAccountRequest struct {
	Name               string `json:"name"`
	Email              string `json:"email"`
	BirthDate          string `json:"birth_date"`
	Role               int32  `json:"role"`
	Image              string `json:"image,omitempty"`
	ChangePassword     bool   `json:"change_password"`
	CurrentPassword    string `json:"current_password,omitempty"`
	NewPassword        string `json:"new_password,omitempty"`
	ConfirmNewPassword string `json:"confirm_new_password,omitempty"`
}

type UserResponse struct {
	Envelope
	User *domain.User `json:"user,omitempty"`
}

type SearchCampaignsRequest struct {
	Text     string             `json:"text,omitempty"`
	Types    []string           `json:"types,omitempty"`
	Origin   *domain.Coordinate `json:"origin,omitempty"`
	Tier     string             `json:"tier,omitempty"`
	RadiusKm float64            `json:"radius_km,omitempty"`
}

type SearchCampaignsResponse struct {
	Envelope
	Cards    []application.CampaignCard `json:"cards"`
	Tier     string                     `json:"tier,omitempty"`
	RadiusKm float64                    `json:"radius_km"`
	Tiers    map[string]float64         `json:"tiers,omitempty"`
}

type NearbyRequest struct {
	Origin domain.Coordinate `json:"origin"`
}

type NearbyResponse struct {
	Envelope
	Campaigns []application.NearbyCampaign `json:"campaigns"`
}

type TiersRequest struct {
	Origin *domain.Coordinate `json:"origin,omitempty"`
}

type TiersResponse struct {
	Envelope
	Tiers map[string]float64 `json:"tiers,omitempty"`
}

type CampaignRequest struct {
	ID string `json:"id"`
}

type CampaignResponse struct {
	Envelope
	Card *application.CampaignCard `json:"card,omitempty"`
}

type CampaignListResponse struct {
	Envelope
	Cards []application.CampaignCard `json:"cards"`
}

type CampaignInput struct {
	Title       string   `json:"title"`
	Subtitle    string   `json:"subtitle"`
	Description string   `json:"description"`
	Image       string   `json:"image,omitempty"`
	Types       []string `json:"types"`
	PixKey      string   `json:"pix_key,omitempty"`
}

type CreateCampaignRequest struct {
	CampaignInput
	Goal     float64            `json:"goal"`
	Location *domain.Coordinate `json:"location,omitempty"`
}

type UpdateCampaignRequest struct {
	ID string `json:"id"`
	CampaignInput
}

type LocationRequest struct {
	CampaignID string            `json:"campaign_id"`
	Location   domain.Coordinate `json:"location"`
}

type RouteRequest struct {
	Origin     domain.Coordinate `json:"origin"`
	CampaignID string            `json:"campaign_id"`
}

type RouteResponse struct {
	Envelope
	Route *application.Route `json:"route,omitempty"`
}

type PixResponse struct {
	Envelope
	Pix *application.PixInstructions `json:"pix,omitempty"`
}

type DonateRequest struct {
	CampaignID string `json:"campaign_id"`
	Amount     string `json:"amount"`
}

type DonationResponse struct {
	Envelope
	Donation *domain.DonationRecord `json:"donation,omitempty"`
}

type HistoryRequest struct {
	Name       string `json:"name,omitempty"`
	DateFrom   string `json:"date_from,omitempty"`
	DateTo     string `json:"date_to,omitempty"`
	CampaignID string `json:"campaign_id,omitempty"`
}

type HistoryResponse struct {
	Envelope
	Records []domain.DonationRecord `json:"records"`
}

type CertificateRequest struct {
	DonationID string `json:"donation_id"`
}

type CertificateResponse struct {
	Envelope
	Certificate *application.Certificate `json:"certificate,omitempty"`
	HTML        string                   `json:"html,omitempty"`
}

type HelpwayServiceServer interface {
	Login(context.Context, *LoginRequest) (*AuthResponse, error)
	Register(context.Context, *RegisterRequest) (*AuthResponse, error)
	Restore(context.Context, *Empty) (*SessionStatusResponse, error)
	Reauthenticate(context.Context, *ReauthenticateRequest) (*AuthResponse, error)
	Logout(context.Context, *Empty) (*StatusResponse, error)
	SetBiometrics(context.Context, *BiometricsRequest) (*StatusResponse, error)
	SetUnlockPIN(context.Context, *PINRequest) (*StatusResponse, error)
	UpdateAccount(context.Context, *UpdateAccountRequest) (*UserResponse, error)

	SearchCampaigns(context.Context, *SearchCampaignsRequest) (*SearchCampaignsResponse, error)
	NearbyCampaigns(context.Context, *NearbyRequest) (*NearbyResponse, error)
	RadiusTiers(context.Context, *TiersRequest) (*TiersResponse, error)
	GetCampaign(context.Context, *CampaignRequest) (*CampaignResponse, error)
	Route(context.Context, *RouteRequest) (*RouteResponse, error)
	CreateCampaign(context.Context, *CreateCampaignRequest) (*CampaignResponse, error)
	UpdateCampaign(context.Context, *UpdateCampaignRequest) (*CampaignResponse, error)
	SetCampaignLocation(context.Context, *LocationRequest) (*StatusResponse, error)
	MyCampaigns(context.Context, *Empty) (*CampaignListResponse, error)

	Pix(context.Context, *CampaignRequest) (*PixResponse, error)
	Donate(context.Context, *DonateRequest) (*DonationResponse, error)
	History(context.Context, *HistoryRequest) (*HistoryResponse, error)
	Certificate(context.Context, *CertificateRequest) (*CertificateResponse, error)
}

func fullMethod(name string) string {
	return "/" + ServiceName + "/" + name
}

// unary adapts a typed server method to the generic handler grpc dispatches to.
func unary[Req, Resp any](name string, call func(HelpwayServiceServer, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(HelpwayServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod(name)}
			handler := func(ctx context.Context, req interface{}) (interface{}, error) {
				return call(srv.(HelpwayServiceServer), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

var HelpwayServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*HelpwayServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary("Login", HelpwayServiceServer.Login),
		unary("Register", HelpwayServiceServer.Register),
		unary("Restore", HelpwayServiceServer.Restore),
		unary("Reauthenticate", HelpwayServiceServer.Reauthenticate),
		unary("Logout", HelpwayServiceServer.Logout),
		unary("SetBiometrics", HelpwayServiceServer.SetBiometrics),
		unary("SetUnlockPIN", HelpwayServiceServer.SetUnlockPIN),
		unary("UpdateAccount", HelpwayServiceServer.UpdateAccount),
		unary("SearchCampaigns", HelpwayServiceServer.SearchCampaigns),
		unary("NearbyCampaigns", HelpwayServiceServer.NearbyCampaigns),
		unary("RadiusTiers", HelpwayServiceServer.RadiusTiers),
		unary("GetCampaign", HelpwayServiceServer.GetCampaign),
		unary("Route", HelpwayServiceServer.Route),
		unary("CreateCampaign", HelpwayServiceServer.CreateCampaign),
		unary("UpdateCampaign", HelpwayServiceServer.UpdateCampaign),
		unary("SetCampaignLocation", HelpwayServiceServer.SetCampaignLocation),
		unary("MyCampaigns", HelpwayServiceServer.MyCampaigns),
		unary("Pix", HelpwayServiceServer.Pix),
		unary("Donate", HelpwayServiceServer.Donate),
		unary("History", HelpwayServiceServer.History),
		unary("Certificate", HelpwayServiceServer.Certificate),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "helpway.json",
}

func RegisterHelpwayServiceServer(s grpc.ServiceRegistrar, srv HelpwayServiceServer) {
	s.RegisterService(&HelpwayServiceDesc, srv)
}
