// internal/adapters/grpc/client.go
package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

// Client calls HelpwayService over a connection using the JSON codec.
type Client struct {
	cc grpc.ClientConnInterface
}

func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

// WithToken attaches a bearer token to outgoing calls made with ctx.
func WithToken(ctx context.Context, token string) context.Context {
	if token == "" {
		return ctx
	}
	return metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+token)
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in interface{}, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(codecName)}, opts...)
	if err := cc.Invoke(ctx, fullMethod(method), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*AuthResponse, error) {
	return invoke[AuthResponse](ctx, c.cc, "Login", in, opts)
}

func (c *Client) Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*AuthResponse, error) {
	return invoke[AuthResponse](ctx, c.cc, "Register", in, opts)
}

func (c *Client) Restore(ctx context.Context, opts ...grpc.CallOption) (*SessionStatusResponse, error) {
	return invoke[SessionStatusResponse](ctx, c.cc, "Restore", &Empty{}, opts)
}

func (c *Client) Reauthenticate(ctx context.Context, in *ReauthenticateRequest, opts ...grpc.CallOption) (*AuthResponse, error) {
	return invoke[AuthResponse](ctx, c.cc, "Reauthenticate", in, opts)
}

func (c *Client) Logout(ctx context.Context, opts ...grpc.CallOption) (*StatusResponse, error) {
	return invoke[StatusResponse](ctx, c.cc, "Logout", &Empty{}, opts)
}

func (c *Client) SetBiometrics(ctx context.Context, in *BiometricsRequest, opts ...grpc.CallOption) (*StatusResponse, error) {
	return invoke[StatusResponse](ctx, c.cc, "SetBiometrics", in, opts)
}

func (c *Client) SetUnlockPIN(ctx context.Context, in *PINRequest, opts ...grpc.CallOption) (*StatusResponse, error) {
	return invoke[StatusResponse](ctx, c.cc, "SetUnlockPIN", in, opts)
}

func (c *Client) UpdateAccount(ctx context.Context, in *UpdateAccountRequest, opts ...grpc.CallOption) (*UserResponse, error) {
	return invoke[UserResponse](ctx, c.cc, "UpdateAccount", in, opts)
}

func (c *Client) SearchCampaigns(ctx context.Context, in *SearchCampaignsRequest, opts ...grpc.CallOption) (*SearchCampaignsResponse, error) {
	return invoke[SearchCampaignsResponse](ctx, c.cc, "SearchCampaigns", in, opts)
}

func (c *Client) NearbyCampaigns(ctx context.Context, in *NearbyRequest, opts ...grpc.CallOption) (*NearbyResponse, error) {
	return invoke[NearbyResponse](ctx, c.cc, "NearbyCampaigns", in, opts)
}

func (c *Client) RadiusTiers(ctx context.Context, in *TiersRequest, opts ...grpc.CallOption) (*TiersResponse, error) {
	return invoke[TiersResponse](ctx, c.cc, "RadiusTiers", in, opts)
}

func (c *Client) GetCampaign(ctx context.Context, in *CampaignRequest, opts ...grpc.CallOption) (*CampaignResponse, error) {
	return invoke[CampaignResponse](ctx, c.cc, "GetCampaign", in, opts)
}

func (c *Client) Route(ctx context.Context, in *RouteRequest, opts ...grpc.CallOption) (*RouteResponse, error) {
	return invoke[RouteResponse](ctx, c.cc, "Route", in, opts)
}

func (c *Client) CreateCampaign(ctx context.Context, in *CreateCampaignRequest, opts ...grpc.CallOption) (*CampaignResponse, error) {
	return invoke[CampaignResponse](ctx, c.cc, "CreateCampaign", in, opts)
}

func (c *Client) UpdateCampaign(ctx context.Context, in *UpdateCampaignRequest, opts ...grpc.CallOption) (*CampaignResponse, error) {
	return invoke[CampaignResponse](ctx, c.cc, "UpdateCampaign", in, opts)
}

func (c *Client) SetCampaignLocation(ctx context.Context, in *LocationRequest, opts ...grpc.CallOption) (*StatusResponse, error) {
	return invoke[StatusResponse](ctx, c.cc, "SetCampaignLocation", in, opts)
}

func (c *Client) MyCampaigns(ctx context.Context, opts ...grpc.CallOption) (*CampaignListResponse, error) {
	return invoke[CampaignListResponse](ctx, c.cc, "MyCampaigns", &Empty{}, opts)
}

func (c *Client) Pix(ctx context.Context, in *CampaignRequest, opts ...grpc.CallOption) (*PixResponse, error) {
	return invoke[PixResponse](ctx, c.cc, "Pix", in, opts)
}

func (c *Client) Donate(ctx context.Context, in *DonateRequest, opts ...grpc.CallOption) (*DonationResponse, error) {
	return invoke[DonationResponse](ctx, c.cc, "Donate", in, opts)
}

func (c *Client) History(ctx context.Context, in *HistoryRequest, opts ...grpc.CallOption) (*HistoryResponse, error) {
	return invoke[HistoryResponse](ctx, c.cc, "History", in, opts)
}

func (c *Client) Certificate(ctx context.Context, in *CertificateRequest, opts ...grpc.CallOption) (*CertificateResponse, error) {
	return invoke[CertificateResponse](ctx, c.cc, "Certificate", in, opts)
}
