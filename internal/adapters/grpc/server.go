// internal/adapters/grpc/server.go
package grpc

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/helpway/helpway-core/internal/adapters/unlock"
	"github.com/helpway/helpway-core/internal/application"
	"github.com/helpway/helpway-core/internal/domain"
	"github.com/helpway/helpway-core/pkg/auth"
)

// publicMethods run without a bearer token.
var publicMethods = map[string]bool{
	fullMethod("Login"):           true,
	fullMethod("Register"):        true,
	fullMethod("Restore"):         true,
	fullMethod("Reauthenticate"):  true,
	fullMethod("SearchCampaigns"): true,
	fullMethod("NearbyCampaigns"): true,
	fullMethod("RadiusTiers"):     true,
	fullMethod("GetCampaign"):     true,
	fullMethod("Route"):           true,
}

type Services struct {
	Auth      *application.AuthService
	Sessions  *application.SessionService
	Accounts  *application.AccountService
	Campaigns *application.CampaignService
	Donations *application.DonationService
	Routes    *application.RouteService
	PINs      *unlock.PINGate
	Tokens    *auth.Manager
}

type Server struct {
	svc Services
}

var _ HelpwayServiceServer = (*Server)(nil)

func NewServer(svc Services) *Server {
	return &Server{svc: svc}
}

func success(message string) Envelope {
	return Envelope{Message: message, Type: "success", Code: http.StatusOK}
}

// failure turns an application error into the envelope shown to the caller.
func failure(op string, err error) Envelope {
	code := int32(http.StatusInternalServerError)
	var verr *domain.ValidationError
	var aerr *domain.APIError
	switch {
	case errors.As(err, &verr):
		code = http.StatusBadRequest
	case errors.As(err, &aerr):
		code = http.StatusBadGateway
		if aerr.StatusCode >= 400 && aerr.StatusCode < 600 {
			code = int32(aerr.StatusCode)
		}
		log.Printf("%s: %s", op, aerr.Detail())
	case errors.Is(err, domain.ErrNoSession):
		code = http.StatusUnauthorized
	case errors.Is(err, domain.ErrBiometricsDisabled), errors.Is(err, domain.ErrUnlockFailed), errors.Is(err, domain.ErrUnlockNotSet):
		code = http.StatusForbidden
	case errors.Is(err, domain.ErrTransport):
		code = http.StatusServiceUnavailable
		log.Printf("%s: %v", op, err)
	case errors.Is(err, domain.ErrMalformedResponse):
		code = http.StatusBadGateway
		log.Printf("%s: %v", op, err)
	default:
		log.Printf("%s: %v", op, err)
	}
	return Envelope{Message: domain.UserMessage(err), Type: "error", Code: code}
}

func parseTypes(tags []string) ([]domain.DonationType, error) {
	out := make([]domain.DonationType, 0, len(tags))
	for _, tag := range tags {
		t, ok := application.ParseDonationType(tag)
		if !ok {
			return nil, domain.Invalid("types", "Tipo de doação desconhecido: "+tag)
		}
		out = append(out, t)
	}
	return out, nil
}

func (s *Server) authResponse(token string, sess *domain.Session, message string) *AuthResponse {
	resp := &AuthResponse{Envelope: success(message)}
	if sess == nil {
		return resp
	}
	user := sess.User
	resp.TokenType = "Bearer"
	resp.ExpiresIn = int64(s.svc.Tokens.TTL().Seconds())
	resp.AccessToken = token
	resp.User = &user
	resp.Biometrics = sess.BiometricsEnabled
	return resp
}

func (s *Server) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	token, sess, err := s.svc.Auth.Login(ctx, req.Email, req.Password)
	if err != nil {
		return &AuthResponse{Envelope: failure("login", err)}, nil
	}
	return s.authResponse(token, sess, "Logged in"), nil
}

func (s *Server) Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error) {
	sess, err := s.svc.Accounts.Register(ctx, application.Registration{
		Name:            req.Name,
		Email:           req.Email,
		BirthDate:       req.BirthDate,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		Image:           req.Image,
		Role:            domain.UserRole(req.Role),
	})
	if err != nil {
		return &AuthResponse{Envelope: failure("register", err)}, nil
	}
	token, err := s.svc.Auth.Issue(sess)
	if err != nil {
		return &AuthResponse{Envelope: failure("register", err)}, nil
	}
	return s.authResponse(token, sess, "Conta criada com sucesso!"), nil
}

func (s *Server) Restore(ctx context.Context, _ *Empty) (*SessionStatusResponse, error) {
	st := s.svc.Auth.Restore(ctx)
	if !st.Active {
		return &SessionStatusResponse{Envelope: success("No stored session")}, nil
	}
	return &SessionStatusResponse{Envelope: success("Stored session found"), Active: true, Biometrics: st.BiometricsEnabled}, nil
}

func (s *Server) Reauthenticate(ctx context.Context, req *ReauthenticateRequest) (*AuthResponse, error) {
	token, sess, err := s.svc.Auth.Reauthenticate(ctx, req.UnlockSecret)
	if err != nil {
		return &AuthResponse{Envelope: failure("reauthenticate", err)}, nil
	}
	return s.authResponse(token, sess, "Logged in"), nil
}

func (s *Server) Logout(ctx context.Context, _ *Empty) (*StatusResponse, error) {
	if err := s.svc.Auth.Logout(ctx, claimsFrom(ctx)); err != nil {
		return &StatusResponse{Envelope: failure("logout", err)}, nil
	}
	return &StatusResponse{Envelope: success("Successfully logged out")}, nil
}

func (s *Server) SetBiometrics(ctx context.Context, req *BiometricsRequest) (*StatusResponse, error) {
	if err := s.svc.Sessions.SetBiometricsEnabled(ctx, req.Enabled); err != nil {
		return &StatusResponse{Envelope: failure("set biometrics", err)}, nil
	}
	return &StatusResponse{Envelope: success("Preference saved")}, nil
}

func (s *Server) SetUnlockPIN(ctx context.Context, req *PINRequest) (*StatusResponse, error) {
	if err := s.svc.PINs.SetPIN(ctx, req.PIN); err != nil {
		return &StatusResponse{Envelope: failure("set unlock pin", err)}, nil
	}
	return &StatusResponse{Envelope: success("PIN saved")}, nil
}

func (s *Server) UpdateAccount(ctx context.Context, req *UpdateAccountRequest) (*UserResponse, error) {
	user, err := s.svc.Accounts.UpdateAccount(ctx, application.AccountChange{
		Name:               req.Name,
		Email:              req.Email,
		BirthDate:          req.BirthDate,
		Role:               domain.UserRole(req.Role),
		Image:              req.Image,
		ChangePassword:     req.ChangePassword,
		CurrentPassword:    req.CurrentPassword,
		NewPassword:        req.NewPassword,
		ConfirmNewPassword: req.ConfirmNewPassword,
	})
	if err != nil {
		return &UserResponse{Envelope: failure("update account", err)}, nil
	}
	return &UserResponse{Envelope: success("Perfil atualizado com sucesso!"), User: user}, nil
}

func tierMap(tiers map[application.RadiusTier]float64) map[string]float64 {
	out := make(map[string]float64, len(tiers))
	for k, v := range tiers {
		out[string(k)] = v
	}
	return out
}

func (s *Server) SearchCampaigns(ctx context.Context, req *SearchCampaignsRequest) (*SearchCampaignsResponse, error) {
	types, err := parseTypes(req.Types)
	if err != nil {
		return &SearchCampaignsResponse{Envelope: failure("search campaigns", err)}, nil
	}
	res, err := s.svc.Campaigns.Search(ctx, application.SearchRequest{
		Text:     req.Text,
		Types:    types,
		Origin:   req.Origin,
		Tier:     application.RadiusTier(strings.ToUpper(req.Tier)),
		RadiusKm: req.RadiusKm,
	})
	if err != nil {
		return &SearchCampaignsResponse{Envelope: failure("search campaigns", err)}, nil
	}
	return &SearchCampaignsResponse{
		Envelope: success("Campaigns successfully fetched."),
		Cards:    res.Cards,
		Tier:     string(res.Tier),
		RadiusKm: res.RadiusKm,
		Tiers:    tierMap(res.Tiers),
	}, nil
}

func (s *Server) NearbyCampaigns(ctx context.Context, req *NearbyRequest) (*NearbyResponse, error) {
	near, err := s.svc.Campaigns.Nearby(ctx, req.Origin)
	if err != nil {
		return &NearbyResponse{Envelope: failure("nearby campaigns", err)}, nil
	}
	return &NearbyResponse{Envelope: success("Campaigns successfully fetched."), Campaigns: near}, nil
}

func (s *Server) RadiusTiers(ctx context.Context, req *TiersRequest) (*TiersResponse, error) {
	tiers, err := s.svc.Campaigns.Tiers(ctx, req.Origin)
	if err != nil {
		return &TiersResponse{Envelope: failure("radius tiers", err)}, nil
	}
	return &TiersResponse{Envelope: success("Tiers computed."), Tiers: tierMap(tiers)}, nil
}

func (s *Server) GetCampaign(ctx context.Context, req *CampaignRequest) (*CampaignResponse, error) {
	c, err := s.svc.Campaigns.Get(ctx, req.ID)
	if err != nil {
		return &CampaignResponse{Envelope: failure("get campaign", err)}, nil
	}
	card := application.NewCampaignCard(*c)
	return &CampaignResponse{Envelope: success("Campaign fetched."), Card: &card}, nil
}

func (s *Server) Route(ctx context.Context, req *RouteRequest) (*RouteResponse, error) {
	r, err := s.svc.Routes.ToCampaign(ctx, req.Origin, req.CampaignID)
	if err != nil {
		return &RouteResponse{Envelope: failure("route", err)}, nil
	}
	return &RouteResponse{Envelope: success("Route computed."), Route: r}, nil
}

func (s *Server) CreateCampaign(ctx context.Context, req *CreateCampaignRequest) (*CampaignResponse, error) {
	types, err := parseTypes(req.Types)
	if err != nil {
		return &CampaignResponse{Envelope: failure("create campaign", err)}, nil
	}
	c, err := s.svc.Campaigns.Create(ctx, domain.CampaignDraft{
		Title:       req.Title,
		Subtitle:    req.Subtitle,
		Description: req.Description,
		Image:       req.Image,
		Goal:        req.Goal,
		Types:       types,
		PixKey:      req.PixKey,
		Location:    req.Location,
	})
	if err != nil {
		return &CampaignResponse{Envelope: failure("create campaign", err)}, nil
	}
	card := application.NewCampaignCard(*c)
	return &CampaignResponse{Envelope: success("Campanha criada com sucesso!"), Card: &card}, nil
}

func (s *Server) UpdateCampaign(ctx context.Context, req *UpdateCampaignRequest) (*CampaignResponse, error) {
	types, err := parseTypes(req.Types)
	if err != nil {
		return &CampaignResponse{Envelope: failure("update campaign", err)}, nil
	}
	c, err := s.svc.Campaigns.Update(ctx, req.ID, domain.CampaignUpdate{
		Title:       req.Title,
		Subtitle:    req.Subtitle,
		Description: req.Description,
		Image:       req.Image,
		Types:       types,
		PixKey:      req.PixKey,
	})
	if err != nil {
		return &CampaignResponse{Envelope: failure("update campaign", err)}, nil
	}
	card := application.NewCampaignCard(*c)
	return &CampaignResponse{Envelope: success("Campanha atualizada com sucesso!"), Card: &card}, nil
}

func (s *Server) SetCampaignLocation(ctx context.Context, req *LocationRequest) (*StatusResponse, error) {
	if err := s.svc.Campaigns.SetLocation(ctx, req.CampaignID, req.Location); err != nil {
		return &StatusResponse{Envelope: failure("set campaign location", err)}, nil
	}
	return &StatusResponse{Envelope: success("Localização atualizada")}, nil
}

func (s *Server) MyCampaigns(ctx context.Context, _ *Empty) (*CampaignListResponse, error) {
	cards, err := s.svc.Campaigns.Mine(ctx)
	if err != nil {
		return &CampaignListResponse{Envelope: failure("my campaigns", err)}, nil
	}
	return &CampaignListResponse{Envelope: success("Campaigns successfully fetched."), Cards: cards}, nil
}

func (s *Server) Pix(ctx context.Context, req *CampaignRequest) (*PixResponse, error) {
	pix, err := s.svc.Donations.Pix(ctx, req.ID)
	if err != nil {
		return &PixResponse{Envelope: failure("pix", err)}, nil
	}
	return &PixResponse{Envelope: success("PIX key fetched."), Pix: pix}, nil
}

func (s *Server) Donate(ctx context.Context, req *DonateRequest) (*DonationResponse, error) {
	amount, err := application.ParseAmount(req.Amount)
	if err != nil {
		return &DonationResponse{Envelope: failure("donate", err)}, nil
	}
	rec, err := s.svc.Donations.Donate(ctx, req.CampaignID, amount)
	if err != nil {
		return &DonationResponse{Envelope: failure("donate", err)}, nil
	}
	return &DonationResponse{Envelope: success("Doação Registrada!"), Donation: rec}, nil
}

func (s *Server) History(ctx context.Context, req *HistoryRequest) (*HistoryResponse, error) {
	records, err := s.svc.Donations.History(ctx, application.HistoryRequest{
		Query:      application.HistoryQuery{Name: req.Name, DateFrom: req.DateFrom, DateTo: req.DateTo},
		CampaignID: req.CampaignID,
	})
	if err != nil {
		return &HistoryResponse{Envelope: failure("history", err)}, nil
	}
	return &HistoryResponse{Envelope: success("History fetched."), Records: records}, nil
}

func (s *Server) Certificate(ctx context.Context, req *CertificateRequest) (*CertificateResponse, error) {
	cert, err := s.svc.Donations.Certificate(ctx, req.DonationID)
	if err != nil {
		return &CertificateResponse{Envelope: failure("certificate", err)}, nil
	}
	page, err := cert.HTML()
	if err != nil {
		return &CertificateResponse{Envelope: failure("certificate", err)}, nil
	}
	return &CertificateResponse{Envelope: success("Certificate generated."), Certificate: cert, HTML: page}, nil
}

type claimsKey struct{}

func claimsFrom(ctx context.Context) *auth.Claims {
	claims, _ := ctx.Value(claimsKey{}).(*auth.Claims)
	return claims
}

// AuthInterceptor checks the bearer token of every non-public HelpwayService
// method and requires it to belong to the logged-in user. Other services,
// such as health, pass through.
func (s *Server) AuthInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	if publicMethods[info.FullMethod] || !strings.HasPrefix(info.FullMethod, "/"+ServiceName+"/") {
		return handler(ctx, req)
	}
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "missing metadata")
	}
	authHeader := md.Get("authorization")
	if len(authHeader) == 0 {
		return nil, status.Error(codes.Unauthenticated, "missing authorization")
	}
	token := strings.TrimPrefix(authHeader[0], "Bearer ")
	claims, err := s.svc.Tokens.ValidateToken(token)
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, err.Error())
	}
	if err := s.svc.Auth.Authorize(claims); err != nil {
		return nil, status.Error(codes.Unauthenticated, "session expired")
	}
	return handler(context.WithValue(ctx, claimsKey{}, claims), req)
}
