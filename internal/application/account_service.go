// internal/application/account_service.go
package application

import (
	"context"
	"log"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/helpway/helpway-core/internal/domain"
	"github.com/helpway/helpway-core/internal/ports"
)

const minPasswordLength = 6

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type Registration struct {
	Name            string
	Email           string
	BirthDate       string // YYYY-MM-DD
	Password        string
	ConfirmPassword string
	Image           string
	Role            domain.UserRole
}

type AccountChange struct {
	Name      string
	Email     string
	BirthDate string // YYYY-MM-DD
	Role      domain.UserRole
	Image     string // empty keeps the current image

	ChangePassword     bool
	CurrentPassword    string
	NewPassword        string
	ConfirmNewPassword string
}

type AccountService struct {
	api      ports.HelpwayAPIPort
	sessions *SessionService
}

func NewAccountService(api ports.HelpwayAPIPort, sessions *SessionService) *AccountService {
	return &AccountService{api: api, sessions: sessions}
}

// isoBirthDate turns a YYYY-MM-DD date into the midnight UTC timestamp the API stores.
func isoBirthDate(date string) (string, error) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(date))
	if err != nil {
		return "", domain.Invalid("birth_date", "Data de nascimento inválida")
	}
	return t.UTC().Format("2006-01-02T15:04:05.000Z"), nil
}

func validRole(r domain.UserRole) bool {
	return r == domain.RoleDonor || r == domain.RoleOrganizer
}

func validateRegistration(r Registration) error {
	if !emailPattern.MatchString(r.Email) {
		return domain.Invalid("email", "Digite um e-mail válido.")
	}
	if r.Password != r.ConfirmPassword {
		return domain.Invalid("password", "As senhas não coincidem.")
	}
	if utf8.RuneCountInString(r.Password) < minPasswordLength {
		return domain.Invalid("password", "A senha deve ter no mínimo 6 caracteres.")
	}
	if strings.TrimSpace(r.Name) == "" || strings.TrimSpace(r.BirthDate) == "" {
		return domain.Invalid("fields", "Por favor, preencha todos os campos.")
	}
	if !validRole(r.Role) {
		return domain.Invalid("role", "Tipo de usuário inválido")
	}
	return nil
}

// Register creates the account and then signs in with it.
func (s *AccountService) Register(ctx context.Context, r Registration) (*domain.Session, error) {
	r.Email = strings.TrimSpace(r.Email)
	if err := validateRegistration(r); err != nil {
		return nil, err
	}
	birth, err := isoBirthDate(r.BirthDate)
	if err != nil {
		return nil, err
	}
	if _, err := s.api.CreateUser(ctx, domain.NewUser{
		Name:      strings.TrimSpace(r.Name),
		Email:     r.Email,
		BirthDate: birth,
		Password:  r.Password,
		Image:     r.Image,
		Role:      r.Role,
	}); err != nil {
		return nil, err
	}
	return s.sessions.Login(ctx, r.Email, r.Password)
}

// UpdateAccount patches the profile. Without a password change the cached
// credential authorizes the update.
func (s *AccountService) UpdateAccount(ctx context.Context, c AccountChange) (*domain.User, error) {
	sess := s.sessions.Current()
	if sess == nil {
		return nil, domain.ErrNoSession
	}

	authorizing := sess.Credential
	if c.ChangePassword {
		if c.CurrentPassword == "" {
			return nil, domain.Invalid("current_password", "Para trocar a senha, você precisa digitar sua senha atual.")
		}
		if utf8.RuneCountInString(c.NewPassword) < minPasswordLength {
			return nil, domain.Invalid("new_password", "A nova senha precisa ter no mínimo 6 caracteres.")
		}
		if c.NewPassword != c.ConfirmNewPassword {
			return nil, domain.Invalid("new_password", "As novas senhas não coincidem.")
		}
		authorizing = c.CurrentPassword
	}
	if authorizing == "" {
		return nil, domain.ErrNoSession
	}

	email := strings.TrimSpace(c.Email)
	if !emailPattern.MatchString(email) {
		return nil, domain.Invalid("email", "Digite um e-mail válido.")
	}
	if strings.TrimSpace(c.Name) == "" {
		return nil, domain.Invalid("name", "Por favor, preencha todos os campos.")
	}
	if !validRole(c.Role) {
		return nil, domain.Invalid("role", "Tipo de usuário inválido")
	}
	birth, err := isoBirthDate(c.BirthDate)
	if err != nil {
		return nil, err
	}

	update := domain.UserUpdate{
		Name:            strings.TrimSpace(c.Name),
		Email:           email,
		BirthDate:       birth,
		Role:            c.Role,
		Image:           c.Image,
		CurrentPassword: authorizing,
	}
	if c.ChangePassword {
		update.NewPassword = c.NewPassword
	}
	if err := s.api.UpdateUser(ctx, sess.User.ID, update); err != nil {
		return nil, err
	}

	user := sess.User
	user.Name = update.Name
	user.Email = update.Email
	user.BirthDate = update.BirthDate
	user.Role = update.Role
	if c.Image != "" {
		user.Image = c.Image
	}
	if fresh, err := s.api.GetUser(ctx, sess.User.ID); err != nil {
		log.Printf("account: profile refresh after update failed, keeping local copy: %v", err)
	} else if fresh != nil && fresh.ID == sess.User.ID {
		user = *fresh
	}
	if err := s.sessions.UpdateUser(ctx, user, update.NewPassword); err != nil {
		return nil, err
	}
	return &user, nil
}
