// internal/domain/errors.go
package domain

import (
	"errors"
	"fmt"
)

var (
	ErrTransport          = errors.New("network unavailable")
	ErrStorage            = errors.New("local storage failure")
	ErrMalformedResponse  = errors.New("malformed response")
	ErrNoSession          = errors.New("no active session")
	ErrBiometricsDisabled = errors.New("biometric login is not enabled")
	ErrUnlockFailed       = errors.New("local unlock failed")
	ErrUnlockNotSet       = errors.New("local unlock is not configured")
)

// ValidationError is a client-side input check that failed before any network call.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func Invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// APIError is a non-2xx answer of the remote API.
type APIError struct {
	Op         string
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

func (e *APIError) Detail() string {
	return fmt.Sprintf("%s: status %d: %s", e.Op, e.StatusCode, e.Message)
}

// UserMessage reduces any error to the single line shown to the user.
func UserMessage(err error) string {
	var verr *ValidationError
	var aerr *APIError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &verr):
		return verr.Message
	case errors.As(err, &aerr):
		return aerr.Message
	case errors.Is(err, ErrTransport):
		return "Não foi possível conectar ao servidor"
	case errors.Is(err, ErrMalformedResponse):
		return "Resposta inválida do servidor"
	case errors.Is(err, ErrNoSession):
		return "Sessão inválida, faça login novamente"
	case errors.Is(err, ErrBiometricsDisabled):
		return "Login por biometria não está ativado"
	case errors.Is(err, ErrUnlockFailed), errors.Is(err, ErrUnlockNotSet):
		return "Falha na autenticação biométrica"
	case errors.Is(err, ErrStorage):
		return "Erro ao acessar o armazenamento local"
	}
	return err.Error()
}
