// internal/adapters/unlock/pin.go
package unlock

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"

	"github.com/helpway/helpway-core/internal/domain"
	"github.com/helpway/helpway-core/internal/ports"
)

const pinKey = "unlock_pin"

const minPINLength = 4

// PINGate verifies a device PIN, the fallback of the platform biometric prompt.
// The bcrypt hash lives in the secure store.
type PINGate struct {
	store ports.SecureStorePort
}

func NewPINGate(store ports.SecureStorePort) *PINGate {
	return &PINGate{store: store}
}

var _ ports.UnlockPort = (*PINGate)(nil)

func (g *PINGate) SetPIN(ctx context.Context, pin string) error {
	if utf8.RuneCountInString(pin) < minPINLength {
		return domain.Invalid("pin", fmt.Sprintf("O PIN deve ter pelo menos %d dígitos", minPINLength))
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return errors.New("failed to hash pin")
	}
	return g.store.Put(ctx, pinKey, hash)
}

func (g *PINGate) Unlock(ctx context.Context, pin string) error {
	hash, err := g.store.Get(ctx, pinKey)
	if err != nil {
		return err
	}
	if hash == nil {
		return domain.ErrUnlockNotSet
	}
	if err := bcrypt.CompareHashAndPassword(hash, []byte(pin)); err != nil {
		return domain.ErrUnlockFailed
	}
	return nil
}

func (g *PINGate) Reset(ctx context.Context) error {
	return g.store.Delete(ctx, pinKey)
}
