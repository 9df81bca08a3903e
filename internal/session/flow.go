package session

import (
	"context"
	"errors"
	"log"

	"pickfoo-owner/internal/api"
	"pickfoo-owner/internal/domain"
	"pickfoo-owner/internal/localstore"
)

// FlowAPI is the slice of the backend client the sign-in flow needs.
type FlowAPI interface {
	Login(ctx context.Context, email, password string) (*domain.User, error)
	Register(ctx context.Context, name, email, password string) (*domain.User, error)
	VerifyEmail(ctx context.Context, email, otp string) (*domain.User, error)
	ResendOTP(ctx context.Context, email string) error
}

// ErrNoPendingVerification is returned when a verify/resend is attempted
// with no email waiting on an OTP.
var ErrNoPendingVerification = errors.New("session: no email pending verification")

// Flow drives login, registration, and the email-verification hop between
// them. The address waiting on an OTP is mirrored to the local store so a
// restart lands back on the verification step instead of a dead end.
type Flow struct {
	api   FlowAPI
	store *Store
	local *localstore.Store
}

func NewFlow(flowAPI FlowAPI, store *Store, local *localstore.Store) *Flow {
	return &Flow{api: flowAPI, store: store, local: local}
}

// Login authenticates and assigns the session. A rejection for an unverified
// email records the address and surfaces the typed error so the caller can
// route to the verification step.
func (f *Flow) Login(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := f.api.Login(ctx, email, password)
	if err != nil {
		var needs *api.ErrNeedsVerification
		if errors.As(err, &needs) {
			f.setPending(needs.Email)
		}
		return nil, err
	}
	f.store.SetAuth(user)
	f.clearPending()
	return user, nil
}

// Register creates the owner account. The account starts unverified: the
// address is recorded as pending and the session stays signed out until
// Verify succeeds.
func (f *Flow) Register(ctx context.Context, name, email, password string) error {
	if _, err := f.api.Register(ctx, name, email, password); err != nil {
		return err
	}
	f.setPending(email)
	return nil
}

// PendingVerification returns the email waiting on an OTP, if any.
func (f *Flow) PendingVerification() (string, bool) {
	if f.local == nil {
		return "", false
	}
	email, ok, err := f.local.Get(localstore.KeyVerifyEmail)
	if err != nil {
		log.Printf("[session] failed to read pending verification: %v", err)
		return "", false
	}
	return email, ok && email != ""
}

// Verify submits the OTP for the pending address, signs the session in, and
// clears the pending marker.
func (f *Flow) Verify(ctx context.Context, otp string) (*domain.User, error) {
	email, ok := f.PendingVerification()
	if !ok {
		return nil, ErrNoPendingVerification
	}
	user, err := f.api.VerifyEmail(ctx, email, otp)
	if err != nil {
		return nil, err
	}
	f.store.SetAuth(user)
	f.clearPending()
	return user, nil
}

// ResendOTP requests a fresh code for the pending address.
func (f *Flow) ResendOTP(ctx context.Context) error {
	email, ok := f.PendingVerification()
	if !ok {
		return ErrNoPendingVerification
	}
	return f.api.ResendOTP(ctx, email)
}

func (f *Flow) setPending(email string) {
	if f.local == nil {
		return
	}
	if err := f.local.Set(localstore.KeyVerifyEmail, email); err != nil {
		log.Printf("[session] failed to record pending verification: %v", err)
	}
}

func (f *Flow) clearPending() {
	if f.local == nil {
		return
	}
	if err := f.local.Delete(localstore.KeyVerifyEmail); err != nil {
		log.Printf("[session] failed to clear pending verification: %v", err)
	}
}
