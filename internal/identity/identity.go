// Package identity implements the mock identity provider.  Verification
// is an injectable strategy so a real authentication backend can be
// swapped in without touching booking logic; the built-in stub accepts
// one configured admin credential pair and any other non-empty pair.
package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"table-booking/internal/model"
	"table-booking/internal/store"
)

// ErrInvalidCredentials is returned when a login or signup attempt does
// not satisfy the verifier.
var ErrInvalidCredentials = errors.New("identity: invalid credentials")

// Verifier decides whether a credential pair identifies a user.  The
// returned user is fully populated; ok is false on rejection.
type Verifier interface {
	Verify(email, password string) (model.User, bool)
}

// StaticVerifier is the built-in stub.  The configured admin pair
// yields the admin user; any other pair with a non-empty email and
// password yields a regular user whose display name is derived from
// the email's local part.  The admin password is held as a bcrypt hash
// so the plain value never sits in memory longer than construction.
type StaticVerifier struct {
	adminEmail string
	adminHash  []byte
	now        func() time.Time
}

// NewStaticVerifier builds the stub around the admin credential pair.
func NewStaticVerifier(adminEmail, adminPassword string) (*StaticVerifier, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &StaticVerifier{
		adminEmail: strings.ToLower(adminEmail),
		adminHash:  hash,
		now:        time.Now,
	}, nil
}

// Verify implements Verifier.
func (v *StaticVerifier) Verify(email, password string) (model.User, bool) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return model.User{}, false
	}
	if email == v.adminEmail && bcrypt.CompareHashAndPassword(v.adminHash, []byte(password)) == nil {
		return model.User{
			ID:      "admin-1",
			Email:   email,
			Name:    "Admin User",
			IsAdmin: true,
		}, true
	}
	return model.User{
		ID:      fmt.Sprintf("user-%d", v.now().UnixMilli()),
		Email:   email,
		Name:    displayName(email),
		IsAdmin: false,
	}, true
}

// displayName derives a display name from the part of the email before
// the "@".
func displayName(email string) string {
	if i := strings.IndexByte(email, '@'); i > 0 {
		return email[:i]
	}
	return email
}

// Provider performs login, signup and logout and persists the active
// user record so identity survives restarts.  It owns the User type;
// booking logic only ever reads it.
type Provider struct {
	verifier Verifier
	users    *store.UserStore
	now      func() time.Time
}

// NewProvider returns a Provider using the given verification strategy
// and user store.
func NewProvider(verifier Verifier, users *store.UserStore) *Provider {
	return &Provider{verifier: verifier, users: users, now: time.Now}
}

// Login authenticates a credential pair and persists the resulting
// user.
func (p *Provider) Login(ctx context.Context, email, password string) (model.User, error) {
	u, ok := p.verifier.Verify(email, password)
	if !ok {
		return model.User{}, ErrInvalidCredentials
	}
	if err := p.users.Save(ctx, u); err != nil {
		return model.User{}, err
	}
	return u, nil
}

// Signup creates a regular user whenever email, password and name are
// all non-empty.  Signup never produces an admin.
func (p *Provider) Signup(ctx context.Context, email, password, name string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	name = strings.TrimSpace(name)
	if email == "" || password == "" || name == "" {
		return model.User{}, ErrInvalidCredentials
	}
	u := model.User{
		ID:      fmt.Sprintf("user-%d", p.now().UnixMilli()),
		Email:   email,
		Name:    name,
		IsAdmin: false,
	}
	if err := p.users.Save(ctx, u); err != nil {
		return model.User{}, err
	}
	return u, nil
}

// Logout clears the persisted identity.
func (p *Provider) Logout(ctx context.Context) error {
	return p.users.Clear(ctx)
}

// Current returns the persisted user, if any.
func (p *Provider) Current(ctx context.Context) (model.User, bool, error) {
	return p.users.Load(ctx)
}
