package store

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"table-booking/internal/model"
)

// userKey names the flat record holding the active identity.
const userKey = "user"

// UserStore persists the identity provider's active user record so a
// session survives a restart.  Absence simply means nobody is logged in.
type UserStore struct {
	kv KV
}

// NewUserStore returns a UserStore over the given KV backend.
func NewUserStore(kv KV) *UserStore { return &UserStore{kv: kv} }

// Load reads the persisted user.  The second return value reports
// whether a user record exists; corrupt records count as absent.
func (s *UserStore) Load(ctx context.Context) (model.User, bool, error) {
	raw, err := s.kv.Get(ctx, userKey)
	if errors.Is(err, ErrNotFound) {
		return model.User{}, false, nil
	}
	if err != nil {
		return model.User{}, false, err
	}
	var u model.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		log.Printf("store: corrupt user record, treating as logged out: %v", err)
		return model.User{}, false, nil
	}
	return u, true, nil
}

// Save writes the user record.
func (s *UserStore) Save(ctx context.Context, u model.User) error {
	raw, err := json.Marshal(u)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, userKey, string(raw))
}

// Clear removes the user record on logout.
func (s *UserStore) Clear(ctx context.Context) error {
	return s.kv.Del(ctx, userKey)
}
