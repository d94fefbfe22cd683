package session

import (
	"context"
	"time"

	"github.com/gofrs/uuid"
	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// TokenLifetime is the fixed lifetime of an issued token, shared by the
// token's expiry claim and the store entry TTL. The TTL is not sliding.
const TokenLifetime = 24 * time.Hour

// ErrNotFound is returned by Revoke when the token had no store entry,
// because it was never issued, already revoked or expired.
var ErrNotFound = errors.New("session not found")

type (
	// A Record is the store-side value bound to an issued token,
	// the identity resolved on every protected request.
	Record struct {
		UserID   int    `json:"id"`
		UserUUID string `json:"uuid"`
	}

	// A Manager issues tokens at login, answers validity queries and
	// revokes tokens at logout.
	Manager interface {
		// Issue generates a signed time-bounded token for the given user
		// and binds a session record to it in the store.
		Issue(ctx context.Context, userID int, userUUID string) (string, error)
		// Resolve returns the record bound to the given token, or nil
		// when the store holds no entry for it. The store TTL is the sole
		// expiry authority, the token's own claims are not re-verified.
		Resolve(ctx context.Context, token string) (*Record, error)
		// Revoke deletes the store entry of the given token. Revoking a
		// token without an entry fails with ErrNotFound.
		Revoke(ctx context.Context, token string) error
	}

	manager struct {
		store      Store
		signingKey []byte
	}
)

// NewManager returns a new manager backed by the given store.
func NewManager(store Store, signingKey []byte) Manager {
	return &manager{
		store:      store,
		signingKey: signingKey,
	}
}

func (m *manager) Issue(ctx context.Context, userID int, userUUID string) (string, error) {
	now := time.Now()

	// The jti claim makes every issuance distinct, even within the same
	// second. Each login gets its own token and its own store entry.
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": userID,
		"jti":    uuid.Must(uuid.NewV4()).String(),
		"iat":    now.Unix(),
		"exp":    now.Add(TokenLifetime).Unix(),
	})

	t, err := token.SignedString(m.signingKey)
	if err != nil {
		return "", errors.Wrap(err, "could not sign token")
	}

	record := Record{UserID: userID, UserUUID: userUUID}
	if err := m.store.Set(ctx, t, record, TokenLifetime); err != nil {
		return "", err
	}

	return t, nil
}

func (m *manager) Resolve(ctx context.Context, token string) (*Record, error) {
	return m.store.Get(ctx, token)
}

func (m *manager) Revoke(ctx context.Context, token string) error {
	deleted, err := m.store.Del(ctx, token)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}
