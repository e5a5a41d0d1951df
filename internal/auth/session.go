package auth

import (
	"encoding/gob"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/securecookie"
)

// CookieName is the name of the shopper cookie.
const CookieName = "smartmart_shopper"

func init() {
	gob.Register(uuid.UUID{})
	gob.Register(ShopperSession{})
}

// ShopperSession identifies an anonymous shopper and their cart.
type ShopperSession struct {
	ShopperID uuid.UUID
	CartID    uuid.UUID
	CreatedAt time.Time
	ExpiresAt time.Time
}

// SessionStore manages shopper cookies.
type SessionStore struct {
	cookie *securecookie.SecureCookie
	name   string
	maxAge int
	secure bool
}

// NewSessionStore creates a new session store.
// The secret must be at least 64 bytes: first 32 for hash key, next 32 for block key.
func NewSessionStore(secret string, maxAge time.Duration, secure bool) *SessionStore {
	hashKey := []byte(secret)[:32]
	blockKey := []byte(secret)[32:64]

	return &SessionStore{
		cookie: securecookie.New(hashKey, blockKey),
		name:   CookieName,
		maxAge: int(maxAge.Seconds()),
		secure: secure,
	}
}

// NewShopper returns a fresh session with new shopper and cart IDs.
func NewShopper() *ShopperSession {
	return &ShopperSession{
		ShopperID: uuid.New(),
		CartID:    uuid.New(),
	}
}

// Get retrieves the session from the request cookie.
func (s *SessionStore) Get(r *http.Request) (*ShopperSession, error) {
	cookie, err := r.Cookie(s.name)
	if err != nil {
		return nil, err
	}

	var data ShopperSession
	if err := s.cookie.Decode(s.name, cookie.Value, &data); err != nil {
		return nil, err
	}

	if time.Now().After(data.ExpiresAt) {
		return nil, http.ErrNoCookie
	}

	return &data, nil
}

// Set stores the session in a cookie, refreshing its expiry.
func (s *SessionStore) Set(w http.ResponseWriter, data *ShopperSession) error {
	now := time.Now()
	if data.CreatedAt.IsZero() {
		data.CreatedAt = now
	}
	data.ExpiresAt = now.Add(time.Duration(s.maxAge) * time.Second)

	encoded, err := s.cookie.Encode(s.name, data)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     s.name,
		Value:    encoded,
		Path:     "/",
		MaxAge:   s.maxAge,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})

	return nil
}

// Clear removes the session cookie.
func (s *SessionStore) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
