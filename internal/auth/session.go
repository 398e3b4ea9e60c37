package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/gorilla/securecookie"
)

var (
	// ErrBadSignature is returned for a tampered or malformed token.
	ErrBadSignature = errors.New("bad session signature")
	// ErrExpired is returned for a token older than the max age.
	ErrExpired = errors.New("session expired")
)

// cookieName binds tokens to the session cookie; securecookie signs it
// together with the value.
const cookieName = "session"

type sessionValue struct {
	User   string `json:"u"`
	Issued int64  `json:"t"`
}

// Signer issues and checks HMAC signed session tokens.
type Signer struct {
	codec  *securecookie.SecureCookie
	maxAge time.Duration
	now    func() time.Time
}

// NewSigner creates a signer. Tokens older than maxAge are rejected.
func NewSigner(secret string, maxAge time.Duration) (*Signer, error) {
	if secret == "" {
		return nil, errors.New("session secret is empty")
	}
	codec := securecookie.New([]byte(secret), nil).
		SetSerializer(securecookie.JSONEncoder{})
	// Expiry is checked against the issued time carried in the value, so
	// the codec's own wall clock check is off.
	codec.MaxAge(0)
	return &Signer{codec: codec, maxAge: maxAge, now: time.Now}, nil
}

// MaxAge returns the token lifetime.
func (s *Signer) MaxAge() time.Duration { return s.maxAge }

// Sign issues a token for username.
func (s *Signer) Sign(username string) (string, error) {
	token, err := s.codec.Encode(cookieName, sessionValue{User: username, Issued: s.now().Unix()})
	if err != nil {
		return "", fmt.Errorf("sign session: %w", err)
	}
	return token, nil
}

// Verify returns the username carried by a valid, unexpired token.
func (s *Signer) Verify(token string) (string, error) {
	var v sessionValue
	if err := s.codec.Decode(cookieName, token, &v); err != nil {
		return "", fmt.Errorf("%w: %v", ErrBadSignature, err)
	}
	if v.User == "" {
		return "", ErrBadSignature
	}
	if s.now().Sub(time.Unix(v.Issued, 0)) > s.maxAge {
		return "", ErrExpired
	}
	return v.User, nil
}
