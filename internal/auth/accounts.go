package auth

import (
	"crypto/subtle"

	"github.com/sainthonore/pedidos/internal/config"
	"github.com/sirupsen/logrus"
)

// Account is an authenticated user and the brands whose orders they see.
type Account struct {
	Username string
	Brands   []string
}

// Accounts authenticates against the configured users.
type Accounts struct {
	users map[string]config.UserConfig
	log   logrus.FieldLogger
}

// NewAccounts indexes users by name.
func NewAccounts(users []config.UserConfig, log logrus.FieldLogger) *Accounts {
	m := make(map[string]config.UserConfig, len(users))
	for _, u := range users {
		m[u.Username] = u
	}
	return &Accounts{users: m, log: log}
}

// Lookup returns the account named username.
func (a *Accounts) Lookup(username string) (Account, bool) {
	u, ok := a.users[username]
	if !ok {
		return Account{}, false
	}
	return Account{Username: u.Username, Brands: append([]string(nil), u.Brands...)}, true
}

// Authenticate checks a username/password pair.
func (a *Accounts) Authenticate(username, password string) (Account, bool) {
	u, ok := a.users[username]
	if !ok {
		return Account{}, false
	}

	var match bool
	if u.PasswordHash != "" {
		var err error
		match, err = VerifyPassword(password, u.PasswordHash)
		if err != nil {
			a.log.WithError(err).WithField("user", username).Error("stored password hash unusable")
			return Account{}, false
		}
	} else {
		match = subtle.ConstantTimeCompare([]byte(password), []byte(u.Password)) == 1
	}
	if !match {
		return Account{}, false
	}
	return a.Lookup(username)
}
