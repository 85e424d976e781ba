package auth

import (
	"log"

	"IndicatorScope/internal/reftable"
)

// Credentials is a username and password pair.
type Credentials struct {
	Username string
	Password string
}

// CredentialStore holds the accepted logins.
type CredentialStore struct {
	users map[string]string
}

// LoadCredentials reads "username,password" lines from path. A missing or
// unreadable file yields an empty store that accepts nobody.
func LoadCredentials(path string) *CredentialStore {
	rows, err := reftable.ReadRows(path)
	if err != nil {
		log.Printf("[WARN] credential file unavailable: %v", err)
		return NewCredentialStore(nil)
	}
	return NewCredentialStore(rows)
}

// NewCredentialStore builds a store from parsed rows. Rows without both
// fields are skipped.
func NewCredentialStore(rows reftable.Rows) *CredentialStore {
	s := &CredentialStore{users: make(map[string]string)}
	for _, row := range rows {
		if len(row) < 2 {
			continue
		}
		s.users[row[0]] = row[1]
	}
	return s
}

// Check reports whether c matches a stored login.
func (s *CredentialStore) Check(c Credentials) bool {
	if c.Username == "" {
		return false
	}
	pw, ok := s.users[c.Username]
	return ok && pw == c.Password
}

// Len returns the number of stored logins.
func (s *CredentialStore) Len() int { return len(s.users) }
