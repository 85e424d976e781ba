package auth

import (
	"context"
	"errors"
)

// ErrLoginFailed is returned by Await when submitted credentials are rejected.
var ErrLoginFailed = errors.New("incorrect username or password")

type request struct {
	creds Credentials
	reply chan bool
}

// Gate hands credentials from the input side to the side waiting for a
// login, one request at a time.
type Gate struct {
	store    *CredentialStore
	requests chan request
}

// NewGate creates a Gate checking against store.
func NewGate(store *CredentialStore) *Gate {
	return &Gate{store: store, requests: make(chan request)}
}

// Submit sends c to the waiting side and blocks until it has been checked.
// It returns false if ctx ends first.
func (g *Gate) Submit(ctx context.Context, c Credentials) bool {
	req := request{creds: c, reply: make(chan bool, 1)}
	select {
	case g.requests <- req:
	case <-ctx.Done():
		return false
	}
	select {
	case ok := <-req.reply:
		return ok
	case <-ctx.Done():
		return false
	}
}

// Await blocks for the next submission and checks it.
func (g *Gate) Await(ctx context.Context) error {
	select {
	case req := <-g.requests:
		ok := g.store.Check(req.creds)
		req.reply <- ok
		if !ok {
			return ErrLoginFailed
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
