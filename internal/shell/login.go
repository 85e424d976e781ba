package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"IndicatorScope/internal/auth"
)

// Login prompts for credentials on out, reads them from lines and blocks
// until the gate accepts a login or attempts run out. No input is read
// after the last attempt.
func Login(ctx context.Context, gate *auth.Gate, lines <-chan string, out io.Writer, attempts int) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		for i := 1; i <= attempts; i++ {
			user, ok := prompt(ctx, out, "username: ", lines)
			if !ok {
				cancel()
				return
			}
			pass, ok := prompt(ctx, out, "password: ", lines)
			if !ok {
				cancel()
				return
			}
			if gate.Submit(ctx, auth.Credentials{Username: user, Password: pass}) {
				return
			}
			if ctx.Err() != nil || i == attempts {
				return
			}
			fmt.Fprintln(out, errColor.Sprint(auth.ErrLoginFailed.Error()))
		}
	}()

	for i := 0; i < attempts; i++ {
		err := gate.Await(ctx)
		if err == nil {
			log.Println("[INFO] login accepted")
			fmt.Fprintln(out, okColor.Sprint("Login successful"))
			return nil
		}
		if !errors.Is(err, auth.ErrLoginFailed) {
			return fmt.Errorf("login: %w", err)
		}
		log.Printf("[WARN] login attempt %d/%d rejected", i+1, attempts)
	}
	return auth.ErrLoginFailed
}

func prompt(ctx context.Context, out io.Writer, label string, lines <-chan string) (string, bool) {
	fmt.Fprint(out, label)
	select {
	case line, ok := <-lines:
		return line, ok
	case <-ctx.Done():
		return "", false
	}
}
