package accounts

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pixil98/go-testutil"
	"golang.org/x/crypto/bcrypt"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "accounts.db"), WithBcryptCost(bcrypt.MinCost))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestNormalize(t *testing.T) {
	tests := map[string]struct {
		in   string
		want string
	}{
		"lower":      {in: "ana", want: "ana"},
		"upper":      {in: "ANA", want: "ana"},
		"trimmed":    {in: "  Ana ", want: "ana"},
		"composed":   {in: "José", want: "josé"},
		"sharp s":    {in: "Straße", want: "strasse"},
		"whitespace": {in: "   ", want: ""},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, "normalized", Normalize(tt.in), tt.want)
		})
	}
}

func TestRegisterVerify(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)

	id, err := s.Register(ctx, "Ana", "secret")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	u, err := s.Verify(ctx, "ANA", "secret")
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	testutil.AssertEqual(t, "id", u.ID, id)
	testutil.AssertEqual(t, "username", u.Username, "ana")
	if u.Password == "secret" {
		t.Errorf("password stored in clear text")
	}

	_, err = s.Verify(ctx, "ana", "wrong")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials for bad password, got %v", err)
	}
	_, err = s.Verify(ctx, "bob", "secret")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials for unknown user, got %v", err)
	}
}

func TestRegister_Errors(t *testing.T) {
	tests := map[string]struct {
		username string
		password string
		wantErr  error
	}{
		"taken": {
			username: " aNa",
			password: "other",
			wantErr:  ErrUsernameTaken,
		},
		"blank username": {
			username: "  ",
			password: "secret",
			wantErr:  ErrInvalidUsername,
		},
		"long username": {
			username: "abcdefghijklmnopqrstuvwxyzabcdefg",
			password: "secret",
			wantErr:  ErrInvalidUsername,
		},
		"short password": {
			username: "bob",
			password: "abc",
			wantErr:  ErrInvalidPassword,
		},
		"password too long for bcrypt": {
			username: "bob",
			password: strings.Repeat("p", MaxPasswordLength+1),
			wantErr:  ErrInvalidPassword,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			s := openStore(t)
			if _, err := s.Register(context.Background(), "Ana", "secret"); err != nil {
				t.Fatalf("seed: %v", err)
			}

			_, err := s.Register(context.Background(), tt.username, tt.password)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}
