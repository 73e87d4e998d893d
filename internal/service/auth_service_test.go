package service

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestLoginFlagLifecycle(t *testing.T) {
	auth := NewAuthService("admin", "admin123")

	if auth.IsAuthenticated() {
		t.Fatal("flag set before login")
	}

	if err := auth.Login("admin", "wrong"); err != ErrInvalidCredentials {
		t.Fatalf("bad password: err = %v, want ErrInvalidCredentials", err)
	}
	if auth.IsAuthenticated() {
		t.Fatal("flag set after failed login")
	}

	if err := auth.Login("admin", "admin123"); err != nil {
		t.Fatalf("valid login: %v", err)
	}
	if !auth.IsAuthenticated() {
		t.Fatal("flag not set after login")
	}

	auth.Logout()
	if auth.IsAuthenticated() {
		t.Fatal("flag still set after logout")
	}

	// Empty credentials never authenticate.
	if err := auth.Login("", ""); err != ErrInvalidCredentials {
		t.Fatalf("empty credentials: err = %v, want ErrInvalidCredentials", err)
	}
}

// Login succeeds only for the exact configured pair.
func TestProperty_OnlyExactCredentialsAuthenticate(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("any other input is rejected", prop.ForAll(
		func(username, password string) bool {
			auth := NewAuthService("admin", "admin123")
			err := auth.Login(username, password)
			if username == "admin" && password == "admin123" {
				return err == nil && auth.IsAuthenticated()
			}
			return err == ErrInvalidCredentials && !auth.IsAuthenticated()
		},
		gen.AlphaString(),
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}
