package session_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/techexpo/console/internal/session"
)

func adminUser() session.AuthUser {
	return session.AuthUser{
		ID:       1,
		Email:    "admin@example.com",
		Username: "admin",
		Role:     session.RoleAdmin,
	}
}

// unsigned token with the given expiry, parseable but not verifiable,
// which is all the console ever does with it.
func tokenWithExp(t *testing.T, exp time.Time) string {
	t.Helper()

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "1",
		"exp": exp.Unix(),
	})
	raw, err := tok.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return raw
}

// stores under test share one contract; run the same battery on each.
func eachStore(t *testing.T, run func(t *testing.T, s session.Store)) {
	t.Helper()

	t.Run("memory", func(t *testing.T) {
		run(t, session.NewMemoryStore())
	})
	t.Run("file", func(t *testing.T) {
		run(t, session.NewFileStore(t.TempDir(), "file-store-secret"))
	})
}

func TestStoreRoundTrip(t *testing.T) {
	eachStore(t, func(t *testing.T, s session.Store) {
		want := adminUser()
		if err := s.Save(session.Session{User: want, Token: "opaque-token"}); err != nil {
			t.Fatalf("Save: %v", err)
		}

		got, ok := s.User()
		if !ok {
			t.Fatal("User() reported absent after Save")
		}
		if got != want {
			t.Fatalf("User() = %+v, want %+v", got, want)
		}
		if tok := s.Token(); tok != "opaque-token" {
			t.Fatalf("Token() = %q, want %q", tok, "opaque-token")
		}
		if !s.IsAuthenticated() {
			t.Fatal("IsAuthenticated() = false after Save")
		}
	})
}

func TestStoreClear(t *testing.T) {
	eachStore(t, func(t *testing.T, s session.Store) {
		if err := s.Save(session.Session{User: adminUser()}); err != nil {
			t.Fatalf("Save: %v", err)
		}
		if err := s.Clear(); err != nil {
			t.Fatalf("Clear: %v", err)
		}

		if _, ok := s.User(); ok {
			t.Fatal("User() present after Clear")
		}
		if s.IsAuthenticated() {
			t.Fatal("IsAuthenticated() = true after Clear")
		}

		// clearing an empty store stays a no-op
		if err := s.Clear(); err != nil {
			t.Fatalf("second Clear: %v", err)
		}
	})
}

func TestStoreSaveOverwrites(t *testing.T) {
	eachStore(t, func(t *testing.T, s session.Store) {
		first := adminUser()
		second := session.AuthUser{ID: 2, Username: "operator", Role: session.RoleUser}

		if err := s.Save(session.Session{User: first}); err != nil {
			t.Fatalf("Save: %v", err)
		}
		if err := s.Save(session.Session{User: second}); err != nil {
			t.Fatalf("Save: %v", err)
		}

		got, ok := s.User()
		if !ok {
			t.Fatal("User() absent after re-login")
		}
		if got != second {
			t.Fatalf("User() = %+v, want the replacement %+v", got, second)
		}
	})
}

func TestStoreExpiredTokenReadsAsAbsent(t *testing.T) {
	eachStore(t, func(t *testing.T, s session.Store) {
		expired := tokenWithExp(t, time.Now().Add(-time.Hour))
		if err := s.Save(session.Session{User: adminUser(), Token: expired}); err != nil {
			t.Fatalf("Save: %v", err)
		}

		if s.IsAuthenticated() {
			t.Fatal("IsAuthenticated() = true with an expired token")
		}

		live := tokenWithExp(t, time.Now().Add(time.Hour))
		if err := s.Save(session.Session{User: adminUser(), Token: live}); err != nil {
			t.Fatalf("Save: %v", err)
		}
		if !s.IsAuthenticated() {
			t.Fatal("IsAuthenticated() = false with a live token")
		}
	})
}

func TestFileStoreMissingMediumReadsAsAbsent(t *testing.T) {
	// point at a directory that does not exist; reads must stay calm
	s := session.NewFileStore("/nonexistent/console-state", "secret")

	if _, ok := s.User(); ok {
		t.Fatal("User() present with no storage medium")
	}
	if s.IsAuthenticated() {
		t.Fatal("IsAuthenticated() = true with no storage medium")
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("Clear with no storage medium: %v", err)
	}
}

func TestFileStoreEncryptedAtRest(t *testing.T) {
	dir := t.TempDir()
	s := session.NewFileStore(dir, "at-rest-secret")

	if err := s.Save(session.Session{User: adminUser(), Token: "opaque"}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	// a store with the wrong secret must not be able to read it back
	wrong := session.NewFileStore(dir, "some-other-secret")
	if _, ok := wrong.User(); ok {
		t.Fatal("session file readable under the wrong secret")
	}
}
