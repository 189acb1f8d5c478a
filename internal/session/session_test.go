package session

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/myflat/internal/config"
	"github.com/ahmetcoskunkizilkaya/myflat/internal/models"
	"github.com/golang-jwt/jwt/v5"
)

func newTestManager() *Manager {
	return NewManager(&config.Config{SecretKey: "test-secret", SessionTTL: time.Hour})
}

func TestIssueAndParse(t *testing.T) {
	m := newTestManager()
	user := &models.User{ID: 42, Username: "alice"}

	token, expires, err := m.Issue(user)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if time.Until(expires) <= 0 {
		t.Fatalf("expiry %v is not in the future", expires)
	}

	claims, err := m.Parse(token)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if claims.Username != "alice" {
		t.Errorf("Username: got %q", claims.Username)
	}
	id, err := claims.UserID()
	if err != nil || id != 42 {
		t.Errorf("UserID: got %d, %v", id, err)
	}
	if claims.ID == "" {
		t.Error("expected a token id")
	}
}

func TestParse_Expired(t *testing.T) {
	m := newTestManager()
	issuedAt := time.Now().Add(-2 * time.Hour)
	m.now = func() time.Time { return issuedAt }

	token, _, err := m.Issue(&models.User{ID: 1, Username: "bob"})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	m.now = time.Now
	if _, err := m.Parse(token); !errors.Is(err, ErrInvalidSession) {
		t.Fatalf("expected ErrInvalidSession for expired token, got %v", err)
	}
}

func TestParse_Tampered(t *testing.T) {
	m := newTestManager()
	token, _, err := m.Issue(&models.User{ID: 1, Username: "bob"})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	other := NewManager(&config.Config{SecretKey: "another-secret", SessionTTL: time.Hour})
	if _, err := other.Parse(token); !errors.Is(err, ErrInvalidSession) {
		t.Errorf("token signed with a different key accepted: %v", err)
	}

	parts := strings.Split(token, ".")
	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "999", ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	})
	forgedToken, _ := forged.SignedString([]byte("attacker"))
	swapped := strings.Split(forgedToken, ".")[1]
	if _, err := m.Parse(parts[0] + "." + swapped + "." + parts[2]); !errors.Is(err, ErrInvalidSession) {
		t.Errorf("token with swapped payload accepted: %v", err)
	}

	if _, err := m.Parse("not-a-token"); !errors.Is(err, ErrInvalidSession) {
		t.Errorf("garbage accepted: %v", err)
	}
}

func TestParse_RejectsNoneAlgorithm(t *testing.T) {
	m := newTestManager()
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "1", ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign none: %v", err)
	}
	if _, err := m.Parse(token); !errors.Is(err, ErrInvalidSession) {
		t.Errorf("alg=none token accepted: %v", err)
	}
}

func TestClaimsUserID_BadSubject(t *testing.T) {
	for _, sub := range []string{"", "0", "abc", "-3"} {
		c := &Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: sub}}
		if _, err := c.UserID(); !errors.Is(err, ErrInvalidSession) {
			t.Errorf("subject %q: expected ErrInvalidSession, got %v", sub, err)
		}
	}
}
