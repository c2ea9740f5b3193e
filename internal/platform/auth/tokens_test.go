package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func newTestIssuer() *Issuer {
	return NewIssuer([]byte("test-secret-0123456789abcdef0123"), 30*time.Minute, 7*24*time.Hour)
}

func TestIssueAndVerify(t *testing.T) {
	issuer := newTestIssuer()
	userID := uuid.New()

	pair, err := issuer.IssueTokens(userID, "nurse_jane")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pair.Access == "" || pair.Refresh == "" {
		t.Fatal("expected both tokens to be issued")
	}

	claims, err := issuer.Verify(pair.Access, TokenTypeAccess)
	if err != nil {
		t.Fatalf("verify access: %v", err)
	}
	if claims.Subject != userID.String() {
		t.Errorf("expected subject %s, got %s", userID, claims.Subject)
	}
	if claims.Username != "nurse_jane" {
		t.Errorf("expected username nurse_jane, got %s", claims.Username)
	}
}

func TestVerifyRejectsWrongType(t *testing.T) {
	issuer := newTestIssuer()
	pair, _ := issuer.IssueTokens(uuid.New(), "u")

	if _, err := issuer.Verify(pair.Refresh, TokenTypeAccess); err == nil {
		t.Error("expected refresh token to be rejected as access token")
	}
	if _, err := issuer.Verify(pair.Access, TokenTypeRefresh); err == nil {
		t.Error("expected access token to be rejected as refresh token")
	}
}

func TestVerifyRejectsExpired(t *testing.T) {
	issuer := NewIssuer([]byte("test-secret-0123456789abcdef0123"), -time.Minute, time.Hour)
	pair, _ := issuer.IssueTokens(uuid.New(), "u")

	if _, err := issuer.Verify(pair.Access, TokenTypeAccess); err == nil {
		t.Error("expected expired token to be rejected")
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	issuer := newTestIssuer()
	other := NewIssuer([]byte("another-secret-fedcba9876543210ff"), 30*time.Minute, time.Hour)

	pair, _ := issuer.IssueTokens(uuid.New(), "u")
	if _, err := other.Verify(pair.Access, TokenTypeAccess); err == nil {
		t.Error("expected token signed with a different secret to be rejected")
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	issuer := newTestIssuer()
	if _, err := issuer.Verify("not-a-jwt", TokenTypeAccess); err == nil {
		t.Error("expected garbage token to be rejected")
	}
}

func TestRefresh(t *testing.T) {
	issuer := newTestIssuer()
	userID := uuid.New()
	pair, _ := issuer.IssueTokens(userID, "nurse_jane")

	access, err := issuer.Refresh(pair.Refresh)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims, err := issuer.Verify(access, TokenTypeAccess)
	if err != nil {
		t.Fatalf("verify refreshed access token: %v", err)
	}
	if claims.Subject != userID.String() {
		t.Errorf("expected subject %s, got %s", userID, claims.Subject)
	}
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	issuer := newTestIssuer()
	pair, _ := issuer.IssueTokens(uuid.New(), "u")

	if _, err := issuer.Refresh(pair.Access); err == nil {
		t.Error("expected access token to be rejected by refresh")
	}
}
