package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/heartmarshall/ainotes/internal/domain"
)

const testSecret = "test-secret-at-least-16-chars"

func TestSessionManager_IssueAndValidate_Success(t *testing.T) {
	manager := NewSessionManager(testSecret, "ainotes-test", 15*time.Minute)
	want := domain.Identity{UserID: 42, Username: "alice"}

	token, err := manager.Issue(want)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	got, err := manager.Validate(token)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if got != want {
		t.Errorf("identity = %+v, want %+v", got, want)
	}
}

func TestSessionManager_Issue_InvalidUserID(t *testing.T) {
	manager := NewSessionManager(testSecret, "ainotes-test", time.Minute)

	if _, err := manager.Issue(domain.Identity{UserID: 0, Username: "x"}); err == nil {
		t.Fatal("expected error for zero user id")
	}
}

func TestSessionManager_Validate_Expired(t *testing.T) {
	manager := NewSessionManager(testSecret, "ainotes-test", -1*time.Hour)

	token, err := manager.Issue(domain.Identity{UserID: 1, Username: "alice"})
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	_, err = manager.Validate(token)
	if err == nil {
		t.Fatal("expected error for expired token, got nil")
	}
	if !strings.Contains(err.Error(), "expired") {
		t.Errorf("expected expiry-related error, got: %v", err)
	}
}

func TestSessionManager_Validate_ExpiresAfterTTL(t *testing.T) {
	manager := NewSessionManager(testSecret, "ainotes-test", time.Hour)
	start := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	manager.now = func() time.Time { return start }

	token, err := manager.Issue(domain.Identity{UserID: 1, Username: "alice"})
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	manager.now = func() time.Time { return start.Add(30 * time.Minute) }
	if _, err := manager.Validate(token); err != nil {
		t.Fatalf("token should be valid within TTL: %v", err)
	}

	manager.now = func() time.Time { return start.Add(2 * time.Hour) }
	if _, err := manager.Validate(token); err == nil {
		t.Fatal("token should be rejected after TTL")
	}
}

func TestSessionManager_Validate_InvalidSignature(t *testing.T) {
	manager1 := NewSessionManager(testSecret, "ainotes-test", time.Minute)
	manager2 := NewSessionManager("different-secret-16-chars!!", "ainotes-test", time.Minute)

	token, err := manager1.Issue(domain.Identity{UserID: 1, Username: "alice"})
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	if _, err := manager2.Validate(token); err == nil {
		t.Fatal("expected error for invalid signature, got nil")
	}
}

func TestSessionManager_Validate_Malformed(t *testing.T) {
	manager := NewSessionManager(testSecret, "ainotes-test", time.Minute)

	for _, token := range []string{"not.a.jwt", "invalid-token", "header.payload"} {
		if _, err := manager.Validate(token); err == nil {
			t.Errorf("expected error for malformed token %q, got nil", token)
		}
	}
}

func TestSessionManager_Validate_WrongIssuer(t *testing.T) {
	manager1 := NewSessionManager(testSecret, "ainotes-test", time.Minute)
	manager2 := NewSessionManager(testSecret, "wrong-issuer", time.Minute)

	token, err := manager1.Issue(domain.Identity{UserID: 1, Username: "alice"})
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	_, err = manager2.Validate(token)
	if err == nil {
		t.Fatal("expected error for wrong issuer, got nil")
	}
	if !strings.Contains(err.Error(), "invalid issuer") {
		t.Errorf("expected 'invalid issuer' error, got: %v", err)
	}
}

func TestSessionManager_Validate_RejectsNoneAlg(t *testing.T) {
	manager := NewSessionManager(testSecret, "ainotes-test", time.Minute)

	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "1",
			Issuer:    "ainotes-test",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		},
		Username: "mallory",
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign none: %v", err)
	}

	if _, err := manager.Validate(token); err == nil {
		t.Fatal("expected error for unsigned token")
	}
}

func TestSessionManager_Validate_NonNumericSubject(t *testing.T) {
	manager := NewSessionManager(testSecret, "ainotes-test", time.Minute)

	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "not-a-number",
			Issuer:    "ainotes-test",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := manager.Validate(token); err == nil {
		t.Fatal("expected error for non-numeric subject")
	}
}

func TestSessionManager_Validate_EmptyString(t *testing.T) {
	manager := NewSessionManager(testSecret, "ainotes-test", time.Minute)

	_, err := manager.Validate("")
	if err == nil {
		t.Fatal("expected error for empty token, got nil")
	}
	if !strings.Contains(err.Error(), "empty") {
		t.Errorf("expected 'empty' error, got: %v", err)
	}
}
