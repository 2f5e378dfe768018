package services

import (
	"testing"
	"time"
)

func TestPasswordHashAndVerify(t *testing.T) {
	svc := GetAdminAuthService()

	hash, err := svc.HashPassword("correct horse battery")
	if err != nil {
		t.Fatalf("hash error: %v", err)
	}
	if hash == "correct horse battery" {
		t.Fatal("hash must not equal the plaintext")
	}

	if !svc.VerifyPassword(hash, "correct horse battery") {
		t.Error("correct password rejected")
	}
	if svc.VerifyPassword(hash, "wrong password") {
		t.Error("wrong password accepted")
	}
}

func TestValidatePassword(t *testing.T) {
	svc := GetAdminAuthService()

	if svc.ValidatePassword("short") {
		t.Error("7-char password accepted")
	}
	if !svc.ValidatePassword("longenough") {
		t.Error("valid password rejected")
	}
}

func TestHashTokenIsDeterministic(t *testing.T) {
	svc := GetAdminAuthService()

	a := svc.HashToken("session-token")
	b := svc.HashToken("session-token")
	if a != b {
		t.Error("same token hashed to different values")
	}
	if a == svc.HashToken("other-token") {
		t.Error("different tokens hashed to the same value")
	}
	if len(a) != 64 {
		t.Errorf("expected 64 hex chars, got %d", len(a))
	}
}

func TestGetAdminStatus(t *testing.T) {
	svc := GetAdminAuthService()

	recent := time.Now().Add(-24 * time.Hour)
	stale := time.Now().Add(-8 * 24 * time.Hour)

	if got := svc.GetAdminStatus("active", &recent); got != "active" {
		t.Errorf("recent login -> %s, want active", got)
	}
	if got := svc.GetAdminStatus("active", &stale); got != "inactive" {
		t.Errorf("stale login -> %s, want inactive", got)
	}
	// Never-logged-in admins are not yet inactive
	if got := svc.GetAdminStatus("active", nil); got != "active" {
		t.Errorf("never logged in -> %s, want active", got)
	}
	// Suspension is sticky regardless of activity
	if got := svc.GetAdminStatus("suspended", &recent); got != "suspended" {
		t.Errorf("suspended -> %s, want suspended", got)
	}
}
