package utils

import (
	"testing"

	"github.com/google/uuid"
)

func TestGenerateAndValidateJWT(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-for-testing-only")

	travelerID := uuid.Must(uuid.NewV7())
	token, err := GenerateJWT(travelerID, "abebe@example.com", "Abebe Bikila")
	if err != nil {
		t.Fatalf("generate error: %v", err)
	}

	claims, err := ValidateJWT(token)
	if err != nil {
		t.Fatalf("validate error: %v", err)
	}
	if claims.TravelerID != travelerID.String() {
		t.Errorf("traveler id = %s, want %s", claims.TravelerID, travelerID)
	}
	if claims.Email != "abebe@example.com" || claims.Name != "Abebe Bikila" {
		t.Errorf("unexpected claims: %+v", claims)
	}
	if claims.Issuer != "phoenix-tours-api" {
		t.Errorf("issuer = %s", claims.Issuer)
	}
}

func TestValidateJWTRejectsGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-key-for-testing-only")

	if _, err := ValidateJWT("not.a.token"); err == nil {
		t.Error("garbage token validated")
	}
}

func TestValidateJWTRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret-one")
	token, err := GenerateJWT(uuid.Must(uuid.NewV7()), "a@b.co", "A")
	if err != nil {
		t.Fatalf("generate error: %v", err)
	}

	t.Setenv("JWT_SECRET", "secret-two")
	if _, err := ValidateJWT(token); err == nil {
		t.Error("token signed with another secret validated")
	}
}

func TestExtractTokenFromHeader(t *testing.T) {
	token, err := ExtractTokenFromHeader("Bearer abc123")
	if err != nil || token != "abc123" {
		t.Errorf("got (%q, %v), want (abc123, nil)", token, err)
	}

	if _, err := ExtractTokenFromHeader("abc123"); err == nil {
		t.Error("header without Bearer prefix accepted")
	}
	if _, err := ExtractTokenFromHeader(""); err == nil {
		t.Error("empty header accepted")
	}
}
