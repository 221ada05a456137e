package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/mateoquintero/venturelink-backend/pkg/config"
	"github.com/mateoquintero/venturelink-backend/pkg/enums"
)

func baseJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:            "test-secret",
		Issuer:            "venturelink-test",
		ExpirationMinutes: 15,
	}
}

func TestMintAndParseAccessToken(t *testing.T) {
	cfg := baseJWTConfig()
	userID := uuid.New()

	token, err := MintAccessToken(cfg, time.Now(), AccessTokenPayload{
		UserID:   userID,
		Username: "casa-verde",
		UserType: enums.UserTypeVendor,
	})
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	claims, err := ParseAccessToken(cfg, token)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.UserID != userID {
		t.Fatalf("expected user id %s, got %s", userID, claims.UserID)
	}
	if claims.Username != "casa-verde" {
		t.Fatalf("unexpected username %q", claims.Username)
	}
	if claims.UserType != enums.UserTypeVendor {
		t.Fatalf("unexpected user type %q", claims.UserType)
	}
	if claims.ID == "" {
		t.Fatal("expected a generated jti")
	}
}

func TestMintRejectsInvalidUserType(t *testing.T) {
	_, err := MintAccessToken(baseJWTConfig(), time.Now(), AccessTokenPayload{
		UserID:   uuid.New(),
		UserType: enums.UserType("ghost"),
	})
	if err == nil {
		t.Fatal("expected invalid user type error")
	}
}

func TestParseRejectsExpiredToken(t *testing.T) {
	cfg := baseJWTConfig()
	token, err := MintAccessToken(cfg, time.Now().Add(-time.Hour), AccessTokenPayload{
		UserID:   uuid.New(),
		Username: "late",
		UserType: enums.UserTypeMember,
	})
	if err != nil {
		t.Fatalf("mint: %v", err)
	}
	if _, err := ParseAccessToken(cfg, token); err == nil {
		t.Fatal("expected expired token to fail parsing")
	}
}

func TestParseRejectsWrongIssuer(t *testing.T) {
	cfg := baseJWTConfig()
	token, err := MintAccessToken(cfg, time.Now(), AccessTokenPayload{
		UserID:   uuid.New(),
		Username: "u",
		UserType: enums.UserTypeMember,
	})
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	other := cfg
	other.Issuer = "someone-else"
	if _, err := ParseAccessToken(other, token); err == nil {
		t.Fatal("expected issuer mismatch to fail")
	}
}
