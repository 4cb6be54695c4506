package auth

import (
	"errors"
	"testing"
	"time"
)

func TestGenerateJwt_roundTrip(t *testing.T) {
	token, err := GenerateJwt(GenerateJwtOpts{
		AdminId: "admin-1",
		Email:   "admin@acme.com",
		Id:      "token-1",
		Issuer:  "tenantry/test",
		OrgId:   "org-1",
		OrgName: "acme_corp",
		Secret:  "signing-secret",
		Ttl:     time.Minute,
	})
	if err != nil {
		t.Fatalf("failed to generate token: %s", err)
	}

	claims, err := ValidateJwt("signing-secret", token)
	if err != nil {
		t.Fatalf("failed to validate token: %s", err)
	}
	if claims.AdminId != "admin-1" || claims.Email != "admin@acme.com" {
		t.Errorf("expected admin identity in claims, got %s / %s", claims.AdminId, claims.Email)
	}
	if claims.OrgId != "org-1" || claims.OrgName != "acme_corp" {
		t.Errorf("expected org identity in claims, got %s / %s", claims.OrgId, claims.OrgName)
	}
	if claims.Subject != "admin-1" {
		t.Errorf("expected subject to be the admin id, got %s", claims.Subject)
	}
}

func TestValidateJwt_expired(t *testing.T) {
	token, err := GenerateJwt(GenerateJwtOpts{
		AdminId: "admin-1",
		Secret:  "signing-secret",
		Ttl:     -time.Minute,
	})
	if err != nil {
		t.Fatalf("failed to generate token: %s", err)
	}
	if _, err := ValidateJwt("signing-secret", token); !errors.Is(err, ErrorJwtTokenExpired) {
		t.Errorf("expected ErrorJwtTokenExpired, got: %s", err)
	}
}

func TestValidateJwt_wrongSecret(t *testing.T) {
	token, err := GenerateJwt(GenerateJwtOpts{
		AdminId: "admin-1",
		Secret:  "signing-secret",
		Ttl:     time.Minute,
	})
	if err != nil {
		t.Fatalf("failed to generate token: %s", err)
	}
	if _, err := ValidateJwt("a-different-secret", token); !errors.Is(err, ErrorJwtTokenSignature) {
		t.Errorf("expected ErrorJwtTokenSignature, got: %s", err)
	}
}

func TestValidateJwt_garbage(t *testing.T) {
	if _, err := ValidateJwt("signing-secret", "not.a.token"); !errors.Is(err, ErrorJwtTokenSignature) {
		t.Errorf("expected ErrorJwtTokenSignature, got: %s", err)
	}
}
