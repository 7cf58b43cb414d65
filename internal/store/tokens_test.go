package store

import (
	"context"
	"testing"
	"time"

	"fieldbase/internal/db"
)

func TestRevokeAndCheckToken(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	jti := "test-jti-123"
	if err := RevokeToken(ctx, database, jti, time.Now().Add(time.Hour)); err != nil {
		t.Fatalf("RevokeToken: %v", err)
	}

	revoked, err := IsTokenRevoked(ctx, database, jti)
	if err != nil {
		t.Fatalf("IsTokenRevoked: %v", err)
	}
	if !revoked {
		t.Error("expected token to be revoked")
	}

	other, _ := IsTokenRevoked(ctx, database, "other-jti")
	if other {
		t.Error("expected other token to not be revoked")
	}
}

func TestRevokeTokenIdempotent(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	jti := "dup-jti"
	expires := time.Now().Add(time.Hour)
	if err := RevokeToken(ctx, database, jti, expires); err != nil {
		t.Fatalf("RevokeToken: %v", err)
	}
	if err := RevokeToken(ctx, database, jti, expires); err != nil {
		t.Errorf("expected repeated revocation to succeed, got %v", err)
	}
}

func TestRevokeTokenPrunesExpired(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	RevokeToken(ctx, database, "stale-jti", time.Now().Add(-time.Hour))
	RevokeToken(ctx, database, "fresh-jti", time.Now().Add(time.Hour))

	stale, _ := IsTokenRevoked(ctx, database, "stale-jti")
	if stale {
		t.Error("expected expired revocation to be pruned")
	}
}
