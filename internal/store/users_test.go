package store

import (
	"context"
	"testing"

	"fieldbase/internal/db"
	"fieldbase/internal/model"
)

func TestCreateAndGetUser(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	user, err := CreateUser(ctx, database, "dispatcher1", "hash123", model.RoleDispatcher)
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if user.Username != "dispatcher1" {
		t.Errorf("expected username 'dispatcher1', got %q", user.Username)
	}
	if user.Role != model.RoleDispatcher {
		t.Errorf("expected role 'dispatcher', got %q", user.Role)
	}
}

func TestGetUserByUsername(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	CreateUser(ctx, database, "admin", "hash", model.RoleAdmin)

	user, err := GetUserByUsername(ctx, database, "admin")
	if err != nil {
		t.Fatalf("GetUserByUsername: %v", err)
	}
	if user == nil {
		t.Fatal("expected user, got nil")
	}

	missing, _ := GetUserByUsername(ctx, database, "nobody")
	if missing != nil {
		t.Error("expected nil for unknown username")
	}
}

func TestDuplicateUsernameRejected(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	CreateUser(ctx, database, "admin", "hash", model.RoleAdmin)
	if _, err := CreateUser(ctx, database, "admin", "hash2", model.RoleAdmin); err == nil {
		t.Error("expected error for duplicate username")
	}
}

func TestUpdateUserRole(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	user, _ := CreateUser(ctx, database, "tech", "hash", model.RoleTechnician)
	if err := UpdateUser(ctx, database, user.ID, model.RoleDispatcher); err != nil {
		t.Fatalf("UpdateUser: %v", err)
	}

	got, _ := GetUser(ctx, database, user.ID)
	if got.Role != model.RoleDispatcher {
		t.Errorf("expected role 'dispatcher', got %q", got.Role)
	}
}

func TestSoftDeleteUserFreesUsername(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	user, _ := CreateUser(ctx, database, "tech", "hash", model.RoleTechnician)
	DeleteUser(ctx, database, user.ID)

	users, _ := ListUsers(ctx, database)
	if len(users) != 0 {
		t.Errorf("expected 0 users after soft delete, got %d", len(users))
	}

	// The unique index only covers live rows, so the username is reusable.
	if _, err := CreateUser(ctx, database, "tech", "hash2", model.RoleTechnician); err != nil {
		t.Errorf("expected username reuse after soft delete, got %v", err)
	}
}
