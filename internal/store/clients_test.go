package store

import (
	"context"
	"testing"

	"fieldbase/internal/db"
)

func TestCreateAndGetClient(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	client, err := CreateClient(ctx, database, "Acme Corp", "Jane Doe", "jane@acme.test", "555-0100")
	if err != nil {
		t.Fatalf("CreateClient: %v", err)
	}
	if client.Name != "Acme Corp" {
		t.Errorf("expected name 'Acme Corp', got %q", client.Name)
	}
	if client.ContactName != "Jane Doe" {
		t.Errorf("expected contact 'Jane Doe', got %q", client.ContactName)
	}
}

func TestListClientsOrderedByName(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	CreateClient(ctx, database, "Zeta Ltd", "", "", "")
	CreateClient(ctx, database, "Acme Corp", "", "", "")

	clients, err := ListClients(ctx, database)
	if err != nil {
		t.Fatalf("ListClients: %v", err)
	}
	if len(clients) != 2 {
		t.Fatalf("expected 2 clients, got %d", len(clients))
	}
	if clients[0].Name != "Acme Corp" {
		t.Errorf("expected 'Acme Corp' first, got %q", clients[0].Name)
	}
}

func TestSoftDeleteClient(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	client, _ := CreateClient(ctx, database, "Delete Me", "", "", "")
	DeleteClient(ctx, database, client.ID)

	clients, _ := ListClients(ctx, database)
	if len(clients) != 0 {
		t.Errorf("expected 0 clients after soft delete, got %d", len(clients))
	}

	// Should still be fetchable by ID (for history).
	got, _ := GetClient(ctx, database, client.ID)
	if got == nil {
		t.Error("expected soft-deleted client to still be fetchable by ID")
	}
}

func TestUpdateClient(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	client, _ := CreateClient(ctx, database, "Old Name", "", "", "")
	if err := UpdateClient(ctx, database, client.ID, "New Name", "Bob", "bob@new.test", ""); err != nil {
		t.Fatalf("UpdateClient: %v", err)
	}

	got, _ := GetClient(ctx, database, client.ID)
	if got.Name != "New Name" {
		t.Errorf("expected name 'New Name', got %q", got.Name)
	}
	if got.Email != "bob@new.test" {
		t.Errorf("expected email 'bob@new.test', got %q", got.Email)
	}
}
