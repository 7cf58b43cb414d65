package store

import (
	"context"
	"database/sql"
	"fmt"

	"fieldbase/internal/model"
)

// CreateClient creates a new client.
func CreateClient(ctx context.Context, db *sql.DB, name, contactName, email, phone string) (*model.Client, error) {
	result, err := db.ExecContext(ctx,
		`INSERT INTO clients (name, contact_name, email, phone) VALUES (?, ?, ?, ?)`,
		name, contactName, email, phone,
	)
	if err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting client id: %w", err)
	}

	return GetClient(ctx, db, id)
}

// GetClient returns a client by ID.
func GetClient(ctx context.Context, db *sql.DB, id int64) (*model.Client, error) {
	c := &model.Client{}
	var contactName, email, phone sql.NullString
	err := db.QueryRowContext(ctx,
		`SELECT id, name, contact_name, email, phone, created_at, deleted_at
		 FROM clients WHERE id = ?`, id,
	).Scan(&c.ID, &c.Name, &contactName, &email, &phone, &c.CreatedAt, &c.DeletedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting client: %w", err)
	}
	c.ContactName = contactName.String
	c.Email = email.String
	c.Phone = phone.String
	return c, nil
}

// ListClients returns all non-deleted clients ordered by name.
func ListClients(ctx context.Context, db *sql.DB) ([]model.Client, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, name, contact_name, email, phone, created_at, deleted_at
		 FROM clients WHERE deleted_at IS NULL ORDER BY name`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing clients: %w", err)
	}
	defer rows.Close()

	var clients []model.Client
	for rows.Next() {
		var c model.Client
		var contactName, email, phone sql.NullString
		if err := rows.Scan(&c.ID, &c.Name, &contactName, &email, &phone, &c.CreatedAt, &c.DeletedAt); err != nil {
			return nil, fmt.Errorf("scanning client: %w", err)
		}
		c.ContactName = contactName.String
		c.Email = email.String
		c.Phone = phone.String
		clients = append(clients, c)
	}
	return clients, rows.Err()
}

// UpdateClient updates a client's details.
func UpdateClient(ctx context.Context, db *sql.DB, id int64, name, contactName, email, phone string) error {
	_, err := db.ExecContext(ctx,
		`UPDATE clients SET name = ?, contact_name = ?, email = ?, phone = ?
		 WHERE id = ? AND deleted_at IS NULL`,
		name, contactName, email, phone, id,
	)
	if err != nil {
		return fmt.Errorf("updating client: %w", err)
	}
	return nil
}

// DeleteClient soft-deletes a client.
func DeleteClient(ctx context.Context, db *sql.DB, id int64) error {
	_, err := db.ExecContext(ctx,
		`UPDATE clients SET deleted_at = CURRENT_TIMESTAMP WHERE id = ? AND deleted_at IS NULL`,
		id,
	)
	if err != nil {
		return fmt.Errorf("deleting client: %w", err)
	}
	return nil
}
