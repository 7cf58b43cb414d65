package store

import (
	"context"
	"database/sql"
	"fmt"

	"fieldbase/internal/listing"
	"fieldbase/internal/model"
)

// CreateSite creates a new site under a client.
func CreateSite(ctx context.Context, db *sql.DB, clientID int64, name, address string) (*model.Site, error) {
	result, err := db.ExecContext(ctx,
		`INSERT INTO sites (client_id, name, address) VALUES (?, ?, ?)`,
		clientID, name, address,
	)
	if err != nil {
		return nil, fmt.Errorf("creating site: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting site id: %w", err)
	}

	return GetSite(ctx, db, id)
}

// GetSite returns a site by ID with its client name joined.
func GetSite(ctx context.Context, db *sql.DB, id int64) (*model.Site, error) {
	s := &model.Site{}
	var address sql.NullString
	err := db.QueryRowContext(ctx,
		`SELECT s.id, s.client_id, s.name, s.address, s.created_at, s.deleted_at, c.name
		 FROM sites s JOIN clients c ON c.id = s.client_id
		 WHERE s.id = ?`, id,
	).Scan(&s.ID, &s.ClientID, &s.Name, &address, &s.CreatedAt, &s.DeletedAt, &s.ClientName)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting site: %w", err)
	}
	s.Address = address.String
	return s, nil
}

// ListSites returns all non-deleted sites, optionally filtered by client.
func ListSites(ctx context.Context, db *sql.DB, clientID int64) ([]model.Site, error) {
	query := `SELECT s.id, s.client_id, s.name, s.address, s.created_at, s.deleted_at, c.name
	          FROM sites s JOIN clients c ON c.id = s.client_id
	          WHERE s.deleted_at IS NULL`
	var args []any

	if clientID > 0 {
		query += ` AND s.client_id = ?`
		args = append(args, clientID)
	}

	query += ` ORDER BY c.name, s.name`

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing sites: %w", err)
	}
	defer rows.Close()

	var sites []model.Site
	for rows.Next() {
		var s model.Site
		var address sql.NullString
		if err := rows.Scan(&s.ID, &s.ClientID, &s.Name, &address, &s.CreatedAt, &s.DeletedAt, &s.ClientName); err != nil {
			return nil, fmt.Errorf("scanning site: %w", err)
		}
		s.Address = address.String
		sites = append(sites, s)
	}
	return sites, rows.Err()
}

// ListSiteRefs returns the site reference set used by the listing pipeline:
// every non-deleted site joined with its client.
func ListSiteRefs(ctx context.Context, db *sql.DB) ([]listing.SiteRef, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT s.id, s.name, c.id, c.name
		 FROM sites s JOIN clients c ON c.id = s.client_id
		 WHERE s.deleted_at IS NULL`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing site refs: %w", err)
	}
	defer rows.Close()

	var refs []listing.SiteRef
	for rows.Next() {
		var ref listing.SiteRef
		var client listing.ClientRef
		if err := rows.Scan(&ref.ID, &ref.Name, &client.ID, &client.Name); err != nil {
			return nil, fmt.Errorf("scanning site ref: %w", err)
		}
		ref.Client = &client
		refs = append(refs, ref)
	}
	return refs, rows.Err()
}

// UpdateSite updates a site's details.
func UpdateSite(ctx context.Context, db *sql.DB, id, clientID int64, name, address string) error {
	_, err := db.ExecContext(ctx,
		`UPDATE sites SET client_id = ?, name = ?, address = ?
		 WHERE id = ? AND deleted_at IS NULL`,
		clientID, name, address, id,
	)
	if err != nil {
		return fmt.Errorf("updating site: %w", err)
	}
	return nil
}

// DeleteSite soft-deletes a site.
func DeleteSite(ctx context.Context, db *sql.DB, id int64) error {
	_, err := db.ExecContext(ctx,
		`UPDATE sites SET deleted_at = CURRENT_TIMESTAMP WHERE id = ? AND deleted_at IS NULL`,
		id,
	)
	if err != nil {
		return fmt.Errorf("deleting site: %w", err)
	}
	return nil
}
