package store

import (
	"context"
	"database/sql"
	"fmt"

	"fieldbase/internal/model"
)

// CreateAsset creates a new asset at a site.
func CreateAsset(ctx context.Context, db *sql.DB, siteID int64, assetType, assetModel, serialNumber string) (*model.Asset, error) {
	result, err := db.ExecContext(ctx,
		`INSERT INTO assets (site_id, asset_type, model, serial_number) VALUES (?, ?, ?, ?)`,
		siteID, assetType, assetModel, serialNumber,
	)
	if err != nil {
		return nil, fmt.Errorf("creating asset: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting asset id: %w", err)
	}

	return GetAsset(ctx, db, id)
}

// GetAsset returns an asset by ID.
func GetAsset(ctx context.Context, db *sql.DB, id int64) (*model.Asset, error) {
	a := &model.Asset{}
	var assetModel, serialNumber, photoMime sql.NullString
	err := db.QueryRowContext(ctx,
		`SELECT id, site_id, asset_type, model, serial_number, photo_mime, created_at, updated_at, deleted_at
		 FROM assets WHERE id = ?`, id,
	).Scan(&a.ID, &a.SiteID, &a.AssetType, &assetModel, &serialNumber, &photoMime, &a.CreatedAt, &a.UpdatedAt, &a.DeletedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting asset: %w", err)
	}
	a.Model = assetModel.String
	a.SerialNumber = serialNumber.String
	a.PhotoMime = photoMime.String
	return a, nil
}

// ListAssets returns all non-deleted assets with raw site keys only.
// Attaching site and client references is the listing pipeline's job.
func ListAssets(ctx context.Context, db *sql.DB) ([]model.Asset, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, site_id, asset_type, model, serial_number, photo_mime, created_at, updated_at, deleted_at
		 FROM assets WHERE deleted_at IS NULL ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing assets: %w", err)
	}
	defer rows.Close()

	var assets []model.Asset
	for rows.Next() {
		var a model.Asset
		var assetModel, serialNumber, photoMime sql.NullString
		if err := rows.Scan(&a.ID, &a.SiteID, &a.AssetType, &assetModel, &serialNumber, &photoMime, &a.CreatedAt, &a.UpdatedAt, &a.DeletedAt); err != nil {
			return nil, fmt.Errorf("scanning asset: %w", err)
		}
		a.Model = assetModel.String
		a.SerialNumber = serialNumber.String
		a.PhotoMime = photoMime.String
		assets = append(assets, a)
	}
	return assets, rows.Err()
}

// UpdateAsset updates an asset's details.
func UpdateAsset(ctx context.Context, db *sql.DB, id, siteID int64, assetType, assetModel, serialNumber string) error {
	_, err := db.ExecContext(ctx,
		`UPDATE assets SET site_id = ?, asset_type = ?, model = ?, serial_number = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ? AND deleted_at IS NULL`,
		siteID, assetType, assetModel, serialNumber, id,
	)
	if err != nil {
		return fmt.Errorf("updating asset: %w", err)
	}
	return nil
}

// DeleteAsset soft-deletes an asset.
func DeleteAsset(ctx context.Context, db *sql.DB, id int64) error {
	_, err := db.ExecContext(ctx,
		`UPDATE assets SET deleted_at = CURRENT_TIMESTAMP WHERE id = ? AND deleted_at IS NULL`,
		id,
	)
	if err != nil {
		return fmt.Errorf("deleting asset: %w", err)
	}
	return nil
}

// SetAssetPhoto sets an asset's photo data.
func SetAssetPhoto(ctx context.Context, db *sql.DB, id int64, photo []byte, mime string) error {
	_, err := db.ExecContext(ctx,
		`UPDATE assets SET photo = ?, photo_mime = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ? AND deleted_at IS NULL`,
		photo, mime, id,
	)
	if err != nil {
		return fmt.Errorf("setting asset photo: %w", err)
	}
	return nil
}

// GetAssetPhoto returns an asset's photo data and MIME type.
func GetAssetPhoto(ctx context.Context, db *sql.DB, id int64) ([]byte, string, error) {
	var photo []byte
	var mime sql.NullString
	err := db.QueryRowContext(ctx,
		`SELECT photo, photo_mime FROM assets WHERE id = ?`, id,
	).Scan(&photo, &mime)
	if err == sql.ErrNoRows {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", fmt.Errorf("getting asset photo: %w", err)
	}
	return photo, mime.String, nil
}
