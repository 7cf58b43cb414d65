package model

import (
	"time"

	"fieldbase/internal/listing"
)

// Asset represents a piece of equipment installed at a site.
type Asset struct {
	ID           int64      `json:"id"`
	SiteID       int64      `json:"site_id"`
	AssetType    string     `json:"asset_type"`
	Model        string     `json:"model,omitempty"`
	SerialNumber string     `json:"serial_number,omitempty"`
	PhotoMime    string     `json:"photo_mime,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty"`

	// Joined site reference (not always populated; the listing pipeline
	// fills it in from independently fetched site refs).
	Site *listing.SiteRef `json:"site,omitempty"`
}

// SiteKey returns the raw site foreign key.
func (a Asset) SiteKey() int64 { return a.SiteID }

// SiteRef returns the attached site reference, or an unresolved stub built
// from the foreign key.
func (a Asset) SiteRef() listing.SiteRef {
	if a.Site == nil {
		return listing.SiteRef{ID: a.SiteID}
	}
	return *a.Site
}

// WithSiteRef returns a copy of the asset with the site reference replaced.
func (a Asset) WithSiteRef(ref listing.SiteRef) Asset {
	a.Site = &ref
	return a
}

// SearchValues returns the asset's searchable fields.
func (a Asset) SearchValues() []string {
	return []string{a.AssetType, a.Model, a.SerialNumber}
}

// SortValue resolves direct sort fields for the listing pipeline.
func (a Asset) SortValue(field string) (any, bool) {
	switch field {
	case "type", "asset_type":
		return a.AssetType, true
	case "model":
		return a.Model, true
	case "serial", "serial_number":
		return a.SerialNumber, true
	case "created_at":
		return a.CreatedAt, true
	}
	return nil, false
}
