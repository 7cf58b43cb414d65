package store

import (
	"context"
	"database/sql"
	"testing"

	"fieldbase/internal/db"
)

func testSite(t *testing.T, database *sql.DB) int64 {
	t.Helper()
	ctx := context.Background()
	client, err := CreateClient(ctx, database, "Acme Corp", "", "", "")
	if err != nil {
		t.Fatalf("CreateClient: %v", err)
	}
	site, err := CreateSite(ctx, database, client.ID, "HQ", "")
	if err != nil {
		t.Fatalf("CreateSite: %v", err)
	}
	return site.ID
}

func TestCreateAndGetAsset(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	siteID := testSite(t, database)
	asset, err := CreateAsset(ctx, database, siteID, "HVAC", "Carrier 30RB", "SN-001")
	if err != nil {
		t.Fatalf("CreateAsset: %v", err)
	}
	if asset.AssetType != "HVAC" {
		t.Errorf("expected type 'HVAC', got %q", asset.AssetType)
	}
	if asset.SerialNumber != "SN-001" {
		t.Errorf("expected serial 'SN-001', got %q", asset.SerialNumber)
	}
}

func TestListAssetsCarriesRawSiteKeys(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	siteID := testSite(t, database)
	CreateAsset(ctx, database, siteID, "HVAC", "", "")
	CreateAsset(ctx, database, siteID, "Boiler", "", "")

	assets, err := ListAssets(ctx, database)
	if err != nil {
		t.Fatalf("ListAssets: %v", err)
	}
	if len(assets) != 2 {
		t.Fatalf("expected 2 assets, got %d", len(assets))
	}
	for _, a := range assets {
		if a.SiteID != siteID {
			t.Errorf("expected site id %d, got %d", siteID, a.SiteID)
		}
		if a.Site != nil {
			t.Error("expected no site ref on raw listing")
		}
	}
}

func TestAssetPhoto(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	siteID := testSite(t, database)
	asset, _ := CreateAsset(ctx, database, siteID, "HVAC", "", "")

	photoData := []byte("fake photo data")
	if err := SetAssetPhoto(ctx, database, asset.ID, photoData, "image/jpeg"); err != nil {
		t.Fatalf("SetAssetPhoto: %v", err)
	}

	data, mime, err := GetAssetPhoto(ctx, database, asset.ID)
	if err != nil {
		t.Fatalf("GetAssetPhoto: %v", err)
	}
	if string(data) != "fake photo data" {
		t.Errorf("expected photo data, got %q", string(data))
	}
	if mime != "image/jpeg" {
		t.Errorf("expected mime 'image/jpeg', got %q", mime)
	}
}

func TestSoftDeleteAsset(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	siteID := testSite(t, database)
	asset, _ := CreateAsset(ctx, database, siteID, "HVAC", "", "")
	DeleteAsset(ctx, database, asset.ID)

	assets, _ := ListAssets(ctx, database)
	if len(assets) != 0 {
		t.Errorf("expected 0 assets after soft delete, got %d", len(assets))
	}
}
