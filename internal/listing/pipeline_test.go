package listing_test

import (
	"reflect"
	"testing"
	"time"

	"fieldbase/internal/listing"
	"fieldbase/internal/model"
)

func refs() []listing.SiteRef {
	return []listing.SiteRef{
		{ID: 1, Name: "Branch", Client: &listing.ClientRef{ID: 2, Name: "Beta"}},
		{ID: 3, Name: "Depot"},
	}
}

func TestEnrichResolvesPartialSites(t *testing.T) {
	assets := []model.Asset{
		{AssetType: "AC", Model: "X1", SiteID: 1},
		{AssetType: "Gen", Model: "Y2", Site: &listing.SiteRef{ID: 2, Name: "HQ", Client: &listing.ClientRef{ID: 10, Name: "Acme"}}},
	}

	out := listing.Enrich(assets, refs())
	if len(out) != 2 {
		t.Fatalf("expected 2 records, got %d", len(out))
	}

	first := out[0].Site
	if first == nil || first.Name != "Branch" {
		t.Fatalf("expected first site resolved to Branch, got %+v", first)
	}
	if first.Client == nil || first.Client.ID != 2 || first.Client.Name != "Beta" {
		t.Errorf("expected client Beta attached, got %+v", first.Client)
	}

	// Already-resolved record passes through unchanged.
	second := out[1].Site
	if second == nil || second.Name != "HQ" || second.Client.Name != "Acme" {
		t.Errorf("expected second record unchanged, got %+v", second)
	}
}

func TestEnrichFallsBackToSiteRefID(t *testing.T) {
	// No raw foreign key, only a partial site ref carrying the id.
	assets := []model.Asset{
		{AssetType: "Pump", Site: &listing.SiteRef{ID: 3}},
	}

	out := listing.Enrich(assets, refs())
	if out[0].Site == nil || out[0].Site.Name != "Depot" {
		t.Errorf("expected site resolved via ref id, got %+v", out[0].Site)
	}
}

func TestEnrichPreservesUnmatchedRecords(t *testing.T) {
	assets := []model.Asset{
		{AssetType: "Boiler", SiteID: 99},
	}

	out := listing.Enrich(assets, refs())
	if len(out) != 1 {
		t.Fatalf("expected record preserved, got %d records", len(out))
	}
	if out[0].Site != nil {
		t.Errorf("expected partial data untouched, got %+v", out[0].Site)
	}
}

func TestEnrichIdempotent(t *testing.T) {
	assets := []model.Asset{
		{AssetType: "AC", SiteID: 1},
		{AssetType: "Gen", SiteID: 99},
		{AssetType: "Pump", Site: &listing.SiteRef{ID: 3}},
	}

	once := listing.Enrich(assets, refs())
	twice := listing.Enrich(once, refs())
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("enrich not idempotent:\nonce:  %+v\ntwice: %+v", once, twice)
	}
}

func TestFilterZeroQueryIsIdentity(t *testing.T) {
	assets := []model.Asset{
		{AssetType: "AC"},
		{AssetType: "Gen"},
	}

	out := listing.Filter(assets, listing.Query{})
	if !reflect.DeepEqual(out, assets) {
		t.Errorf("expected identity, got %+v", out)
	}

	// Whitespace-only search is also no filter.
	out = listing.Filter(assets, listing.Query{Search: "   "})
	if len(out) != 2 {
		t.Errorf("expected whitespace search to match all, got %d", len(out))
	}
}

func TestFilterByClientAndSite(t *testing.T) {
	assets := listing.Enrich([]model.Asset{
		{AssetType: "AC", SiteID: 1},
		{AssetType: "Gen", Site: &listing.SiteRef{ID: 2, Name: "HQ", Client: &listing.ClientRef{ID: 10, Name: "Acme"}}},
	}, refs())

	byClient := listing.Filter(assets, listing.Query{ClientID: 2})
	if len(byClient) != 1 || byClient[0].AssetType != "AC" {
		t.Errorf("expected only the Branch asset for client 2, got %+v", byClient)
	}

	bySite := listing.Filter(assets, listing.Query{SiteID: 2})
	if len(bySite) != 1 || bySite[0].AssetType != "Gen" {
		t.Errorf("expected only the HQ asset for site 2, got %+v", bySite)
	}
}

func TestFilterSiteMatchesRawKey(t *testing.T) {
	// Unenriched record: only the raw foreign key is set.
	assets := []model.Asset{
		{AssetType: "AC", SiteID: 7},
		{AssetType: "Gen", SiteID: 8},
	}

	out := listing.Filter(assets, listing.Query{SiteID: 7})
	if len(out) != 1 || out[0].AssetType != "AC" {
		t.Errorf("expected raw site key match, got %+v", out)
	}
}

func TestFilterSearchIncludesSiteAndClientNames(t *testing.T) {
	assets := listing.Enrich([]model.Asset{
		{AssetType: "AC", Model: "X1", SiteID: 1},
		{AssetType: "Gen", Model: "Y2", SiteID: 99},
	}, refs())

	// Matches the client name attached by enrichment, case-insensitively.
	out := listing.Filter(assets, listing.Query{Search: "BETA"})
	if len(out) != 1 || out[0].AssetType != "AC" {
		t.Errorf("expected client-name search hit, got %+v", out)
	}

	// Matches a record's own field.
	out = listing.Filter(assets, listing.Query{Search: "y2"})
	if len(out) != 1 || out[0].AssetType != "Gen" {
		t.Errorf("expected model search hit, got %+v", out)
	}

	out = listing.Filter(assets, listing.Query{Search: "no-such-thing"})
	if len(out) != 0 {
		t.Errorf("expected no hits, got %+v", out)
	}
}

func TestFiltersCompose(t *testing.T) {
	assets := listing.Enrich([]model.Asset{
		{AssetType: "AC", Model: "X1", SiteID: 1},
		{AssetType: "AC", Model: "X2", Site: &listing.SiteRef{ID: 2, Name: "HQ", Client: &listing.ClientRef{ID: 10, Name: "Acme"}}},
	}, refs())

	out := listing.Filter(assets, listing.Query{Search: "ac", ClientID: 10})
	if len(out) != 1 || out[0].Model != "X2" {
		t.Errorf("expected conjunctive filters, got %+v", out)
	}
}

func TestSortStable(t *testing.T) {
	a := model.Asset{ID: 1, AssetType: "AC", Model: "same"}
	b := model.Asset{ID: 2, AssetType: "AC", Model: "same"}

	out := listing.Sort([]model.Asset{a, b}, "model", listing.OrderAsc)
	if out[0].ID != 1 || out[1].ID != 2 {
		t.Errorf("expected ties to keep original order, got %v then %v", out[0].ID, out[1].ID)
	}
}

func TestSortDescIsReverseOfAsc(t *testing.T) {
	assets := []model.Asset{
		{AssetType: "Gen"},
		{AssetType: "ac"},
		{AssetType: "Pump"},
	}

	asc := listing.Sort(assets, "type", listing.OrderAsc)
	desc := listing.Sort(assets, "type", listing.OrderDesc)

	for i := range asc {
		if asc[i].AssetType != desc[len(desc)-1-i].AssetType {
			t.Fatalf("desc is not reverse of asc:\nasc:  %+v\ndesc: %+v", asc, desc)
		}
	}

	// Case-insensitive: "ac" sorts before "Gen".
	if asc[0].AssetType != "ac" {
		t.Errorf("expected case-insensitive order, got %+v", asc)
	}
}

func TestSortDoesNotMutateInput(t *testing.T) {
	assets := []model.Asset{
		{AssetType: "Pump"},
		{AssetType: "AC"},
	}

	listing.Sort(assets, "type", listing.OrderAsc)
	if assets[0].AssetType != "Pump" {
		t.Error("sort mutated its input")
	}
}

func TestSortSyntheticAndMissingFields(t *testing.T) {
	assets := listing.Enrich([]model.Asset{
		{AssetType: "Gen", SiteID: 3},
		{AssetType: "AC", SiteID: 1},
		{AssetType: "Boiler", SiteID: 99}, // unresolved, sorts as ""
	}, refs())

	bySite := listing.Sort(assets, "site", listing.OrderAsc)
	if bySite[0].AssetType != "Boiler" || bySite[1].AssetType != "AC" || bySite[2].AssetType != "Gen" {
		t.Errorf("expected site-name order with missing first, got %+v", bySite)
	}

	// Unknown fields normalize to empty string for every record: stable no-op.
	unknown := listing.Sort(assets, "bogus", listing.OrderAsc)
	for i := range assets {
		if unknown[i].AssetType != assets[i].AssetType {
			t.Errorf("expected unknown-field sort to preserve order, got %+v", unknown)
		}
	}
}

func TestSortNumericAndTimeFields(t *testing.T) {
	early := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	late := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	jobs := []model.Job{
		{Number: "JOB-2", Priority: 3, ScheduledAt: &late},
		{Number: "JOB-1", Priority: 1, ScheduledAt: &early},
		{Number: "JOB-3", Priority: 2, ScheduledAt: nil},
	}

	byPriority := listing.Sort(jobs, "priority", listing.OrderAsc)
	if byPriority[0].Number != "JOB-1" || byPriority[2].Number != "JOB-2" {
		t.Errorf("expected priority order, got %+v", byPriority)
	}

	bySchedule := listing.Sort(jobs, "scheduled_at", listing.OrderAsc)
	// Missing schedule normalizes to "" and sorts first.
	if bySchedule[0].Number != "JOB-3" || bySchedule[1].Number != "JOB-1" || bySchedule[2].Number != "JOB-2" {
		t.Errorf("expected schedule order with missing first, got %+v", bySchedule)
	}
}

func TestPipelineEndToEnd(t *testing.T) {
	assets := []model.Asset{
		{AssetType: "AC", Model: "X1", Site: &listing.SiteRef{ID: 1}},
		{AssetType: "Gen", Model: "Y2", Site: &listing.SiteRef{ID: 2, Name: "HQ", Client: &listing.ClientRef{ID: 10, Name: "Acme"}}},
	}

	enriched := listing.Enrich(assets, refs())
	if enriched[0].Site.Name != "Branch" || enriched[0].Site.Client.Name != "Beta" {
		t.Fatalf("expected first asset enriched from refs, got %+v", enriched[0].Site)
	}
	if enriched[1].Site.Name != "HQ" {
		t.Fatalf("expected second asset unchanged, got %+v", enriched[1].Site)
	}

	filtered := listing.Filter(enriched, listing.Query{ClientID: 2})
	if len(filtered) != 1 || filtered[0].AssetType != "AC" {
		t.Fatalf("expected only the enriched asset for client 2, got %+v", filtered)
	}

	sorted := listing.Sort(filtered, "type", listing.OrderAsc)
	if len(sorted) != 1 {
		t.Fatalf("expected 1 record after pipeline, got %d", len(sorted))
	}
}
