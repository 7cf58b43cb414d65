package store

import (
	"context"
	"database/sql"
	"fmt"
)

// DashboardCounts holds record totals for the dashboard endpoint.
type DashboardCounts struct {
	Clients  int `json:"clients"`
	Sites    int `json:"sites"`
	Assets   int `json:"assets"`
	OpenJobs int `json:"open_jobs"`
}

// GetDashboardCounts returns totals over non-deleted records. Open jobs are
// those not yet completed or cancelled.
func GetDashboardCounts(ctx context.Context, db *sql.DB) (*DashboardCounts, error) {
	counts := &DashboardCounts{}
	err := db.QueryRowContext(ctx,
		`SELECT
			(SELECT COUNT(*) FROM clients WHERE deleted_at IS NULL),
			(SELECT COUNT(*) FROM sites WHERE deleted_at IS NULL),
			(SELECT COUNT(*) FROM assets WHERE deleted_at IS NULL),
			(SELECT COUNT(*) FROM jobs WHERE deleted_at IS NULL AND status IN ('scheduled', 'in_progress'))`,
	).Scan(&counts.Clients, &counts.Sites, &counts.Assets, &counts.OpenJobs)
	if err != nil {
		return nil, fmt.Errorf("getting dashboard counts: %w", err)
	}
	return counts, nil
}
