package db

// migrations is a list of SQL statements applied in order after schema
// creation. Each migration must be idempotent. Append new migrations at the
// end.
var migrations = []string{
	// Migration 1: lookup indexes for the hierarchy and job board queries.
	`CREATE INDEX IF NOT EXISTS idx_sites_client ON sites(client_id)`,
	`CREATE INDEX IF NOT EXISTS idx_assets_site ON assets(site_id)`,
	`CREATE INDEX IF NOT EXISTS idx_jobs_site ON jobs(site_id)`,
	`CREATE INDEX IF NOT EXISTS idx_jobs_status ON jobs(status) WHERE deleted_at IS NULL`,

	// Migration 2: movement history is always read per part, newest first.
	`CREATE INDEX IF NOT EXISTS idx_movements_part ON stock_movements(part_id, moved_at)`,
}
