package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"fieldbase/internal/model"
)

// newJobNumber generates a short customer-facing job reference.
func newJobNumber() string {
	return "JOB-" + strings.ToUpper(uuid.NewString()[:8])
}

// CreateJob creates a new job with a generated reference number.
func CreateJob(ctx context.Context, db *sql.DB, siteID int64, assetID, assignedTo *int64, title, description string, priority int, scheduledAt *time.Time) (*model.Job, error) {
	result, err := db.ExecContext(ctx,
		`INSERT INTO jobs (number, site_id, asset_id, assigned_to, title, description, priority, scheduled_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		newJobNumber(), siteID, assetID, assignedTo, title, description, priority, scheduledAt,
	)
	if err != nil {
		return nil, fmt.Errorf("creating job: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting job id: %w", err)
	}

	return GetJob(ctx, db, id)
}

// GetJob returns a job by ID with the assignee's name joined.
func GetJob(ctx context.Context, db *sql.DB, id int64) (*model.Job, error) {
	j := &model.Job{}
	var description, assignedName sql.NullString
	err := db.QueryRowContext(ctx,
		`SELECT j.id, j.number, j.site_id, j.asset_id, j.assigned_to, j.title, j.description,
		        j.status, j.priority, j.scheduled_at, j.created_at, j.updated_at, j.deleted_at,
		        u.username
		 FROM jobs j LEFT JOIN users u ON u.id = j.assigned_to
		 WHERE j.id = ?`, id,
	).Scan(&j.ID, &j.Number, &j.SiteID, &j.AssetID, &j.AssignedTo, &j.Title, &description,
		&j.Status, &j.Priority, &j.ScheduledAt, &j.CreatedAt, &j.UpdatedAt, &j.DeletedAt,
		&assignedName)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting job: %w", err)
	}
	j.Description = description.String
	j.AssignedName = assignedName.String
	return j, nil
}

// ListJobs returns non-deleted jobs with raw site keys only, optionally
// filtered by status or assignee. Site and client references are attached by
// the listing pipeline.
func ListJobs(ctx context.Context, db *sql.DB, status string, assignedTo int64) ([]model.Job, error) {
	query := `SELECT j.id, j.number, j.site_id, j.asset_id, j.assigned_to, j.title, j.description,
	                 j.status, j.priority, j.scheduled_at, j.created_at, j.updated_at, j.deleted_at,
	                 u.username
	          FROM jobs j LEFT JOIN users u ON u.id = j.assigned_to
	          WHERE j.deleted_at IS NULL`
	var args []any

	if status != "" {
		query += ` AND j.status = ?`
		args = append(args, status)
	}
	if assignedTo > 0 {
		query += ` AND j.assigned_to = ?`
		args = append(args, assignedTo)
	}

	query += ` ORDER BY j.created_at DESC, j.id DESC`

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing jobs: %w", err)
	}
	defer rows.Close()

	var jobs []model.Job
	for rows.Next() {
		var j model.Job
		var description, assignedName sql.NullString
		if err := rows.Scan(&j.ID, &j.Number, &j.SiteID, &j.AssetID, &j.AssignedTo, &j.Title, &description,
			&j.Status, &j.Priority, &j.ScheduledAt, &j.CreatedAt, &j.UpdatedAt, &j.DeletedAt,
			&assignedName); err != nil {
			return nil, fmt.Errorf("scanning job: %w", err)
		}
		j.Description = description.String
		j.AssignedName = assignedName.String
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}

// UpdateJob updates a job's details (status changes go through UpdateJobStatus).
func UpdateJob(ctx context.Context, db *sql.DB, id, siteID int64, assetID, assignedTo *int64, title, description string, priority int, scheduledAt *time.Time) error {
	_, err := db.ExecContext(ctx,
		`UPDATE jobs SET site_id = ?, asset_id = ?, assigned_to = ?, title = ?, description = ?,
		        priority = ?, scheduled_at = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ? AND deleted_at IS NULL`,
		siteID, assetID, assignedTo, title, description, priority, scheduledAt, id,
	)
	if err != nil {
		return fmt.Errorf("updating job: %w", err)
	}
	return nil
}

// UpdateJobStatus transitions a job to a new status.
func UpdateJobStatus(ctx context.Context, db *sql.DB, id int64, status string) error {
	if !model.ValidJobStatus(status) {
		return fmt.Errorf("invalid job status: %q", status)
	}

	_, err := db.ExecContext(ctx,
		`UPDATE jobs SET status = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ? AND deleted_at IS NULL`,
		status, id,
	)
	if err != nil {
		return fmt.Errorf("updating job status: %w", err)
	}
	return nil
}

// DeleteJob soft-deletes a job.
func DeleteJob(ctx context.Context, db *sql.DB, id int64) error {
	_, err := db.ExecContext(ctx,
		`UPDATE jobs SET deleted_at = CURRENT_TIMESTAMP WHERE id = ? AND deleted_at IS NULL`,
		id,
	)
	if err != nil {
		return fmt.Errorf("deleting job: %w", err)
	}
	return nil
}
