package model

import (
	"time"

	"fieldbase/internal/listing"
)

// Job represents a work order dispatched against a site.
type Job struct {
	ID          int64      `json:"id"`
	Number      string     `json:"number"`
	SiteID      int64      `json:"site_id"`
	AssetID     *int64     `json:"asset_id,omitempty"`
	AssignedTo  *int64     `json:"assigned_to,omitempty"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Status      string     `json:"status"`
	Priority    int        `json:"priority"`
	ScheduledAt *time.Time `json:"scheduled_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`

	// Joined fields (not always populated).
	Site         *listing.SiteRef `json:"site,omitempty"`
	AssignedName string           `json:"assigned_name,omitempty"`
}

// Job statuses.
const (
	JobStatusScheduled  = "scheduled"
	JobStatusInProgress = "in_progress"
	JobStatusCompleted  = "completed"
	JobStatusCancelled  = "cancelled"
)

// ValidJobStatus reports whether status is one of the job statuses.
func ValidJobStatus(status string) bool {
	switch status {
	case JobStatusScheduled, JobStatusInProgress, JobStatusCompleted, JobStatusCancelled:
		return true
	}
	return false
}

// SiteKey returns the raw site foreign key.
func (j Job) SiteKey() int64 { return j.SiteID }

// SiteRef returns the attached site reference, or an unresolved stub built
// from the foreign key.
func (j Job) SiteRef() listing.SiteRef {
	if j.Site == nil {
		return listing.SiteRef{ID: j.SiteID}
	}
	return *j.Site
}

// WithSiteRef returns a copy of the job with the site reference replaced.
func (j Job) WithSiteRef(ref listing.SiteRef) Job {
	j.Site = &ref
	return j
}

// SearchValues returns the job's searchable fields.
func (j Job) SearchValues() []string {
	return []string{j.Number, j.Title, j.Status}
}

// SortValue resolves direct sort fields for the listing pipeline.
func (j Job) SortValue(field string) (any, bool) {
	switch field {
	case "number":
		return j.Number, true
	case "title":
		return j.Title, true
	case "status":
		return j.Status, true
	case "priority":
		return j.Priority, true
	case "scheduled_at":
		if j.ScheduledAt == nil {
			return nil, true
		}
		return *j.ScheduledAt, true
	case "created_at":
		return j.CreatedAt, true
	}
	return nil, false
}
