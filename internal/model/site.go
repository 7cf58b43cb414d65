package model

import "time"

// Site represents a service location belonging to a client.
type Site struct {
	ID        int64      `json:"id"`
	ClientID  int64      `json:"client_id"`
	Name      string     `json:"name"`
	Address   string     `json:"address,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`

	// Joined field (not always populated).
	ClientName string `json:"client_name,omitempty"`
}
