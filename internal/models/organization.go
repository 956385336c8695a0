package models

import "time"

// Organization owns a set of materiality topics. ConsultantID links client
// organizations to the consultant managing their assessment.
type Organization struct {
	ID           string    `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	ConsultantID *string   `db:"consultant_id" json:"consultant_id,omitempty"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
