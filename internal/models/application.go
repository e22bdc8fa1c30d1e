package models

import "time"

// Job application statuses.
const (
	ApplicationPending     = "pending"
	ApplicationShortlisted = "shortlisted"
	ApplicationRejected    = "rejected"
	ApplicationHired       = "hired"
)

// ValidApplicationStatus reports whether status is one of the known
// job-application statuses.
func ValidApplicationStatus(status string) bool {
	switch status {
	case ApplicationPending, ApplicationShortlisted, ApplicationRejected, ApplicationHired:
		return true
	}
	return false
}

// JobApplicationDB represents a job application submitted by a user.
type JobApplicationDB struct {
	ID         int64     `json:"id" db:"id"`
	UserID     int64     `json:"user_id" db:"user_id"`
	JobTitle   string    `json:"job_title" db:"job_title"`
	Company    string    `json:"company" db:"company"`
	Location   string    `json:"location" db:"location"`
	JobLink    *string   `json:"job_link" db:"job_link"`
	MatchScore *float64  `json:"match_score" db:"match_score"` // match score percentage
	Status     string    `json:"status" db:"status"`
	AppliedAt  time.Time `json:"applied_at" db:"applied_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}

// JobApplicationAdminDB is an application row joined with its owner's
// username and email for the admin listing.
type JobApplicationAdminDB struct {
	JobApplicationDB
	Username  string `json:"username" db:"username"`
	UserEmail string `json:"user_email" db:"user_email"`
}

// ApplicationFields carries the owner-supplied fields of a new application.
// The owning user is always taken from the authenticated caller.
type ApplicationFields struct {
	JobTitle   string   `json:"job_title"`
	Company    string   `json:"company"`
	Location   string   `json:"location"`
	JobLink    *string  `json:"job_link"`
	MatchScore *float64 `json:"match_score"`
}
