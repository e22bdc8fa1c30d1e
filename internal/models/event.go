package models

// ApplicationStatusEvent is published when an admin changes an
// application's status.
type ApplicationStatusEvent struct {
	EventID       string `json:"event_id"`       // Unique event identifier
	ApplicationID int64  `json:"application_id"` // Application whose status changed
	UserID        int64  `json:"user_id"`        // Owner of the application
	OldStatus     string `json:"old_status"`
	NewStatus     string `json:"new_status"`
	Timestamp     int64  `json:"timestamp"` // Unix timestamp (seconds) of the change
}
