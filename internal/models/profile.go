package models

import "time"

// Recruitment statuses on a user profile, set by admins.
const (
	RecruitmentPending     = "PENDING"
	RecruitmentShortlisted = "SHORTLISTED"
	RecruitmentRejected    = "REJECTED"
	RecruitmentHired       = "HIRED"
)

// UserProfileDB represents a user's profile record. One profile per user,
// created lazily on first access.
type UserProfileDB struct {
	ProfileID int64 `json:"profile_id" db:"profile_id"`
	UserID    int64 `json:"user_id" db:"user_id"`

	// Personal info
	Phone *string `json:"phone" db:"phone"`
	Bio   *string `json:"bio" db:"bio"`

	// Academic info
	HighestDegree     *string  `json:"highest_degree" db:"highest_degree"`
	Branch            *string  `json:"branch" db:"branch"`
	College           *string  `json:"college" db:"college"`
	State             *string  `json:"state" db:"state"`
	CGPA              *float64 `json:"cgpa" db:"cgpa"`
	TenthPercentage   *float64 `json:"tenth_percentage" db:"tenth_percentage"`
	TwelfthPercentage *float64 `json:"twelfth_percentage" db:"twelfth_percentage"`

	// Skills and certifications
	Skills         *string `json:"skills" db:"skills"` // comma-separated
	SoftSkills     *string `json:"soft_skills" db:"soft_skills"`
	Certifications *string `json:"certifications" db:"certifications"`

	// Social links
	GitHub   *string `json:"github" db:"github"`
	LinkedIn *string `json:"linkedin" db:"linkedin"`

	RecruitmentStatus string    `json:"recruitment_status" db:"recruitment_status"`
	UpdatedAt         time.Time `json:"updated_at" db:"updated_at"`
}

// ProfileUpdate carries the owner-writable profile fields. Nil fields are
// left unchanged. recruitment_status is deliberately absent: it is mutated
// only through the admin surface.
type ProfileUpdate struct {
	Phone             *string  `json:"phone"`
	Bio               *string  `json:"bio"`
	HighestDegree     *string  `json:"highest_degree"`
	Branch            *string  `json:"branch"`
	College           *string  `json:"college"`
	State             *string  `json:"state"`
	CGPA              *float64 `json:"cgpa"`
	TenthPercentage   *float64 `json:"tenth_percentage"`
	TwelfthPercentage *float64 `json:"twelfth_percentage"`
	Skills            *string  `json:"skills"`
	SoftSkills        *string  `json:"soft_skills"`
	Certifications    *string  `json:"certifications"`
	GitHub            *string  `json:"github"`
	LinkedIn          *string  `json:"linkedin"`
}
