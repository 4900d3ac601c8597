package course

import (
	"time"

	"gorm.io/gorm"
)

// Certificate represents an issued certificate for course completion.
// The (user_id, course_id) unique index is what guarantees at most one
// certificate per user per course under concurrent issuance.
type Certificate struct {
	gorm.Model
	UserID            uint      `json:"user_id" gorm:"uniqueIndex:idx_certificates_user_course;not null"`
	CourseID          uint      `json:"course_id" gorm:"uniqueIndex:idx_certificates_user_course;not null"`
	CertificateNumber string    `json:"certificate_number" gorm:"unique"`
	CertificateURL    string    `json:"certificate_url"`
	Score             int       `json:"score"`
	IssuedAt          time.Time `json:"issued_at"`
}
