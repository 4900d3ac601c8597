package courseService

import (
	"errors"
	"fmt"
	courseModels "lms/models/course"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// IssueCertificate issues a certificate for a completed course. The
// returned bool reports whether this call created the certificate.
//
// Completion can be detected from concurrent requests, so issuance is a
// conditional insert guarded by the (user_id, course_id) unique index. The
// existence check keeps the common already-certified case off the write
// path; it is not authoritative. When the insert loses the race the
// duplicate-key failure means another writer already issued, and the
// existing certificate is returned as success.
func IssueCertificate(db *gorm.DB, userID, courseID uint, score int) (*courseModels.Certificate, bool, error) {
	var existing courseModels.Certificate
	err := db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	number := fmt.Sprintf("CERT-%s", uuid.NewString())
	cert := courseModels.Certificate{
		UserID:            userID,
		CourseID:          courseID,
		CertificateNumber: number,
		CertificateURL:    fmt.Sprintf("/certificates/%s.pdf", number),
		Score:             score,
		IssuedAt:          time.Now(),
	}

	if err := db.Create(&cert).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			if err := db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&existing).Error; err != nil {
				return nil, false, err
			}
			return &existing, false, nil
		}
		return nil, false, err
	}

	return &cert, true, nil
}
