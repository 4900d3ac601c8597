package utils

import (
	"lms/config"
	courseModels "lms/models/course"
	"log"

	"github.com/go-resty/resty/v2"
)

// NotifyCertificateIssued posts the issued certificate to the configured
// webhook so downstream dashboards pick it up. Fire-and-forget: delivery
// failure never affects the issuing request.
func NotifyCertificateIssued(cert *courseModels.Certificate) {
	webhookURL := config.AppConfig.CertificateWebhook
	if webhookURL == "" {
		return
	}

	go func() {
		client := resty.New()
		resp, err := client.R().
			SetHeader("Content-Type", "application/json").
			SetBody(map[string]interface{}{
				"event":              "certificate.issued",
				"user_id":            cert.UserID,
				"course_id":          cert.CourseID,
				"certificate_number": cert.CertificateNumber,
				"certificate_url":    config.AppConfig.CertificateBaseURL + cert.CertificateURL,
				"score":              cert.Score,
				"issued_at":          cert.IssuedAt,
			}).
			Post(webhookURL)
		if err != nil {
			log.Printf("Failed to deliver certificate webhook: %v", err)
			return
		}
		if resp.StatusCode() >= 300 {
			log.Printf("Certificate webhook returned %d: %s", resp.StatusCode(), resp.String())
		}
	}()
}
