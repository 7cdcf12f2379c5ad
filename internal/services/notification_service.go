// internal/services/notification_service.go
package services

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"

	"github.com/sirupsen/logrus"

	"github.com/spareshub/spareshub-backend/internal/config"
	"github.com/spareshub/spareshub-backend/internal/models"
)

type NotificationService struct {
	config *config.Config
}

type EmailTemplate struct {
	Subject string
	Body    string
}

func NewNotificationService(config *config.Config) *NotificationService {
	return &NotificationService{config: config}
}

// Vendor onboarding notifications

func (s *NotificationService) SendVendorApprovedEmail(vendor *models.VendorAccount) error {
	data := map[string]interface{}{
		"ContactPerson": vendor.ContactPerson,
		"BusinessName":  vendor.BusinessName,
		"LoginURL":      fmt.Sprintf("%s/vendor/login", s.config.Frontend.BaseURL),
	}

	subject := "Your SparesHub seller account is approved"
	body, err := s.renderTemplate(s.getEmailTemplate("vendor_approved").Body, data)
	if err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	return s.sendEmail(vendor.Email, subject, body)
}

func (s *NotificationService) SendVendorRejectedEmail(vendor *models.VendorAccount, remarks string) error {
	data := map[string]interface{}{
		"ContactPerson": vendor.ContactPerson,
		"BusinessName":  vendor.BusinessName,
		"Remarks":       remarks,
	}

	subject := "Your SparesHub seller application was not approved"
	body, err := s.renderTemplate(s.getEmailTemplate("vendor_rejected").Body, data)
	if err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	return s.sendEmail(vendor.Email, subject, body)
}

func (s *NotificationService) SendVendorSuspendedEmail(vendor *models.VendorAccount, remarks string) error {
	data := map[string]interface{}{
		"ContactPerson": vendor.ContactPerson,
		"BusinessName":  vendor.BusinessName,
		"Remarks":       remarks,
	}

	subject := "Your SparesHub seller account has been suspended"
	body, err := s.renderTemplate(s.getEmailTemplate("vendor_suspended").Body, data)
	if err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	return s.sendEmail(vendor.Email, subject, body)
}

// Product review notifications

func (s *NotificationService) SendProductApprovedEmail(vendor *models.VendorAccount, product *models.Product) error {
	data := map[string]interface{}{
		"ContactPerson": vendor.ContactPerson,
		"ProductName":   product.Name,
		"ProductURL":    fmt.Sprintf("%s/products/%s", s.config.Frontend.BaseURL, product.ID),
	}

	subject := "Listing approved - " + product.Name
	body, err := s.renderTemplate(s.getEmailTemplate("product_approved").Body, data)
	if err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	return s.sendEmail(vendor.Email, subject, body)
}

func (s *NotificationService) SendProductRejectedEmail(vendor *models.VendorAccount, product *models.Product, reason string) error {
	data := map[string]interface{}{
		"ContactPerson": vendor.ContactPerson,
		"ProductName":   product.Name,
		"Reason":        reason,
	}

	subject := "Listing rejected - " + product.Name
	body, err := s.renderTemplate(s.getEmailTemplate("product_rejected").Body, data)
	if err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	return s.sendEmail(vendor.Email, subject, body)
}

// Helper methods

func (s *NotificationService) sendEmail(to, subject, body string) error {
	if s.config.Email.SMTPHost == "" {
		// Email not configured, just log
		logrus.WithFields(logrus.Fields{"to": to, "subject": subject}).Info("email delivery skipped (SMTP not configured)")
		return nil
	}

	auth := smtp.PlainAuth("", s.config.Email.SMTPUsername, s.config.Email.SMTPPassword, s.config.Email.SMTPHost)
	msg := []byte(fmt.Sprintf("To: %s\r\nSubject: %s\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n%s", to, subject, body))
	addr := fmt.Sprintf("%s:%s", s.config.Email.SMTPHost, s.config.Email.SMTPPort)

	return smtp.SendMail(addr, auth, s.config.Email.FromEmail, []string{to}, msg)
}

func (s *NotificationService) renderTemplate(templateStr string, data interface{}) (string, error) {
	tmpl, err := template.New("email").Parse(templateStr)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}

func (s *NotificationService) getEmailTemplate(templateType string) EmailTemplate {
	templates := map[string]EmailTemplate{
		"vendor_approved": {
			Subject: "Seller account approved",
			Body: `
<!DOCTYPE html>
<html>
<body>
	<h2>Welcome aboard, {{.ContactPerson}}!</h2>
	<p>Your seller account for {{.BusinessName}} has been approved.</p>
	<p>You can now sign in and start listing spare parts:</p>
	<a href="{{.LoginURL}}">Sign in to your seller dashboard</a>
	<p>Regards,<br>SparesHub Team</p>
</body>
</html>`,
		},
		"vendor_rejected": {
			Subject: "Seller application not approved",
			Body: `
<!DOCTYPE html>
<html>
<body>
	<h2>Hello {{.ContactPerson}},</h2>
	<p>We could not approve the seller application for {{.BusinessName}}.</p>
	{{if .Remarks}}<p>Reviewer remarks: {{.Remarks}}</p>{{end}}
	<p>Regards,<br>SparesHub Team</p>
</body>
</html>`,
		},
		"vendor_suspended": {
			Subject: "Seller account suspended",
			Body: `
<!DOCTYPE html>
<html>
<body>
	<h2>Hello {{.ContactPerson}},</h2>
	<p>The seller account for {{.BusinessName}} has been suspended. Your listings are not visible to customers while the suspension is in effect.</p>
	{{if .Remarks}}<p>Reviewer remarks: {{.Remarks}}</p>{{end}}
	<p>Regards,<br>SparesHub Team</p>
</body>
</html>`,
		},
		"product_approved": {
			Subject: "Listing approved",
			Body: `
<!DOCTYPE html>
<html>
<body>
	<h2>Hello {{.ContactPerson}},</h2>
	<p>Your listing "{{.ProductName}}" has been approved and is now live.</p>
	<a href="{{.ProductURL}}">View listing</a>
	<p>Regards,<br>SparesHub Team</p>
</body>
</html>`,
		},
		"product_rejected": {
			Subject: "Listing rejected",
			Body: `
<!DOCTYPE html>
<html>
<body>
	<h2>Hello {{.ContactPerson}},</h2>
	<p>Your listing "{{.ProductName}}" was rejected during review.</p>
	<p>Reason: {{.Reason}}</p>
	<p>You can correct the listing and resubmit it for review.</p>
	<p>Regards,<br>SparesHub Team</p>
</body>
</html>`,
		},
	}

	if tmpl, exists := templates[templateType]; exists {
		return tmpl
	}

	return EmailTemplate{
		Subject: "Notification",
		Body:    "<p>{{.Message}}</p>",
	}
}
