package email

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"
)

// EmailConfig holds SMTP configuration
type EmailConfig struct {
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromName     string
	FromEmail    string
}

// EmailService handles email sending
type EmailService struct {
	config EmailConfig
}

// NewEmailService creates a new email service
func NewEmailService(config EmailConfig) *EmailService {
	return &EmailService{config: config}
}

// AppointmentDetails carries the fields rendered into the confirmation email
type AppointmentDetails struct {
	PatientName string
	DoctorName  string
	Date        string
	StartTime   string
	EndTime     string
}

// SendAppointmentConfirmation sends a booking confirmation to the patient
func (s *EmailService) SendAppointmentConfirmation(toEmail string, details AppointmentDetails) error {
	htmlContent, err := s.renderAppointmentEmail(details)
	if err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	subject := "Appointment Confirmed - MediCore"
	message := s.buildHTMLEmail(toEmail, subject, htmlContent)

	return s.sendEmail(toEmail, message)
}

// sendEmail sends an email using SMTP
func (s *EmailService) sendEmail(to string, message []byte) error {
	addr := fmt.Sprintf("%s:%d", s.config.SMTPHost, s.config.SMTPPort)

	auth := smtp.PlainAuth("", s.config.SMTPUsername, s.config.SMTPPassword, s.config.SMTPHost)

	err := smtp.SendMail(addr, auth, s.config.FromEmail, []string{to}, message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// buildHTMLEmail builds an HTML email message
func (s *EmailService) buildHTMLEmail(to, subject, htmlBody string) []byte {
	headers := fmt.Sprintf(
		"From: %s <%s>\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=\"UTF-8\"\r\n"+
			"\r\n",
		s.config.FromName,
		s.config.FromEmail,
		to,
		subject,
	)
	return []byte(headers + htmlBody)
}

const appointmentTemplate = `
<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <div style="max-width: 560px; margin: 0 auto; padding: 24px;">
    <h2 style="color: #2563eb;">Your appointment is confirmed</h2>
    <p>Dear {{.PatientName}},</p>
    <p>Your appointment has been scheduled with the following details:</p>
    <table style="border-collapse: collapse; width: 100%;">
      <tr><td style="padding: 6px 0;"><strong>Doctor</strong></td><td>{{.DoctorName}}</td></tr>
      <tr><td style="padding: 6px 0;"><strong>Date</strong></td><td>{{.Date}}</td></tr>
      <tr><td style="padding: 6px 0;"><strong>Time</strong></td><td>{{.StartTime}} - {{.EndTime}}</td></tr>
    </table>
    <p>Please arrive 15 minutes early and bring your medical record number.</p>
    <p style="color: #888; font-size: 12px;">If you need to reschedule, contact the reception desk.</p>
  </div>
</body>
</html>
`

// renderAppointmentEmail renders the confirmation template
func (s *EmailService) renderAppointmentEmail(details AppointmentDetails) (string, error) {
	tmpl, err := template.New("appointment").Parse(appointmentTemplate)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, details); err != nil {
		return "", err
	}

	return buf.String(), nil
}
