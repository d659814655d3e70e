package mailing

import (
	"fmt"
	"strconv"

	"nutritrack-backend/internal/utils"

	"gopkg.in/gomail.v2"
)

type MailConfig struct {
	AppURL       string
	SMTPHost     string
	SMTPPort     string
	SMTPSender   string
	SMTPEmail    string
	SMTPPassword string
}

func LoadMailConfig() MailConfig {
	return MailConfig{
		AppURL:       utils.GetConfig("APP_URL"),
		SMTPHost:     utils.GetConfig("SMTP_HOST"),
		SMTPPort:     utils.GetConfig("SMTP_PORT"),
		SMTPSender:   utils.GetConfig("SMTP_SENDER_NAME"),
		SMTPEmail:    utils.GetConfig("SMTP_AUTH_EMAIL"),
		SMTPPassword: utils.GetConfig("SMTP_AUTH_PASSWORD"),
	}
}

func SendMail(toEmail string, subject string, body string) error {
	emailConfig := LoadMailConfig()

	mailer := gomail.NewMessage()
	mailer.SetHeader("From", emailConfig.SMTPEmail)
	mailer.SetHeader("To", toEmail)
	mailer.SetHeader("Subject", subject)
	mailer.SetBody("text/html", body)
	port, err := strconv.Atoi(emailConfig.SMTPPort)
	if err != nil {
		return err
	}
	dialer := gomail.NewDialer(
		emailConfig.SMTPHost,
		port,
		emailConfig.SMTPEmail,
		emailConfig.SMTPPassword,
	)

	return dialer.DialAndSend(mailer)
}

// SendWelcomeEmail greets a newly registered user. Failures are the caller's
// problem; registration must not depend on the mail server.
func SendWelcomeEmail(toEmail, name string) error {
	body := fmt.Sprintf(
		"<h2>Welcome to NutriTrack, %s!</h2>"+
			"<p>Your account is ready. Log your first meal to get a personalized "+
			"nutrition analysis and daily targets.</p>"+
			"<p><a href=\"%s\">Open NutriTrack</a></p>",
		name, LoadMailConfig().AppURL,
	)
	return SendMail(toEmail, "Welcome to NutriTrack", body)
}
