package auth

import (
	"fmt"
	"net/smtp"
)

func (h *Handler) SendVerificationEmail(to string, token string) error {
	link := fmt.Sprintf("%s/verify?token=%s", h.Cfg.FrontendURL, token)
	body := fmt.Sprintf("Click the following link to verify your account:\n\n%s", link)
	return h.sendMail(to, "Verify Your Account", body)
}

func (h *Handler) SendPasswordResetEmail(to string, token string) error {
	link := fmt.Sprintf("%s/reset-password?token=%s", h.Cfg.FrontendURL, token)
	body := fmt.Sprintf("Click the following link to reset your password:\n\n%s\n\nThe link expires in one hour.", link)
	return h.sendMail(to, "Reset Your Password", body)
}

func (h *Handler) sendMail(to, subject, body string) error {
	from := h.Cfg.SMTPFrom
	host := h.Cfg.SMTPHost
	port := h.Cfg.SMTPPort

	// Local setups without SMTP: log the mail instead of failing signup.
	if host == "" {
		h.Log.Info().Str("to", to).Str("subject", subject).Msg("SMTP not configured, skipping email")
		return nil
	}

	smtpAuth := smtp.PlainAuth("", from, h.Cfg.SMTPPassword, host)

	message := []byte("Subject: " + subject + "\r\n" +
		"From: " + from + "\r\n" +
		"To: " + to + "\r\n" +
		"Content-Type: text/plain; charset=UTF-8\r\n" +
		"\r\n" +
		body + "\r\n")

	if err := smtp.SendMail(host+":"+port, smtpAuth, from, []string{to}, message); err != nil {
		h.Log.Warn().Err(err).Str("to", to).Msg("SMTP send failed")
		return err
	}
	return nil
}
