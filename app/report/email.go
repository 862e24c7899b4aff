package report

import (
	"fmt"
	"net/smtp"
	"strconv"
	"strings"
)

// EmailSender delivers the HTML report over SMTP with PLAIN auth. Delivery is
// gated on complete email configuration; an unconfigured sender is a no-op.
type EmailSender struct {
	host      string
	port      int
	sender    string
	password  string
	recipient string
}

func NewEmailSender(host string, port int, sender, password, recipient string) *EmailSender {
	return &EmailSender{
		host:      host,
		port:      port,
		sender:    sender,
		password:  password,
		recipient: recipient,
	}
}

func (e *EmailSender) Configured() bool {
	return e.sender != "" && e.password != "" && e.recipient != ""
}

func (e *EmailSender) Send(subject, htmlBody string) error {
	if !e.Configured() {
		return fmt.Errorf("email sender not fully configured")
	}

	var msg strings.Builder
	msg.WriteString("From: " + e.sender + "\r\n")
	msg.WriteString("To: " + e.recipient + "\r\n")
	msg.WriteString("Subject: " + subject + "\r\n")
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(htmlBody)

	addr := e.host + ":" + strconv.Itoa(e.port)
	auth := smtp.PlainAuth("", e.sender, e.password, e.host)

	if err := smtp.SendMail(addr, auth, e.sender, []string{e.recipient}, []byte(msg.String())); err != nil {
		return fmt.Errorf("failed to send report email: %w", err)
	}

	return nil
}
