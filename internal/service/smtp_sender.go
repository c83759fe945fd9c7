package service

import (
	"crypto/tls"
	"fmt"
	"net/smtp"
)

// SMTPSender sends mail over an authenticated SMTP session. Port 465 uses
// implicit TLS; any other port goes through smtp.SendMail, which upgrades
// with STARTTLS when the server offers it.
type SMTPSender struct {
	Host string
	Port string
	User string
	Pass string
}

func NewSMTPSender(host, port, user, pass string) *SMTPSender {
	return &SMTPSender{Host: host, Port: port, User: user, Pass: pass}
}

func (s *SMTPSender) Send(fromName, fromAddr, to, subject, htmlBody string) error {
	msg := buildMessage(fromName, fromAddr, to, subject, htmlBody)
	addr := s.Host + ":" + s.Port
	auth := smtp.PlainAuth("", s.User, s.Pass, s.Host)

	if s.Port == "465" {
		if err := s.sendImplicitTLS(addr, auth, fromAddr, to, msg); err != nil {
			return fmt.Errorf("failed to send email: %w", err)
		}
		return nil
	}

	if err := smtp.SendMail(addr, auth, fromAddr, []string{to}, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func (s *SMTPSender) sendImplicitTLS(addr string, auth smtp.Auth, from, to string, msg []byte) error {
	conn, err := tls.Dial("tcp", addr, &tls.Config{ServerName: s.Host})
	if err != nil {
		return err
	}
	c, err := smtp.NewClient(conn, s.Host)
	if err != nil {
		conn.Close()
		return err
	}
	defer c.Close()

	if err := c.Auth(auth); err != nil {
		return err
	}
	if err := c.Mail(from); err != nil {
		return err
	}
	if err := c.Rcpt(to); err != nil {
		return err
	}
	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return c.Quit()
}

func buildMessage(fromName, fromAddr, to, subject, htmlBody string) []byte {
	msg := fmt.Sprintf("From: %q <%s>\r\n", fromName, fromAddr) +
		"To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: text/html; charset=\"UTF-8\"\r\n" +
		"\r\n" +
		htmlBody
	return []byte(msg)
}
