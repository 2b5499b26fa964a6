package utils

import (
	"log"

	"booking-intake-service/config"

	"gopkg.in/gomail.v2"
)

type EmailData struct {
	To      string
	Subject string
	HTML    string
}

// Dialer is the gomail surface the sender needs; *gomail.Dialer satisfies it.
type Dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

type SMTPSender struct {
	from   string
	dialer Dialer
}

func NewSMTPSender(cfg *config.Config) *SMTPSender {
	return &SMTPSender{
		from:   cfg.EmailFrom,
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass),
	}
}

func NewSMTPSenderWithDialer(from string, dialer Dialer) *SMTPSender {
	return &SMTPSender{from, dialer}
}

func (s *SMTPSender) Send(data *EmailData) error {
	m := gomail.NewMessage()

	m.SetHeader("From", s.from)
	m.SetHeader("To", data.To)
	m.SetHeader("Subject", data.Subject)
	m.SetBody("text/html", data.HTML)

	err := s.dialer.DialAndSend(m)
	if err != nil {
		log.Printf("Could not send email: %v", err)
		return err
	}
	return nil
}
