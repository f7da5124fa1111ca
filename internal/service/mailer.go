// Package service contains the account provisioning and verification flows
package service

import (
	"errors"

	"github.com/spf13/viper"
	"gopkg.in/gomail.v2"
)

// Mailer delivers the verification link to a freshly registered address.
// The registration flow only depends on this interface so tests can swap
// the SMTP transport out.
type Mailer interface {
	SendVerificationMail(sendTo, verifLink string) error
}

type SMTPMailer struct{}

func NewSMTPMailer() *SMTPMailer {
	return &SMTPMailer{}
}

func (s *SMTPMailer) SendVerificationMail(sendTo, verifLink string) error {
	from := viper.GetString("mail.sender")
	if sendTo == from {
		return errors.New("invalid email address")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", sendTo)
	m.SetHeader("Subject", "Verify your email address")
	m.SetBody("text/html", "Click <a href='"+verifLink+"'>here</a> to verify your account.")

	d := gomail.NewDialer(
		viper.GetString("mail.host"),
		viper.GetInt("mail.port"),
		from,
		viper.GetString("mail.password"),
	)

	return d.DialAndSend(m)
}
