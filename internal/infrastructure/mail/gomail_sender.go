// Package mail sends transactional email over SMTP with gomail.
package mail

import (
	"bytes"
	"fmt"
	"io"

	gomail "gopkg.in/gomail.v2"

	"github.com/aryaman2519/My-Bussiness-Manager/internal/application/ports"
	"github.com/aryaman2519/My-Bussiness-Manager/pkg/config"
	"github.com/aryaman2519/My-Bussiness-Manager/pkg/logger"
)

var _ ports.Mailer = (*GomailSender)(nil)

// GomailSender implements ports.Mailer over SMTP. With SMTP disabled in the
// configuration every send is a logged no-op, so billing never depends on a
// mail server being reachable.
type GomailSender struct {
	cfg config.SMTPConfig
	log *logger.Logger
}

// NewGomailSender builds the sender.
func NewGomailSender(cfg config.SMTPConfig, log *logger.Logger) *GomailSender {
	return &GomailSender{cfg: cfg, log: log}
}

// SendInvoice mails the generated bill PDF to the customer.
func (s *GomailSender) SendInvoice(to, customerName, businessName, invoiceNumber string, pdf []byte) error {
	if !s.cfg.Enabled() {
		s.log.Debug().Str("to", to).Msg("smtp disabled, skipping invoice email")
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("Invoice %s from %s", invoiceNumber, businessName))
	m.SetBody("text/plain", fmt.Sprintf(
		"Dear %s,\n\nThank you for your purchase. Your invoice %s is attached.\n\nRegards,\n%s",
		customerName, invoiceNumber, businessName,
	))
	m.Attach(fmt.Sprintf("Invoice_%s.pdf", invoiceNumber), gomail.SetCopyFunc(func(w io.Writer) error {
		_, err := io.Copy(w, bytes.NewReader(pdf))
		return err
	}))

	if err := s.dialer().DialAndSend(m); err != nil {
		return fmt.Errorf("send invoice email: %w", err)
	}
	return nil
}

// SendLowStockAlert warns the owner that an item fell to or below its threshold.
func (s *GomailSender) SendLowStockAlert(to, productName, companyName string, quantity, threshold int64) error {
	if !s.cfg.Enabled() {
		s.log.Debug().Str("to", to).Msg("smtp disabled, skipping low stock alert")
		return nil
	}

	product := productName
	if companyName != "" {
		product = fmt.Sprintf("%s (%s)", productName, companyName)
	}
	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Low stock alert: "+product)
	m.SetBody("text/plain", fmt.Sprintf(
		"Stock for %s is down to %d units (threshold %d). Consider restocking soon.",
		product, quantity, threshold,
	))

	if err := s.dialer().DialAndSend(m); err != nil {
		return fmt.Errorf("send low stock alert: %w", err)
	}
	return nil
}

func (s *GomailSender) dialer() *gomail.Dialer {
	return gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.Username, s.cfg.Password)
}
