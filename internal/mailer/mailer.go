// Package mailer notifies the admin when a vendor submits a product for
// review. Missing SMTP configuration disables it entirely; notification
// must never block or fail a request.
package mailer

import (
	"fmt"

	"storefront/internal/model"

	gomail "gopkg.in/gomail.v2"
)

type Mailer interface {
	NotifyProductSubmitted(p model.Product) error
}

// Nop is used when SMTP credentials are not configured.
type Nop struct{}

func (Nop) NotifyProductSubmitted(model.Product) error { return nil }

type Fake struct {
	NotifyFn func(p model.Product) error
}

func (f *Fake) NotifyProductSubmitted(p model.Product) error {
	if f.NotifyFn != nil {
		return f.NotifyFn(p)
	}
	panic("unexpected NotifyProductSubmitted")
}

// SMTP sends the review notification through a plain SMTP relay.
type SMTP struct {
	host     string
	port     int
	user     string
	pass     string
	admin    string
	frontend string
}

type Config struct {
	Host        string
	Port        int
	User        string
	Pass        string
	AdminEmail  string
	FrontendURL string
}

// New returns an SMTP mailer, or Nop when host or user is missing.
func New(cfg Config) Mailer {
	if cfg.Host == "" || cfg.User == "" {
		return Nop{}
	}
	admin := cfg.AdminEmail
	if admin == "" {
		admin = "admin@example.com"
	}
	frontend := cfg.FrontendURL
	if frontend == "" {
		frontend = "http://localhost:3000"
	}
	return &SMTP{
		host:     cfg.Host,
		port:     cfg.Port,
		user:     cfg.User,
		pass:     cfg.Pass,
		admin:    admin,
		frontend: frontend,
	}
}

// dialAndSend is a var so tests avoid a real SMTP round-trip.
var dialAndSend = func(d *gomail.Dialer, m *gomail.Message) error {
	return d.DialAndSend(m)
}

func (s *SMTP) NotifyProductSubmitted(p model.Product) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.user)
	m.SetHeader("To", s.admin)
	m.SetHeader("Subject", "New Product Added")
	m.SetBody("text/html", fmt.Sprintf(`
		<h2>New Product Pending Approval</h2>
		<p><strong>Product Name:</strong> %s</p>
		<p><strong>Description:</strong> %s</p>
		<p><strong>Price:</strong> $%.2f</p>
		<p><img src=%q alt=%q style="max-width: 300px;"></p>
		<p><a href="%s/admin/products/pending">Review in Admin Panel</a></p>`,
		p.Name, p.Description, p.Price, p.ImageURL, p.Name, s.frontend))

	d := gomail.NewDialer(s.host, s.port, s.user, s.pass)
	return dialAndSend(d, m)
}
