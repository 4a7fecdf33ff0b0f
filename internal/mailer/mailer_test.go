package mailer

import (
	"errors"
	"testing"

	"storefront/internal/model"

	"github.com/stretchr/testify/require"
	gomail "gopkg.in/gomail.v2"
)

func TestNewUnconfiguredIsNop(t *testing.T) {
	m := New(Config{})
	require.IsType(t, Nop{}, m)
	require.NoError(t, m.NotifyProductSubmitted(model.Product{Name: "Widget"}))

	m = New(Config{Host: "smtp.example.com"}) // user still missing
	require.IsType(t, Nop{}, m)
}

func TestSMTPNotifyProductSubmitted(t *testing.T) {
	t.Cleanup(func() {
		dialAndSend = func(d *gomail.Dialer, m *gomail.Message) error { return d.DialAndSend(m) }
	})

	var sent *gomail.Message
	dialAndSend = func(d *gomail.Dialer, m *gomail.Message) error {
		require.Equal(t, "smtp.example.com", d.Host)
		require.Equal(t, 587, d.Port)
		sent = m
		return nil
	}

	m := New(Config{
		Host:        "smtp.example.com",
		Port:        587,
		User:        "store@example.com",
		Pass:        "pw",
		AdminEmail:  "admin@example.com",
		FrontendURL: "https://store.example.com",
	})
	require.IsType(t, &SMTP{}, m)

	err := m.NotifyProductSubmitted(model.Product{Name: "Widget", Price: 9.99})
	require.NoError(t, err)
	require.NotNil(t, sent)
	require.Equal(t, []string{"admin@example.com"}, sent.GetHeader("To"))

	dialAndSend = func(*gomail.Dialer, *gomail.Message) error { return errors.New("relay down") }
	require.Error(t, m.NotifyProductSubmitted(model.Product{Name: "Widget"}))
}
