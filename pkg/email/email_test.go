package email

import (
	"errors"
	"net/smtp"
	"portfolio-backend/config"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		SMTPHost:       "smtp.test",
		SMTPPort:       "587",
		SMTPUsername:   "user",
		SMTPPassword:   "pass",
		SMTPFromEmail:  "noreply@soniaamorim.com",
		ContactEmailTo: "contato@soniaamorim.com",
	}
}

func TestBuildContactMessageEscapesHTML(t *testing.T) {
	svc := NewEmailService(testConfig())

	msg, err := svc.BuildContactMessage(ContactEmailData{
		SenderName:  "Ana Silva",
		SenderEmail: "ana@x.com",
		Phone:       "11999998888",
		Service:     "fotografia",
		Message:     "<script>alert(1)</script>",
	})
	require.NoError(t, err)

	body := string(msg)
	assert.Contains(t, body, "Reply-To: ana@x.com\r\n")
	assert.Contains(t, body, "Subject: Contato pelo site: Ana Silva (fotografia)\r\n")
	assert.Contains(t, body, "&lt;script&gt;")
	assert.NotContains(t, body, "<script>")
}

func TestBuildContactMessageHeaderInjection(t *testing.T) {
	svc := NewEmailService(testConfig())

	msg, err := svc.BuildContactMessage(ContactEmailData{
		SenderName:  "Ana\r\nBcc: victim@evil.example",
		SenderEmail: "ana@x.com\nCc: other@evil.example",
		Service:     "fotografia",
		Message:     "Mensagem de teste",
	})
	require.NoError(t, err)

	head, _, found := strings.Cut(string(msg), "\r\n\r\n")
	require.True(t, found)

	lines := strings.Split(head, "\r\n")
	assert.Len(t, lines, 6)
	for _, line := range lines {
		assert.NotContains(t, line, "\n")
		assert.False(t, strings.HasPrefix(line, "Bcc:"), "injected header line: %q", line)
		assert.False(t, strings.HasPrefix(line, "Cc:"), "injected header line: %q", line)
	}
	assert.Contains(t, head, "Subject: Contato pelo site: Ana Bcc: victim@evil.example (fotografia)")
}

func TestBuildContactMessageEncodesSubject(t *testing.T) {
	svc := NewEmailService(testConfig())

	msg, err := svc.BuildContactMessage(ContactEmailData{
		SenderName: "João",
		Service:    "fotografia",
	})
	require.NoError(t, err)
	assert.Contains(t, string(msg), "Subject: =?utf-8?q?Contato_pelo_site:_Jo=C3=A3o_(fotografia)?=\r\n")
}

func TestSendContactEmail(t *testing.T) {
	svc := NewEmailService(testConfig())

	var gotAddr string
	var gotTo []string
	svc.send = func(addr string, _ smtp.Auth, _ string, to []string, _ []byte) error {
		gotAddr, gotTo = addr, to
		return nil
	}
	require.NoError(t, svc.SendContactEmail(ContactEmailData{SenderName: "Ana"}))
	assert.Equal(t, "smtp.test:587", gotAddr)
	assert.Equal(t, []string{"contato@soniaamorim.com"}, gotTo)

	svc.send = func(string, smtp.Auth, string, []string, []byte) error {
		return errors.New("relay down")
	}
	assert.ErrorContains(t, svc.SendContactEmail(ContactEmailData{}), "relay down")
}

func TestIsConfigured(t *testing.T) {
	assert.True(t, NewEmailService(testConfig()).IsConfigured())

	cfg := testConfig()
	cfg.SMTPPassword = ""
	assert.False(t, NewEmailService(cfg).IsConfigured())
}
