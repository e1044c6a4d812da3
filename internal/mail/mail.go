// mail отправляет письма с одноразовыми кодами по SMTP.
package mail

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"mime"
	"net/smtp"
	"strings"
	"time"

	"github.com/pribylovaa/social-network/internal/config"
)

// ErrEmptyContent — письмо без получателя или тела.
var ErrEmptyContent = errors.New("missing email content")

// Тема и заголовок писем по типу.
const (
	SubjectConfirmEmail  = "Confirm_Email"
	SubjectResetPassword = "Reset_Password"

	titleConfirmEmail  = "Email Confirmation"
	titleResetPassword = "Reset Password"
)

var otpTemplate = template.Must(template.New("otp").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; background-color: #f2f4f8; margin: 0; padding: 0;">
  <div style="max-width: 620px; margin: 30px auto; background: #ffffff; border-radius: 14px; border: 1px solid #e6e9ee;">
    <div style="background: #6a5af9; color: #ffffff; text-align: center; padding: 30px;">
      <h1 style="margin: 0;">{{.App}}</h1>
    </div>
    <div style="padding: 28px; color: #2d3436; line-height: 1.7;">
      <h2 style="margin-top: 0; color: #6a5af9;">{{.Title}}</h2>
      <p>Hi {{.Name}},</p>
      <p>Use the code below. It can be used only once.</p>
      <div style="display: inline-block; background: #6a5af9; color: #ffffff; padding: 14px 30px; border-radius: 10px; font-size: 22px; letter-spacing: 3px;">{{.OTP}}</div>
    </div>
    <div style="text-align: center; color: #888888; font-size: 12px; padding: 16px;">&copy; {{.Year}} {{.App}}</div>
  </div>
</body>
</html>
`))

type otpData struct {
	App   string
	Title string
	Name  string
	OTP   string
	Year  int
}

// sendFunc совпадает по сигнатуре с smtp.SendMail.
type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// Sender — SMTP-отправитель с PLAIN-аутентификацией.
type Sender struct {
	cfg  config.MailConfig
	app  string
	send sendFunc
	now  func() time.Time
}

// New создаёт отправителя. app подставляется в имя отправителя и шаблон.
func New(cfg config.MailConfig, app string) *Sender {
	return &Sender{cfg: cfg, app: app, send: smtp.SendMail, now: time.Now}
}

// RenderOTP рендерит письмо с кодом. subject — SubjectConfirmEmail или SubjectResetPassword.
func (s *Sender) RenderOTP(subject, name, otp string) (string, error) {
	const op = "mail.RenderOTP"

	title := titleConfirmEmail
	if subject == SubjectResetPassword {
		title = titleResetPassword
	}

	var buf bytes.Buffer
	err := otpTemplate.Execute(&buf, otpData{
		App:   s.app,
		Title: title,
		Name:  name,
		OTP:   otp,
		Year:  s.now().Year(),
	})
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return buf.String(), nil
}

// Send отправляет HTML-письмо. Отмена ctx проверяется до соединения:
// net/smtp не принимает контекст.
func (s *Sender) Send(ctx context.Context, to, subject, html string) error {
	const op = "mail.Send"

	if strings.TrimSpace(to) == "" || html == "" {
		return fmt.Errorf("%s: %w", op, ErrEmptyContent)
	}

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	var auth smtp.Auth
	if s.cfg.Username != "" {
		auth = smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	}

	from := s.cfg.From
	if from == "" {
		from = s.cfg.Username
	}

	if err := s.send(s.cfg.Addr(), auth, from, []string{to}, s.message(from, to, subject, html)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// message собирает RFC 5322 сообщение с HTML-телом.
func (s *Sender) message(from, to, subject, html string) []byte {
	var b bytes.Buffer

	fmt.Fprintf(&b, "From: %s <%s>\r\n", mime.QEncoding.Encode("utf-8", s.app), from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", subject))
	fmt.Fprintf(&b, "Date: %s\r\n", s.now().UTC().Format(time.RFC1123Z))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"utf-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(html)

	return b.Bytes()
}
