// Package mail sends templated notification emails.
package mail

import (
	"bytes"
	"context"
	"errors"
	"io"

	"github.com/goserg/engelserver/internal/config"
	"github.com/goserg/engelserver/internal/domain"

	"github.com/sirupsen/logrus"
	gomail "github.com/wneessen/go-mail"
)

// ErrTransport wraps every failure to hand a message to the mail server.
var ErrTransport = errors.New("mail transport failed")

type Renderer interface {
	Render(out io.Writer, name string, binding interface{}, layout ...string) error
}

type Message struct {
	To       domain.User
	Title    string
	Template string
	Data     map[string]interface{}
}

type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

type sender interface {
	DialAndSendWithContext(ctx context.Context, messages ...*gomail.Msg) error
}

type SMTPMailer struct {
	client   sender
	renderer Renderer
	from     string
	log      *logrus.Entry
}

var _ Mailer = (*SMTPMailer)(nil)

func NewSMTP(l *logrus.Logger, cfg config.Mail, renderer Renderer) (*SMTPMailer, error) {
	policy, err := tlsPolicy(cfg.TLSPolicy)
	if err != nil {
		return nil, err
	}
	opts := []gomail.Option{
		gomail.WithPort(cfg.Port),
		gomail.WithTLSPolicy(policy),
	}
	if cfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.Username),
			gomail.WithPassword(cfg.Password),
		)
	}
	client, err := gomail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, err
	}
	return &SMTPMailer{
		client:   client,
		renderer: renderer,
		from:     cfg.From,
		log:      l.WithField("from", "mail"),
	}, nil
}

func tlsPolicy(name string) (gomail.TLSPolicy, error) {
	switch name {
	case "", "opportunistic":
		return gomail.TLSOpportunistic, nil
	case "mandatory":
		return gomail.TLSMandatory, nil
	case "none":
		return gomail.NoTLS, nil
	default:
		return gomail.NoTLS, errors.New("unknown tls_policy " + name)
	}
}

func (m *SMTPMailer) Send(ctx context.Context, msg Message) error {
	body, err := renderBody(m.renderer, msg)
	if err != nil {
		return err
	}
	gm := gomail.NewMsg()
	if err := gm.From(m.from); err != nil {
		return err
	}
	if err := gm.To(msg.To.Email); err != nil {
		return err
	}
	gm.Subject(msg.Title)
	gm.SetBodyString(gomail.TypeTextHTML, body)

	if err := m.client.DialAndSendWithContext(ctx, gm); err != nil {
		return errors.Join(ErrTransport, err)
	}
	m.log.WithFields(logrus.Fields{
		"to":    msg.To.Email,
		"title": msg.Title,
	}).Debug("mail sent")
	return nil
}

func renderBody(renderer Renderer, msg Message) (string, error) {
	data := make(map[string]interface{}, len(msg.Data)+3)
	for k, v := range msg.Data {
		data[k] = v
	}
	data["Locale"] = msg.To.Settings.Language
	data["Name"] = msg.To.Name
	data["Title"] = msg.Title

	var buf bytes.Buffer
	err := renderer.Render(&buf, msg.Template, data)
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

// LogMailer renders messages and writes them to the log instead of sending.
type LogMailer struct {
	renderer Renderer
	log      *logrus.Entry
}

var _ Mailer = (*LogMailer)(nil)

func NewLog(l *logrus.Logger, renderer Renderer) *LogMailer {
	return &LogMailer{
		renderer: renderer,
		log:      l.WithField("from", "mail"),
	}
}

func (m *LogMailer) Send(_ context.Context, msg Message) error {
	body, err := renderBody(m.renderer, msg)
	if err != nil {
		return err
	}
	m.log.WithFields(logrus.Fields{
		"to":    msg.To.Email,
		"title": msg.Title,
	}).Info(body)
	return nil
}
