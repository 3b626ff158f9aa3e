package mail

import (
	"context"
	"fmt"

	mailjet "github.com/mailjet/mailjet-apiv3-go"
	"github.com/sirupsen/logrus"
)

// TimeStore throttles repeat sends. With a store configured, a message
// is sent only when the store reports the key as sendable, and the
// store is told about every completed send.
type TimeStore interface {
	Sendable(ctx context.Context, key string) (bool, error)
	Sent(ctx context.Context, key string) error
}

// Mailer sends email through the Mailjet API. Without secrets it logs
// and drops messages, which keeps local and test runs offline.
type Mailer struct {
	sender     string
	publicKey  string
	privateKey string
	store      TimeStore
	log        *logrus.Entry
}

func New(l *logrus.Logger, options ...Option) (*Mailer, error) {
	m := &Mailer{
		log: l.WithField("from", "mailer"),
	}
	for i, opt := range options {
		if err := opt(m); err != nil {
			return nil, fmt.Errorf("could not apply option #%d: %w", i, err)
		}
	}
	if m.sender == "" {
		return nil, fmt.Errorf("no sender address configured")
	}
	return m, nil
}

// Send delivers one message to one recipient. key identifies the
// (kind, recipient) pair for throttling; an empty key disables the
// throttle for this send.
func (m *Mailer) Send(ctx context.Context, key, to, toName, subject, body string) error {
	if m.store != nil && key != "" {
		sendable, err := m.store.Sendable(ctx, key)
		if err != nil {
			m.log.WithError(err).Warn("throttle store lookup failed")
		}
		if !sendable {
			m.log.WithField("key", key).Info("too soon to send again, skipping")
			return nil
		}
	}

	if m.publicKey != "" && m.privateKey != "" {
		clt := mailjet.NewMailjetClient(m.publicKey, m.privateKey)
		msgs := mailjet.MessagesV31{Info: []mailjet.InfoMessagesV31{{
			From:     &mailjet.RecipientV31{Email: m.sender},
			To:       &mailjet.RecipientsV31{mailjet.RecipientV31{Email: to, Name: toName}},
			Subject:  subject,
			TextPart: body,
		}}}
		if _, err := clt.SendMailV31(&msgs); err != nil {
			return fmt.Errorf("could not send mail: %w", err)
		}
	} else {
		m.log.WithField("subject", subject).Info("mail transport disabled, dropping message")
	}

	if m.store != nil && key != "" {
		if err := m.store.Sent(ctx, key); err != nil {
			m.log.WithError(err).Warn("throttle store update failed")
		}
	}
	return nil
}
