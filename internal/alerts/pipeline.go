package alerts

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/pitchside/pitchside/internal/domain"
	"github.com/pitchside/pitchside/internal/storage"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// PushSender pushes a notification to a connected identity. It reports
// whether at least one live connection accepted the message.
type PushSender interface {
	SendToIdentity(userID uuid.UUID, n domain.Notification) bool
}

// MailSender sends one email. key feeds the sender's throttle store.
type MailSender interface {
	Send(ctx context.Context, key, to, toName, subject, body string) error
}

// Decrypter recovers a stored email address from its ciphertext.
type Decrypter interface {
	Decrypt(ciphertext string) (string, error)
}

// DeliveryResult records which channels reached the recipient.
type DeliveryResult struct {
	Pushed bool
	Mailed bool
}

// Pipeline fans a notification out to one recipient over both
// channels and records the attempt. Channel failures degrade, they do
// not abort: a recipient with no live socket still gets mail, a mail
// failure still leaves the push delivered and the attempt logged.
type Pipeline struct {
	users  storage.UserStorage
	prefs  storage.PreferenceStorage
	logs   storage.AlertLogStorage
	queue  storage.EmailQueueStorage
	push   PushSender
	mail   MailSender
	render Renderer
	codec  Decrypter

	concurrency int
	timeout     time.Duration
	log         *logrus.Entry
}

func NewPipeline(
	l *logrus.Logger,
	users storage.UserStorage,
	prefs storage.PreferenceStorage,
	logs storage.AlertLogStorage,
	queue storage.EmailQueueStorage,
	push PushSender,
	mail MailSender,
	render Renderer,
	codec Decrypter,
	concurrency int,
	timeout time.Duration,
) *Pipeline {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Pipeline{
		users:       users,
		prefs:       prefs,
		logs:        logs,
		queue:       queue,
		push:        push,
		mail:        mail,
		render:      render,
		codec:       codec,
		concurrency: concurrency,
		timeout:     timeout,
		log:         l.WithField("from", "pipeline"),
	}
}

// Deliver runs the full channel sequence for one recipient: push
// first, then email if the kind's toggle allows it, then exactly one
// alert log row regardless of what the channels did.
func (p *Pipeline) Deliver(ctx context.Context, recipientID uuid.UUID, n domain.Notification) (DeliveryResult, error) {
	var res DeliveryResult
	if !n.Valid() {
		return res, domain.ErrInvalidNotification
	}

	user, err := p.users.GetUser(ctx, recipientID)
	if err != nil {
		return res, fmt.Errorf("load recipient: %w", err)
	}
	pref, found, err := p.prefs.Get(ctx, recipientID)
	if err != nil {
		return res, fmt.Errorf("load preference: %w", err)
	}
	if !found {
		pref = domain.DefaultPreference(recipientID)
	}

	res.Pushed = p.push.SendToIdentity(recipientID, n)

	if pref.EmailNotifications && pref.Allows(n.Kind) {
		res.Mailed = p.sendMail(ctx, user, n)
	}

	if err := p.logs.Append(ctx, domain.AlertLog{
		ID:         uuid.New(),
		UserID:     recipientID,
		AlertType:  n.Kind,
		TargetID:   n.TargetID,
		TargetType: n.TargetType,
		SentAt:     time.Now(),
	}); err != nil {
		return res, fmt.Errorf("append alert log: %w", err)
	}
	return res, nil
}

// sendMail queues, sends and marks one outbound email. The queue row
// is written before the send so a crash mid-send leaves an unprocessed
// record rather than silence.
func (p *Pipeline) sendMail(ctx context.Context, user domain.User, n domain.Notification) bool {
	if user.EmailEnc == "" {
		return false
	}
	email, err := p.codec.Decrypt(user.EmailEnc)
	if err != nil {
		p.log.WithError(err).WithField("user", user.ID).Error("cannot decrypt recipient email")
		return false
	}
	if email == "" {
		return false
	}
	subject, body, err := p.render.Render(n)
	if err != nil {
		p.log.WithError(err).Error("cannot render email")
		return false
	}
	queueID := uuid.New()
	if err := p.queue.Enqueue(ctx, queueID, user.ID, subject); err != nil {
		p.log.WithError(err).WithField("user", user.ID).Error("cannot enqueue email")
		return false
	}
	key := string(n.Kind) + "." + user.ID.String()
	if err := p.mail.Send(ctx, key, email, user.Name, subject, body); err != nil {
		p.log.WithError(err).WithField("user", user.ID).Error("cannot send email")
		return false
	}
	if err := p.queue.MarkProcessed(ctx, queueID); err != nil {
		p.log.WithError(err).WithField("queue_id", queueID).Error("cannot mark email processed")
	}
	return true
}

// DeliverAll fans Deliver out over the recipient set with bounded
// concurrency and a per-recipient deadline. One recipient failing, or
// panicking, never stops the rest; the return value counts recipients
// delivered without error.
func (p *Pipeline) DeliverAll(ctx context.Context, recipients []uuid.UUID, n domain.Notification) (int, error) {
	if !n.Valid() {
		return 0, domain.ErrInvalidNotification
	}
	var delivered atomic.Int64
	var g errgroup.Group
	g.SetLimit(p.concurrency)
	for _, id := range recipients {
		id := id
		g.Go(func() error {
			defer func() {
				if r := recover(); r != nil {
					p.log.WithField("user", id).Errorf("delivery panic: %v", r)
				}
			}()
			dctx, cancel := context.WithTimeout(ctx, p.timeout)
			defer cancel()
			if _, err := p.Deliver(dctx, id, n); err != nil {
				p.log.WithError(err).WithField("user", id).Error("delivery failed")
				return nil
			}
			delivered.Add(1)
			return nil
		})
	}
	_ = g.Wait()
	return int(delivered.Load()), nil
}
