package ops

import (
	"context"
	"fmt"

	"github.com/pitchside/pitchside/internal/config"
	"github.com/pitchside/pitchside/internal/mail"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

// Notifier raises operator alerts over telegram and email. Both
// channels are optional; with neither configured an alert is only
// logged, which is enough for local runs.
type Notifier struct {
	bot       *tgbotapi.BotAPI
	chatID    int64
	mailer    *mail.Mailer
	recipient string
	log       *logrus.Entry
}

func New(l *logrus.Logger, cfg config.Ops, mailer *mail.Mailer) (*Notifier, error) {
	n := &Notifier{
		mailer:    mailer,
		recipient: cfg.Recipient,
		log:       l.WithField("from", "ops"),
	}
	if cfg.TelegramEnabled {
		bot, err := tgbotapi.NewBotAPI(cfg.TelegramApiToken)
		if err != nil {
			return nil, fmt.Errorf("env TELEGRAM_APITOKEN: %w", err)
		}
		if _, err := bot.GetMe(); err != nil {
			return nil, err
		}
		n.bot = bot
		n.chatID = cfg.TelegramChatID
	}
	return n, nil
}

// Alert fans the message out to every configured channel. Channel
// errors are logged, never returned: an ops alert must not take down
// the path that raised it.
func (n *Notifier) Alert(ctx context.Context, subject, detail string) {
	n.log.WithField("subject", subject).Error(detail)
	if n.bot != nil {
		msg := tgbotapi.NewMessage(n.chatID, subject+"\n\n"+detail)
		if _, err := n.bot.Send(msg); err != nil {
			n.log.WithError(err).Error("telegram alert failed")
		}
	}
	if n.mailer != nil && n.recipient != "" {
		if err := n.mailer.Send(ctx, "ops."+subject, n.recipient, "operations", subject, detail); err != nil {
			n.log.WithError(err).Error("email alert failed")
		}
	}
}
