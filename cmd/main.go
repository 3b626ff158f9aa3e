package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	authservice "github.com/pitchside/pitchside/auth/service"
	authsqlite "github.com/pitchside/pitchside/auth/storage/sqlite"
	"github.com/pitchside/pitchside/internal/alerts"
	"github.com/pitchside/pitchside/internal/config"
	"github.com/pitchside/pitchside/internal/hub"
	"github.com/pitchside/pitchside/internal/logger"
	"github.com/pitchside/pitchside/internal/mail"
	"github.com/pitchside/pitchside/internal/ops"
	"github.com/pitchside/pitchside/internal/pii"
	"github.com/pitchside/pitchside/internal/scheduler"
	"github.com/pitchside/pitchside/internal/storage/sqlite"
	"github.com/pitchside/pitchside/internal/web"

	_ "github.com/mattn/go-sqlite3"
)

func main() {
	if err := run(); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "configs/server.toml", "path to the server config")
	flag.Parse()

	cfg, err := config.New(*configPath)
	if err != nil {
		return err
	}
	log := logger.New(cfg.Server.Debug)

	store, err := sqlite.New(log, cfg.Server)
	if err != nil {
		return err
	}
	defer store.DB().Close()

	codec, err := pii.NewCodec(cfg.Crypto.Key)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	auth, err := authservice.New(ctx, cfg.Auth, authsqlite.New(log, store.DB()))
	if err != nil {
		return err
	}

	mailOptions := []mail.Option{
		mail.WithSender(cfg.Mail.Sender),
		mail.WithStore(mail.NewMemoryStore(time.Hour)),
	}
	if cfg.Mail.Enabled {
		mailOptions = append(mailOptions, mail.WithSecrets(cfg.Mail.PublicKey, cfg.Mail.PrivateKey))
	}
	mailer, err := mail.New(log, mailOptions...)
	if err != nil {
		return err
	}

	notifier, err := ops.New(log, cfg.Ops, mailer)
	if err != nil {
		return err
	}

	h := hub.New(log, cfg.Hub)

	pipeline := alerts.NewPipeline(
		log,
		store, store, store, store,
		h,
		mailer,
		alerts.TextRenderer{},
		codec,
		cfg.Scheduler.DeliveryConcurrency,
		config.Duration(cfg.Scheduler.DeliveryTimeout, 10*time.Second),
	)
	matcher := alerts.NewMatcher(log, store)
	alertService := alerts.NewService(log, matcher, pipeline)

	sched := scheduler.New(log, notifier)
	jobs := scheduler.NewJobs(log, store, store, store, store, pipeline)
	if err := jobs.Register(sched, cfg.Scheduler.DigestSpec, cfg.Scheduler.CleanupSpec, cfg.Scheduler.ReengagementSpec); err != nil {
		return err
	}
	sched.Start()

	server := web.New(log, cfg.Server, web.Deps{
		Auth:     auth,
		Hub:      h,
		Alerts:   alertService,
		Codec:    codec,
		Users:    store,
		Prefs:    store,
		Postings: store,
		Activity: store,
		Jobs:     sched,
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Serve()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	if err := server.Shutdown(); err != nil {
		log.WithError(err).Error("web shutdown failed")
	}
	<-sched.Stop().Done()
	h.Close()
	return nil
}
