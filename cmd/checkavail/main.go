package main

import (
	"context"
	"net/http"
	"net/http/cookiejar"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"bookings/internal/checker"
	"bookings/internal/config"
	"bookings/internal/domain"
	"bookings/internal/notify"
	"bookings/internal/pkg/logger"
	"bookings/internal/ui"
)

func main() {
	boot := logger.New(false)
	cfg, err := config.LoadCheckAvail(os.Args[1:])
	if err != nil {
		boot.Fatal("load config", zap.Error(err))
	}
	_ = boot.Sync()

	log := logger.New(!cfg.Debug)
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	jar, err := cookiejar.New(nil)
	if err != nil {
		log.Fatal("cookie jar", zap.Error(err))
	}
	client := checker.NewClient(cfg.BaseURL, &http.Client{Jar: jar})

	token := cfg.CSRFToken
	if token == "" {
		token, err = client.FetchCSRFToken(ctx)
		if err != nil {
			log.Fatal("fetch csrf token", zap.String("base_url", cfg.BaseURL), zap.Error(err))
		}
	}

	presenter := notify.NewConsolePresenter(os.Stdin, os.Stdout)
	notifier := notify.New(presenter, notify.WithLogger(log))

	c, err := checker.New(checker.Config{
		Notifier:  notifier,
		Client:    client,
		RoomID:    domain.RoomID(cfg.RoomID),
		CSRFToken: token,
		Logger:    log,
	})
	if err != nil {
		log.Fatal("create checker", zap.Error(err))
	}

	notifier.Toast(ctx, notify.ToastOptions{Msg: "Connected to " + cfg.BaseURL, Icon: notify.IconInfo})

	trigger := ui.NewButton("check-availability-button")
	c.AttachTrigger(trigger)
	trigger.Click(ctx)
}
