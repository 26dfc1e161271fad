package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	authservice "github.com/goserg/engelserver/auth/service"
	authsqlite "github.com/goserg/engelserver/auth/storage/sqlite"
	"github.com/goserg/engelserver/internal/audit"
	"github.com/goserg/engelserver/internal/cache/mem"
	"github.com/goserg/engelserver/internal/config"
	"github.com/goserg/engelserver/internal/domain"
	"github.com/goserg/engelserver/internal/logger"
	"github.com/goserg/engelserver/internal/mail"
	"github.com/goserg/engelserver/internal/membership"
	"github.com/goserg/engelserver/internal/render"
	"github.com/goserg/engelserver/internal/settings"
	"github.com/goserg/engelserver/internal/storage/sqlite"
	"github.com/goserg/engelserver/internal/tgbot"
	"github.com/goserg/engelserver/internal/web"

	"github.com/sirupsen/logrus"
)

func main() {
	if err := run(); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}

func run() error {
	var serverConfigPath string
	flag.StringVar(&serverConfigPath, "server-config", "configs/server.toml", "path to server configs")
	flag.Parse()

	cfg, err := config.New(serverConfigPath)
	if err != nil {
		return err
	}
	l := logger.New(cfg.Server.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := sqlite.Open(cfg.DB.SqliteFile)
	if err != nil {
		return err
	}
	defer db.Close()
	store := sqlite.New(l, db)

	authService, err := authservice.New(ctx, l, cfg, authsqlite.New(l, db), store)
	if err != nil {
		return err
	}

	engine, err := render.New(cfg.Server.Debug)
	if err != nil {
		return err
	}
	mailer, err := newMailer(l, cfg.Mail, engine)
	if err != nil {
		return err
	}
	var mirrors []audit.Publisher
	if cfg.TgBot.Enabled {
		bot, err := tgbot.New(cfg.TgBot)
		if err != nil {
			return err
		}
		mirrors = append(mirrors, bot)
	}
	auditLog := audit.New(l, store, mirrors...)

	angelTypes := mem.New(store)
	membershipService := membership.New(l, angelTypes, store, store, authService, mailer, auditLog)
	err = membershipService.EnsureAngelTypes(ctx, seedAngelTypes(cfg.AngelTypes))
	if err != nil {
		return err
	}
	settingsService := settings.New(l, cfg, store, authService)

	server := web.New(l, cfg, engine, authService, membershipService, settingsService)
	errs := make(chan error, 1)
	go func() {
		errs <- server.Serve()
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
		l.Info("shutting down")
		return server.Shutdown()
	}
}

func newMailer(l *logrus.Logger, cfg config.Mail, renderer mail.Renderer) (mail.Mailer, error) {
	if !cfg.Enabled {
		return mail.NewLog(l, renderer), nil
	}
	return mail.NewSMTP(l, cfg, renderer)
}

func seedAngelTypes(seeds []config.AngelType) []domain.AngelType {
	angelTypes := make([]domain.AngelType, 0, len(seeds))
	for _, seed := range seeds {
		angelTypes = append(angelTypes, domain.AngelType{
			Name:        seed.Name,
			Description: seed.Description,
			Restricted:  seed.Restricted,
		})
	}
	return angelTypes
}
