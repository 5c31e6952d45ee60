// @title                      Gigs Platform API
// @version                    1.0
// @description                Onboarding, moderation and gig marketplace backend.
// @BasePath                   /
// @securityDefinitions.apikey BearerAuth
// @in                         header
// @name                       Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/gigstm/gigs-platform/internal/api"
	"github.com/gigstm/gigs-platform/internal/api/handler"
	"github.com/gigstm/gigs-platform/internal/core/ports"
	"github.com/gigstm/gigs-platform/internal/core/service"
	mongodb "github.com/gigstm/gigs-platform/internal/infrastructure/db/mongo"
	redisdb "github.com/gigstm/gigs-platform/internal/infrastructure/db/redis"
	"github.com/gigstm/gigs-platform/internal/infrastructure/mail"
	"github.com/gigstm/gigs-platform/internal/infrastructure/queue"
	"github.com/gigstm/gigs-platform/internal/infrastructure/storage"
	"github.com/gigstm/gigs-platform/internal/pkg/config"
	"github.com/gigstm/gigs-platform/pkg/logger"
)

const shutdownTimeout = 15 * time.Second

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.LogPretty,
		Service: "gigs-api",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
	log.Info().Msg("server stopped")
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:         cfg.Mongo.URI,
		Database:    cfg.Mongo.Database,
		MaxPoolSize: cfg.Mongo.MaxPoolSize,
		Timeout:     cfg.Mongo.Timeout,
	})
	if err != nil {
		return err
	}
	defer func() {
		dctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := mongoClient.Disconnect(dctx); err != nil {
			log.Error().Err(err).Msg("mongo disconnect")
		}
	}()
	log.Info().Str("database", cfg.Mongo.Database).Msg("connected to mongo")

	redisClient, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return err
	}
	defer redisClient.Close()
	log.Info().Str("addr", cfg.Redis.Addr).Msg("connected to redis")

	accounts := mongodb.NewAccountRepository(db)
	onboardingRepo := mongodb.NewOnboardingRepository(db)
	combined := mongodb.NewCombinedRepository(db)
	gigs := mongodb.NewGigRepository(db)
	applications := mongodb.NewApplicationRepository(db)
	if err := mongodb.EnsureIndexes(ctx, accounts, onboardingRepo, gigs, applications); err != nil {
		return err
	}

	blobs, err := newBlobStore(cfg, db)
	if err != nil {
		return err
	}

	dispatcher := queue.NewDispatcher(cfg.SMTP.Workers, mail.NewSMTPSender(mail.Config{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
	}), log)
	dispatcher.Start(context.WithoutCancel(ctx))
	defer dispatcher.Stop()

	throttle := redisdb.NewOTPThrottle(redisClient, redisdb.ThrottleConfig{
		Cooldown: cfg.OTP.Cooldown,
		Window:   cfg.OTP.Window,
		MaxSends: cfg.OTP.MaxSends,
	})

	authSvc := service.NewAuthService(accounts, dispatcher, throttle, service.AuthConfig{
		JWTSecret: cfg.JWT.Secret,
		TokenTTL:  cfg.JWT.TokenTTL,
		OTPTTL:    cfg.OTP.TTL,
		ResetTTL:  cfg.OTP.ResetTTL,
	}, log.With().Str("component", "auth").Logger())
	onboardingSvc := service.NewOnboardingService(onboardingRepo, accounts, combined, blobs, log.With().Str("component", "onboarding").Logger())
	adminSvc := service.NewAdminService(accounts, combined, onboardingRepo, applications, log.With().Str("component", "admin").Logger())
	gigSvc := service.NewGigService(gigs, applications, onboardingSvc, log.With().Str("component", "gigs").Logger())

	if cfg.Admin.Email != "" {
		created, err := authSvc.SeedAdmin(ctx, cfg.Admin.Name, cfg.Admin.Email, cfg.Admin.Password)
		if err != nil {
			return err
		}
		if created {
			log.Info().Str("email", cfg.Admin.Email).Msg("seeded administrator")
		}
	}

	e := api.NewRouter(api.Deps{
		Auth:       authSvc,
		Onboarding: onboardingSvc,
		Admin:      adminSvc,
		Gigs:       gigSvc,
		Blobs:      blobs,
		Checks: map[string]handler.Check{
			"mongo": func(ctx context.Context) error { return mongodb.Ping(ctx, mongoClient) },
			"redis": func(ctx context.Context) error { return redisdb.Ping(ctx, redisClient) },
		},
		JWTSecret: cfg.JWT.Secret,
		ResetURL:  cfg.ResetURL,
		Logger:    log,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           e,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Str("env", cfg.Env).Msg("starting http server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(sctx)
}

func newBlobStore(cfg *config.Config, db *mongo.Database) (ports.BlobStore, error) {
	scfg := storage.Config{
		Backend:  cfg.Storage.Backend,
		BasePath: cfg.Storage.BasePath,
		BaseURL:  cfg.PublicURL,
		Bucket:   cfg.Storage.Bucket,
	}
	if scfg.Backend == "gridfs" {
		return storage.NewGridFSStore(db, scfg)
	}
	return storage.NewLocalStore(scfg)
}
