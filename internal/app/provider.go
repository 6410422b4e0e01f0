package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"go.uber.org/zap"

	"github.com/ferdiebergado/kubodir/internal/config"
	"github.com/ferdiebergado/kubodir/internal/platform/cache"
	"github.com/ferdiebergado/kubodir/internal/platform/db"
	"github.com/ferdiebergado/kubodir/internal/platform/event"
	"github.com/ferdiebergado/kubodir/internal/platform/hash"
	"github.com/ferdiebergado/kubodir/internal/platform/jwt"
	"github.com/ferdiebergado/kubodir/internal/platform/router"
	"github.com/ferdiebergado/kubodir/internal/platform/validation"
	"github.com/ferdiebergado/kubodir/internal/user"
	"github.com/ferdiebergado/kubodir/internal/user/memstore"
)

const (
	driverPostgres = "postgres"
	driverMemory   = "memory"
)

type Provider struct {
	// DB is nil with the memory driver.
	DB        *sql.DB
	Repo      user.Repository
	TxMgr     db.TxManager
	Hasher    hash.Hasher
	Validator validation.Validator
	Publisher event.Publisher
	Router    router.Router
	Logger    *zap.Logger

	// Cache and Verifier are nil when the feature is disabled.
	Cache    cache.Cache
	Verifier jwt.Verifier

	closers []func() error
}

// Close releases the connections opened by newProvider in reverse order.
func (p *Provider) Close() error {
	var errs []error
	for i := len(p.closers) - 1; i >= 0; i-- {
		if err := p.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func newProvider(ctx context.Context, cfg *config.Config, logger *zap.Logger) (_ *Provider, err error) {
	p := &Provider{
		Hasher:    hash.NewArgon2Hasher(&cfg.Argon2, cfg.Key),
		Validator: validation.NewGoPlaygroundValidator(),
		Router:    router.NewGoexpressRouter(),
		Logger:    logger,
		Publisher: event.NopPublisher{},
	}

	defer func() {
		if err != nil {
			_ = p.Close()
		}
	}()

	switch cfg.DB.Driver {
	case driverPostgres:
		conn, err := db.Connect(ctx, &cfg.DB)
		if err != nil {
			return nil, err
		}
		p.closers = append(p.closers, conn.Close)

		if cfg.DB.Migrate {
			if err := db.Migrate(conn); err != nil {
				return nil, err
			}
		}

		p.DB = conn
		p.Repo = user.NewSQLRepository(conn)
		p.TxMgr = db.NewSQLTxManager(conn)
	case driverMemory:
		slog.Warn("Using the in-memory user store. Data is lost on shutdown.")
		p.Repo = memstore.New()
		p.TxMgr = db.NopTxManager{}
	default:
		return nil, fmt.Errorf("unsupported db driver %q", cfg.DB.Driver)
	}

	if cfg.Cache.Enabled() {
		client, err := cache.NewRedisClient(ctx, &cfg.Cache)
		if err != nil {
			return nil, err
		}
		p.closers = append(p.closers, client.Close)

		p.Cache = cache.NewRedisCache(client)
		p.Repo = user.NewCachedRepository(p.Repo, p.Cache, cfg.Cache.TTL.Duration)
	}

	if cfg.Events.Enabled() {
		pub := event.NewKafkaPublisher(cfg.Events.Brokers, cfg.Events.Topic)
		p.closers = append(p.closers, pub.Close)
		p.Publisher = pub
	}

	if cfg.Auth.Enabled {
		if cfg.Key == "" {
			return nil, errors.New("auth is enabled but KEY is not set")
		}
		p.Verifier = jwt.NewGolangJWTVerifier(cfg.Key, cfg.Auth.Issuer)
	}

	return p, nil
}
