package main

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/shopping-cart/internal/port"
	"github.com/nikolayk812/shopping-cart/internal/repository"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"golang.org/x/text/currency"
)

// session holds what every subcommand needs, built from the root flags.
type session struct {
	logger   *zap.Logger
	pool     *pgxpool.Pool
	repo     port.CartRepository
	ownerID  string
	currency currency.Unit
}

func openSession(ctx context.Context, cmd *cli.Command) (*session, error) {
	logger, err := newLogger(cmd.String(flagLogLevel))
	if err != nil {
		return nil, fmt.Errorf("newLogger: %w", err)
	}

	cur, err := currency.ParseISO(cmd.String(flagCurrency))
	if err != nil {
		return nil, fmt.Errorf("currency[%s] is not valid: %w", cmd.String(flagCurrency), err)
	}

	pool, err := pgxpool.New(ctx, cmd.String(flagDSN))
	if err != nil {
		return nil, fmt.Errorf("pgxpool.New: %w", err)
	}

	ownerID := cmd.String(flagOwner)

	return &session{
		logger:   logger.With(zap.String("command", cmd.Name), zap.String("owner_id", ownerID)),
		pool:     pool,
		repo:     repository.NewCart(pool),
		ownerID:  ownerID,
		currency: cur,
	}, nil
}

func (s *session) Close() {
	s.pool.Close()
	_ = s.logger.Sync()
}

func withSession(fn func(ctx context.Context, cmd *cli.Command, s *session) error) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		s, err := openSession(ctx, cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		if err := fn(ctx, cmd, s); err != nil {
			s.logger.Error("command failed", zap.Error(err))
			return err
		}

		return nil
	}
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("zap.ParseAtomicLevel: %w", err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = lvl

	return cfg.Build()
}
