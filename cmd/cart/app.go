package main

import (
	"context"
	"fmt"
	"io"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

const (
	flagDSN      = "dsn"
	flagOwner    = "owner"
	flagCurrency = "currency"
	flagLogLevel = "log-level"
	flagName     = "name"
	flagPrice    = "price"
)

func newApp(out io.Writer) *cli.Command {
	productFlags := []cli.Flag{
		&cli.StringFlag{Name: flagName, Usage: "product name", Required: true},
		&cli.StringFlag{Name: flagPrice, Usage: "product price, e.g. 7.50", Required: true},
	}

	return &cli.Command{
		Name:   "cart",
		Usage:  "manage a persisted shopping cart",
		Writer: out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     flagDSN,
				Usage:    "PostgreSQL connection string",
				Sources:  cli.EnvVars("CART_DSN"),
				Required: true,
			},
			&cli.StringFlag{
				Name:     flagOwner,
				Usage:    "cart owner ID",
				Sources:  cli.EnvVars("CART_OWNER"),
				Required: true,
			},
			&cli.StringFlag{
				Name:    flagCurrency,
				Usage:   "ISO 4217 code used to display totals",
				Value:   "EUR",
				Sources: cli.EnvVars("CART_CURRENCY"),
			},
			&cli.StringFlag{
				Name:    flagLogLevel,
				Value:   "info",
				Sources: cli.EnvVars("CART_LOG_LEVEL"),
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "add",
				Usage: "append a product to the cart",
				Flags: productFlags,
				Action: withSession(func(ctx context.Context, cmd *cli.Command, s *session) error {
					product, err := parseProduct(cmd.String(flagName), cmd.String(flagPrice))
					if err != nil {
						return fmt.Errorf("parseProduct: %w", err)
					}

					if err := s.repo.AddItem(ctx, s.ownerID, product); err != nil {
						return fmt.Errorf("repo.AddItem: %w", err)
					}

					s.logger.Info("product added", zap.String("product", product.Name), zap.Float64("price", product.Price))
					return nil
				}),
			},
			{
				Name:  "remove",
				Usage: "remove the first matching product from the cart",
				Flags: productFlags,
				Action: withSession(func(ctx context.Context, cmd *cli.Command, s *session) error {
					product, err := parseProduct(cmd.String(flagName), cmd.String(flagPrice))
					if err != nil {
						return fmt.Errorf("parseProduct: %w", err)
					}

					removed, err := s.repo.RemoveItem(ctx, s.ownerID, product)
					if err != nil {
						return fmt.Errorf("repo.RemoveItem: %w", err)
					}

					s.logger.Info("product removed",
						zap.String("product", product.Name),
						zap.Float64("price", product.Price),
						zap.Bool("found", removed))
					return nil
				}),
			},
			{
				Name:  "clear",
				Usage: "remove every product from the cart",
				Action: withSession(func(ctx context.Context, cmd *cli.Command, s *session) error {
					cleared, err := s.repo.ClearCart(ctx, s.ownerID)
					if err != nil {
						return fmt.Errorf("repo.ClearCart: %w", err)
					}

					s.logger.Info("cart cleared", zap.Int64("item_count", cleared))
					return nil
				}),
			},
			{
				Name:  "show",
				Usage: "print the cart contents and total",
				Action: withSession(func(ctx context.Context, cmd *cli.Command, s *session) error {
					cart, err := s.repo.GetCart(ctx, s.ownerID)
					if err != nil {
						return fmt.Errorf("repo.GetCart: %w", err)
					}

					s.logger.Debug("cart loaded", zap.Int("item_count", cart.ItemCount()))
					return printCart(cmd.Root().Writer, cart, s.currency)
				}),
			},
		},
	}
}
