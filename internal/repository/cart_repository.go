package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/shopping-cart/internal/db"
	"github.com/nikolayk812/shopping-cart/internal/domain"
	"github.com/nikolayk812/shopping-cart/internal/port"
	"github.com/shopspring/decimal"
)

type cartRepository struct {
	q    *db.Queries
	pool *pgxpool.Pool
}

func NewCart(pool *pgxpool.Pool) port.CartRepository {
	return &cartRepository{
		q:    db.New(pool),
		pool: pool,
	}
}

func NewCartWithTx(tx pgx.Tx) port.CartRepository {
	return &cartRepository{
		q:    db.New(tx),
		pool: nil, // use provided transaction instead
	}
}

func (r *cartRepository) GetCart(ctx context.Context, ownerID string) (*domain.Cart, error) {
	if ownerID == "" {
		return nil, fmt.Errorf("ownerID is empty")
	}

	rows, err := r.q.GetCart(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("q.GetCart: %w", err)
	}

	items, err := mapGetCartRowsToDomain(rows)
	if err != nil {
		return nil, fmt.Errorf("mapGetCartRowsToDomain: %w", err)
	}

	return domain.NewCart(items...), nil
}

func (r *cartRepository) AddItem(ctx context.Context, ownerID string, product domain.Product) error {
	if ownerID == "" {
		return fmt.Errorf("ownerID is empty")
	}

	if _, err := priceAmount(product.Price); err != nil {
		return err
	}

	if err := addItem(ctx, r.q, ownerID, product); err != nil {
		return fmt.Errorf("addItem: %w", err)
	}

	return nil
}

func (r *cartRepository) RemoveItem(ctx context.Context, ownerID string, product domain.Product) (bool, error) {
	if ownerID == "" {
		return false, fmt.Errorf("ownerID is empty")
	}

	amount, err := priceAmount(product.Price)
	if err != nil {
		return false, err
	}

	rowsAffected, err := r.q.DeleteFirstItem(ctx, db.DeleteFirstItemParams{
		OwnerID:     ownerID,
		Name:        product.Name,
		PriceAmount: amount,
	})
	if err != nil {
		return false, fmt.Errorf("q.DeleteFirstItem: %w", err)
	}

	return rowsAffected > 0, nil
}

func (r *cartRepository) ClearCart(ctx context.Context, ownerID string) (int64, error) {
	if ownerID == "" {
		return 0, fmt.Errorf("ownerID is empty")
	}

	rowsAffected, err := r.q.ClearCart(ctx, ownerID)
	if err != nil {
		return 0, fmt.Errorf("q.ClearCart: %w", err)
	}

	return rowsAffected, nil
}

func (r *cartRepository) SaveCart(ctx context.Context, ownerID string, cart *domain.Cart) error {
	if ownerID == "" {
		return fmt.Errorf("ownerID is empty")
	}
	if cart == nil {
		return fmt.Errorf("cart is nil")
	}

	items := cart.Items()
	for _, product := range items {
		if _, err := priceAmount(product.Price); err != nil {
			return err
		}
	}

	_, err := withTx(ctx, r.pool, r.q, func(q *db.Queries) (struct{}, error) {
		if _, err := q.ClearCart(ctx, ownerID); err != nil {
			return struct{}{}, fmt.Errorf("q.ClearCart: %w", err)
		}

		for _, product := range items {
			if err := addItem(ctx, q, ownerID, product); err != nil {
				return struct{}{}, fmt.Errorf("addItem: %w", err)
			}
		}

		return struct{}{}, nil
	})
	if err != nil {
		return fmt.Errorf("withTx: %w", err)
	}

	return nil
}

func addItem(ctx context.Context, q *db.Queries, ownerID string, product domain.Product) error {
	amount, err := priceAmount(product.Price)
	if err != nil {
		return err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("uuid.NewV7: %w", err)
	}

	err = q.AddItem(ctx, db.AddItemParams{
		ID:          id,
		OwnerID:     ownerID,
		Name:        product.Name,
		PriceAmount: amount,
	})
	if err != nil {
		return fmt.Errorf("q.AddItem: %w", err)
	}

	return nil
}

func priceAmount(price float64) (decimal.Decimal, error) {
	if !domain.IsFinite(price) {
		return decimal.Decimal{}, fmt.Errorf("price is not finite")
	}

	return decimal.NewFromFloat(price), nil
}

// mapGetCartRowToDomain accepts only amounts that convert to a float64 and
// back unchanged, which holds for everything written through priceAmount.
func mapGetCartRowToDomain(row db.GetCartRow) (domain.Product, error) {
	price := row.PriceAmount.InexactFloat64()
	if !domain.IsFinite(price) || !decimal.NewFromFloat(price).Equal(row.PriceAmount) {
		return domain.Product{}, fmt.Errorf("price_amount[%s] is not a float64", row.PriceAmount)
	}

	return domain.Product{
		Name:  row.Name,
		Price: price,
	}, nil
}

func mapGetCartRowsToDomain(rows []db.GetCartRow) ([]domain.Product, error) {
	var items []domain.Product

	for _, row := range rows {
		item, err := mapGetCartRowToDomain(row)
		if err != nil {
			return nil, fmt.Errorf("mapGetCartRowToDomain: %w", err)
		}

		items = append(items, item)
	}

	return items, nil
}
