package port

import (
	"context"

	"github.com/nikolayk812/shopping-cart/internal/domain"
)

// CartRepository stores one cart per owner. Items keep the order they were added in.
type CartRepository interface {
	GetCart(ctx context.Context, ownerID string) (*domain.Cart, error)
	AddItem(ctx context.Context, ownerID string, product domain.Product) error
	// RemoveItem deletes the earliest stored item equal to product and reports whether one was found.
	RemoveItem(ctx context.Context, ownerID string, product domain.Product) (bool, error)
	ClearCart(ctx context.Context, ownerID string) (int64, error)
	// SaveCart replaces the stored items with the contents of cart.
	SaveCart(ctx context.Context, ownerID string, cart *domain.Cart) error
}
