package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/nikolayk812/shopping-cart/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func parseProduct(name, price string) (domain.Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Product{}, fmt.Errorf("name is empty")
	}

	amount, err := decimal.NewFromString(price)
	if err != nil {
		return domain.Product{}, fmt.Errorf("price[%s] is not valid: %w", price, err)
	}

	f := amount.InexactFloat64()
	if !domain.IsFinite(f) {
		return domain.Product{}, fmt.Errorf("price[%s] is not valid: out of range", price)
	}

	return domain.Product{Name: name, Price: f}, nil
}

func printCart(w io.Writer, cart *domain.Cart, cur currency.Unit) error {
	p := message.NewPrinter(language.English)

	for i, item := range cart.Items() {
		if _, err := p.Fprintf(w, "%d. %s %v\n", i+1, item.Name, cur.Amount(item.Price)); err != nil {
			return fmt.Errorf("p.Fprintf: %w", err)
		}
	}

	// a non-finite price has no decimal total, fall back to the float sum
	total := cur.Amount(cart.TotalPrice())
	if money, ok := cart.Total(cur); ok {
		total = money.Currency.Amount(money.Amount.InexactFloat64())
	}

	if _, err := p.Fprintf(w, "items: %d, total: %v\n", cart.ItemCount(), total); err != nil {
		return fmt.Errorf("p.Fprintf: %w", err)
	}

	return nil
}
