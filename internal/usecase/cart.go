package usecase

import (
	"context"
	"fmt"

	"github.com/LeonardBuda/forever-zama/internal/catalog"
	domain "github.com/LeonardBuda/forever-zama/internal/entity"
)

// Cart implements the shopping-cart operations over the catalog and the
// cart store. There is a single shared cart for the whole process; see
// Checkout for how that interacts with order placement.
type Cart struct {
	catalog *catalog.Catalog
	repo    CartRepo
}

func NewCart(cat *catalog.Catalog, repo CartRepo) *Cart {
	return &Cart{catalog: cat, repo: repo}
}

// Add appends a new line for the named product. Repeated adds of the same
// product produce separate lines; nothing is merged. Returns a
// confirmation message for the popup.
func (c *Cart) Add(ctx context.Context, name string, quantity int) (string, error) {
	p, ok := c.catalog.Find(name)
	if !ok {
		return "", ErrProductNotFound
	}
	line, err := domain.NewCartLine(p, quantity)
	if err != nil {
		return "", err
	}
	if err := c.repo.Add(ctx, line); err != nil {
		return "", storeErr("add", err)
	}
	return fmt.Sprintf("Added %d x %s to cart! 🛒", quantity, name), nil
}

// Remove deletes all lines matching name. Removing one unit among several
// is not supported.
func (c *Cart) Remove(ctx context.Context, name string) (string, error) {
	if name == "" {
		return "", invalid("Item name is required 🚫")
	}
	n, err := c.repo.RemoveByName(ctx, name)
	if err != nil {
		return "", storeErr("remove", err)
	}
	if n == 0 {
		return "", ErrLineNotFound
	}
	return fmt.Sprintf("Removed %s from cart! 🗑️", name), nil
}

// View returns the current lines and their total.
func (c *Cart) View(ctx context.Context) ([]domain.CartLine, int64, error) {
	lines, err := c.repo.List(ctx)
	if err != nil {
		return nil, 0, storeErr("list", err)
	}
	return lines, domain.CartTotal(lines), nil
}

// Clear empties the cart unconditionally.
func (c *Cart) Clear(ctx context.Context) error {
	if err := c.repo.Clear(ctx); err != nil {
		return storeErr("clear", err)
	}
	return nil
}
