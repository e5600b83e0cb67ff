package memory

import (
	"context"
	"errors"
)

// BootstrapCheck implements ports.HealthChecker. The node is degraded until
// the first full offer set was loaded.
type BootstrapCheck struct {
	book *OfferBook
}

func NewBootstrapCheck(book *OfferBook) *BootstrapCheck {
	return &BootstrapCheck{book: book}
}

func (c *BootstrapCheck) Ping(context.Context) error {
	if !c.book.IsBootstrapped() {
		return errors.New("offer book not bootstrapped")
	}
	return nil
}

func (c *BootstrapCheck) Name() string {
	return "offer_book"
}
