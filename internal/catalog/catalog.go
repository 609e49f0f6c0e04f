package catalog

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mrwnh/eventreg/internal/domain"
)

// Price is the configured cost of one ticket type.
type Price struct {
	Amount   decimal.Decimal
	Currency string
}

// Catalog is the static price list keyed by ticket type, plus the
// currency → merchant entity id map for the payment gateway. It is built
// once at startup from configuration and injected into the services that
// need it; the catalog, never the client, is the source of truth for
// amounts.
type Catalog struct {
	prices   map[domain.TicketType]Price
	entities map[string]string
}

func New(prices map[domain.TicketType]Price, entities map[string]string) (*Catalog, error) {
	if len(prices) == 0 {
		return nil, fmt.Errorf("ticket catalog is empty")
	}
	for t := range prices {
		if !domain.ValidTicketType(t) {
			return nil, fmt.Errorf("catalog contains unknown ticket type %q", t)
		}
	}
	ents := make(map[string]string, len(entities))
	for cur, id := range entities {
		ents[strings.ToUpper(cur)] = id
	}
	return &Catalog{prices: prices, entities: ents}, nil
}

func (c *Catalog) Price(t domain.TicketType) (Price, error) {
	p, ok := c.prices[t]
	if !ok {
		return Price{}, fmt.Errorf("%w: %s", domain.ErrUnknownTicketType, t)
	}
	return p, nil
}

// EntityID resolves the gateway merchant entity for a currency.
// An unrecognized currency is a hard failure, not a silent default.
func (c *Catalog) EntityID(currency string) (string, error) {
	id, ok := c.entities[strings.ToUpper(currency)]
	if !ok {
		return "", fmt.Errorf("%w: %s", domain.ErrUnknownCurrency, currency)
	}
	return id, nil
}
