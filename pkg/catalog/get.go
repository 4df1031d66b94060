package catalog

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/weaveworks/beerctl/pkg/client"
)

// GetBeerByID fetches a single beer. Quantity on hand is only populated when
// showInventory is set.
func (m *Manager) GetBeerByID(ctx context.Context, id uuid.UUID, showInventory bool) (beer Beer, err error) {
	op := fmt.Sprintf("failed to fetch beer %s", id)
	ctx, span := m.startSpan(ctx, "GetBeerByID",
		attribute.String("beer.id", id.String()),
		attribute.Bool("beer.show_inventory", showInventory))
	defer func() { endSpan(span, err) }()

	if id == uuid.Nil {
		return Beer{}, fmt.Errorf("beer id must be set: %w", ErrInvalidArgument)
	}

	resp, err := m.do(ctx, op, client.Request{
		Method: http.MethodGet,
		Path:   beerIDPath(id),
		Query:  url.Values{"showInventory": []string{strconv.FormatBool(showInventory)}},
	}, successful)
	if err != nil {
		return Beer{}, err
	}

	if err := decode(op, resp.Body, &beer); err != nil {
		return Beer{}, err
	}
	if !showInventory {
		beer.QuantityOnHand = nil
	}
	return beer, nil
}

// GetBeerByUPC fetches the beer with the given universal product code.
func (m *Manager) GetBeerByUPC(ctx context.Context, upc string) (beer Beer, err error) {
	op := fmt.Sprintf("failed to fetch beer with upc %q", upc)
	ctx, span := m.startSpan(ctx, "GetBeerByUPC", attribute.String("beer.upc", upc))
	defer func() { endSpan(span, err) }()

	if upc == "" {
		return Beer{}, fmt.Errorf("upc must be set: %w", ErrInvalidArgument)
	}

	resp, err := m.do(ctx, op, client.Request{
		Method: http.MethodGet,
		Path:   beerUPCLookupPath(upc),
	}, successful)
	if err != nil {
		return Beer{}, err
	}

	if err := decode(op, resp.Body, &beer); err != nil {
		return Beer{}, err
	}
	// the upc lookup never asks for inventory
	beer.QuantityOnHand = nil
	return beer, nil
}
