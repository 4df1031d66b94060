package catalog

import (
	"context"
	"net/http"

	"go.opentelemetry.io/otel/attribute"

	"github.com/weaveworks/beerctl/pkg/client"
)

// ListBeers fetches one page of beers matching opts. A page without matches
// is returned as an empty BeerPage, not an error.
func (m *Manager) ListBeers(ctx context.Context, opts ListOptions) (page BeerPage, err error) {
	const op = "failed to list beers"
	ctx, span := m.startSpan(ctx, "ListBeers", attribute.Bool("beer.show_inventory", opts.showInventory()))
	defer func() { endSpan(span, err) }()

	resp, err := m.do(ctx, op, client.Request{
		Method: http.MethodGet,
		Path:   beerPath,
		Query:  opts.query(),
	}, successful)
	if err != nil {
		return BeerPage{}, err
	}

	var body beerPageResponse
	if err := decode(op, resp.Body, &body); err != nil {
		return BeerPage{}, err
	}
	page, err = body.page()
	if err != nil {
		return BeerPage{}, &DecodeError{Op: op, Err: err}
	}

	if !opts.showInventory() {
		for i := range page.Content {
			page.Content[i].QuantityOnHand = nil
		}
	}
	span.SetAttributes(attribute.Int("beer.page.size", page.Len()))
	return page, nil
}
