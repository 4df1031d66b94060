package catalog

import (
	"context"
	"net/http"

	"go.opentelemetry.io/otel/attribute"

	"github.com/weaveworks/beerctl/pkg/client"
)

// CreateBeer submits a new beer. Only name, style, upc and price are sent;
// the service assigns everything else. Any status but 201 is a failure.
func (m *Manager) CreateBeer(ctx context.Context, beer Beer) (ack Acknowledgement, err error) {
	const op = "failed to create beer"
	ctx, span := m.startSpan(ctx, "CreateBeer", attribute.String("beer.upc", beer.UPC))
	defer func() { endSpan(span, err) }()

	resp, err := m.do(ctx, op, client.Request{
		Method: http.MethodPost,
		Path:   beerPath,
		Body:   NewBeerRequest(beer),
	}, status(http.StatusCreated))
	if err != nil {
		return Acknowledgement{}, err
	}
	return acknowledge(resp), nil
}
