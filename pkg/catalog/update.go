package catalog

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/weaveworks/beerctl/pkg/client"
)

// UpdateBeer replaces the writable fields of the beer with the given id.
// Any status but 204 is a failure.
func (m *Manager) UpdateBeer(ctx context.Context, id uuid.UUID, beer Beer) (ack Acknowledgement, err error) {
	op := fmt.Sprintf("failed to update beer %s", id)
	ctx, span := m.startSpan(ctx, "UpdateBeer", attribute.String("beer.id", id.String()))
	defer func() { endSpan(span, err) }()

	if id == uuid.Nil {
		return Acknowledgement{}, fmt.Errorf("beer id must be set: %w", ErrInvalidArgument)
	}

	resp, err := m.do(ctx, op, client.Request{
		Method: http.MethodPut,
		Path:   beerIDPath(id),
		Body:   NewBeerRequest(beer),
	}, status(http.StatusNoContent))
	if err != nil {
		return Acknowledgement{}, err
	}
	return acknowledge(resp), nil
}
