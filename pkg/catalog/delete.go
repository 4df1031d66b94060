package catalog

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/weaveworks/beerctl/pkg/client"
)

// DeleteBeerByID removes a beer. 404 and 405 responses are returned as
// errors matching ErrNotFound and ErrMethodNotAllowed, with the status code
// available through StatusCode.
func (m *Manager) DeleteBeerByID(ctx context.Context, id uuid.UUID) (ack Acknowledgement, err error) {
	op := fmt.Sprintf("failed to delete beer %s", id)
	ctx, span := m.startSpan(ctx, "DeleteBeerByID", attribute.String("beer.id", id.String()))
	defer func() { endSpan(span, err) }()

	if id == uuid.Nil {
		return Acknowledgement{}, fmt.Errorf("beer id must be set: %w", ErrInvalidArgument)
	}

	resp, err := m.do(ctx, op, client.Request{
		Method: http.MethodDelete,
		Path:   beerIDPath(id),
	}, successful)
	if err != nil {
		return Acknowledgement{}, err
	}
	return acknowledge(resp), nil
}
