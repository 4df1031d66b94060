package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/weaveworks/beerctl/pkg/client"
)

const tracerName = "github.com/weaveworks/beerctl/pkg/catalog"

// CatalogManager interface for interacting with the beer catalog API
type CatalogManager interface {
	ListBeers(ctx context.Context, opts ListOptions) (BeerPage, error)
	GetBeerByID(ctx context.Context, id uuid.UUID, showInventory bool) (Beer, error)
	GetBeerByUPC(ctx context.Context, upc string) (Beer, error)
	CreateBeer(ctx context.Context, beer Beer) (Acknowledgement, error)
	UpdateBeer(ctx context.Context, id uuid.UUID, beer Beer) (Acknowledgement, error)
	DeleteBeerByID(ctx context.Context, id uuid.UUID) (Acknowledgement, error)
}

// Acknowledgement is the outcome of a create, update or delete call.
type Acknowledgement struct {
	StatusCode int `json:"statusCode"`
	// Location is the URL of a newly created beer, when the service sets it.
	Location string `json:"location,omitempty"`
}

// Manager is responsible for interactions with the beer catalog API. It holds
// no mutable state and is safe for concurrent use.
type Manager struct {
	client CatalogClient
	tracer trace.Tracer
}

var _ CatalogManager = &Manager{}

// NewManager returns a Manager sending its requests through c.
func NewManager(c CatalogClient) *Manager {
	return &Manager{
		client: c,
		tracer: otel.Tracer(tracerName),
	}
}

func (m *Manager) startSpan(ctx context.Context, op string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return m.tracer.Start(ctx, "catalog."+op, trace.WithAttributes(attrs...))
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// do performs exactly one round trip and turns any status not accepted by ok
// into a *StatusError.
func (m *Manager) do(ctx context.Context, op string, r client.Request, ok func(int) bool) (*client.Response, error) {
	resp, err := m.client.DoRequest(ctx, r)
	if err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}
	trace.SpanFromContext(ctx).SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	if !ok(resp.StatusCode) {
		return nil, fmt.Errorf("%s: %w", op, &StatusError{
			Method:     r.Method,
			Path:       r.Path,
			StatusCode: resp.StatusCode,
			Body:       resp.Body,
		})
	}
	return resp, nil
}

func decode(op string, data []byte, v interface{}) error {
	if err := json.Unmarshal(data, v); err != nil {
		return &DecodeError{Op: op, Err: err}
	}
	return nil
}

func status(code int) func(int) bool {
	return func(c int) bool { return c == code }
}

func successful(c int) bool {
	return c >= http.StatusOK && c < http.StatusMultipleChoices
}

func acknowledge(resp *client.Response) Acknowledgement {
	return Acknowledgement{
		StatusCode: resp.StatusCode,
		Location:   resp.Header.Get("Location"),
	}
}
