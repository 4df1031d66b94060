package catalog

import (
	"context"
	"net/url"
	"strconv"

	"github.com/google/uuid"

	"github.com/weaveworks/beerctl/pkg/client"
)

const (
	beerPath    = "/api/v1/beer"
	beerUPCPath = "/api/v1/beerUpc"
)

// CatalogClient sends requests to the catalog service.
//go:generate counterfeiter -o fakes/fake_catalog_client.go . CatalogClient
type CatalogClient interface {
	DoRequest(ctx context.Context, r client.Request) (*client.Response, error)
}

// ListOptions filters and pages ListBeers. Nil fields are not sent, leaving
// the defaults to the service.
type ListOptions struct {
	PageNumber    *int
	PageSize      *int
	BeerName      *string
	BeerStyle     *string
	ShowInventory *bool
}

// Int returns a pointer to v.
func Int(v int) *int { return &v }

// String returns a pointer to v.
func String(v string) *string { return &v }

// Bool returns a pointer to v.
func Bool(v bool) *bool { return &v }

func (o ListOptions) query() url.Values {
	q := url.Values{}
	if o.PageNumber != nil {
		q.Set("pageNumber", strconv.Itoa(*o.PageNumber))
	}
	if o.PageSize != nil {
		q.Set("pageSize", strconv.Itoa(*o.PageSize))
	}
	if o.BeerName != nil {
		q.Set("beerName", *o.BeerName)
	}
	if o.BeerStyle != nil {
		q.Set("beerStyle", *o.BeerStyle)
	}
	if o.ShowInventory != nil {
		q.Set("showInventory", strconv.FormatBool(*o.ShowInventory))
	}
	return q
}

func (o ListOptions) showInventory() bool {
	return o.ShowInventory != nil && *o.ShowInventory
}

func beerIDPath(id uuid.UUID) string {
	return beerPath + "/" + id.String()
}

func beerUPCLookupPath(upc string) string {
	return beerUPCPath + "/" + url.PathEscape(upc)
}
