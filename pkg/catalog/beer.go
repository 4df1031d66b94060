package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Beer is a beer as returned by the catalog service.
type Beer struct {
	ID      uuid.UUID `json:"id"`
	Version *int      `json:"version,omitempty"`

	BeerName  string          `json:"beerName"`
	BeerStyle string          `json:"beerStyle"`
	UPC       string          `json:"upc"`
	Price     decimal.Decimal `json:"price"`
	// QuantityOnHand is only set when inventory was requested.
	QuantityOnHand *int `json:"quantityOnHand,omitempty"`

	CreatedDate      Timestamp `json:"createdDate"`
	LastModifiedDate Timestamp `json:"lastModifiedDate"`
}

// BeerRequest is the body of create and update calls. The service assigns
// ids, versions, inventory and timestamps itself.
type BeerRequest struct {
	BeerName  string          `json:"beerName"`
	BeerStyle string          `json:"beerStyle"`
	UPC       string          `json:"upc"`
	Price     decimal.Decimal `json:"price"`
}

// NewBeerRequest copies the client-writable fields of b.
func NewBeerRequest(b Beer) BeerRequest {
	return BeerRequest{
		BeerName:  b.BeerName,
		BeerStyle: b.BeerStyle,
		UPC:       b.UPC,
		Price:     b.Price,
	}
}

// timestampLayout matches the service's yyyy-MM-dd'T'HH:mm:ssZ date format.
const timestampLayout = "2006-01-02T15:04:05-0700"

var timestampLayouts = []string{
	timestampLayout,
	"2006-01-02T15:04:05.999999999-0700",
	time.RFC3339Nano,
}

// Timestamp is a point in time in the catalog service's wire format.
type Timestamp struct {
	time.Time
}

// MarshalJSON writes the zero Timestamp as null.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + t.Format(timestampLayout) + `"`), nil
}

// UnmarshalJSON accepts the service's string formats and epoch seconds.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*t = Timestamp{}
		return nil
	}

	if data[0] != '"' {
		// epoch seconds with an optional fraction, e.g. 1610286312.123456
		d, err := decimal.NewFromString(string(data))
		if err != nil {
			return fmt.Errorf("unsupported timestamp %s", data)
		}
		sec := d.IntPart()
		nsec := d.Sub(decimal.NewFromInt(sec)).Shift(9).IntPart()
		t.Time = time.Unix(sec, nsec).UTC()
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*t = Timestamp{}
		return nil
	}
	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("unsupported timestamp %q", s)
}
