package catalog

import (
	"fmt"

	"github.com/google/uuid"
)

// BeerPage is one page of the catalog's beer collection.
type BeerPage struct {
	Content []Beer `json:"content"`

	Number        int   `json:"number"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`

	First            bool `json:"first"`
	Last             bool `json:"last"`
	NumberOfElements int  `json:"numberOfElements"`
	Empty            bool `json:"empty"`
}

// Len returns the number of beers on the page.
func (p BeerPage) Len() int { return len(p.Content) }

// IsEmpty reports whether the page carries no beers.
func (p BeerPage) IsEmpty() bool { return len(p.Content) == 0 }

// HasNext reports whether the service has a page after this one.
func (p BeerPage) HasNext() bool { return !p.Last }

// Find returns the first beer on the page matching fn.
func (p BeerPage) Find(fn func(Beer) bool) (Beer, bool) {
	for _, b := range p.Content {
		if fn(b) {
			return b, true
		}
	}
	return Beer{}, false
}

// FindByID returns the beer with the given id if it is on this page.
func (p BeerPage) FindByID(id uuid.UUID) (Beer, bool) {
	return p.Find(func(b Beer) bool { return b.ID == id })
}

// FindByUPC returns the beer with the given upc if it is on this page.
func (p BeerPage) FindByUPC(upc string) (Beer, bool) {
	return p.Find(func(b Beer) bool { return b.UPC == upc })
}

func emptyPage() BeerPage {
	return BeerPage{
		Content: []Beer{},
		First:   true,
		Last:    true,
		Empty:   true,
	}
}

// beerPageResponse is the Spring Data page shape returned by the list endpoint.
// The sort and pageable objects are ignored.
type beerPageResponse struct {
	Content []Beer `json:"content"`

	Number        *int   `json:"number"`
	Size          *int   `json:"size"`
	TotalElements *int64 `json:"totalElements"`
	TotalPages    *int   `json:"totalPages"`

	First *bool `json:"first"`
	Last  *bool `json:"last"`
}

// page converts the response into a BeerPage. A page is either fully
// described or empty.
func (r beerPageResponse) page() (BeerPage, error) {
	complete := r.Number != nil && r.Size != nil && r.TotalElements != nil && r.TotalPages != nil
	if !complete {
		if len(r.Content) == 0 {
			return emptyPage(), nil
		}
		return BeerPage{}, fmt.Errorf("page with %d beers is missing pagination metadata", len(r.Content))
	}
	if *r.TotalElements < int64(len(r.Content)) {
		return BeerPage{}, fmt.Errorf("page reports %d total elements but carries %d beers", *r.TotalElements, len(r.Content))
	}

	p := BeerPage{
		Content:          r.Content,
		Number:           *r.Number,
		Size:             *r.Size,
		TotalElements:    *r.TotalElements,
		TotalPages:       *r.TotalPages,
		First:            *r.Number == 0,
		Last:             *r.Number+1 >= *r.TotalPages,
		NumberOfElements: len(r.Content),
		Empty:            len(r.Content) == 0,
	}
	if p.Content == nil {
		p.Content = []Beer{}
	}
	if r.First != nil {
		p.First = *r.First
	}
	if r.Last != nil {
		p.Last = *r.Last
	}
	return p, nil
}
