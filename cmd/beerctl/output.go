package main

import (
	"fmt"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/weaveworks/beerctl/pkg/catalog"
	"github.com/weaveworks/beerctl/pkg/formatter"
	"github.com/weaveworks/beerctl/pkg/writer"
)

const timeLayout = "2006-01-02 15:04:05"

func beerPageDataFunc(page catalog.BeerPage) func() interface{} {
	return func() interface{} {
		tc := formatter.TableContents{
			Headers: []string{"ID", "Name", "Style", "UPC", "Price", "Quantity"},
			Footer:  pageSummary(page),
		}
		for _, b := range page.Content {
			tc.Data = append(tc.Data, []string{
				b.ID.String(),
				b.BeerName,
				b.BeerStyle,
				b.UPC,
				b.Price.StringFixed(2),
				quantity(b),
			})
		}
		return tc
	}
}

func beerDataFunc(b catalog.Beer) func() interface{} {
	return func() interface{} {
		return formatter.TableContents{
			Data: [][]string{
				{"ID", b.ID.String()},
				{"Name", b.BeerName},
				{"Style", b.BeerStyle},
				{"UPC", b.UPC},
				{"Price", b.Price.StringFixed(2)},
				{"Quantity", quantity(b)},
				{"Version", optionalInt(b.Version)},
				{"Created", timestamp(b.CreatedDate)},
				{"Last Modified", timestamp(b.LastModifiedDate)},
			},
		}
	}
}

func quantity(b catalog.Beer) string {
	return optionalInt(b.QuantityOnHand)
}

func optionalInt(v *int) string {
	if v == nil {
		return "-"
	}
	return strconv.Itoa(*v)
}

func timestamp(t catalog.Timestamp) string {
	if t.IsZero() {
		return "-"
	}
	return t.UTC().Format(timeLayout)
}

func pageSummary(page catalog.BeerPage) string {
	return fmt.Sprintf("page %d of %d (%d beers)", page.Number+1, page.TotalPages, page.TotalElements)
}

func formatPage(page catalog.BeerPage, outFormat string) (string, error) {
	if page.IsEmpty() && (outFormat == formatter.Table || outFormat == "") {
		return "No beers found", nil
	}
	return formatter.Render(outFormat, page, beerPageDataFunc(page))
}

func formatBeer(b catalog.Beer, outFormat string) (string, error) {
	return formatter.Render(outFormat, b, beerDataFunc(b))
}

func writeOutput(c *cli.Context, out string) error {
	return writer.New(c.String("out"), c.App.Writer).Output(out)
}
