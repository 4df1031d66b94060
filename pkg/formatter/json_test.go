package formatter_test

import (
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"

	"github.com/weaveworks/beerctl/pkg/catalog"
	"github.com/weaveworks/beerctl/pkg/formatter"
)

var _ = Describe("JsonFormater", func() {
	It("formats output as json", func() {
		jsonFormatter := formatter.NewJSONFormatter()
		dataFunc := func() interface{} {
			return catalog.Beer{
				ID:        uuid.MustParse("0a818933-087d-47f2-ad83-2f986ed087eb"),
				BeerName:  "Mango Bobs",
				BeerStyle: "ALE",
				UPC:       "0631234200036",
				Price:     decimal.RequireFromString("12.95"),
			}
		}
		out, err := jsonFormatter.Format(dataFunc)
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(Equal(`{
  "id": "0a818933-087d-47f2-ad83-2f986ed087eb",
  "beerName": "Mango Bobs",
  "beerStyle": "ALE",
  "upc": "0631234200036",
  "price": "12.95",
  "createdDate": null,
  "lastModifiedDate": null
}`))
	})

	It("does not escape html characters", func() {
		out, err := formatter.NewJSONFormatter().Format(func() interface{} {
			return map[string]string{"beerName": "Bitter & Twisted <Cask>"}
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(Equal("{\n  \"beerName\": \"Bitter & Twisted <Cask>\"\n}"))
	})
})
