package formatter_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/weaveworks/beerctl/pkg/formatter"
)

var _ = Describe("Table", func() {
	var tableFormatter formatter.Formatter
	BeforeEach(func() {
		tableFormatter = formatter.NewTableFormatter()
	})

	It("formats output in a table", func() {
		contFunc := func() interface{} {
			return formatter.TableContents{
				Headers: []string{"name", "style"},
				Data:    [][]string{{"Mango Bobs", "ALE"}},
			}
		}
		out, err := tableFormatter.Format(contFunc)
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(Equal("NAME      \tSTYLE \nMango Bobs\tALE  \t\n"))
	})

	It("prints the footer below the rows", func() {
		contFunc := func() interface{} {
			return formatter.TableContents{
				Headers: []string{"name", "style"},
				Data:    [][]string{{"Mango Bobs", "ALE"}},
				Footer:  "page 1 of 1 (1 beers)",
			}
		}
		out, err := tableFormatter.Format(contFunc)
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(HaveSuffix("ALE  \t\npage 1 of 1 (1 beers)\n"))
	})

	When("the wrong type is returned in the getter func", func() {
		It("returns an error", func() {
			contFunc := func() interface{} {
				return "not a table contents obj"
			}
			_, err := tableFormatter.Format(contFunc)
			Expect(err).To(MatchError("func returned wrong type for table formatter. wanted formatter.TableContents"))
		})
	})
})

var _ = Describe("Render", func() {
	data := map[string]string{"beerName": "Galaxy Cat"}
	table := func() interface{} {
		return formatter.TableContents{Headers: []string{"name"}, Data: [][]string{{"Galaxy Cat"}}}
	}

	It("renders json", func() {
		out, err := formatter.Render(formatter.JSON, data, table)
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(Equal("{\n  \"beerName\": \"Galaxy Cat\"\n}"))
	})

	It("renders yaml", func() {
		out, err := formatter.Render(formatter.YAML, data, table)
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(Equal("beerName: Galaxy Cat\n"))
	})

	It("renders a table by default", func() {
		out, err := formatter.Render("", data, table)
		Expect(err).NotTo(HaveOccurred())
		Expect(out).To(ContainSubstring("Galaxy Cat"))
		Expect(out).To(HavePrefix("NAME"))
	})

	It("rejects unknown formats", func() {
		_, err := formatter.Render("xml", data, table)
		Expect(err).To(MatchError(`unsupported output format "xml", must be one of table|json|yaml`))
	})
})
