package catalog_test

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/weaveworks/beerctl/pkg/catalog"
	"github.com/weaveworks/beerctl/pkg/catalog/fakes"
)

var _ = Describe("GetBeerByID", func() {
	var (
		fakeCatalogClient *fakes.FakeCatalogClient
		manager           *catalog.Manager
		id                uuid.UUID
	)

	BeforeEach(func() {
		fakeCatalogClient = new(fakes.FakeCatalogClient)
		manager = catalog.NewManager(fakeCatalogClient)
		id = uuid.MustParse(mangoBobsID)
	})

	When("the beer exists", func() {
		It("returns the beer without inventory by default", func() {
			fakeCatalogClient.DoRequestReturns(okResponse(mangoBobsJSON), nil)

			beer, err := manager.GetBeerByID(context.Background(), id, false)
			Expect(err).NotTo(HaveOccurred())
			_, req := fakeCatalogClient.DoRequestArgsForCall(0)
			Expect(req.Method).To(Equal(http.MethodGet))
			Expect(req.Path).To(Equal("/api/v1/beer/" + mangoBobsID))
			Expect(req.Query).To(Equal(url.Values{"showInventory": []string{"false"}}))
			Expect(beer.ID).To(Equal(id))
			Expect(beer.BeerName).To(Equal("Mango Bobs"))
			Expect(beer.QuantityOnHand).To(BeNil())
		})

		It("populates quantity on hand when inventory is requested", func() {
			fakeCatalogClient.DoRequestReturns(okResponse(mangoBobsJSON), nil)

			beer, err := manager.GetBeerByID(context.Background(), id, true)
			Expect(err).NotTo(HaveOccurred())
			_, req := fakeCatalogClient.DoRequestArgsForCall(0)
			Expect(req.Query.Get("showInventory")).To(Equal("true"))
			Expect(beer.QuantityOnHand).NotTo(BeNil())
			Expect(*beer.QuantityOnHand).To(Equal(4))
		})
	})

	When("the beer does not exist", func() {
		It("returns a not found error", func() {
			fakeCatalogClient.DoRequestReturns(statusResponse(http.StatusNotFound, ""), nil)

			_, err := manager.GetBeerByID(context.Background(), id, false)
			Expect(catalog.IsNotFound(err)).To(BeTrue())
			Expect(errors.Is(err, catalog.ErrRemote)).To(BeFalse())
			Expect(err).To(MatchError("failed to fetch beer " + mangoBobsID + ": GET /api/v1/beer/" + mangoBobsID + ": status code 404"))
		})
	})

	When("the service fails", func() {
		It("returns a remote error carrying the body", func() {
			fakeCatalogClient.DoRequestReturns(statusResponse(http.StatusInternalServerError, `{"error":"boom"}`), nil)

			_, err := manager.GetBeerByID(context.Background(), id, false)
			var statusErr *catalog.StatusError
			Expect(errors.As(err, &statusErr)).To(BeTrue())
			Expect(statusErr.Code()).To(Equal(http.StatusInternalServerError))
			Expect(string(statusErr.Body)).To(Equal(`{"error":"boom"}`))
			Expect(errors.Is(err, catalog.ErrRemote)).To(BeTrue())
		})
	})

	When("the beer isn't valid json", func() {
		It("returns a decode error", func() {
			fakeCatalogClient.DoRequestReturns(okResponse(`{"id": "not-a-uuid"}`), nil)

			_, err := manager.GetBeerByID(context.Background(), id, false)
			Expect(errors.Is(err, catalog.ErrDecode)).To(BeTrue())
		})
	})

	When("the service answers with another successful status", func() {
		It("decodes the body", func() {
			fakeCatalogClient.DoRequestReturns(statusResponse(http.StatusNonAuthoritativeInfo, mangoBobsJSON), nil)

			beer, err := manager.GetBeerByID(context.Background(), id, false)
			Expect(err).NotTo(HaveOccurred())
			Expect(beer.ID).To(Equal(id))
		})

		It("returns a decode error when there is no body", func() {
			fakeCatalogClient.DoRequestReturns(statusResponse(http.StatusNoContent, ""), nil)

			_, err := manager.GetBeerByID(context.Background(), id, false)
			Expect(errors.Is(err, catalog.ErrDecode)).To(BeTrue())
			Expect(errors.Is(err, catalog.ErrRemote)).To(BeFalse())
			_, ok := catalog.StatusCode(err)
			Expect(ok).To(BeFalse())
		})
	})

	When("the id is not set", func() {
		It("returns an error without calling the service", func() {
			_, err := manager.GetBeerByID(context.Background(), uuid.Nil, false)
			Expect(errors.Is(err, catalog.ErrInvalidArgument)).To(BeTrue())
			Expect(fakeCatalogClient.DoRequestCallCount()).To(Equal(0))
		})
	})
})

var _ = Describe("GetBeerByUPC", func() {
	var (
		fakeCatalogClient *fakes.FakeCatalogClient
		manager           *catalog.Manager
	)

	BeforeEach(func() {
		fakeCatalogClient = new(fakes.FakeCatalogClient)
		manager = catalog.NewManager(fakeCatalogClient)
	})

	When("a beer with the upc exists", func() {
		It("returns a beer with the requested upc", func() {
			fakeCatalogClient.DoRequestReturns(okResponse(mangoBobsJSON), nil)

			beer, err := manager.GetBeerByUPC(context.Background(), "0631234200036")
			Expect(err).NotTo(HaveOccurred())
			_, req := fakeCatalogClient.DoRequestArgsForCall(0)
			Expect(req.Method).To(Equal(http.MethodGet))
			Expect(req.Path).To(Equal("/api/v1/beerUpc/0631234200036"))
			Expect(req.Query).To(BeEmpty())
			Expect(beer.UPC).To(Equal("0631234200036"))
			Expect(beer.QuantityOnHand).To(BeNil())
		})
	})

	When("the upc needs escaping", func() {
		It("escapes it as a single path segment", func() {
			fakeCatalogClient.DoRequestReturns(okResponse(mangoBobsJSON), nil)

			_, err := manager.GetBeerByUPC(context.Background(), "06/31 2")
			Expect(err).NotTo(HaveOccurred())
			_, req := fakeCatalogClient.DoRequestArgsForCall(0)
			Expect(req.Path).To(Equal("/api/v1/beerUpc/06%2F31%202"))
		})

		It("keeps dot segments as the upc", func() {
			fakeCatalogClient.DoRequestReturns(okResponse(mangoBobsJSON), nil)

			_, err := manager.GetBeerByUPC(context.Background(), "..")
			Expect(err).NotTo(HaveOccurred())
			_, req := fakeCatalogClient.DoRequestArgsForCall(0)
			Expect(req.Path).To(Equal("/api/v1/beerUpc/.."))
		})
	})

	When("no beer has the upc", func() {
		It("returns a not found error", func() {
			fakeCatalogClient.DoRequestReturns(statusResponse(http.StatusNotFound, ""), nil)

			_, err := manager.GetBeerByUPC(context.Background(), "Anything")
			Expect(catalog.IsNotFound(err)).To(BeTrue())
			Expect(err).To(MatchError(ContainSubstring(`failed to fetch beer with upc "Anything"`)))
		})
	})

	When("the upc is empty", func() {
		It("returns an error without calling the service", func() {
			_, err := manager.GetBeerByUPC(context.Background(), "")
			Expect(err).To(MatchError("upc must be set: invalid argument"))
			Expect(fakeCatalogClient.DoRequestCallCount()).To(Equal(0))
		})
	})

	When("the request fails", func() {
		It("returns a transport error", func() {
			fakeCatalogClient.DoRequestReturns(nil, errors.New("connection refused"))

			_, err := manager.GetBeerByUPC(context.Background(), "0631234200036")
			var transportErr *catalog.TransportError
			Expect(errors.As(err, &transportErr)).To(BeTrue())
			Expect(transportErr.Err).To(MatchError("connection refused"))
		})
	})
})
