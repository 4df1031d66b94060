package integration_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/weaveworks/beerctl/pkg/version"
)

var _ = Describe("beerctl version", func() {
	It("returns information about the version of beerctl", func() {
		session, err := beerctl("--version").CombinedOutput()
		Expect(err).ToNot(HaveOccurred())
		Expect(string(session)).To(ContainSubstring(version.Version))
	})

	It("returns information about the version of beerctl with the version command", func() {
		session, err := beerctl("version").CombinedOutput()
		Expect(err).ToNot(HaveOccurred())
		Expect(string(session)).To(ContainSubstring(version.Version))
	})
})
