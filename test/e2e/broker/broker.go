package broker

import (
	"context"

	"github.com/blang/semver"

	testcontext "github.com/mlab-lattice/pulsar-admin/test/e2e/context"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var minimumVersion = semver.MustParse("2.0.0")

var _ = Describe("broker", func() {
	It("should report itself healthy", func() {
		healthy, err := testcontext.TestContext.Client.Health(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(healthy).To(BeTrue())
	})

	It("should report a version with the v2 admin API", func() {
		version, err := testcontext.TestContext.Client.Version(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(version.GTE(minimumVersion)).To(BeTrue(), "broker version %v predates the v2 admin API", version)
	})

	It("should list at least one cluster", func() {
		clusters, err := testcontext.TestContext.Client.V2().Clusters().List(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(clusters).NotTo(BeEmpty())
	})
})
