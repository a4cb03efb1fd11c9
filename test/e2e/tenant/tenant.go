package tenant

import (
	"context"
	"net/http"

	"github.com/mlab-lattice/pulsar-admin/pkg/api/v2"
	"github.com/mlab-lattice/pulsar-admin/pkg/util/rest"
	testcontext "github.com/mlab-lattice/pulsar-admin/test/e2e/context"
	"github.com/mlab-lattice/pulsar-admin/test/util/ginkgo"
	"github.com/mlab-lattice/pulsar-admin/test/util/names"
	tenantutil "github.com/mlab-lattice/pulsar-admin/test/util/pulsar/v2/tenant"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("tenant", func() {
	name := names.Unique("e2e-tenant")
	created := false

	It("should list the tenant the suite runs in", func() {
		tenantutil.ExpectListed(testcontext.TestContext.Client.V2().Tenants(), testcontext.TestContext.Tenant)
	})

	It("should be able to create a tenant allowed on every cluster", func() {
		clusters, err := testcontext.TestContext.Client.V2().Clusters().List(context.Background())
		Expect(err).NotTo(HaveOccurred())

		tenants := testcontext.TestContext.Client.V2().Tenants()
		tenantutil.Create(tenants, name, &v2.TenantInfo{AllowedClusters: clusters})
		created = true

		tenantutil.ExpectListed(tenants, name)

		info := tenantutil.Get(tenants, name)
		Expect(info.AllowedClusters).To(ConsistOf(clusters))
	})

	ginkgo.ConditionallyIt(
		"should refuse to create the same tenant twice",
		ginkgo.If("the tenant was created", func() bool { return created }),
		func() {
			err := testcontext.TestContext.Client.V2().Tenants().Create(context.Background(), name, nil)
			Expect(rest.IsConflict(err)).To(BeTrue(), "expected a conflict, got %v", err)
		},
	)

	ginkgo.ConditionallyIt(
		"should be able to delete the tenant",
		ginkgo.If("the tenant was created", func() bool { return created }),
		func() {
			tenants := testcontext.TestContext.Client.V2().Tenants()
			tenantutil.Delete(tenants, name)

			_, err := tenants.Get(context.Background(), name)
			Expect(rest.StatusCode(err)).To(Equal(http.StatusNotFound), "expected a 404, got %v", err)
			Expect(rest.IsDecodeError(err)).To(BeFalse())
		},
	)
})
