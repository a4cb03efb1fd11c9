package namespace

import (
	"context"
	"net/http"
	"time"

	"github.com/mlab-lattice/pulsar-admin/pkg/util/rest"
	testcontext "github.com/mlab-lattice/pulsar-admin/test/e2e/context"
	"github.com/mlab-lattice/pulsar-admin/test/util/ginkgo"
	"github.com/mlab-lattice/pulsar-admin/test/util/names"
	namespaceutil "github.com/mlab-lattice/pulsar-admin/test/util/pulsar/v2/namespace"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

const (
	pollInterval = 500 * time.Millisecond
	pollTimeout  = 30 * time.Second
)

var _ = Describe("namespace", func() {
	name := names.Unique("e2e-ns")
	created := false
	deleted := false

	It("should be able to create a namespace and eventually list it", func() {
		client := testcontext.TestContext.Client.V2().Namespaces()
		namespaceutil.CreateSuccessfully(client, testcontext.TestContext.Tenant, name, pollInterval, pollTimeout)
		created = true
	})

	ginkgo.ConditionallyIt(
		"should refuse to create the same namespace twice",
		ginkgo.If("the namespace was created", func() bool { return created }),
		func() {
			client := testcontext.TestContext.Client.V2().Namespaces()
			err := client.Create(context.Background(), testcontext.TestContext.Tenant, name)
			Expect(rest.IsConflict(err)).To(BeTrue(), "expected a conflict, got %v", err)
		},
	)

	ginkgo.ConditionallyIt(
		"should be able to delete the namespace and eventually stop listing it",
		ginkgo.If("the namespace was created", func() bool { return created }),
		func() {
			client := testcontext.TestContext.Client.V2().Namespaces()
			namespaceutil.DeleteSuccessfully(client, testcontext.TestContext.Tenant, name, pollInterval, pollTimeout)
			deleted = true
		},
	)

	ginkgo.ConditionallyIt(
		"should return a 404 when deleting the namespace again",
		ginkgo.If("the namespace was deleted", func() bool { return deleted }),
		func() {
			client := testcontext.TestContext.Client.V2().Namespaces()
			err := client.Delete(context.Background(), testcontext.TestContext.Tenant, name)
			Expect(rest.StatusCode(err)).To(Equal(http.StatusNotFound), "expected a 404, got %v", err)
			Expect(rest.IsDecodeError(err)).To(BeFalse())
		},
	)

	It("should return a client error listing the namespaces of a missing tenant", func() {
		client := testcontext.TestContext.Client.V2().Namespaces()
		_, err := client.List(context.Background(), names.Unique("e2e-missing"))
		Expect(rest.IsClientError(err)).To(BeTrue(), "expected a 4xx, got %v", err)
		Expect(rest.IsDecodeError(err)).To(BeFalse())
	})
})
