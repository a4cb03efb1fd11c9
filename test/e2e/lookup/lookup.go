package lookup

import (
	"context"
	"time"

	"github.com/mlab-lattice/pulsar-admin/pkg/util/rest"
	testcontext "github.com/mlab-lattice/pulsar-admin/test/e2e/context"
	"github.com/mlab-lattice/pulsar-admin/test/util/names"
	namespaceutil "github.com/mlab-lattice/pulsar-admin/test/util/pulsar/v2/namespace"
	topicutil "github.com/mlab-lattice/pulsar-admin/test/util/pulsar/v2/topic"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("topic lookup", func() {
	It("should resolve a topic to a pulsar:// broker url", func() {
		tenant := testcontext.TestContext.Tenant
		namespace := names.Unique("e2e-lookup")
		topic := names.Unique("t")

		namespaces := testcontext.TestContext.Client.V2().Namespaces()
		topics := testcontext.TestContext.Client.V2().PersistentTopics()

		namespaceutil.CreateSuccessfully(namespaces, tenant, namespace, time.Second, 30*time.Second)
		topicutil.Create(topics, tenant, namespace, topic)

		data, err := testcontext.TestContext.Client.V2().Lookup().Topic(context.Background(), tenant, namespace, topic)
		Expect(err).NotTo(HaveOccurred())
		Expect(data.BrokerURL).To(HavePrefix("pulsar://"))

		topicutil.Delete(topics, tenant, namespace, topic)
		namespaceutil.DeleteSuccessfully(namespaces, tenant, namespace, time.Second, 30*time.Second)
	})

	It("should return a client error for a topic in a missing namespace", func() {
		_, err := testcontext.TestContext.Client.V2().Lookup().Topic(
			context.Background(),
			testcontext.TestContext.Tenant,
			names.Unique("e2e-missing"),
			"t",
		)
		Expect(rest.IsClientError(err)).To(BeTrue(), "expected a 4xx, got %v", err)
	})
})
