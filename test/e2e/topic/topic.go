package topic

import (
	"context"
	"net/http"
	"time"

	v2client "github.com/mlab-lattice/pulsar-admin/pkg/api/client/v2"
	"github.com/mlab-lattice/pulsar-admin/pkg/util/rest"
	testcontext "github.com/mlab-lattice/pulsar-admin/test/e2e/context"
	"github.com/mlab-lattice/pulsar-admin/test/util/names"
	namespaceutil "github.com/mlab-lattice/pulsar-admin/test/util/pulsar/v2/namespace"
	topicutil "github.com/mlab-lattice/pulsar-admin/test/util/pulsar/v2/topic"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

const (
	pollInterval = 500 * time.Millisecond
	pollTimeout  = 30 * time.Second
)

var _ = Describe("persistent topic", func() {
	var (
		client    v2client.PersistentTopicClient
		tenant    string
		namespace string
	)

	BeforeEach(func() {
		tenant = testcontext.TestContext.Tenant
		namespace = names.Unique("e2e-topics")
		namespaceutil.CreateSuccessfully(testcontext.TestContext.Client.V2().Namespaces(), tenant, namespace, pollInterval, pollTimeout)

		client = testcontext.TestContext.Client.V2().PersistentTopics()
	})

	AfterEach(func() {
		namespaceutil.DeleteSuccessfully(testcontext.TestContext.Client.V2().Namespaces(), tenant, namespace, pollInterval, pollTimeout)
	})

	It("should list a non-partitioned topic exactly once under its full name", func() {
		topic := names.Unique("t")
		name := topicutil.Create(client, tenant, namespace, topic)
		Expect(name).To(Equal("persistent://" + tenant + "/" + namespace + "/" + topic))

		topicutil.ExpectListedOnce(topicutil.List(client, tenant, namespace), name)
		Expect(topicutil.ListPartitioned(client, tenant, namespace)).NotTo(ContainElement(name))

		metadata, err := client.PartitionedMetadata(context.Background(), tenant, namespace, topic)
		Expect(err).NotTo(HaveOccurred())
		Expect(metadata.Partitions).To(Equal(0))

		stats := topicutil.Stats(client, tenant, namespace, topic)
		Expect(stats.MsgInCounter).To(BeNumerically(">=", 0))
		Expect(stats.Publishers).To(BeEmpty())

		topicutil.Delete(client, tenant, namespace, topic)
		topicutil.WaitUntilUnlisted(client.List, tenant, namespace, name, pollInterval, pollTimeout)

		err = client.Delete(context.Background(), tenant, namespace, topic)
		Expect(rest.StatusCode(err)).To(Equal(http.StatusNotFound), "expected a 404, got %v", err)
	})

	It("should list a partitioned topic exactly once under its full name", func() {
		topic := names.Unique("p")
		name := topicutil.CreatePartitioned(client, tenant, namespace, topic, 3)

		topicutil.ExpectListedOnce(topicutil.ListPartitioned(client, tenant, namespace), name)

		metadata, err := client.PartitionedMetadata(context.Background(), tenant, namespace, topic)
		Expect(err).NotTo(HaveOccurred())
		Expect(metadata.Partitions).To(Equal(3))

		topicutil.DeletePartitioned(client, tenant, namespace, topic)
		topicutil.WaitUntilUnlisted(client.ListPartitioned, tenant, namespace, name, pollInterval, pollTimeout)
	})

	It("should reject a partitioned topic with no partitions", func() {
		err := client.CreatePartitioned(context.Background(), tenant, namespace, names.Unique("p"), 0)
		Expect(rest.IsClientError(err)).To(BeTrue(), "expected a 4xx, got %v", err)
	})

	It("should return a client error, not a decode error, for stats of a missing topic", func() {
		_, err := client.Stats(context.Background(), tenant, namespace, names.Unique("missing"))
		Expect(rest.IsClientError(err)).To(BeTrue(), "expected a 4xx, got %v", err)
		Expect(rest.IsDecodeError(err)).To(BeFalse())
	})
})
