package v2

import (
	"context"
	"strconv"

	"github.com/mlab-lattice/pulsar-admin/pkg/api/v2"
	"github.com/mlab-lattice/pulsar-admin/pkg/util/rest"
)

type PersistentTopicClient struct {
	restClient rest.Client
}

func newPersistentTopicClient(c rest.Client) *PersistentTopicClient {
	return &PersistentTopicClient{
		restClient: c,
	}
}

func (c *PersistentTopicClient) List(ctx context.Context, tenant, namespace string) ([]string, error) {
	return queryList(ctx, c.restClient, listTopics, tenant, namespace)
}

func (c *PersistentTopicClient) Create(ctx context.Context, tenant, namespace, topic string) error {
	return exec(ctx, c.restClient, createTopic, nil, tenant, namespace, topic)
}

func (c *PersistentTopicClient) Delete(ctx context.Context, tenant, namespace, topic string) error {
	return exec(ctx, c.restClient, deleteTopic, nil, tenant, namespace, topic)
}

func (c *PersistentTopicClient) ListPartitioned(ctx context.Context, tenant, namespace string) ([]string, error) {
	return queryList(ctx, c.restClient, listPartitionedTopics, tenant, namespace)
}

// CreatePartitioned creates a topic with the given number of partitions.
// The count is sent as a bare integer body and validated by the broker.
func (c *PersistentTopicClient) CreatePartitioned(ctx context.Context, tenant, namespace, topic string, partitions int) error {
	body := []byte(strconv.Itoa(partitions))
	return exec(ctx, c.restClient, createPartitionedTopic, body, tenant, namespace, topic)
}

func (c *PersistentTopicClient) DeletePartitioned(ctx context.Context, tenant, namespace, topic string) error {
	return exec(ctx, c.restClient, deletePartitionedTopic, nil, tenant, namespace, topic)
}

func (c *PersistentTopicClient) PartitionedMetadata(
	ctx context.Context,
	tenant, namespace, topic string,
) (*v2.PartitionedTopicMetadata, error) {
	metadata, err := query[v2.PartitionedTopicMetadata](ctx, c.restClient, getPartitionedTopicMetadata, tenant, namespace, topic)
	if err != nil {
		return nil, err
	}
	return &metadata, nil
}

func (c *PersistentTopicClient) Stats(ctx context.Context, tenant, namespace, topic string) (*v2.TopicStats, error) {
	stats, err := query[v2.TopicStats](ctx, c.restClient, topicStats, tenant, namespace, topic)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
