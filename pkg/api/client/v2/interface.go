package v2

import (
	"context"

	"github.com/mlab-lattice/pulsar-admin/pkg/api/v2"
)

type Interface interface {
	Clusters() ClusterClient
	Tenants() TenantClient
	Namespaces() NamespaceClient
	PersistentTopics() PersistentTopicClient
	Lookup() LookupClient
}

type ClusterClient interface {
	List(ctx context.Context) ([]string, error)
}

type TenantClient interface {
	List(ctx context.Context) ([]string, error)
	Get(ctx context.Context, tenant string) (*v2.TenantInfo, error)
	Create(ctx context.Context, tenant string, info *v2.TenantInfo) error
	Delete(ctx context.Context, tenant string) error
}

type NamespaceClient interface {
	List(ctx context.Context, tenant string) ([]string, error)
	Create(ctx context.Context, tenant, namespace string) error
	Delete(ctx context.Context, tenant, namespace string) error
}

type PersistentTopicClient interface {
	// List returns the fully qualified names of every non-partitioned topic
	// in the namespace, including the individual partitions of partitioned
	// topics.
	List(ctx context.Context, tenant, namespace string) ([]string, error)
	Create(ctx context.Context, tenant, namespace, topic string) error
	Delete(ctx context.Context, tenant, namespace, topic string) error

	ListPartitioned(ctx context.Context, tenant, namespace string) ([]string, error)
	CreatePartitioned(ctx context.Context, tenant, namespace, topic string, partitions int) error
	DeletePartitioned(ctx context.Context, tenant, namespace, topic string) error
	PartitionedMetadata(ctx context.Context, tenant, namespace, topic string) (*v2.PartitionedTopicMetadata, error)

	Stats(ctx context.Context, tenant, namespace, topic string) (*v2.TopicStats, error)
}

type LookupClient interface {
	Topic(ctx context.Context, tenant, namespace, topic string) (*v2.LookupData, error)
}
