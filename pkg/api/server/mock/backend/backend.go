package backend

import (
	"sort"
	"sync"

	set "github.com/deckarep/golang-set"

	"github.com/mlab-lattice/pulsar-admin/pkg/api/v2"
)

const (
	DefaultCluster = "standalone"

	defaultBrokerHost       = "localhost"
	defaultBrokerServiceURL = "pulsar://localhost:6650"
	defaultWebServiceURL    = "http://localhost:8080"
)

type Options struct {
	// listeners reported by topic lookups and stats
	BrokerServiceURL string
	WebServiceURL    string
	OwnerBroker      string
}

type namespaceRecord struct {
	// non-partitioned topics, including the partitions of partitioned ones
	topics map[string]*v2.TopicStats
	// partitioned topic name -> partition count
	partitioned map[string]int
}

type tenantRecord struct {
	info       v2.TenantInfo
	namespaces map[string]*namespaceRecord
}

// Backend is an in-memory model of the subset of broker state reachable
// through the admin API. It is safe for concurrent use.
type Backend struct {
	options  Options
	clusters set.Set
	registry map[string]*tenantRecord
	sync.Mutex
}

func NewBackend() *Backend {
	return NewBackendWithOptions(Options{
		BrokerServiceURL: defaultBrokerServiceURL,
		WebServiceURL:    defaultWebServiceURL,
		OwnerBroker:      defaultBrokerHost + ":8080",
	})
}

// NewBackendWithOptions returns a backend seeded like a fresh standalone
// broker: one cluster, the public and pulsar tenants and their namespaces.
func NewBackendWithOptions(options Options) *Backend {
	b := &Backend{
		options:  options,
		clusters: set.NewSet(DefaultCluster),
		registry: make(map[string]*tenantRecord),
	}

	for tenant, namespaces := range map[string][]string{
		"public": {"default", "functions"},
		"pulsar": {"system"},
	} {
		record := newTenantRecord(v2.TenantInfo{
			AdminRoles:      []string{},
			AllowedClusters: []string{DefaultCluster},
		})
		for _, namespace := range namespaces {
			record.namespaces[namespace] = newNamespaceRecord()
		}
		b.registry[tenant] = record
	}

	return b
}

func newTenantRecord(info v2.TenantInfo) *tenantRecord {
	return &tenantRecord{
		info:       info,
		namespaces: make(map[string]*namespaceRecord),
	}
}

func newNamespaceRecord() *namespaceRecord {
	return &namespaceRecord{
		topics:      make(map[string]*v2.TopicStats),
		partitioned: make(map[string]int),
	}
}

func (b *Backend) ListClusters() []string {
	b.Lock()
	defer b.Unlock()

	var clusters []string
	for _, c := range b.clusters.ToSlice() {
		clusters = append(clusters, c.(string))
	}

	sort.Strings(clusters)
	return clusters
}

func (b *Backend) ListTenants() []string {
	b.Lock()
	defer b.Unlock()

	tenants := make([]string, 0, len(b.registry))
	for tenant := range b.registry {
		tenants = append(tenants, tenant)
	}

	sort.Strings(tenants)
	return tenants
}

func (b *Backend) GetTenant(tenant string) (*v2.TenantInfo, error) {
	b.Lock()
	defer b.Unlock()

	record, err := b.tenantRecord(tenant)
	if err != nil {
		return nil, err
	}

	info := record.info
	return &info, nil
}

func (b *Backend) CreateTenant(tenant string, info v2.TenantInfo) error {
	b.Lock()
	defer b.Unlock()

	if _, exists := b.registry[tenant]; exists {
		return newAlreadyExistsError("Tenant already exists")
	}

	for _, cluster := range info.AllowedClusters {
		if !b.clusters.Contains(cluster) {
			return newInvalidError("Clusters do not exist")
		}
	}

	if info.AdminRoles == nil {
		info.AdminRoles = []string{}
	}
	if info.AllowedClusters == nil {
		info.AllowedClusters = []string{}
	}

	b.registry[tenant] = newTenantRecord(info)
	return nil
}

func (b *Backend) DeleteTenant(tenant string) error {
	b.Lock()
	defer b.Unlock()

	record, err := b.tenantRecord(tenant)
	if err != nil {
		return err
	}

	if len(record.namespaces) != 0 {
		return newNotEmptyError("The tenant still has active namespaces")
	}

	delete(b.registry, tenant)
	return nil
}

// ListNamespaces returns tenant/namespace pairs.
func (b *Backend) ListNamespaces(tenant string) ([]string, error) {
	b.Lock()
	defer b.Unlock()

	record, err := b.tenantRecord(tenant)
	if err != nil {
		return nil, err
	}

	namespaces := make([]string, 0, len(record.namespaces))
	for namespace := range record.namespaces {
		namespaces = append(namespaces, tenant+"/"+namespace)
	}

	sort.Strings(namespaces)
	return namespaces, nil
}

func (b *Backend) CreateNamespace(tenant, namespace string) error {
	b.Lock()
	defer b.Unlock()

	record, err := b.tenantRecord(tenant)
	if err != nil {
		return err
	}

	if _, exists := record.namespaces[namespace]; exists {
		return newAlreadyExistsError("Namespace already exists")
	}

	record.namespaces[namespace] = newNamespaceRecord()
	return nil
}

func (b *Backend) DeleteNamespace(tenant, namespace string) error {
	b.Lock()
	defer b.Unlock()

	record, err := b.namespaceRecord(tenant, namespace)
	if err != nil {
		return err
	}

	if len(record.topics) != 0 || len(record.partitioned) != 0 {
		return newNotEmptyError("Cannot delete non empty namespace")
	}

	delete(b.registry[tenant].namespaces, namespace)
	return nil
}

// ListTopics returns the fully qualified names of every non-partitioned
// topic, partitions included.
func (b *Backend) ListTopics(tenant, namespace string) ([]string, error) {
	b.Lock()
	defer b.Unlock()

	record, err := b.namespaceRecord(tenant, namespace)
	if err != nil {
		return nil, err
	}

	topics := make([]string, 0, len(record.topics))
	for topic := range record.topics {
		topics = append(topics, v2.PersistentTopicName(tenant, namespace, topic))
	}

	sort.Strings(topics)
	return topics, nil
}

func (b *Backend) CreateTopic(tenant, namespace, topic string) error {
	b.Lock()
	defer b.Unlock()

	record, err := b.namespaceRecord(tenant, namespace)
	if err != nil {
		return err
	}

	if _, exists := record.topics[topic]; exists {
		return newAlreadyExistsError("This topic already exists")
	}
	if _, exists := record.partitioned[topic]; exists {
		return newAlreadyExistsError("This topic already exists")
	}

	record.topics[topic] = b.newTopicStats()
	return nil
}

func (b *Backend) DeleteTopic(tenant, namespace, topic string) error {
	b.Lock()
	defer b.Unlock()

	record, err := b.namespaceRecord(tenant, namespace)
	if err != nil {
		return err
	}

	if _, exists := record.topics[topic]; !exists {
		return newNotFoundError("Topic not found")
	}

	delete(record.topics, topic)
	return nil
}

func (b *Backend) ListPartitionedTopics(tenant, namespace string) ([]string, error) {
	b.Lock()
	defer b.Unlock()

	record, err := b.namespaceRecord(tenant, namespace)
	if err != nil {
		return nil, err
	}

	topics := make([]string, 0, len(record.partitioned))
	for topic := range record.partitioned {
		topics = append(topics, v2.PersistentTopicName(tenant, namespace, topic))
	}

	sort.Strings(topics)
	return topics, nil
}

func (b *Backend) CreatePartitionedTopic(tenant, namespace, topic string, partitions int) error {
	b.Lock()
	defer b.Unlock()

	if partitions <= 0 {
		return newInvalidError("The number of partitions must be more than 0")
	}

	record, err := b.namespaceRecord(tenant, namespace)
	if err != nil {
		return err
	}

	if _, exists := record.partitioned[topic]; exists {
		return newAlreadyExistsError("Partitioned topic already exists")
	}
	if _, exists := record.topics[topic]; exists {
		return newAlreadyExistsError("This topic already exists")
	}

	record.partitioned[topic] = partitions
	for i := 0; i < partitions; i++ {
		record.topics[v2.PartitionName(topic, i)] = b.newTopicStats()
	}
	return nil
}

func (b *Backend) DeletePartitionedTopic(tenant, namespace, topic string) error {
	b.Lock()
	defer b.Unlock()

	record, err := b.namespaceRecord(tenant, namespace)
	if err != nil {
		return err
	}

	partitions, exists := record.partitioned[topic]
	if !exists {
		return newNotFoundError("Partitioned topic does not exist")
	}

	for i := 0; i < partitions; i++ {
		delete(record.topics, v2.PartitionName(topic, i))
	}
	delete(record.partitioned, topic)
	return nil
}

// PartitionedTopicMetadata reports zero partitions for a non-partitioned
// topic, as the broker does.
func (b *Backend) PartitionedTopicMetadata(tenant, namespace, topic string) (*v2.PartitionedTopicMetadata, error) {
	b.Lock()
	defer b.Unlock()

	record, err := b.namespaceRecord(tenant, namespace)
	if err != nil {
		return nil, err
	}

	if partitions, exists := record.partitioned[topic]; exists {
		return &v2.PartitionedTopicMetadata{Partitions: partitions}, nil
	}
	if _, exists := record.topics[topic]; exists {
		return &v2.PartitionedTopicMetadata{Partitions: 0}, nil
	}

	return nil, newNotFoundError("Topic not found")
}

func (b *Backend) TopicStats(tenant, namespace, topic string) (*v2.TopicStats, error) {
	b.Lock()
	defer b.Unlock()

	record, err := b.namespaceRecord(tenant, namespace)
	if err != nil {
		return nil, err
	}

	stats, exists := record.topics[topic]
	if !exists {
		return nil, newNotFoundError("Topic not found")
	}

	result := *stats
	return &result, nil
}

func (b *Backend) LookupTopic(tenant, namespace, topic string) (*v2.LookupData, error) {
	b.Lock()
	defer b.Unlock()

	if _, err := b.namespaceRecord(tenant, namespace); err != nil {
		return nil, err
	}

	return &v2.LookupData{
		BrokerURL: b.options.BrokerServiceURL,
		HTTPURL:   b.options.WebServiceURL,
	}, nil
}

func (b *Backend) newTopicStats() *v2.TopicStats {
	return &v2.TopicStats{
		Publishers:          []v2.PublisherStats{},
		Subscriptions:       map[string]v2.SubscriptionStats{},
		Replication:         map[string]v2.ReplicatorStats{},
		DeduplicationStatus: v2.DeduplicationStatusDisabled,
		OwnerBroker:         b.options.OwnerBroker,
	}
}

func (b *Backend) tenantRecord(tenant string) (*tenantRecord, error) {
	record, ok := b.registry[tenant]
	if !ok {
		return nil, newNotFoundError("Tenant does not exist")
	}

	return record, nil
}

func (b *Backend) namespaceRecord(tenant, namespace string) (*namespaceRecord, error) {
	t, err := b.tenantRecord(tenant)
	if err != nil {
		return nil, err
	}

	record, ok := t.namespaces[namespace]
	if !ok {
		return nil, newNotFoundError("Namespace does not exist")
	}

	return record, nil
}
