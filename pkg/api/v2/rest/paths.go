package rest

const (
	AdminRootPath  = "/admin/v2"
	LookupRootPath = "/lookup/v2"

	ClustersPath = AdminRootPath + "/clusters"

	BrokersPath       = AdminRootPath + "/brokers"
	BrokerHealthPath  = BrokersPath + "/health"
	BrokerVersionPath = BrokersPath + "/version"

	TenantsPath      = AdminRootPath + "/tenants"
	TenantPathFormat = TenantsPath + "/%v"

	NamespacesPath             = AdminRootPath + "/namespaces"
	TenantNamespacesPathFormat = NamespacesPath + "/%v"
	NamespacePathFormat        = TenantNamespacesPathFormat + "/%v"

	PersistentPath                 = AdminRootPath + "/persistent"
	PersistentTopicsPathFormat     = PersistentPath + "/%v/%v"
	PersistentTopicPathFormat      = PersistentTopicsPathFormat + "/%v"
	PartitionedTopicsPathFormat    = PersistentTopicsPathFormat + "/partitioned"
	PartitionedTopicPathFormat     = PersistentTopicPathFormat + "/partitions"
	PersistentTopicStatsPathFormat = PersistentTopicPathFormat + "/stats"

	LookupTopicPath                 = LookupRootPath + "/topic"
	LookupPersistentTopicPathFormat = LookupTopicPath + "/persistent/%v/%v/%v"
)
