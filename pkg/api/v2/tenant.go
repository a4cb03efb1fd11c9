package v2

type TenantInfo struct {
	AdminRoles      []string `json:"adminRoles"`
	AllowedClusters []string `json:"allowedClusters"`
}

type PartitionedTopicMetadata struct {
	Partitions int `json:"partitions"`
}
