package v2

import (
	"fmt"
)

const (
	TopicDomainPersistent = "persistent"

	partitionSuffixFormat = "%v-partition-%v"
)

// PersistentTopicName returns the fully qualified name the broker reports
// for a topic, e.g. persistent://public/default/orders.
func PersistentTopicName(tenant, namespace, topic string) string {
	return fmt.Sprintf("%v://%v/%v/%v", TopicDomainPersistent, tenant, namespace, topic)
}

// PartitionName returns the name of the i-th partition of a partitioned
// topic. Partitions are listed as ordinary topics under this name.
func PartitionName(topic string, i int) string {
	return fmt.Sprintf(partitionSuffixFormat, topic, i)
}
