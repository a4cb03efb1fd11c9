package topic

import (
	"context"
	"fmt"
	"time"

	v2client "github.com/mlab-lattice/pulsar-admin/pkg/api/client/v2"
	"github.com/mlab-lattice/pulsar-admin/pkg/api/v2"

	"k8s.io/apimachinery/pkg/util/wait"

	. "github.com/onsi/gomega"

	set "github.com/deckarep/golang-set"
)

func Create(client v2client.PersistentTopicClient, tenant, namespace, topic string) string {
	err := client.Create(context.Background(), tenant, namespace, topic)
	Expect(err).NotTo(HaveOccurred(), fmt.Sprintf("error creating topic %v", topic))
	return v2.PersistentTopicName(tenant, namespace, topic)
}

func CreatePartitioned(client v2client.PersistentTopicClient, tenant, namespace, topic string, partitions int) string {
	err := client.CreatePartitioned(context.Background(), tenant, namespace, topic, partitions)
	Expect(err).NotTo(HaveOccurred(), fmt.Sprintf("error creating partitioned topic %v", topic))
	return v2.PersistentTopicName(tenant, namespace, topic)
}

// ExpectListedOnce checks that name appears exactly once in names.
func ExpectListedOnce(names []string, name string) {
	count := 0
	for _, n := range names {
		if n == name {
			count++
		}
	}
	Expect(count).To(Equal(1), fmt.Sprintf("expected %v exactly once in %v", name, names))
}

// ExpectDistinct checks that no name is repeated.
func ExpectDistinct(names []string) {
	seen := set.NewSet()
	for _, name := range names {
		Expect(seen.Contains(name)).To(BeFalse(), fmt.Sprintf("topic %v was repeated in the list", name))
		seen.Add(name)
	}
}

func List(client v2client.PersistentTopicClient, tenant, namespace string) []string {
	names, err := client.List(context.Background(), tenant, namespace)
	Expect(err).NotTo(HaveOccurred(), "error listing topics")
	ExpectDistinct(names)
	return names
}

func ListPartitioned(client v2client.PersistentTopicClient, tenant, namespace string) []string {
	names, err := client.ListPartitioned(context.Background(), tenant, namespace)
	Expect(err).NotTo(HaveOccurred(), "error listing partitioned topics")
	ExpectDistinct(names)
	return names
}

func Stats(client v2client.PersistentTopicClient, tenant, namespace, topic string) *v2.TopicStats {
	stats, err := client.Stats(context.Background(), tenant, namespace, topic)
	Expect(err).NotTo(HaveOccurred(), fmt.Sprintf("error getting stats of %v", topic))
	Expect(stats).NotTo(BeNil(), "stats were nil")
	return stats
}

func Delete(client v2client.PersistentTopicClient, tenant, namespace, topic string) {
	err := client.Delete(context.Background(), tenant, namespace, topic)
	Expect(err).NotTo(HaveOccurred(), fmt.Sprintf("error deleting topic %v", topic))
}

func DeletePartitioned(client v2client.PersistentTopicClient, tenant, namespace, topic string) {
	err := client.DeletePartitioned(context.Background(), tenant, namespace, topic)
	Expect(err).NotTo(HaveOccurred(), fmt.Sprintf("error deleting partitioned topic %v", topic))
}

// WaitUntilUnlisted polls list until name is gone from it.
func WaitUntilUnlisted(
	list func(context.Context, string, string) ([]string, error),
	tenant, namespace, name string,
	interval, timeout time.Duration,
) {
	err := wait.PollImmediate(interval, timeout, func() (bool, error) {
		names, err := list(context.Background(), tenant, namespace)
		if err != nil {
			return false, err
		}

		return !set.NewSetFromSlice(toInterfaces(names)).Contains(name), nil
	})
	Expect(err).NotTo(HaveOccurred(), "topic %v was still listed", name)
}

func toInterfaces(names []string) []interface{} {
	result := make([]interface{}, len(names))
	for i, name := range names {
		result[i] = name
	}
	return result
}
