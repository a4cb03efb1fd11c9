package namespace

import (
	"context"
	"fmt"
	"time"

	v2client "github.com/mlab-lattice/pulsar-admin/pkg/api/client/v2"

	. "github.com/onsi/gomega"

	set "github.com/deckarep/golang-set"
)

func qualified(tenant, namespace string) string {
	return fmt.Sprintf("%v/%v", tenant, namespace)
}

func Create(client v2client.NamespaceClient, tenant, namespace string) {
	err := client.Create(context.Background(), tenant, namespace)
	Expect(err).NotTo(HaveOccurred(), fmt.Sprintf("error creating namespace %v", qualified(tenant, namespace)))
}

func CreateSuccessfully(client v2client.NamespaceClient, tenant, namespace string, interval, timeout time.Duration) {
	Create(client, tenant, namespace)
	WaitUntilListed(client, tenant, namespace, interval, timeout)
}

// List checks that the tenant's namespaces are exactly expected, given as
// bare namespace names.
func List(client v2client.NamespaceClient, tenant string, expected []string) {
	namespaces, err := client.List(context.Background(), tenant)
	Expect(err).NotTo(HaveOccurred(), "error listing namespaces")

	Expect(len(namespaces)).To(Equal(len(expected)), "namespace list does not have the expected number of results")

	expectedSet := set.NewSet()
	seen := set.NewSet()

	for _, namespace := range expected {
		expectedSet.Add(qualified(tenant, namespace))
	}

	for _, namespace := range namespaces {
		Expect(expectedSet.Contains(namespace)).To(BeTrue(), fmt.Sprintf("namespace %v is in the list but not in the list of expected namespaces", namespace))

		Expect(seen.Contains(namespace)).To(BeFalse(), fmt.Sprintf("namespace %v was repeated in the list", namespace))
		seen.Add(namespace)
	}
}

func Delete(client v2client.NamespaceClient, tenant, namespace string) {
	err := client.Delete(context.Background(), tenant, namespace)
	Expect(err).NotTo(HaveOccurred(), fmt.Sprintf("error deleting namespace %v", qualified(tenant, namespace)))
}

func DeleteSuccessfully(client v2client.NamespaceClient, tenant, namespace string, interval, timeout time.Duration) {
	Delete(client, tenant, namespace)
	WaitUntilDeleted(client, tenant, namespace, interval, timeout)
}
