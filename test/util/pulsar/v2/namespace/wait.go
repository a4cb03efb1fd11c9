package namespace

import (
	"context"
	"time"

	v2client "github.com/mlab-lattice/pulsar-admin/pkg/api/client/v2"

	"k8s.io/apimachinery/pkg/util/wait"

	. "github.com/onsi/gomega"
)

func WaitUntilListed(client v2client.NamespaceClient, tenant, namespace string, interval, timeout time.Duration) {
	err := wait.PollImmediate(interval, timeout, func() (bool, error) {
		return listed(client, tenant, namespace)
	})
	Expect(err).NotTo(HaveOccurred(), "namespace %v was never listed", qualified(tenant, namespace))
}

func WaitUntilDeleted(client v2client.NamespaceClient, tenant, namespace string, interval, timeout time.Duration) {
	err := wait.PollImmediate(interval, timeout, func() (bool, error) {
		found, err := listed(client, tenant, namespace)
		return !found, err
	})
	Expect(err).NotTo(HaveOccurred(), "namespace %v was still listed", qualified(tenant, namespace))
}

func listed(client v2client.NamespaceClient, tenant, namespace string) (bool, error) {
	namespaces, err := client.List(context.Background(), tenant)
	if err != nil {
		return false, err
	}

	for _, n := range namespaces {
		if n == qualified(tenant, namespace) {
			return true, nil
		}
	}
	return false, nil
}
