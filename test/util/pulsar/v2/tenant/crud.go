package tenant

import (
	"context"
	"fmt"

	v2client "github.com/mlab-lattice/pulsar-admin/pkg/api/client/v2"
	"github.com/mlab-lattice/pulsar-admin/pkg/api/v2"

	. "github.com/onsi/gomega"
)

func Create(client v2client.TenantClient, tenant string, info *v2.TenantInfo) {
	err := client.Create(context.Background(), tenant, info)
	Expect(err).NotTo(HaveOccurred(), fmt.Sprintf("error creating tenant %v", tenant))
}

func Get(client v2client.TenantClient, tenant string) *v2.TenantInfo {
	info, err := client.Get(context.Background(), tenant)
	Expect(err).NotTo(HaveOccurred(), fmt.Sprintf("error getting tenant %v", tenant))
	Expect(info).NotTo(BeNil(), "tenant info was nil")
	return info
}

func ExpectListed(client v2client.TenantClient, tenant string) {
	tenants, err := client.List(context.Background())
	Expect(err).NotTo(HaveOccurred(), "error listing tenants")
	Expect(tenants).To(ContainElement(tenant), fmt.Sprintf("tenant %v is not in the list", tenant))
}

func Delete(client v2client.TenantClient, tenant string) {
	err := client.Delete(context.Background(), tenant)
	Expect(err).NotTo(HaveOccurred(), fmt.Sprintf("error deleting tenant %v", tenant))
}
