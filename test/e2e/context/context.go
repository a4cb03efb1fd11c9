package context

import (
	"github.com/mlab-lattice/pulsar-admin/pkg/api/client"
	"github.com/mlab-lattice/pulsar-admin/pkg/api/client/rest"
	restutil "github.com/mlab-lattice/pulsar-admin/pkg/util/rest"
)

type TestContextType struct {
	BaseURL string
	Client  client.Interface

	// tenant the suite creates its namespaces in
	Tenant string
}

var TestContext TestContextType

func SetClient(c *rest.Client, tenant string) {
	TestContext.BaseURL = c.BaseURL()
	TestContext.Client = c
	TestContext.Tenant = tenant
}

// SetRESTClient points the suite at an already constructed transport, e.g.
// one talking to an in-process server.
func SetRESTClient(c restutil.Client, tenant string) {
	SetClient(rest.NewClientForREST(c), tenant)
}
