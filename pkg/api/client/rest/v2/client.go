package v2

import (
	v2client "github.com/mlab-lattice/pulsar-admin/pkg/api/client/v2"
	"github.com/mlab-lattice/pulsar-admin/pkg/util/rest"
)

// Client hands out resource clients that all share one rest.Client. The
// resource clients are stateless and may be kept for as long as needed.
type Client struct {
	restClient rest.Client
}

func NewClient(client rest.Client) *Client {
	return &Client{
		restClient: client,
	}
}

func (c *Client) Clusters() v2client.ClusterClient {
	return newClusterClient(c.restClient)
}

func (c *Client) Tenants() v2client.TenantClient {
	return newTenantClient(c.restClient)
}

func (c *Client) Namespaces() v2client.NamespaceClient {
	return newNamespaceClient(c.restClient)
}

func (c *Client) PersistentTopics() v2client.PersistentTopicClient {
	return newPersistentTopicClient(c.restClient)
}

func (c *Client) Lookup() v2client.LookupClient {
	return newLookupClient(c.restClient)
}
