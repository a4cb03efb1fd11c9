package v2

import (
	"context"

	"github.com/mlab-lattice/pulsar-admin/pkg/util/rest"
)

type ClusterClient struct {
	restClient rest.Client
}

func newClusterClient(c rest.Client) *ClusterClient {
	return &ClusterClient{
		restClient: c,
	}
}

func (c *ClusterClient) List(ctx context.Context) ([]string, error) {
	return queryList(ctx, c.restClient, listClusters)
}
