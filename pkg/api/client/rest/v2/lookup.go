package v2

import (
	"context"

	"github.com/mlab-lattice/pulsar-admin/pkg/api/v2"
	"github.com/mlab-lattice/pulsar-admin/pkg/util/rest"
)

type LookupClient struct {
	restClient rest.Client
}

func newLookupClient(c rest.Client) *LookupClient {
	return &LookupClient{
		restClient: c,
	}
}

// Topic resolves the broker currently serving a persistent topic.
func (c *LookupClient) Topic(ctx context.Context, tenant, namespace, topic string) (*v2.LookupData, error) {
	data, err := query[v2.LookupData](ctx, c.restClient, lookupTopic, tenant, namespace, topic)
	if err != nil {
		return nil, err
	}
	return &data, nil
}
