package v2

import (
	"context"

	"github.com/mlab-lattice/pulsar-admin/pkg/util/rest"
)

type NamespaceClient struct {
	restClient rest.Client
}

func newNamespaceClient(c rest.Client) *NamespaceClient {
	return &NamespaceClient{
		restClient: c,
	}
}

// List returns the namespaces of tenant as tenant/namespace pairs.
func (c *NamespaceClient) List(ctx context.Context, tenant string) ([]string, error) {
	return queryList(ctx, c.restClient, listNamespaces, tenant)
}

func (c *NamespaceClient) Create(ctx context.Context, tenant, namespace string) error {
	return exec(ctx, c.restClient, createNamespace, nil, tenant, namespace)
}

func (c *NamespaceClient) Delete(ctx context.Context, tenant, namespace string) error {
	return exec(ctx, c.restClient, deleteNamespace, nil, tenant, namespace)
}
