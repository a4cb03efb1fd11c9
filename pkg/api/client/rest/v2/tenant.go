package v2

import (
	"context"
	"encoding/json"

	"github.com/mlab-lattice/pulsar-admin/pkg/api/v2"
	"github.com/mlab-lattice/pulsar-admin/pkg/util/rest"
)

type TenantClient struct {
	restClient rest.Client
}

func newTenantClient(c rest.Client) *TenantClient {
	return &TenantClient{
		restClient: c,
	}
}

func (c *TenantClient) List(ctx context.Context) ([]string, error) {
	return queryList(ctx, c.restClient, listTenants)
}

func (c *TenantClient) Get(ctx context.Context, tenant string) (*v2.TenantInfo, error) {
	info, err := query[v2.TenantInfo](ctx, c.restClient, getTenant, tenant)
	if err != nil {
		return nil, err
	}
	return &info, nil
}

// Create creates a tenant. A nil info creates the tenant with no admin
// roles and no allowed clusters.
func (c *TenantClient) Create(ctx context.Context, tenant string, info *v2.TenantInfo) error {
	if info == nil {
		info = &v2.TenantInfo{}
	}

	requestJSON, err := json.Marshal(info)
	if err != nil {
		return err
	}

	return exec(ctx, c.restClient, createTenant, requestJSON, tenant)
}

func (c *TenantClient) Delete(ctx context.Context, tenant string) error {
	return exec(ctx, c.restClient, deleteTenant, nil, tenant)
}
