package v2

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	v2rest "github.com/mlab-lattice/pulsar-admin/pkg/api/v2/rest"
	"github.com/mlab-lattice/pulsar-admin/pkg/util/rest"
)

// operation is one admin API call: a verb and a path format whose %v verbs
// are filled, in order, with path-escaped resource identifiers.
type operation struct {
	method string
	format string
}

var (
	listClusters = operation{http.MethodGet, v2rest.ClustersPath}

	listTenants  = operation{http.MethodGet, v2rest.TenantsPath}
	getTenant    = operation{http.MethodGet, v2rest.TenantPathFormat}
	createTenant = operation{http.MethodPut, v2rest.TenantPathFormat}
	deleteTenant = operation{http.MethodDelete, v2rest.TenantPathFormat}

	listNamespaces  = operation{http.MethodGet, v2rest.TenantNamespacesPathFormat}
	createNamespace = operation{http.MethodPut, v2rest.NamespacePathFormat}
	deleteNamespace = operation{http.MethodDelete, v2rest.NamespacePathFormat}

	listTopics  = operation{http.MethodGet, v2rest.PersistentTopicsPathFormat}
	createTopic = operation{http.MethodPut, v2rest.PersistentTopicPathFormat}
	deleteTopic = operation{http.MethodDelete, v2rest.PersistentTopicPathFormat}
	topicStats  = operation{http.MethodGet, v2rest.PersistentTopicStatsPathFormat}

	listPartitionedTopics       = operation{http.MethodGet, v2rest.PartitionedTopicsPathFormat}
	createPartitionedTopic      = operation{http.MethodPut, v2rest.PartitionedTopicPathFormat}
	deletePartitionedTopic      = operation{http.MethodDelete, v2rest.PartitionedTopicPathFormat}
	getPartitionedTopicMetadata = operation{http.MethodGet, v2rest.PartitionedTopicPathFormat}

	lookupTopic = operation{http.MethodGet, v2rest.LookupPersistentTopicPathFormat}
)

func (o operation) path(segments ...string) string {
	args := make([]interface{}, len(segments))
	for i, s := range segments {
		args[i] = url.PathEscape(s)
	}
	return fmt.Sprintf(o.format, args...)
}

// exec runs an operation whose response body is not needed.
func exec(ctx context.Context, c rest.Client, op operation, body []byte, segments ...string) error {
	path := op.path(segments...)

	switch op.method {
	case http.MethodPut:
		return c.PutJSON(ctx, path, body)

	case http.MethodDelete:
		return c.Delete(ctx, path)

	case http.MethodGet:
		_, err := c.Get(ctx, path)
		return err

	default:
		return fmt.Errorf("unsupported method %v", op.method)
	}
}

// query runs a GET operation and decodes the response body into T.
func query[T any](ctx context.Context, c rest.Client, op operation, segments ...string) (T, error) {
	var result T
	if op.method != http.MethodGet {
		return result, fmt.Errorf("cannot query with method %v", op.method)
	}

	path := op.path(segments...)
	body, err := c.Get(ctx, path)
	if err != nil {
		return result, err
	}

	err = rest.UnmarshalBodyJSON(path, body, &result)
	return result, err
}

// queryList decodes a JSON array of names. A null body is an empty list.
func queryList(ctx context.Context, c rest.Client, op operation, segments ...string) ([]string, error) {
	names, err := query[[]string](ctx, c, op, segments...)
	if err != nil {
		return nil, err
	}

	if names == nil {
		names = []string{}
	}
	return names, nil
}
