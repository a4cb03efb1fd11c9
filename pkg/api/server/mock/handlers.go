package mock

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mlab-lattice/pulsar-admin/pkg/api/server/mock/backend"
	"github.com/mlab-lattice/pulsar-admin/pkg/api/v2"
	v2rest "github.com/mlab-lattice/pulsar-admin/pkg/api/v2/rest"
	"github.com/mlab-lattice/pulsar-admin/pkg/util/rest"
)

const (
	Version = "3.1.0"

	tenantIdentifier    = "tenant"
	namespaceIdentifier = "namespace"
	topicIdentifier     = "topic"

	// the broker routes GET .../{namespace}/partitioned through the same
	// path as a topic named "partitioned"
	partitionedSegment = "partitioned"
)

var (
	tenantPathComponent    = fmt.Sprintf(":%v", tenantIdentifier)
	namespacePathComponent = fmt.Sprintf(":%v", namespaceIdentifier)
	topicPathComponent     = fmt.Sprintf(":%v", topicIdentifier)
)

func mountHandlers(router *gin.Engine, b *backend.Backend) {
	mountBrokerHandlers(router)
	mountClusterHandlers(router, b)
	mountTenantHandlers(router, b)
	mountNamespaceHandlers(router, b)
	mountPersistentTopicHandlers(router, b)
	mountLookupHandlers(router, b)
}

func mountBrokerHandlers(router *gin.Engine) {
	// broker-health
	router.GET(v2rest.BrokerHealthPath, func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	// broker-version
	router.GET(v2rest.BrokerVersionPath, func(c *gin.Context) {
		c.String(http.StatusOK, Version)
	})
}

func mountClusterHandlers(router *gin.Engine, b *backend.Backend) {
	// list-clusters
	router.GET(v2rest.ClustersPath, func(c *gin.Context) {
		c.JSON(http.StatusOK, b.ListClusters())
	})
}

func mountTenantHandlers(router *gin.Engine, b *backend.Backend) {
	// list-tenants
	router.GET(v2rest.TenantsPath, func(c *gin.Context) {
		c.JSON(http.StatusOK, b.ListTenants())
	})

	tenantPath := fmt.Sprintf(v2rest.TenantPathFormat, tenantPathComponent)

	// get-tenant
	router.GET(tenantPath, func(c *gin.Context) {
		info, err := b.GetTenant(c.Param(tenantIdentifier))
		if err != nil {
			handleError(c, err)
			return
		}

		c.JSON(http.StatusOK, info)
	})

	// create-tenant
	router.PUT(tenantPath, func(c *gin.Context) {
		body, ok := readJSONBody(c)
		if !ok {
			return
		}

		var info v2.TenantInfo
		if err := json.Unmarshal(body, &info); err != nil {
			handleBadRequestBody(c)
			return
		}

		if err := b.CreateTenant(c.Param(tenantIdentifier), info); err != nil {
			handleError(c, err)
			return
		}

		c.Status(http.StatusNoContent)
	})

	// delete-tenant
	router.DELETE(tenantPath, func(c *gin.Context) {
		if err := b.DeleteTenant(c.Param(tenantIdentifier)); err != nil {
			handleError(c, err)
			return
		}

		c.Status(http.StatusNoContent)
	})
}

func mountNamespaceHandlers(router *gin.Engine, b *backend.Backend) {
	tenantNamespacesPath := fmt.Sprintf(v2rest.TenantNamespacesPathFormat, tenantPathComponent)

	// list-namespaces
	router.GET(tenantNamespacesPath, func(c *gin.Context) {
		namespaces, err := b.ListNamespaces(c.Param(tenantIdentifier))
		if err != nil {
			handleError(c, err)
			return
		}

		c.JSON(http.StatusOK, namespaces)
	})

	namespacePath := fmt.Sprintf(v2rest.NamespacePathFormat, tenantPathComponent, namespacePathComponent)

	// create-namespace
	router.PUT(namespacePath, func(c *gin.Context) {
		if _, ok := readJSONBody(c); !ok {
			return
		}

		err := b.CreateNamespace(c.Param(tenantIdentifier), c.Param(namespaceIdentifier))
		if err != nil {
			handleError(c, err)
			return
		}

		c.Status(http.StatusNoContent)
	})

	// delete-namespace
	router.DELETE(namespacePath, func(c *gin.Context) {
		err := b.DeleteNamespace(c.Param(tenantIdentifier), c.Param(namespaceIdentifier))
		if err != nil {
			handleError(c, err)
			return
		}

		c.Status(http.StatusNoContent)
	})
}

func mountPersistentTopicHandlers(router *gin.Engine, b *backend.Backend) {
	topicsPath := fmt.Sprintf(v2rest.PersistentTopicsPathFormat, tenantPathComponent, namespacePathComponent)

	// list-topics
	router.GET(topicsPath, func(c *gin.Context) {
		topics, err := b.ListTopics(c.Param(tenantIdentifier), c.Param(namespaceIdentifier))
		if err != nil {
			handleError(c, err)
			return
		}

		c.JSON(http.StatusOK, topics)
	})

	topicPath := fmt.Sprintf(
		v2rest.PersistentTopicPathFormat,
		tenantPathComponent,
		namespacePathComponent,
		topicPathComponent,
	)

	// list-partitioned-topics
	router.GET(topicPath, func(c *gin.Context) {
		if c.Param(topicIdentifier) != partitionedSegment {
			c.JSON(http.StatusMethodNotAllowed, &ErrorResponse{Reason: "method not allowed"})
			return
		}

		topics, err := b.ListPartitionedTopics(c.Param(tenantIdentifier), c.Param(namespaceIdentifier))
		if err != nil {
			handleError(c, err)
			return
		}

		c.JSON(http.StatusOK, topics)
	})

	// create-topic
	router.PUT(topicPath, func(c *gin.Context) {
		if _, ok := readJSONBody(c); !ok {
			return
		}

		err := b.CreateTopic(c.Param(tenantIdentifier), c.Param(namespaceIdentifier), c.Param(topicIdentifier))
		if err != nil {
			handleError(c, err)
			return
		}

		c.Status(http.StatusNoContent)
	})

	// delete-topic
	router.DELETE(topicPath, func(c *gin.Context) {
		err := b.DeleteTopic(c.Param(tenantIdentifier), c.Param(namespaceIdentifier), c.Param(topicIdentifier))
		if err != nil {
			handleError(c, err)
			return
		}

		c.Status(http.StatusNoContent)
	})

	partitionsPath := fmt.Sprintf(
		v2rest.PartitionedTopicPathFormat,
		tenantPathComponent,
		namespacePathComponent,
		topicPathComponent,
	)

	// get-partitioned-topic-metadata
	router.GET(partitionsPath, func(c *gin.Context) {
		metadata, err := b.PartitionedTopicMetadata(
			c.Param(tenantIdentifier),
			c.Param(namespaceIdentifier),
			c.Param(topicIdentifier),
		)
		if err != nil {
			handleError(c, err)
			return
		}

		c.JSON(http.StatusOK, metadata)
	})

	// create-partitioned-topic
	router.PUT(partitionsPath, func(c *gin.Context) {
		body, ok := readJSONBody(c)
		if !ok {
			return
		}

		partitions, err := strconv.Atoi(strings.TrimSpace(string(body)))
		if err != nil {
			handleBadRequestBody(c)
			return
		}

		err = b.CreatePartitionedTopic(
			c.Param(tenantIdentifier),
			c.Param(namespaceIdentifier),
			c.Param(topicIdentifier),
			partitions,
		)
		if err != nil {
			handleError(c, err)
			return
		}

		c.Status(http.StatusNoContent)
	})

	// delete-partitioned-topic
	router.DELETE(partitionsPath, func(c *gin.Context) {
		err := b.DeletePartitionedTopic(
			c.Param(tenantIdentifier),
			c.Param(namespaceIdentifier),
			c.Param(topicIdentifier),
		)
		if err != nil {
			handleError(c, err)
			return
		}

		c.Status(http.StatusNoContent)
	})

	statsPath := fmt.Sprintf(
		v2rest.PersistentTopicStatsPathFormat,
		tenantPathComponent,
		namespacePathComponent,
		topicPathComponent,
	)

	// get-topic-stats
	router.GET(statsPath, func(c *gin.Context) {
		stats, err := b.TopicStats(c.Param(tenantIdentifier), c.Param(namespaceIdentifier), c.Param(topicIdentifier))
		if err != nil {
			handleError(c, err)
			return
		}

		c.JSON(http.StatusOK, stats)
	})
}

func mountLookupHandlers(router *gin.Engine, b *backend.Backend) {
	lookupPath := fmt.Sprintf(
		v2rest.LookupPersistentTopicPathFormat,
		tenantPathComponent,
		namespacePathComponent,
		topicPathComponent,
	)

	// lookup-topic
	router.GET(lookupPath, func(c *gin.Context) {
		data, err := b.LookupTopic(c.Param(tenantIdentifier), c.Param(namespaceIdentifier), c.Param(topicIdentifier))
		if err != nil {
			handleError(c, err)
			return
		}

		c.JSON(http.StatusOK, data)
	})
}

// readJSONBody enforces the broker's rule that PUT bodies, even empty ones,
// are declared as JSON.
func readJSONBody(c *gin.Context) ([]byte, bool) {
	if c.ContentType() != rest.ContentTypeJSON {
		c.JSON(http.StatusUnsupportedMediaType, &ErrorResponse{Reason: "unsupported media type"})
		return nil, false
	}

	body, err := ioutil.ReadAll(c.Request.Body)
	if err != nil {
		handleBadRequestBody(c)
		return nil, false
	}

	return body, true
}
