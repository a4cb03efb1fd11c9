package mock

import (
	"encoding/json"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/mlab-lattice/pulsar-admin/pkg/api/server/mock/backend"
	"github.com/mlab-lattice/pulsar-admin/pkg/api/v2"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type exchange struct {
	method      string
	path        string
	contentType string
	body        string

	expectedStatus int
}

func newTestServer(t *testing.T) *httptest.Server {
	server := httptest.NewServer(NewServer(backend.NewBackend()))
	t.Cleanup(server.Close)
	return server
}

func do(t *testing.T, server *httptest.Server, e exchange) []byte {
	t.Helper()

	request, err := http.NewRequest(e.method, server.URL+e.path, strings.NewReader(e.body))
	if err != nil {
		t.Fatalf("unexpected error building request: %v", err)
	}
	if e.contentType != "" {
		request.Header.Set("Content-Type", e.contentType)
	}

	response, err := server.Client().Do(request)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer response.Body.Close()

	body, err := ioutil.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("unexpected error reading body: %v", err)
	}

	if response.StatusCode != e.expectedStatus {
		t.Fatalf("%v %v: expected status %v but got %v (%s)", e.method, e.path, e.expectedStatus, response.StatusCode, body)
	}

	return body
}

func TestMockServer_NamespaceLifecycle(t *testing.T) {
	server := newTestServer(t)

	steps := []exchange{
		{http.MethodPut, "/admin/v2/namespaces/public/orders", "application/json", "", http.StatusNoContent},
		{http.MethodPut, "/admin/v2/namespaces/public/orders", "application/json", "", http.StatusConflict},
		{http.MethodPut, "/admin/v2/persistent/public/orders/t1", "application/json", "", http.StatusNoContent},
		// a namespace holding topics cannot be removed
		{http.MethodDelete, "/admin/v2/namespaces/public/orders", "", "", http.StatusConflict},
		{http.MethodDelete, "/admin/v2/persistent/public/orders/t1", "", "", http.StatusNoContent},
		{http.MethodDelete, "/admin/v2/persistent/public/orders/t1", "", "", http.StatusNotFound},
		{http.MethodDelete, "/admin/v2/namespaces/public/orders", "", "", http.StatusNoContent},
		{http.MethodDelete, "/admin/v2/namespaces/public/orders", "", "", http.StatusNotFound},
	}

	for _, step := range steps {
		do(t, server, step)
	}
}

func TestMockServer_RequiresJSONContentType(t *testing.T) {
	server := newTestServer(t)

	body := do(t, server, exchange{
		method:         http.MethodPut,
		path:           "/admin/v2/persistent/public/default/t1",
		contentType:    "text/plain",
		expectedStatus: http.StatusUnsupportedMediaType,
	})

	var response ErrorResponse
	if err := json.Unmarshal(body, &response); err != nil {
		t.Fatalf("expected a JSON error body, got %s", body)
	}
	if response.Reason == "" {
		t.Errorf("expected a reason in %s", body)
	}

	do(t, server, exchange{
		method:         http.MethodPut,
		path:           "/admin/v2/persistent/public/default/t1",
		contentType:    "application/json; charset=utf-8",
		expectedStatus: http.StatusNoContent,
	})
}

func TestMockServer_PartitionedTopics(t *testing.T) {
	server := newTestServer(t)

	do(t, server, exchange{http.MethodPut, "/admin/v2/persistent/public/default/p/partitions", "application/json", "3", http.StatusNoContent})
	do(t, server, exchange{http.MethodPut, "/admin/v2/persistent/public/default/p/partitions", "application/json", "3", http.StatusConflict})
	do(t, server, exchange{http.MethodPut, "/admin/v2/persistent/public/default/q/partitions", "application/json", "0", http.StatusNotAcceptable})
	do(t, server, exchange{http.MethodPut, "/admin/v2/persistent/public/default/q/partitions", "application/json", "three", http.StatusBadRequest})

	var partitioned []string
	body := do(t, server, exchange{method: http.MethodGet, path: "/admin/v2/persistent/public/default/partitioned", expectedStatus: http.StatusOK})
	if err := json.Unmarshal(body, &partitioned); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(partitioned) != 1 || partitioned[0] != "persistent://public/default/p" {
		t.Errorf("unexpected partitioned topics %v", partitioned)
	}

	var topics []string
	body = do(t, server, exchange{method: http.MethodGet, path: "/admin/v2/persistent/public/default", expectedStatus: http.StatusOK})
	if err := json.Unmarshal(body, &topics); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(topics) != 3 || topics[0] != "persistent://public/default/p-partition-0" {
		t.Errorf("unexpected topics %v", topics)
	}

	var metadata v2.PartitionedTopicMetadata
	body = do(t, server, exchange{method: http.MethodGet, path: "/admin/v2/persistent/public/default/p/partitions", expectedStatus: http.StatusOK})
	if err := json.Unmarshal(body, &metadata); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if metadata.Partitions != 3 {
		t.Errorf("expected 3 partitions but got %v", metadata.Partitions)
	}

	do(t, server, exchange{method: http.MethodDelete, path: "/admin/v2/persistent/public/default/p/partitions", expectedStatus: http.StatusNoContent})
	do(t, server, exchange{method: http.MethodGet, path: "/admin/v2/persistent/public/default/p/partitions", expectedStatus: http.StatusNotFound})

	body = do(t, server, exchange{method: http.MethodGet, path: "/admin/v2/persistent/public/default", expectedStatus: http.StatusOK})
	if strings.TrimSpace(string(body)) != "[]" {
		t.Errorf("expected partitions to be removed, got %s", body)
	}
}

func TestMockServer_TopicGetIsNotAllowed(t *testing.T) {
	server := newTestServer(t)

	do(t, server, exchange{method: http.MethodGet, path: "/admin/v2/persistent/public/default/t1", expectedStatus: http.StatusMethodNotAllowed})
}

func TestMockServer_EscapedIdentifiers(t *testing.T) {
	server := newTestServer(t)

	do(t, server, exchange{http.MethodPut, "/admin/v2/persistent/public/default/a%20b", "application/json", "", http.StatusNoContent})

	var topics []string
	body := do(t, server, exchange{method: http.MethodGet, path: "/admin/v2/persistent/public/default", expectedStatus: http.StatusOK})
	if err := json.Unmarshal(body, &topics); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(topics) != 1 || topics[0] != "persistent://public/default/a b" {
		t.Errorf("unexpected topics %v", topics)
	}
}

func TestMockServer_StatsAndLookup(t *testing.T) {
	server := newTestServer(t)

	do(t, server, exchange{method: http.MethodGet, path: "/admin/v2/persistent/public/default/t1/stats", expectedStatus: http.StatusNotFound})
	do(t, server, exchange{http.MethodPut, "/admin/v2/persistent/public/default/t1", "application/json", "", http.StatusNoContent})

	var stats v2.TopicStats
	body := do(t, server, exchange{method: http.MethodGet, path: "/admin/v2/persistent/public/default/t1/stats", expectedStatus: http.StatusOK})
	if err := json.Unmarshal(body, &stats); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.DeduplicationStatus != v2.DeduplicationStatusDisabled || stats.Subscriptions == nil {
		t.Errorf("unexpected stats %+v", stats)
	}

	var lookup v2.LookupData
	body = do(t, server, exchange{method: http.MethodGet, path: "/lookup/v2/topic/persistent/public/default/t1", expectedStatus: http.StatusOK})
	if err := json.Unmarshal(body, &lookup); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(lookup.BrokerURL, "pulsar://") {
		t.Errorf("unexpected broker url %v", lookup.BrokerURL)
	}

	do(t, server, exchange{method: http.MethodGet, path: "/lookup/v2/topic/persistent/public/missing/t1", expectedStatus: http.StatusNotFound})
}

func TestMockServer_Tenants(t *testing.T) {
	server := newTestServer(t)

	do(t, server, exchange{http.MethodPut, "/admin/v2/tenants/acme", "application/json", `{"allowedClusters":["standalone"]}`, http.StatusNoContent})
	do(t, server, exchange{http.MethodPut, "/admin/v2/tenants/other", "application/json", `{"allowedClusters":["nowhere"]}`, http.StatusNotAcceptable})
	do(t, server, exchange{http.MethodPut, "/admin/v2/tenants/other", "application/json", `{`, http.StatusBadRequest})

	var info v2.TenantInfo
	body := do(t, server, exchange{method: http.MethodGet, path: "/admin/v2/tenants/acme", expectedStatus: http.StatusOK})
	if err := json.Unmarshal(body, &info); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(info.AllowedClusters) != 1 || info.AllowedClusters[0] != backend.DefaultCluster {
		t.Errorf("unexpected tenant info %+v", info)
	}

	do(t, server, exchange{method: http.MethodDelete, path: "/admin/v2/tenants/public", expectedStatus: http.StatusConflict})
	do(t, server, exchange{method: http.MethodDelete, path: "/admin/v2/tenants/acme", expectedStatus: http.StatusNoContent})
	do(t, server, exchange{method: http.MethodGet, path: "/admin/v2/tenants/acme", expectedStatus: http.StatusNotFound})
}

func TestMockServer_Broker(t *testing.T) {
	server := newTestServer(t)

	body := do(t, server, exchange{method: http.MethodGet, path: "/admin/v2/brokers/health", expectedStatus: http.StatusOK})
	if string(body) != "ok" {
		t.Errorf("unexpected health response %q", body)
	}

	body = do(t, server, exchange{method: http.MethodGet, path: "/admin/v2/brokers/version", expectedStatus: http.StatusOK})
	if string(body) != Version {
		t.Errorf("unexpected version %q", body)
	}

	body = do(t, server, exchange{method: http.MethodGet, path: "/admin/v2/clusters", expectedStatus: http.StatusOK})
	if strings.TrimSpace(string(body)) != `["standalone"]` {
		t.Errorf("unexpected clusters %s", body)
	}
}
