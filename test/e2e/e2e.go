package e2e

import (
	gocontext "context"
	"flag"
	"net/http/httptest"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/glog"
	"k8s.io/apimachinery/pkg/util/wait"

	"github.com/mlab-lattice/pulsar-admin/pkg/api/client/rest"
	"github.com/mlab-lattice/pulsar-admin/pkg/api/server/mock"
	"github.com/mlab-lattice/pulsar-admin/pkg/api/server/mock/backend"
	restutil "github.com/mlab-lattice/pulsar-admin/pkg/util/rest"
	"github.com/mlab-lattice/pulsar-admin/test/e2e/context"

	// test sources
	_ "github.com/mlab-lattice/pulsar-admin/test/e2e/broker"
	_ "github.com/mlab-lattice/pulsar-admin/test/e2e/lookup"
	_ "github.com/mlab-lattice/pulsar-admin/test/e2e/namespace"
	_ "github.com/mlab-lattice/pulsar-admin/test/e2e/tenant"
	_ "github.com/mlab-lattice/pulsar-admin/test/e2e/topic"

	"github.com/onsi/ginkgo"
	"github.com/onsi/gomega"
)

var (
	configPath string
	host       string
	port       int
	tenant     string

	mockServer *httptest.Server
)

var _ = ginkgo.BeforeSuite(func() {
	switch {
	case configPath != "":
		config, err := rest.LoadConfig(configPath)
		gomega.Expect(err).NotTo(gomega.HaveOccurred(), "error loading client config")

		c, err := rest.NewClientFromConfig(config)
		gomega.Expect(err).NotTo(gomega.HaveOccurred(), "error creating client")
		context.SetClient(c, tenant)

	case host != "":
		c, err := rest.NewClient(host, int32(port), nil)
		gomega.Expect(err).NotTo(gomega.HaveOccurred(), "error creating client")
		context.SetClient(c, tenant)

	default:
		gin.SetMode(gin.ReleaseMode)
		mockServer = httptest.NewServer(mock.NewServer(backend.NewBackend()))

		u, err := url.Parse(mockServer.URL)
		gomega.Expect(err).NotTo(gomega.HaveOccurred())
		context.SetRESTClient(restutil.NewClient(u, mockServer.Client()), tenant)
	}

	glog.Infof("running e2e suite against %v", context.TestContext.BaseURL)

	err := wait.PollImmediate(time.Second, 30*time.Second, func() (bool, error) {
		healthy, err := context.TestContext.Client.Health(gocontext.Background())
		if err != nil {
			glog.V(2).Infof("broker not reachable yet: %v", err)
			return false, nil
		}
		return healthy, nil
	})
	gomega.Expect(err).NotTo(gomega.HaveOccurred(), "broker never became healthy")
})

var _ = ginkgo.AfterSuite(func() {
	if mockServer != nil {
		mockServer.Close()
	}
})

func init() {
	flag.StringVar(&configPath, "pulsar-config", "", "client config file; overrides -pulsar-host and -pulsar-port")
	flag.StringVar(&host, "pulsar-host", "", "host of a live broker (default: run against an in-process mock)")
	flag.IntVar(&port, "pulsar-port", int(rest.DefaultPort), "admin port of the live broker")
	flag.StringVar(&tenant, "pulsar-tenant", "public", "tenant to create test namespaces in")
}
