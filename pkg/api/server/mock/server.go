package mock

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/glog"

	"github.com/mlab-lattice/pulsar-admin/pkg/api/server/mock/backend"
)

// NewServer returns a handler serving the admin API subset used by the
// client out of b.
func NewServer(b *backend.Backend) http.Handler {
	router := gin.New()

	// identifiers are path-escaped by the client and must be matched escaped
	router.UseRawPath = true
	router.UnescapePathValues = true

	router.Use(gin.Recovery(), logRequests())
	mountHandlers(router, b)
	return router
}

func logRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		glog.V(4).Infof("%v %v %v (%v)", c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}
