package rest

import (
	"context"
	"fmt"
	"strings"

	"github.com/blang/semver"

	v2restclient "github.com/mlab-lattice/pulsar-admin/pkg/api/client/rest/v2"
	v2client "github.com/mlab-lattice/pulsar-admin/pkg/api/client/v2"
	v2rest "github.com/mlab-lattice/pulsar-admin/pkg/api/v2/rest"
	"github.com/mlab-lattice/pulsar-admin/pkg/util/rest"
)

const healthyResponse = "ok"

// Client is the entry point to the admin API of one broker (or proxy). It
// owns the transport; everything returned by V2 shares it.
type Client struct {
	restClient rest.Client
}

// NewClient connects to host:port over https when tlsParams is non-nil and
// plain http otherwise. It panics if host and port do not form a valid
// origin, and returns an error if the TLS material cannot be loaded.
func NewClient(host string, port int32, tlsParams *rest.TLSParams) (*Client, error) {
	return newClient(host, port, tlsParams, nil)
}

func NewClientFromConfig(config *Config) (*Client, error) {
	return newClient(config.Host, config.Port, config.TLS, config.Headers)
}

func newClient(host string, port int32, tlsParams *rest.TLSParams, headers map[string]string) (*Client, error) {
	origin := rest.NewOrigin(host, port, tlsParams != nil)

	httpClient, err := rest.NewHTTPClient(tlsParams)
	if err != nil {
		return nil, err
	}

	if headers == nil {
		headers = map[string]string{}
	}

	return &Client{
		restClient: rest.NewHeaderedClient(origin, httpClient, headers),
	}, nil
}

// NewClientForREST wraps an existing rest.Client, e.g. one pointed at a
// test server.
func NewClientForREST(c rest.Client) *Client {
	return &Client{
		restClient: c,
	}
}

func (c *Client) BaseURL() string {
	return c.restClient.BaseURL().String()
}

// Health reports whether the broker answers its health check. Only a
// failed exchange is returned as an error; an error status means unhealthy.
func (c *Client) Health(ctx context.Context) (bool, error) {
	body, err := c.restClient.Get(ctx, v2rest.BrokerHealthPath)
	if err != nil {
		if rest.StatusCode(err) != 0 {
			return false, nil
		}
		return false, err
	}

	return strings.TrimSpace(string(body)) == healthyResponse, nil
}

// Version returns the broker's version. Brokers answer either with a bare
// string or a JSON string; snapshot builds report e.g. 2.10.0-SNAPSHOT.
func (c *Client) Version(ctx context.Context) (semver.Version, error) {
	body, err := c.restClient.Get(ctx, v2rest.BrokerVersionPath)
	if err != nil {
		return semver.Version{}, err
	}

	raw := strings.Trim(strings.TrimSpace(string(body)), `"`)
	version, err := semver.ParseTolerant(raw)
	if err != nil {
		return semver.Version{}, &rest.DecodeError{
			URL: v2rest.BrokerVersionPath,
			Err: fmt.Errorf("invalid version %q: %v", raw, err),
		}
	}

	return version, nil
}

func (c *Client) V2() v2client.Interface {
	return v2restclient.NewClient(c.restClient)
}
