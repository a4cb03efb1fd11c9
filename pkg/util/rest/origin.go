package rest

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"io/ioutil"
	"net"
	"net/http"
	"net/url"
	"strconv"
)

const (
	SchemeHTTP  = "http"
	SchemeHTTPS = "https"
)

// NewOrigin builds scheme://host:port. The scheme is https when secure is
// set. A host/port pair that does not form a valid URL is a configuration
// bug, so NewOrigin panics instead of returning an error.
func NewOrigin(host string, port int32, secure bool) *url.URL {
	scheme := SchemeHTTP
	if secure {
		scheme = SchemeHTTPS
	}

	raw := fmt.Sprintf("%v://%v", scheme, net.JoinHostPort(host, strconv.Itoa(int(port))))
	u, err := url.Parse(raw)
	if err != nil {
		panic(fmt.Sprintf("invalid origin %q: %v", raw, err))
	}
	if u.Hostname() == "" || port <= 0 || port > 65535 {
		panic(fmt.Sprintf("invalid origin %q", raw))
	}

	return u
}

// TLSParams configures the certificates used for an https origin. The zero
// value verifies the server against the system roots and presents no
// client certificate.
type TLSParams struct {
	// PEM bundle used instead of the system roots
	CAFile string `json:"caFile,omitempty"`
	// client certificate and key, both or neither
	CertFile string `json:"certFile,omitempty"`
	KeyFile  string `json:"keyFile,omitempty"`

	ServerName         string `json:"serverName,omitempty"`
	InsecureSkipVerify bool   `json:"insecureSkipVerify,omitempty"`
}

func (p *TLSParams) Config() (*tls.Config, error) {
	config := &tls.Config{
		MinVersion:         tls.VersionTLS12,
		ServerName:         p.ServerName,
		InsecureSkipVerify: p.InsecureSkipVerify,
	}

	if p.CAFile != "" {
		pem, err := ioutil.ReadFile(p.CAFile)
		if err != nil {
			return nil, fmt.Errorf("error reading CA file: %v", err)
		}

		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(pem) {
			return nil, fmt.Errorf("no certificates found in CA file %v", p.CAFile)
		}
		config.RootCAs = pool
	}

	if (p.CertFile == "") != (p.KeyFile == "") {
		return nil, fmt.Errorf("certFile and keyFile must be supplied together")
	}

	if p.CertFile != "" {
		cert, err := tls.LoadX509KeyPair(p.CertFile, p.KeyFile)
		if err != nil {
			return nil, fmt.Errorf("error loading client certificate: %v", err)
		}
		config.Certificates = []tls.Certificate{cert}
	}

	return config, nil
}

// NewHTTPClient returns a pooled client. With nil params it speaks plain
// http only. No timeout is set; callers bound latency through the context.
func NewHTTPClient(params *TLSParams) (*http.Client, error) {
	transport := http.DefaultTransport.(*http.Transport).Clone()

	if params != nil {
		config, err := params.Config()
		if err != nil {
			return nil, err
		}
		transport.TLSClientConfig = config
	}

	return &http.Client{Transport: transport}, nil
}
