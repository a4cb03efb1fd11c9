package rest

import (
	"fmt"
	"io/ioutil"

	"github.com/ghodss/yaml"
	"github.com/spf13/pflag"

	"github.com/mlab-lattice/pulsar-admin/pkg/util/rest"
)

const (
	DefaultHost       = "localhost"
	DefaultPort int32 = 8080
)

// Config is the on-disk form of a client configuration:
//
//	host: pulsar.example.com
//	port: 8443
//	tls:
//	  caFile: /etc/pulsar/ca.pem
//
// Any tls mapping, even an empty one (tls: {}), selects https.
type Config struct {
	Host string `json:"host"`
	Port int32  `json:"port"`

	TLS *rest.TLSParams `json:"tls,omitempty"`

	// sent with every request
	Headers map[string]string `json:"headers,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Host: DefaultHost,
		Port: DefaultPort,
	}
}

// LoadConfig reads a YAML (or JSON) config file. Keys missing from the
// file keep their DefaultConfig values.
func LoadConfig(path string) (*Config, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("error parsing config %v: %v", path, err)
	}

	return config, nil
}

// Flags binds a Config to command line flags for programs embedding the
// client.
type Flags struct {
	Host string
	Port int32

	TLS       bool
	TLSParams rest.TLSParams
}

func NewFlags() *Flags {
	return &Flags{
		Host: DefaultHost,
		Port: DefaultPort,
	}
}

func (f *Flags) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&f.Host, "pulsar-host", f.Host, "host of the Pulsar admin API")
	fs.Int32Var(&f.Port, "pulsar-port", f.Port, "port of the Pulsar admin API")

	fs.BoolVar(&f.TLS, "pulsar-tls", f.TLS, "connect over https")
	fs.StringVar(&f.TLSParams.CAFile, "pulsar-tls-ca-file", f.TLSParams.CAFile, "PEM bundle used to verify the broker certificate")
	fs.StringVar(&f.TLSParams.CertFile, "pulsar-tls-cert-file", f.TLSParams.CertFile, "client certificate file")
	fs.StringVar(&f.TLSParams.KeyFile, "pulsar-tls-key-file", f.TLSParams.KeyFile, "client key file")
	fs.StringVar(&f.TLSParams.ServerName, "pulsar-tls-server-name", f.TLSParams.ServerName, "server name expected in the broker certificate")
	fs.BoolVar(&f.TLSParams.InsecureSkipVerify, "pulsar-tls-insecure", f.TLSParams.InsecureSkipVerify, "skip verification of the broker certificate")
}

// Config returns the Config described by the parsed flags. Setting any TLS
// flag implies --pulsar-tls.
func (f *Flags) Config() *Config {
	config := &Config{
		Host: f.Host,
		Port: f.Port,
	}

	if f.TLS || f.TLSParams != (rest.TLSParams{}) {
		params := f.TLSParams
		config.TLS = &params
	}

	return config
}
