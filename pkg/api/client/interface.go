package client

import (
	"context"

	"github.com/blang/semver"

	"github.com/mlab-lattice/pulsar-admin/pkg/api/client/v2"
)

type Interface interface {
	Health(ctx context.Context) (bool, error)
	Version(ctx context.Context) (semver.Version, error)

	V2() v2.Interface
}
