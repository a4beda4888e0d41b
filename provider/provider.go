package provider

import (
	"github.com/openkpi/portal/pkg/structs"
	"github.com/openkpi/portal/provider/cluster"
)

// FromEnv returns the engine wired to the surrounding cluster from
// environment configuration.
func FromEnv() (structs.Engine, error) {
	return cluster.FromEnv()
}
