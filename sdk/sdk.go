package sdk

import (
	"context"

	"github.com/convox/stdsdk"
	"github.com/openkpi/portal/pkg/structs"
)

// Client is a typed client for the portal API. It satisfies structs.Engine
// so a remote portal can be mounted wherever a local engine is expected.
type Client struct {
	*stdsdk.Client
}

// ensure interface parity
var _ structs.Engine = &Client{}

func New(endpoint string) (*Client, error) {
	s, err := stdsdk.New(endpoint)
	if err != nil {
		return nil, err
	}

	return &Client{Client: s}, nil
}

// Initialize is a no-op; the engine behind the API initializes server-side.
func (c *Client) Initialize(opts structs.EngineOptions) error {
	return nil
}

// WithContext returns the client unchanged; request deadlines belong to the
// underlying HTTP client.
func (c *Client) WithContext(ctx context.Context) structs.Engine {
	return c
}
