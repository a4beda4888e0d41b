package api_test

import (
	"testing"
	"time"

	"github.com/convox/stdsdk"
	"github.com/openkpi/portal/pkg/structs"
	"github.com/stretchr/testify/require"
)

func TestHealthGet(t *testing.T) {
	testServer(t, func(c *stdsdk.Client, e *structs.MockEngine) {
		var h map[string]interface{}
		err := c.Get("/api/health", stdsdk.RequestOptions{}, &h)
		require.NoError(t, err)
		require.Equal(t, true, h["ok"])
		ts, ok := h["ts"].(string)
		require.True(t, ok)
		_, err = time.Parse(time.RFC3339, ts)
		require.NoError(t, err)
	})
}
