package api_test

import (
	"context"
	"io/ioutil"
	"net/http/httptest"
	"testing"

	"github.com/convox/logger"
	"github.com/convox/stdapi"
	"github.com/convox/stdsdk"
	"github.com/openkpi/portal/pkg/api"
	"github.com/openkpi/portal/pkg/structs"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testServer(t *testing.T, fn func(*stdsdk.Client, *structs.MockEngine)) {
	e := &structs.MockEngine{}
	e.On("Initialize", mock.Anything).Return(nil)
	e.On("WithContext", mock.MatchedBy(requestContextMatcher)).Return(e)

	s := api.NewWithEngine(e)
	s.Logger = logger.Discard
	s.Server.Recover = func(err error, _ *stdapi.Context) {
		require.NoError(t, err, "httptest server panic")
	}

	ht := httptest.NewServer(s)
	defer ht.Close()

	c, err := stdsdk.New(ht.URL)
	require.NoError(t, err)

	fn(c, e)
}

func requestContextMatcher(ctx context.Context) bool {
	_, ok := ctx.Value("request.id").(string)
	return ok
}

func TestCheck(t *testing.T) {
	testServer(t, func(c *stdsdk.Client, e *structs.MockEngine) {
		res, err := c.GetStream("/check", stdsdk.RequestOptions{})
		require.NoError(t, err)
		defer res.Body.Close()
		data, err := ioutil.ReadAll(res.Body)
		require.NoError(t, err)
		require.Equal(t, "ok\n", string(data))
	})
}
