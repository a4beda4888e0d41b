package cluster_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/openkpi/portal/pkg/structs"
	"github.com/openkpi/portal/provider/cluster"
	"github.com/stretchr/testify/require"
	fakek8s "k8s.io/client-go/kubernetes/fake"
)

const fxListBuckets = `<?xml version="1.0" encoding="UTF-8"?>
<ListAllMyBucketsResult xmlns="http://s3.amazonaws.com/doc/2006-03-01/">
  <Owner><ID>minio</ID><DisplayName>minio</DisplayName></Owner>
  <Buckets>
    <Bucket><Name>warehouse</Name><CreationDate>2024-04-01T00:00:00Z</CreationDate></Bucket>
    <Bucket><Name>raw</Name><CreationDate>2024-03-01T00:00:00Z</CreationDate></Bucket>
  </Buckets>
</ListAllMyBucketsResult>`

func TestMinioCatalogGet(t *testing.T) {
	ht := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/xml")
		w.Write([]byte(fxListBuckets))
	}))
	defer ht.Close()

	testProviderManual(t, func(p *cluster.Provider, c *fakek8s.Clientset) {
		p.MinioAccess = "minio"
		p.MinioSecret = "secret"
		p.MinioEndpoint = ht.URL
		p.Timeout = 2 * time.Second

		r := p.MinioCatalogGet()

		require.True(t, r.Available)
		require.Empty(t, r.Error)
		require.Equal(t, structs.Buckets{
			{Name: "raw", CreatedAt: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
			{Name: "warehouse", CreatedAt: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)},
		}, r.Buckets)
	})
}

func TestMinioCatalogGetMissingCredentials(t *testing.T) {
	testProviderManual(t, func(p *cluster.Provider, c *fakek8s.Clientset) {
		p.MinioEndpoint = "http://127.0.0.1:1"

		r := p.MinioCatalogGet()

		require.False(t, r.Available)
		require.Equal(t, "missing credentials", r.Error)
		require.Equal(t, structs.Buckets{}, r.Buckets)
	})
}

func TestMinioCatalogGetUnreachable(t *testing.T) {
	testProviderManual(t, func(p *cluster.Provider, c *fakek8s.Clientset) {
		p.MinioAccess = "minio"
		p.MinioSecret = "secret"
		p.MinioEndpoint = "http://127.0.0.1:1"
		p.Timeout = 1 * time.Second

		r := p.MinioCatalogGet()

		require.False(t, r.Available)
		require.NotEmpty(t, r.Error)
		require.NotEqual(t, "missing credentials", r.Error)
		require.Equal(t, structs.Buckets{}, r.Buckets)
	})
}

func TestMinioCatalogGetSecretCredentials(t *testing.T) {
	ht := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/xml")
		w.Write([]byte(fxListBuckets))
	}))
	defer ht.Close()

	testProviderManual(t, func(p *cluster.Provider, c *fakek8s.Clientset) {
		createSecret(t, c, "open-kpi", "openkpi-minio", map[string][]byte{
			"rootUser":     []byte("minio"),
			"rootPassword": []byte("secret"),
		})

		p.StorageNamespace = "open-kpi"
		p.MinioSecretName = "openkpi-minio"
		p.MinioEndpoint = ht.URL
		p.Timeout = 2 * time.Second

		r := p.MinioCatalogGet()

		require.True(t, r.Available)
		require.Len(t, r.Buckets, 2)
	})
}
