package api_test

import (
	"testing"
	"time"

	"github.com/convox/stdsdk"
	"github.com/openkpi/portal/pkg/options"
	"github.com/openkpi/portal/pkg/structs"
	"github.com/stretchr/testify/require"
)

var fxCatalog = structs.Catalog{
	Postgres: structs.PostgresCatalog{
		Available: true,
		Schemas:   []string{"analytics", "public"},
		Tables:    []string{"analytics.orders", "public.users"},
	},
	Minio: structs.MinioCatalog{
		Available: true,
		Buckets: structs.Buckets{
			{Name: "warehouse", CreatedAt: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)},
		},
	},
}

func TestCatalogGet(t *testing.T) {
	testServer(t, func(c *stdsdk.Client, e *structs.MockEngine) {
		s1 := fxSummary
		s1.Catalog = &fxCatalog
		s2 := structs.Summary{}
		e.On("SummaryGet", structs.SummaryOptions{Ingestion: options.Bool(false)}).Return(&s1, nil)
		err := c.Get("/api/catalog", stdsdk.RequestOptions{}, &s2)
		require.NoError(t, err)
		require.Equal(t, s1, s2)
		require.Nil(t, s2.Ingestion)
	})
}

func TestCatalogGetUnavailable(t *testing.T) {
	testServer(t, func(c *stdsdk.Client, e *structs.MockEngine) {
		s1 := fxSummary
		s1.Catalog = &structs.Catalog{
			Postgres: structs.PostgresCatalog{
				Available: false,
				Schemas:   []string{},
				Tables:    []string{},
				Error:     "missing credentials",
			},
			Minio: structs.MinioCatalog{
				Available: false,
				Buckets:   structs.Buckets{},
				Error:     "connection refused",
			},
		}
		s2 := structs.Summary{}
		e.On("SummaryGet", structs.SummaryOptions{Ingestion: options.Bool(false)}).Return(&s1, nil)
		err := c.Get("/api/catalog", stdsdk.RequestOptions{}, &s2)
		require.NoError(t, err)
		require.Equal(t, s1, s2)
		require.False(t, s2.Catalog.Postgres.Available)
		require.Empty(t, s2.Catalog.Postgres.Schemas)
	})
}
