package structs

import (
	"time"
)

// Catalog is the operational evidence section of a summary: what the
// warehouse and the object store actually contain right now. A sub-probe
// either succeeds completely or reports available=false with empty lists;
// partial inventories are never emitted.
type Catalog struct {
	Postgres PostgresCatalog `json:"postgres"`
	Minio    MinioCatalog    `json:"minio"`
}

type PostgresCatalog struct {
	Available bool     `json:"available"`
	Schemas   []string `json:"schemas"`
	Tables    []string `json:"tables"`
	Error     string   `json:"error,omitempty"`
}

type MinioCatalog struct {
	Available bool    `json:"available"`
	Buckets   Buckets `json:"buckets"`
	Error     string  `json:"error,omitempty"`
}

type Bucket struct {
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

type Buckets []Bucket
