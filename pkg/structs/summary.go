package structs

import (
	"time"
)

type Meta struct {
	GeneratedAt time.Time `json:"generatedAt"`
	Version     string    `json:"version"`
}

// Summary is the root report. Catalog and Ingestion are optional sections
// so the subset endpoints share the type; both are included when the
// corresponding option is unset.
type Summary struct {
	Meta      Meta        `json:"meta"`
	Links     Links       `json:"links"`
	Apps      AppStatuses `json:"apps"`
	Catalog   *Catalog    `json:"catalog,omitempty"`
	Ingestion *Ingestion  `json:"ingestion,omitempty"`
}

type SummaryOptions struct {
	Catalog   *bool `query:"catalog"`
	Ingestion *bool `query:"ingestion"`
}
