package api

import (
	"github.com/convox/stdapi"
)

func (s *Server) setupRoutes(r stdapi.Router) {
	r.Route("GET", "/api/catalog", s.CatalogGet)
	r.Route("GET", "/api/health", s.HealthGet)
	r.Route("GET", "/api/ingestion", s.IngestionGet)
	r.Route("GET", "/api/status", s.StatusGet)
	r.Route("GET", "/api/summary", s.SummaryGet)
}
