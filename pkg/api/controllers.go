package api

import (
	"time"

	"github.com/convox/stdapi"
	"github.com/openkpi/portal/pkg/options"
	"github.com/openkpi/portal/pkg/structs"
)

func (s *Server) HealthGet(c *stdapi.Context) error {
	return c.RenderJSON(map[string]interface{}{
		"ok": true,
		"ts": time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) CatalogGet(c *stdapi.Context) error {
	v, err := s.engine(c).WithContext(c.Context()).SummaryGet(structs.SummaryOptions{Ingestion: options.Bool(false)})
	if err != nil {
		return err
	}

	return c.RenderJSON(v)
}

func (s *Server) IngestionGet(c *stdapi.Context) error {
	v, err := s.engine(c).WithContext(c.Context()).SummaryGet(structs.SummaryOptions{Catalog: options.Bool(false)})
	if err != nil {
		return err
	}

	return c.RenderJSON(v)
}

func (s *Server) StatusGet(c *stdapi.Context) error {
	v, err := s.engine(c).WithContext(c.Context()).PlatformGet()
	if err != nil {
		return err
	}

	return c.RenderJSON(v)
}

func (s *Server) SummaryGet(c *stdapi.Context) error {
	var opts structs.SummaryOptions
	if err := stdapi.UnmarshalOptions(c.Request(), &opts); err != nil {
		return err
	}

	v, err := s.engine(c).WithContext(c.Context()).SummaryGet(opts)
	if err != nil {
		return err
	}

	return c.RenderJSON(v)
}
