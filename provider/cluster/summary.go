package cluster

import (
	"fmt"
	"sync"
	"time"

	"github.com/openkpi/portal/pkg/helpers"
	"github.com/openkpi/portal/pkg/structs"
)

// SummaryGet builds the full operational report in one pass. Links, per-app
// statuses, the storage catalog and the ingestion probe all run
// concurrently; each app writes its own slice index so the report preserves
// catalog order. Dependency failures degrade sections, never the call.
func (p *Provider) SummaryGet(opts structs.SummaryOptions) (*structs.Summary, error) {
	log := p.log().At("SummaryGet").Start()

	started := time.Now().UTC()

	var wg sync.WaitGroup

	var links structs.Links
	var cat *structs.Catalog
	var ing *structs.Ingestion

	apps := make(structs.AppStatuses, len(p.Catalog))

	wg.Add(1)
	go func() {
		defer wg.Done()
		links = p.LinksGet()
	}()

	for i := range p.Catalog {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			apps[i] = *p.AppStatusGet(p.Catalog[i])
		}(i)
	}

	if helpers.DefaultBool(opts.Catalog, true) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cat = p.CatalogGet()
		}()
	}

	if helpers.DefaultBool(opts.Ingestion, true) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ing = p.IngestionGet()
		}()
	}

	wg.Wait()

	for i, a := range p.Catalog {
		apps[i].Links = structs.AppLinks{
			UI:  links[a.Id],
			API: fmt.Sprintf("http://%s.%s.svc.cluster.local", a.WorkloadName, a.Namespace),
		}
	}

	s := &structs.Summary{
		Meta: structs.Meta{
			GeneratedAt: started,
			Version:     p.Version,
		},
		Links:     links,
		Apps:      apps,
		Catalog:   cat,
		Ingestion: ing,
	}

	return s, log.Success()
}

// CatalogGet probes the warehouse and the object store in parallel.
func (p *Provider) CatalogGet() *structs.Catalog {
	var wg sync.WaitGroup

	c := &structs.Catalog{}

	wg.Add(2)

	go func() {
		defer wg.Done()
		c.Postgres = *p.PostgresCatalogGet()
	}()

	go func() {
		defer wg.Done()
		c.Minio = *p.MinioCatalogGet()
	}()

	wg.Wait()

	return c
}

// PlatformGet reduces a full summary to the one-line platform rollup.
func (p *Provider) PlatformGet() (*structs.Platform, error) {
	log := p.log().At("PlatformGet").Start()

	s, err := p.SummaryGet(structs.SummaryOptions{})
	if err != nil {
		return nil, log.Error(err)
	}

	pf := p.platformRollup(s)

	log.Successf("status=%s operational=%d/%d", pf.Status, pf.Operational.X, pf.Operational.Y)

	return pf, nil
}

// platformRollup: down when the warehouse is unavailable or a required app
// is down; degraded when any installed app is unwell, the object store is
// unavailable, or the ingestion engine is installed but unreachable.
// Optional apps that are absent do not count against the platform.
func (p *Provider) platformRollup(s *structs.Summary) *structs.Platform {
	optional := map[string]bool{}

	for _, a := range p.Catalog {
		optional[a.Id] = a.Optional
	}

	installed := 0
	healthy := 0
	down := false
	degraded := false

	for _, a := range s.Apps {
		if a.Status == structs.StatusNotInstalled {
			continue
		}

		installed++

		switch a.Status {
		case structs.StatusHealthy:
			healthy++
		case structs.StatusDegraded:
			degraded = true
		case structs.StatusDown:
			degraded = true

			if !optional[a.Id] {
				down = true
			}
		}
	}

	if s.Catalog != nil {
		if !s.Catalog.Postgres.Available {
			down = true
		}

		if !s.Catalog.Minio.Available {
			degraded = true
		}
	}

	if s.Ingestion != nil && s.Ingestion.Available && !s.Ingestion.Detail.OK {
		degraded = true
	}

	status := structs.PlatformOperational

	if degraded {
		status = structs.PlatformDegraded
	}

	if down {
		status = structs.PlatformDown
	}

	return &structs.Platform{
		Status:      status,
		Operational: structs.Fraction{X: healthy, Y: installed},
		Ts:          time.Now().UTC(),
	}
}
