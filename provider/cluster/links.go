package cluster

import (
	"fmt"

	"github.com/openkpi/portal/pkg/catalog"
	"github.com/openkpi/portal/pkg/structs"
	an "k8s.io/api/networking/v1"
	am "k8s.io/apimachinery/pkg/apis/meta/v1"
)

type ingressCandidate struct {
	Namespace string
	Name      string
}

// linkCandidates maps well-known app ids to the Ingress objects that carry
// their external host, in preference order. Only these ids get the
// namespace fallback; other apps resolve strictly by name so co-tenant
// apps in a shared namespace never borrow a neighbor's host.
var linkCandidates = map[string][]ingressCandidate{
	"airbyte":  {{"airbyte", "airbyte"}, {"airbyte", "airbyte-webapp"}},
	"dbt-docs": {{"transform", "dbt-docs"}},
	"metabase": {{"analytics", "metabase"}},
	"minio":    {{"open-kpi", "minio-console"}, {"open-kpi", "minio"}},
	"n8n":      {{"n8n", "n8n"}},
	"portal":   {{"platform", "portal"}, {"platform", "portal-api"}},
	"zammad":   {{"tickets", "zammad"}},
}

// LinksGet resolves an external URL per catalog app from Ingress hosts.
// Every app id is present in the result; unresolved apps map to "".
func (p *Provider) LinksGet() structs.Links {
	log := p.log().At("LinksGet").Start()

	links := structs.Links{}

	for _, a := range p.Catalog {
		links[a.Id] = ""
	}

	if p.Cluster == nil {
		log.Logf("error=%q", "kubernetes api unavailable")
		return links
	}

	resolved := 0

	for _, a := range p.Catalog {
		if host := p.ingressHost(a); host != "" {
			links[a.Id] = fmt.Sprintf("%s://%s", p.scheme(), host)
			resolved++
		}
	}

	log.Successf("resolved=%d", resolved)

	return links
}

func (p *Provider) ingressHost(a catalog.App) string {
	cs, known := linkCandidates[a.Id]
	if !known {
		cs = []ingressCandidate{{a.Namespace, a.Id}}
		if a.WorkloadName != a.Id {
			cs = append(cs, ingressCandidate{a.Namespace, a.WorkloadName})
		}
	}

	ctx, cancel := p.callContext()
	defer cancel()

	for _, c := range cs {
		ing, err := p.Cluster.NetworkingV1().Ingresses(c.Namespace).Get(ctx, c.Name, am.GetOptions{})
		if err != nil {
			continue
		}

		if h := firstRuleHost(ing); h != "" {
			return h
		}
	}

	if !known {
		return ""
	}

	is, err := p.Cluster.NetworkingV1().Ingresses(cs[0].Namespace).List(ctx, am.ListOptions{Limit: 10})
	if err != nil || len(is.Items) == 0 {
		return ""
	}

	return firstRuleHost(&is.Items[0])
}

func (p *Provider) scheme() string {
	if p.TLS {
		return "https"
	}

	return "http"
}

func firstRuleHost(ing *an.Ingress) string {
	for _, r := range ing.Spec.Rules {
		if r.Host != "" {
			return r.Host
		}
	}

	return ""
}
