package cluster

import (
	"fmt"
	"strconv"

	"github.com/openkpi/portal/pkg/catalog"
	"github.com/openkpi/portal/pkg/helpers"
	"github.com/openkpi/portal/pkg/structs"
)

var crashWaitingReasons = map[string]bool{
	"CrashLoopBackOff":     true,
	"CreateContainerError": true,
	"ErrImagePull":         true,
	"Error":                true,
	"ImagePullBackOff":     true,
}

// AppStatusGet resolves one application's status. It never returns an
// error: missing objects and transport failures degrade into the report's
// status, reason and evidence instead.
func (p *Provider) AppStatusGet(app catalog.App) *structs.AppStatus {
	log := p.log().At("AppStatusGet").Namespace("app=%s kind=%s", app.Id, app.Kind).Start()

	r := &structs.AppStatus{
		Id:       app.Id,
		Display:  app.Display,
		Category: app.Category,
		Evidence: map[string]string{},
	}

	if p.Cluster == nil {
		r.Status = structs.StatusDown
		r.Reason = "kubernetes api unavailable"
		log.Successf("status=%s", r.Status)
		return r
	}

	exists, err := p.namespaceExists(app.Namespace)
	if err != nil {
		p.resolveUnavailable(r, err)
		log.Error(err)
		return r
	}

	if !exists {
		r.Status = structs.StatusDown
		if app.Optional {
			r.Status = structs.StatusNotInstalled
		}
		r.Reason = "namespace not found"
		log.Successf("status=%s", r.Status)
		return r
	}

	switch app.Kind {
	case catalog.KindDeployment:
		p.resolveDeployment(app, r, false)
	case catalog.KindStatefulSet:
		p.resolveStatefulSet(app, r)
	case catalog.KindPreciseRollout:
		p.resolveDeployment(app, r, true)
	}

	log.Successf("status=%s", r.Status)

	return r
}

func (p *Provider) resolveDeployment(app catalog.App, r *structs.AppStatus, precise bool) {
	d, found, err := p.deploymentGet(app.Namespace, app.WorkloadName)
	if err != nil {
		p.resolveUnavailable(r, err)
		return
	}
	if !found {
		p.resolveMissing(app, r)
		return
	}

	s := deploymentSnapshot(d)

	r.Evidence["replicas"] = strconv.Itoa(int(s.Replicas))
	r.Evidence["ready"] = strconv.Itoa(int(s.Ready))
	r.Evidence["updated"] = strconv.Itoa(int(s.Updated))
	r.Evidence["available"] = strconv.Itoa(int(s.Available))
	r.Evidence["age"] = helpers.Ago(d.ObjectMeta.CreationTimestamp.Time)

	bad := 0

	if precise {
		selector, err := p.ActiveSelector(app.Namespace, app.WorkloadName)
		if err != nil {
			p.resolveUnavailable(r, err)
			return
		}

		r.Evidence["selector"] = selector

		pods, err := p.podRecords(app.Namespace, selector)
		if err != nil {
			p.resolveUnavailable(r, err)
			return
		}

		for _, pod := range pods {
			if podUnhealthy(pod) {
				bad++
			}
		}

		r.Evidence["badPods"] = strconv.Itoa(bad)
	}

	switch {
	case s.Replicas == 0:
		r.Status = structs.StatusDown
		r.Reason = "scaled to zero"
	case bad > 0:
		r.Status = structs.StatusDegraded
		r.Reason = fmt.Sprintf("%d unhealthy pods in active rollout", bad)
	case s.Ready < s.Replicas:
		r.Status = structs.StatusDegraded
		r.Reason = fmt.Sprintf("%d/%d pods ready", s.Ready, s.Replicas)
	case s.Updated < s.Replicas:
		r.Status = structs.StatusDegraded
		r.Reason = fmt.Sprintf("%d/%d pods updated", s.Updated, s.Replicas)
	default:
		r.Status = structs.StatusHealthy
		r.Reason = "running"
	}
}

func (p *Provider) resolveStatefulSet(app catalog.App, r *structs.AppStatus) {
	s, found, err := p.statefulSetGet(app.Namespace, app.WorkloadName)
	if err != nil {
		p.resolveUnavailable(r, err)
		return
	}
	if !found {
		p.resolveMissing(app, r)
		return
	}

	ss := statefulSetSnapshot(s)

	r.Evidence["replicas"] = strconv.Itoa(int(ss.Replicas))
	r.Evidence["ready"] = strconv.Itoa(int(ss.Ready))
	r.Evidence["current"] = strconv.Itoa(int(ss.Current))
	r.Evidence["age"] = helpers.Ago(s.ObjectMeta.CreationTimestamp.Time)

	switch {
	case ss.Replicas == 0:
		r.Status = structs.StatusDown
		r.Reason = "scaled to zero"
	case ss.Ready < ss.Replicas:
		r.Status = structs.StatusDegraded
		r.Reason = fmt.Sprintf("%d/%d pods ready", ss.Ready, ss.Replicas)
	default:
		r.Status = structs.StatusHealthy
		r.Reason = "running"
	}
}

func (p *Provider) resolveMissing(app catalog.App, r *structs.AppStatus) {
	r.Status = structs.StatusDown
	if app.Optional {
		r.Status = structs.StatusNotInstalled
	}
	r.Reason = "workload not found"
}

func (p *Provider) resolveUnavailable(r *structs.AppStatus, err error) {
	r.Status = structs.StatusDown
	r.Reason = "kubernetes api unavailable"
	r.Evidence["error"] = err.Error()
}

// A pod counts against its app only when it belongs to the active rollout
// generation and is genuinely unhealthy: terminating and completed pods
// are ignored, everything else is bad when a container reports a
// crash/error waiting reason or is not ready while the pod should be
// serving.
func podUnhealthy(pod structs.PodRecord) bool {
	if pod.DeletionRequested || pod.Phase == "Succeeded" {
		return false
	}

	for _, reason := range pod.WaitingReasons {
		if crashWaitingReasons[reason] {
			return true
		}
	}

	if pod.Phase == "Running" || pod.Phase == "Pending" {
		for _, ready := range pod.ContainerReadyFlags {
			if !ready {
				return true
			}
		}
	}

	return false
}
