package cluster

import (
	"github.com/openkpi/portal/pkg/structs"
	"github.com/pkg/errors"
	aa "k8s.io/api/apps/v1"
	ac "k8s.io/api/core/v1"
	ae "k8s.io/apimachinery/pkg/api/errors"
	am "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// Read-only accessors over the cluster. Absence of a namespace or object
// is reported as found=false, never as an error; only transport and auth
// failures surface as errors.

func (p *Provider) namespaceExists(name string) (bool, error) {
	ctx, cancel := p.callContext()
	defer cancel()

	_, err := p.Cluster.CoreV1().Namespaces().Get(ctx, name, am.GetOptions{})
	if ae.IsNotFound(err) {
		return false, nil
	}
	if err != nil {
		return false, errors.WithStack(err)
	}

	return true, nil
}

func (p *Provider) deploymentGet(ns, name string) (*aa.Deployment, bool, error) {
	ctx, cancel := p.callContext()
	defer cancel()

	d, err := p.Cluster.AppsV1().Deployments(ns).Get(ctx, name, am.GetOptions{})
	if ae.IsNotFound(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.WithStack(err)
	}

	return d, true, nil
}

func (p *Provider) statefulSetGet(ns, name string) (*aa.StatefulSet, bool, error) {
	ctx, cancel := p.callContext()
	defer cancel()

	s, err := p.Cluster.AppsV1().StatefulSets(ns).Get(ctx, name, am.GetOptions{})
	if ae.IsNotFound(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.WithStack(err)
	}

	return s, true, nil
}

func (p *Provider) podRecords(ns, selector string) (structs.PodRecords, error) {
	ctx, cancel := p.callContext()
	defer cancel()

	ps, err := p.Cluster.CoreV1().Pods(ns).List(ctx, am.ListOptions{LabelSelector: selector, Limit: 500})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	rs := structs.PodRecords{}

	for _, pod := range ps.Items {
		rs = append(rs, podRecord(pod))
	}

	return rs, nil
}

func (p *Provider) replicaSetsOwnedBy(ns, deployment string) ([]aa.ReplicaSet, error) {
	ctx, cancel := p.callContext()
	defer cancel()

	rss, err := p.Cluster.AppsV1().ReplicaSets(ns).List(ctx, am.ListOptions{})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	owned := []aa.ReplicaSet{}

	for _, rs := range rss.Items {
		for _, or := range rs.OwnerReferences {
			if or.Kind == "Deployment" && or.Name == deployment {
				owned = append(owned, rs)
				break
			}
		}
	}

	return owned, nil
}

func podRecord(pod ac.Pod) structs.PodRecord {
	r := structs.PodRecord{
		Name:              pod.ObjectMeta.Name,
		Phase:             string(pod.Status.Phase),
		DeletionRequested: pod.ObjectMeta.DeletionTimestamp != nil,
	}

	for _, cs := range pod.Status.ContainerStatuses {
		r.ContainerReadyFlags = append(r.ContainerReadyFlags, cs.Ready)

		if cs.State.Waiting != nil && cs.State.Waiting.Reason != "" {
			r.WaitingReasons = append(r.WaitingReasons, cs.State.Waiting.Reason)
		}
	}

	return r
}

func deploymentSnapshot(d *aa.Deployment) *structs.WorkloadSnapshot {
	replicas := int32(1)
	if d.Spec.Replicas != nil {
		replicas = *d.Spec.Replicas
	}

	return &structs.WorkloadSnapshot{
		Replicas:  replicas,
		Ready:     d.Status.ReadyReplicas,
		Available: d.Status.AvailableReplicas,
		Updated:   d.Status.UpdatedReplicas,
		Current:   d.Status.Replicas,
	}
}

func statefulSetSnapshot(s *aa.StatefulSet) *structs.WorkloadSnapshot {
	replicas := int32(1)
	if s.Spec.Replicas != nil {
		replicas = *s.Spec.Replicas
	}

	return &structs.WorkloadSnapshot{
		Replicas:  replicas,
		Ready:     s.Status.ReadyReplicas,
		Available: s.Status.ReadyReplicas,
		Updated:   s.Status.UpdatedReplicas,
		Current:   s.Status.CurrentReplicas,
	}
}
