package cluster

import (
	"fmt"
	"sort"
	"strconv"

	aa "k8s.io/api/apps/v1"
)

const revisionAnnotation = "deployment.kubernetes.io/revision"

// ActiveSelector returns the label selector that scopes pod checks to the
// deployment's current rollout generation: the pod-template-hash of the
// owned ReplicaSet with the highest revision annotation. When no owned
// ReplicaSet or hash label exists it falls back to app=<name>, which is
// broader and may include stale pods.
func (p *Provider) ActiveSelector(ns, deployment string) (string, error) {
	rss, err := p.replicaSetsOwnedBy(ns, deployment)
	if err != nil {
		return "", err
	}

	if len(rss) == 0 {
		return fmt.Sprintf("app=%s", deployment), nil
	}

	sort.SliceStable(rss, func(i, j int) bool {
		return replicaSetRevision(rss[i]) > replicaSetRevision(rss[j])
	})

	if hash := rss[0].ObjectMeta.Labels["pod-template-hash"]; hash != "" {
		return fmt.Sprintf("pod-template-hash=%s", hash), nil
	}

	return fmt.Sprintf("app=%s", deployment), nil
}

func replicaSetRevision(rs aa.ReplicaSet) int64 {
	r, err := strconv.ParseInt(rs.ObjectMeta.Annotations[revisionAnnotation], 10, 64)
	if err != nil {
		return 0
	}
	return r
}
