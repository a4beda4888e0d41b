package structs

// WorkloadSnapshot is a point-in-time read of one Deployment or
// StatefulSet's replica counters. Snapshots are built fresh on every
// aggregation pass and never persisted.
type WorkloadSnapshot struct {
	Replicas  int32 `json:"replicas"`
	Ready     int32 `json:"ready"`
	Available int32 `json:"available"`
	Updated   int32 `json:"updated"`
	Current   int32 `json:"current"`
}

type PodRecord struct {
	Name                string   `json:"name"`
	Phase               string   `json:"phase"`
	DeletionRequested   bool     `json:"deletionRequested"`
	ContainerReadyFlags []bool   `json:"containerReadyFlags"`
	WaitingReasons      []string `json:"waitingReasons"`
}

type PodRecords []PodRecord
