package structs

type Status string

const (
	StatusHealthy      Status = "healthy"
	StatusDegraded     Status = "degraded"
	StatusDown         Status = "down"
	StatusNotInstalled Status = "not_installed"
)

type AppStatus struct {
	Id       string            `json:"id"`
	Display  string            `json:"display"`
	Category string            `json:"category"`
	Status   Status            `json:"status"`
	Reason   string            `json:"reason"`
	Evidence map[string]string `json:"evidence"`
	Links    AppLinks          `json:"links"`
}

type AppStatuses []AppStatus

type AppLinks struct {
	UI  string `json:"ui"`
	API string `json:"api"`
}
