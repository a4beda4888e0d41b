package catalog

import (
	"os"

	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v2"
)

type Kind string

const (
	KindDeployment     Kind = "deployment"
	KindStatefulSet    Kind = "statefulset"
	KindPreciseRollout Kind = "precise-rollout"
)

// App declares one monitored application. Definitions are immutable for
// the life of the process; the set and its order drive the report.
type App struct {
	Id           string `json:"id" yaml:"id"`
	Display      string `json:"display" yaml:"display"`
	Category     string `json:"category" yaml:"category"`
	Optional     bool   `json:"optional" yaml:"optional"`
	Kind         Kind   `json:"kind" yaml:"kind"`
	Namespace    string `json:"namespace" yaml:"namespace"`
	WorkloadName string `json:"workload" yaml:"workload"`
}

type Apps []App

func (k Kind) Valid() bool {
	switch k {
	case KindDeployment, KindStatefulSet, KindPreciseRollout:
		return true
	}
	return false
}

func (k *Kind) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string

	if err := unmarshal(&s); err != nil {
		return err
	}

	kk := Kind(s)

	if !kk.Valid() {
		return errors.Errorf("unknown workload kind: %s", s)
	}

	*k = kk

	return nil
}

func (as Apps) Validate() error {
	if len(as) == 0 {
		return errors.New("catalog is empty")
	}

	seen := map[string]bool{}

	for _, a := range as {
		switch {
		case a.Id == "":
			return errors.New("app with empty id")
		case seen[a.Id]:
			return errors.Errorf("duplicate app id: %s", a.Id)
		case !a.Kind.Valid():
			return errors.Errorf("app %s: unknown workload kind: %s", a.Id, a.Kind)
		case a.Namespace == "":
			return errors.Errorf("app %s: empty namespace", a.Id)
		case a.WorkloadName == "":
			return errors.Errorf("app %s: empty workload name", a.Id)
		}

		seen[a.Id] = true
	}

	return nil
}

// Load reads an app catalog from a yaml file, replacing the defaults.
func Load(file string) (Apps, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var as Apps

	if err := yaml.Unmarshal(data, &as); err != nil {
		return nil, errors.WithStack(err)
	}

	if err := as.Validate(); err != nil {
		return nil, err
	}

	return as, nil
}

func Default() Apps {
	return Apps{
		{Id: "postgres", Display: "PostgreSQL", Category: "warehouse", Kind: KindStatefulSet, Namespace: "open-kpi", WorkloadName: "openkpi-postgres"},
		{Id: "minio", Display: "MinIO", Category: "storage", Kind: KindStatefulSet, Namespace: "open-kpi", WorkloadName: "openkpi-minio"},
		{Id: "airbyte", Display: "Airbyte", Category: "ingestion", Kind: KindDeployment, Namespace: "airbyte", WorkloadName: "airbyte-server"},
		{Id: "portal", Display: "Portal", Category: "platform", Kind: KindDeployment, Namespace: "platform", WorkloadName: "portal-api"},
		{Id: "metabase", Display: "Metabase", Category: "analytics", Optional: true, Kind: KindDeployment, Namespace: "analytics", WorkloadName: "metabase"},
		{Id: "n8n", Display: "n8n", Category: "automation", Optional: true, Kind: KindPreciseRollout, Namespace: "n8n", WorkloadName: "n8n"},
		{Id: "zammad", Display: "Zammad", Category: "support", Optional: true, Kind: KindStatefulSet, Namespace: "tickets", WorkloadName: "zammad"},
		{Id: "dbt-docs", Display: "dbt Docs", Category: "transform", Optional: true, Kind: KindDeployment, Namespace: "transform", WorkloadName: "dbt-docs"},
	}
}
