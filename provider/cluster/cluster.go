package cluster

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/convox/logger"
	"github.com/openkpi/portal/pkg/catalog"
	"github.com/openkpi/portal/pkg/helpers"
	"github.com/openkpi/portal/pkg/structs"
	"github.com/pkg/errors"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"
)

const defaultTimeout = 3 * time.Second

// Provider aggregates cluster and dependency state into summary reports.
// Cluster may be nil when no Kubernetes client could be built; every probe
// treats that as "unavailable" rather than failing.
type Provider struct {
	Catalog catalog.Apps
	Cluster kubernetes.Interface

	IngestionEndpoint  string
	IngestionNamespace string

	MinioAccess     string
	MinioEndpoint   string
	MinioSecret     string
	MinioSecretName string

	PostgresDatabase   string
	PostgresHost       string
	PostgresPassword   string
	PostgresPort       string
	PostgresSecretName string
	PostgresUser       string

	StorageNamespace string
	TLS              bool
	Timeout          time.Duration
	Version          string

	ctx    context.Context
	logger *logger.Logger
}

func FromEnv() (*Provider, error) {
	p := &Provider{
		Catalog:            catalog.Default(),
		IngestionEndpoint:  os.Getenv("INGESTION_URL"),
		IngestionNamespace: helpers.CoalesceString(os.Getenv("AIRBYTE_NS"), "airbyte"),
		MinioAccess:        os.Getenv("MINIO_ROOT_USER"),
		MinioEndpoint:      helpers.CoalesceString(os.Getenv("MINIO_ENDPOINT"), "http://openkpi-minio.open-kpi.svc.cluster.local:9000"),
		MinioSecret:        os.Getenv("MINIO_ROOT_PASSWORD"),
		MinioSecretName:    helpers.CoalesceString(os.Getenv("MINIO_SECRET"), "openkpi-minio"),
		PostgresDatabase:   helpers.CoalesceString(os.Getenv("POSTGRES_DB"), "openkpi"),
		PostgresHost:       helpers.CoalesceString(os.Getenv("POSTGRES_HOST"), "openkpi-postgres.open-kpi.svc.cluster.local"),
		PostgresPassword:   os.Getenv("POSTGRES_PASSWORD"),
		PostgresPort:       helpers.CoalesceString(os.Getenv("POSTGRES_PORT"), "5432"),
		PostgresSecretName: helpers.CoalesceString(os.Getenv("POSTGRES_SECRET"), "openkpi-postgres"),
		PostgresUser:       os.Getenv("POSTGRES_USER"),
		StorageNamespace:   helpers.CoalesceString(os.Getenv("OPENKPI_NS"), "open-kpi"),
		TLS:                tlsEnabled(os.Getenv("TLS_MODE")),
		Version:            helpers.CoalesceString(os.Getenv("VERSION"), "dev"),
		ctx:                context.Background(),
		logger:             logger.Discard,
	}

	if file := os.Getenv("CATALOG_FILE"); file != "" {
		as, err := catalog.Load(file)
		if err != nil {
			return nil, err
		}

		p.Catalog = as
	}

	if d := os.Getenv("PROBE_TIMEOUT"); d != "" {
		t, err := time.ParseDuration(d)
		if err != nil {
			return nil, errors.WithStack(err)
		}

		p.Timeout = t
	}

	if cfg, err := clientConfig(); err == nil {
		kc, err := kubernetes.NewForConfig(cfg)
		if err != nil {
			return nil, errors.WithStack(err)
		}

		p.Cluster = kc
		p.logger = logger.New("ns=cluster")
	}

	return p, nil
}

func (p *Provider) Initialize(opts structs.EngineOptions) error {
	if opts.Logs != nil {
		p.logger = logger.NewWriter("ns=cluster", opts.Logs)
	}

	log := p.log().At("Initialize")

	if err := p.Catalog.Validate(); err != nil {
		return log.Error(err)
	}

	if p.Timeout <= 0 {
		p.Timeout = defaultTimeout
	}

	return log.Success()
}

func (p *Provider) WithContext(ctx context.Context) structs.Engine {
	pp := *p
	pp.ctx = ctx
	return &pp
}

func (p *Provider) Context() context.Context {
	if p.ctx != nil {
		return p.ctx
	}
	return context.Background()
}

// callContext bounds one external call; derived from the pass context so
// a client disconnect cancels in-flight probes.
func (p *Provider) callContext() (context.Context, context.CancelFunc) {
	d := p.Timeout
	if d <= 0 {
		d = defaultTimeout
	}
	return context.WithTimeout(p.Context(), d)
}

func (p *Provider) log() *logger.Logger {
	if p.logger != nil {
		return p.logger
	}
	return logger.Discard
}

func clientConfig() (*rest.Config, error) {
	if cfg, err := rest.InClusterConfig(); err == nil {
		return cfg, nil
	}

	rules := clientcmd.NewDefaultClientConfigLoadingRules()

	return clientcmd.NewNonInteractiveDeferredLoadingClientConfig(rules, &clientcmd.ConfigOverrides{}).ClientConfig()
}

func tlsEnabled(mode string) bool {
	switch strings.ToLower(mode) {
	case "off", "disabled", "false", "0":
		return false
	}
	return true
}
