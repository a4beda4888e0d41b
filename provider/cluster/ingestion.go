package cluster

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/convox/stdsdk"
	"github.com/dustin/go-humanize"
	"github.com/openkpi/portal/pkg/structs"
	"github.com/pkg/errors"
	am "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// Candidate Service names for the ingestion engine API, covering the names
// the airbyte chart has used across versions.
var ingestionServices = []string{"airbyte-airbyte-server", "airbyte-server"}

const ingestionPort = 8001

type ingestionJobsRequest struct {
	ConfigTypes []string                `json:"configTypes"`
	Pagination  ingestionJobsPagination `json:"pagination"`
}

type ingestionJobsPagination struct {
	PageSize  int `json:"pageSize"`
	RowOffset int `json:"rowOffset"`
}

type ingestionJobsResponse struct {
	Jobs []ingestionJobEntry `json:"jobs"`
}

type ingestionJobEntry struct {
	Job struct {
		ID         int64  `json:"id"`
		ConfigType string `json:"configType"`
		Status     string `json:"status"`
		CreatedAt  int64  `json:"createdAt"`
		UpdatedAt  int64  `json:"updatedAt"`
	} `json:"job"`
	Attempts []struct {
		Status        string `json:"status"`
		BytesSynced   int64  `json:"bytesSynced"`
		RecordsSynced int64  `json:"recordsSynced"`
		EndedAt       int64  `json:"endedAt"`
	} `json:"attempts"`
}

// IngestionGet reports the most recent sync job of the ingestion engine.
// A missing Service means not installed (Available false); an installed but
// unreachable engine keeps Available true and reports the failure in Detail.
func (p *Provider) IngestionGet() *structs.Ingestion {
	log := p.log().At("IngestionGet").Start()

	endpoint := p.ingestionEndpoint()
	if endpoint == "" {
		log.Logf("error=%q", "ingestion service not found")

		return &structs.Ingestion{
			Available: false,
			Detail:    structs.IngestionDetail{OK: false, Error: "ingestion service not found"},
		}
	}

	job, err := p.ingestionLastJob(endpoint)
	if err != nil {
		log.Error(err)

		return &structs.Ingestion{
			Available: true,
			Detail:    structs.IngestionDetail{OK: false, Error: err.Error(), Endpoint: endpoint},
		}
	}

	log.Successf("endpoint=%q", endpoint)

	return &structs.Ingestion{
		Available: true,
		LastSync:  job,
		Detail:    structs.IngestionDetail{OK: true, Endpoint: endpoint},
	}
}

func (p *Provider) ingestionEndpoint() string {
	if p.IngestionEndpoint != "" {
		return p.IngestionEndpoint
	}

	if p.Cluster == nil {
		return ""
	}

	ctx, cancel := p.callContext()
	defer cancel()

	for _, name := range ingestionServices {
		if _, err := p.Cluster.CoreV1().Services(p.IngestionNamespace).Get(ctx, name, am.GetOptions{}); err == nil {
			return fmt.Sprintf("http://%s.%s.svc.cluster.local:%d", name, p.IngestionNamespace, ingestionPort)
		}
	}

	return ""
}

func (p *Provider) ingestionLastJob(endpoint string) (*structs.IngestionJob, error) {
	c, err := stdsdk.New(endpoint)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	body, err := json.Marshal(ingestionJobsRequest{
		ConfigTypes: []string{"sync"},
		Pagination:  ingestionJobsPagination{PageSize: 20, RowOffset: 0},
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	req, err := c.Request("POST", "/api/v1/jobs/list", stdsdk.RequestOptions{
		Body:    bytes.NewReader(body),
		Headers: stdsdk.Headers{"Content-Type": "application/json"},
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	ctx, cancel := p.callContext()
	defer cancel()

	res, err := c.HandleRequest(req.WithContext(ctx))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer res.Body.Close()

	var jr ingestionJobsResponse

	if err := json.NewDecoder(res.Body).Decode(&jr); err != nil {
		return nil, errors.WithStack(err)
	}

	return latestIngestionJob(jr.Jobs), nil
}

// latestIngestionJob picks the job with the greatest createdAt, breaking
// ties by jobId descending so selection never depends on API ordering.
func latestIngestionJob(entries []ingestionJobEntry) *structs.IngestionJob {
	var best *structs.IngestionJob

	for _, e := range entries {
		job := &structs.IngestionJob{
			JobID:     e.Job.ID,
			Status:    e.Job.Status,
			CreatedAt: e.Job.CreatedAt,
			UpdatedAt: e.Job.UpdatedAt,
		}

		if len(e.Attempts) > 0 {
			a := e.Attempts[0]

			job.Attempt = structs.IngestionAttempt{
				Status:        a.Status,
				BytesSynced:   a.BytesSynced,
				RecordsSynced: a.RecordsSynced,
				EndedAt:       a.EndedAt,
			}

			if a.BytesSynced > 0 {
				job.Attempt.BytesSyncedHuman = humanize.Bytes(uint64(a.BytesSynced))
			}
		}

		if best == nil || job.CreatedAt > best.CreatedAt || (job.CreatedAt == best.CreatedAt && job.JobID > best.JobID) {
			best = job
		}
	}

	return best
}
