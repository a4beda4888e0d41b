package structs

// Ingestion reports the most recent sync job of the ingestion engine.
// Available distinguishes "not installed" (false) from "installed but
// unreachable" (true with Detail.OK false); timestamps are epoch seconds
// passed through from the engine's API.
type Ingestion struct {
	Available bool            `json:"available"`
	LastSync  *IngestionJob   `json:"lastSync"`
	Detail    IngestionDetail `json:"detail"`
}

type IngestionJob struct {
	JobID     int64            `json:"jobId"`
	Status    string           `json:"status"`
	CreatedAt int64            `json:"createdAt"`
	UpdatedAt int64            `json:"updatedAt"`
	Attempt   IngestionAttempt `json:"attempt"`
}

type IngestionAttempt struct {
	Status           string `json:"status"`
	BytesSynced      int64  `json:"bytesSynced"`
	BytesSyncedHuman string `json:"bytesSyncedHuman,omitempty"`
	RecordsSynced    int64  `json:"recordsSynced"`
	EndedAt          int64  `json:"endedAt"`
}

type IngestionDetail struct {
	OK       bool   `json:"ok"`
	Error    string `json:"error,omitempty"`
	Endpoint string `json:"endpoint,omitempty"`
}
