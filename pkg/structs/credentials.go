package structs

// Credentials is an access/secret key pair resolved from a Kubernetes
// Secret. Either field may be empty; emptiness means "missing" and
// downstream probes report unavailable rather than erroring.
type Credentials struct {
	Access string `json:"accessKey"`
	Secret string `json:"secretKey"`
}

func (c Credentials) Missing() bool {
	return c.Access == "" || c.Secret == ""
}
