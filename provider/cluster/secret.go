package cluster

import (
	"github.com/openkpi/portal/pkg/helpers"
	"github.com/openkpi/portal/pkg/structs"
	am "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// Candidate key schemas for credential Secrets. Install paths create
// Secrets with different key names depending on which chart made them;
// these ordered lists absorb that inconsistency in one place. New schemas
// are added to a list, never hardcoded at a call site.
var (
	MinioAccessKeys = []string{"MINIO_ROOT_USER", "rootUser", "accesskey", "AWS_ACCESS_KEY_ID"}
	MinioSecretKeys = []string{"MINIO_ROOT_PASSWORD", "rootPassword", "secretkey", "AWS_SECRET_ACCESS_KEY"}

	PostgresUserKeys     = []string{"POSTGRES_USER", "username", "user"}
	PostgresPasswordKeys = []string{"POSTGRES_PASSWORD", "postgres-password", "password"}
)

// SecretValue returns the first non-empty value among the candidate keys
// of a Secret. A missing Secret, a missing key and an unreachable API all
// resolve to empty string; emptiness means "missing credentials" downstream
// and is never an error here.
func (p *Provider) SecretValue(ns, name string, keys []string) string {
	if p.Cluster == nil || name == "" {
		return ""
	}

	ctx, cancel := p.callContext()
	defer cancel()

	s, err := p.Cluster.CoreV1().Secrets(ns).Get(ctx, name, am.GetOptions{})
	if err != nil {
		return ""
	}

	for _, k := range keys {
		if v := s.Data[k]; len(v) > 0 {
			return string(v)
		}
	}

	return ""
}

// Environment values win over Secret resolution so install-time static
// configuration can pin credentials without a Secret read.

func (p *Provider) minioCredentials() structs.Credentials {
	return structs.Credentials{
		Access: helpers.CoalesceString(p.MinioAccess, p.SecretValue(p.StorageNamespace, p.MinioSecretName, MinioAccessKeys)),
		Secret: helpers.CoalesceString(p.MinioSecret, p.SecretValue(p.StorageNamespace, p.MinioSecretName, MinioSecretKeys)),
	}
}

func (p *Provider) postgresCredentials() structs.Credentials {
	return structs.Credentials{
		Access: helpers.CoalesceString(p.PostgresUser, p.SecretValue(p.StorageNamespace, p.PostgresSecretName, PostgresUserKeys)),
		Secret: helpers.CoalesceString(p.PostgresPassword, p.SecretValue(p.StorageNamespace, p.PostgresSecretName, PostgresPasswordKeys)),
	}
}
