package cluster

import (
	"net/http"
	"sort"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/openkpi/portal/pkg/structs"
)

// MinioCatalogGet lists buckets through the S3 API surface minio exposes.
func (p *Provider) MinioCatalogGet() *structs.MinioCatalog {
	log := p.log().At("MinioCatalogGet").Start()

	creds := p.minioCredentials()
	if creds.Missing() {
		log.Logf("error=%q", "missing credentials")
		return minioUnavailable("missing credentials")
	}

	ctx, cancel := p.callContext()
	defer cancel()

	res, err := p.s3(creds).ListBucketsWithContext(ctx, &s3.ListBucketsInput{})
	if err != nil {
		log.Error(err)
		return minioUnavailable(err.Error())
	}

	bs := structs.Buckets{}

	for _, b := range res.Buckets {
		bs = append(bs, structs.Bucket{
			CreatedAt: aws.TimeValue(b.CreationDate),
			Name:      aws.StringValue(b.Name),
		})
	}

	sort.Slice(bs, func(i, j int) bool { return bs[i].Name < bs[j].Name })

	log.Successf("buckets=%d", len(bs))

	return &structs.MinioCatalog{
		Available: true,
		Buckets:   bs,
	}
}

// minio only speaks path-style addressing; the region is a formality the
// signer requires.
func (p *Provider) s3(creds structs.Credentials) *s3.S3 {
	d := p.Timeout
	if d <= 0 {
		d = defaultTimeout
	}

	config := &aws.Config{
		Credentials:      credentials.NewStaticCredentials(creds.Access, creds.Secret, ""),
		Endpoint:         aws.String(p.MinioEndpoint),
		HTTPClient:       &http.Client{Timeout: d},
		Region:           aws.String("us-east-1"),
		S3ForcePathStyle: aws.Bool(true),
	}

	return s3.New(session.New(), config)
}

func minioUnavailable(message string) *structs.MinioCatalog {
	return &structs.MinioCatalog{
		Available: false,
		Buckets:   structs.Buckets{},
		Error:     message,
	}
}
