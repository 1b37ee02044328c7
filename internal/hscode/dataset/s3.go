package dataset

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Driver reads the dataset from an S3-compatible object store.
type S3Driver struct {
	Client *s3.Client
	Bucket string
	Key    string
}

func NewS3Driver(client *s3.Client, bucket, key string) *S3Driver {
	return &S3Driver{
		Client: client,
		Bucket: bucket,
		Key:    key,
	}
}

func (d *S3Driver) Open(ctx context.Context) (io.ReadCloser, error) {
	resp, err := d.Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(d.Bucket),
		Key:    aws.String(d.Key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get dataset from S3: %w", err)
	}
	return resp.Body, nil
}
