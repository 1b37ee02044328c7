package dataset

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/PawleN-D/africompliance-api/internal/config"
)

// NewDriverFromConfig creates a dataset driver based on the provided
// configuration.
func NewDriverFromConfig(ctx context.Context, cfg config.HSDataConfig) (Driver, error) {
	switch cfg.Type {
	case "local":
		slog.Info("initializing local HS dataset", "path", cfg.LocalPath)
		return NewLocalFSDriver(cfg.LocalPath)
	case "s3":
		slog.Info("initializing S3 HS dataset", "endpoint", cfg.S3Endpoint, "bucket", cfg.S3Bucket, "key", cfg.S3Key)

		opts := []func(*awsconfig.LoadOptions) error{
			awsconfig.WithRegion(cfg.S3Region),
		}

		if cfg.S3AccessKey != "" && cfg.S3SecretKey != "" {
			creds := credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, "")
			opts = append(opts, awsconfig.WithCredentialsProvider(creds))
		}

		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
		if err != nil {
			return nil, fmt.Errorf("failed to load AWS config: %w", err)
		}

		client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
			if cfg.S3Endpoint != "" {
				o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			}
			o.UsePathStyle = true
		})

		return NewS3Driver(client, cfg.S3Bucket, cfg.S3Key), nil
	default:
		return nil, fmt.Errorf("unsupported HS dataset source: %s", cfg.Type)
	}
}
