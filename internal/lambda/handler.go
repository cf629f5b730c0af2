package lambda

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stahnma/gh-repo-search/internal/commands"
	"github.com/stahnma/gh-repo-search/internal/export"
)

// Uploader is the subset of the S3 client the handler needs.
type Uploader interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// NewHandler returns a Lambda handler that snapshots the trending feed as
// JSON and uploads it to S3.
func NewHandler(app *commands.App) func(context.Context, interface{}) (string, error) {
	return newHandler(app, func(ctx context.Context) (Uploader, error) {
		cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(app.Config.AWSRegion))
		if err != nil {
			return nil, fmt.Errorf("failed to load AWS config: %w", err)
		}
		return s3.NewFromConfig(cfg), nil
	})
}

func newHandler(app *commands.App, newUploader func(context.Context) (Uploader, error)) func(context.Context, interface{}) (string, error) {
	return func(ctx context.Context, event interface{}) (string, error) {
		bucket, key := app.Config.S3Bucket, app.Config.S3Key
		if bucket == "" || key == "" {
			return "", fmt.Errorf("S3_BUCKET_NAME and S3_OBJECT_KEY environment variables must be set")
		}

		var buf bytes.Buffer
		if err := app.ExportTrending(ctx, &buf, export.FormatJSON); err != nil {
			return "", fmt.Errorf("export: %w", err)
		}

		// A %s in the key is replaced by the snapshot date.
		if strings.Contains(key, "%s") {
			key = fmt.Sprintf(key, time.Now().UTC().Format("2006-01-02"))
		}

		svc, err := newUploader(ctx)
		if err != nil {
			return "", err
		}
		_, err = svc.PutObject(ctx, &s3.PutObjectInput{
			Bucket:      aws.String(bucket),
			Key:         aws.String(key),
			Body:        bytes.NewReader(buf.Bytes()),
			ContentType: aws.String("application/json"),
		})
		if err != nil {
			return "", fmt.Errorf("failed to upload file to S3: %w", err)
		}

		return fmt.Sprintf("Trending snapshot uploaded to s3://%s/%s", bucket, key), nil
	}
}
