package storage

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"rumbles-backend/internal/utils"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type (
	// AwsS3 serves catalog media. Menu images live in the configured bucket;
	// the menu handler streams them through GetFile and the menu service
	// rewrites image paths with GetPublicLinkKey.
	AwsS3 interface {
		Enabled() bool
		GetFile(ctx context.Context, objectKey string) (io.ReadCloser, string, error)
		GetPublicLinkKey(objectKey string) string
		GetObjectKeyFromLink(link string) string
	}

	awsS3 struct {
		client *s3.Client
		bucket string
		region string
	}
)

func NewAwsS3() AwsS3 {
	bucket := utils.GetConfig("AWS_S3_BUCKET")
	region := utils.GetConfig("AWS_S3_REGION")

	storage := &awsS3{
		bucket: bucket,
		region: region,
	}

	if bucket == "" {
		return storage
	}

	cfg, err := awsconfig.LoadDefaultConfig(
		context.Background(),
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			utils.GetConfig("AWS_ACCESS_KEY"),
			utils.GetConfig("AWS_SECRET_KEY"),
			"",
		)),
	)
	if err != nil {
		log.Printf("failed to load AWS configuration, media storage disabled: %v", err)
		return storage
	}

	storage.client = s3.NewFromConfig(cfg)
	return storage
}

func (s *awsS3) Enabled() bool {
	return s.client != nil
}

func (s *awsS3) GetFile(ctx context.Context, objectKey string) (io.ReadCloser, string, error) {
	if s.client == nil {
		return nil, "", fmt.Errorf("media storage is not configured")
	}

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(objectKey),
	})
	if err != nil {
		return nil, "", err
	}

	contentType := "application/octet-stream"
	if out.ContentType != nil {
		contentType = *out.ContentType
	}
	return out.Body, contentType, nil
}

func (s *awsS3) GetPublicLinkKey(objectKey string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, objectKey)
}

func (s *awsS3) GetObjectKeyFromLink(link string) string {
	prefix := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/", s.bucket, s.region)
	if !strings.HasPrefix(link, prefix) {
		return ""
	}
	return strings.TrimPrefix(link, prefix)
}
