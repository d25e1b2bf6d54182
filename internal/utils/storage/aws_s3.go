package storage

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"foodgram/internal/utils"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

type (
	// AwsS3 stores base64 image payloads ("data:image/png;base64,...." or a
	// bare base64 string) as S3 objects and returns the public object URL.
	AwsS3 interface {
		UploadBase64Image(ctx context.Context, folder string, payload string) (string, error)
	}

	awsS3 struct {
		bucket string
		region string
	}
)

func NewAwsS3() AwsS3 {
	return &awsS3{
		bucket: utils.GetConfig("AWS_S3_BUCKET"),
		region: utils.GetConfig("AWS_S3_REGION"),
	}
}

func (s *awsS3) client(ctx context.Context) (*s3.Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(
		ctx,
		awsconfig.WithRegion(s.region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			utils.GetConfig("AWS_ACCESS_KEY"),
			utils.GetConfig("AWS_SECRET_KEY"),
			"",
		)),
	)
	if err != nil {
		return nil, err
	}
	return s3.NewFromConfig(cfg), nil
}

func (s *awsS3) UploadBase64Image(ctx context.Context, folder string, payload string) (string, error) {
	contentType := "image/jpeg"
	ext := "jpg"
	data := payload

	if strings.HasPrefix(payload, "data:") {
		parts := strings.SplitN(payload, ";base64,", 2)
		if len(parts) != 2 {
			return "", fmt.Errorf("malformed data URI")
		}
		contentType = strings.TrimPrefix(parts[0], "data:")
		data = parts[1]
		if idx := strings.Index(contentType, "/"); idx >= 0 {
			ext = contentType[idx+1:]
		}
	}

	decoded, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return "", err
	}

	client, err := s.client(ctx)
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("%s/%s.%s", folder, uuid.New().String(), ext)
	_, err = client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(decoded),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key), nil
}
