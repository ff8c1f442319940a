package utils

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"mime"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ImageStore uploads recipe images to an S3 bucket. Construct with
// NewImageStore; a nil *ImageStore is a valid "uploads disabled"
// value, handlers check Enabled before use.
type ImageStore struct {
	client *s3.Client
	bucket string
	region string
}

func NewImageStore(ctx context.Context, bucket, region string) (*ImageStore, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return &ImageStore{client: s3.NewFromConfig(cfg), bucket: bucket, region: region}, nil
}

func (is *ImageStore) Enabled() bool { return is != nil }

// UploadBase64Image accepts a "data:<mime>;base64,<data>" payload,
// stores it under keyPrefix and returns the public object URL.
func (is *ImageStore) UploadBase64Image(ctx context.Context, base64Data, keyPrefix string) (string, error) {
	parts := strings.Split(base64Data, ",")
	if len(parts) != 2 {
		return "", fmt.Errorf("invalid base64 image")
	}
	meta := parts[0]
	data := parts[1]

	metaParts := strings.SplitN(meta, ":", 2)
	if len(metaParts) != 2 {
		return "", fmt.Errorf("invalid base64 image header")
	}
	contentType := strings.SplitN(metaParts[1], ";", 2)[0] // "image/jpeg"

	ext := extensionFor(contentType)

	imageData, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}

	key := fmt.Sprintf("%s/%d%s", keyPrefix, time.Now().UnixNano(), ext)

	_, err = is.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(is.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(imageData),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("s3 upload: %w", err)
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", is.bucket, is.region, key), nil
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/jpeg", "image/jpg":
		return ".jpg"
	}
	if exts, _ := mime.ExtensionsByType(contentType); len(exts) > 0 {
		return exts[0]
	}
	if parts := strings.SplitN(contentType, "/", 2); len(parts) == 2 {
		return "." + parts[1]
	}
	return ""
}
