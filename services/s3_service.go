package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// UploadURLExpiry is how long a presigned avatar upload stays valid.
const UploadURLExpiry = 5 * time.Minute

// BlobStore keeps avatar images outside the record store.
type BlobStore interface {
	// PutObject stores body under key and returns the URL clients read it from.
	PutObject(ctx context.Context, key, contentType string, body []byte) (string, error)
	// PresignUpload returns a URL a client can PUT the object to directly, and the URL the
	// object will be readable at afterwards.
	PresignUpload(ctx context.Context, key, contentType string) (uploadURL, publicURL string, err error)
}

// S3API is the part of the S3 client used for uploads.
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Presigner signs upload requests.
type Presigner interface {
	PresignPutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

// S3Service stores avatars in a bucket that is publicly readable (directly or through a CDN).
type S3Service struct {
	Client    S3API
	Presigner Presigner
	Bucket    string

	// PublicBaseURL replaces https://<bucket>.s3.amazonaws.com when set, e.g. a CloudFront domain.
	PublicBaseURL string
}

func NewS3Service(cfg aws.Config, bucket, publicBaseURL string) *S3Service {
	client := s3.NewFromConfig(cfg)
	return &S3Service{
		Client:        client,
		Presigner:     s3.NewPresignClient(client),
		Bucket:        bucket,
		PublicBaseURL: publicBaseURL,
	}
}

func (s *S3Service) PutObject(ctx context.Context, key, contentType string, body []byte) (string, error) {
	_, err := s.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.Bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(body),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(body))),
	})
	if err != nil {
		return "", fmt.Errorf("failed to put object %s in bucket %s: %w", key, s.Bucket, err)
	}
	return s.PublicURL(key), nil
}

// PresignUpload generates a presigned URL for uploading an object
func (s *S3Service) PresignUpload(ctx context.Context, key, contentType string) (string, string, error) {
	if s.Presigner == nil {
		return "", "", ErrBlobStorageDisabled
	}

	params := &s3.PutObjectInput{
		Bucket:      aws.String(s.Bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}
	presigned, err := s.Presigner.PresignPutObject(ctx, params, s3.WithPresignExpires(UploadURLExpiry))
	if err != nil {
		return "", "", fmt.Errorf("failed to presign upload for %s: %w", key, err)
	}
	return presigned.URL, s.PublicURL(key), nil
}

// PublicURL is where a stored object can be read.
func (s *S3Service) PublicURL(key string) string {
	if s.PublicBaseURL != "" {
		return strings.TrimRight(s.PublicBaseURL, "/") + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.Bucket, key)
}
