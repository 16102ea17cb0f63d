package services

import (
	"context"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	sc "campushub/internal/server/config"
)

func newMediaService() *MediaService {
	cfg := &sc.Config{
		S3RootUser:     "admin",
		S3RootPassword: "secret",
		S3Bucket:       "media",
		S3Region:       "us-east-1",
		S3BaseEndpoint: "http://127.0.0.1:9000/",
	}
	return NewMediaService(cfg)
}

func TestGetRandomStorageKey_Layout(t *testing.T) {
	key := GetRandomStorageKey()
	if !strings.HasPrefix(key, "media/") {
		t.Fatalf("key must live under media/: %q", key)
	}
	if parts := strings.Split(key, "/"); len(parts) != 5 {
		t.Fatalf("key must be date-partitioned: %q", key)
	}
	if key == GetRandomStorageKey() {
		t.Fatalf("keys must be unique")
	}
}

func TestGetPresignedPutUrl_Success(t *testing.T) {
	origPut := presignPutObject
	defer func() { presignPutObject = origPut }()

	var gotBucket string
	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		gotBucket = aws.ToString(in.Bucket)
		return &v4.PresignedHTTPRequest{URL: "http://signed.example/" + aws.ToString(in.Key)}, nil
	}

	s := newMediaService()
	key, url, err := s.GetPresignedPutUrl(context.Background())
	if err != nil {
		t.Fatalf("GetPresignedPutUrl error: %v", err)
	}
	if gotBucket != "media" {
		t.Fatalf("wrong bucket: %q", gotBucket)
	}
	if key == "" || !strings.Contains(url, key) {
		t.Fatalf("key/url mismatch: key=%q url=%q", key, url)
	}
}

func TestGetPresignedPutUrl_Error(t *testing.T) {
	origPut := presignPutObject
	defer func() { presignPutObject = origPut }()

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return nil, errBoom{}
	}

	s := newMediaService()
	if _, _, err := s.GetPresignedPutUrl(context.Background()); err == nil {
		t.Fatalf("expected error")
	}
}

func TestGetPresignedGetUrl_Success(t *testing.T) {
	origGet := presignGetObject
	defer func() { presignGetObject = origGet }()

	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return &v4.PresignedHTTPRequest{URL: "http://signed.example/" + aws.ToString(in.Key)}, nil
	}

	s := newMediaService()
	url, err := s.GetPresignedGetUrl(context.Background(), "media/2026/8/25/logo")
	if err != nil {
		t.Fatalf("GetPresignedGetUrl error: %v", err)
	}
	if !strings.HasSuffix(url, "media/2026/8/25/logo") {
		t.Fatalf("unexpected url: %q", url)
	}
}
