// Package candidate archives every generated method candidate, installed
// or rejected, to object storage so the system's self-modifications leave
// a reviewable history. Archiving is best effort: a write failure is
// logged and never fails the dispatch that produced the candidate.
package candidate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type S3Config struct {
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// Record is one archived candidate.
type Record struct {
	TargetID   string    `json:"targetId"`
	Method     string    `json:"method"`
	Source     string    `json:"source"`
	Verdict    string    `json:"verdict"`
	Reason     string    `json:"reason,omitempty"`
	ArchivedAt time.Time `json:"archivedAt"`
}

// S3Store writes candidate records to a minio/S3 bucket.
type S3Store struct {
	client     *minio.Client
	bucketName string
	region     string
	initOnce   sync.Once
	initErr    error
}

func NewS3Store(cfg S3Config) (*S3Store, error) {
	endpoint := strings.TrimSpace(cfg.Endpoint)
	if endpoint == "" {
		return nil, fmt.Errorf("s3 endpoint is required")
	}
	access := strings.TrimSpace(cfg.AccessKey)
	secret := strings.TrimSpace(cfg.SecretKey)
	if access == "" || secret == "" {
		return nil, fmt.Errorf("s3 access key and secret key are required")
	}
	bucket := strings.TrimSpace(cfg.Bucket)
	if bucket == "" {
		return nil, fmt.Errorf("s3 bucket is required")
	}
	region := strings.TrimSpace(cfg.Region)
	if region == "" {
		region = "us-east-1"
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(access, secret, ""),
		Secure: cfg.UseSSL,
		Region: region,
	})
	if err != nil {
		return nil, fmt.Errorf("init s3 client: %w", err)
	}

	return &S3Store{
		client:     client,
		bucketName: bucket,
		region:     region,
	}, nil
}

func (s *S3Store) ensureBucket(ctx context.Context) error {
	s.initOnce.Do(func() {
		exists, err := s.client.BucketExists(ctx, s.bucketName)
		if err != nil {
			s.initErr = err
			return
		}
		if exists {
			return
		}
		s.initErr = s.client.MakeBucket(ctx, s.bucketName, minio.MakeBucketOptions{Region: s.region})
	})
	return s.initErr
}

// ArchiveCandidate persists one record under
// candidates/<target>/<method>/<timestamp>.json.
func (s *S3Store) ArchiveCandidate(ctx context.Context, targetID, method, source, verdict, reason string) {
	if s == nil {
		return
	}
	rec := Record{
		TargetID:   targetID,
		Method:     method,
		Source:     source,
		Verdict:    verdict,
		Reason:     reason,
		ArchivedAt: time.Now().UTC(),
	}
	raw, err := json.Marshal(rec)
	if err != nil {
		log.Printf("candidate archive: encode record: %v", err)
		return
	}
	if err := s.ensureBucket(ctx); err != nil {
		log.Printf("candidate archive: ensure bucket: %v", err)
		return
	}
	key := fmt.Sprintf("candidates/%s/%s/%d.json", targetID, method, rec.ArchivedAt.UnixNano())
	_, err = s.client.PutObject(ctx, s.bucketName, key, bytes.NewReader(raw), int64(len(raw)),
		minio.PutObjectOptions{ContentType: "application/json"})
	if err != nil {
		log.Printf("candidate archive: put %s: %v", key, err)
	}
}
