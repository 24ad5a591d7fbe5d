package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/jkalnins/daybook/internal/common"
	"github.com/jkalnins/daybook/internal/server/config"
	"github.com/jkalnins/daybook/internal/server/models"
)

func stubPresign(t *testing.T) {
	t.Helper()

	origLoad := loadDefaultAWSConfig
	origPut := presignPutObject
	origGet := presignGetObject
	t.Cleanup(func() {
		loadDefaultAWSConfig = origLoad
		presignPutObject = origPut
		presignGetObject = origGet
	})

	loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, nil
	}
	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return &v4.PresignedHTTPRequest{URL: "https://s3.test/put/" + *in.Key}, nil
	}
	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return &v4.PresignedHTTPRequest{URL: "https://s3.test/get/" + *in.Key}, nil
	}
}

func newAttachmentFixture(t *testing.T) (*AttachmentService, *fakeEntriesRepo, *fakeAttachmentsRepo) {
	t.Helper()
	stubPresign(t)

	entriesRepo := newFakeEntriesRepo()
	attachmentsRepo := newFakeAttachmentsRepo()
	cfg := &config.Config{S3Bucket: "attachments", S3Region: "us-east-1"}
	svc := NewAttachmentService(nil, &fakeRepoManager{entries: entriesRepo, attachments: attachmentsRepo}, cfg)
	return svc, entriesRepo, attachmentsRepo
}

func seedEntry(repo *fakeEntriesRepo, id string, owner models.UserID) {
	repo.byID[id] = &models.Entry{ID: id, UserID: owner, Title: "t", CreatedAt: time.Now()}
}

func TestRequestUpload_Success(t *testing.T) {
	svc, entriesRepo, attachmentsRepo := newAttachmentFixture(t)
	seedEntry(entriesRepo, "e-1", "u-1")

	got, err := svc.RequestUpload(context.Background(), "u-1", "e-1", "photo.jpg")
	if err != nil {
		t.Fatalf("RequestUpload error: %v", err)
	}
	if !strings.HasPrefix(got.UploadURL, "https://s3.test/put/") {
		t.Fatalf("unexpected upload url: %q", got.UploadURL)
	}
	if got.Attachment.FileName != "photo.jpg" || got.Attachment.StorageKey == "" {
		t.Fatalf("unexpected attachment: %+v", got.Attachment)
	}
	if attachmentsRepo.byID[got.Attachment.ID] == nil {
		t.Fatal("attachment metadata not persisted")
	}
}

func TestRequestUpload_ForeignEntryIsNotFound(t *testing.T) {
	svc, entriesRepo, _ := newAttachmentFixture(t)
	seedEntry(entriesRepo, "e-1", "u-1")

	_, err := svc.RequestUpload(context.Background(), "intruder", "e-1", "photo.jpg")
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("want common.ErrNotFound, got %v", err)
	}
}

func TestGetDownloadURL_Success(t *testing.T) {
	svc, entriesRepo, attachmentsRepo := newAttachmentFixture(t)
	seedEntry(entriesRepo, "e-1", "u-1")

	attachmentsRepo.byID["a-1"] = &models.Attachment{
		ID: "a-1", EntryID: "e-1", UserID: "u-1", FileName: "photo.jpg", StorageKey: "entries/x",
	}

	url, err := svc.GetDownloadURL(context.Background(), "u-1", "a-1")
	if err != nil {
		t.Fatalf("GetDownloadURL error: %v", err)
	}
	if url != "https://s3.test/get/entries/x" {
		t.Fatalf("unexpected url: %q", url)
	}
}

func TestGetDownloadURL_ForeignOwnerIsNotFound(t *testing.T) {
	svc, _, attachmentsRepo := newAttachmentFixture(t)
	attachmentsRepo.byID["a-1"] = &models.Attachment{ID: "a-1", UserID: "u-1", StorageKey: "k"}

	_, err := svc.GetDownloadURL(context.Background(), "intruder", "a-1")
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("want common.ErrNotFound, got %v", err)
	}
}

func TestAttachmentList_ChecksEntryOwnership(t *testing.T) {
	svc, entriesRepo, attachmentsRepo := newAttachmentFixture(t)
	seedEntry(entriesRepo, "e-1", "u-1")
	attachmentsRepo.byID["a-1"] = &models.Attachment{ID: "a-1", EntryID: "e-1", UserID: "u-1"}

	got, err := svc.List(context.Background(), "u-1", "e-1")
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 attachment, got %d", len(got))
	}

	if _, err := svc.List(context.Background(), "intruder", "e-1"); !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("want common.ErrNotFound, got %v", err)
	}
}
