package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/jkalnins/daybook/internal/common"
	sc "github.com/jkalnins/daybook/internal/server/config"
	"github.com/jkalnins/daybook/internal/server/models"
	"github.com/jkalnins/daybook/internal/server/repositories/repomanager"
)

const presignValidity = 15 * time.Minute

var (
	loadDefaultAWSConfig = awsconfig.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignPutObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignPutObject(ctx, in, optFns...)
	}
	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}
)

// AttachmentService manages binary files attached to diary entries. Metadata
// lives in the database; the bytes go straight to S3-compatible storage via
// presigned URLs, so file content never passes through this server.
type AttachmentService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	config      *sc.Config
}

func NewAttachmentService(db *sql.DB, m repomanager.RepositoryManager, config *sc.Config) *AttachmentService {
	return &AttachmentService{db: db, repomanager: m, config: config}
}

// AttachmentUpload is the response to an upload request: the stored metadata
// plus a short-lived URL the client PUTs the file bytes to.
type AttachmentUpload struct {
	Attachment *models.Attachment
	UploadURL  string
}

func randomStorageKey() string {
	d := time.Now()
	return fmt.Sprintf("entries/%d/%d/%d/%v", d.Year(), d.Month(), d.Day(), uuid.New())
}

func (s *AttachmentService) getPresignClient() (*s3.PresignClient, error) {
	cfg, err := loadDefaultAWSConfig(context.Background(),
		awsconfig.WithRegion(s.config.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
	})

	return newS3PresignClient(client), nil
}

// RequestUpload registers attachment metadata under the given entry and
// returns a presigned PUT URL for the bytes. The entry must belong to the
// caller; a foreign or missing entry reports not-found.
func (s *AttachmentService) RequestUpload(ctx context.Context, userID models.UserID, entryID, fileName string) (*AttachmentUpload, error) {
	entry, err := s.repomanager.Entries(s.db).GetByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if !models.Owns(userID, entry) {
		return nil, common.ErrNotFound
	}

	presignClient, err := s.getPresignClient()
	if err != nil {
		return nil, err
	}

	bucket := s.config.S3Bucket
	key := randomStorageKey()

	req, err := presignPutObject(presignClient, ctx, &s3.PutObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(presignValidity))
	if err != nil {
		return nil, err
	}

	attachment := &models.Attachment{
		ID:         uuid.New().String(),
		EntryID:    entryID,
		UserID:     userID,
		FileName:   fileName,
		StorageKey: key,
		CreatedAt:  time.Now(),
	}
	if err := s.repomanager.Attachments(s.db).Create(ctx, attachment); err != nil {
		return nil, fmt.Errorf("error creating attachment: %w", err)
	}

	return &AttachmentUpload{Attachment: attachment, UploadURL: req.URL}, nil
}

// List returns attachment metadata for one of the caller's entries.
func (s *AttachmentService) List(ctx context.Context, userID models.UserID, entryID string) ([]*models.Attachment, error) {
	entry, err := s.repomanager.Entries(s.db).GetByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if !models.Owns(userID, entry) {
		return nil, common.ErrNotFound
	}
	return s.repomanager.Attachments(s.db).ListByEntry(ctx, entryID, userID)
}

// GetDownloadURL returns a presigned GET URL for one attachment.
func (s *AttachmentService) GetDownloadURL(ctx context.Context, userID models.UserID, attachmentID string) (string, error) {
	attachment, err := s.repomanager.Attachments(s.db).GetByID(ctx, attachmentID)
	if err != nil {
		return "", err
	}
	if !models.Owns(userID, attachment) {
		return "", common.ErrNotFound
	}

	presignClient, err := s.getPresignClient()
	if err != nil {
		return "", err
	}

	bucket := s.config.S3Bucket
	req, err := presignGetObject(presignClient, ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &attachment.StorageKey,
	}, s3.WithPresignExpires(presignValidity))
	if err != nil {
		return "", err
	}
	return req.URL, nil
}

// Delete removes attachment metadata. The stored object is left for a
// lifecycle rule to reap.
func (s *AttachmentService) Delete(ctx context.Context, userID models.UserID, attachmentID string) error {
	return s.repomanager.Attachments(s.db).Delete(ctx, attachmentID, userID)
}
