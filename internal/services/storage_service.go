// internal/services/storage_service.go
package services

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/projectgichatbot-max/gitag-backend/internal/config"
)

// StorageService is the client of the external media host: it takes a
// binary plus a logical folder tag and returns the stored URL with
// metadata. Without AWS credentials it stores files on local disk so
// development keeps working.
type StorageService struct {
	s3Client *s3.S3
	config   *config.Config
	logger   *logrus.Logger
}

type UploadResult struct {
	URL      string `json:"url"`
	Key      string `json:"key"`
	Size     int64  `json:"size"`
	MimeType string `json:"mimeType"`
}

type UploadOptions struct {
	Folder       string
	MaxSize      int64 // in bytes
	AllowedTypes []string
}

func NewStorageService(cfg *config.Config, logger *logrus.Logger) *StorageService {
	if cfg.AWS.AccessKeyID == "" {
		logger.Warn("AWS credentials not configured, storing uploads locally")
		return &StorageService{config: cfg, logger: logger}
	}

	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(cfg.AWS.Region),
		Credentials: credentials.NewStaticCredentials(
			cfg.AWS.AccessKeyID,
			cfg.AWS.SecretAccessKey,
			"",
		),
	})
	if err != nil {
		logger.WithError(err).Warn("AWS session failed, storing uploads locally")
		return &StorageService{config: cfg, logger: logger}
	}

	return &StorageService{
		s3Client: s3.New(sess),
		config:   cfg,
		logger:   logger,
	}
}

func (s *StorageService) UploadFile(file multipart.File, header *multipart.FileHeader, options UploadOptions) (*UploadResult, error) {
	if options.MaxSize > 0 && header.Size > options.MaxSize {
		return nil, fmt.Errorf("file size %d bytes exceeds maximum allowed size %d bytes", header.Size, options.MaxSize)
	}

	if len(options.AllowedTypes) > 0 {
		fileExt := strings.ToLower(filepath.Ext(header.Filename))
		allowed := false
		for _, allowedType := range options.AllowedTypes {
			if fileExt == allowedType {
				allowed = true
				break
			}
		}
		if !allowed {
			return nil, fmt.Errorf("file type %s is not allowed", fileExt)
		}
	}

	key := s.generateKey(header.Filename, options.Folder)

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	mimeType := header.Header.Get("Content-Type")
	if s.s3Client != nil {
		return s.uploadToS3(fileBytes, key, mimeType)
	}
	return s.uploadToLocal(fileBytes, key, mimeType)
}

func (s *StorageService) uploadToS3(data []byte, key, mimeType string) (*UploadResult, error) {
	_, err := s.s3Client.PutObject(&s3.PutObjectInput{
		Bucket:      aws.String(s.config.AWS.S3Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(mimeType),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload to S3: %w", err)
	}

	url := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.config.AWS.S3Bucket, s.config.AWS.Region, key)
	if s.config.AWS.CloudFrontURL != "" {
		url = fmt.Sprintf("%s/%s", strings.TrimRight(s.config.AWS.CloudFrontURL, "/"), key)
	}

	s.logger.WithFields(logrus.Fields{"key": key, "size": len(data)}).Info("file uploaded to S3")
	return &UploadResult{
		URL:      url,
		Key:      key,
		Size:     int64(len(data)),
		MimeType: mimeType,
	}, nil
}

func (s *StorageService) uploadToLocal(data []byte, key, mimeType string) (*UploadResult, error) {
	path := filepath.Join(s.config.Upload.LocalDir, key)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write file: %w", err)
	}

	return &UploadResult{
		URL:      "/" + filepath.ToSlash(path),
		Key:      key,
		Size:     int64(len(data)),
		MimeType: mimeType,
	}, nil
}

func (s *StorageService) generateKey(filename, folder string) string {
	ext := filepath.Ext(filename)
	name := fmt.Sprintf("%s_%s%s", time.Now().Format("20060102"), uuid.NewString(), ext)
	if folder == "" {
		folder = "misc"
	}
	return filepath.ToSlash(filepath.Join(folder, name))
}
