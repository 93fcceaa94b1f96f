package upload

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/geridir/core/internal/config"
	"github.com/google/uuid"
)

// presignTTL bounds how long a minted upload credential stays valid.
const presignTTL = 15 * time.Minute

// CloudinarySignature is a time-boxed upload credential for the
// Cloudinary direct-upload widget.
type CloudinarySignature struct {
	Signature string `json:"signature"`
	Timestamp int64  `json:"timestamp"`
	APIKey    string `json:"apiKey"`
	CloudName string `json:"cloudName"`
}

// PresignedUpload is a time-boxed S3 PUT credential plus the URL the
// object will be readable from afterwards.
type PresignedUpload struct {
	UploadURL string `json:"uploadUrl"`
	Key       string `json:"key"`
	PublicURL string `json:"publicUrl"`
	ExpiresIn int    `json:"expiresIn"`
}

// Service mints signed image-upload credentials. Image bytes never pass
// through this server, only the resulting URLs do.
type Service struct {
	cloudinary config.CloudinaryConfig
	s3cfg      config.S3Config
	presigner  *s3.PresignClient
	now        func() time.Time
}

func NewService(cloudinary config.CloudinaryConfig, s3cfg config.S3Config) *Service {
	client := s3.NewFromConfig(aws.Config{
		Region: s3cfg.Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			s3cfg.AccessKeyID, s3cfg.SecretAccessKey, ""),
	}, func(o *s3.Options) {
		if s3cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(s3cfg.Endpoint)
		}
		o.UsePathStyle = s3cfg.PathStyleAccess
	})

	return &Service{
		cloudinary: cloudinary,
		s3cfg:      s3cfg,
		presigner:  s3.NewPresignClient(client),
		now:        time.Now,
	}
}

// SignCloudinary produces the signature Cloudinary expects for a direct
// upload: sha1 over the sorted parameter string plus the API secret.
func (s *Service) SignCloudinary() CloudinarySignature {
	timestamp := s.now().Unix()
	return CloudinarySignature{
		Signature: cloudinarySignature(timestamp, s.cloudinary.APISecret),
		Timestamp: timestamp,
		APIKey:    s.cloudinary.APIKey,
		CloudName: s.cloudinary.CloudName,
	}
}

// cloudinarySignature implements Cloudinary's request signing for the
// timestamp-only parameter set.
func cloudinarySignature(timestamp int64, secret string) string {
	payload := "timestamp=" + strconv.FormatInt(timestamp, 10) + secret
	sum := sha1.Sum([]byte(payload))
	return hex.EncodeToString(sum[:])
}

// PresignPut mints a presigned S3 PUT URL for a fresh object key derived
// from the client's file name.
func (s *Service) PresignPut(ctx context.Context, fileName, contentType string) (*PresignedUpload, error) {
	key := s.objectKey(fileName)

	input := &s3.PutObjectInput{
		Bucket: aws.String(s.s3cfg.Bucket),
		Key:    aws.String(key),
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	req, err := s.presigner.PresignPutObject(ctx, input, s3.WithPresignExpires(presignTTL))
	if err != nil {
		return nil, fmt.Errorf("presign upload: %w", err)
	}

	return &PresignedUpload{
		UploadURL: req.URL,
		Key:       key,
		PublicURL: s.publicURL(key),
		ExpiresIn: int(presignTTL / time.Second),
	}, nil
}

// objectKey namespaces uploads by month and randomizes the base name,
// keeping only the original extension.
func (s *Service) objectKey(fileName string) string {
	ext := strings.ToLower(path.Ext(fileName))
	return fmt.Sprintf("uploads/%s/%s%s",
		s.now().Format("2006/01"), uuid.NewString(), ext)
}

func (s *Service) publicURL(key string) string {
	if domain := strings.TrimRight(s.s3cfg.CustomDomain, "/"); domain != "" {
		return domain + "/" + key
	}
	if endpoint := strings.TrimRight(s.s3cfg.Endpoint, "/"); endpoint != "" {
		return endpoint + "/" + s.s3cfg.Bucket + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s",
		s.s3cfg.Bucket, s.s3cfg.Region, key)
}
