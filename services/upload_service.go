package services

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"
	"treeuniformes_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// UploadService hands out presigned S3 PUT URLs so product images are
// uploaded by the browser directly, never through this server.
type UploadService struct {
	logger    *gecho.Logger
	cfg       *structs.Config
	presigner *s3.PresignClient
}

func NewUploadService(logger *gecho.Logger, cfg *structs.Config) (*UploadService, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.Storage.Region),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg)

	return &UploadService{
		logger:    logger,
		cfg:       cfg,
		presigner: s3.NewPresignClient(client),
	}, nil
}

var extensionsByContentType = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// PresignUpload builds an object key for the file and returns a presigned
// PUT URL the client can upload to, plus the public URL of the object.
func (us *UploadService) PresignUpload(ctx context.Context, req *structs.UploadRequest) (*structs.UploadResponse, error) {
	ext := extensionsByContentType[req.ContentType]
	if ext == "" {
		ext = path.Ext(req.FileName)
	}

	objectKey := fmt.Sprintf("%s/%s/%s%s",
		strings.TrimSuffix(us.cfg.Storage.UploadPrefix, "/"),
		time.Now().Format("2006/01"),
		uuid.New().String(),
		ext,
	)

	expiry := us.cfg.Storage.PresignExpiry
	if expiry <= 0 {
		expiry = 15 * time.Minute
	}

	presigned, err := us.presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(us.cfg.Storage.Bucket),
		Key:         aws.String(objectKey),
		ContentType: aws.String(req.ContentType),
	}, s3.WithPresignExpires(expiry))
	if err != nil {
		us.logger.Error("Failed to presign upload",
			gecho.Field("error", err),
			gecho.Field("object_key", objectKey),
		)
		return nil, fmt.Errorf("failed to presign upload: %w", err)
	}

	return &structs.UploadResponse{
		UploadURL: presigned.URL,
		ObjectKey: objectKey,
		PublicURL: fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", us.cfg.Storage.Bucket, us.cfg.Storage.Region, objectKey),
	}, nil
}
