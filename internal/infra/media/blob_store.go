// Package media stores uploaded images in a gocloud.dev blob bucket (S3, local files or memory).
package media

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"strings"

	"servicehub/config"
	"servicehub/internal/domain/service"
	"servicehub/internal/errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	"gocloud.dev/blob/memblob"
	"gocloud.dev/blob/s3blob"
)

// Provider names accepted in media.provider.
const (
	ProviderS3   = "s3"
	ProviderFile = "file"
	ProviderMem  = "mem"
)

var allowedTypes = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// blobStore implements service.MediaStore on top of a blob.Bucket.
type blobStore struct {
	bucket  *blob.Bucket
	baseURL string
}

// NewBlobStore wraps an opened bucket. Object URLs are baseURL joined with the key.
func NewBlobStore(bucket *blob.Bucket, baseURL string) service.MediaStore {
	return &blobStore{bucket: bucket, baseURL: strings.TrimRight(baseURL, "/")}
}

// Upload sniffs the content type, writes the object and returns its public URL.
func (s *blobStore) Upload(ctx context.Context, folder string, file service.MediaUpload) (string, error) {
	if len(file.Data) == 0 {
		return "", errors.Wrap(service.ErrUnsupportedMediaType, "empty file")
	}

	contentType := http.DetectContentType(file.Data)
	ext, ok := allowedTypes[contentType]
	if !ok {
		return "", errors.Wrapf(service.ErrUnsupportedMediaType, "content type %s", contentType)
	}

	key := path.Join(folder, uuid.NewString()+ext)
	if err := s.bucket.WriteAll(ctx, key, file.Data, &blob.WriterOptions{
		ContentType: contentType,
		Metadata:    map[string]string{"original-name": path.Base(file.FileName)},
	}); err != nil {
		return "", errors.Wrapf(err, "failed to write object %s", key)
	}

	return s.baseURL + "/" + (&url.URL{Path: key}).EscapedPath(), nil
}

// Params defines the dependencies of the media store.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the bucket named by media.provider and closes it on shutdown.
func New(params Params) (service.MediaStore, error) {
	cfg := params.Config.Media

	bucket, baseURL, err := openBucket(context.Background(), cfg)
	if err != nil {
		return nil, err
	}
	if cfg.PublicBaseURL != "" {
		baseURL = cfg.PublicBaseURL
	}

	params.Logger.Info("Media store initialized",
		slog.String("provider", cfg.Provider),
		slog.String("baseUrl", baseURL),
	)
	params.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return bucket.Close()
		},
	})

	return NewBlobStore(bucket, baseURL), nil
}

func openBucket(ctx context.Context, cfg *config.MediaConfig) (*blob.Bucket, string, error) {
	switch cfg.Provider {
	case ProviderS3:
		return openS3Bucket(ctx, cfg)
	case ProviderFile:
		if cfg.Dir == "" {
			return nil, "", errors.New("media.dir is required for the file provider")
		}
		bucket, err := fileblob.OpenBucket(cfg.Dir, &fileblob.Options{CreateDir: true})
		if err != nil {
			return nil, "", errors.Wrapf(err, "failed to open media dir %s", cfg.Dir)
		}

		return bucket, "file://" + cfg.Dir, nil
	case "", ProviderMem:
		return memblob.OpenBucket(nil), "mem://media", nil
	default:
		return nil, "", errors.Errorf("unknown media provider: %s", cfg.Provider)
	}
}

func openS3Bucket(ctx context.Context, cfg *config.MediaConfig) (*blob.Bucket, string, error) {
	if cfg.Bucket == "" || cfg.Region == "" {
		return nil, "", errors.New("media.bucket and media.region are required for the s3 provider")
	}

	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}
	if cfg.AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to load AWS config")
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			// S3-compatible stores such as MinIO need path-style addressing.
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	bucket, err := s3blob.OpenBucket(ctx, client, cfg.Bucket, nil)
	if err != nil {
		return nil, "", errors.Wrapf(err, "failed to open bucket %s", cfg.Bucket)
	}

	return bucket, "https://" + cfg.Bucket + ".s3." + cfg.Region + ".amazonaws.com", nil
}

// Module provides the media FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(New),
)
