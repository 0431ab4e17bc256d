package adapter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	m "github.com/mouse-blink/party/internal/model"
)

// SourceKind tells how a registry source is retrieved.
type SourceKind string

// Registry source kinds.
const (
	SourceHTTP  SourceKind = "http"
	SourceS3    SourceKind = "s3"
	SourceLocal SourceKind = "local"
)

// ClassifySource returns the kind of a registry source string. Absolute
// http(s) and s3 URIs are remote; everything else is a local path.
func ClassifySource(source string) SourceKind {
	u, err := url.Parse(source)
	if err != nil || u.Host == "" {
		return SourceLocal
	}

	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		return SourceHTTP
	case "s3":
		return SourceS3
	default:
		return SourceLocal
	}
}

// RegistryFetcher retrieves the raw payload of one registry source.
type RegistryFetcher interface {
	Fetch(ctx context.Context, source string) ([]byte, error)
}

// S3GetObjectAPI is the subset of the S3 client used to read registries.
type S3GetObjectAPI interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// S3Options configures the S3 client used for s3:// sources.
type S3Options struct {
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
}

// NewS3Client builds an S3 client. Without keys the client signs nothing,
// which is enough for public buckets.
func NewS3Client(opts S3Options) *s3.Client {
	region := opts.Region
	if region == "" {
		region = "us-east-1"
	}

	var credentials aws.CredentialsProvider = aws.AnonymousCredentials{}
	if opts.AccessKeyID != "" {
		creds := aws.Credentials{
			AccessKeyID:     opts.AccessKeyID,
			SecretAccessKey: opts.SecretAccessKey,
			Source:          "party",
		}
		credentials = aws.CredentialsProviderFunc(func(context.Context) (aws.Credentials, error) {
			return creds, nil
		})
	}

	return s3.New(s3.Options{
		Region:      region,
		Credentials: credentials,
		BaseEndpoint: func() *string {
			if opts.Endpoint == "" {
				return nil
			}

			return aws.String(opts.Endpoint)
		}(),
		UsePathStyle: opts.Endpoint != "",
	})
}

// SourceFetcher fetches registry sources over HTTP, from S3 or from the
// local filesystem relative to a base directory.
type SourceFetcher struct {
	http    HTTPClient
	s3      S3GetObjectAPI
	fs      SourceFSAdapter
	baseDir m.Path
}

// NewSourceFetcher constructs a SourceFetcher. s3Client may be nil when no
// s3:// sources are configured.
func NewSourceFetcher(httpClient HTTPClient, s3Client S3GetObjectAPI, fs SourceFSAdapter, baseDir m.Path) *SourceFetcher {
	return &SourceFetcher{http: httpClient, s3: s3Client, fs: fs, baseDir: baseDir}
}

// ExecutableDir returns the directory of the running program.
func ExecutableDir() m.Path {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}

	return m.Path(filepath.Dir(exe))
}

// Fetch returns the payload of source.
func (f *SourceFetcher) Fetch(ctx context.Context, source string) ([]byte, error) {
	switch ClassifySource(source) {
	case SourceHTTP:
		return f.http.Get(ctx, source)
	case SourceS3:
		return f.fetchS3(ctx, source)
	default:
		return f.fs.ReadFile(f.fs.FullPath(source, f.baseDir))
	}
}

func (f *SourceFetcher) fetchS3(ctx context.Context, source string) ([]byte, error) {
	if f.s3 == nil {
		return nil, errors.New("s3 registry sources are not configured")
	}

	u, err := url.Parse(source)
	if err != nil {
		return nil, err
	}

	key := strings.TrimPrefix(u.Path, "/")
	if key == "" {
		return nil, fmt.Errorf("s3 source %q has no object key", source)
	}

	out, err := f.s3.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(u.Host),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("get s3 object %s: %w", source, err)
	}

	defer func() {
		_ = out.Body.Close()
	}()

	return io.ReadAll(out.Body)
}
