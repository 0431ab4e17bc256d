package adapter

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/party/internal/model"
)

type fakeS3 struct {
	objects map[string]string
	input   *s3.GetObjectInput
}

func (f *fakeS3) GetObject(_ context.Context, params *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	f.input = params

	body, ok := f.objects[aws.ToString(params.Bucket)+"/"+aws.ToString(params.Key)]
	if !ok {
		return nil, errors.New("NoSuchKey")
	}

	return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(body))}, nil
}

func TestClassifySource(t *testing.T) {
	tests := []struct {
		source string
		want   SourceKind
	}{
		{"https://example.org/index.json", SourceHTTP},
		{"HTTP://example.org/index.json", SourceHTTP},
		{"s3://bucket/v1/index.json", SourceS3},
		{"index.json", SourceLocal},
		{"/srv/registry/index.json", SourceLocal},
		{`C:\registry\index.json`, SourceLocal},
		{"file:///srv/index.json", SourceLocal},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifySource(tt.source))
		})
	}
}

func TestLocalHTTPClient_Get(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "party-test", r.Header.Get("User-Agent"))

		if r.URL.Path == "/missing" {
			http.NotFound(w, r)
			return
		}

		_, _ = w.Write([]byte(`{"packages":[]}`))
	}))
	defer server.Close()

	client := NewLocalHTTPClient("party-test", 5*time.Second)

	data, err := client.Get(t.Context(), server.URL+"/index.json")
	require.NoError(t, err)
	assert.Equal(t, `{"packages":[]}`, string(data))

	_, err = client.Get(t.Context(), server.URL+"/missing")

	var statusErr *HTTPStatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
	assert.Contains(t, err.Error(), "404")
}

func TestSourceFetcher_Fetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("from-http"))
	}))
	defer server.Close()

	base := t.TempDir()
	writeTestFile(t, filepath.Join(base, "local.json"), "from-disk")

	s3Client := &fakeS3{objects: map[string]string{"bucket/v1/index.json": "from-s3"}}
	fetcher := NewSourceFetcher(NewLocalHTTPClient("", time.Second), s3Client, NewLocalSourceFSAdapter(), m.Path(base))

	tests := []struct {
		source string
		want   string
	}{
		{server.URL + "/index.json", "from-http"},
		{"s3://bucket/v1/index.json", "from-s3"},
		{"local.json", "from-disk"},
		{filepath.Join(base, "local.json"), "from-disk"},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			data, err := fetcher.Fetch(t.Context(), tt.source)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(data))
		})
	}

	assert.Equal(t, "bucket", aws.ToString(s3Client.input.Bucket))
	assert.Equal(t, "v1/index.json", aws.ToString(s3Client.input.Key))
}

func TestSourceFetcher_FetchErrors(t *testing.T) {
	fs := NewLocalSourceFSAdapter()

	withoutS3 := NewSourceFetcher(NewLocalHTTPClient("", time.Second), nil, fs, m.Path(t.TempDir()))
	_, err := withoutS3.Fetch(t.Context(), "s3://bucket/index.json")
	assert.ErrorContains(t, err, "not configured")

	fetcher := NewSourceFetcher(NewLocalHTTPClient("", time.Second), &fakeS3{}, fs, m.Path(t.TempDir()))

	_, err = fetcher.Fetch(t.Context(), "s3://bucket")
	assert.ErrorContains(t, err, "no object key")

	_, err = fetcher.Fetch(t.Context(), "s3://bucket/missing.json")
	assert.ErrorContains(t, err, "NoSuchKey")

	_, err = fetcher.Fetch(t.Context(), "missing.json")
	assert.True(t, IsNotExist(err))
}

type recordedRequest struct {
	mu            sync.Mutex
	path          string
	authorization string
}

func newObjectServer(t *testing.T, body string) (*httptest.Server, *recordedRequest) {
	t.Helper()

	rec := &recordedRequest{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.mu.Lock()
		rec.path = r.URL.Path
		rec.authorization = r.Header.Get("Authorization")
		rec.mu.Unlock()

		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(server.Close)

	return server, rec
}

func getObject(t *testing.T, client *s3.Client) string {
	t.Helper()

	out, err := client.GetObject(t.Context(), &s3.GetObjectInput{
		Bucket: aws.String("bucket"),
		Key:    aws.String("v1/index.json"),
	})
	require.NoError(t, err)

	defer func() { _ = out.Body.Close() }()

	data, err := io.ReadAll(out.Body)
	require.NoError(t, err)

	return string(data)
}

func TestNewS3Client(t *testing.T) {
	client := NewS3Client(S3Options{Endpoint: "http://localhost:9000"})

	opts := client.Options()
	assert.Equal(t, "us-east-1", opts.Region)
	assert.True(t, opts.UsePathStyle)
	assert.Equal(t, "http://localhost:9000", aws.ToString(opts.BaseEndpoint))
	assert.Nil(t, opts.Credentials)

	signed := NewS3Client(S3Options{Region: "eu-west-1", AccessKeyID: "id", SecretAccessKey: "secret"})
	creds, err := signed.Options().Credentials.Retrieve(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "id", creds.AccessKeyID)
	assert.Equal(t, "eu-west-1", signed.Options().Region)
}

func TestNewS3Client_AnonymousRequestsAreUnsigned(t *testing.T) {
	server, rec := newObjectServer(t, `{"packages":[]}`)

	body := getObject(t, NewS3Client(S3Options{Endpoint: server.URL}))
	assert.JSONEq(t, `{"packages":[]}`, body)

	rec.mu.Lock()
	defer rec.mu.Unlock()

	assert.Equal(t, "/bucket/v1/index.json", rec.path)
	assert.Empty(t, rec.authorization)
}

func TestNewS3Client_KeysSignRequests(t *testing.T) {
	server, rec := newObjectServer(t, `{}`)

	getObject(t, NewS3Client(S3Options{
		Endpoint:        server.URL,
		AccessKeyID:     "id",
		SecretAccessKey: "secret",
	}))

	rec.mu.Lock()
	defer rec.mu.Unlock()

	assert.True(t, strings.HasPrefix(rec.authorization, "AWS4-HMAC-SHA256 Credential=id/"), rec.authorization)
}
