package repository

import (
	"io"
	"net/http"
	"net/url"
	"os"
	"testing"
	"time"

	"cloud.google.com/go/storage"
	"github.com/stretchr/testify/require"

	bCtx "github.com/gaslex/goapi/base/ctx"
)

func TestCloudStorageWriterRepoBaseUrl(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://cdn.gaslex.io", "https://cdn.gaslex.io/ads/a.png"},
		{"https://cdn.gaslex.io/", "https://cdn.gaslex.io/ads/a.png"},
		{"https://storage.googleapis.com/bucket", "https://storage.googleapis.com/bucket/ads/a.png"},
	}
	for _, tt := range tests {
		repo, err := NewCloudStorageWriterRepo(&CloudStorageWriterRepoCfg{Url: tt.url})
		require.NoError(t, err)
		r := repo.(*cloudStorageWriterRepo)
		require.Equal(t, tt.want, r.baseUrl.ResolveReference(mustParse(t, "ads/a.png")).String(), tt.url)
	}
}

// Needs application default credentials with write access, e.g.
// GASLEX_TEST_GCS_BUCKET=dev-storage.gaslex.io go test ./stores/web_resource/repository
func TestCloudStorageWriterRepoStore(t *testing.T) {
	bucket := os.Getenv("GASLEX_TEST_GCS_BUCKET")
	if bucket == "" {
		t.Skip("GASLEX_TEST_GCS_BUCKET not set")
	}
	req := require.New(t)
	c := bCtx.Background()

	client, err := storage.NewClient(c)
	req.NoError(err)
	defer client.Close()

	repo, err := NewCloudStorageWriterRepo(&CloudStorageWriterRepoCfg{
		Client:       client,
		BucketName:   bucket,
		Timeout:      10 * time.Second,
		Url:          "https://storage.googleapis.com/" + bucket,
		CacheControl: "no-store",
	})
	req.NoError(err)

	body := []byte(`{"title":"Gaslex","type":"text"}`)
	path := "testing/ads/sample.json"
	link, err := repo.Store(c, path, body, "application/json")
	req.NoError(err)
	defer client.Bucket(bucket).Object(path).Delete(c)

	resp, err := http.Get(link)
	req.NoError(err)
	defer resp.Body.Close()
	req.Equal(http.StatusOK, resp.StatusCode)
	got, err := io.ReadAll(resp.Body)
	req.NoError(err)
	req.Equal(body, got)
}

func mustParse(t *testing.T, raw string) *url.URL {
	u, err := url.Parse(raw)
	require.NoError(t, err)
	return u
}
