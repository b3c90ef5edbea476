package minio

import (
	"testing"

	"github.com/hupe1980/classmap/blobstore"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMinioStore_Integration requires a running MinIO instance.
// Skip if not available.
func TestMinioStore_Integration(t *testing.T) {
	endpoint := "localhost:9000"
	accessKey := "minioadmin"
	secretKey := "minioadmin"
	bucket := "test-classmap"

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: false,
	})
	if err != nil {
		t.Skipf("MinIO client creation failed: %v", err)
	}

	ctx := t.Context()

	// Check if MinIO is reachable
	if _, err = client.ListBuckets(ctx); err != nil {
		t.Skipf("MinIO not available: %v", err)
	}

	// Ensure bucket exists
	exists, err := client.BucketExists(ctx, bucket)
	require.NoError(t, err)
	if !exists {
		require.NoError(t, client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}))
	}

	store := NewStore(client, bucket, "test-prefix/")

	data := []byte(`{"version":1,"classes":[]}`)
	require.NoError(t, store.Put(ctx, "empty.json", data))

	got, err := blobstore.Get(ctx, store, "empty.json")
	require.NoError(t, err)
	assert.Equal(t, data, got)

	names, err := store.List(ctx, "")
	require.NoError(t, err)
	assert.Contains(t, names, "empty.json")

	_, err = store.Open(ctx, "missing.json")
	assert.ErrorIs(t, err, blobstore.ErrNotFound)

	// Cleanup
	_ = client.RemoveObject(ctx, bucket, store.key("empty.json"), minio.RemoveObjectOptions{})
}

func TestStore_Key(t *testing.T) {
	store := NewStore(nil, "b", "catalogs/")
	assert.Equal(t, "catalogs/people.yaml", store.key("people.yaml"))
	assert.Equal(t, "people.yaml", NewStore(nil, "b", "").key("people.yaml"))
}
