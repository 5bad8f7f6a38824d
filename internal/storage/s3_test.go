package storage

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	objects map[string][]byte
	types   map[string]string
	putErr  error
}

func newFakeS3() *fakeS3 {
	return &fakeS3{objects: map[string][]byte{}, types: map[string]string{}}
}

func (f *fakeS3) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.putErr != nil {
		return nil, f.putErr
	}
	data, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.objects[aws.ToString(in.Key)] = data
	f.types[aws.ToString(in.Key)] = aws.ToString(in.ContentType)
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	delete(f.objects, aws.ToString(in.Key))
	return &s3.DeleteObjectOutput{}, nil
}

func (f *fakeS3) HeadObject(_ context.Context, in *s3.HeadObjectInput, _ ...func(*s3.Options)) (*s3.HeadObjectOutput, error) {
	if _, ok := f.objects[aws.ToString(in.Key)]; !ok {
		return nil, &types.NotFound{}
	}
	return &s3.HeadObjectOutput{}, nil
}

func TestS3Store_SaveUsesPrefixedKey(t *testing.T) {
	client := newFakeS3()
	store := NewS3Store(client, "desserts")
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "7.gif", strings.NewReader("gif"), "image/gif"))

	assert.Equal(t, []byte("gif"), client.objects["images/reviews/7.gif"])
	assert.Equal(t, "image/gif", client.types["images/reviews/7.gif"])
	assert.Equal(t, "https://desserts.s3.amazonaws.com/images/reviews/7.gif", store.URL("7.gif"))
}

func TestS3Store_ExistsAndRemove(t *testing.T) {
	client := newFakeS3()
	store := NewS3Store(client, "desserts")
	ctx := context.Background()

	ok, err := store.Exists(ctx, "3.png")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Save(ctx, "3.png", strings.NewReader("png"), "image/png"))
	ok, err = store.Exists(ctx, "3.png")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, store.Remove(ctx, "3.png"))
	require.NoError(t, store.Remove(ctx, "3.png"))
	ok, err = store.Exists(ctx, "3.png")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestS3Store_SaveError(t *testing.T) {
	client := newFakeS3()
	client.putErr = errors.New("access denied")
	store := NewS3Store(client, "desserts")

	err := store.Save(context.Background(), "1.png", strings.NewReader("x"), "image/png")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "access denied")
}
