package media

import (
	"context"
	"io"
	"time"

	"fotostudio/internal/storage"
)

// fakeGateway считает обращения к хранилищу и позволяет подменять ошибки.
type fakeGateway struct {
	available bool

	putErr     error
	deleteErr  error
	presignErr error

	putCalls     int
	deleteCalls  int
	presignCalls int

	putKeys     []string
	deletedKeys []string
	presignKeys []string
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{available: true}
}

func (g *fakeGateway) Put(ctx context.Context, key string, body io.Reader, contentType string) error {
	g.putCalls++
	if g.putErr != nil {
		return g.putErr
	}
	g.putKeys = append(g.putKeys, key)
	return nil
}

func (g *fakeGateway) Delete(ctx context.Context, key string) error {
	g.deleteCalls++
	if g.deleteErr != nil {
		return g.deleteErr
	}
	g.deletedKeys = append(g.deletedKeys, key)
	return nil
}

func (g *fakeGateway) PresignPut(ctx context.Context, key string, contentType string, ttl time.Duration) (string, error) {
	g.presignCalls++
	if g.presignErr != nil {
		return "", g.presignErr
	}
	g.presignKeys = append(g.presignKeys, key)
	return "https://s3.example.com/bucket/" + key + "?signature=abc", nil
}

func (g *fakeGateway) IsAvailable() bool {
	return g.available
}

var _ storage.Gateway = (*fakeGateway)(nil)
