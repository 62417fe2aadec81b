package media

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupersedeDeletesOldObject(t *testing.T) {
	gateway := newFakeGateway()
	c := NewCoordinator(gateway, testBaseURL)

	oldURL := testBaseURL + "/events/1-old.jpg"
	newURL := testBaseURL + "/events/2-new.jpg"

	outcome := c.Supersede(context.Background(), oldURL, newURL)
	assert.True(t, outcome.Deleted)
	require.Equal(t, 1, gateway.deleteCalls)
	assert.Equal(t, []string{"events/1-old.jpg"}, gateway.deletedKeys)
}

func TestSupersedeNoOldReference(t *testing.T) {
	gateway := newFakeGateway()
	c := NewCoordinator(gateway, testBaseURL)

	outcome := c.Supersede(context.Background(), "", testBaseURL+"/events/2-new.jpg")
	assert.False(t, outcome.Deleted)
	assert.Equal(t, "nothing to clean up", outcome.Reason)
	assert.Zero(t, gateway.deleteCalls)
}

func TestSupersedeUnchangedReference(t *testing.T) {
	gateway := newFakeGateway()
	c := NewCoordinator(gateway, testBaseURL)

	url := testBaseURL + "/events/1-same.jpg"
	outcome := c.Supersede(context.Background(), url, url)
	assert.False(t, outcome.Deleted)
	assert.Equal(t, "reference unchanged", outcome.Reason)
	assert.Zero(t, gateway.deleteCalls)
}

func TestSupersedeForeignURLNotDeleted(t *testing.T) {
	gateway := newFakeGateway()
	c := NewCoordinator(gateway, testBaseURL)

	outcome := c.Supersede(context.Background(), "https://evil.example.org/media/events/1-old.jpg", "")
	assert.False(t, outcome.Deleted)
	assert.Equal(t, "key resolution failed", outcome.Reason)
	assert.Zero(t, gateway.deleteCalls)
}

func TestSupersedeStorageUnavailable(t *testing.T) {
	gateway := newFakeGateway()
	gateway.available = false
	c := NewCoordinator(gateway, testBaseURL)

	outcome := c.Supersede(context.Background(), testBaseURL+"/events/1-old.jpg", "")
	assert.False(t, outcome.Deleted)
	assert.Equal(t, "storage unavailable", outcome.Reason)
	assert.Zero(t, gateway.deleteCalls)
}

func TestSupersedeDeleteFailureIsNonFatal(t *testing.T) {
	gateway := newFakeGateway()
	gateway.deleteErr = errors.New("access denied")
	c := NewCoordinator(gateway, testBaseURL)

	outcome := c.Supersede(context.Background(), testBaseURL+"/events/1-old.jpg", "")
	assert.False(t, outcome.Deleted)
	assert.Equal(t, "access denied", outcome.Reason)
}

func TestRemoveBareKey(t *testing.T) {
	gateway := newFakeGateway()
	c := NewCoordinator(gateway, testBaseURL)

	outcome := c.Remove(context.Background(), "events/1-old.jpg")
	assert.True(t, outcome.Deleted)
	assert.Equal(t, []string{"events/1-old.jpg"}, gateway.deletedKeys)
}

func TestRemoveLeadingSlashKey(t *testing.T) {
	gateway := newFakeGateway()
	c := NewCoordinator(gateway, testBaseURL)

	outcome := c.Remove(context.Background(), "/events/1-old.jpg")
	assert.True(t, outcome.Deleted)
	assert.Equal(t, []string{"events/1-old.jpg"}, gateway.deletedKeys)
}
