package redis

import (
	"context"
	"fmt"
	"io"
	"os"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIncrWindow(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDRESS")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDRESS not set, skipping integration test")
	}

	log := logrus.New()
	log.SetOutput(io.Discard)

	client, err := New(Config{Address: addr}, log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	ctx := context.Background()
	key := fmt.Sprintf("test:incr:%d", time.Now().UnixNano())

	for want := int64(1); want <= 3; want++ {
		got, err := client.IncrWindow(ctx, key, 200*time.Millisecond)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	time.Sleep(300 * time.Millisecond)

	got, err := client.IncrWindow(ctx, key, 200*time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got, "counter restarts once the window expired")
}

func TestNew_UnreachableServer(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)

	_, err := New(Config{Address: "127.0.0.1:1"}, log)
	assert.Error(t, err)
}
