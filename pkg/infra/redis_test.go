package infra

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

func TestNewRedisConnection(t *testing.T) {
	ctx := context.Background()
	container, err := tcredis.Run(ctx, "redis:7.4")
	testcontainers.CleanupContainer(t, container)
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "6379")
	require.NoError(t, err)

	testCases := []struct {
		name        string
		input       RedisConfig
		expectedErr bool
	}{
		{
			name:  "reachable server",
			input: RedisConfig{Host: host, Port: port.Int(), DB: 1},
		},
		{
			name:        "nothing listening",
			input:       RedisConfig{Host: host, Port: 1},
			expectedErr: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			client, e := NewRedisConnection(tc.input)
			if tc.expectedErr {
				assert.Error(t, e)
				assert.Nil(t, client)
				return
			}
			require.NoError(t, e)
			defer client.Close()
			assert.NoError(t, client.Set(ctx, "probe", "ok", 0).Err())
		})
	}
}
