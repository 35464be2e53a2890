package infra

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/elasticsearch"
)

func TestNewElasticSearchConnection(t *testing.T) {
	container, err := elasticsearch.Run(
		context.Background(),
		"docker.elastic.co/elasticsearch/elasticsearch:8.17.4",
		testcontainers.WithEnv(map[string]string{
			"xpack.security.enabled": "false",
		}),
	)
	testcontainers.CleanupContainer(t, container)
	require.NoError(t, err)

	testCases := []struct {
		name      string
		input     ElasticsearchConfig
		expectErr bool
	}{
		{
			name:  "container address",
			input: ElasticsearchConfig{Addresses: []string{container.Settings.Address}},
		},
		{
			name:      "closed port",
			input:     ElasticsearchConfig{Addresses: []string{"http://127.0.0.1:1"}},
			expectErr: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			client, e := NewElasticSearchConnection(tc.input)
			if tc.expectErr {
				assert.Error(t, e)
				return
			}
			assert.NoError(t, e)
			assert.NotNil(t, client)
		})
	}
}
