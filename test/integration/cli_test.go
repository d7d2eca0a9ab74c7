package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/finwise/fincalc/internal/cache"
	"github.com/finwise/fincalc/internal/config"
	"github.com/finwise/fincalc/internal/server"
	"github.com/finwise/fincalc/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// TestAPIBatchFromFile posts the example batch file to a running server.
func TestAPIBatchFromFile(t *testing.T) {
	data, err := os.ReadFile(requestsFile)
	require.NoError(t, err)

	var doc config.BatchFile
	require.NoError(t, yaml.Unmarshal(data, &doc))
	body, err := json.Marshal(server.BatchRequest{Calculations: doc.Calculations})
	require.NoError(t, err)

	svc := service.New(service.WithCache(cache.NewMemoryStore(0)))
	ts := httptest.NewServer(server.NewServer(config.DefaultAppConfig().Server, svc, nil).Router())
	defer ts.Close()

	resp, err := http.Post(ts.URL+"/api/v1/batch", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var envelope struct {
		Success bool                  `json:"success"`
		Data    server.BatchResponse `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	assert.True(t, envelope.Success)
	assert.Len(t, envelope.Data.Items, 7)
	assert.Equal(t, 1, envelope.Data.Failed)
	assert.Equal(t, "₹8.6 Cr", envelope.Data.Items[5].Entries[0].Value)
}
