package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/yanizio/apidemo/internal/requestinfo"
)

func TestClientEchoesRequestInfo(t *testing.T) {
	h := requestinfo.Enrich(nil, zap.NewNop().Sugar())((&Comp{}).Routes())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Language", "es-MX,es;q=0.8")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var env struct {
		Success bool             `json:"success"`
		Data    requestinfo.Info `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.True(t, env.Success)
	assert.Equal(t, "es-mx", env.Data.PrimaryLang)
	assert.Equal(t, "missing", env.Data.Authorization)
}

func TestClientWithoutEnrich(t *testing.T) {
	rec := httptest.NewRecorder()
	(&Comp{}).Routes().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
