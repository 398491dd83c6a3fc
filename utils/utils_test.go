package utils

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestConfigureLogger(t *testing.T) {
	t.Cleanup(func() {
		require.NoError(t, ConfigureLogger("info", "json"))
		SetLogOutput(os.Stdout)
	})

	var buf bytes.Buffer
	SetLogOutput(&buf)

	require.NoError(t, ConfigureLogger("warn", "json"))
	Info("hidden", nil)
	require.Empty(t, buf.String())

	Warn("bid rejected", map[string]any{"listing_id": "1"})
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "bid rejected", entry["msg"])
	require.Equal(t, "warning", entry["level"])
	require.Equal(t, "1", entry["listing_id"])

	buf.Reset()
	require.NoError(t, ConfigureLogger("debug", "text"))
	Debug("visible", nil)
	require.Contains(t, buf.String(), `msg=visible`)

	require.Error(t, ConfigureLogger("loud", "json"))
	require.Error(t, ConfigureLogger("info", "xml"))
}

func TestGenerateID(t *testing.T) {
	a, b := GenerateID(), GenerateID()
	require.NotEqual(t, a, b)
	require.True(t, IsID(a))
	require.False(t, IsID(""))
	require.False(t, IsID("listing-1"))
}

func TestJSONEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	JSONResponse(c, http.StatusOK, map[string]int{"n": 1}, "ok")

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, float64(http.StatusOK), resp["status"])
	require.Equal(t, "ok", resp["message"])
	require.Equal(t, map[string]any{"n": float64(1)}, resp["data"])

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	AbortJSONError(c, http.StatusTeapot, errors.New("boom"), "failed")
	require.True(t, c.IsAborted())

	resp = nil
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, float64(http.StatusTeapot), resp["status"])
	require.Equal(t, "boom", resp["error"])
	require.NotContains(t, resp, "data")
}
