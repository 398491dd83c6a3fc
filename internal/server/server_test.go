package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"auction-front/internal/clock"
	"auction-front/internal/config"
	"auction-front/internal/seed"
	"auction-front/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	utils.SetLogOutput(io.Discard)
	os.Exit(m.Run())
}

func newTestApp(t *testing.T, vars map[string]string) *App {
	t.Helper()

	cfg, err := config.FromMap(vars)
	require.NoError(t, err)
	listings, err := seed.Load()
	require.NoError(t, err)

	app, err := NewApp(cfg, clock.NewMock(time.Date(2024, 3, 10, 9, 30, 0, 0, time.UTC)), listings)
	require.NoError(t, err)
	t.Cleanup(app.Close)
	return app
}

func serve(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCORSMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		allow      string
		origin     string
		method     string
		wantOrigin string
		wantStatus int
	}{
		{name: "reflects_origin", allow: "*", origin: "http://localhost:3000", method: http.MethodGet, wantOrigin: "http://localhost:3000", wantStatus: http.StatusOK},
		{name: "no_origin", allow: "", method: http.MethodGet, wantOrigin: "*", wantStatus: http.StatusOK},
		{name: "fixed_origin", allow: "https://shop.example", origin: "http://evil.example", method: http.MethodGet, wantOrigin: "https://shop.example", wantStatus: http.StatusOK},
		{name: "preflight", allow: "*", origin: "http://localhost:3000", method: http.MethodOptions, wantOrigin: "http://localhost:3000", wantStatus: http.StatusNoContent},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			r := gin.New()
			r.Use(CORSMiddleware(tc.allow))
			r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

			req := httptest.NewRequest(tc.method, "/ping", nil)
			if tc.origin != "" {
				req.Header.Set("Origin", tc.origin)
			}
			w := serve(r, req)
			require.Equal(t, tc.wantStatus, w.Code)
			require.Equal(t, tc.wantOrigin, w.Header().Get("Access-Control-Allow-Origin"))
			require.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), http.MethodDelete)
		})
	}
}

func TestRequestLoggerMiddleware_RequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestLoggerMiddleware)
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("request_id"))
	})

	w := serve(r, httptest.NewRequest(http.MethodGet, "/ping", nil))
	generated := w.Header().Get(RequestIDHeader)
	require.True(t, utils.IsID(generated))
	require.Equal(t, generated, w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	given := utils.GenerateID()
	req.Header.Set(RequestIDHeader, given)
	w = serve(r, req)
	require.Equal(t, given, w.Header().Get(RequestIDHeader))

	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "not-a-uuid")
	w = serve(r, req)
	require.NotEqual(t, "not-a-uuid", w.Header().Get(RequestIDHeader))
}

func TestBodyLimitMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(BodyLimitMiddleware(8))
	r.POST("/echo", func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.Status(http.StatusRequestEntityTooLarge)
			return
		}
		c.String(http.StatusOK, string(body))
	})

	w := serve(r, httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader("small")))
	require.Equal(t, http.StatusOK, w.Code)

	w = serve(r, httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader("far too large")))
	require.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestRecoverJSON(t *testing.T) {
	r := gin.New()
	r.Use(gin.CustomRecovery(recoverJSON))
	r.GET("/boom", func(c *gin.Context) { panic("boom") })

	w := serve(r, httptest.NewRequest(http.MethodGet, "/boom", nil))
	require.Equal(t, http.StatusInternalServerError, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "internal server error", resp["message"])
	require.Equal(t, "panic: boom", resp["error"])
}

func TestUploadLimit(t *testing.T) {
	require.Equal(t, int64(0), uploadLimit(0))
	require.Equal(t, int64(2*100+multipartOverhead), uploadLimit(100))
}

func TestNewApp_HealthAndRoutes(t *testing.T) {
	app := newTestApp(t, map[string]string{"PAYMENT_DELAY": "0s"})

	w := serve(app.Router, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, w.Code)

	w = serve(app.Router, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	require.Equal(t, http.StatusServiceUnavailable, w.Code)

	app.Health.SetReady(true)
	w = serve(app.Router, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	require.Equal(t, http.StatusOK, w.Code)

	w = serve(app.Router, httptest.NewRequest(http.MethodGet, "/listings", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data []map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 2)

	w = serve(app.Router, httptest.NewRequest(http.MethodGet, "/no-such-route", nil))
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestNewApp_AppliesConfig(t *testing.T) {
	app := newTestApp(t, map[string]string{
		"PAYMENT_DELAY":   "0s",
		"INITIAL_BALANCE": "500",
		"USER_NAME":       "Jane Roe",
		"TIMEZONE":        "Europe/Berlin",
	})

	require.Equal(t, "500", app.Service.Balance().String())
	require.Equal(t, "Jane Roe", app.Service.CurrentUser().Name)
	require.Equal(t, "Europe/Berlin", app.Service.CurrentDate().Location().String())

	req := httptest.NewRequest(http.MethodPost, "/listings/2/bids", bytes.NewReader([]byte(`{"amount": 1250000}`)))
	req.Header.Set("Content-Type", "application/json")
	w := serve(app.Router, req)
	require.Equal(t, http.StatusCreated, w.Code)
	require.True(t, app.Service.Balance().IsNegative())
}

func TestNewApp_RejectsDuplicateSeed(t *testing.T) {
	cfg, err := config.FromMap(map[string]string{})
	require.NoError(t, err)
	listings, err := seed.Load()
	require.NoError(t, err)

	_, err = NewApp(cfg, clock.NewMock(time.Now()), append(listings, listings[0]))
	require.Error(t, err)
}
