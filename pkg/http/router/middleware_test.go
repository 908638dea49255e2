package router

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/pthyseba/astar/pkg/costfunction"
	"github.com/pthyseba/astar/pkg/datastructure"
	"github.com/pthyseba/astar/pkg/engine/routing"
	http_server "github.com/pthyseba/astar/pkg/http/server"
	"github.com/pthyseba/astar/pkg/http/usecases"
	"github.com/pthyseba/astar/pkg/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestHandler(useRateLimit bool, met *metrics.Metric) http.Handler {
	var observer routing.SearchObserver
	if met != nil {
		observer = met
	}
	network := datastructure.NewLineNetwork(100, 50)
	engine := routing.NewChargingRoutingEngine(network, costfunction.NewChargingTimeFunction(network), zap.NewNop(),
		nil, observer, 0)
	service := usecases.NewRoutingService(zap.NewNop(), engine,
		usecases.FixedClock{At: time.Date(2024, time.March, 1, 8, 0, 0, 0, time.UTC)}, 5)

	config := http_server.Config{Port: 0, Timeout: time.Second, RateLimit: 1, RateBurst: 2}
	return NewAPI(zap.NewNop(), met).Handler(config, useRateLimit, service)
}

func TestHandlerRoutes(t *testing.T) {
	met := metrics.NewMetric()
	h := newTestHandler(false, met)

	testCases := []struct {
		name       string
		target     string
		wantStatus int
		wantBody   string
	}{
		{name: "heartbeat", target: "/healthz", wantStatus: http.StatusOK, wantBody: "."},
		{name: "route", target: "/api/computeRoute?origin=0&destination=31", wantStatus: http.StatusOK, wantBody: `"travel_time":57`},
		{name: "unknown", target: "/api/nothing", wantStatus: http.StatusNotFound},
		{name: "api docs", target: "/doc/doc.json", wantStatus: http.StatusOK, wantBody: `"/computeRoute"`},
		{name: "metrics", target: "/metrics", wantStatus: http.StatusOK, wantBody: `astar_searches_total{outcome="found"} 1`},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.target, nil))
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.True(t, strings.Contains(rec.Body.String(), tt.wantBody), rec.Body.String())
			}
		})
	}
}

func TestLimit(t *testing.T) {
	h := newTestHandler(true, nil)

	codes := []int{}
	for i := 0; i < 4; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/computeRoute?origin=0&destination=31", nil)
		req.Header.Set("X-Real-IP", "10.0.0.1")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests, http.StatusTooManyRequests}, codes)

	// another client has its own bucket
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Real-IP", "10.0.0.2")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRecoverPanic(t *testing.T) {
	api := NewAPI(zap.NewNop(), nil)
	h := api.recoverPanic(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "close", rec.Header().Get("Connection"))
}

func TestRealIP(t *testing.T) {
	var got string
	h := RealIP(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.RemoteAddr
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	h.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, "203.0.113.7", got)
}

func TestLoggerBoundsMetricLabels(t *testing.T) {
	met := metrics.NewMetric()
	h := newTestHandler(false, met)

	for i := 0; i < 500; i++ {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, fmt.Sprintf("/scan/%d", i), nil))
	}
	for i := 0; i < 50; i++ {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(fmt.Sprintf("M%d", i), "/api/computeRoute?origin=0&destination=31", nil))
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/computeRoute?origin=0&destination=31", nil))

	families, err := met.GetRegistry().Gather()
	require.NoError(t, err)

	labels := map[string]bool{}
	for _, family := range families {
		if family.GetName() != "astar_http_requests_total" {
			continue
		}
		for _, m := range family.GetMetric() {
			for _, lp := range m.GetLabel() {
				if lp.GetName() == "path" {
					labels[lp.GetValue()] = true
				}
			}
		}
		assert.LessOrEqual(t, len(family.GetMetric()), 4)
	}
	assert.Equal(t, map[string]bool{"other": true, "/api/computeRoute": true}, labels)
}

func TestRouteLabel(t *testing.T) {
	testCases := []struct {
		path string
		want string
	}{
		{path: "/api/computeRoute", want: "/api/computeRoute"},
		{path: "/metrics", want: "/metrics"},
		{path: "/doc/index.html", want: "/doc"},
		{path: "/debug/pprof/heap", want: "/debug/pprof"},
		{path: "/api/computeRoute/extra", want: "other"},
		{path: "/wp-login.php", want: "other"},
	}

	for _, tt := range testCases {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, routeLabel(tt.path))
		})
	}
	assert.Equal(t, "GET", methodLabel(http.MethodGet))
	assert.Equal(t, "OTHER", methodLabel("PROPFIND"))
}
