package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
}

func TestPrometheusRecordsRequests(t *testing.T) {
	reg := prometheus.NewRegistry()

	r := chi.NewRouter()
	r.Use(Prometheus(WithRegistry(reg)))
	r.Get("/toasts/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/toasts/42", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}

	found := map[string]bool{}
	for _, mf := range families {
		found[mf.GetName()] = true
		if mf.GetName() == "glaze_http_requests_total" {
			metric := mf.GetMetric()[0]
			labels := map[string]string{}
			for _, lp := range metric.GetLabel() {
				labels[lp.GetName()] = lp.GetValue()
			}
			// The route pattern, not the concrete path, keeps cardinality low.
			if labels["path"] != "/toasts/{id}" {
				t.Errorf("path label = %q, want route pattern", labels["path"])
			}
			if labels["status"] != "204" || labels["method"] != "GET" {
				t.Errorf("labels = %v", labels)
			}
			if metric.GetCounter().GetValue() != 1 {
				t.Errorf("count = %v, want 1", metric.GetCounter().GetValue())
			}
		}
	}

	for _, name := range []string{
		"glaze_http_requests_total",
		"glaze_http_request_duration_seconds",
	} {
		if !found[name] {
			t.Errorf("metric %s not registered", name)
		}
	}
}

func TestPrometheusCustomNamespace(t *testing.T) {
	reg := prometheus.NewRegistry()
	mw := Prometheus(WithRegistry(reg), WithNamespace("demo"), WithSubsystem("web"))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	mw(okHandler()).ServeHTTP(rec, req)

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	found := false
	for _, mf := range families {
		if mf.GetName() == "demo_web_requests_total" {
			found = true
		}
	}
	if !found {
		t.Fatal("namespaced metric not registered")
	}
}

func TestOpenTelemetryPassesThrough(t *testing.T) {
	mw := OpenTelemetry(WithTracerName("test"))

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	rec := httptest.NewRecorder()
	mw(okHandler()).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Fatalf("response = %d %q", rec.Code, rec.Body.String())
	}
}

func TestOpenTelemetryFilterSkips(t *testing.T) {
	mw := OpenTelemetry(WithRequestFilter(func(r *http.Request) bool {
		return !strings.HasPrefix(r.URL.Path, "/healthz")
	}))

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	mw(okHandler()).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	mw := RequestLogger(logger)
	req := httptest.NewRequest(http.MethodGet, "/demo", nil)
	rec := httptest.NewRecorder()
	mw(okHandler()).ServeHTTP(rec, req)

	out := buf.String()
	if !strings.Contains(out, "method=GET") || !strings.Contains(out, "path=/demo") {
		t.Fatalf("log line = %q", out)
	}
	if !strings.Contains(out, "status=200") {
		t.Fatalf("log line missing status: %q", out)
	}
}
