package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveDecode(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewDecodeMetrics(reg)

	m.ObserveDecode("waterrat", ResultOK, time.Millisecond)
	m.ObserveDecode("waterrat", ResultOK, time.Millisecond)
	m.ObserveDecode("sdi12", ResultTooShort, time.Millisecond)

	if got := testutil.ToFloat64(m.DecodeTotal.WithLabelValues("waterrat", ResultOK)); got != 2 {
		t.Fatalf("waterrat ok = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.DecodeTotal.WithLabelValues("sdi12", ResultTooShort)); got != 1 {
		t.Fatalf("sdi12 too_short = %v, want 1", got)
	}
}

func TestObserveBatch(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewDecodeMetrics(reg)
	m.ObserveBatch(3, 1, 2)

	if got := testutil.ToFloat64(m.LogLinesTotal.WithLabelValues("skipped")); got != 2 {
		t.Fatalf("skipped = %v, want 2", got)
	}
}

func TestNilMetricsAreNoop(t *testing.T) {
	var m *DecodeMetrics
	m.ObserveDecode("analog", ResultOK, 0)
	m.ObserveBatch(1, 1, 1)
}

func TestHandlerExposesMetrics(t *testing.T) {
	reg := NewRegistry()
	m := NewDecodeMetrics(reg)
	m.ObserveDecode("peoplecounter", ResultOK, time.Microsecond)

	rec := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body := rec.Body.String()
	if !strings.Contains(body, `ewpayload_decode_total{product="peoplecounter",result="ok"} 1`) {
		t.Fatalf("decode counter missing from exposition:\n%s", body)
	}
	if !strings.Contains(body, "go_goroutines") {
		t.Fatal("go collector missing from exposition")
	}
}
