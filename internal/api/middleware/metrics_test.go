package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mulelash/MB-BeautyService/pkg/metrics"
)

func TestMetricsMiddleware_RecordsRequestWithStatusAndRouteTemplate(t *testing.T) {
	m := metrics.New("middleware-test")

	r := mux.NewRouter()
	r.Use(MetricsMiddleware(m))
	r.HandleFunc("/orders/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}).Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/orders/42", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)

	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)

	var found bool
	for _, mf := range families {
		if mf.GetName() != "http_requests_total" {
			continue
		}
		for _, sample := range mf.GetMetric() {
			labels := make(map[string]string)
			for _, l := range sample.GetLabel() {
				labels[l.GetName()] = l.GetValue()
			}
			if labels["method"] != http.MethodGet || labels["status"] != "404" {
				continue
			}
			found = true
			// the route template keeps cardinality bounded
			assert.Equal(t, "/orders/{id}", labels["path"])
			assert.Equal(t, float64(1), sample.GetCounter().GetValue())
		}
	}
	assert.True(t, found, "expected an http_requests_total sample with status=404")
}
