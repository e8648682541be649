package metrics

import (
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordHTTPRequest(t *testing.T) {
	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/api/blog/posts", "200"))
	RecordHTTPRequest(http.MethodGet, "/api/blog/posts", http.StatusOK, 15*time.Millisecond)
	after := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "/api/blog/posts", "200"))
	assert.Equal(t, before+1, after)
}

func TestRecordHTTPRequestUnmatchedRoute(t *testing.T) {
	before := testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "unmatched", "404"))
	RecordHTTPRequest(http.MethodGet, "", http.StatusNotFound, time.Millisecond)
	assert.Equal(t, before+1, testutil.ToFloat64(HTTPRequestsTotal.WithLabelValues("GET", "unmatched", "404")))
}

func TestRecordGenerationAndSettings(t *testing.T) {
	gen := testutil.ToFloat64(BlogGenerationTotal.WithLabelValues("success"))
	RecordGeneration("success")
	assert.Equal(t, gen+1, testutil.ToFloat64(BlogGenerationTotal.WithLabelValues("success")))

	hit := testutil.ToFloat64(SettingsCacheFetchTotal.WithLabelValues("hit"))
	RecordSettingsRead("hit")
	RecordSettingsRead("hit")
	assert.Equal(t, hit+2, testutil.ToFloat64(SettingsCacheFetchTotal.WithLabelValues("hit")))
}
