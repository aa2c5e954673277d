package gin_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/fwojciec/shopinsight"
	sigin "github.com/fwojciec/shopinsight/gin"
	"github.com/fwojciec/shopinsight/mock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func extracting(fn func(ctx context.Context, websiteURL string) (*shopinsight.BrandInsights, error)) *mock.InsightExtractor {
	return &mock.InsightExtractor{ExtractBrandInsightsFn: fn}
}

func postExtract(t *testing.T, h http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, sigin.ExtractPath, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestServer_Extract(t *testing.T) {
	t.Parallel()

	t.Run("returns insights as json", func(t *testing.T) {
		t.Parallel()

		var gotURL string
		extractor := extracting(func(ctx context.Context, websiteURL string) (*shopinsight.BrandInsights, error) {
			gotURL = websiteURL
			insights := shopinsight.NewBrandInsights()
			insights.ProductCatalog = []shopinsight.Product{{Name: "Widget", ProductURL: "https://shop.example/products/widget"}}
			return insights, nil
		})
		s := sigin.NewServer(extractor, discardLogger())

		rec := postExtract(t, s.Handler(), `{"website_url":"https://shop.example"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "https://shop.example", gotURL)
		assert.JSONEq(t, `{
			"brand_name": null,
			"product_catalog": [{"name":"Widget","price":null,"image_url":null,"product_url":"https://shop.example/products/widget"}],
			"hero_products": [],
			"privacy_policy": null,
			"return_policy": null,
			"refund_policy": null,
			"faqs": [],
			"contact_details": [],
			"social_handles": [],
			"brand_about": null,
			"important_links": []
		}`, rec.Body.String())
	})

	t.Run("unreachable site maps to 401 with message", func(t *testing.T) {
		t.Parallel()

		extractor := extracting(func(ctx context.Context, websiteURL string) (*shopinsight.BrandInsights, error) {
			return nil, shopinsight.Errorf(shopinsight.EUNREACHABLE, "website not reachable")
		})
		s := sigin.NewServer(extractor, discardLogger())

		rec := postExtract(t, s.Handler(), `{"website_url":"https://gone.example"}`)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"detail":"website not reachable"}`, rec.Body.String())
	})

	t.Run("other failures map to 500 without leaking cause", func(t *testing.T) {
		t.Parallel()

		var logs bytes.Buffer
		extractor := extracting(func(ctx context.Context, websiteURL string) (*shopinsight.BrandInsights, error) {
			return nil, errors.New("openrouter returned HTTP 401: invalid api key sk-secret")
		})
		s := sigin.NewServer(extractor, slog.New(slog.NewTextHandler(&logs, nil)))

		rec := postExtract(t, s.Handler(), `{"website_url":"https://shop.example"}`)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"detail":"Internal server error"}`, rec.Body.String())
		assert.NotContains(t, rec.Body.String(), "sk-secret")
		assert.Contains(t, logs.String(), "extraction failed")
	})

	t.Run("missing website_url is 422", func(t *testing.T) {
		t.Parallel()

		s := sigin.NewServer(&mock.InsightExtractor{}, discardLogger())

		rec := postExtract(t, s.Handler(), `{}`)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("malformed body is 422", func(t *testing.T) {
		t.Parallel()

		s := sigin.NewServer(&mock.InsightExtractor{}, discardLogger())

		rec := postExtract(t, s.Handler(), `{"website_url":`)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("relative or non-http url is 422", func(t *testing.T) {
		t.Parallel()

		s := sigin.NewServer(&mock.InsightExtractor{}, discardLogger())

		for _, body := range []string{
			`{"website_url":"shop.example"}`,
			`{"website_url":"/collections/all"}`,
			`{"website_url":"ftp://shop.example"}`,
		} {
			rec := postExtract(t, s.Handler(), body)
			assert.Equal(t, http.StatusUnprocessableEntity, rec.Code, body)
		}
	})
}

func TestServer_Health(t *testing.T) {
	t.Parallel()

	s := sigin.NewServer(&mock.InsightExtractor{}, discardLogger())
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	s.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, rec.Body.String())
}

func TestServer_Metrics(t *testing.T) {
	t.Parallel()

	t.Run("mounts metrics handler", func(t *testing.T) {
		t.Parallel()

		metrics := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("shopinsight_fetches_total 1\n"))
		})
		s := sigin.NewServer(&mock.InsightExtractor{}, discardLogger(), sigin.WithMetricsHandler(metrics))
		req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
		rec := httptest.NewRecorder()

		s.Handler().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "shopinsight_fetches_total")
	})

	t.Run("absent without handler", func(t *testing.T) {
		t.Parallel()

		s := sigin.NewServer(&mock.InsightExtractor{}, discardLogger())
		req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
		rec := httptest.NewRecorder()

		s.Handler().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestServer_Middleware(t *testing.T) {
	t.Parallel()

	t.Run("assigns request id", func(t *testing.T) {
		t.Parallel()

		var logs bytes.Buffer
		s := sigin.NewServer(&mock.InsightExtractor{}, slog.New(slog.NewTextHandler(&logs, nil)))
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rec := httptest.NewRecorder()

		s.Handler().ServeHTTP(rec, req)

		id := rec.Header().Get(sigin.RequestIDHeader)
		assert.Len(t, id, 36)
		assert.Contains(t, logs.String(), "request_id="+id)
		assert.Contains(t, logs.String(), "path=/health")
		assert.Contains(t, logs.String(), "status=200")
	})

	t.Run("propagates caller request id", func(t *testing.T) {
		t.Parallel()

		s := sigin.NewServer(&mock.InsightExtractor{}, discardLogger())
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set(sigin.RequestIDHeader, "abc-123")
		rec := httptest.NewRecorder()

		s.Handler().ServeHTTP(rec, req)

		assert.Equal(t, "abc-123", rec.Header().Get(sigin.RequestIDHeader))
	})

	t.Run("allows any origin by default", func(t *testing.T) {
		t.Parallel()

		s := sigin.NewServer(&mock.InsightExtractor{}, discardLogger())
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("Origin", "https://dashboard.example")
		rec := httptest.NewRecorder()

		s.Handler().ServeHTTP(rec, req)

		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("restricts origins when configured", func(t *testing.T) {
		t.Parallel()

		s := sigin.NewServer(&mock.InsightExtractor{}, discardLogger(),
			sigin.WithCORSOrigins([]string{"https://dashboard.example"}))

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("Origin", "https://dashboard.example")
		rec := httptest.NewRecorder()
		s.Handler().ServeHTTP(rec, req)
		assert.Equal(t, "https://dashboard.example", rec.Header().Get("Access-Control-Allow-Origin"))

		req = httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("Origin", "https://evil.example")
		rec = httptest.NewRecorder()
		s.Handler().ServeHTTP(rec, req)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("recovers from panics", func(t *testing.T) {
		t.Parallel()

		extractor := extracting(func(ctx context.Context, websiteURL string) (*shopinsight.BrandInsights, error) {
			panic("boom")
		})
		s := sigin.NewServer(extractor, discardLogger())

		rec := postExtract(t, s.Handler(), `{"website_url":"https://shop.example"}`)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestServer_Serve(t *testing.T) {
	t.Parallel()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	s := sigin.NewServer(&mock.InsightExtractor{}, discardLogger(), sigin.WithShutdownTimeout(time.Second))
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/health")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "healthy")

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
