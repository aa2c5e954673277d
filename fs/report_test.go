package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/shopinsight"
	"github.com/fwojciec/shopinsight/fs"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		url  string
		want string
	}{
		{"root", "https://shop.example.com", "shop.example.com.json"},
		{"root slash", "https://shop.example.com/", "shop.example.com.json"},
		{"path", "https://shop.example.com/collections/all", "shop.example.com_collections_all.json"},
		{"host case", "https://Shop.Example.com/", "shop.example.com.json"},
		{"unsafe chars", "https://shop.example.com/a%20b/c?x=1", "shop.example.com_ab_c.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := fs.ReportName(tt.url)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReportName_RejectsURLWithoutHost(t *testing.T) {
	t.Parallel()

	_, err := fs.ReportName("/just/a/path")

	assert.Equal(t, shopinsight.EINVALID, shopinsight.ErrorCode(err))
}

func TestReportStore_WritesJSONReport(t *testing.T) {
	t.Parallel()

	// Given a store targeting a fresh directory
	base := filepath.Join(t.TempDir(), "reports")
	store := fs.NewReportStore(base)
	insights := shopinsight.NewBrandInsights()
	insights.BrandName = shopinsight.OptionalString("Acme")

	// When I write a report
	path, err := store.WriteReport(context.Background(), "https://acme.example.com", insights)

	// Then the report lands under the host name
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "acme.example.com.json"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got shopinsight.BrandInsights
	require.NoError(t, json.Unmarshal(data, &got))
	require.NotNil(t, got.BrandName)
	assert.Equal(t, "Acme", *got.BrandName)
	assert.Empty(t, got.ProductCatalog)
}

func TestReportStore_LeavesNoTempFiles(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	store := fs.NewReportStore(base)

	_, err := store.WriteReport(context.Background(), "https://acme.example.com", shopinsight.NewBrandInsights())
	require.NoError(t, err)

	entries, err := os.ReadDir(base)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "acme.example.com.json", entries[0].Name())
}

func TestReportStore_OverwritesPreviousReport(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	store := fs.NewReportStore(base)
	first := shopinsight.NewBrandInsights()
	first.BrandName = shopinsight.OptionalString("Old")
	second := shopinsight.NewBrandInsights()
	second.BrandName = shopinsight.OptionalString("New")

	_, err := store.WriteReport(context.Background(), "https://acme.example.com", first)
	require.NoError(t, err)
	path, err := store.WriteReport(context.Background(), "https://acme.example.com", second)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"New"`)
	assert.NotContains(t, string(data), `"Old"`)
}

func TestReportStore_RejectsNilInsights(t *testing.T) {
	t.Parallel()

	store := fs.NewReportStore(t.TempDir())

	_, err := store.WriteReport(context.Background(), "https://acme.example.com", nil)

	assert.Equal(t, shopinsight.EINVALID, shopinsight.ErrorCode(err))
}

func TestReportStore_RespectsCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	store := fs.NewReportStore(t.TempDir())

	_, err := store.WriteReport(ctx, "https://acme.example.com", shopinsight.NewBrandInsights())

	assert.ErrorIs(t, err, context.Canceled)
}
