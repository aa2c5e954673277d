package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/shopinsight"
	main "github.com/fwojciec/shopinsight/cmd/shopinsight"
	"github.com/fwojciec/shopinsight/mock"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain_Run(t *testing.T) {
	t.Parallel()

	t.Run("shows help and fails without a command", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := main.NewMain().Run(context.Background(), []string{}, stdout, stderr)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "no command specified")
		assert.Contains(t, stdout.String(), "extract")
		assert.Contains(t, stdout.String(), "serve")
	})

	t.Run("help succeeds", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := main.NewMain().Run(context.Background(), []string{"--help"}, stdout, stderr)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "shopinsight")
	})

	t.Run("extract prints insights as json", func(t *testing.T) {
		t.Parallel()

		var gotURL string
		m := main.NewMain()
		m.Extractor = &mock.InsightExtractor{
			ExtractBrandInsightsFn: func(ctx context.Context, websiteURL string) (*shopinsight.BrandInsights, error) {
				gotURL = websiteURL
				insights := shopinsight.NewBrandInsights()
				insights.SocialHandles = []string{"https://instagram.com/acme"}
				return insights, nil
			},
		}
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"extract", "https://shop.example"}, stdout, stderr)

		require.NoError(t, err)
		assert.Equal(t, "https://shop.example", gotURL)

		var got shopinsight.BrandInsights
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &got))
		assert.Equal(t, []string{"https://instagram.com/acme"}, got.SocialHandles)
		assert.Contains(t, stdout.String(), "\n  \"brand_name\": null")
	})

	t.Run("extract writes report into out dir", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		m := main.NewMain()
		m.Extractor = &mock.InsightExtractor{
			ExtractBrandInsightsFn: func(ctx context.Context, websiteURL string) (*shopinsight.BrandInsights, error) {
				return shopinsight.NewBrandInsights(), nil
			},
		}
		stdout := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"extract", "--out-dir", dir, "https://shop.example"}, stdout, &bytes.Buffer{})

		require.NoError(t, err)
		path := filepath.Join(dir, "shop.example.json")
		assert.Equal(t, path+"\n", stdout.String())
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"product_catalog": []`)
	})

	t.Run("extract reports unreachable site", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		m.Extractor = &mock.InsightExtractor{
			ExtractBrandInsightsFn: func(ctx context.Context, websiteURL string) (*shopinsight.BrandInsights, error) {
				return nil, shopinsight.Errorf(shopinsight.EUNREACHABLE, "website not reachable")
			},
		}
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"extract", "https://gone.example"}, stdout, stderr)

		require.Error(t, err)
		assert.Equal(t, shopinsight.EUNREACHABLE, shopinsight.ErrorCode(err))
		assert.Contains(t, stderr.String(), "error: website not reachable")
		assert.Empty(t, stdout.String())
	})

	t.Run("extract requires a url", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		m.Extractor = &mock.InsightExtractor{}

		err := m.Run(context.Background(), []string{"extract"}, &bytes.Buffer{}, &bytes.Buffer{})

		require.Error(t, err)
	})

	t.Run("rejects unknown provider", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		m.Extractor = &mock.InsightExtractor{}

		err := m.Run(context.Background(), []string{"--provider=claude", "extract", "https://shop.example"}, &bytes.Buffer{}, &bytes.Buffer{})

		require.Error(t, err)
	})

	t.Run("missing openrouter key fails before extracting", func(t *testing.T) {
		t.Parallel()

		err := main.NewMain().Run(context.Background(),
			[]string{"--openrouter-api-key=", "extract", "https://shop.example"},
			&bytes.Buffer{}, &bytes.Buffer{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "OPEN_ROUTER_API_KEY not set")
	})

	t.Run("serve stops when context is canceled", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		m.Extractor = &mock.InsightExtractor{}
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := m.Run(ctx, []string{"serve", "--addr=127.0.0.1:0"}, &bytes.Buffer{}, &bytes.Buffer{})

		require.NoError(t, err)
	})
}

func TestCLI_Wire(t *testing.T) {
	t.Parallel()

	t.Run("requires gemini key for gemini provider", func(t *testing.T) {
		t.Parallel()

		cli := &main.CLI{Provider: "gemini"}

		_, _, err := cli.Wire(context.Background(), nil, nil)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "GEMINI_API_KEY not set")
	})
}
