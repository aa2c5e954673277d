package shopinsight_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/shopinsight"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := shopinsight.Errorf(shopinsight.EUNREACHABLE, "website %q not reachable", "shop.example")

	assert.Equal(t, shopinsight.EUNREACHABLE, shopinsight.ErrorCode(err))
	assert.Equal(t, "website \"shop.example\" not reachable", shopinsight.ErrorMessage(err))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("fetch homepage: %w", shopinsight.Errorf(shopinsight.EUNREACHABLE, "HTTP 404"))

	assert.Equal(t, shopinsight.EUNREACHABLE, shopinsight.ErrorCode(err))
	assert.Equal(t, "HTTP 404", shopinsight.ErrorMessage(err))
}

func TestErrorCode_PlainErrorIsInternal(t *testing.T) {
	t.Parallel()

	err := errors.New("connection refused")

	assert.Equal(t, shopinsight.EINTERNAL, shopinsight.ErrorCode(err))
	assert.Equal(t, "Internal error", shopinsight.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, shopinsight.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, shopinsight.ErrorMessage(nil))
}

func TestNewBrandInsights_SerializesEmptyCollections(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(shopinsight.NewBrandInsights())
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(data, &got))

	for _, key := range []string{"product_catalog", "hero_products", "faqs", "contact_details", "social_handles", "important_links"} {
		assert.Equal(t, []any{}, got[key], key)
	}
	for _, key := range []string{"brand_name", "privacy_policy", "return_policy", "refund_policy", "brand_about"} {
		v, ok := got[key]
		assert.True(t, ok, key)
		assert.Nil(t, v, key)
	}
}

func TestProduct_SerializesMissingOptionalFieldsAsNull(t *testing.T) {
	t.Parallel()

	p := shopinsight.Product{Name: "Widget", ProductURL: "https://shop.example/products/widget"}

	data, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Widget","price":null,"image_url":null,"product_url":"https://shop.example/products/widget"}`, string(data))
}

func TestOptionalString(t *testing.T) {
	t.Parallel()

	assert.Nil(t, shopinsight.OptionalString(""))

	got := shopinsight.OptionalString("$19.99")
	require.NotNil(t, got)
	assert.Equal(t, "$19.99", *got)
}
