package mock

import (
	"context"

	"github.com/fwojciec/shopinsight"
)

var _ shopinsight.Discoverer = (*Discoverer)(nil)

// Discoverer is a mock implementation of shopinsight.Discoverer.
type Discoverer struct {
	DiscoverProductEndpointsFn func(ctx context.Context, page shopinsight.Page) (*shopinsight.EndpointDiscovery, error)
	DiscoverFAQLinksFn         func(ctx context.Context, page shopinsight.Page) ([]string, error)
	ExtractFAQsFn              func(ctx context.Context, page shopinsight.Page) ([]shopinsight.FAQ, error)
}

func (d *Discoverer) DiscoverProductEndpoints(ctx context.Context, page shopinsight.Page) (*shopinsight.EndpointDiscovery, error) {
	return d.DiscoverProductEndpointsFn(ctx, page)
}

func (d *Discoverer) DiscoverFAQLinks(ctx context.Context, page shopinsight.Page) ([]string, error) {
	return d.DiscoverFAQLinksFn(ctx, page)
}

func (d *Discoverer) ExtractFAQs(ctx context.Context, page shopinsight.Page) ([]shopinsight.FAQ, error) {
	return d.ExtractFAQsFn(ctx, page)
}
