package main

import (
	sigin "github.com/fwojciec/shopinsight/gin"
	"github.com/gin-gonic/gin"
)

// Run executes the serve command. It blocks until the context is canceled.
func (c *ServeCmd) Run(deps *Dependencies) error {
	gin.SetMode(gin.ReleaseMode)

	server := sigin.NewServer(deps.Extractor, deps.Logger,
		sigin.WithAddr(c.Addr),
		sigin.WithCORSOrigins(c.CORSOrigins),
		sigin.WithMetricsHandler(deps.Metrics.Handler()),
	)
	return server.Run(deps.Ctx)
}
