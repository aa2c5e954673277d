package gin

import (
	"net/http"
	"net/url"

	"github.com/fwojciec/shopinsight"
	"github.com/gin-gonic/gin"
)

type extractRequest struct {
	WebsiteURL string `json:"website_url" binding:"required"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

func (s *Server) handleExtract(c *gin.Context) {
	var req extractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, errorResponse{Detail: "website_url is required"})
		return
	}
	if !validWebsiteURL(req.WebsiteURL) {
		c.JSON(http.StatusUnprocessableEntity, errorResponse{Detail: "website_url must be an absolute http(s) URL"})
		return
	}

	insights, err := s.extractor.ExtractBrandInsights(c.Request.Context(), req.WebsiteURL)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, insights)
}

// writeError maps application error codes to HTTP responses. Only
// unreachable and invalid errors expose their message.
func (s *Server) writeError(c *gin.Context, err error) {
	switch shopinsight.ErrorCode(err) {
	case shopinsight.EUNREACHABLE:
		c.JSON(http.StatusUnauthorized, errorResponse{Detail: shopinsight.ErrorMessage(err)})
	case shopinsight.EINVALID:
		c.JSON(http.StatusUnprocessableEntity, errorResponse{Detail: shopinsight.ErrorMessage(err)})
	default:
		s.logger.Error("extraction failed",
			"request_id", c.GetString(requestIDKey),
			"err", err,
		)
		c.JSON(http.StatusInternalServerError, errorResponse{Detail: "Internal server error"})
	}
}

func validWebsiteURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
