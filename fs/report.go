// Package fs provides file-based storage for extraction reports.
package fs

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/shopinsight"
	"github.com/goccy/go-json"
)

// Ensure ReportStore implements shopinsight.ReportWriter at compile time.
var _ shopinsight.ReportWriter = (*ReportStore)(nil)

// ReportStore writes one JSON report per storefront into a directory.
// Each report is written to a temporary file and renamed into place, so a
// reader never observes a partial report.
type ReportStore struct {
	baseDir string
}

// NewReportStore creates a ReportStore rooted at baseDir.
func NewReportStore(baseDir string) *ReportStore {
	return &ReportStore{baseDir: baseDir}
}

// ReportName converts a storefront URL to a report file name.
// Example: https://shop.example.com/collections/all → shop.example.com_collections_all.json
func ReportName(websiteURL string) (string, error) {
	u, err := url.Parse(websiteURL)
	if err != nil {
		return "", shopinsight.Errorf(shopinsight.EINVALID, "invalid website url: %v", err)
	}
	host := strings.ToLower(u.Hostname())
	if host == "" {
		return "", shopinsight.Errorf(shopinsight.EINVALID, "website url has no host: %q", websiteURL)
	}

	parts := []string{host}
	for _, seg := range strings.Split(u.Path, "/") {
		if seg = sanitize(seg); seg != "" {
			parts = append(parts, seg)
		}
	}
	return strings.Join(parts, "_") + ".json", nil
}

func sanitize(seg string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '-' || r == '.':
			return r
		default:
			return -1
		}
	}, seg)
}

// WriteReport stores insights as indented JSON and returns the report path.
func (s *ReportStore) WriteReport(ctx context.Context, websiteURL string, insights *shopinsight.BrandInsights) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if insights == nil {
		return "", shopinsight.Errorf(shopinsight.EINVALID, "insights required")
	}

	name, err := ReportName(websiteURL)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.baseDir, 0755); err != nil {
		return "", err
	}

	data, err := json.MarshalIndent(insights, "", "  ")
	if err != nil {
		return "", err
	}

	finalPath := filepath.Join(s.baseDir, name)
	tmp, err := os.CreateTemp(s.baseDir, name+".*.tmp")
	if err != nil {
		return "", err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return "", err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return "", err
	}
	if err := os.Rename(tmpPath, finalPath); err != nil {
		os.Remove(tmpPath)
		return "", err
	}
	return finalPath, nil
}
