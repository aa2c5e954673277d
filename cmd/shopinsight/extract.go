package main

import (
	"fmt"

	"github.com/fwojciec/shopinsight"
	"github.com/fwojciec/shopinsight/fs"
	"github.com/goccy/go-json"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	insights, err := deps.Extractor.ExtractBrandInsights(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", shopinsight.ErrorMessage(err))
		return err
	}

	if c.OutDir != "" {
		path, err := fs.NewReportStore(c.OutDir).WriteReport(deps.Ctx, c.URL, insights)
		if err != nil {
			return err
		}
		fmt.Fprintln(deps.Stdout, path)
		return nil
	}

	out, err := json.MarshalIndent(insights, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(deps.Stdout, string(out))
	return nil
}
