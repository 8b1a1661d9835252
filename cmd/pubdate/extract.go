package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fwojciec/pubdate"
	"github.com/fwojciec/pubdate/goquery"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	var html []byte
	var err error
	if c.File != "" {
		html, err = os.ReadFile(c.File)
	} else {
		html, err = io.ReadAll(deps.Stdin)
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	doc, err := goquery.NewDocument(string(html))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pubdate.ErrorMessage(err))
		return err
	}

	result := deps.Extractor.Extract(c.URL, doc)

	if c.JSON {
		out := struct {
			Updated   *time.Time `json:"updated"`
			Published *time.Time `json:"published"`
		}{result.Updated, result.Published}
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Fprintf(deps.Stdout, "updated:   %s\n", formatDate(result.Updated))
	fmt.Fprintf(deps.Stdout, "published: %s\n", formatDate(result.Published))
	return nil
}

// formatDate renders an optional timestamp for display.
func formatDate(t *time.Time) string {
	if t == nil {
		return "(absent)"
	}
	return t.Format(time.RFC3339)
}
