// Package batch parses bulk URL lists and fans out download jobs.
package batch

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"sync"

	"ripper/internal/models"
	"ripper/internal/utils/logging"

	"github.com/google/uuid"
)

// Action performs the download for one URL and reports whether it
// succeeded. It is expected to recover its own errors into the bool;
// a panic is still treated as a failure for that URL alone.
type Action func(ctx context.Context, url string) bool

// Processor fans out one Action per parsed URL.
type Processor struct {
	// Limit caps concurrent actions. Zero means unbounded, matching the
	// historical behavior; bounding it is advisable for large batches.
	Limit int
}

// Process stream-parses r as comma-delimited records, taking the first
// field of every non-empty record as one URL, and launches all actions
// concurrently. The result is finalized only after every launched
// action has settled. A structural parse failure aborts the whole
// batch with no partial result.
func (p *Processor) Process(ctx context.Context, r io.Reader, action Action) (models.BatchResult, error) {
	urls, err := parseURLs(r)
	if err != nil {
		return models.BatchResult{}, fmt.Errorf("%w: %v", models.ErrParseFailure, err)
	}

	batchID := uuid.NewString()[:8]
	logging.I("Batch %s: launching %d download jobs", batchID, len(urls))

	// Indexed slots keep rejected sources in input order regardless of
	// completion order.
	failed := make([]bool, len(urls))

	var wg sync.WaitGroup
	var sem chan struct{}
	if p.Limit > 0 {
		sem = make(chan struct{}, p.Limit)
	}

	for i, url := range urls {
		wg.Add(1)
		go func(i int, url string) {
			defer wg.Done()
			if sem != nil {
				sem <- struct{}{}
				defer func() { <-sem }()
			}
			defer func() {
				// A fault in one action must not abort sibling jobs.
				if rec := recover(); rec != nil {
					logging.E("Batch %s: action for %q panicked: %v", batchID, url, rec)
					failed[i] = true
				}
			}()
			if !action(ctx, url) {
				failed[i] = true
			}
		}(i, url)
	}

	wg.Wait()

	result := models.BatchResult{AllSucceeded: true}
	for i, f := range failed {
		if f {
			result.RejectedSources = append(result.RejectedSources, urls[i])
			result.AllSucceeded = false
		}
	}

	logging.I("Batch %s: complete, %d of %d rejected", batchID, len(result.RejectedSources), len(urls))
	return result, nil
}

// parseURLs consumes the whole stream before any job launches, so a
// malformed file is rejected as a unit.
func parseURLs(r io.Reader) ([]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var urls []string
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return urls, nil
		}
		if err != nil {
			return nil, err
		}
		if len(record) == 0 || record[0] == "" {
			continue
		}
		urls = append(urls, record[0])
	}
}
