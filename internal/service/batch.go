// internal/service/batch.go
package service

import (
	"fmt"

	"github.com/anmicius0/instructor-dashboard-api/internal/utils"
	"go.uber.org/zap"
)

// BatchItem is the outcome of a batch action for one identifier. When Failed
// is set, Before and After are zero values.
type BatchItem[S any] struct {
	Identifier string
	Before     S
	After      S
	Failed     bool
}

// BatchAction performs a stateful operation for one identifier and returns its
// state before and after.
type BatchAction[S any] func(identifier string) (before, after S, err error)

// RunBatch applies action to every identifier in order. A failing identifier
// (an error or a panic) is marked Failed and processing continues with the
// next one; the cause is logged, not returned. The result has one item per
// input, in input order, duplicates included.
func RunBatch[S any](identifiers []string, action BatchAction[S]) []BatchItem[S] {
	results := make([]BatchItem[S], 0, len(identifiers))
	for _, identifier := range identifiers {
		results = append(results, runBatchItem(identifier, action))
	}
	return results
}

func runBatchItem[S any](identifier string, action BatchAction[S]) (item BatchItem[S]) {
	defer func() {
		if r := recover(); r != nil {
			logBatchFailure(identifier, fmt.Errorf("panic: %v", r))
			item = BatchItem[S]{Identifier: identifier, Failed: true}
		}
	}()

	before, after, err := action(identifier)
	if err != nil {
		logBatchFailure(identifier, err)
		return BatchItem[S]{Identifier: identifier, Failed: true}
	}
	return BatchItem[S]{Identifier: identifier, Before: before, After: after}
}

func logBatchFailure(identifier string, err error) {
	utils.WithComponent("batch_runner").Warn("Batch item failed",
		zap.String("identifier", identifier),
		zap.Error(err))
}

// CountFailed returns how many items in results failed.
func CountFailed[S any](results []BatchItem[S]) int {
	failed := 0
	for _, item := range results {
		if item.Failed {
			failed++
		}
	}
	return failed
}
