// Package datasource holds the closed set of data source variants a
// diagnostic run can be configured with, and the fetch protocol turning each
// of them into prompt data.
package datasource

import (
	"context"
	"sort"

	"github.com/autodiag/autodiag/pkg/aws"
	"github.com/autodiag/autodiag/pkg/timerange"
)

// noDataSentinel is emitted in place of an empty metric or log result set,
// so the model is told explicitly that nothing came back.
const noDataSentinel = "No applicable data found\n"

// PromptData is the uniform fetch result: a human readable description and,
// for time-series or log sources, a tabular data blob.
type PromptData struct {
	Description []string
	Data        *string
}

// DataSource is one configured entity to inspect. Fetch may expand to
// several PromptData entries when the configured name resolves to more than
// one underlying resource.
type DataSource interface {
	// OrderNo is the sort key controlling presentation order.
	OrderNo() uint8
	// DisplayName is a fixed label used for progress reporting.
	DisplayName() string
	// Fetch resolves the entity against the injected AWS clients and
	// describes it. The fetcher never constructs its own clients.
	Fetch(ctx context.Context, client aws.Client, rng timerange.DateTimeRange) ([]PromptData, error)
}

// Sort orders sources by non-decreasing order number. Equal keys keep their
// insertion order; the contract is a weak ordering only.
func Sort(sources []DataSource) {
	sort.SliceStable(sources, func(i, j int) bool {
		return sources[i].OrderNo() < sources[j].OrderNo()
	})
}
