package datasource

import (
	"context"
	"encoding/csv"
	"fmt"
	"strings"
	"time"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs"
	cwltypes "github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs/types"

	"github.com/autodiag/autodiag/pkg/aws"
	"github.com/autodiag/autodiag/pkg/config"
	"github.com/autodiag/autodiag/pkg/timerange"
)

// pollInterval is the fixed delay between query status checks. Polling has
// no attempt cap; cancelling the context is the only way to stop a query
// that never reaches a terminal status.
var pollInterval = 1 * time.Second

// sleepFn is swapped out by tests to observe the wait behavior.
var sleepFn = sleepContext

// ptrField is the internal row pointer column the query engine appends to
// every row. It is discarded before column matching.
const ptrField = "@ptr"

// CloudwatchLogInsight runs a Logs Insights query over the execution time
// range, polling until the query reaches a terminal status, and extracts the
// result rows against the configured column list.
type CloudwatchLogInsight struct {
	Config config.CloudwatchLogInsightConfig
}

func (d CloudwatchLogInsight) OrderNo() uint8 {
	return d.Config.OrderNo
}

func (d CloudwatchLogInsight) DisplayName() string {
	return "Cloudwatch log insight"
}

func (d CloudwatchLogInsight) Fetch(ctx context.Context, client aws.Client, rng timerange.DateTimeRange) ([]PromptData, error) {
	// StartQuery takes epoch seconds, the range is kept in milliseconds.
	response, err := client.CloudWatchLogsClient.StartQuery(ctx, &cloudwatchlogs.StartQueryInput{
		LogGroupName: awssdk.String(d.Config.LogGroupName),
		QueryString:  awssdk.String(d.Config.Query),
		StartTime:    awssdk.Int64(rng.StartTime / 1000),
		EndTime:      awssdk.Int64(rng.EndTime / 1000),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start query: %w", err)
	}
	if response.QueryId == nil {
		return nil, fmt.Errorf("query id is missing from response")
	}

	results, err := d.pollQueryResults(ctx, client, response.QueryId)
	if err != nil {
		return nil, err
	}

	data, err := extractLogCsv(results, d.Config.ResultColumns)
	if err != nil {
		return nil, err
	}

	return []PromptData{
		{
			Description: []string{
				"Information: [Cloudwatch Log Insights]",
				fmt.Sprintf("Description: [%s]", d.Config.Description),
				fmt.Sprintf("Log Group: [`%s`]", d.Config.LogGroupName),
			},
			Data: data,
		},
	}, nil
}

func (d CloudwatchLogInsight) pollQueryResults(ctx context.Context, client aws.Client, queryId *string) (*cloudwatchlogs.GetQueryResultsOutput, error) {
	for {
		results, err := client.CloudWatchLogsClient.GetQueryResults(ctx, &cloudwatchlogs.GetQueryResultsInput{
			QueryId: queryId,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to get query results: %w", err)
		}

		switch results.Status {
		case cwltypes.QueryStatusComplete:
			return results, nil
		case cwltypes.QueryStatusRunning, cwltypes.QueryStatusScheduled:
			if err := sleepFn(ctx, pollInterval); err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("Unexpected status: %s", results.Status)
		}
	}
}

// extractLogCsv matches each row's fields positionally against the column
// list, cycling per row. A field name that does not equal the expected
// column means the data is misaligned and the run must not continue.
func extractLogCsv(output *cloudwatchlogs.GetQueryResultsOutput, resultColumns []string) (*string, error) {
	var sb strings.Builder
	csvWriter := csv.NewWriter(&sb)
	if err := csvWriter.Write(resultColumns); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}

	rows := 0
	columnIdx := 0

	for _, result := range output.Results {
		var values []string

		for _, resultField := range result {
			field := awssdk.ToString(resultField.Field)
			if field == ptrField {
				continue
			}

			expected := resultColumns[columnIdx%len(resultColumns)]
			if expected != field {
				return nil, fmt.Errorf("Expected column not matched! Expected: %s, Actual: %s", expected, field)
			}

			values = append(values, awssdk.ToString(resultField.Value))
			columnIdx++
		}

		if err := csvWriter.Write(values); err != nil {
			return nil, fmt.Errorf("failed to write csv record: %w", err)
		}
		rows++
	}

	if rows == 0 {
		sentinel := noDataSentinel
		return &sentinel, nil
	}

	csvWriter.Flush()
	if err := csvWriter.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}
	data := sb.String()
	return &data, nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
