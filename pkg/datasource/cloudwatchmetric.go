package datasource

import (
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	cwtypes "github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"

	"github.com/autodiag/autodiag/pkg/aws"
	"github.com/autodiag/autodiag/pkg/config"
	"github.com/autodiag/autodiag/pkg/timerange"
)

// ec2Namespace marks metric configs whose dimension value is an instance
// name that must be resolved to instance ids first.
const ec2Namespace = "AWS/EC2"

// metricPeriodSecs is the fixed statistic period for every metric query.
const metricPeriodSecs = 60

const timestampFormat = "2006-01-02 15:04:05 MST"

// CloudwatchMetric fetches one metric time series per resolved dimension and
// extracts it as timestamp/value CSV, latest point first.
type CloudwatchMetric struct {
	Config config.CloudwatchMetricConfig
}

func (d CloudwatchMetric) OrderNo() uint8 {
	return d.Config.OrderNo
}

func (d CloudwatchMetric) DisplayName() string {
	return "Cloudwatch metric"
}

func (d CloudwatchMetric) Fetch(ctx context.Context, client aws.Client, rng timerange.DateTimeRange) ([]PromptData, error) {
	dimensions, err := d.buildDimensions(ctx, client)
	if err != nil {
		return nil, err
	}

	var promptData []PromptData
	for _, dimension := range dimensions {
		query := cwtypes.MetricDataQuery{
			Id: awssdk.String(d.Config.MetricIdentifier),
			MetricStat: &cwtypes.MetricStat{
				Metric: &cwtypes.Metric{
					MetricName: awssdk.String(d.Config.MetricName),
					Namespace:  awssdk.String(d.Config.MetricNamespace),
					Dimensions: []cwtypes.Dimension{dimension},
				},
				Period: awssdk.Int32(metricPeriodSecs),
				Stat:   awssdk.String(d.Config.MetricStat),
			},
		}

		response, err := client.CloudWatchClient.GetMetricData(ctx, &cloudwatch.GetMetricDataInput{
			StartTime:         awssdk.Time(time.UnixMilli(rng.StartTime).UTC()),
			EndTime:           awssdk.Time(time.UnixMilli(rng.EndTime).UTC()),
			MetricDataQueries: []cwtypes.MetricDataQuery{query},
		})
		if err != nil {
			return nil, fmt.Errorf("failed to get metric data: %w", err)
		}

		data, err := extractMetricCsv(rng, response)
		if err != nil {
			return nil, err
		}

		promptData = append(promptData, PromptData{
			Description: d.buildDescription(dimension),
			Data:        data,
		})
	}
	return promptData, nil
}

// buildDimensions resolves the configured dimension value. For the EC2
// namespace the value is an instance name and expands to one dimension per
// matched instance id; any other namespace uses the value verbatim.
func (d CloudwatchMetric) buildDimensions(ctx context.Context, client aws.Client) ([]cwtypes.Dimension, error) {
	if d.Config.MetricNamespace != ec2Namespace {
		return []cwtypes.Dimension{
			{
				Name:  awssdk.String(d.Config.DimensionName),
				Value: awssdk.String(d.Config.DimensionValue),
			},
		}, nil
	}

	instances, err := client.ListInstancesByName(ctx, d.Config.DimensionValue)
	if err != nil {
		return nil, err
	}

	dimensions := make([]cwtypes.Dimension, 0, len(instances))
	for _, instance := range instances {
		if instance.InstanceId == nil {
			return nil, fmt.Errorf("instance %q response is missing an instance id", d.Config.DimensionValue)
		}
		dimensions = append(dimensions, cwtypes.Dimension{
			Name:  awssdk.String(d.Config.DimensionName),
			Value: instance.InstanceId,
		})
	}
	return dimensions, nil
}

func (d CloudwatchMetric) buildDescription(dimension cwtypes.Dimension) []string {
	description := []string{
		fmt.Sprintf("Information: [Cloudwatch %s]", d.Config.MetricNamespace),
		fmt.Sprintf("Metric: [`%s`]", d.Config.MetricName),
		fmt.Sprintf("Dimension: [`%s:%s`]", awssdk.ToString(dimension.Name), awssdk.ToString(dimension.Value)),
	}

	if d.Config.MetricUnit != "" {
		description = append(description, fmt.Sprintf("Unit: %s", d.Config.MetricUnit))
	}
	return description
}

// extractMetricCsv renders the returned points as timestamp/value CSV in
// reverse chronological order, timestamps in the display time zone. An empty
// result set becomes the sentinel text instead of an empty table.
func extractMetricCsv(rng timerange.DateTimeRange, output *cloudwatch.GetMetricDataOutput) (*string, error) {
	var sb strings.Builder
	csvWriter := csv.NewWriter(&sb)
	if err := csvWriter.Write([]string{"timestamp", "value"}); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}

	rows := 0
	for _, result := range output.MetricDataResults {
		points := len(result.Timestamps)
		if len(result.Values) < points {
			points = len(result.Values)
		}

		for i := points - 1; i >= 0; i-- {
			localTime := result.Timestamps[i].In(rng.Location).Format(timestampFormat)
			value := strconv.FormatFloat(result.Values[i], 'f', -1, 64)
			if err := csvWriter.Write([]string{localTime, value}); err != nil {
				return nil, fmt.Errorf("failed to write csv record: %w", err)
			}
			rows++
		}
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
