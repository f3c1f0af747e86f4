package datasource

import (
	"context"
	"time"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs"
	cwltypes "github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs/types"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/autodiag/autodiag/pkg/aws"
	awsmock "github.com/autodiag/autodiag/pkg/aws/mock"
	"github.com/autodiag/autodiag/pkg/config"
	"github.com/autodiag/autodiag/pkg/timerange"
)

func logRow(fieldValuePairs ...string) []cwltypes.ResultField {
	var row []cwltypes.ResultField
	for i := 0; i+1 < len(fieldValuePairs); i += 2 {
		row = append(row, cwltypes.ResultField{
			Field: awssdk.String(fieldValuePairs[i]),
			Value: awssdk.String(fieldValuePairs[i+1]),
		})
	}
	return row
}

var _ = Describe("CloudwatchLogInsight", func() {
	var (
		mockCtrl      *gomock.Controller
		mockCwlClient *awsmock.MockCloudWatchLogsAPI
		client        aws.Client
		source        CloudwatchLogInsight
		rng           timerange.DateTimeRange
		sleepCount    int
		origSleepFn   func(context.Context, time.Duration) error
	)
	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		mockCwlClient = awsmock.NewMockCloudWatchLogsAPI(mockCtrl)
		client = aws.Client{CloudWatchLogsClient: mockCwlClient}
		source = CloudwatchLogInsight{Config: config.CloudwatchLogInsightConfig{
			OrderNo:       1,
			Description:   "Some description",
			LogGroupName:  "log-group-name",
			Query:         "fields @timestamp, @message",
			ResultColumns: []string{"column1", "column2"},
		}}
		rng = timerange.DateTimeRange{
			StartTime: 1700000000000,
			EndTime:   1700003600000,
			Location:  time.UTC,
		}

		sleepCount = 0
		origSleepFn = sleepFn
		sleepFn = func(context.Context, time.Duration) error {
			sleepCount++
			return nil
		}
	})
	AfterEach(func() {
		sleepFn = origSleepFn
		mockCtrl.Finish()
	})

	startQueryOut := &cloudwatchlogs.StartQueryOutput{QueryId: awssdk.String("query-id")}

	resultsWithStatus := func(status cwltypes.QueryStatus, results ...[]cwltypes.ResultField) *cloudwatchlogs.GetQueryResultsOutput {
		return &cloudwatchlogs.GetQueryResultsOutput{Status: status, Results: results}
	}

	It("has a fixed display name", func() {
		Expect(source.DisplayName()).To(Equal("Cloudwatch log insight"))
	})

	When("the query completes immediately", func() {
		It("extracts the rows as CSV against the configured columns", func() {
			mockCwlClient.EXPECT().StartQuery(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, input *cloudwatchlogs.StartQueryInput, _ ...func(*cloudwatchlogs.Options)) (*cloudwatchlogs.StartQueryOutput, error) {
					Expect(*input.LogGroupName).To(Equal("log-group-name"))
					Expect(*input.QueryString).To(Equal("fields @timestamp, @message"))
					Expect(*input.StartTime).To(Equal(int64(1700000000)))
					Expect(*input.EndTime).To(Equal(int64(1700003600)))
					return startQueryOut, nil
				})
			mockCwlClient.EXPECT().GetQueryResults(gomock.Any(), gomock.Any()).Return(
				resultsWithStatus(cwltypes.QueryStatusComplete,
					logRow("column1", "row1-column1", "column2", "row1-column2"),
					logRow("column1", "row2-column1", "column2", "row2-column2"),
				), nil)

			promptData, err := source.Fetch(context.Background(), client, rng)

			Expect(err).ToNot(HaveOccurred())
			Expect(promptData).To(HaveLen(1))
			Expect(promptData[0].Description).To(Equal([]string{
				"Information: [Cloudwatch Log Insights]",
				"Description: [Some description]",
				"Log Group: [`log-group-name`]",
			}))
			Expect(promptData[0].Data).ToNot(BeNil())
			Expect(*promptData[0].Data).To(Equal(
				"column1,column2\n" +
					"row1-column1,row1-column2\n" +
					"row2-column1,row2-column2\n"))
			Expect(sleepCount).To(Equal(0))
		})
	})

	When("the query is still scheduled or running", func() {
		It("waits between polls until completion", func() {
			mockCwlClient.EXPECT().StartQuery(gomock.Any(), gomock.Any()).Return(startQueryOut, nil)
			gomock.InOrder(
				mockCwlClient.EXPECT().GetQueryResults(gomock.Any(), gomock.Any()).Return(
					resultsWithStatus(cwltypes.QueryStatusScheduled), nil),
				mockCwlClient.EXPECT().GetQueryResults(gomock.Any(), gomock.Any()).Return(
					resultsWithStatus(cwltypes.QueryStatusRunning), nil),
				mockCwlClient.EXPECT().GetQueryResults(gomock.Any(), gomock.Any()).Return(
					resultsWithStatus(cwltypes.QueryStatusComplete,
						logRow("column1", "row1-column1", "column2", "row1-column2"),
					), nil),
			)

			promptData, err := source.Fetch(context.Background(), client, rng)

			Expect(err).ToNot(HaveOccurred())
			Expect(promptData).To(HaveLen(1))
			Expect(sleepCount).To(Equal(2))
		})
	})

	When("the query reaches a terminal failure status", func() {
		It("short-circuits without further polling", func() {
			mockCwlClient.EXPECT().StartQuery(gomock.Any(), gomock.Any()).Return(startQueryOut, nil)
			mockCwlClient.EXPECT().GetQueryResults(gomock.Any(), gomock.Any()).Return(
				resultsWithStatus(cwltypes.QueryStatusFailed), nil).Times(1)

			_, err := source.Fetch(context.Background(), client, rng)

			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(Equal("Unexpected status: Failed"))
			Expect(sleepCount).To(Equal(0))
		})
	})

	When("the query id is missing from the response", func() {
		It("fails before polling", func() {
			mockCwlClient.EXPECT().StartQuery(gomock.Any(), gomock.Any()).Return(
				&cloudwatchlogs.StartQueryOutput{}, nil)

			_, err := source.Fetch(context.Background(), client, rng)

			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(Equal("query id is missing from response"))
		})
	})

	When("rows carry the @ptr pointer field", func() {
		It("discards it before matching columns", func() {
			mockCwlClient.EXPECT().StartQuery(gomock.Any(), gomock.Any()).Return(startQueryOut, nil)
			mockCwlClient.EXPECT().GetQueryResults(gomock.Any(), gomock.Any()).Return(
				resultsWithStatus(cwltypes.QueryStatusComplete,
					logRow("column1", "row1-column1", "@ptr", "opaque", "column2", "row1-column2"),
				), nil)

			promptData, err := source.Fetch(context.Background(), client, rng)

			Expect(err).ToNot(HaveOccurred())
			Expect(*promptData[0].Data).To(Equal(
				"column1,column2\n" +
					"row1-column1,row1-column2\n"))
		})
	})

	When("a field does not match the expected column", func() {
		It("fails with both column names in the error", func() {
			mockCwlClient.EXPECT().StartQuery(gomock.Any(), gomock.Any()).Return(startQueryOut, nil)
			mockCwlClient.EXPECT().GetQueryResults(gomock.Any(), gomock.Any()).Return(
				resultsWithStatus(cwltypes.QueryStatusComplete,
					logRow("column1", "row1-column1", "column2", "row1-column2"),
					logRow("column2", "row2-column2", "column1", "row2-column1"),
				), nil)

			_, err := source.Fetch(context.Background(), client, rng)

			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(Equal("Expected column not matched! Expected: column1, Actual: column2"))
		})
	})

	When("the query returns no rows", func() {
		It("substitutes the sentinel text", func() {
			mockCwlClient.EXPECT().StartQuery(gomock.Any(), gomock.Any()).Return(startQueryOut, nil)
			mockCwlClient.EXPECT().GetQueryResults(gomock.Any(), gomock.Any()).Return(
				resultsWithStatus(cwltypes.QueryStatusComplete), nil)

			promptData, err := source.Fetch(context.Background(), client, rng)

			Expect(err).ToNot(HaveOccurred())
			Expect(*promptData[0].Data).To(Equal("No applicable data found\n"))
		})
	})
})
