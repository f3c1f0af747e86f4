package datasource

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/autodiag/autodiag/pkg/aws"
	"github.com/autodiag/autodiag/pkg/config"
	"github.com/autodiag/autodiag/pkg/timerange"
)

var _ = Describe("Sort", func() {
	It("orders sources by non-decreasing order number", func() {
		sources := []DataSource{
			AppDescription{Config: config.AppDescConfig{OrderNo: 5}},
			Ec2{Config: config.Ec2Config{OrderNo: 4}},
			Rds{Config: config.RdsConfig{OrderNo: 3}},
			CloudwatchMetric{Config: config.CloudwatchMetricConfig{OrderNo: 2}},
			CloudwatchLogInsight{Config: config.CloudwatchLogInsightConfig{OrderNo: 1}},
		}

		Sort(sources)

		orderNos := make([]uint8, 0, len(sources))
		for _, source := range sources {
			orderNos = append(orderNos, source.OrderNo())
		}
		Expect(orderNos).To(Equal([]uint8{1, 2, 3, 4, 5}))
	})

	It("keeps insertion order for equal keys", func() {
		sources := []DataSource{
			AppDescription{Config: config.AppDescConfig{OrderNo: 1, Description: "first"}},
			AppDescription{Config: config.AppDescConfig{OrderNo: 1, Description: "second"}},
		}

		Sort(sources)

		Expect(sources[0].(AppDescription).Config.Description).To(Equal("first"))
		Expect(sources[1].(AppDescription).Config.Description).To(Equal("second"))
	})
})

var _ = Describe("AppDescription", func() {
	It("produces a two line description and no data payload", func() {
		source := AppDescription{Config: config.AppDescConfig{
			OrderNo:     1,
			Description: "Some application",
		}}

		promptData, err := source.Fetch(context.Background(), aws.Client{}, timerange.DateTimeRange{})

		Expect(err).ToNot(HaveOccurred())
		Expect(promptData).To(HaveLen(1))
		Expect(promptData[0].Description).To(Equal([]string{
			"Information: [App Description]",
			"Some application",
		}))
		Expect(promptData[0].Data).To(BeNil())
	})
})
