package datasource

import (
	"context"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/autodiag/autodiag/pkg/aws"
	awsmock "github.com/autodiag/autodiag/pkg/aws/mock"
	"github.com/autodiag/autodiag/pkg/config"
	"github.com/autodiag/autodiag/pkg/timerange"
)

func ec2Instance(id string) ec2types.Instance {
	return ec2types.Instance{
		InstanceId:   awssdk.String(id),
		InstanceType: ec2types.InstanceTypeT3aMedium,
		CpuOptions: &ec2types.CpuOptions{
			CoreCount:      awssdk.Int32(1),
			ThreadsPerCore: awssdk.Int32(2),
		},
		State: &ec2types.InstanceState{
			Name: ec2types.InstanceStateNameRunning,
		},
	}
}

var _ = Describe("Ec2", func() {
	var (
		mockCtrl      *gomock.Controller
		mockEc2Client *awsmock.MockEC2API
		client        aws.Client
		source        Ec2
	)
	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		mockEc2Client = awsmock.NewMockEC2API(mockCtrl)
		client = aws.Client{Ec2Client: mockEc2Client}
		source = Ec2{Config: config.Ec2Config{
			OrderNo:      1,
			InstanceName: "ec2-instance",
		}}
	})
	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("has a fixed display name", func() {
		Expect(source.DisplayName()).To(Equal("EC2 instance"))
	})

	When("one instance matches the configured name", func() {
		It("describes it without a data payload", func() {
			mockEc2Client.EXPECT().DescribeInstances(gomock.Any(), gomock.Any()).Return(
				&ec2.DescribeInstancesOutput{
					Reservations: []ec2types.Reservation{
						{Instances: []ec2types.Instance{ec2Instance("i-0abc")}},
					},
				}, nil)

			promptData, err := source.Fetch(context.Background(), client, timerange.DateTimeRange{})

			Expect(err).ToNot(HaveOccurred())
			Expect(promptData).To(HaveLen(1))
			Expect(promptData[0].Description).To(Equal([]string{
				"Information: [EC2 Instance]",
				"Instance name: [`ec2-instance`]",
				"Instance id: [`i-0abc`]",
				"Instance type: [`t3a.medium`]",
				"Cpu core count: [1]",
				"Cpu threads per core: [2]",
				"State: [running]",
			}))
			Expect(promptData[0].Data).To(BeNil())
		})
	})

	When("several instances share the configured name", func() {
		It("produces one entry per instance", func() {
			mockEc2Client.EXPECT().DescribeInstances(gomock.Any(), gomock.Any()).Return(
				&ec2.DescribeInstancesOutput{
					Reservations: []ec2types.Reservation{
						{Instances: []ec2types.Instance{
							ec2Instance("i-0abc"),
							ec2Instance("i-0def"),
							ec2Instance("i-0123"),
						}},
					},
				}, nil)

			promptData, err := source.Fetch(context.Background(), client, timerange.DateTimeRange{})

			Expect(err).ToNot(HaveOccurred())
			Expect(promptData).To(HaveLen(3))
			Expect(promptData[0].Description[2]).To(Equal("Instance id: [`i-0abc`]"))
			Expect(promptData[1].Description[2]).To(Equal("Instance id: [`i-0def`]"))
			Expect(promptData[2].Description[2]).To(Equal("Instance id: [`i-0123`]"))
		})
	})

	When("no instance matches the configured name", func() {
		It("fails with the not-found error", func() {
			mockEc2Client.EXPECT().DescribeInstances(gomock.Any(), gomock.Any()).Return(
				&ec2.DescribeInstancesOutput{}, nil)

			_, err := source.Fetch(context.Background(), client, timerange.DateTimeRange{})

			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(Equal("Unable to find instance with name: ec2-instance"))
		})
	})

	When("the response is missing required fields", func() {
		It("fails instead of describing a partial instance", func() {
			mockEc2Client.EXPECT().DescribeInstances(gomock.Any(), gomock.Any()).Return(
				&ec2.DescribeInstancesOutput{
					Reservations: []ec2types.Reservation{
						{Instances: []ec2types.Instance{
							{InstanceId: awssdk.String("i-0abc")},
						}},
					},
				}, nil)

			_, err := source.Fetch(context.Background(), client, timerange.DateTimeRange{})

			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("missing required fields"))
		})
	})
})
