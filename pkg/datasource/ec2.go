package datasource

import (
	"context"
	"fmt"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"

	"github.com/autodiag/autodiag/pkg/aws"
	"github.com/autodiag/autodiag/pkg/config"
	"github.com/autodiag/autodiag/pkg/timerange"
)

// Ec2 describes every instance whose Name tag matches the configured name.
// Several instances can share one name (e.g. an autoscaled fleet), so one
// configured source may expand into several PromptData entries.
type Ec2 struct {
	Config config.Ec2Config
}

func (d Ec2) OrderNo() uint8 {
	return d.Config.OrderNo
}

func (d Ec2) DisplayName() string {
	return "EC2 instance"
}

func (d Ec2) Fetch(ctx context.Context, client aws.Client, _ timerange.DateTimeRange) ([]PromptData, error) {
	instances, err := client.ListInstancesByName(ctx, d.Config.InstanceName)
	if err != nil {
		return nil, err
	}

	promptData := make([]PromptData, 0, len(instances))
	for _, instance := range instances {
		description, err := buildEc2Description(d.Config.InstanceName, instance)
		if err != nil {
			return nil, err
		}
		promptData = append(promptData, PromptData{Description: description})
	}
	return promptData, nil
}

func buildEc2Description(instanceName string, instance ec2types.Instance) ([]string, error) {
	if instance.InstanceId == nil || instance.CpuOptions == nil || instance.State == nil {
		return nil, fmt.Errorf("instance %q response is missing required fields", instanceName)
	}

	return []string{
		"Information: [EC2 Instance]",
		fmt.Sprintf("Instance name: [`%s`]", instanceName),
		fmt.Sprintf("Instance id: [`%s`]", awssdk.ToString(instance.InstanceId)),
		fmt.Sprintf("Instance type: [`%s`]", instance.InstanceType),
		fmt.Sprintf("Cpu core count: [%d]", awssdk.ToInt32(instance.CpuOptions.CoreCount)),
		fmt.Sprintf("Cpu threads per core: [%d]", awssdk.ToInt32(instance.CpuOptions.ThreadsPerCore)),
		fmt.Sprintf("State: [%s]", instance.State.Name),
	}, nil
}
