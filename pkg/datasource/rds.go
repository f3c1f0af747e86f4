package datasource

import (
	"context"
	"fmt"
	"strconv"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/rds"
	rdstypes "github.com/aws/aws-sdk-go-v2/service/rds/types"

	"github.com/autodiag/autodiag/pkg/aws"
	"github.com/autodiag/autodiag/pkg/config"
	"github.com/autodiag/autodiag/pkg/timerange"
)

// Rds describes the database instance with the exact configured identifier.
type Rds struct {
	Config config.RdsConfig
}

func (d Rds) OrderNo() uint8 {
	return d.Config.OrderNo
}

func (d Rds) DisplayName() string {
	return "RDS instance"
}

func (d Rds) Fetch(ctx context.Context, client aws.Client, _ timerange.DateTimeRange) ([]PromptData, error) {
	response, err := client.RdsClient.DescribeDBInstances(ctx, &rds.DescribeDBInstancesInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to describe DB instances: %w", err)
	}

	for _, dbInstance := range response.DBInstances {
		if awssdk.ToString(dbInstance.DBInstanceIdentifier) != d.Config.DbIdentifier {
			continue
		}
		return []PromptData{{Description: buildRdsDescription(d.Config.DbIdentifier, dbInstance)}}, nil
	}

	return nil, fmt.Errorf("Unable to find DB instance with name: %s", d.Config.DbIdentifier)
}

func buildRdsDescription(dbIdentifier string, instance rdstypes.DBInstance) []string {
	return []string{
		"Information: [RDS Instance]",
		fmt.Sprintf("DB identifier: [`%s`]", dbIdentifier),
		fmt.Sprintf("Class: [`%s`]", awssdk.ToString(instance.DBInstanceClass)),
		fmt.Sprintf("Engine: [%s %s]", awssdk.ToString(instance.Engine), awssdk.ToString(instance.EngineVersion)),
		fmt.Sprintf("Storage type: [%s]", awssdk.ToString(instance.StorageType)),
		fmt.Sprintf("Status: [%s]", awssdk.ToString(instance.DBInstanceStatus)),
		fmt.Sprintf("Multi AZ: [%s]", strconv.FormatBool(awssdk.ToBool(instance.MultiAZ))),
	}
}
