// Package aws bundles the AWS service clients used by the data source
// fetchers. Fetchers never construct their own clients; they receive this
// bundle so tests can substitute mocks.
package aws

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/aws/aws-sdk-go-v2/service/rds"
)

//go:generate mockgen -destination mock/ec2mock.go -package awsmock github.com/autodiag/autodiag/pkg/aws EC2API
//go:generate mockgen -destination mock/rdsmock.go -package awsmock github.com/autodiag/autodiag/pkg/aws RDSAPI
//go:generate mockgen -destination mock/cloudwatchmock.go -package awsmock github.com/autodiag/autodiag/pkg/aws CloudWatchAPI
//go:generate mockgen -destination mock/cloudwatchlogsmock.go -package awsmock github.com/autodiag/autodiag/pkg/aws CloudWatchLogsAPI

// EC2API is the subset of the EC2 client used by the fetchers
type EC2API interface {
	DescribeInstances(ctx context.Context, params *ec2.DescribeInstancesInput, optFns ...func(*ec2.Options)) (*ec2.DescribeInstancesOutput, error)
}

// RDSAPI is the subset of the RDS client used by the fetchers
type RDSAPI interface {
	DescribeDBInstances(ctx context.Context, params *rds.DescribeDBInstancesInput, optFns ...func(*rds.Options)) (*rds.DescribeDBInstancesOutput, error)
}

// CloudWatchAPI is the subset of the CloudWatch client used by the fetchers
type CloudWatchAPI interface {
	GetMetricData(ctx context.Context, params *cloudwatch.GetMetricDataInput, optFns ...func(*cloudwatch.Options)) (*cloudwatch.GetMetricDataOutput, error)
}

// CloudWatchLogsAPI is the subset of the CloudWatch Logs client used by the fetchers
type CloudWatchLogsAPI interface {
	StartQuery(ctx context.Context, params *cloudwatchlogs.StartQueryInput, optFns ...func(*cloudwatchlogs.Options)) (*cloudwatchlogs.StartQueryOutput, error)
	GetQueryResults(ctx context.Context, params *cloudwatchlogs.GetQueryResultsInput, optFns ...func(*cloudwatchlogs.Options)) (*cloudwatchlogs.GetQueryResultsOutput, error)
}

// Client is a representation of the AWS clients backing a diagnostic run
type Client struct {
	Ec2Client            EC2API
	RdsClient            RDSAPI
	CloudWatchClient     CloudWatchAPI
	CloudWatchLogsClient CloudWatchLogsAPI
}

// NewClient creates a client bundle from the named shared-config profile,
// using the default region provider chain.
func NewClient(ctx context.Context, profile string) (Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithSharedConfigProfile(profile))
	if err != nil {
		return Client{}, fmt.Errorf("failed to load AWS config for profile %q: %w", profile, err)
	}

	return Client{
		Ec2Client:            ec2.NewFromConfig(cfg),
		RdsClient:            rds.NewFromConfig(cfg),
		CloudWatchClient:     cloudwatch.NewFromConfig(cfg),
		CloudWatchLogsClient: cloudwatchlogs.NewFromConfig(cfg),
	}, nil
}

// ListInstancesByName returns every instance whose Name tag equals the given
// value, following pagination. Zero matches is an error.
func (c Client) ListInstancesByName(ctx context.Context, instanceName string) ([]ec2types.Instance, error) {
	name := "tag:Name"
	in := &ec2.DescribeInstancesInput{
		Filters: []ec2types.Filter{
			{
				Name:   &name,
				Values: []string{instanceName},
			},
		},
	}

	var instances []ec2types.Instance
	for {
		out, err := c.Ec2Client.DescribeInstances(ctx, in)
		if err != nil {
			return nil, fmt.Errorf("failed to describe instances: %w", err)
		}
		for _, reservation := range out.Reservations {
			instances = append(instances, reservation.Instances...)
		}
		if out.NextToken == nil {
			break
		}
		in.NextToken = out.NextToken
	}

	if len(instances) == 0 {
		return nil, fmt.Errorf("Unable to find instance with name: %s", instanceName)
	}
	return instances, nil
}
