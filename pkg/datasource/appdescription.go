package datasource

import (
	"context"

	"github.com/autodiag/autodiag/pkg/aws"
	"github.com/autodiag/autodiag/pkg/config"
	"github.com/autodiag/autodiag/pkg/timerange"
)

// AppDescription is free-form text describing the application under
// diagnosis. It needs no external calls and never fails.
type AppDescription struct {
	Config config.AppDescConfig
}

func (d AppDescription) OrderNo() uint8 {
	return d.Config.OrderNo
}

func (d AppDescription) DisplayName() string {
	return "App description"
}

func (d AppDescription) Fetch(_ context.Context, _ aws.Client, _ timerange.DateTimeRange) ([]PromptData, error) {
	return []PromptData{
		{
			Description: []string{
				"Information: [App Description]",
				d.Config.Description,
			},
		},
	}, nil
}
