// Package execution builds the immutable run-wide context from the parsed
// configuration and command line arguments.
package execution

import (
	"fmt"

	"github.com/autodiag/autodiag/pkg/config"
	"github.com/autodiag/autodiag/pkg/datasource"
	"github.com/autodiag/autodiag/pkg/timerange"
)

// Args are the resolved command line arguments relevant to a run.
type Args struct {
	Duration        uint64
	Start           string
	End             string
	PrintPromptData bool
	DryRun          bool
}

// Context carries everything a run needs. Built once, read-only afterwards.
type Context struct {
	Profile         string
	Range           timerange.DateTimeRange
	DataSources     []datasource.DataSource
	OpenAiApiKey    string
	OpenAiModel     string
	OpenAiMaxToken  int64
	PrintPromptData bool
	DryRun          bool
}

// Build resolves the time range and assembles the sorted data source list.
func Build(args Args, cfg *config.Config) (*Context, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	rng, err := timerange.Resolve(args.Duration, args.Start, args.End, loc)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve time range: %w", err)
	}

	var sources []datasource.DataSource
	for _, c := range cfg.AppDescription {
		sources = append(sources, datasource.AppDescription{Config: c})
	}
	for _, c := range cfg.Ec2 {
		sources = append(sources, datasource.Ec2{Config: c})
	}
	for _, c := range cfg.Rds {
		sources = append(sources, datasource.Rds{Config: c})
	}
	for _, c := range cfg.CloudwatchMetric {
		sources = append(sources, datasource.CloudwatchMetric{Config: c})
	}
	for _, c := range cfg.CloudwatchLogInsight {
		sources = append(sources, datasource.CloudwatchLogInsight{Config: c})
	}
	datasource.Sort(sources)

	return &Context{
		Profile:         cfg.General.Profile,
		Range:           rng,
		DataSources:     sources,
		OpenAiApiKey:    cfg.OpenAi.ApiKey,
		OpenAiModel:     cfg.OpenAi.Model,
		OpenAiMaxToken:  cfg.OpenAi.MaxToken,
		PrintPromptData: args.PrintPromptData,
		DryRun:          args.DryRun,
	}, nil
}
