// Package prompt assembles the aggregated prompt buffer sent to the LLM.
package prompt

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/schollz/progressbar/v3"

	"github.com/autodiag/autodiag/pkg/aws"
	"github.com/autodiag/autodiag/pkg/execution"
)

// Instruction is the fixed system preamble. It points the model at the
// <data></data> delimiter convention used by BuildPromptData.
const Instruction = "You are an AWS diagnostic assistant.\n" +
	"You will be given pieces of information surrounded by `<data></data>` tags\n" +
	"Use this information to perform a diagnosis.\n" +
	"Base your diagnosis from the provided information only.\n" +
	"Use all of the information provided in your diagnosis.\n" +
	"Structure your diagnosis per information, then provide a summary at the end\n" +
	"Format your response using Markdown.\n" +
	"Listed below are the information you will use:\n"

// BuildPromptData fetches every data source in order and serializes the
// results into one delimited buffer. The first fetch error aborts the
// whole aggregation.
func BuildPromptData(ctx context.Context, client aws.Client, ectx *execution.Context) (string, error) {
	var sb strings.Builder

	bar := newProgressBar(len(ectx.DataSources))
	for _, source := range ectx.DataSources {
		bar.Describe(source.DisplayName())

		promptData, err := source.Fetch(ctx, client, ectx.Range)
		if err != nil {
			return "", fmt.Errorf("failed to fetch %s: %w", source.DisplayName(), err)
		}

		for _, pd := range promptData {
			sb.WriteString("<data>\n")
			sb.WriteString(strings.Join(pd.Description, "\n"))
			sb.WriteString("\n")
			if pd.Data != nil {
				sb.WriteString("Data:\n")
				sb.WriteString("```\n")
				sb.WriteString(*pd.Data)
				sb.WriteString("```\n")
			}
			sb.WriteString("</data>\n")
			sb.WriteString("\n")
		}

		_ = bar.Add(1)
	}
	_ = bar.Finish()

	return sb.String(), nil
}

func newProgressBar(total int) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription("Fetching data sources"),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}
