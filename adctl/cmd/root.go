// Package cmd holds the adctl root command
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/autodiag/autodiag/pkg/aws"
	"github.com/autodiag/autodiag/pkg/config"
	"github.com/autodiag/autodiag/pkg/execution"
	"github.com/autodiag/autodiag/pkg/logging"
	"github.com/autodiag/autodiag/pkg/openai"
	"github.com/autodiag/autodiag/pkg/prompt"
)

// version is overridden at build time via -ldflags.
var version = "dev"

const banner = `
███╗     █████╗               ██████╗     ███╗
██╔╝    ██╔══██╗              ██╔══██╗    ╚██║
██║     ███████║    █████╗    ██║  ██║     ██║
██║     ██╔══██║    ╚════╝    ██║  ██║     ██║
███╗    ██║  ██║              ██████╔╝    ███║
╚══╝    ╚═╝  ╚═╝              ╚═════╝     ╚══╝
- auto-diagnostic {version} -`

var rootCmd = &cobra.Command{
	Use:           "adctl <config-file>",
	Short:         "Automatically performs diagnosis on your AWS environment with AI",
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

var (
	durationSecs    uint64 = 3600
	startArg        string
	endArg          string
	printPromptData bool
	dryRun          bool
)

func init() {
	rootCmd.Flags().Uint64Var(&durationSecs, "duration", durationSecs, "duration in seconds, since the current date time")
	rootCmd.Flags().StringVar(&startArg, "start", "", "start time [format: 2006-01-02 15:04:05], overrides duration when given with --end")
	rootCmd.Flags().StringVar(&endArg, "end", "", "end time [format: 2006-01-02 15:04:05], overrides duration when given with --start")
	rootCmd.Flags().BoolVar(&printPromptData, "print-prompt-data", false, "print the raw prompt data")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "dry run mode, don't generate diagnosis")
}

// Execute runs the root command and reports any failure through the logger
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		logging.Errorf("%v", err)
	}
	return err
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(args[0])
	if err != nil {
		return err
	}

	ectx, err := execution.Build(execution.Args{
		Duration:        durationSecs,
		Start:           startArg,
		End:             endArg,
		PrintPromptData: printPromptData,
		DryRun:          dryRun,
	}, cfg)
	if err != nil {
		return err
	}

	fmt.Println(strings.Replace(banner, "{version}", version, 1))

	client, err := aws.NewClient(cmd.Context(), ectx.Profile)
	if err != nil {
		return err
	}

	promptData, err := prompt.BuildPromptData(cmd.Context(), client, ectx)
	if err != nil {
		return err
	}

	if ectx.PrintPromptData {
		fmt.Printf("\n%s\n", promptData)
	}

	if ectx.DryRun {
		logging.Info("Dry run, skipping diagnosis")
		return nil
	}

	apiKey, err := openai.ResolveApiKey(ectx.OpenAiApiKey)
	if err != nil {
		return err
	}

	_, err = openai.SendRequest(cmd.Context(), apiKey, openai.Input{
		Model:        ectx.OpenAiModel,
		MaxTokens:    ectx.OpenAiMaxToken,
		SystemPrompt: prompt.Instruction,
		UserPrompt:   promptData,
	}, os.Stdout)
	return err
}
