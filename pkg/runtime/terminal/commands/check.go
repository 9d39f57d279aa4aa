package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/de-tools/biz-pulse/pkg/models/api"
	"github.com/de-tools/biz-pulse/pkg/runtime/terminal/export"
	"github.com/de-tools/biz-pulse/pkg/services/healthcheck"
)

type CheckCmd struct {
	inputPath string
	pipeline  *healthcheck.Pipeline
	reporter  *export.Reporter
}

func NewCheckCmd(pipeline *healthcheck.Pipeline, reporter *export.Reporter) *cobra.Command {
	cc := &CheckCmd{pipeline: pipeline, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Run a day-over-day business health check",
		RunE:  cc.run,
	}

	cmd.Flags().StringVar(&cc.inputPath, "input", "",
		"Path to a JSON file with today's and yesterday's figures")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func (cc *CheckCmd) run(cmd *cobra.Command, _ []string) error {
	data, err := os.ReadFile(cc.inputPath)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	var req api.CheckRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return fmt.Errorf("failed to parse input file: %w", err)
	}

	report, err := cc.pipeline.Run(cmd.Context(), req)
	if err != nil {
		return err
	}

	return cc.reporter.Handle(report)
}
