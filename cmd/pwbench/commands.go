// SPDX-License-Identifier: MIT

package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pwbench/report"
)

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Label every password and print the label tally",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runClassify(cmd)
	},
}

var formatCmd = &cobra.Command{
	Use:   "format",
	Short: "Rewrite dates and extract the good and very good rows",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFormat()
	},
}

var sortCmd = &cobra.Command{
	Use:   "sort",
	Short: "Time every algorithm, criterion and scenario and print the matrix",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSort(cmd)
	},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run classify, format and sort in sequence",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := runClassify(cmd); err != nil {
			return err
		}
		if err := runFormat(); err != nil {
			return err
		}

		return runSort(cmd)
	},
}

func runClassify(cmd *cobra.Command) error {
	res, err := pipe.ClassifyFile(cfg.Input.Passwords, outPath(cfg.Output.Classified))
	if err != nil {
		return err
	}

	return renderer(cmd).Tally(cmd.OutOrStdout(), res.Tally)
}

func runFormat() error {
	_, err := pipe.FormatFile(
		outPath(cfg.Output.Classified),
		outPath(cfg.Output.Formatted),
		outPath(cfg.Output.Strong))

	return err
}

func runSort(cmd *cobra.Command) error {
	results, err := pipe.SortFile(outPath(cfg.Output.Formatted), cfg.Output.Dir)
	if err != nil {
		return err
	}

	return renderer(cmd).Timings(cmd.OutOrStdout(), results)
}

func outPath(name string) string {
	return filepath.Join(cfg.Output.Dir, name)
}

func renderer(cmd *cobra.Command) *report.Renderer {
	f, ok := cmd.OutOrStdout().(*os.File)

	return report.New(ok && report.Styled(f))
}
