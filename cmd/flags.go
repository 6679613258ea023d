package cmd

import (
	"github.com/gnames/gnzoo/pkg/config"
	"github.com/spf13/cobra"
)

type flagOption func(cmd *cobra.Command) []config.Option

// flagOptions converts flags that were set explicitly into config
// options. Flags left at their defaults do not override config.yaml or
// environment.
func flagOptions(cmd *cobra.Command) []config.Option {
	var res []config.Option
	fns := []flagOption{
		namesFlag, arrivalsFlag, outputFlag,
		formatFlag, sqliteFlag, progressFlag,
	}
	for _, fn := range fns {
		res = append(res, fn(cmd)...)
	}
	return res
}

func stringFlag(
	cmd *cobra.Command,
	name string,
	opt func(string) config.Option,
) []config.Option {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	s, _ := cmd.Flags().GetString(name)
	return []config.Option{opt(s)}
}

func namesFlag(cmd *cobra.Command) []config.Option {
	return stringFlag(cmd, "names", config.OptInputNamesPath)
}

func arrivalsFlag(cmd *cobra.Command) []config.Option {
	return stringFlag(cmd, "arrivals", config.OptInputArrivalsPath)
}

func outputFlag(cmd *cobra.Command) []config.Option {
	return stringFlag(cmd, "output", config.OptReportPath)
}

func formatFlag(cmd *cobra.Command) []config.Option {
	return stringFlag(cmd, "format", config.OptReportFormat)
}

func sqliteFlag(cmd *cobra.Command) []config.Option {
	return stringFlag(cmd, "sqlite", config.OptReportSQLitePath)
}

func progressFlag(cmd *cobra.Command) []config.Option {
	if !cmd.Flags().Changed("progress") {
		return nil
	}
	b, _ := cmd.Flags().GetBool("progress")
	return []config.Option{config.OptWithProgress(b)}
}
