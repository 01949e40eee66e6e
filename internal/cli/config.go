package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/ytget/yt-downloader-cli/internal/config"
	"github.com/ytget/yt-downloader-cli/internal/ui"
	"github.com/ytget/yt-downloader-cli/internal/where"
)

func newConfigCmd(deps *Dependencies) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect configuration",
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "List configuration keys with their values and environment variables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			keys := lo.Must(cmd.Flags().GetStringSlice("key"))
			asJSON := lo.Must(cmd.Flags().GetBool("json"))

			fields := config.Fields()
			if len(keys) > 0 {
				for _, k := range keys {
					if _, ok := config.Default[k]; !ok {
						return usageErrorf("unknown key %s", k)
					}
				}
				fields = lo.Filter(fields, func(f config.Field, _ int) bool {
					return lo.Contains(keys, f.Key)
				})
			}

			values := lo.Map(fields, func(f config.Field, _ int) config.FieldValue {
				return f.Resolve(deps.Settings)
			})

			if asJSON {
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(values)
			}

			return printFields(cmd.OutOrStdout(), values, deps.Settings.IsColored())
		},
	}
	showCmd.Flags().StringSliceP("key", "k", []string{}, "Only show these keys")
	showCmd.Flags().BoolP("json", "j", false, "Print as JSON")
	_ = showCmd.RegisterFlagCompletionFunc("key", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return lo.Keys(config.Default), cobra.ShellCompDirectiveNoFileComp
	})

	configCmd.AddCommand(showCmd)
	return configCmd
}

func printFields(w io.Writer, fields []config.FieldValue, colored bool) error {
	accent, faint := func(s string) string { return s }, func(s string) string { return s }
	if colored {
		accent, faint = ui.Bold(ui.AccentColor), ui.Fg(ui.FaintColor)
	}

	if _, err := fmt.Fprintf(w, "%s %s\n\n", faint("Config file:"), where.ConfigFile()); err != nil {
		return err
	}

	for i, field := range fields {
		_, err := fmt.Fprintf(w, "%s\n%s\n%s %v\n%s %v\n%s %s\n",
			accent(field.Key),
			faint(field.Description),
			faint("Value:  "), field.Value,
			faint("Default:"), field.Default,
			faint("Env:    "), field.Env,
		)
		if err != nil {
			return err
		}
		if i < len(fields)-1 {
			fmt.Fprintln(w)
		}
	}
	return nil
}
