package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mj41/mcbook/envs"
	"github.com/mj41/mcbook/loader"
	"github.com/mj41/mcbook/logging"
	"github.com/mj41/mcbook/text"
)

func newGiveCmd() *cobra.Command {
	var (
		file     string
		selector string
		count    int
		dialect  string
	)

	cmd := &cobra.Command{
		Use:   "give",
		Short: "give prints the /give command for a book description.",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := text.ParseDialect(dialect)
			if err != nil {
				return err
			}
			b, err := loader.LoadFile(file)
			if err != nil {
				return err
			}
			out, err := b.GiveCommandDialect(selector, count, d)
			if err != nil {
				return err
			}

			logging.Logger().WithFields(logrus.Fields{
				"pages":   b.Len(),
				"dialect": d.Name,
				"length":  len(out),
			}).Debug("built give command")

			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML book description")
	cmd.Flags().StringVarP(&selector, "selector", "s", envs.Selector, "target selector")
	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of books")
	cmd.Flags().StringVarP(&dialect, "dialect", "d", envs.Dialect, "output dialect (legacy/strict)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func newValidateCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "validate checks a book description without printing the command.",
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := loader.LoadFile(file)
			if err != nil {
				return err
			}
			if err := b.Validate(); err != nil {
				return err
			}
			color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "%s by %s: %d pages ok\n", b.Title, b.Author, b.Len())
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML book description")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
