package main

import (
	"github.com/spf13/cobra"

	"github.com/mj41/mcbook/envs"
	"github.com/mj41/mcbook/logging"
)

func newRootCmd() *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:           "mcbook",
		Short:         "mcbook builds Minecraft written book give commands.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Init(cmd.ErrOrStderr(), logLevel)
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", envs.LogLevel, "log level (panic/fatal/error/warn/info/debug/trace)")

	root.AddCommand(newGiveCmd(), newValidateCmd(), newVersionCmd())
	return root
}
