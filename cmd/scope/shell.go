package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"IndicatorScope/internal/auth"
	"IndicatorScope/internal/shell"
)

var forceLogin bool

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start an interactive analysis session",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		lines := shell.Lines(ctx, os.Stdin)
		if cfg.Auth.Required || forceLogin {
			gate := auth.NewGate(auth.LoadCredentials(cfg.Auth.Credentials))
			if err := shell.Login(ctx, gate, lines, os.Stdout, 3); err != nil {
				return err
			}
		}

		a := newApp(cfg)
		defer a.Close()

		commands := &shell.Commands{Session: a.session, Renderer: a.renderer, Ctx: ctx}
		fmt.Fprintln(os.Stdout, shell.FormatStatus(a.session.Status()))
		fmt.Fprintln(os.Stdout, "Type help for commands.")
		shell.Run(ctx, lines, os.Stdout, "scope> ", commands.Handle)
		return nil
	},
}

func init() {
	shellCmd.Flags().BoolVar(&forceLogin, "login", false, "require a login even when auth.required is off")
}
