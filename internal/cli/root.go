// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-psyche-vault/internal/config"
	"github.com/MKhiriev/go-psyche-vault/internal/logger"
)

const appName = "psyche"

// BuildInfo is stamped into the binary by the linker.
type BuildInfo struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}

type app struct {
	bootstrap Bootstrap
	build     BuildInfo
	stdin     io.Reader
	stdout    io.Writer
	stderr    io.Writer
	clipboard func(string) error

	flagCfg    *config.StructuredConfig
	jsonOutput bool

	session *Session
	printer *printer
}

// Option customizes [Execute].
type Option func(*app)

// WithBootstrap replaces [Connect].
func WithBootstrap(b Bootstrap) Option {
	return func(a *app) { a.bootstrap = b }
}

// WithIO replaces the standard streams.
func WithIO(stdin io.Reader, stdout, stderr io.Writer) Option {
	return func(a *app) {
		a.stdin, a.stdout, a.stderr = stdin, stdout, stderr
	}
}

// WithBuildInfo sets what the version command prints.
func WithBuildInfo(info BuildInfo) Option {
	return func(a *app) { a.build = info }
}

// WithClipboard replaces the system clipboard writer.
func WithClipboard(write func(string) error) Option {
	return func(a *app) { a.clipboard = write }
}

// Execute runs the command line args and releases the session it opened.
func Execute(ctx context.Context, args []string, opts ...Option) error {
	a := &app{
		bootstrap: Connect,
		stdin:     os.Stdin,
		stdout:    os.Stdout,
		stderr:    os.Stderr,
		clipboard: clipboard.WriteAll,
	}
	for _, opt := range opts {
		opt(a)
	}

	root := a.rootCommand()
	root.SetArgs(args)
	root.SetIn(a.stdin)
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	err := root.ExecuteContext(ctx)
	if a.session != nil {
		if closeErr := a.session.Close(); closeErr != nil {
			logger.FromContext(ctx).Warn().Err(closeErr).Str("func", "cli.Execute").Msg("failed to close session")
		}
	}
	if err != nil && !errors.Is(err, errReported) {
		fmt.Fprintf(a.stderr, "Error: %v\n", err)
	}
	return err
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:               appName,
		Short:             "End-to-end encrypted journal and chat client",
		Long:              "psyche keeps journal entries and chat history encrypted with a key that never leaves your devices.",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.open,
	}

	a.flagCfg = config.BindFlags(root.PersistentFlags())
	root.PersistentFlags().BoolVar(&a.jsonOutput, "json", false, "Print results as JSON")

	root.AddCommand(
		a.keyCommand(),
		a.journalCommand(),
		a.chatCommand(),
		a.promptCommand(),
		a.versionCommand(),
	)
	return root
}

// open resolves the configuration, attaches the logger to the command
// context and opens the session.
func (a *app) open(cmd *cobra.Command, _ []string) error {
	a.printer = &printer{out: cmd.OutOrStdout(), errOut: cmd.ErrOrStderr(), json: a.jsonOutput}
	if cmd.Annotations[annotationOffline] != "" {
		return nil
	}

	cfg, err := config.GetStructuredConfig(a.flagCfg)
	if err != nil {
		return err
	}

	log := logger.NewClientLogger(appName, cfg.App.LogFile).Component(cmd.Name())
	ctx := log.WithContext(cmd.Context())
	cmd.SetContext(ctx)

	a.session, err = a.bootstrap(ctx, cfg)
	if err != nil {
		log.Err(err).Str("func", "app.open").Msg("failed to open session")
		return err
	}
	return nil
}

// annotationOffline marks commands that need no session.
const annotationOffline = "offline"

func (a *app) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print build information",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationOffline: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return render(a.printer, a.build, nil, func(w io.Writer, info BuildInfo) {
				field(w, "Build version", orNA(info.Version))
				field(w, "Build date", orNA(info.Date))
				field(w, "Build commit", orNA(info.Commit))
			})
		},
	}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
