// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func (a *app) promptCommand() *cobra.Command {
	var vars map[string]string

	cmd := &cobra.Command{
		Use:   "prompt NAME",
		Short: "Print an AI prompt template with its variables filled in",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prompts := a.session.Services.Prompts

			template, err := prompts.Prompt(cmd.Context(), args[0])
			if err == nil {
				template = prompts.ReplaceTemplateVariables(template, vars)
			}
			return render(a.printer, template, err, func(w io.Writer, prompt string) {
				fmt.Fprintln(w, prompt)
			})
		},
	}
	cmd.Flags().StringToStringVar(&vars, "var", nil, "Template variable as NAME=value (repeatable)")
	return cmd
}
