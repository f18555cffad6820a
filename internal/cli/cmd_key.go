// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-psyche-vault/models"
)

var errResetNotConfirmed = errors.New("reset deletes every journal entry and chat message; pass --yes to confirm")

func (a *app) keyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "key",
		Short: "Manage the encryption key of this device",
	}
	cmd.AddCommand(
		a.keyStatusCommand(),
		a.keyGateCommand(),
		a.keyBackupCommand(),
		a.keyExportCommand(),
		a.keyImportCommand(),
		a.keyResetCommand(),
	)
	return cmd
}

func (a *app) keyStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the encryption status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			status, err := a.session.Services.Encryption.Status(cmd.Context(), a.session.UserID)
			return render(a.printer, status, err, func(w io.Writer, status models.EncryptionStatus) {
				fmt.Fprintf(w, "%s %s\n", statusColor(status), statusHint(status))
			})
		},
	}
}

func (a *app) keyGateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "gate",
		Short: "Show which screen the app should open",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dest, err := a.session.Services.Encryption.Gate(cmd.Context(), a.session.UserID)
			return render(a.printer, dest, err, func(w io.Writer, dest models.Destination) {
				fmt.Fprintln(w, color.CyanString(string(dest)))
			})
		},
	}
}

func (a *app) keyBackupCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "backup",
		Short: "Confirm that the recovery key was saved",
		Long:  "Records the key-check on the server. Run it only after the recovery key from \"key export\" is stored somewhere safe.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := a.session.Services.Encryption.ConfirmBackup(cmd.Context(), a.session.UserID)
			return render(a.printer, struct{}{}, err, func(w io.Writer, _ struct{}) {
				success(w, "Backup confirmed")
			})
		},
	}
}

func (a *app) keyExportCommand() *cobra.Command {
	var copyToClipboard bool

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print the recovery key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			token, err := a.session.Services.Encryption.RecoveryKey(cmd.Context(), a.session.UserID)
			if err == nil && copyToClipboard {
				if err = a.clipboard(token); err != nil {
					err = fmt.Errorf("copy recovery key: %w", err)
				}
			}
			return render(a.printer, token, err, func(w io.Writer, token string) {
				if copyToClipboard {
					success(w, "Recovery key copied to the clipboard")
					return
				}
				fmt.Fprintln(w, token)
				fmt.Fprintln(w, color.YellowString("Anyone with this key can read your data. Store it somewhere safe."))
			})
		},
	}
	cmd.Flags().BoolVar(&copyToClipboard, "copy", false, "Copy the key to the clipboard instead of printing it")
	return cmd
}

func (a *app) keyImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import [RECOVERY_KEY]",
		Short: "Import a recovery key",
		Long:  "Imports a recovery key. Without an argument the key is read from standard input.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var token string
			if len(args) == 1 {
				token = args[0]
			} else {
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && !errors.Is(err, io.EOF) {
					return fmt.Errorf("read recovery key: %w", err)
				}
				token = line
			}

			result, err := a.session.Services.Encryption.ImportRecoveryKey(cmd.Context(), a.session.UserID, strings.TrimSpace(token))
			return render(a.printer, result, err, func(w io.Writer, result models.ImportResult) {
				if result.UserMismatch {
					fmt.Fprintln(w, color.YellowString("! This recovery key was exported for a different account."))
				}
				fmt.Fprintf(w, "%s %s\n", statusColor(result.Status), statusHint(result.Status))
			})
		},
	}
}

func (a *app) keyResetCommand() *cobra.Command {
	var confirmed bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete all encrypted data and start over with a new key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !confirmed {
				return errResetNotConfirmed
			}
			err := a.session.Services.Encryption.Reset(cmd.Context(), a.session.UserID)
			return render(a.printer, struct{}{}, err, func(w io.Writer, _ struct{}) {
				success(w, "Encrypted data deleted, a new key was created")
				fmt.Fprintln(w, "Run \"psyche key export\" and then \"psyche key backup\".")
			})
		},
	}
	cmd.Flags().BoolVar(&confirmed, "yes", false, "Confirm the reset")
	return cmd
}

func statusColor(status models.EncryptionStatus) string {
	switch status {
	case models.StatusReady:
		return color.GreenString(string(status))
	case models.StatusNeedsBackup, models.StatusNeedsImport, models.StatusNeedsNewKey:
		return color.YellowString(string(status))
	}
	return color.RedString(string(status))
}

func statusHint(status models.EncryptionStatus) string {
	switch status {
	case models.StatusReady:
		return "encryption key verified"
	case models.StatusNeedsBackup:
		return "save the key with \"key export\", then run \"key backup\""
	case models.StatusNeedsImport:
		return "import your recovery key with \"key import\""
	case models.StatusNeedsNewKey:
		return "create a new key with \"key reset\""
	}
	return "the key on this device does not match your account"
}
