// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-psyche-vault/models"
)

func (a *app) chatCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Manage the encrypted chat history",
	}
	cmd.AddCommand(
		a.chatMessagesCommand(),
		a.chatSendCommand(),
		a.chatSessionCommand(),
		a.chatSummaryCommand(),
		a.chatClearCommand(),
		a.chatMigrateCommand(),
	)
	return cmd
}

func (a *app) chatMessagesCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "messages",
		Short: "Print the chat history, oldest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			messages, err := a.session.Services.Chat.GetMessages(cmd.Context(), a.session.UserID, limit)
			return render(a.printer, messages, err, func(w io.Writer, messages []models.ChatMessage) {
				if len(messages) == 0 {
					fmt.Fprintln(w, color.HiBlackString("No messages yet."))
					return
				}
				for _, m := range messages {
					role := color.GreenString(string(m.Role))
					if m.Role == models.ChatRoleAssistant {
						role = color.CyanString(string(m.Role))
					}
					fmt.Fprintf(w, "%s %s: %s\n", color.HiBlackString(m.CreatedAt.Local().Format(time.DateTime)), role, m.Content)
				}
			})
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Maximum number of messages (default 50)")
	return cmd
}

func (a *app) chatSendCommand() *cobra.Command {
	var role, state, source string

	cmd := &cobra.Command{
		Use:   "send CONTENT",
		Short: "Store a chat message",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg := models.ChatMessage{
				Content: args[0],
				Role:    models.ChatRole(role),
				State:   models.ChatState(state),
				Source:  models.ChatSource(source),
			}
			saved, err := a.session.Services.Chat.SaveMessage(cmd.Context(), a.session.UserID, msg)
			return render(a.printer, saved, err, func(w io.Writer, m models.ChatMessage) {
				success(w, "Message %s saved", m.ID)
			})
		},
	}
	cmd.Flags().StringVar(&role, "role", string(models.ChatRoleUser), "Author: user or assistant")
	cmd.Flags().StringVar(&state, "state", "", "Conversation state")
	cmd.Flags().StringVar(&source, "source", "", "Assistant backend: mistral or apple")
	return cmd
}

func (a *app) chatSessionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "session",
		Short: "Show the latest chat session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := a.session.Services.Chat.GetSession(cmd.Context(), a.session.UserID)
			return render(a.printer, session, err, printSession)
		},
	}
}

func (a *app) chatSummaryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "summary TEXT",
		Short: "Replace the summary of the latest chat session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			chat := a.session.Services.Chat

			session, err := chat.GetSession(ctx, a.session.UserID)
			if err != nil {
				return render(a.printer, session, err, printSession)
			}
			session.Summary = args[0]

			saved, err := chat.UpdateSession(ctx, a.session.UserID, session)
			return render(a.printer, saved, err, func(w io.Writer, s models.ChatSession) {
				success(w, "Session %s updated", s.ID)
			})
		},
	}
}

func (a *app) chatClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete every chat message and session summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := a.session.Services.Chat.ClearMessages(cmd.Context(), a.session.UserID)
			return render(a.printer, struct{}{}, err, func(w io.Writer, _ struct{}) {
				success(w, "Chat history cleared")
			})
		},
	}
}

func (a *app) chatMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Move the plaintext chat history of older versions into encrypted storage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := a.session.Services.ChatMigration.MigrateLegacyChat(cmd.Context(), a.session.UserID)
			return render(a.printer, result, err, func(w io.Writer, r models.ChatMigrationResult) {
				if r.MigratedMessages == 0 && !r.MigratedSummary {
					fmt.Fprintln(w, color.HiBlackString("Nothing to migrate."))
					return
				}
				success(w, "Migrated %d messages", r.MigratedMessages)
				if r.MigratedSummary {
					success(w, "Migrated session summary")
				}
			})
		},
	}
}

func printSession(w io.Writer, s models.ChatSession) {
	if s.ID == "" {
		fmt.Fprintln(w, color.HiBlackString("No chat session yet."))
		return
	}
	fmt.Fprintln(w, color.CyanString("Chat session ")+color.YellowString(s.ID))
	field(w, "Updated", s.UpdatedAt.Local().Format(time.DateTime))
	if s.Summary != "" {
		field(w, "Summary", s.Summary)
	}
}
