// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/MKhiriev/go-psyche-vault/models"
)

// entryFlags are the editable fields of a journal entry.
type entryFlags struct {
	criedAt   string
	emotion   string
	intensity int
	thoughts  string
	smile     string
}

func (f *entryFlags) bind(fs *pflag.FlagSet) {
	fs.StringVar(&f.criedAt, "cried-at", "", "When it happened (RFC 3339, default now)")
	fs.StringVar(&f.emotion, "emotion", "", "One of "+emotionList())
	fs.IntVar(&f.intensity, "intensity", 0, fmt.Sprintf("Feeling intensity, %d-%d", models.MinFeelingIntensity, models.MaxFeelingIntensity))
	fs.StringVar(&f.thoughts, "thoughts", "", "Free-form thoughts")
	fs.StringVar(&f.smile, "smile", "", "Something that made you smile recently")
}

// apply copies the flags that were set on the command line into entry.
func (f *entryFlags) apply(fs *pflag.FlagSet, entry *models.JournalEntry) error {
	if fs.Changed("cried-at") {
		criedAt, err := time.Parse(time.RFC3339, f.criedAt)
		if err != nil {
			return fmt.Errorf("invalid --cried-at: %w", err)
		}
		entry.CriedAt = criedAt
	}
	if fs.Changed("emotion") {
		entry.Emotion = models.Emotion(strings.ToUpper(f.emotion))
	}
	if fs.Changed("intensity") {
		entry.FeelingIntensity = f.intensity
	}
	if fs.Changed("thoughts") {
		entry.Thoughts = f.thoughts
	}
	if fs.Changed("smile") {
		entry.RecentSmileThing = f.smile
	}
	return nil
}

func (a *app) journalCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "journal",
		Aliases: []string{"cries"},
		Short:   "Manage encrypted journal entries",
	}
	cmd.AddCommand(
		a.journalCreateCommand(),
		a.journalListCommand(),
		a.journalGetCommand(),
		a.journalUpdateCommand(),
		a.journalDeleteCommand(),
	)
	return cmd
}

func (a *app) journalCreateCommand() *cobra.Command {
	var flags entryFlags

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Add a journal entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			entry := models.JournalEntry{CriedAt: time.Now().UTC()}
			if err := flags.apply(cmd.Flags(), &entry); err != nil {
				return err
			}

			created, err := a.session.Services.Journal.Create(cmd.Context(), a.session.UserID, entry)
			return render(a.printer, created, err, func(w io.Writer, entry models.JournalEntry) {
				success(w, "Entry %s saved", entry.ID)
			})
		},
	}
	flags.bind(cmd.Flags())
	return cmd
}

func (a *app) journalListCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List journal entries, most recent first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			entries, err := a.session.Services.Journal.List(cmd.Context(), a.session.UserID, limit)
			return render(a.printer, entries, err, func(w io.Writer, entries []models.JournalEntry) {
				if len(entries) == 0 {
					fmt.Fprintln(w, color.HiBlackString("No entries yet."))
					return
				}
				for _, e := range entries {
					fmt.Fprintf(w, "%s  %s  %-20s %s\n",
						color.YellowString(e.ID),
						e.CriedAt.Local().Format(time.DateTime),
						color.CyanString(string(e.Emotion)),
						color.GreenString("%d/%d", e.FeelingIntensity, models.MaxFeelingIntensity))
				}
			})
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Maximum number of entries (default 50)")
	return cmd
}

func (a *app) journalGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Show one journal entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, err := a.session.Services.Journal.Get(cmd.Context(), a.session.UserID, args[0])
			return render(a.printer, entry, err, printEntry)
		},
	}
}

func (a *app) journalUpdateCommand() *cobra.Command {
	var flags entryFlags

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Change fields of a journal entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			journal := a.session.Services.Journal

			entry, err := journal.Get(ctx, a.session.UserID, args[0])
			if err != nil {
				return render(a.printer, entry, err, printEntry)
			}
			if err = flags.apply(cmd.Flags(), &entry); err != nil {
				return err
			}

			updated, err := journal.Update(ctx, a.session.UserID, entry)
			return render(a.printer, updated, err, func(w io.Writer, entry models.JournalEntry) {
				success(w, "Entry %s updated", entry.ID)
			})
		},
	}
	flags.bind(cmd.Flags())
	return cmd
}

func (a *app) journalDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a journal entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := a.session.Services.Journal.Delete(cmd.Context(), a.session.UserID, args[0])
			return render(a.printer, args[0], err, func(w io.Writer, id string) {
				success(w, "Entry %s deleted", id)
			})
		},
	}
}

func printEntry(w io.Writer, e models.JournalEntry) {
	fmt.Fprintln(w, color.CyanString("Journal entry ")+color.YellowString(e.ID))
	field(w, "Cried at", e.CriedAt.Local().Format(time.DateTime))
	field(w, "Emotion", e.Emotion)
	field(w, "Intensity", fmt.Sprintf("%d/%d", e.FeelingIntensity, models.MaxFeelingIntensity))
	if e.Thoughts != "" {
		field(w, "Thoughts", e.Thoughts)
	}
	field(w, "Recent smile", e.RecentSmileThing)
	field(w, "Updated", e.UpdatedAt.Local().Format(time.DateTime))
}

func emotionList() string {
	emotions := []models.Emotion{
		models.EmotionOverwhelmed, models.EmotionMissingSomeone, models.EmotionStress,
		models.EmotionLoneliness, models.EmotionRelationshipIssues, models.EmotionSadness,
		models.EmotionJoy, models.EmotionProud, models.EmotionNoReason,
	}
	names := make([]string, len(emotions))
	for i, e := range emotions {
		names[i] = string(e)
	}
	return strings.Join(names, ", ")
}
