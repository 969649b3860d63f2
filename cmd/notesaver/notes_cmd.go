package main

import (
	"fmt"
	"io"
	"time"

	"github.com/quailyquaily/notesaver/db"
	"github.com/quailyquaily/notesaver/internal/clifmt"
	"github.com/quailyquaily/notesaver/notes"
	"github.com/spf13/cobra"
)

func newNotesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notes",
		Short: "Inspect stored notes",
	}

	var userID int64
	list := &cobra.Command{
		Use:   "list",
		Short: "List one owner's notes, oldest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if userID == 0 {
				return fmt.Errorf("--user is required")
			}
			gdb, err := db.Open(cmd.Context(), dbConfigFromViper())
			if err != nil {
				return err
			}
			defer db.Close(gdb)

			loc, err := locationFromViper()
			if err != nil {
				return err
			}
			items, err := notes.NewGormStore(gdb).List(cmd.Context(), userID)
			if err != nil {
				return err
			}
			printNotes(cmd.OutOrStdout(), userID, items, loc)
			return nil
		},
	}
	list.Flags().Int64Var(&userID, "user", 0, "owner (Telegram chat id)")
	cmd.AddCommand(list)
	return cmd
}

func printNotes(w io.Writer, userID int64, items []notes.Note, loc *time.Location) {
	p := clifmt.New(w)
	p.Headerf("Notes for %d (%d)", userID, len(items))
	if len(items) == 0 {
		p.Linef("%s", p.Warn("no notes"))
		return
	}
	for _, n := range items {
		p.Linef("%s %s %s",
			p.Key(fmt.Sprintf("%d)", n.ID)),
			n.Text,
			p.Dim(n.CreatedAt.In(loc).Format("02-01-2006 15:04:05")),
		)
	}
}
