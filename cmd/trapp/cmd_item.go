package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dev0l/trapp/internal/store"
)

var itemCmd = &cobra.Command{
	Use:   "item",
	Short: "Edit the items of a study program",
	Long: `Item edits one list of a transcript's study program in place.

Sections: key_points (points), study_tasks (tasks), quiz_questions (quiz).
Items are numbered from 1 as shown by "trapp show".`,
}

var itemEditCmd = &cobra.Command{
	Use:   "edit <id> <section> <n> <text>",
	Short: "Replace item n",
	Args:  cobra.MinimumNArgs(4),
	RunE:  runItemEdit,
}

var itemDeleteCmd = &cobra.Command{
	Use:   "delete <id> <section> <n>",
	Short: "Remove item n",
	Args:  cobra.ExactArgs(3),
	RunE:  runItemDelete,
}

var itemMoveCmd = &cobra.Command{
	Use:   "move <id> <section> <from> <to>",
	Short: "Move an item to a new position",
	Args:  cobra.ExactArgs(4),
	RunE:  runItemMove,
}

var itemAppendCmd = &cobra.Command{
	Use:   "append <id> <section> <text>",
	Short: "Add an item at the end",
	Args:  cobra.MinimumNArgs(3),
	RunE:  runItemAppend,
}

func runItemEdit(cmd *cobra.Command, args []string) error {
	t, section, err := itemTarget(args)
	if err != nil {
		return err
	}
	index, err := parseIndex(args[2])
	if err != nil {
		return err
	}
	text := joinText(args[3:])
	if text == "" {
		return fmt.Errorf("item text is empty")
	}
	if err := app.store.EditItem(cmd.Context(), t.ID, section, index, text); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Updated %s item %d\n", section, index+1)
	return nil
}

func runItemDelete(cmd *cobra.Command, args []string) error {
	t, section, err := itemTarget(args)
	if err != nil {
		return err
	}
	index, err := parseIndex(args[2])
	if err != nil {
		return err
	}
	if err := app.store.DeleteItem(cmd.Context(), t.ID, section, index); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s item %d\n", section, index+1)
	return nil
}

func runItemMove(cmd *cobra.Command, args []string) error {
	t, section, err := itemTarget(args)
	if err != nil {
		return err
	}
	from, err := parseIndex(args[2])
	if err != nil {
		return err
	}
	to, err := parseIndex(args[3])
	if err != nil {
		return err
	}
	if err := app.store.MoveItem(cmd.Context(), t.ID, section, from, to); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Moved %s item %d to %d\n", section, from+1, to+1)
	return nil
}

func runItemAppend(cmd *cobra.Command, args []string) error {
	t, section, err := itemTarget(args)
	if err != nil {
		return err
	}
	text := joinText(args[2:])
	if text == "" {
		return fmt.Errorf("item text is empty")
	}
	if err := app.store.AppendItem(cmd.Context(), t.ID, section, text); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Appended to %s\n", section)
	return nil
}

func itemTarget(args []string) (store.Transcript, store.Section, error) {
	section, err := store.ParseSection(args[1])
	if err != nil {
		return store.Transcript{}, "", err
	}
	t, err := lookup(args[0])
	if err != nil {
		return store.Transcript{}, "", err
	}
	return t, section, nil
}

// parseIndex converts a 1-based item number to the store's 0-based index.
func parseIndex(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%w: %q is not a positive item number", store.ErrIndexOutOfRange, s)
	}
	return n - 1, nil
}

func joinText(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}
