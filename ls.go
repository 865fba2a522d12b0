package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/datapipe/spfetch/internal/fetch"
	"github.com/datapipe/spfetch/internal/graph"
)

func newLsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ls [folder]",
		Short: "List the children of a root folder (or the Documents root)",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLs,
	}
}

func runLs(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	var folderMatch string
	if len(args) == 1 {
		folderMatch = args[0]
	}

	logger := buildLogger()

	dl, err := buildDownloader(ctx, logger)
	if err != nil {
		return err
	}

	items, err := dl.List(ctx, folderMatch)
	if err != nil {
		if fetch.IsNotFound(err) {
			fmt.Fprintln(os.Stdout, newPrinter().Sprintf("Folder not found."))

			return err
		}

		return err
	}

	rows := make([][]string, 0, len(items))
	for i := range items {
		rows = append(rows, lsRow(items[i]))
	}

	printTable(os.Stdout, []string{"NAME", "TYPE", "SIZE", "MODIFIED"}, rows)

	return nil
}

func lsRow(item graph.Item) []string {
	kind := "file"
	size := formatSize(item.Size)

	if item.IsFolder {
		kind = "folder"
		size = "-"
	}

	modified := "-"
	if !item.ModifiedAt.IsZero() {
		modified = formatTime(item.ModifiedAt)
	}

	return []string{item.Name, kind, size, modified}
}
