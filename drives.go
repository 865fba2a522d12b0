package main

import (
	"os"

	"github.com/spf13/cobra"
)

func newDrivesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "drives",
		Short: "List the site's document libraries",
		Args:  cobra.NoArgs,
		RunE:  runDrives,
	}
}

func runDrives(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	logger := buildLogger()

	dl, err := buildDownloader(ctx, logger)
	if err != nil {
		return err
	}

	drives, err := dl.Drives(ctx)
	if err != nil {
		return err
	}

	rows := make([][]string, 0, len(drives))
	for _, d := range drives {
		rows = append(rows, []string{d.Name, d.DriveType, d.ID})
	}

	printTable(os.Stdout, []string{"NAME", "TYPE", "ID"}, rows)

	return nil
}
