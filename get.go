package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/datapipe/spfetch/internal/fetch"
)

func newGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <file-name>",
		Short: "Download a file from under a named root folder",
		Long: `Download the first file named <file-name> found by a depth-first search
under the given root folder of the site's Documents library. The file is
written to the output directory under the name reported by SharePoint.`,
		Args: cobra.ExactArgs(1),
		RunE: runGet,
	}

	cmd.Flags().StringP("folder", "f", "", "root folder to search under (required)")
	cmd.Flags().StringP("output-dir", "o", ".", "directory to write the file into")

	_ = cmd.MarkFlagRequired("folder")

	return cmd
}

func runGet(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	target := args[0]
	folderMatch, _ := cmd.Flags().GetString("folder")
	outputDir, _ := cmd.Flags().GetString("output-dir")

	logger := buildLogger()

	dl, err := buildDownloader(ctx, logger)
	if err != nil {
		return err
	}

	progressf("Searching for %s under %s...\n", target, folderMatch)

	p := newPrinter()

	path, err := dl.Download(ctx, target, folderMatch, outputDir)
	if err != nil {
		if fetch.IsNotFound(err) {
			fmt.Fprintln(os.Stdout, p.Sprintf("File not found."))

			return err
		}

		return err
	}

	fmt.Fprintln(os.Stdout, p.Sprintf("File downloaded successfully: %s", path))

	return nil
}
