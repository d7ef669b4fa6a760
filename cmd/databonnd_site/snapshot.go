package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/databonnd/site/internal/snapshot"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Capture a screenshot of the running site",
	Long:  "Opens a page in headless Chrome at the given viewport size, waits for the animated background and saves a full-page PNG. Requires Chrome/Chromium.",
	RunE:  runSnapshot,
}

var (
	snapshotURL     string
	snapshotWidth   int
	snapshotHeight  int
	snapshotOut     string
	snapshotTimeout time.Duration
	snapshotSettle  time.Duration
	snapshotVerbose bool
)

func init() {
	snapshotCmd.Flags().StringVarP(&snapshotURL, "url", "u", "", "Page URL (required)")
	snapshotCmd.Flags().IntVar(&snapshotWidth, "width", snapshot.DefaultWidth, "Viewport width in CSS pixels")
	snapshotCmd.Flags().IntVar(&snapshotHeight, "height", snapshot.DefaultHeight, "Viewport height in CSS pixels")
	snapshotCmd.Flags().StringVarP(&snapshotOut, "out", "o", "", "Output PNG path (required)")
	snapshotCmd.Flags().DurationVar(&snapshotTimeout, "timeout", snapshot.DefaultTimeout, "Browser timeout")
	snapshotCmd.Flags().DurationVar(&snapshotSettle, "settle", snapshot.DefaultSettle, "Wait after the background appears")
	snapshotCmd.Flags().BoolVarP(&snapshotVerbose, "verbose", "v", false, "Log browser progress")

	if err := snapshotCmd.MarkFlagRequired("url"); err != nil {
		panic(fmt.Sprintf("failed to mark url flag as required: %v", err))
	}
	if err := snapshotCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(snapshotCmd)
}

func runSnapshot(cmd *cobra.Command, _ []string) error {
	result, err := snapshot.Save(cmd.Context(), snapshot.Options{
		URL:     snapshotURL,
		Width:   snapshotWidth,
		Height:  snapshotHeight,
		Timeout: snapshotTimeout,
		Settle:  snapshotSettle,
		Verbose: snapshotVerbose,
	}, snapshotOut)
	if err != nil {
		return err
	}

	fmt.Printf("Saved %s (%dx%d, %s background)\n", snapshotOut, snapshotWidth, snapshotHeight, result.Mode)
	return nil
}
