package main

import (
	"context"
	"fmt"
	"os"

	"github.com/kischiman/sanctuary-timeline/internal/model"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:     "config",
	Short:   "Show or update the residency window",
	GroupID: "timeline",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the residency window",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := timelineClient.GetConfig(context.Background())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if jsonOutput {
			printJSON(cfg)
			return nil
		}
		fmt.Printf("Residency: %s .. %s\n", cfg.ResidencyStartDate, cfg.ResidencyEndDate)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update the residency window",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var patch model.ConfigPatch
		if cmd.Flags().Changed("start") {
			v, _ := cmd.Flags().GetString("start")
			patch.ResidencyStartDate = &v
		}
		if cmd.Flags().Changed("end") {
			v, _ := cmd.Flags().GetString("end")
			patch.ResidencyEndDate = &v
		}

		if patch.IsZero() {
			return fmt.Errorf("no fields to update; pass --start and/or --end")
		}

		if err := timelineClient.SetConfig(context.Background(), patch); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("config updated")
		return nil
	},
}

func init() {
	configSetCmd.Flags().String("start", "", "residency start date (YYYY-MM-DD)")
	configSetCmd.Flags().String("end", "", "residency end date (YYYY-MM-DD)")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
