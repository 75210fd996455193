package main

import (
	"context"
	"fmt"
	"os"

	"github.com/kischiman/sanctuary-timeline/internal/client"
	"github.com/kischiman/sanctuary-timeline/internal/model"
	"github.com/spf13/cobra"
)

var slotCmd = &cobra.Command{
	Use:     "slot",
	Short:   "Manage time slots",
	GroupID: "timeline",
}

var slotListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all time slots",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		slots, err := timelineClient.ListTimeSlots(context.Background())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if jsonOutput {
			printJSON(slots)
			return nil
		}
		printSlotTable(slots)
		return nil
	},
}

var slotAddCmd = &cobra.Command{
	Use:   "add <label>",
	Short: "Create a new time slot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		label := args[0]
		start, _ := cmd.Flags().GetString("start")
		end, _ := cmd.Flags().GetString("end")

		req := client.CreateTimeSlotRequest{
			Label:     label,
			StartTime: start,
			EndTime:   end,
		}
		if cmd.Flags().Changed("order") {
			order, _ := cmd.Flags().GetInt("order")
			req.DisplayOrder = &order
		}

		slot, err := timelineClient.CreateTimeSlot(context.Background(), req)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if jsonOutput {
			printJSON(slot)
			return nil
		}
		fmt.Printf("created %s\n", slot.ID)
		return nil
	},
}

var slotUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update fields of a time slot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]

		var patch model.TimeSlotPatch
		if cmd.Flags().Changed("label") {
			v, _ := cmd.Flags().GetString("label")
			patch.Label = &v
		}
		if cmd.Flags().Changed("start") {
			v, _ := cmd.Flags().GetString("start")
			patch.StartTime = &v
		}
		if cmd.Flags().Changed("end") {
			v, _ := cmd.Flags().GetString("end")
			patch.EndTime = &v
		}
		if cmd.Flags().Changed("order") {
			v, _ := cmd.Flags().GetInt("order")
			patch.DisplayOrder = &v
		}

		if patch.IsZero() {
			return fmt.Errorf("no fields to update; pass at least one flag")
		}

		if err := timelineClient.UpdateTimeSlot(context.Background(), id, patch); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("updated %s\n", id)
		return nil
	},
}

var slotRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Delete a time slot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]
		if err := timelineClient.DeleteTimeSlot(context.Background(), id); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("removed %s\n", id)
		return nil
	},
}

func init() {
	slotAddCmd.Flags().String("start", "", "start time (HH:MM)")
	slotAddCmd.Flags().String("end", "", "end time (HH:MM)")
	slotAddCmd.Flags().Int("order", 0, "display order")
	slotAddCmd.MarkFlagRequired("start")
	slotAddCmd.MarkFlagRequired("end")

	slotUpdateCmd.Flags().String("label", "", "slot label")
	slotUpdateCmd.Flags().String("start", "", "start time (HH:MM)")
	slotUpdateCmd.Flags().String("end", "", "end time (HH:MM)")
	slotUpdateCmd.Flags().Int("order", 0, "display order")

	slotCmd.AddCommand(slotListCmd)
	slotCmd.AddCommand(slotAddCmd)
	slotCmd.AddCommand(slotUpdateCmd)
	slotCmd.AddCommand(slotRemoveCmd)
}
