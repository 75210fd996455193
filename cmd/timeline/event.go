package main

import (
	"context"
	"fmt"
	"os"

	"github.com/kischiman/sanctuary-timeline/internal/client"
	"github.com/kischiman/sanctuary-timeline/internal/model"
	"github.com/spf13/cobra"
)

var eventCmd = &cobra.Command{
	Use:     "event",
	Short:   "Manage timeline events",
	GroupID: "timeline",
}

var eventListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all events",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		events, err := timelineClient.ListEvents(context.Background())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if jsonOutput {
			printJSON(events)
			return nil
		}
		printEventTable(events)
		return nil
	},
}

var eventShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a single event",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		event, err := timelineClient.GetEvent(context.Background(), args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if jsonOutput {
			printJSON(event)
			return nil
		}
		printEventTable([]*model.Event{event})
		return nil
	},
}

var eventAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Create a new event",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		title := args[0]
		date, _ := cmd.Flags().GetString("date")
		slot, _ := cmd.Flags().GetString("slot")
		creator, _ := cmd.Flags().GetString("creator")
		description, _ := cmd.Flags().GetString("description")
		location, _ := cmd.Flags().GetString("location")

		req := client.CreateEventRequest{
			Date:        date,
			TimeSlotID:  slot,
			Title:       title,
			CreatorName: creator,
		}
		if description != "" {
			req.Description = &description
		}
		if location != "" {
			req.Location = &location
		}

		event, err := timelineClient.CreateEvent(context.Background(), req)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if jsonOutput {
			printJSON(event)
			return nil
		}
		fmt.Printf("created %s\n", event.ID)
		return nil
	},
}

var eventUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update fields of an event",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]

		var patch model.EventPatch
		if cmd.Flags().Changed("date") {
			v, _ := cmd.Flags().GetString("date")
			patch.Date = &v
		}
		if cmd.Flags().Changed("slot") {
			v, _ := cmd.Flags().GetString("slot")
			patch.TimeSlotID = &v
		}
		if cmd.Flags().Changed("title") {
			v, _ := cmd.Flags().GetString("title")
			patch.Title = &v
		}
		if cmd.Flags().Changed("description") {
			v, _ := cmd.Flags().GetString("description")
			patch.Description = model.OptValue(v)
		}
		if cmd.Flags().Changed("creator") {
			v, _ := cmd.Flags().GetString("creator")
			patch.CreatorName = &v
		}
		if cmd.Flags().Changed("location") {
			v, _ := cmd.Flags().GetString("location")
			patch.Location = model.OptValue(v)
		}
		if clear, _ := cmd.Flags().GetBool("clear-description"); clear {
			patch.Description = model.OptNull[string]()
		}
		if clear, _ := cmd.Flags().GetBool("clear-location"); clear {
			patch.Location = model.OptNull[string]()
		}

		if patch.IsZero() {
			return fmt.Errorf("no fields to update; pass at least one flag")
		}

		if err := timelineClient.UpdateEvent(context.Background(), id, patch); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("updated %s\n", id)
		return nil
	},
}

var eventRemoveCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Delete an event",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]
		if err := timelineClient.DeleteEvent(context.Background(), id); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("removed %s\n", id)
		return nil
	},
}

func init() {
	eventAddCmd.Flags().String("date", "", "event date (YYYY-MM-DD)")
	eventAddCmd.Flags().String("slot", "", "time slot id")
	eventAddCmd.Flags().String("creator", "", "creator name")
	eventAddCmd.Flags().String("description", "", "event description")
	eventAddCmd.Flags().String("location", "", "event location")
	eventAddCmd.MarkFlagRequired("date")
	eventAddCmd.MarkFlagRequired("slot")
	eventAddCmd.MarkFlagRequired("creator")

	eventUpdateCmd.Flags().String("date", "", "event date (YYYY-MM-DD)")
	eventUpdateCmd.Flags().String("slot", "", "time slot id")
	eventUpdateCmd.Flags().String("title", "", "event title")
	eventUpdateCmd.Flags().String("description", "", "event description")
	eventUpdateCmd.Flags().String("creator", "", "creator name")
	eventUpdateCmd.Flags().String("location", "", "event location")
	eventUpdateCmd.Flags().Bool("clear-description", false, "remove the event description")
	eventUpdateCmd.Flags().Bool("clear-location", false, "remove the event location")

	eventCmd.AddCommand(eventListCmd)
	eventCmd.AddCommand(eventShowCmd)
	eventCmd.AddCommand(eventAddCmd)
	eventCmd.AddCommand(eventUpdateCmd)
	eventCmd.AddCommand(eventRemoveCmd)
}
