package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/kischiman/sanctuary-timeline/internal/events"
	"github.com/kischiman/sanctuary-timeline/internal/model"
	"github.com/kischiman/sanctuary-timeline/internal/ui"
)

func printJSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error marshaling JSON: %v\n", err)
		return
	}
	fmt.Println(string(data))
}

func printStateTable(state *model.AppState) {
	fmt.Printf("Residency: %s .. %s\n\n", state.Config.ResidencyStartDate, state.Config.ResidencyEndDate)
	printSlotTable(state.TimeSlots)
	fmt.Println()
	printEventTable(state.Events)
}

func printEventTable(events []*model.Event) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDATE\tSLOT\tTITLE\tCREATOR\tLOCATION")
	for _, e := range events {
		title := e.Title
		if len(title) > 50 {
			title = title[:47] + "..."
		}
		location := ""
		if e.Location != nil {
			location = *e.Location
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			e.ID,
			e.Date,
			e.TimeSlotID,
			title,
			ui.RenderHex(e.Color, e.CreatorName),
			location,
		)
	}
	w.Flush()
	fmt.Printf("\n%d events\n", len(events))
}

func printSlotTable(slots []*model.TimeSlot) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tLABEL\tSTART\tEND\tORDER")
	for _, s := range slots {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n", s.ID, s.Label, s.StartTime, s.EndTime, s.DisplayOrder)
	}
	w.Flush()
}

// printUpdate renders one live update line: timestamp, topic, payload.
// The initial snapshot is summarized instead of dumped.
func printUpdate(msg events.Message) {
	ts := ui.RenderMuted(time.Now().Format("15:04:05"))

	if msg.Topic == events.TopicInitialState {
		var state model.AppState
		if err := json.Unmarshal(msg.Data, &state); err == nil {
			fmt.Printf("%s %s %d slots, %d events\n",
				ts, ui.RenderAccent(msg.Topic), len(state.TimeSlots), len(state.Events))
			return
		}
	}

	if jsonOutput {
		fmt.Printf("%s %s %s\n", ts, ui.RenderAccent(msg.Topic), msg.Data)
		return
	}

	fmt.Printf("%s %s %s\n", ts, ui.RenderAccent(msg.Topic), summarizePayload(msg.Data))
}

// summarizePayload extracts the fields worth a single line: id, title,
// creator. Falls back to the raw JSON when they are absent.
func summarizePayload(data []byte) string {
	var payload struct {
		ID          string `json:"id"`
		Title       string `json:"title"`
		CreatorName string `json:"creator_name"`
		Color       string `json:"color"`
	}
	if err := json.Unmarshal(data, &payload); err != nil || payload.ID == "" {
		return string(data)
	}

	out := payload.ID
	if payload.Title != "" {
		out += " " + payload.Title
	}
	if payload.CreatorName != "" {
		out += " (" + ui.RenderHex(payload.Color, payload.CreatorName) + ")"
	}
	return out
}
