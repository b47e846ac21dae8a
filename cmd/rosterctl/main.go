package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"

	"raidwatch/domain"
	"raidwatch/raidhelper"
)

func main() {
	eventArg := flag.String("event", "", "Event id or Raid-Helper event URL")
	baseURL := flag.String("base-url", raidhelper.DefaultBaseURL, "Raid-Helper API base URL")
	timeout := flag.Duration("timeout", 10*time.Second, "HTTP timeout")
	flag.Parse()

	if *eventArg == "" {
		flag.Usage()
		os.Exit(2)
	}

	logger := logs.GetLoggerFromLevel(slog.LevelWarn)
	client := raidhelper.NewClient(logger, &http.Client{Timeout: *timeout}, *baseURL)

	eventID := domain.ExtractEventID(*eventArg)
	event, err := client.FetchEvent(context.Background(), eventID)
	if err != nil {
		log.Fatal("Error while fetching event: ", err)
	}

	roster := domain.ActiveSignups(event)
	grouped := roster.Grouped()

	color.Cyan.Printf("%s: %d active signups\n\n", event.Title, roster.Len())

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Class", "Players", "Count"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	for _, class := range grouped.Classes() {
		names := grouped[class]
		table.Append([]string{class, strings.Join(names, ", "), fmt.Sprintf("%d", len(names))})
	}
	table.Render()
}
