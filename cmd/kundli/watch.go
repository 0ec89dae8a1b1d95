package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/spf13/cobra"

	"github.com/alfredjeanlab/kundli/internal/events"
	"github.com/alfredjeanlab/kundli/internal/ui"
)

var watchCmd = offline(&cobra.Command{
	Use:     "watch",
	Short:   "Stream chart and transit events from NATS",
	GroupID: "views",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		url, _ := cmd.Flags().GetString("nats")
		if url == "" {
			return fmt.Errorf("no NATS server: set --nats or KUNDLI_NATS_URL")
		}
		topic, _ := cmd.Flags().GetString("topic")

		sub, err := events.NewNATSSubscriber(url,
			nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
				if err != nil {
					fmt.Fprintf(os.Stderr, "disconnected: %v\n", err)
				}
			}),
			nats.ReconnectHandler(func(_ *nats.Conn) {
				fmt.Fprintln(os.Stderr, "reconnected")
			}),
		)
		if err != nil {
			return err
		}
		defer sub.Close()

		ch, cancel, err := sub.Subscribe(topic)
		if err != nil {
			return err
		}
		defer cancel()

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(sig)

		fmt.Fprintf(os.Stderr, "Watching %s on %s (Ctrl-C to stop)\n", topic, url)
		for {
			select {
			case <-sig:
				return nil
			case msg, ok := <-ch:
				if !ok {
					return nil
				}
				if jsonOutput {
					fmt.Printf("{\"topic\":%q,\"event\":%s}\n", msg.Topic, msg.Data)
					continue
				}
				fmt.Printf("%s  %s\n", ui.RenderMuted(time.Now().Format(time.TimeOnly)), describeEvent(msg))
			}
		}
	},
})

// describeEvent renders a one-line summary of an event.
func describeEvent(msg events.Message) string {
	switch msg.Topic {
	case events.TopicChartComputed:
		var e events.ChartComputed
		if err := json.Unmarshal(msg.Data, &e); err != nil {
			break
		}
		verb := "computed"
		if e.Existed {
			verb = "recomputed"
		}
		line := fmt.Sprintf("chart %s %s: %s, %s lagna", ui.RenderAccent(e.ChartID), verb, e.Name, e.Lagna)
		if e.Flow != "" {
			line += ", dasha " + e.Flow
		}
		if len(e.Yogas) > 0 {
			line += ", yogas " + strings.Join(e.Yogas, ", ")
		}
		return line
	case events.TopicChartDeleted:
		var e events.ChartDeleted
		if err := json.Unmarshal(msg.Data, &e); err != nil {
			break
		}
		return fmt.Sprintf("chart %s deleted", ui.RenderAccent(e.ChartID))
	case events.TopicTransitComputed:
		var e events.TransitComputed
		if err := json.Unmarshal(msg.Data, &e); err != nil {
			break
		}
		return fmt.Sprintf("transits %s from %s: %d good, %d neutral, %d challenging",
			e.Date, e.Lagna, e.Counts.Good, e.Counts.Neutral, e.Counts.Challenging)
	}
	return fmt.Sprintf("%s %s", msg.Topic, msg.Data)
}

func init() {
	watchCmd.Flags().String("nats", os.Getenv("KUNDLI_NATS_URL"), "NATS server URL")
	watchCmd.Flags().String("topic", events.TopicAll, "subject to watch (NATS wildcards allowed)")
}
