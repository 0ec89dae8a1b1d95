package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/alfredjeanlab/kundli/internal/chart"
	"github.com/alfredjeanlab/kundli/internal/dasha"
	"github.com/alfredjeanlab/kundli/internal/model"
	"github.com/alfredjeanlab/kundli/internal/ui"
	"github.com/alfredjeanlab/kundli/internal/yoga"
)

func printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func heading(w io.Writer, title string) {
	fmt.Fprintf(w, "\n%s\n", ui.RenderAccent(ui.RenderBold(title)))
}

func printRecordHeader(w io.Writer, rec *model.ChartRecord) {
	fmt.Fprintf(w, "ID:        %s\n", rec.ID)
	fmt.Fprintf(w, "Name:      %s\n", rec.Name)
	fmt.Fprintf(w, "Born:      %s %s (%s)\n", rec.DOB, rec.Time, rec.Timezone)
	if rec.City != "" {
		fmt.Fprintf(w, "Place:     %s (%.4f, %.4f)\n", rec.City, rec.Latitude, rec.Longitude)
	} else {
		fmt.Fprintf(w, "Place:     %.4f, %.4f\n", rec.Latitude, rec.Longitude)
	}
	fmt.Fprintf(w, "Lagna:     %s (%s)\n", rec.Lagna, rec.Lagna.English())
}

func printRecord(w io.Writer, rec *model.ChartRecord) {
	printRecordHeader(w, rec)
	heading(w, "Houses")
	printChart(w, rec.Chart)
	heading(w, "Vimshottari Dasha")
	printDasha(w, rec.Dasha)
	heading(w, "Yogas")
	printYogas(w, rec.Yogas)
}

// printChart lists the twelve houses with the planets placed in each.
func printChart(w io.Writer, c *chart.Chart) {
	if c == nil {
		fmt.Fprintln(w, ui.RenderMuted("(no chart)"))
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "HOUSE\tSIGN\tPLANETS")
	for _, h := range c.Houses {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", h.Number, h.Sign, placements(h.Placements))
	}
	tw.Flush()
}

func placements(ps []chart.Placement) string {
	parts := make([]string, 0, len(ps))
	for _, p := range ps {
		s := fmt.Sprintf("%s %d°", p.Planet.Abbrev(), p.Degree)
		if p.Retrograde {
			s += " R"
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, ", ")
}

func printDasha(w io.Writer, d dasha.Result) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "LEVEL\tLORD\tFROM\tTO\tSPAN")
	for _, p := range d.Periods {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			p.Label, p.Planet, dasha.FormatDate(p.Start), dasha.FormatDate(p.End), p.Duration)
	}
	tw.Flush()
	if d.Flow != "" {
		fmt.Fprintf(w, "Running: %s\n", d.Flow)
	}
}

// printYogas lists yogas under their category headings.
func printYogas(w io.Writer, ys []yoga.Result) {
	if len(ys) == 0 {
		fmt.Fprintln(w, ui.RenderMuted("No yogas formed."))
		return
	}
	groups := yoga.Group(ys)
	for _, cat := range yoga.Categories() {
		rs := groups[cat]
		if len(rs) == 0 {
			continue
		}
		fmt.Fprintf(w, "%s\n", ui.RenderBold(cat.Label()))
		for _, r := range rs {
			fmt.Fprintf(w, "  %s  %s\n", ui.RenderYoga(r), ui.RenderMuted(string(r.Strength)))
			if r.Description != "" {
				fmt.Fprintf(w, "    %s\n", r.Description)
			}
		}
	}
}

func printChartList(w io.Writer, list *model.ChartList) {
	// The other columns take about 60 cells.
	width := min(max(ui.TerminalWidth(100)-60, 16), 40)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tDOB\tTIME\tLAGNA\tCITY")
	for _, c := range list.Charts {
		name := c.Name
		if len(name) > width {
			name = name[:width-3] + "..."
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", c.ID, name, c.DOB, c.Time, c.Lagna, c.City)
	}
	tw.Flush()
	fmt.Fprintf(w, "\n%d charts (%d total)\n", len(list.Charts), list.Total)
}

func printTransits(w io.Writer, tr *model.TransitReport) {
	fmt.Fprintf(w, "Transits on %s from %s lagna\n\n", tr.Transits.Date, tr.Transits.Lagna)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "PLANET\tSIGN\tDEG\tHOUSE\tEFFECT")
	for _, e := range tr.Transits.Entries {
		planet := e.Planet.String()
		if e.Retrograde {
			planet += " (R)"
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\n", planet, e.Sign, e.Degree, e.House, ui.RenderQuality(e.Quality, e.Brief))
	}
	tw.Flush()
	fmt.Fprintf(w, "\n%d good, %d neutral, %d challenging\n", tr.Counts.Good, tr.Counts.Neutral, tr.Counts.Challenging)
}

func printVarga(w io.Writer, v *model.VargaChart) {
	fmt.Fprintf(w, "%s %s", v.ID, v.Name)
	if v.Purpose != "" {
		fmt.Fprintf(w, ": %s", v.Purpose)
	}
	fmt.Fprintln(w)
	if v.Chart != nil {
		fmt.Fprintf(w, "Lagna: %s\n\n", v.Chart.Lagna)
	}
	printChart(w, v.Chart)
	heading(w, "Yogas")
	printYogas(w, v.Yogas)
}

func printSummary(w io.Writer, sum *model.ChartSummary) {
	fmt.Fprintf(w, "ID:        %s\n", sum.ID)
	fmt.Fprintf(w, "Name:      %s\n", sum.Name)
	fmt.Fprintf(w, "Born:      %s\n", sum.DOB)
	fmt.Fprintf(w, "Lagna:     %s\n", sum.Lagna)
	fmt.Fprintf(w, "Moon sign: %s\n", sum.MoonSign)
	heading(w, "Dasha")
	printDasha(w, sum.Dasha)
	fmt.Fprintln(w)
	printTransits(w, &model.TransitReport{Transits: sum.Transits, Counts: sum.Counts})
}

// printReport renders a chart computed from a snapshot without a server.
func printReport(w io.Writer, r *model.Report) {
	fmt.Fprintf(w, "Lagna: %s (%s)\n", r.Chart.Lagna, r.Chart.Lagna.English())
	heading(w, "Houses")
	printChart(w, r.Chart)
	if r.Dasha != nil {
		heading(w, "Vimshottari Dasha")
		printDasha(w, *r.Dasha)
	}
	heading(w, "Yogas")
	printYogas(w, r.Yogas)
	if len(r.Vargas) > 0 {
		heading(w, "Divisional charts")
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "CHART\tNAME\tLAGNA\tYOGAS")
		for _, v := range r.Vargas {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n", v.ID, v.Name, v.Chart.Lagna, len(v.Yogas))
		}
		tw.Flush()
	}
}
