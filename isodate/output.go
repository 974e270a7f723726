package main

import (
	"fmt"
	"io"
	"time"

	"github.com/araddon/isodate"
	"github.com/fatih/color"
	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"github.com/goccy/go-yaml"
	"github.com/samber/lo"
	"github.com/scylladb/termtables"
)

// report is one output row.
type report struct {
	Input   string           `json:"input"`
	Status  string           `json:"status"`
	Grammar string           `json:"grammar,omitempty"`
	End     int              `json:"end"`
	Error   string           `json:"error,omitempty"`
	Fields  *isodate.Context `json:"fields,omitempty"`
	Time    string           `json:"time,omitempty"`
}

func newReports(results []isodate.Result, loc *time.Location) []report {
	return lo.Map(results, func(r isodate.Result, _ int) report {
		rep := report{Input: r.Input, Status: "PASS", Grammar: r.Grammar, End: r.End}
		if !r.OK() {
			rep.Status = "FAIL"
			rep.Error = r.Err.Error()
			return rep
		}
		rep.Fields = r.Context
		rep.Time = r.Context.Time(loc).Format(time.RFC3339Nano)
		return rep
	})
}

func write(w io.Writer, format string, reports []report) error {
	switch format {
	case "json":
		b, err := json.Marshal(reports, jsontext.WithIndent("  "))
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", b)
		return err
	case "yaml":
		return yaml.NewEncoder(w).Encode(reports)
	case "table":
		_, err := fmt.Fprint(w, renderTable(reports))
		return err
	}
	return fmt.Errorf("unknown format %q", format)
}

func renderTable(reports []report) string {
	table := termtables.CreateTable()
	table.AddHeaders("Input", "Grammar", "Status", "Fields", "Time")
	for _, r := range reports {
		status := color.GreenString(r.Status)
		if r.Status != "PASS" {
			status = color.RedString(r.Status)
		}
		table.AddRow(r.Input, r.Grammar, status, fields(r), r.Time)
	}
	return table.Render()
}

// fields summarises a context as "YYYY-MM-DD HH:MM:SS.ffffff ±HH:MM",
// plus the week when one was parsed.
func fields(r report) string {
	c := r.Fields
	if c == nil {
		return fmt.Sprintf("stopped at %d", r.End)
	}
	s := fmt.Sprintf("%s.%06d", c.DateTime, c.Microseconds)
	if c.Timezone.Kind == isodate.UTC {
		sign := '+'
		if c.Timezone.Sign < 0 {
			sign = '-'
		}
		s += fmt.Sprintf(" %c%02d:%02d", sign, c.Timezone.Hour, c.Timezone.Minute)
	}
	if c.Ordinal() {
		s += fmt.Sprintf(" day %d", c.DateTime.Day)
	}
	if c.Week > 0 {
		s += fmt.Sprintf(" W%02d-%d", c.Week, c.WeekDay)
	}
	return s
}
