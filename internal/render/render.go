// Package render turns usage data, plan, and invocation context into the
// status line.
package render

import (
	"fmt"
	"path/filepath"
	"strings"

	"ccbar/internal/config"
	"ccbar/internal/gitinfo"
	"ccbar/internal/session"
	"ccbar/internal/usage"
)

// Input carries everything a section can draw from.
type Input struct {
	Usage *usage.Snapshot
	Plan  string
	Ctx   session.Context
	Cfg   config.Config
}

// sectionFunc renders one section, or "" when the section has nothing to
// show. Empty fragments are dropped from the line.
type sectionFunc func(Input) string

// Registry of known sections. Names configured but not present here are
// skipped without complaint, so old configs survive renames.
var sections = map[string]sectionFunc{
	"git":     renderGit,
	"cwd":     renderCwd,
	"model":   renderModel,
	"session": renderSession,
	"weekly":  renderWeekly,
	"context": renderContext,
	"credits": renderCredits,
	"plan":    renderPlan,
}

// Line assembles the status line from the configured sections, in order.
func Line(in Input) string {
	var parts []string
	for _, name := range in.Cfg.Sections {
		fn, ok := sections[name]
		if !ok {
			continue
		}
		if part := fn(in); part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, " | ")
}

var labels = map[string]map[string]string{
	"standard": {"session": "Session", "weekly": "Weekly", "context": "Ctx", "credits": "Credits"},
	"compact":  {"session": "Ses", "weekly": "Wk", "context": "Ctx", "credits": "Cr"},
}

// sectionLabel returns the label for a section under the configured layout.
// "minimal" drops labels entirely; unknown layouts read as "standard".
func sectionLabel(name string, cfg config.Config) string {
	if cfg.Layout == "minimal" {
		return ""
	}
	set, ok := labels[cfg.Layout]
	if !ok {
		set = labels["standard"]
	}
	if label, ok := set[name]; ok {
		return label
	}
	return name
}

// barSection renders "<label> <bar> <pct>%" for one utilization bucket.
func barSection(name string, pct float64, cfg config.Config) string {
	prefix := ""
	if label := sectionLabel(name, cfg); label != "" {
		prefix = label + " "
	}
	return fmt.Sprintf("%s%s %.0f%%", prefix, Bar(pct, cfg), pct)
}

func renderGit(in Input) string {
	branch, status := gitinfo.Inspect(in.Ctx.Dir())
	if branch == "" {
		return ""
	}
	part := "⎇ " + branch
	if status != "" {
		part += " " + status
	}
	return part
}

func renderCwd(in Input) string {
	dir := in.Ctx.Dir()
	if dir == "" {
		return ""
	}
	return filepath.Base(dir)
}

func renderModel(in Input) string {
	return in.Ctx.ModelName()
}

func renderSession(in Input) string {
	if in.Usage == nil || in.Usage.FiveHour == nil {
		return ""
	}
	bucket := in.Usage.FiveHour
	part := barSection("session", bucket.Utilization, in.Cfg)
	if reset := Countdown(bucket.ResetsAt); reset != "" {
		part += " " + reset
	}
	return part
}

func renderWeekly(in Input) string {
	if in.Usage == nil || in.Usage.SevenDay == nil {
		return ""
	}
	return barSection("weekly", in.Usage.SevenDay.Utilization, in.Cfg)
}

func renderContext(in Input) string {
	cw := in.Ctx.ContextWindow
	if cw == nil || cw.UsedPercentage == nil {
		return ""
	}
	return barSection("context", *cw.UsedPercentage, in.Cfg)
}

func renderCredits(in Input) string {
	if in.Usage == nil {
		return ""
	}
	bucket := in.Usage.Bonus
	if bucket == nil {
		bucket = in.Usage.ExtraCredits
	}
	if bucket == nil {
		return ""
	}
	return barSection("credits", bucket.Utilization, in.Cfg)
}

func renderPlan(in Input) string {
	return in.Plan
}
