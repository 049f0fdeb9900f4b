// Package session models the invocation context Claude Code pipes to the
// status line on stdin.
package session

import (
	"bytes"
	"encoding/json"
	"io"
)

// Context is the stdin payload. Every field is optional; whatever is missing
// just drops the sections that need it.
type Context struct {
	CWD           string         `json:"cwd"`
	Workspace     Workspace      `json:"workspace"`
	Model         Model          `json:"model"`
	ContextWindow *ContextWindow `json:"context_window"`
}

type Workspace struct {
	CurrentDir string `json:"current_dir"`
}

type Model struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}

type ContextWindow struct {
	// Pointer so a reported 0% is distinguishable from no report at all.
	UsedPercentage *float64 `json:"used_percentage"`
}

// Parse reads the invocation context from r. Empty or malformed input yields
// a zero Context, never an error.
func Parse(r io.Reader) Context {
	raw, err := io.ReadAll(r)
	if err != nil {
		return Context{}
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return Context{}
	}
	var ctx Context
	if err := json.Unmarshal(raw, &ctx); err != nil {
		return Context{}
	}
	return ctx
}

// Dir returns the working directory for the invocation, preferring the
// top-level cwd over the workspace record.
func (c Context) Dir() string {
	if c.CWD != "" {
		return c.CWD
	}
	return c.Workspace.CurrentDir
}

// ModelName returns the model display name, falling back to the model id.
func (c Context) ModelName() string {
	if c.Model.DisplayName != "" {
		return c.Model.DisplayName
	}
	return c.Model.ID
}
