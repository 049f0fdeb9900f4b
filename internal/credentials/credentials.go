// Package credentials retrieves the Claude Code OAuth token and resolves the
// account's plan display name.
package credentials

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	keychainService = "Claude Code-credentials"
	lookupTimeout   = 5 * time.Second
)

// PlanNames maps known rate limit tiers to display names. Tiers not listed
// here get a humanized form of the raw string.
var PlanNames = map[string]string{
	"default_claude_pro":     "Pro",
	"default_claude_max_5x":  "Max 5x",
	"default_claude_max_20x": "Max 20x",
}

type payload struct {
	ClaudeAiOauth *oauthEntry `json:"claudeAiOauth"`
}

type oauthEntry struct {
	AccessToken   string `json:"accessToken"`
	RateLimitTier string `json:"rateLimitTier"`
}

// Lookup returns the OAuth access token and plan display name, or empty
// strings when no usable credentials exist anywhere. It never fails louder
// than that: every miss along the way means "no credentials".
func Lookup() (token, plan string) {
	if tok := os.Getenv("CLAUDE_OAUTH_TOKEN"); tok != "" {
		return tok, ""
	}
	p := fromKeychain()
	if p == nil {
		p = fromFile(credentialsPath())
	}
	return extract(p)
}

// fromKeychain queries the macOS keychain for the Claude Code credential
// entry. Nil on any other platform or any failure.
func fromKeychain() *payload {
	if runtime.GOOS != "darwin" {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), lookupTimeout)
	defer cancel()
	out, err := exec.CommandContext(ctx,
		"security", "find-generic-password", "-s", keychainService, "-w",
	).Output()
	if err != nil {
		return nil
	}
	return parse(bytes.TrimSpace(out))
}

func credentialsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".claude", ".credentials.json")
}

func fromFile(path string) *payload {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	return parse(data)
}

func parse(data []byte) *payload {
	if len(data) == 0 {
		return nil
	}
	var p payload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil
	}
	return &p
}

func extract(p *payload) (string, string) {
	if p == nil || p.ClaudeAiOauth == nil || p.ClaudeAiOauth.AccessToken == "" {
		return "", ""
	}
	return p.ClaudeAiOauth.AccessToken, PlanName(p.ClaudeAiOauth.RateLimitTier)
}

var titleCaser = cases.Title(language.English)

// PlanName resolves a rate limit tier to a display name.
func PlanName(tier string) string {
	if name, ok := PlanNames[tier]; ok {
		return name
	}
	s := strings.TrimPrefix(tier, "default_claude_")
	s = strings.ReplaceAll(s, "_", " ")
	return titleCaser.String(s)
}
