package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
)

var (
	installOkStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	installNoteStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// runInstall points the statusLine entry of ~/.claude/settings.json at this
// executable, leaving every other setting alone.
func runInstall() error {
	exePath, err := os.Executable()
	if err != nil {
		return fmt.Errorf("failed to get executable path: %w", err)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to resolve home directory: %w", err)
	}
	settingsPath := filepath.Join(home, ".claude", "settings.json")

	var settings map[string]interface{}
	if data, err := os.ReadFile(settingsPath); err == nil {
		backupPath := settingsPath + ".backup"
		if err := os.WriteFile(backupPath, data, 0644); err == nil {
			fmt.Println(installNoteStyle.Render("Backed up settings to " + backupPath))
		}
		// A malformed settings file starts fresh rather than blocking install.
		json.Unmarshal(data, &settings)
	}
	if settings == nil {
		settings = make(map[string]interface{})
	}

	settings["statusLine"] = map[string]interface{}{
		"type":    "command",
		"command": exePath,
	}

	if err := os.MkdirAll(filepath.Dir(settingsPath), 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Dir(settingsPath), err)
	}
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(settingsPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}

	fmt.Println(installOkStyle.Render("Installed ccbar to " + settingsPath))
	fmt.Println(installNoteStyle.Render("Restart Claude Code to see the status line."))
	return nil
}
