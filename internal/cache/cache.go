// Package cache stores the most recent usage fetch outcome so rapid
// successive invocations do not each hit the usage endpoint.
package cache

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"ccbar/internal/usage"
)

// Entry is one cached fetch outcome. Usage stays null when the fetch failed;
// such an entry still counts as fresh, which keeps the endpoint quiet until
// the TTL runs out.
type Entry struct {
	Timestamp float64         `json:"timestamp"` // epoch seconds
	Usage     *usage.Snapshot `json:"usage"`
	Plan      string          `json:"plan"`
}

// Dir returns the platform cache directory, creating it if absent.
func Dir() string {
	dir := platformDir()
	_ = os.MkdirAll(dir, 0755)
	return dir
}

func platformDir() string {
	if runtime.GOOS == "windows" {
		if base := os.Getenv("LOCALAPPDATA"); base != "" {
			return filepath.Join(base, "ccbar")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "AppData", "Local", "ccbar")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".cache", "ccbar")
}

// Path returns the cache file location.
func Path() string {
	return filepath.Join(Dir(), "cache.json")
}

// Read returns the cached entry when it is fresh, nil otherwise. Any read or
// parse failure counts as a cache miss.
func Read(path string, ttl int) *Entry {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	var e Entry
	if err := json.Unmarshal(data, &e); err != nil {
		return nil
	}
	if now()-e.Timestamp >= float64(ttl) {
		return nil
	}
	return &e
}

// Write stores a fetch outcome. Best effort: a cache that cannot be written
// only costs extra fetches. Concurrent invocations may race here; the last
// writer wins and the cache self-heals after the TTL.
func Write(path string, snap *usage.Snapshot, plan string) {
	data, err := json.Marshal(Entry{Timestamp: now(), Usage: snap, Plan: plan})
	if err != nil {
		return
	}
	_ = os.WriteFile(path, data, 0644)
}

func now() float64 {
	return float64(time.Now().UnixNano()) / float64(time.Second)
}
