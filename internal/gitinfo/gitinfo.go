// Package gitinfo queries git for the current branch and a compact working
// tree summary.
package gitinfo

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

const cmdTimeout = 3 * time.Second

// Inspect returns the current branch and working tree summary for dir.
// Branch is empty when dir is empty, not inside a git repository, or git is
// missing or slow. The summary is empty when the tree is clean or the status
// query failed after the branch query succeeded.
func Inspect(dir string) (branch, summary string) {
	if dir == "" {
		return "", ""
	}
	out, err := run(dir, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", ""
	}
	branch = strings.TrimSpace(out)

	out, err = run(dir, "status", "--porcelain")
	if err != nil {
		return branch, ""
	}
	return branch, Summarize(out)
}

func run(dir string, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cmdTimeout)
	defer cancel()
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir
	out, err := cmd.Output()
	return string(out), err
}

// Summarize counts porcelain status entries into "+staged *modified
// ?untracked", omitting zero counts. A clean tree yields "". An entry can
// count as both staged and modified.
func Summarize(porcelain string) string {
	var staged, modified, untracked int
	for _, line := range strings.Split(porcelain, "\n") {
		if len(line) < 2 {
			continue
		}
		x, y := line[0], line[1]
		if x == '?' {
			untracked++
			continue
		}
		if strings.IndexByte("MADRC", x) >= 0 {
			staged++
		}
		if y == 'M' || y == 'D' {
			modified++
		}
	}

	var parts []string
	if staged > 0 {
		parts = append(parts, fmt.Sprintf("+%d", staged))
	}
	if modified > 0 {
		parts = append(parts, fmt.Sprintf("*%d", modified))
	}
	if untracked > 0 {
		parts = append(parts, fmt.Sprintf("?%d", untracked))
	}
	return strings.Join(parts, " ")
}
