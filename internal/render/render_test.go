package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"ccbar/internal/config"
	"ccbar/internal/session"
	"ccbar/internal/styles"
	"ccbar/internal/usage"
)

func floatPtr(f float64) *float64 { return &f }

func defaultBar(pct float64) string {
	cfg := config.Default()
	return Bar(pct, cfg)
}

func TestLineJoinsEnabledSections(t *testing.T) {
	cfg := config.Default()
	cfg.Sections = []string{"plan", "model"}
	in := Input{
		Plan: "Pro",
		Ctx:  session.Context{Model: session.Model{DisplayName: "Sonnet"}},
		Cfg:  cfg,
	}
	assert.Equal(t, "Pro | Sonnet", Line(in))
}

func TestLineSkipsUnknownSections(t *testing.T) {
	cfg := config.Default()
	cfg.Sections = []string{"plan", "disk", "uptime"}
	assert.Equal(t, "Pro", Line(Input{Plan: "Pro", Cfg: cfg}))
}

func TestLineOrderFollowsConfig(t *testing.T) {
	ctx := session.Context{Model: session.Model{DisplayName: "Sonnet"}, CWD: "/tmp/proj"}

	cfg := config.Default()
	cfg.Sections = []string{"model", "cwd"}
	assert.Equal(t, "Sonnet | proj", Line(Input{Ctx: ctx, Cfg: cfg}))

	cfg.Sections = []string{"cwd", "model"}
	assert.Equal(t, "proj | Sonnet", Line(Input{Ctx: ctx, Cfg: cfg}))
}

func TestCachedUsageScenario(t *testing.T) {
	cfg := config.Default()
	cfg.Sections = []string{"session", "plan"}
	in := Input{
		Usage: &usage.Snapshot{FiveHour: &usage.Bucket{Utilization: 42.3}},
		Plan:  "Pro",
		Cfg:   cfg,
	}

	want := "Session " + defaultBar(42.3) + " 42% | Pro"
	assert.Equal(t, want, Line(in))
	// 42.3% of 8 cells rounds to 3 filled.
	assert.Equal(t, 3, strings.Count(want, styles.BarStyles["default"].Fill))
}

func TestRenderSessionIncludesCountdown(t *testing.T) {
	cfg := config.Default()
	in := Input{
		Usage: &usage.Snapshot{FiveHour: &usage.Bucket{
			Utilization: 10,
			ResetsAt:    strPtr("2020-01-01T00:00:00Z"),
		}},
		Cfg: cfg,
	}
	got := renderSession(in)
	assert.True(t, strings.HasSuffix(got, " now"))

	in.Usage.FiveHour.ResetsAt = strPtr("garbage")
	assert.True(t, strings.HasSuffix(renderSession(in), " 10%"))
}

func TestRenderWeeklyOmittedWithoutData(t *testing.T) {
	assert.Empty(t, renderWeekly(Input{Cfg: config.Default()}))
	assert.Empty(t, renderWeekly(Input{Usage: &usage.Snapshot{}, Cfg: config.Default()}))
}

func TestRenderContextZeroVersusAbsent(t *testing.T) {
	cfg := config.Default()

	t.Run("absent omits the section", func(t *testing.T) {
		assert.Empty(t, renderContext(Input{Cfg: cfg}))
		assert.Empty(t, renderContext(Input{
			Ctx: session.Context{ContextWindow: &session.ContextWindow{}},
			Cfg: cfg,
		}))
	})

	t.Run("explicit zero renders", func(t *testing.T) {
		got := renderContext(Input{
			Ctx: session.Context{ContextWindow: &session.ContextWindow{UsedPercentage: floatPtr(0)}},
			Cfg: cfg,
		})
		assert.True(t, strings.HasPrefix(got, "Ctx "))
		assert.True(t, strings.HasSuffix(got, " 0%"))
	})
}

func TestRenderCreditsFallsBackToExtraCredits(t *testing.T) {
	cfg := config.Default()

	got := renderCredits(Input{
		Usage: &usage.Snapshot{ExtraCredits: &usage.Bucket{Utilization: 5}},
		Cfg:   cfg,
	})
	assert.True(t, strings.HasPrefix(got, "Credits "))

	got = renderCredits(Input{
		Usage: &usage.Snapshot{
			Bonus:        &usage.Bucket{Utilization: 30},
			ExtraCredits: &usage.Bucket{Utilization: 5},
		},
		Cfg: cfg,
	})
	assert.True(t, strings.HasSuffix(got, " 30%"))
}

func TestSectionLabels(t *testing.T) {
	tests := []struct {
		layout  string
		section string
		want    string
	}{
		{"standard", "session", "Session"},
		{"standard", "weekly", "Weekly"},
		{"compact", "session", "Ses"},
		{"compact", "credits", "Cr"},
		{"minimal", "session", ""},
		{"bogus", "session", "Session"},
	}
	for _, tt := range tests {
		t.Run(tt.layout+"/"+tt.section, func(t *testing.T) {
			cfg := config.Default()
			cfg.Layout = tt.layout
			assert.Equal(t, tt.want, sectionLabel(tt.section, cfg))
		})
	}
}

func TestMinimalLayoutDropsPrefix(t *testing.T) {
	cfg := config.Default()
	cfg.Layout = "minimal"
	in := Input{
		Usage: &usage.Snapshot{SevenDay: &usage.Bucket{Utilization: 60}},
		Cfg:   cfg,
	}
	got := renderWeekly(in)
	assert.False(t, strings.HasPrefix(got, "Weekly"))
	assert.True(t, strings.HasSuffix(got, " 60%"))
}

func TestRenderCwdUsesLastPathComponent(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, "proj", renderCwd(Input{
		Ctx: session.Context{Workspace: session.Workspace{CurrentDir: "/home/u/proj"}},
		Cfg: cfg,
	}))
	assert.Empty(t, renderCwd(Input{Cfg: cfg}))
}

func TestRenderPlan(t *testing.T) {
	assert.Equal(t, "Max 5x", renderPlan(Input{Plan: "Max 5x"}))
	assert.Empty(t, renderPlan(Input{}))
}
