package cli

import (
	"fmt"
	"time"

	"github.com/dials/corenote/internal/config"
	"github.com/dials/corenote/internal/render"
	"github.com/dials/corenote/internal/scheduler"
	"github.com/dials/corenote/internal/ui"
	"github.com/dials/corenote/internal/utils"
)

// PreviewCmd prints the "Next meeting" text without calling any service.
type PreviewCmd struct {
	Date string `arg:"" optional:"" help:"Date of a meeting (YYYY-MM-DD), defaults to today."`
}

func (cmd *PreviewCmd) Run(ctx *Context) error {
	cfg, err := config.LoadOffline(ctx.ConfigPath)
	if err != nil {
		return err
	}

	date, err := cmd.meetingDate(cfg.Meeting.Timezone, ctx)
	if err != nil {
		return err
	}

	following := scheduler.ComputeFollowing(date)
	result, err := scheduler.Reconcile(following, zonePair(cfg.Meeting))
	if err != nil {
		return err
	}

	ctx.printf("%s %s\n", ui.Bold("Meeting after"), ui.Highlight(utils.FormatDate(date)))
	if result.HasConflict {
		ctx.printf("%s\n", ui.Warning("Time zone conflict"))
	}
	ctx.printf("%s\n", render.NextMeetingText(result))
	return nil
}

func (cmd *PreviewCmd) meetingDate(timezone string, ctx *Context) (time.Time, error) {
	if cmd.Date != "" {
		return utils.ParseDate(cmd.Date)
	}
	loc, err := utils.LoadLocation(timezone)
	if err != nil {
		return time.Time{}, fmt.Errorf("meeting timezone: %w", err)
	}
	return utils.TodayIn(ctx.now(), loc), nil
}
