package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/dials/corenote/internal/calendar"
	"github.com/dials/corenote/internal/config"
	apperrors "github.com/dials/corenote/internal/errors"
	"github.com/dials/corenote/internal/github"
	"github.com/dials/corenote/internal/hackmd"
	"github.com/dials/corenote/internal/logger"
	"github.com/dials/corenote/internal/models"
	"github.com/dials/corenote/internal/orchestrator"
	"github.com/dials/corenote/internal/render"
	"github.com/dials/corenote/internal/scheduler"
	"github.com/dials/corenote/internal/storage"
	"github.com/dials/corenote/internal/ui"
	"github.com/dials/corenote/internal/utils"
)

type RunCmd struct {
	Yes        bool   `short:"y" help:"Accept the computed date and confirm every write."`
	ICS        string `name:"ics" type:"path" placeholder:"PATH" help:"Also write the new meeting to an iCalendar file."`
	Accessible bool   `help:"Plain line prompts for screen readers." env:"ACCESSIBLE"`
}

func (cmd *RunCmd) Run(ctx *Context) error {
	cfg, err := config.Load(ctx.ConfigPath)
	if err != nil {
		return err
	}

	loc, err := utils.LoadLocation(cfg.Meeting.Timezone)
	if err != nil {
		return fmt.Errorf("meeting timezone: %w", err)
	}

	o := orchestrator.New(orchestrator.Deps{
		Notes:      hackmd.NewClient(cfg.HackMD.BaseURL, cfg.HackMD.Token, cfg.HTTPTimeout),
		Repository: github.NewClient(cfg.GitHub.GraphQLURL, cfg.GitHub.Token, cfg.HTTPTimeout),
		Prompter:   ctx.prompter(cmd.Yes, cmd.Accessible),
		Renderer:   render.NewRenderer(cfg.Meeting.Tag, cfg.HackMD.SiteURL),
		Snapshots:  storage.NewSnapshotStore(cfg.SnapshotPath),
		Calendar:   calendar.NewExporter(),
		Out:        ctx.out(),
		Now:        ctx.now,
	}, orchestrator.Options{
		Team:            cfg.HackMD.Team,
		TeamPrefix:      cfg.Meeting.TeamPrefix,
		ReadPermission:  cfg.HackMD.ReadPermission,
		WritePermission: cfg.HackMD.WritePermission,
		Zones:           zonePair(cfg.Meeting),
		Location:        loc,
		Repository: models.FileRef{
			Owner:  cfg.GitHub.Owner,
			Repo:   cfg.GitHub.Repo,
			Branch: cfg.GitHub.Branch,
			Path:   cfg.GitHub.FutureDir,
		},
		CommitMessage:   cfg.GitHub.CommitMessage,
		ICSPath:         cmd.ICS,
		MeetingDuration: cfg.Meeting.Duration,
	})

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	summary, err := o.Run(runCtx)
	if err != nil {
		if apperrors.IsGraceful(err) {
			logger.Info("Stopped early", "reason", err)
			ctx.printf("%s\n", ui.Muted("Stopped: "+err.Error()))
			return nil
		}
		return err
	}

	logger.Info("Meeting prepared",
		"date", utils.FormatDate(summary.State.NextMeetingDate),
		"note", summary.NoteURL,
		"commit", summary.CommitURL,
	)
	ctx.printf("%s %s\n", ui.Bold("Next meeting:"), utils.FormatDate(summary.State.NextMeetingDate))
	return nil
}

func zonePair(m config.MeetingConfig) scheduler.ZonePair {
	return scheduler.ZonePair{
		PrimaryZone:   m.PrimaryZone,
		PrimaryTime:   m.PrimaryTime,
		SecondaryZone: m.SecondaryZone,
		SecondaryTime: m.SecondaryTime,
	}
}
