package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/skillsphere/internal/client/models"
	"github.com/dmitrijs2005/skillsphere/internal/common"
)

func (a *App) printPlans(plans []models.LearningPlan, withOwner bool) {
	if len(plans) == 0 {
		a.println("No learning plans.")
		return
	}
	for _, p := range plans {
		line := fmt.Sprintf("[%d] %s | %s", p.ID, p.Title, planStatusLabel(p.Status))
		if p.Duration > 0 {
			line += fmt.Sprintf(" | %d days", p.Duration)
		}
		if withOwner && p.Username != "" {
			line += " | by " + p.Username
		}
		a.println(line)
		if p.Description != "" {
			a.printf("    %s\n", p.Description)
		}
	}
}

func planStatusLabel(s string) string {
	if s == "" {
		return string(models.StatusNotStarted)
	}
	return s
}

func (a *App) cmdPlans(ctx context.Context, _ []string) error {
	epoch := a.session.Epoch()
	plans, err := a.plans.Mine(ctx)
	if !a.session.IsCurrent(epoch) {
		return nil
	}
	if err != nil {
		return err
	}
	a.printPlans(plans, false)
	return nil
}

func (a *App) cmdAllPlans(ctx context.Context, args []string) error {
	var status string
	if len(args) > 0 {
		status = args[0]
	}

	epoch := a.session.Epoch()
	plans, err := a.plans.All(ctx, status)
	if !a.session.IsCurrent(epoch) {
		return nil
	}
	if err != nil {
		return err
	}
	a.printPlans(plans, true)
	return nil
}

// readPlan prompts for the plan fields. A thumbnail path is uploaded first
// and replaced by the URL the backend returns.
func (a *App) readPlan(ctx context.Context, cur models.LearningPlanInput) (models.LearningPlanInput, error) {
	in := cur
	var err error

	if in.Title, err = GetTextWithDefault(a.reader, "Title", cur.Title, a.out); err != nil {
		return in, err
	}
	if in.Description, err = GetTextWithDefault(a.reader, "Description (optional)", cur.Description, a.out); err != nil {
		return in, err
	}

	curDuration := ""
	if cur.Duration > 0 {
		curDuration = strconv.Itoa(cur.Duration)
	}
	d, err := GetTextWithDefault(a.reader, "Duration in days (optional)", curDuration, a.out)
	if err != nil {
		return in, err
	}
	in.Duration = 0
	if d != "" {
		n, err := strconv.Atoi(d)
		if err != nil {
			return in, &common.ValidationError{Fields: map[string]string{"duration": "must be a whole number"}}
		}
		in.Duration = n
	}

	status, err := GetTextWithDefault(a.reader, "Status (NOT_STARTED, IN_PROGRESS, COMPLETED; optional)", string(cur.Status), a.out)
	if err != nil {
		return in, err
	}
	in.Status = models.PlanStatus(strings.ToUpper(status))

	path, err := getSimpleText(a.reader, "Thumbnail image path (optional)", a.out)
	if err != nil {
		return in, err
	}
	if path != "" {
		url, err := a.upload(ctx, path)
		if err != nil {
			return in, err
		}
		in.ThumbnailURL = url
	}
	return in, nil
}

func (a *App) upload(ctx context.Context, path string) (string, error) {
	data, err := a.readFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return a.plans.Upload(ctx, path, data)
}

func (a *App) cmdAddPlan(ctx context.Context, _ []string) error {
	if _, ok := a.session.Identity(); !ok {
		return common.ErrNotAuthenticated
	}
	in, err := a.readPlan(ctx, models.LearningPlanInput{})
	if err != nil {
		return err
	}
	p, err := a.plans.Create(ctx, in)
	if err != nil {
		return err
	}
	a.printf("Learning plan %d created.\n", p.ID)
	return nil
}

func (a *App) cmdEditPlan(ctx context.Context, args []string) error {
	id, err := argID(args, 0)
	if err != nil {
		return err
	}

	plans, err := a.plans.Mine(ctx)
	if err != nil {
		return err
	}
	var cur *models.LearningPlan
	for i := range plans {
		if plans[i].ID == id {
			cur = &plans[i]
			break
		}
	}
	if cur == nil {
		a.println("No such learning plan.")
		return nil
	}

	in, err := a.readPlan(ctx, models.LearningPlanInput{
		Title:        cur.Title,
		Description:  cur.Description,
		Duration:     cur.Duration,
		ThumbnailURL: cur.ThumbnailURL,
		Status:       models.PlanStatus(cur.Status),
	})
	if err != nil {
		return err
	}
	if _, err := a.plans.Update(ctx, id, in); err != nil {
		return err
	}
	a.printf("Learning plan %d updated.\n", id)
	return nil
}

func (a *App) cmdPlanStatus(ctx context.Context, args []string) error {
	id, err := argID(args, 0)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return errUsage
	}
	p, err := a.plans.SetStatus(ctx, id, args[1])
	if err != nil {
		return err
	}
	a.printf("Learning plan %d is now %s.\n", p.ID, planStatusLabel(p.Status))
	return nil
}

func (a *App) cmdDeletePlan(ctx context.Context, args []string) error {
	id, err := argID(args, 0)
	if err != nil {
		return err
	}
	if err := a.plans.Delete(ctx, id); err != nil {
		return err
	}
	a.printf("Learning plan %d deleted.\n", id)
	return nil
}

func (a *App) cmdUpload(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	url, err := a.upload(ctx, args[0])
	if err != nil {
		return err
	}
	a.println("Uploaded:", url)
	return nil
}
