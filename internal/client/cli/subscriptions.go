package cli

import (
	"context"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/skillsphere/internal/client/models"
	"github.com/dmitrijs2005/skillsphere/internal/common"
)

func (a *App) printSubscriptionPlans(plans []models.SubscriptionPlan) {
	if len(plans) == 0 {
		a.println("No subscription plans.")
		return
	}
	for _, p := range plans {
		a.printf("[%d] %s | $%.2f\n", p.ID, p.Name, p.Price)
		if p.Description != "" {
			a.printf("    %s\n", p.Description)
		}
		for _, f := range p.Features {
			a.printf("    * %s\n", f)
		}
	}
}

func (a *App) cmdSubscriptionPlans(ctx context.Context, _ []string) error {
	plans, err := a.subs.Plans(ctx)
	if err != nil {
		return err
	}
	a.printSubscriptionPlans(plans)
	return nil
}

func (a *App) cmdSubscribe(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errUsage
	}
	sub, err := a.subs.Subscribe(ctx, strings.Join(args, " "))
	if err != nil {
		return err
	}
	a.printf("Subscribed to %s.\n", sub.Plan)
	return nil
}

func (a *App) cmdMySubscriptions(ctx context.Context, _ []string) error {
	epoch := a.session.Epoch()
	subs, err := a.subs.Mine(ctx)
	if !a.session.IsCurrent(epoch) {
		return nil
	}
	if err != nil {
		return err
	}
	if len(subs) == 0 {
		a.println("No subscriptions.")
		return nil
	}
	for _, s := range subs {
		state := "inactive"
		if s.Active {
			state = "active"
		}
		a.printf("[%d] %s | %s | %s - %s\n", s.ID, s.Plan, state, s.StartDate, s.EndDate)
	}
	return nil
}

func (a *App) showAdminPlans(ctx context.Context) error {
	epoch := a.session.Epoch()
	plans, err := a.subs.AdminPlans(ctx)
	if !a.session.IsCurrent(epoch) {
		return nil
	}
	if err != nil {
		return err
	}
	a.println("== Admin: subscription plans ==")
	a.printSubscriptionPlans(plans)
	return nil
}

func (a *App) cmdAdmin(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errUsage
	}
	switch args[0] {
	case "plans":
		return a.showAdminPlans(ctx)
	case "addplan":
		return a.adminAddPlan(ctx)
	case "editplan":
		id, err := argID(args, 1)
		if err != nil {
			return err
		}
		return a.adminEditPlan(ctx, id)
	case "delplan":
		id, err := argID(args, 1)
		if err != nil {
			return err
		}
		if err := a.subs.AdminDelete(ctx, id); err != nil {
			return err
		}
		a.printf("Subscription plan %d deleted.\n", id)
		return nil
	}
	return errUsage
}

func (a *App) requireAdmin() error {
	me, ok := a.session.Identity()
	if !ok {
		return common.ErrNotAuthenticated
	}
	if !me.IsAdmin {
		return common.ErrForbidden
	}
	return nil
}

func (a *App) readPlanInput(cur models.PlanInput) (models.PlanInput, error) {
	in := cur
	var err error

	if in.Name, err = GetTextWithDefault(a.reader, "Name", cur.Name, a.out); err != nil {
		return in, err
	}
	if in.Description, err = GetTextWithDefault(a.reader, "Description", cur.Description, a.out); err != nil {
		return in, err
	}

	curPrice := ""
	if cur.Price > 0 {
		curPrice = strconv.FormatFloat(cur.Price, 'f', -1, 64)
	}
	price, err := GetTextWithDefault(a.reader, "Price", curPrice, a.out)
	if err != nil {
		return in, err
	}
	in.Price = 0
	if price != "" {
		if in.Price, err = strconv.ParseFloat(price, 64); err != nil {
			return in, &common.ValidationError{Fields: map[string]string{"price": "must be a number"}}
		}
	}

	features, err := GetTextWithDefault(a.reader, "Features, comma-separated (optional)", strings.Join(cur.Features, ", "), a.out)
	if err != nil {
		return in, err
	}
	in.Features = splitList(features)
	return in, nil
}

func (a *App) adminAddPlan(ctx context.Context) error {
	if err := a.requireAdmin(); err != nil {
		return err
	}
	in, err := a.readPlanInput(models.PlanInput{})
	if err != nil {
		return err
	}
	p, err := a.subs.AdminCreate(ctx, in)
	if err != nil {
		return err
	}
	a.printf("Subscription plan %d created.\n", p.ID)
	return nil
}

func (a *App) adminEditPlan(ctx context.Context, id int64) error {
	plans, err := a.subs.AdminPlans(ctx)
	if err != nil {
		return err
	}
	var cur *models.SubscriptionPlan
	for i := range plans {
		if plans[i].ID == id {
			cur = &plans[i]
			break
		}
	}
	if cur == nil {
		a.println("No such subscription plan.")
		return nil
	}

	in, err := a.readPlanInput(models.PlanInput{
		Name:        cur.Name,
		Description: cur.Description,
		Price:       cur.Price,
		Features:    cur.Features,
	})
	if err != nil {
		return err
	}
	if _, err := a.subs.AdminUpdate(ctx, id, in); err != nil {
		return err
	}
	a.printf("Subscription plan %d updated.\n", id)
	return nil
}
