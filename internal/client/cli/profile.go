package cli

import (
	"context"

	"github.com/dmitrijs2005/skillsphere/internal/client/models"
	"github.com/dmitrijs2005/skillsphere/internal/common"
)

// targetUser resolves an optional user id argument, defaulting to the
// signed-in user.
func (a *App) targetUser(args []string) (int64, error) {
	if len(args) > 0 {
		return argID(args, 0)
	}
	me, ok := a.session.Identity()
	if !ok {
		return 0, common.ErrNotAuthenticated
	}
	return me.ID, nil
}

func (a *App) showProfile(ctx context.Context, userID int64) error {
	epoch := a.session.Epoch()
	p, err := a.profile.Get(ctx, userID)
	if !a.session.IsCurrent(epoch) {
		return nil
	}
	if err != nil {
		return err
	}
	a.printProfile(p)
	return nil
}

func (a *App) printProfile(p *models.Profile) {
	title := p.Username
	if p.IsAdmin {
		title += " (admin)"
	}
	a.printf("== %s ==\n", title)
	if p.CreatedAt != "" {
		a.println("Member since", p.CreatedAt)
	}
	a.printf("Followers: %d\n", len(p.Followers))
	if me, ok := a.session.Identity(); ok && me.ID != p.ID {
		if p.FollowedBy(me.ID) {
			a.println("You follow this user.")
		} else {
			a.println("You do not follow this user.")
		}
	}
	if len(p.Posts) == 0 {
		a.println("No posts.")
		return
	}
	a.println("Posts:")
	for _, post := range p.Posts {
		a.printf("  #%d %s\n", post.ID, post.Title)
	}
}

func (a *App) cmdProfile(ctx context.Context, args []string) error {
	id, err := a.targetUser(args)
	if err != nil {
		return err
	}
	return a.showProfile(ctx, id)
}

func (a *App) cmdFollow(ctx context.Context, args []string) error {
	id, err := argID(args, 0)
	if err != nil {
		return err
	}
	p, err := a.profile.Follow(ctx, id)
	if err != nil {
		return err
	}
	a.printf("Following %s (%d followers).\n", p.Username, len(p.Followers))
	return nil
}

func (a *App) cmdUnfollow(ctx context.Context, args []string) error {
	id, err := argID(args, 0)
	if err != nil {
		return err
	}
	p, err := a.profile.Unfollow(ctx, id)
	if err != nil {
		return err
	}
	a.printf("Unfollowed %s (%d followers).\n", p.Username, len(p.Followers))
	return nil
}

func (a *App) cmdNotes(ctx context.Context, args []string) error {
	id, err := a.targetUser(args)
	if err != nil {
		return err
	}

	epoch := a.session.Epoch()
	notes, err := a.profile.Notes(ctx, id)
	if !a.session.IsCurrent(epoch) {
		return nil
	}
	if err != nil {
		return err
	}
	if len(notes) == 0 {
		a.println("No notes.")
		return nil
	}
	for _, n := range notes {
		a.printf("[%d] %s\n", n.ID, n.Title)
		a.printf("    %s\n", n.Content)
	}
	return nil
}

func (a *App) readNote(cur models.NoteInput) (models.NoteInput, error) {
	var (
		in  models.NoteInput
		err error
	)
	if in.Title, err = GetTextWithDefault(a.reader, "Title", cur.Title, a.out); err != nil {
		return in, err
	}
	if in.Content, err = GetMultiline(a.reader, "Content", a.out); err != nil {
		return in, err
	}
	if in.Content == "" {
		in.Content = cur.Content
	}
	return in, nil
}

func (a *App) cmdAddNote(ctx context.Context, _ []string) error {
	if _, ok := a.session.Identity(); !ok {
		return common.ErrNotAuthenticated
	}
	in, err := a.readNote(models.NoteInput{})
	if err != nil {
		return err
	}
	n, err := a.profile.AddNote(ctx, in)
	if err != nil {
		return err
	}
	a.printf("Note %d added.\n", n.ID)
	return nil
}

func (a *App) cmdEditNote(ctx context.Context, args []string) error {
	id, err := argID(args, 0)
	if err != nil {
		return err
	}
	me, ok := a.session.Identity()
	if !ok {
		return common.ErrNotAuthenticated
	}

	notes, err := a.profile.Notes(ctx, me.ID)
	if err != nil {
		return err
	}
	var cur *models.Note
	for i := range notes {
		if notes[i].ID == id {
			cur = &notes[i]
			break
		}
	}
	if cur == nil {
		a.println("No such note.")
		return nil
	}

	in, err := a.readNote(models.NoteInput{Title: cur.Title, Content: cur.Content})
	if err != nil {
		return err
	}
	if _, err := a.profile.UpdateNote(ctx, id, in); err != nil {
		return err
	}
	a.printf("Note %d updated.\n", id)
	return nil
}

func (a *App) cmdDeleteNote(ctx context.Context, args []string) error {
	id, err := argID(args, 0)
	if err != nil {
		return err
	}
	if err := a.profile.DeleteNote(ctx, id); err != nil {
		return err
	}
	a.printf("Note %d deleted.\n", id)
	return nil
}
