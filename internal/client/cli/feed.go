package cli

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/skillsphere/internal/client/models"
	"github.com/dmitrijs2005/skillsphere/internal/common"
)

// homeFeedSize is how many posts the home page shows.
const homeFeedSize = 5

func (a *App) showHome(ctx context.Context) error {
	epoch := a.session.Epoch()
	posts, err := a.feed.List(ctx)
	if !a.session.IsCurrent(epoch) {
		return nil
	}
	if err != nil {
		return err
	}

	a.println("== SkillSphere ==")
	if len(posts) == 0 {
		a.println("No posts yet.")
		return nil
	}
	if len(posts) > homeFeedSize {
		posts = posts[:homeFeedSize]
	}
	a.println("Recent posts:")
	for _, p := range posts {
		a.println(postLine(p))
	}
	return nil
}

func postLine(p models.Post) string {
	author := "unknown"
	if p.User != nil {
		author = p.User.Username
	}
	return fmt.Sprintf("#%d %s | by %s | %d comments | LIKE %d LOVE %d",
		p.ID, p.Title, author, len(p.Comments),
		p.ReactionCount(models.ReactionLike), p.ReactionCount(models.ReactionLove))
}

func (a *App) cmdFeed(ctx context.Context, _ []string) error {
	epoch := a.session.Epoch()
	posts, err := a.feed.List(ctx)
	if !a.session.IsCurrent(epoch) {
		return nil
	}
	if err != nil {
		return err
	}
	if len(posts) == 0 {
		a.println("No posts yet.")
		return nil
	}
	for _, p := range posts {
		a.println(postLine(p))
	}
	return nil
}

func (a *App) cmdPost(ctx context.Context, args []string) error {
	id, err := argID(args, 0)
	if err != nil {
		return err
	}

	epoch := a.session.Epoch()
	p, err := a.feed.Get(ctx, id)
	if !a.session.IsCurrent(epoch) {
		return nil
	}
	if err != nil {
		return err
	}
	a.printPost(p)
	return nil
}

func (a *App) printPost(p *models.Post) {
	a.println(postLine(*p))
	if p.Category != "" || p.Tags != "" {
		a.printf("Category: %s  Tags: %s\n", p.Category, p.Tags)
	}
	if p.CreatedAt != "" {
		a.println("Posted:", p.CreatedAt)
	}
	a.println()
	a.println(p.Content)
	for _, u := range p.ImageURLs() {
		a.println("Image:", u)
	}
	if me, ok := a.session.Identity(); ok {
		if r, ok := p.ReactionBy(me.ID); ok {
			a.println("Your reaction:", r.ReactionType)
		}
	}
	if len(p.Comments) > 0 {
		a.println()
		a.println("Comments:")
		for _, c := range p.Comments {
			author := "unknown"
			if c.User != nil {
				author = c.User.Username
			}
			a.printf("  [%d] %s: %s\n", c.ID, author, c.Text)
		}
	}
}

// readPostForm prompts for the post fields, offering cur as defaults.
func (a *App) readPostForm(cur models.PostForm) (models.PostForm, error) {
	var (
		form models.PostForm
		err  error
	)
	if form.Title, err = GetTextWithDefault(a.reader, "Title", cur.Title, a.out); err != nil {
		return form, err
	}
	if form.Content, err = GetMultiline(a.reader, "Content", a.out); err != nil {
		return form, err
	}
	if form.Content == "" {
		form.Content = cur.Content
	}
	if form.Category, err = GetTextWithDefault(a.reader, "Category (optional)", cur.Category, a.out); err != nil {
		return form, err
	}
	if form.Tags, err = GetTextWithDefault(a.reader, "Tags, comma-separated (optional)", cur.Tags, a.out); err != nil {
		return form, err
	}

	paths, err := getSimpleText(a.reader, "Image files, comma-separated paths (optional)", a.out)
	if err != nil {
		return form, err
	}
	for _, path := range splitList(paths) {
		data, err := a.readFile(path)
		if err != nil {
			return form, fmt.Errorf("read %s: %w", path, err)
		}
		form.Files = append(form.Files, models.Attachment{
			FileName: filepath.Base(path),
			Content:  bytes.NewReader(data),
		})
	}
	return form, nil
}

func (a *App) cmdNewPost(ctx context.Context, _ []string) error {
	if _, ok := a.session.Identity(); !ok {
		return common.ErrNotAuthenticated
	}
	form, err := a.readPostForm(models.PostForm{})
	if err != nil {
		return err
	}
	p, err := a.feed.Create(ctx, form)
	if err != nil {
		return err
	}
	a.printf("Post #%d created.\n", p.ID)
	return nil
}

func (a *App) cmdEditPost(ctx context.Context, args []string) error {
	id, err := argID(args, 0)
	if err != nil {
		return err
	}
	if _, ok := a.session.Identity(); !ok {
		return common.ErrNotAuthenticated
	}

	cur, err := a.feed.Get(ctx, id)
	if err != nil {
		return err
	}
	form, err := a.readPostForm(models.PostForm{
		Title:    cur.Title,
		Content:  cur.Content,
		Category: cur.Category,
		Tags:     cur.Tags,
	})
	if err != nil {
		return err
	}
	p, err := a.feed.Update(ctx, id, form)
	if err != nil {
		return err
	}
	a.printf("Post #%d updated.\n", p.ID)
	return nil
}

func (a *App) cmdDeletePost(ctx context.Context, args []string) error {
	id, err := argID(args, 0)
	if err != nil {
		return err
	}
	if err := a.feed.Delete(ctx, id); err != nil {
		return err
	}
	a.printf("Post #%d deleted.\n", id)
	return nil
}

func (a *App) cmdComment(ctx context.Context, args []string) error {
	id, err := argID(args, 0)
	if err != nil {
		return err
	}
	if _, ok := a.session.Identity(); !ok {
		return common.ErrNotAuthenticated
	}
	text, err := getSimpleText(a.reader, "Comment", a.out)
	if err != nil {
		return err
	}
	p, err := a.feed.Comment(ctx, id, text)
	if err != nil {
		return err
	}
	a.printf("Comment added to post #%d (%d comments).\n", p.ID, len(p.Comments))
	return nil
}

func (a *App) cmdEditComment(ctx context.Context, args []string) error {
	postID, err := argID(args, 0)
	if err != nil {
		return err
	}
	commentID, err := argID(args, 1)
	if err != nil {
		return err
	}
	if _, ok := a.session.Identity(); !ok {
		return common.ErrNotAuthenticated
	}
	text, err := getSimpleText(a.reader, "New text", a.out)
	if err != nil {
		return err
	}
	if _, err := a.feed.EditComment(ctx, postID, commentID, text); err != nil {
		return err
	}
	a.printf("Comment %d updated.\n", commentID)
	return nil
}

func (a *App) cmdDeleteComment(ctx context.Context, args []string) error {
	id, err := argID(args, 0)
	if err != nil {
		return err
	}
	if err := a.feed.DeleteComment(ctx, id); err != nil {
		return err
	}
	a.printf("Comment %d deleted.\n", id)
	return nil
}

func (a *App) cmdReact(ctx context.Context, args []string) error {
	id, err := argID(args, 0)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return errUsage
	}
	p, err := a.feed.React(ctx, id, models.ReactionType(strings.ToUpper(args[1])))
	if err != nil {
		return err
	}
	a.printf("Post #%d: LIKE %d LOVE %d\n", p.ID,
		p.ReactionCount(models.ReactionLike), p.ReactionCount(models.ReactionLove))
	return nil
}
