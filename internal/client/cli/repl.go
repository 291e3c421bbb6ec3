package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/skillsphere/internal/client/client"
	"github.com/dmitrijs2005/skillsphere/internal/client/session"
	"github.com/dmitrijs2005/skillsphere/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// errUsage makes the REPL print the command's usage line.
var errUsage = errors.New("usage")

type command struct {
	name  string
	usage string
	help  string
	admin bool
	run   func(a *App, ctx context.Context, args []string) error
}

var commands map[string]command
var commandOrder []string

func register(c command) {
	commands[c.name] = c
	commandOrder = append(commandOrder, c.name)
}

func init() {
	commands = make(map[string]command)

	register(command{name: "help", usage: "help", help: "show available commands", run: (*App).cmdHelp})
	register(command{name: "login", usage: "login", help: "log in", run: (*App).cmdLogin})
	register(command{name: "register", usage: "register", help: "create an account", run: (*App).cmdRegister})
	register(command{name: "logout", usage: "logout", help: "log out", run: (*App).cmdLogout})
	register(command{name: "whoami", usage: "whoami", help: "show the current identity", run: (*App).cmdWhoami})
	register(command{name: "theme", usage: "theme", help: "toggle light/dark theme", run: (*App).cmdTheme})
	register(command{name: "notifications", usage: "notifications", help: "list visible notifications", run: (*App).cmdNotifications})
	register(command{name: "dismiss", usage: "dismiss <n>", help: "dismiss a notification", run: (*App).cmdDismiss})
	register(command{name: "reset", usage: "reset", help: "forget the stored session and theme", run: (*App).cmdReset})

	register(command{name: "feed", usage: "feed", help: "list posts", run: (*App).cmdFeed})
	register(command{name: "post", usage: "post <id>", help: "show a post", run: (*App).cmdPost})
	register(command{name: "newpost", usage: "newpost", help: "write a post", run: (*App).cmdNewPost})
	register(command{name: "editpost", usage: "editpost <id>", help: "edit a post", run: (*App).cmdEditPost})
	register(command{name: "delpost", usage: "delpost <id>", help: "delete a post", run: (*App).cmdDeletePost})
	register(command{name: "comment", usage: "comment <postId>", help: "comment on a post", run: (*App).cmdComment})
	register(command{name: "editcomment", usage: "editcomment <postId> <commentId>", help: "edit a comment", run: (*App).cmdEditComment})
	register(command{name: "delcomment", usage: "delcomment <commentId>", help: "delete a comment", run: (*App).cmdDeleteComment})
	register(command{name: "react", usage: "react <postId> <LIKE|LOVE>", help: "react to a post", run: (*App).cmdReact})

	register(command{name: "profile", usage: "profile [userId]", help: "show a profile", run: (*App).cmdProfile})
	register(command{name: "follow", usage: "follow <userId>", help: "follow a user", run: (*App).cmdFollow})
	register(command{name: "unfollow", usage: "unfollow <userId>", help: "unfollow a user", run: (*App).cmdUnfollow})
	register(command{name: "notes", usage: "notes [userId]", help: "list profile notes", run: (*App).cmdNotes})
	register(command{name: "addnote", usage: "addnote", help: "add a note", run: (*App).cmdAddNote})
	register(command{name: "editnote", usage: "editnote <id>", help: "edit a note", run: (*App).cmdEditNote})
	register(command{name: "delnote", usage: "delnote <id>", help: "delete a note", run: (*App).cmdDeleteNote})

	register(command{name: "plans", usage: "plans", help: "list your learning plans", run: (*App).cmdPlans})
	register(command{name: "allplans", usage: "allplans [status]", help: "list all learning plans", run: (*App).cmdAllPlans})
	register(command{name: "addplan", usage: "addplan", help: "create a learning plan", run: (*App).cmdAddPlan})
	register(command{name: "editplan", usage: "editplan <id>", help: "edit a learning plan", run: (*App).cmdEditPlan})
	register(command{name: "planstatus", usage: "planstatus <id> <NOT_STARTED|IN_PROGRESS|COMPLETED>", help: "set plan status", run: (*App).cmdPlanStatus})
	register(command{name: "delplan", usage: "delplan <id>", help: "delete a learning plan", run: (*App).cmdDeletePlan})
	register(command{name: "upload", usage: "upload <path>", help: "upload an image", run: (*App).cmdUpload})

	register(command{name: "subscriptions", usage: "subscriptions", help: "list subscription plans", run: (*App).cmdSubscriptionPlans})
	register(command{name: "subscribe", usage: "subscribe <plan>", help: "subscribe to a plan", run: (*App).cmdSubscribe})
	register(command{name: "mysubs", usage: "mysubs", help: "list your subscriptions", run: (*App).cmdMySubscriptions})
	register(command{name: "admin", usage: "admin <plans|addplan|editplan <id>|delplan <id>>", help: "manage subscription plans", admin: true, run: (*App).cmdAdmin})
}

// repl reads commands until exit, EOF or cancellation. Whenever the auth
// form is visible (after login/register or a forced logout) it is served
// before the next prompt. Navigation requested by a command is rendered
// once the command returns.
func (a *App) repl(ctx context.Context) {
	for {
		if ctx.Err() != nil {
			return
		}

		if a.session.AuthForm().Visible {
			err := a.authForm(ctx)
			a.render(ctx)
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				a.report(err)
			}
			continue
		}

		a.printf("%s> ", a.status())
		line, err := a.reader.ReadString('\n')
		if err != nil && strings.TrimSpace(line) == "" {
			a.println()
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		name := strings.ToLower(parts[0])

		if name == "exit" || name == "quit" {
			a.println("Bye!")
			return
		}

		cmd, ok := commands[name]
		if !ok {
			a.println("Unknown command:", name)
			continue
		}

		if err := cmd.run(a, ctx, parts[1:]); err != nil {
			switch {
			case errors.Is(err, io.EOF):
				return
			case errors.Is(err, errUsage):
				a.println("Usage:", cmd.usage)
			default:
				a.report(err)
			}
		}
		a.render(ctx)
	}
}

func (a *App) status() string {
	s := a.session.State()
	name := "guest"
	if s.Identity != nil {
		name = s.Identity.Username
		if s.Identity.IsAdmin {
			name += "*"
		}
	}
	return fmt.Sprintf("skillsphere %s (%s)", name, s.Theme)
}

// authForm serves one round of the login/register form. An empty username
// closes it; ":register" and ":login" switch the mode.
func (a *App) authForm(ctx context.Context) error {
	form := a.session.AuthForm()

	title := "Log in"
	if form.Mode == session.AuthModeRegister {
		title = "Register"
	}
	a.printf("== %s ==\n", title)
	if form.Error != "" {
		a.println("Error:", form.Error)
	}

	username, err := getSimpleText(a.reader, "Username (empty to cancel, :login or :register to switch)", a.out)
	if err != nil {
		a.session.CloseAuthForm()
		return err
	}
	switch username {
	case "":
		a.session.CloseAuthForm()
		return nil
	case ":login":
		a.session.SetAuthMode(session.AuthModeLogin)
		return nil
	case ":register":
		a.session.SetAuthMode(session.AuthModeRegister)
		return nil
	}

	password, err := getPassword(a.out)
	if err != nil {
		a.session.CloseAuthForm()
		return err
	}
	defer common.WipeByteArray(password)

	// Failures are recorded on the form and in the notification queue.
	if form.Mode == session.AuthModeRegister {
		_ = a.session.Register(ctx, username, string(password))
	} else {
		_ = a.session.Login(ctx, username, string(password))
	}
	return nil
}

// render draws the route requested by the last navigation, if any.
func (a *App) render(ctx context.Context) {
	route := a.takePending()
	if route == "" {
		return
	}

	var err error
	switch {
	case route == session.RouteHome:
		err = a.showHome(ctx)
	case route == session.RouteAdmin:
		err = a.showAdminPlans(ctx)
	case strings.HasPrefix(route, "/profile/"):
		id, perr := strconv.ParseInt(strings.TrimPrefix(route, "/profile/"), 10, 64)
		if perr != nil {
			a.log.Warn(ctx, "bad profile route", "route", route)
			return
		}
		err = a.showProfile(ctx, id)
	default:
		a.log.Warn(ctx, "unknown route", "route", route)
		return
	}
	if err != nil {
		a.report(err)
	}
}

// report prints a one-line explanation of err.
func (a *App) report(err error) {
	a.log.Debug(context.Background(), "command failed", "error", err)

	switch {
	case errors.Is(err, context.Canceled):
	case common.IsValidation(err):
		a.println("Invalid input:", err.Error())
	case errors.Is(err, common.ErrNotAuthenticated):
		a.println("Please log in first.")
	case errors.Is(err, common.ErrForbidden):
		a.println("Admin only.")
	case errors.Is(err, client.ErrUnauthorized):
		// an expired session has shown its notice already
		if _, ok := a.session.Identity(); !ok && !a.session.AuthForm().Visible {
			a.println("Please log in first.")
		}
	case errors.Is(err, client.ErrNotAllowed):
		a.println(client.MessageOf(err, "You are not allowed to do that."))
	case errors.Is(err, client.ErrUnavailable):
		a.println("Server unavailable, try again later.")
	default:
		a.println(client.MessageOf(err, "Request failed"))
	}
}

func (a *App) cmdHelp(_ context.Context, _ []string) error {
	id, ok := a.session.Identity()
	admin := ok && id.IsAdmin

	a.println("Available commands:")
	for _, name := range commandOrder {
		c := commands[name]
		if c.admin && !admin {
			continue
		}
		a.printf("  %-34s %s\n", c.usage, c.help)
	}
	a.printf("  %-34s %s\n", "exit | quit", "leave the program")
	return nil
}

func (a *App) cmdLogin(_ context.Context, _ []string) error {
	if id, ok := a.session.Identity(); ok {
		a.println("Already logged in as", id.Username+".")
		return nil
	}
	a.session.OpenAuthForm(session.AuthModeLogin)
	return nil
}

func (a *App) cmdRegister(_ context.Context, _ []string) error {
	if id, ok := a.session.Identity(); ok {
		a.println("Already logged in as", id.Username+".")
		return nil
	}
	a.session.OpenAuthForm(session.AuthModeRegister)
	return nil
}

func (a *App) cmdLogout(_ context.Context, _ []string) error {
	a.session.Logout()
	return nil
}

func (a *App) cmdWhoami(_ context.Context, _ []string) error {
	id, ok := a.session.Identity()
	if !ok {
		a.println("Not logged in.")
		return nil
	}

	role := "member"
	if id.IsAdmin {
		role = "admin"
	}
	a.printf("%s (id %d, %s)\n", id.Username, id.ID, role)
	if exp, ok := session.TokenExpiry(id.Token); ok {
		a.printf("Session valid until %s\n", exp.Local().Format(time.RFC1123))
	}
	return nil
}

func (a *App) cmdTheme(_ context.Context, _ []string) error {
	a.printf("Theme: %s\n", a.session.ToggleTheme())
	return nil
}

func (a *App) cmdNotifications(_ context.Context, _ []string) error {
	list := a.session.Notifications()
	if len(list) == 0 {
		a.println("No notifications.")
		return nil
	}
	for i, n := range list {
		a.printf("%d. %s\n", i+1, n.Message)
	}
	return nil
}

func (a *App) cmdDismiss(_ context.Context, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 {
		return errUsage
	}
	list := a.session.Notifications()
	if n > len(list) || !a.session.DismissNotification(list[n-1].ID) {
		a.println("No such notification.")
	}
	return nil
}

func (a *App) cmdReset(ctx context.Context, _ []string) error {
	if _, ok := a.session.Identity(); ok {
		a.session.Logout()
	}
	if a.session.Theme() != session.ThemeLight {
		a.session.ToggleTheme()
	}
	if err := a.prefs.Reset(ctx); err != nil {
		return err
	}
	a.println("Local session data cleared.")
	return nil
}

// argID parses args[i] as a positive id.
func argID(args []string, i int) (int64, error) {
	if i >= len(args) {
		return 0, errUsage
	}
	id, err := strconv.ParseInt(args[i], 10, 64)
	if err != nil || id <= 0 {
		return 0, errUsage
	}
	return id, nil
}
