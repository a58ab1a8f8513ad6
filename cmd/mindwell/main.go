// Command mindwell is a terminal companion client. It keeps its
// session in a state file, so an expired access token is refreshed
// transparently on the next command.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/mindwell-app/mindwell/client"
	"github.com/mindwell-app/mindwell/client/guards"
	"github.com/mindwell-app/mindwell/client/session"
	"github.com/mindwell-app/mindwell/internal/config"
	"github.com/mindwell-app/mindwell/internal/logging"
	"github.com/mindwell-app/mindwell/internal/utils"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "mindwell: %s\n", err)
		os.Exit(1)
	}
}

func usage() error {
	fmt.Println(`usage: mindwell <command> [args]

  register <username> <password> [email]   create an account
  login <username> <password>              sign in
  logout                                   sign out
  whoami                                   show the signed-in user

  chat <message>                           analyze a message
  history [emotion]                        list past mood entries
  stats                                    mood statistics

  checkin <emotion> [note]                 record today's check-in
  today                                    show today's check-in
  calendar                                 check-ins of the last 30 days

  goals [all|active|completed|overdue]     list goals
  goal-add <title> <target> <date>         create a goal (date YYYY-MM-DD)
  goal-done <id>                           complete a goal

  thanks <text>                            add a gratitude entry
  gratitude                                list gratitude entries
  streak                                   gratitude statistics

  tips [emotion]                           wellness tips
  prefs                                    show preferences
  theme <light|dark|auto>                  switch the preferred theme`)
	return nil
}

func run(args []string) error {
	if len(args) == 0 {
		return usage()
	}

	cfg, err := config.New()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("resolve home dir: %w", err)
	}
	store, err := session.NewFileStore(filepath.Join(home, ".mindwell", "session.json"))
	if err != nil {
		return err
	}
	sess := session.New(store)

	api := client.New(cfg.APIBaseURL, sess,
		client.WithLogger(logging.New(cfg.IsDev())),
		client.WithLogoutHook(func() {
			fmt.Fprintln(os.Stderr, "Session expired, please log in again.")
		}),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	command, rest := args[0], args[1:]
	switch command {
	case "register", "login":
		if decision := guards.PublicOnly(sess); !decision.Allow {
			return fmt.Errorf("already signed in as %s (try %q)", sess.Username(), "mindwell logout")
		}
	case "logout", "whoami", "help":
	default:
		if decision := guards.PrivateOnly(sess); !decision.Allow {
			return errors.New("not signed in (try \"mindwell login <username> <password>\")")
		}
	}

	switch command {
	case "help":
		return usage()
	case "register":
		return cmdRegister(ctx, api, rest)
	case "login":
		return cmdLogin(ctx, api, rest)
	case "logout":
		return api.Logout()
	case "whoami":
		return cmdWhoami(ctx, api, sess)
	case "chat":
		return cmdChat(ctx, api, rest)
	case "history":
		return cmdHistory(ctx, api, rest)
	case "stats":
		return cmdStats(ctx, api)
	case "checkin":
		return cmdCheckIn(ctx, api, rest)
	case "today":
		return cmdToday(ctx, api)
	case "calendar":
		return cmdCalendar(ctx, api)
	case "goals":
		return cmdGoals(ctx, api, rest)
	case "goal-add":
		return cmdGoalAdd(ctx, api, rest)
	case "goal-done":
		return cmdGoalDone(ctx, api, rest)
	case "thanks":
		return cmdThanks(ctx, api, rest)
	case "gratitude":
		return cmdGratitude(ctx, api)
	case "streak":
		return cmdStreak(ctx, api)
	case "tips":
		return cmdTips(ctx, api, rest)
	case "prefs":
		return cmdPrefs(ctx, api)
	case "theme":
		return cmdTheme(ctx, api, rest)
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

// describe flattens a client error into something readable, surfacing
// field-level validation details.
func describe(err error) error {
	clientErr, ok := err.(*client.Error)
	if !ok {
		return err
	}
	if client.IsValidation(err) && len(clientErr.Details) > 0 {
		message := clientErr.Message
		for field, problem := range clientErr.Details {
			message += fmt.Sprintf("\n  %s: %s", field, problem)
		}
		return errors.New(message)
	}
	return errors.New(clientErr.Message)
}

func cmdRegister(ctx context.Context, api *client.Client, args []string) error {
	if len(args) < 2 {
		return errors.New("usage: mindwell register <username> <password> [email]")
	}
	email := ""
	if len(args) > 2 {
		email = args[2]
	}
	user, err := api.Register(ctx, args[0], email, args[1])
	if err != nil {
		return describe(err)
	}
	fmt.Printf("Account %q created. Log in with \"mindwell login %s <password>\".\n", user.Username, user.Username)
	return nil
}

func cmdLogin(ctx context.Context, api *client.Client, args []string) error {
	if len(args) != 2 {
		return errors.New("usage: mindwell login <username> <password>")
	}
	if err := api.Login(ctx, args[0], args[1]); err != nil {
		return describe(err)
	}
	fmt.Printf("Signed in as %s.\n", args[0])
	return nil
}

func cmdWhoami(ctx context.Context, api *client.Client, sess *session.Session) error {
	if !sess.IsAuthenticated() {
		fmt.Println("Not signed in.")
		return nil
	}
	if err := api.VerifyProtected(ctx); err != nil {
		return describe(err)
	}
	fmt.Printf("Signed in as %s.\n", sess.Username())
	return nil
}

func cmdChat(ctx context.Context, api *client.Client, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: mindwell chat <message>")
	}
	analysis, err := api.Analyze(ctx, args[0])
	if err != nil {
		return describe(err)
	}
	fmt.Printf("[%s, score %+.2f]\n\n%s\n", analysis.Emotion, analysis.SentimentScore, analysis.Response)
	return nil
}

func cmdHistory(ctx context.Context, api *client.Client, args []string) error {
	opts := client.ListOptions{}
	if len(args) > 0 {
		opts.Emotion = args[0]
	}
	page, err := api.History(ctx, opts)
	if err != nil {
		return describe(err)
	}
	fmt.Printf("%d entries\n", page.Count)
	for _, entry := range page.Results {
		fmt.Printf("#%-4d %-8s %-14s %s\n", entry.ID, entry.Emotion, entry.TimeAgo, truncate(entry.Text, 60))
	}
	return nil
}

func cmdStats(ctx context.Context, api *client.Client) error {
	stats, err := api.MoodStats(ctx)
	if err != nil {
		return describe(err)
	}
	fmt.Printf("Entries:   %d\n", stats.TotalEntries)
	fmt.Printf("Average:   %+.2f\n", stats.AverageSentiment)
	fmt.Printf("Trend:     %s\n", stats.RecentTrend)
	for emotion, count := range stats.EmotionBreakdown {
		fmt.Printf("  %-8s %d\n", emotion, count)
	}
	return nil
}

func cmdCheckIn(ctx context.Context, api *client.Client, args []string) error {
	if len(args) < 1 {
		return errors.New("usage: mindwell checkin <emotion> [note]")
	}
	note := ""
	if len(args) > 1 {
		note = args[1]
	}
	checkin, err := api.CheckIn(ctx, args[0], note)
	if err != nil {
		return describe(err)
	}
	fmt.Printf("Checked in for %s: %s\n", checkin.Date, checkin.Emotion)
	return nil
}

func cmdToday(ctx context.Context, api *client.Client) error {
	checkin, err := api.TodayCheckIn(ctx)
	if err != nil {
		if client.IsNotFound(err) {
			fmt.Println("No check-in yet today.")
			return nil
		}
		return describe(err)
	}
	fmt.Printf("%s: %s", checkin.Date, checkin.Emotion)
	if checkin.Note != "" {
		fmt.Printf(" (%s)", checkin.Note)
	}
	fmt.Println()
	return nil
}

func cmdCalendar(ctx context.Context, api *client.Client) error {
	calendar, err := api.CheckInCalendar(ctx, "", "")
	if err != nil {
		return describe(err)
	}
	fmt.Printf("%s .. %s\n", calendar.StartDate, calendar.EndDate)
	for _, checkin := range calendar.CheckIns {
		fmt.Printf("%s  %s\n", checkin.Date, checkin.Emotion)
	}
	return nil
}

func cmdGoals(ctx context.Context, api *client.Client, args []string) error {
	opts := client.ListOptions{}
	if len(args) > 0 {
		opts.Status = args[0]
	}
	page, err := api.Goals(ctx, opts)
	if err != nil {
		return describe(err)
	}
	for _, goal := range page.Results {
		state := " "
		switch {
		case goal.Completed:
			state = "x"
		case goal.IsOverdue:
			state = "!"
		}
		fmt.Printf("[%s] #%-4d %-40s %5.1f%%  due %s\n",
			state, goal.ID, truncate(goal.Title, 40), goal.ProgressPercentage, goal.TargetDate)
	}
	return nil
}

func cmdGoalAdd(ctx context.Context, api *client.Client, args []string) error {
	if len(args) != 3 {
		return errors.New("usage: mindwell goal-add <title> <target> <date>")
	}
	target, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("target must be a number: %q", args[1])
	}
	goal, err := api.CreateGoal(ctx, client.GoalInput{
		Title:       args[0],
		TargetValue: target,
		TargetDate:  args[2],
	})
	if err != nil {
		return describe(err)
	}
	fmt.Printf("Goal #%d created, due %s.\n", goal.ID, goal.TargetDate)
	return nil
}

func cmdGoalDone(ctx context.Context, api *client.Client, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: mindwell goal-done <id>")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("id must be a number: %q", args[0])
	}
	goal, err := api.CompleteGoal(ctx, id)
	if err != nil {
		return describe(err)
	}
	fmt.Printf("Goal #%d completed.\n", goal.ID)
	return nil
}

func cmdThanks(ctx context.Context, api *client.Client, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: mindwell thanks <text>")
	}
	if _, err := api.CreateGratitude(ctx, args[0]); err != nil {
		return describe(err)
	}
	fmt.Println("Noted.")
	return nil
}

func cmdGratitude(ctx context.Context, api *client.Client) error {
	page, err := api.GratitudeList(ctx, client.ListOptions{})
	if err != nil {
		return describe(err)
	}
	for _, entry := range page.Results {
		fmt.Printf("%-14s %s\n", entry.TimeAgo, truncate(entry.Text, 60))
	}
	return nil
}

func cmdStreak(ctx context.Context, api *client.Client) error {
	stats, err := api.GratitudeStats(ctx)
	if err != nil {
		return describe(err)
	}
	fmt.Printf("%d entries, %d day streak\n", stats.TotalEntries, stats.CurrentStreak)
	return nil
}

func cmdTips(ctx context.Context, api *client.Client, args []string) error {
	emotion := ""
	if len(args) > 0 {
		emotion = args[0]
	}
	tips, err := api.WellnessTips(ctx, emotion)
	if err != nil {
		return describe(err)
	}
	for _, tip := range tips.Tips {
		fmt.Printf("%s\n  %s\n", tip.Title, tip.Description)
	}
	return nil
}

func cmdPrefs(ctx context.Context, api *client.Client) error {
	prefs, err := api.Preferences(ctx)
	if err != nil {
		return describe(err)
	}
	fmt.Printf("Reminders:     %v at %s\n", prefs.ReminderEnabled, prefs.ReminderTime)
	fmt.Printf("Notifications: %v\n", prefs.NotificationEnabled)
	fmt.Printf("Theme:         %s\n", prefs.PreferredTheme)
	return nil
}

func cmdTheme(ctx context.Context, api *client.Client, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: mindwell theme <light|dark|auto>")
	}
	prefs, err := api.UpdatePreferences(ctx, client.PreferencesPatch{PreferredTheme: utils.Ptr(args[0])})
	if err != nil {
		return describe(err)
	}
	fmt.Printf("Theme set to %s.\n", prefs.PreferredTheme)
	return nil
}

func truncate(text string, max int) string {
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max-3]) + "..."
}
