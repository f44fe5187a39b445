// Command booker is a terminal front end for the booking API: it browses the
// professor directory, shows open slots, books appointments and edits a
// professor's profile.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"professor-booking-server/internal/client"
	"professor-booking-server/internal/config"
	"professor-booking-server/internal/logger"
	"professor-booking-server/internal/slots"
)

const usage = `usage: booker <command> [flags]

commands:
  login         -email -password [-professor]
  professors    [-department]
  slots         -prof
  book          -prof -day -time
  appointments
  profile       [-about] [-toggle-available]
`

// terminal prints notifications and navigation to the console.
type terminal struct {
	out io.Writer
	err io.Writer
}

func (t terminal) Success(message string) { fmt.Fprintln(t.out, message) }
func (t terminal) Warning(message string) { fmt.Fprintln(t.err, "warning:", message) }
func (t terminal) Error(message string)   { fmt.Fprintln(t.err, "error:", message) }
func (t terminal) Navigate(path string)   { fmt.Fprintln(t.out, "next:", path) }

type app struct {
	cfg    *config.ClientConfig
	api    *client.Client
	term   terminal
	logger *zap.Logger
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	cfg, err := config.LoadClientConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// stdout carries command output
	lg := logger.New(cfg.Environment, "stderr")
	defer lg.Sync() //nolint:errcheck

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	a := &app{
		cfg:    cfg,
		api:    client.New(cfg.APIURL, &http.Client{Timeout: cfg.Timeout}),
		term:   terminal{out: os.Stdout, err: os.Stderr},
		logger: lg,
	}

	ctx := context.Background()
	if err := a.run(ctx, os.Args[1], os.Args[2:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		lg.Debug("Command failed", zap.String("command", os.Args[1]), zap.Error(err))
		os.Exit(1)
	}
}

func (a *app) run(ctx context.Context, command string, args []string) error {
	switch command {
	case "login":
		return a.login(ctx, args)
	case "professors":
		return a.professors(ctx, args)
	case "slots":
		return a.slots(ctx, args)
	case "book":
		return a.book(ctx, args)
	case "appointments":
		return a.appointments(ctx)
	case "profile":
		return a.profile(ctx, args)
	default:
		fmt.Fprint(os.Stderr, usage)
		return flag.ErrHelp
	}
}

func (a *app) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	email := fs.String("email", "", "account email")
	password := fs.String("password", "", "account password")
	professor := fs.Bool("professor", false, "log in as a professor")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var (
		token string
		err   error
	)
	if *professor {
		token, err = a.api.LoginProfessor(ctx, *email, *password)
	} else {
		token, err = a.api.LoginUser(ctx, *email, *password)
	}
	if err != nil {
		a.term.Error(err.Error())
		return err
	}

	env := "BOOKING_TOKEN"
	if *professor {
		env = "BOOKING_DTOKEN"
	}
	fmt.Fprintf(a.term.out, "%s=%s\n", env, token)
	return nil
}

func (a *app) professors(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("professors", flag.ContinueOnError)
	department := fs.String("department", "", "only list this department")
	if err := fs.Parse(args); err != nil {
		return err
	}

	state := client.NewAppState(a.api, a.cfg.Token, a.logger)
	if err := state.RefreshProfessors(ctx); err != nil {
		a.term.Error(err.Error())
		return err
	}

	for _, p := range client.FilterByDepartment(state.Professors(), *department) {
		status := "available"
		if !p.Available {
			status = "not available"
		}
		fmt.Fprintf(a.term.out, "%s\t%s\t%s\t%s\n", p.ID, p.Name, p.Department, status)
	}
	return nil
}

func (a *app) slots(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("slots", flag.ContinueOnError)
	profID := fs.String("prof", "", "professor id")
	if err := fs.Parse(args); err != nil {
		return err
	}

	_, days, err := a.openSlots(ctx, *profID)
	if err != nil {
		return err
	}

	for i, day := range days {
		fmt.Fprintf(a.term.out, "[%d] %s", i, day.Date.Format("Mon 02 Jan"))
		for _, s := range day.Slots {
			fmt.Fprintf(a.term.out, "  %s", s.Display)
		}
		fmt.Fprintln(a.term.out)
	}
	return nil
}

func (a *app) book(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("book", flag.ContinueOnError)
	profID := fs.String("prof", "", "professor id")
	day := fs.Int("day", 0, "day index as printed by slots")
	slotTime := fs.String("time", "", "slot time, e.g. \"10:00 AM\"")
	if err := fs.Parse(args); err != nil {
		return err
	}

	state, days, err := a.openSlots(ctx, *profID)
	if err != nil {
		return err
	}

	submitter := client.NewBookingSubmitter(a.api, state, a.term, a.term, a.logger)
	return submitter.Submit(ctx, *profID, days, *day, *slotTime)
}

// openSlots loads the directory and generates the open slots of one professor.
func (a *app) openSlots(ctx context.Context, profID string) (*client.AppState, []slots.Day, error) {
	state := client.NewAppState(a.api, a.cfg.Token, a.logger)
	if err := state.RefreshProfessors(ctx); err != nil {
		a.term.Error(err.Error())
		return nil, nil, err
	}

	prof, ok := state.Professor(profID)
	if !ok {
		err := fmt.Errorf("professor %q not found", profID)
		a.term.Error(err.Error())
		return nil, nil, err
	}
	return state, slots.Generate(time.Now().In(a.cfg.Location), prof.SlotsBooked), nil
}

func (a *app) appointments(ctx context.Context) error {
	state := client.NewAppState(a.api, a.cfg.Token, a.logger)
	token := state.Token()
	if token == "" {
		a.term.Warning("Login to view your appointments")
		a.term.Navigate(client.LoginPath)
		return client.ErrUnauthenticated
	}

	list, err := a.api.MyAppointments(ctx, token)
	if err != nil {
		a.term.Error(err.Error())
		return err
	}
	for _, ap := range list {
		status := ""
		if ap.Cancelled {
			status = "cancelled"
		}
		fmt.Fprintf(a.term.out, "%s\t%s\t%s %s\t%s\n", ap.ID, ap.ProfessorName, ap.SlotDate, ap.SlotTime, status)
	}
	return nil
}

func (a *app) profile(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("profile", flag.ContinueOnError)
	about := fs.String("about", "", "new about text")
	toggle := fs.Bool("toggle-available", false, "flip the availability flag")
	keep := fs.Bool("keep-edit", false, "stay in edit mode when saving fails")
	if err := fs.Parse(args); err != nil {
		return err
	}

	state := client.NewProfessorState(a.api, a.cfg.DToken, a.logger)
	if err := state.RefreshProfile(ctx); err != nil {
		a.term.Error(err.Error())
		return err
	}

	editor := client.NewProfileEditor(a.api, state, a.term, a.logger)
	editor.KeepEditOnFailure = *keep

	if *about != "" || *toggle {
		if err := editor.Edit(); err != nil {
			return err
		}
		if *about != "" {
			if err := editor.SetAbout(*about); err != nil {
				return err
			}
		}
		if *toggle {
			editor.ToggleAvailable()
		}
		if err := editor.Save(ctx); err != nil {
			return err
		}
	}

	p, _ := state.Profile()
	fmt.Fprintf(a.term.out, "%s (%s)\navailable: %t\n%s\n", p.Name, p.Department, p.Available, p.About)
	return nil
}
