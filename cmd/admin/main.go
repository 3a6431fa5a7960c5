package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"hr-intake-backend/internal/config"
	"hr-intake-backend/internal/database"
	"hr-intake-backend/internal/domain"
	"hr-intake-backend/internal/logger"
	"hr-intake-backend/internal/repository/sqldb"
	"hr-intake-backend/internal/service"
)

const usage = `Usage: admin [-config path] <command> [flags]

Commands:
  bootstrap          create the first elevated participant
  issue-token        issue a registration token
  list-participants  print every registered participant
`

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)

	ctx := context.Background()
	db, err := database.Open(ctx, cfg.Database.Driver, cfg.DSN())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	store := sqldb.NewStore(db)
	defer store.Close()

	registrations := service.NewRegistrationService(store.Participants, store.Tokens, store.Registrations)

	cmd, args := flag.Arg(0), flag.Args()[1:]
	switch cmd {
	case "bootstrap":
		err = runBootstrap(ctx, registrations, args)
	case "issue-token":
		err = runIssueToken(ctx, registrations, args)
	case "list-participants":
		err = runListParticipants(ctx, store)
	default:
		flag.Usage()
		err = fmt.Errorf("unknown command %q", cmd)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		store.Close()
		os.Exit(1)
	}
}

func runBootstrap(ctx context.Context, svc service.RegistrationService, args []string) error {
	fs := flag.NewFlagSet("bootstrap", flag.ExitOnError)
	id := fs.Int64("id", 0, "participant id (chat identifier)")
	name := fs.String("name", "", "full name")
	dept := fs.String("department", "", "department")
	pos := fs.String("position", "", "position")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id <= 0 {
		return errors.New("-id is required")
	}

	p, err := svc.Bootstrap(ctx, *id, domain.Profile{FullName: *name, Department: *dept, Position: *pos})
	if err != nil {
		return err
	}
	fmt.Printf("Participant %d (%s) is now elevated\n", p.ID, p.FullName)
	return nil
}

func runIssueToken(ctx context.Context, svc service.RegistrationService, args []string) error {
	fs := flag.NewFlagSet("issue-token", flag.ExitOnError)
	elevated := fs.Bool("elevated", false, "redeeming the token grants the elevated role")
	if err := fs.Parse(args); err != nil {
		return err
	}

	token, err := svc.IssueOperatorToken(ctx, *elevated)
	if err != nil {
		return err
	}
	fmt.Println(token.Code)
	return nil
}

func runListParticipants(ctx context.Context, store *sqldb.Store) error {
	list, err := store.Participants.List(ctx)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tDEPARTMENT\tPOSITION\tROLE")
	for _, p := range list {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", p.ID, p.FullName, p.Department, p.Position, p.Role)
	}
	return w.Flush()
}
