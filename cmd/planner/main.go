package main

import (
	"context"
	"fmt"
	"os"

	"github.com/ahosmi/content-dashboard/internal/apiclient"
	"github.com/ahosmi/content-dashboard/internal/authclient"
	"github.com/ahosmi/content-dashboard/internal/config"
	"github.com/ahosmi/content-dashboard/internal/logger"
	"github.com/ahosmi/content-dashboard/internal/store"
	"github.com/ahosmi/content-dashboard/pkg"
	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

const usage = `planner - content dashboard client

Usage:
  planner register -name NAME -email EMAIL -password PASSWORD
  planner login -email EMAIL -password PASSWORD
  planner logout
  planner pull
  planner add -title TITLE -platform PLATFORM [-status STATUS] [-date YYYY-MM-DD] [-tags a,b] [-notes TEXT] [-remote]
  planner update -id ID [-title TITLE] [-platform PLATFORM] [-status STATUS] [-date YYYY-MM-DD] [-tags a,b] [-notes TEXT] [-remote]
  planner remove -id ID [-remote]
  planner list [-search TEXT] [-platforms a,b] [-statuses a,b]
  planner calendar [-month YYYY-MM] [-selected YYYY-MM-DD]
  planner suggest -topic TOPIC -platform PLATFORM [-url URL]
  planner history
  planner clear
`

// app bundles everything a subcommand needs.
type app struct {
	Logger *zap.Logger
	Config *config.ClientConfig
	Store  *store.Store
	Auth   *authclient.AuthStore
	API    *apiclient.Client
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cfg, err := config.LoadClient()
	if err != nil {
		fmt.Fprintf(os.Stderr, "planner: %v\n", err)
		os.Exit(1)
	}

	log, _ := logger.NewLogger(cfg.Env)
	defer log.Sync()

	a, err := newApp(cfg, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "planner: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	if err := a.run(ctx, os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "planner: %v\n", err)
		os.Exit(1)
	}
}

func newApp(cfg *config.ClientConfig, log *zap.Logger) (*app, error) {
	var crypto *pkg.Crypto
	if cfg.StateKey != "" {
		var err error
		crypto, err = pkg.NewCrypto(cfg.StateKey)
		if err != nil {
			return nil, err
		}
	}

	authPersister, err := authclient.NewFileStatePersister(cfg.StateDir, crypto)
	if err != nil {
		return nil, err
	}

	contentPersister, err := store.NewFilePersister(cfg.StateDir, store.ContentStorageKey)
	if err != nil {
		return nil, err
	}

	st := store.NewStore(log, contentPersister)
	st.Restore(contentPersister.Load())

	auth := authclient.NewAuthStore(log, authclient.NewHTTPAuthenticator(cfg.APIURL, nil), authPersister)

	api := apiclient.NewClient(cfg.APIURL, nil)
	api.SetToken(auth.Token())

	return &app{Logger: log, Config: cfg, Store: st, Auth: auth, API: api}, nil
}

func (a *app) run(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "register":
		return a.cmdRegister(ctx, args)
	case "login":
		return a.cmdLogin(ctx, args)
	case "logout":
		a.Auth.Logout()
		fmt.Println("signed out")
		return nil
	case "pull":
		return a.cmdPull(ctx)
	case "add":
		return a.cmdAdd(ctx, args)
	case "update":
		return a.cmdUpdate(ctx, args)
	case "remove":
		return a.cmdRemove(ctx, args)
	case "list":
		return a.cmdList(args)
	case "calendar":
		return a.cmdCalendar(args)
	case "suggest":
		return a.cmdSuggest(ctx, args)
	case "history":
		return a.cmdHistory()
	case "clear":
		a.Store.ClearAll()
		fmt.Println("local data cleared")
		return nil
	case "help", "-h", "--help":
		fmt.Print(usage)
		return nil
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", cmd)
	}
}
