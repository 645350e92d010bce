package main

import (
	"context"
	"log"
	"os"

	"github.com/rs/zerolog"

	"github.com/rvault/recipevault/internal/accounts"
	"github.com/rvault/recipevault/internal/buildinfo"
	"github.com/rvault/recipevault/internal/cli"
	"github.com/rvault/recipevault/internal/config"
	"github.com/rvault/recipevault/internal/gateway"
	"github.com/rvault/recipevault/internal/logging"
	"github.com/rvault/recipevault/internal/password"
	"github.com/rvault/recipevault/internal/recipes"
	"github.com/rvault/recipevault/internal/session"
	"github.com/rvault/recipevault/internal/token"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger := logging.NewZerologLogger(
		zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger(),
	)

	accountRepo := accounts.NewMemoryRepository()
	recipeRepo := recipes.NewMemoryRepository()
	accountService := accounts.NewService(accountRepo, password.NewArgon2())

	g := gateway.NewGateway(
		accountService,
		recipeRepo,
		token.NewService([]byte(cfg.SecretKey)),
		cfg,
		logger,
	)

	if err := seedDemoData(ctx, accountService, recipeRepo); err != nil {
		log.Fatalf("seeding demo data: %v", err)
	}

	app := cli.NewApp(session.NewSession(g), logger)
	app.Run(ctx)
}

// seedDemoData creates a ready-made account with one recipe so the REPL has
// something to log in to on first run.
func seedDemoData(ctx context.Context, as *accounts.Service, rr recipes.Repository) error {
	account, err := as.Register(ctx, "cristian@rojas.fr", []byte("1234"))
	if err != nil {
		return err
	}
	_, err = rr.Create(ctx, &recipes.Recipe{OwnerID: account.ID, Name: "Hot Dog de Chocolate"})
	return err
}
