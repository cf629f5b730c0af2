package main

import (
	"fmt"
	"log"
	"os"

	awslambda "github.com/aws/aws-lambda-go/lambda"
	"github.com/stahnma/gh-repo-search/internal/commands"
	"github.com/stahnma/gh-repo-search/internal/config"
	lambdapkg "github.com/stahnma/gh-repo-search/internal/lambda"
	"github.com/stahnma/gh-repo-search/internal/logging"
)

var (
	GitSHA   string
	GitDirty string
)

func main() {
	cfg, err := config.Load(os.Getenv("ENV_FILE"))
	if err != nil {
		log.Fatalf("Error loading environment: %v", err)
	}
	logging.Init(os.Stderr, cfg.DebugMode)

	app, err := commands.NewApp(cfg, GitSHA, GitDirty)
	if err != nil {
		log.Fatalf("Error initializing application: %v", err)
	}

	if os.Getenv("LAMBDA_TASK_ROOT") != "" {
		awslambda.Start(lambdapkg.NewHandler(app))
		return
	}

	rootCmd := app.NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
