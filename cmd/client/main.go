package main

import (
	"context"
	"log"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/skillsphere/internal/buildinfo"
	"github.com/dmitrijs2005/skillsphere/internal/client/cli"
	"github.com/dmitrijs2005/skillsphere/internal/client/client"
	"github.com/dmitrijs2005/skillsphere/internal/client/config"
	"github.com/dmitrijs2005/skillsphere/internal/client/services"
	"github.com/dmitrijs2005/skillsphere/internal/filex"
	"github.com/dmitrijs2005/skillsphere/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()

	cfg := config.LoadConfig()
	logger := logging.New(os.Stderr, cfg.LogLevel)

	dir, err := filex.EnsureDir(cfg.DataDir)
	if err != nil {
		log.Fatalf("%v", err)
	}

	db, err := client.InitDatabase(ctx, filepath.Join(dir, cfg.DatabaseFile))
	if err != nil {
		log.Fatalf("error initializing database: %v", err)
	}
	defer db.Close()

	api := client.NewHTTPClient(cfg.ServerURL, cfg.RequestTimeout, client.WithLogger(logger))

	app := cli.NewApp(cli.Deps{
		Client:          api,
		Auth:            services.NewAuthService(api),
		Prefs:           services.NewPreferenceService(db),
		Logger:          logger,
		NotificationTTL: cfg.NotificationTTL,
		In:              os.Stdin,
		Out:             os.Stdout,
	})

	app.Run(ctx)
}
