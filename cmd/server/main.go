package main

import (
	"context"
	"log"
	"os"

	"github.com/itnewcomer/Memento/internal/server"
	"github.com/itnewcomer/Memento/internal/server/config"
)

func main() {
	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := server.NewApp(ctx, cfg)

	if err != nil {
		log.Printf("%v", err)
		return
	}

	if cfg.IssueToken {
		if err := app.IssueToken(os.Stdout); err != nil {
			log.Printf("%v", err)
		}
		if err := app.Close(); err != nil {
			log.Printf("%v", err)
		}
		return
	}

	app.Run(ctx)
}
