package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/harrisonrobin/orgsync/pkg/config"
	"github.com/harrisonrobin/orgsync/pkg/storage"
	"github.com/harrisonrobin/orgsync/pkg/sync"
	"github.com/harrisonrobin/orgsync/pkg/todoist"
)

func main() {
	down := flag.Bool("down", false, "Replace the outline with the remote projects and tasks")
	up := flag.Bool("up", false, "Create remote tasks for outline entries that have no ID yet")
	file := flag.String("file", "", "Outline file to sync (overrides config)")
	setFile := flag.String("set-file", "", "Set the default outline file and exit")
	verbose := flag.Bool("verbose", false, "Enable debug logging")
	flag.Parse()

	if *setFile != "" {
		cfg, err := config.Load()
		if err != nil {
			cfg = &config.Config{}
		}
		cfg.Outline = *setFile
		if err := config.Save(cfg); err != nil {
			log.Fatalf("Error saving config: %v", err)
		}
		fmt.Printf("Default outline file set to: %s\n", *setFile)
		return
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	outlinePath := cfg.Outline
	if *file != "" {
		outlinePath = *file
	}
	if outlinePath == "" {
		log.Fatal("No outline file configured. Use -file or -set-file.")
	}
	if cfg.Token == "" {
		log.Fatal("TODOIST_TOKEN is not set")
	}
	if !*down && !*up {
		flag.Usage()
		os.Exit(2)
	}

	logCfg := zap.NewDevelopmentConfig()
	if !*verbose {
		logCfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	} else {
		logCfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	logger, err := logCfg.Build()
	if err != nil {
		log.Fatalf("Error building logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()
	client := todoist.NewClient(ctx, cfg.Token, cfg.BaseURL)
	engine := sync.NewEngine(client, storage.NewFile(outlinePath), logger)

	// Upload before download so a following download picks up the
	// identifiers the remote just assigned.
	if *up {
		res, err := engine.Upload(ctx)
		var partial *sync.PartialUploadError
		switch {
		case errors.As(err, &partial):
			for _, f := range res.Failures {
				logger.Error("task not created",
					zap.String("content", f.Task.Content),
					zap.Error(f.Err))
			}
			if !*down {
				log.Fatalf("Upload incomplete: %d created, %d failed", len(res.Created), len(res.Failures))
			}
		case err != nil:
			log.Fatalf("Upload failed: %v", err)
		default:
			fmt.Printf("Created %d task(s)\n", len(res.Created))
		}
	}

	if *down {
		if err := engine.Download(ctx); err != nil {
			log.Fatalf("Download failed: %v", err)
		}
		fmt.Printf("Outline written to %s\n", outlinePath)
	}
}
