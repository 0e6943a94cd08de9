package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/joho/godotenv"
	flag "github.com/spf13/pflag"

	"github.com/courtside-live/livestats/internal/compose"
	"github.com/courtside-live/livestats/internal/config"
	"github.com/courtside-live/livestats/internal/domain"
	"github.com/courtside-live/livestats/internal/engine"
	"github.com/courtside-live/livestats/internal/logging"
	"github.com/courtside-live/livestats/internal/server"
)

const appVersion = "dev"

func main() {
	var (
		envFile   = flag.String("env-file", "", "load environment variables from this file")
		feedAddr  = flag.String("feed-addr", "", "feed host:port (overrides FEED_ADDR)")
		debug     = flag.Bool("debug", false, "log full payloads on handler failures")
		statlines = flag.Bool("statlines", false, "print player stat lines after each box score")
	)
	flag.Parse()

	if *envFile != "" {
		if err := godotenv.Load(*envFile); err != nil {
			fmt.Fprintf(os.Stderr, "load %s: %v\n", *envFile, err)
			os.Exit(1)
		}
	} else {
		// Best effort; a missing .env is fine.
		_ = godotenv.Load()
	}

	cfg := config.Load()
	if *feedAddr != "" {
		cfg.Feed.Addr = *feedAddr
	}
	if *debug {
		cfg.Debug = true
	}

	logger := logging.NewLogger(logging.Config{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Service: "livestats-feed",
		Version: appVersion,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg, logger, func(line string) {
		fmt.Println(line)
	})

	if *statlines {
		srv.Engine().Subscribe(engine.KindBoxScore, printStatlines)
	}

	srv.Run(ctx, stop)
}

// printStatlines dumps a stat line per rostered player, home team first.
func printStatlines(game *domain.Game) {
	for _, team := range []*domain.Team{game.HomeTeam, game.AwayTeam} {
		if team == nil {
			continue
		}
		numbers := make([]int, 0, len(team.Players))
		for number := range team.Players {
			numbers = append(numbers, number)
		}
		sort.Ints(numbers)
		for _, number := range numbers {
			player := team.Players[number]
			fmt.Printf("%s (%s): %s\n", player.FullName(), team.Code, compose.PlayerStatline(player))
		}
	}
}
