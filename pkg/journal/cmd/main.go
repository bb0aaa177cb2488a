package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/dmitrymomot/powerauth/pkg/config"
	"github.com/dmitrymomot/powerauth/pkg/journal"
	"github.com/dmitrymomot/powerauth/pkg/logger"
	"github.com/dmitrymomot/powerauth/pkg/outcome"
)

func main() {
	sessionID := flag.String("session", "", "session id to inspect")
	limit := flag.Int("limit", 50, "number of newest entries to show, 0 for all")
	flag.Parse()

	var logCfg logger.Config
	config.MustLoad(&logCfg)
	log := logger.New(logger.WithConfig(logCfg), logger.WithOutput(os.Stderr))

	if *sessionID == "" {
		log.Error("missing -session flag")
		os.Exit(2)
	}

	var redisCfg journal.RedisConfig
	config.MustLoad(&redisCfg)

	ctx, cancel := context.WithTimeout(context.Background(), redisCfg.ConnectTimeout+10*time.Second)
	defer cancel()

	client, err := journal.Connect(ctx, redisCfg)
	if err != nil {
		log.Error("failed to connect to redis", logger.Error(err))
		os.Exit(1)
	}
	defer client.Close()

	entries, err := journal.NewRedisStore(client, redisCfg).List(ctx, *sessionID, *limit)
	if err != nil {
		log.Error("failed to list journal", logger.SessionID(*sessionID), logger.Error(err))
		os.Exit(1)
	}

	for _, e := range entries {
		o := e.Outcome()
		fmt.Printf("%s  %-30s %-24s %-16s %s\n",
			e.At.Format(time.RFC3339), e.Op, o, o.Group(), e.ID)
	}

	summary := journal.Summarize(entries)
	fmt.Printf("\n%d entries: %d ok, %d programmer errors, %d security, %d runtime\n",
		len(entries),
		summary.Group(outcome.GroupSuccess),
		summary.Group(outcome.GroupProgrammerError),
		summary.Group(outcome.GroupSecurity),
		summary.Group(outcome.GroupRuntime),
	)
	if n := summary[outcome.WrongData]; n > 0 {
		fmt.Printf("warning: %d WrongData results, treat the device as suspicious\n", n)
	}
}
