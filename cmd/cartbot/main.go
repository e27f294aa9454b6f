// Package main is the entry point for the cartbot Telegram bot.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"cartbot/internal/bot"
	"cartbot/internal/chat/telegram"
	"cartbot/internal/commands"
	"cartbot/internal/config"
	"cartbot/internal/list"
	"cartbot/internal/session"
	"cartbot/internal/store"
)

func main() {
	// Create context that cancels on interrupt
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load configuration: %v", err)
	}

	tg, err := telegram.New(cfg.Token, cfg.Debug)
	if err != nil {
		log.Fatalf("connect to Telegram: %v", err)
	}

	items := list.New(store.New(cfg.StoragePath))
	b := bot.New(cfg, tg, items, session.NewTracker(), commands.DefaultRegistry)

	log.Printf("cartbot %s running, list stored in %s", bot.Version, cfg.StoragePath)
	b.Run(ctx, tg.Updates(ctx))
}
