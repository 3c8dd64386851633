/* main.go
 * The "main" method for running the bot. Configuration is read from the environment, see config/config.go
 * Usage: go run main.go -test="<true|false>"
 */

package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"ducs-bot/bot"
	"ducs-bot/config"
	"ducs-bot/web"
)

func main() {
	//Flags
	testPtr := flag.String("test", "false", "Use main or test bot: takes true or false as argument")
	flag.Parse()

	beta, err := parseBoolFlag(*testPtr)
	if err != nil {
		slog.Error("invalid \"test\" flag, should be true or false", "value", *testPtr)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "err", err)
		os.Exit(1)
	}
	token, err := cfg.BotToken(beta)
	if err != nil {
		slog.Error("failed to load configuration", "err", err)
		os.Exit(1)
	}

	b, err := bot.NewBot(token, settingsFrom(cfg))
	if err != nil {
		slog.Error("failed to initialize bot", "err", err)
		os.Exit(1)
	}

	// keep bot running until there is an os interruption (ctrl + C)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.HTTPAddr != "" {
		go func() {
			if err := web.Start(ctx, web.Config{Addr: cfg.HTTPAddr, Status: b}); err != nil {
				slog.Error("HTTP server stopped", "err", err)
			}
		}()
	}

	if err := b.Run(ctx); err != nil {
		slog.Error("bot stopped", "err", err)
		os.Exit(1)
	}
}

// settingsFrom copies the community settings out of the loaded configuration
func settingsFrom(cfg config.Config) bot.Settings {
	return bot.Settings{
		EmailDomain:     cfg.EmailDomain,
		MemberRole:      cfg.MemberRole,
		ProcessChannels: cfg.ProcessChannels,
		PromptTimeout:   cfg.PromptTimeout,
		NoticeTTL:       cfg.NoticeTTL,
		ReplyTTL:        cfg.ReplyTTL,
	}
}

// parseBoolFlag converts a string of true or false into a boolean for comparisons
// Preconditions: Receives string containing either true or false (case insensitive)
// Postconditions: Returns boolean value or an error if the string is not true or false
func parseBoolFlag(str string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(str)) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, fmt.Errorf("invalid boolean string")
}
