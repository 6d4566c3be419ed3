package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/andyrewlee/mkbranch/internal/cli"
)

// Version info set by GoReleaser via ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cli.Run(ctx, os.Args[1:], version, commit, date)
	stop()
	os.Exit(code)
}
