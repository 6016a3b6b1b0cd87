package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"

	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/ironsheep/xstitch/internal/floss"
	"github.com/ironsheep/xstitch/internal/logging"
	"github.com/ironsheep/xstitch/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

var (
	catalogFile = kingpin.Flag("catalog", "CSV floss catalog with Floss#,Description,Red,Green,Blue columns. Defaults to the built-in DMC table.").
			Envar("XSTITCH_CATALOG").String()
	verbose = kingpin.Flag("verbose", "Enable debug logging (same as "+logging.LevelEnv+"=debug).").Short('v').Bool()
)

func main() {
	kingpin.CommandLine.Help = "MCP server for cross-stitch pattern generation. " +
		"Speaks JSON-RPC 2.0 over stdin/stdout; logs go to stderr."
	kingpin.Version(fmt.Sprintf("xstitch-mcp %s (built %s, commit %s)", Version, BuildTime, GitCommit))
	kingpin.Parse()

	// stdout carries the protocol
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	if *verbose {
		logging.EnableDebug()
	}
	if logging.DebugEnabled() {
		log.Printf("Cross-stitch MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	catalog, err := loadCatalog(*catalogFile)
	if err != nil {
		log.Fatalf("Catalog error: %v", err)
	}
	log.Printf("Serving %d flosses", catalog.Len())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	server.Version = Version
	if err := server.New(catalog).Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("Server error: %v", err)
	}
}

func loadCatalog(path string) (*floss.Catalog, error) {
	if path == "" {
		return floss.Default()
	}
	return floss.LoadFile(path)
}
