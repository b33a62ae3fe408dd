package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/oilwatch/backend/config"
	"github.com/oilwatch/backend/internal/infrastructure/store"
	"github.com/oilwatch/backend/internal/usecase"
)

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: pip <command>

Commands:
  generate   extract a deduplicated PIP reference list from the encyclopedia
  merge      write PIP URLs from the reference list back into the encyclopedia
`)
	os.Exit(2)
}

func main() {
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 1 {
		usage()
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	switch flag.Arg(0) {
	case "generate":
		generate(cfg)
	case "merge":
		merge(cfg)
	default:
		usage()
	}
}

func generate(cfg *config.Config) {
	entries := store.LoadEncyclopedia(cfg.Files.Encyclopedia)
	if len(entries) == 0 {
		log.Fatalf("No entries in %s (run the enricher first)", cfg.Files.Encyclopedia)
	}

	index := usecase.GeneratePIPIndex(entries)
	if err := store.SavePIPIndex(cfg.Files.PIPIndex, index); err != nil {
		log.Fatalf("Failed to save PIP index: %v", err)
	}

	fmt.Printf("Success! Generated %s with %d entries.\n", cfg.Files.PIPIndex, len(index))
}

func merge(cfg *config.Config) {
	entries := store.LoadEncyclopedia(cfg.Files.Encyclopedia)
	if len(entries) == 0 {
		log.Fatalf("No entries in %s (run the enricher first)", cfg.Files.Encyclopedia)
	}

	index, err := store.LoadPIPIndex(cfg.Files.PIPIndex)
	if err != nil {
		log.Fatalf("Failed to load PIP index: %v", err)
	}

	merged, updated, missing := usecase.MergePIPIndex(entries, index)
	if err := store.SaveEncyclopedia(cfg.Files.Encyclopedia, merged); err != nil {
		log.Fatalf("Failed to save encyclopedia: %v", err)
	}

	usecase.WriteMergeSummary(os.Stdout, len(merged), updated, missing)
	fmt.Println("Done.")
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
