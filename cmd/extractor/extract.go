package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/feldges/data-extractor/internal/config"
	"github.com/feldges/data-extractor/internal/extract"
	"github.com/feldges/data-extractor/internal/jobs"
	"github.com/feldges/data-extractor/internal/llm"
	"github.com/feldges/data-extractor/internal/store"
)

var extractCmd = &cobra.Command{
	Use:   "extract <pdf>",
	Short: "Run one extraction synchronously",
	Long:  `Extract structured company data from a PDF file, persist the snapshot and print the new company identifier.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if cfg.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	pdf, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	if !extract.IsPDF(pdf) {
		return fmt.Errorf("%s is not a PDF file", args[0])
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	client, err := llm.NewGeminiClient(ctx, llm.DefaultConfig().WithModel(cfg.Model), cfg.APIKey)
	if err != nil {
		return fmt.Errorf("failed to create Gemini client: %w", err)
	}
	defer client.Close()

	snapshots := store.NewFSStore(cfg.SnapshotDir())
	docs := store.NewDocumentStore(cfg.DocumentDir())
	engine := extract.NewEngine(client, snapshots, docs)

	id := jobs.NewCompanyID()
	if err := docs.Save(id, pdf); err != nil {
		return err
	}
	if err := engine.Extract(ctx, id); err != nil {
		return err
	}

	fmt.Println(id)
	return nil
}
