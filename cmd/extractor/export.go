package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/feldges/data-extractor/internal/config"
	"github.com/feldges/data-extractor/internal/export"
)

var (
	exportXLSXPath string
	exportField    string
)

var exportCmd = &cobra.Command{
	Use:   "export <company-id>",
	Short: "Export a company field as clipboard text",
	Long:  `Print the copy text for one field of a persisted company (default: the financial table as a tab-separated block), or write the financials to an XLSX workbook.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportField, "field", "financials", "Field to export (name, description, strategy, business_model, market, clients, products, financials)")
	exportCmd.Flags().StringVar(&exportXLSXPath, "xlsx", "", "Write the financial table to this XLSX file instead of printing")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	snapshots, err := openSnapshotStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer snapshots.Close()

	c, err := snapshots.Load(ctx, args[0])
	if err != nil {
		return err
	}

	if exportXLSXPath != "" {
		data, err := export.FinancialsXLSX(c.Financials)
		if err != nil {
			return err
		}
		if err := os.WriteFile(exportXLSXPath, data, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", exportXLSXPath, err)
		}
		return nil
	}

	field, err := export.ParseField(exportField)
	if err != nil {
		return err
	}
	text, err := export.CopyText(c, field)
	if err != nil {
		return err
	}
	fmt.Print(text)
	if field != export.FieldFinancials {
		fmt.Println()
	}
	return nil
}
