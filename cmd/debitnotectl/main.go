// cmd/debitnotectl/main.go
//
// debitnotectl is the offline companion to the HTTP service: it runs the same
// extraction pipeline over a workbook on disk and writes one debit note PDF
// per supplier.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"debitnote-service/internal/config"
	"debitnote-service/internal/core/debitnote"
	"debitnote-service/internal/core/document"
)

const version = "1.0.0"

var (
	cfgFile  string
	outDir   string
	supplier string
)

var rootCmd = &cobra.Command{
	Use:   "debitnotectl",
	Short: "Extract supplier debit notes from a procurement workbook",
	Long: `debitnotectl detects the business columns of a procurement/invoice
workbook despite inconsistent header naming, computes the debit owed by each
supplier and writes a debit note PDF per supplier.`,
}

var processCmd = &cobra.Command{
	Use:   "process <workbook>",
	Short: "Process a workbook and write debit note PDFs",
	Args:  cobra.ExactArgs(1),
	RunE:  runProcess,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the debitnotectl version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("debitnotectl " + version)
	},
}

func init() {
	processCmd.Flags().StringVar(&cfgFile, "config", "", "Path to the YAML configuration file")
	processCmd.Flags().StringVarP(&outDir, "out", "o", ".", "Directory the PDFs are written to")
	processCmd.Flags().StringVarP(&supplier, "supplier", "s", "", "Generate a note for this supplier only")
	rootCmd.AddCommand(processCmd)
	rootCmd.AddCommand(versionCmd)
}

func runProcess(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	svc := debitnote.NewServiceFromConfig(cfg)

	file, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open workbook: %w", err)
	}
	defer file.Close()

	result, err := svc.ProcessWorkbook(file, args[0])
	if err != nil {
		return err
	}

	diag := result.Diagnostics
	fmt.Printf("Loaded %d rows. Header (Debit): %s. Rows with explicit debit: %d. Found %d supplier(s) requiring debit.\n",
		diag.RowCount, diag.DebitHeader, diag.ExplicitDebitRows, diag.SupplierCount)
	for field, header := range diag.Suggestions {
		fmt.Printf("Hint: no column matched %q; closest header is %q\n", field, header)
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	names := result.Aggregation.Order
	if supplier != "" {
		names = []string{supplier}
	}
	for _, name := range names {
		pdf, err := svc.GenerateNote(result, name)
		if err != nil {
			return err
		}
		path := filepath.Join(outDir, document.NoteFileName(name))
		if err := os.WriteFile(path, pdf, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		fmt.Printf("Wrote %s\n", path)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
