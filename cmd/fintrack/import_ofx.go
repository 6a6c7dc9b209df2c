package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/Sharma7422/fintrack/internal/cli"
	"github.com/Sharma7422/fintrack/internal/model"
	"github.com/Sharma7422/fintrack/internal/ofx"
)

func importCmd() *cobra.Command {
	var (
		dryRun   bool
		category string
	)

	cmd := &cobra.Command{
		Use:   "import [files...]",
		Short: "Import records from OFX/QFX bank statements",
		Long: `Import records from OFX or QFX (Quicken) files exported from your bank.

Each statement entry becomes a record draft: debits as expenses, credits
as income. Every draft is sent through the normal add path, so the server
assigns identities and the imported rows show up everywhere immediately.

Examples:
  # Import a single file
  fintrack import ~/Downloads/chase_jan_2024.qfx

  # Import everything a bank exported
  fintrack import ~/Downloads/chase_*.qfx`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			files, err := expandPatterns(args)
			if err != nil {
				return err
			}
			if len(files) == 0 {
				return fmt.Errorf("no files found to import")
			}

			parser := ofx.NewParser()
			var drafts []model.RecordDraft
			for _, file := range files {
				f, err := os.Open(file)
				if err != nil {
					return fmt.Errorf("failed to open %s: %w", file, err)
				}
				parsed, err := parser.ParseStatement(f, category)
				_ = f.Close()
				if err != nil {
					return fmt.Errorf("failed to parse %s: %w", file, err)
				}
				slog.Info("parsed statement", "file", file, "records", len(parsed))
				drafts = append(drafts, parsed...)
			}

			if len(drafts) == 0 {
				cmd.Println(cli.SubtleStyle.Render("Statements contained no entries."))
				return nil
			}
			if dryRun {
				for _, d := range drafts {
					cmd.Printf("%s  %-28s %-16s %s $%.2f\n",
						d.Date.Format("2006-01-02"), clip(d.Title, 28), clip(d.Category, 16), d.Type, d.Amount)
				}
				cmd.Println(cli.FormatInfo(fmt.Sprintf("%d records would be imported", len(drafts))))
				return nil
			}

			state, client, err := initSignedIn()
			if err != nil {
				return err
			}
			defer func() { _ = state.Close() }()

			records := initRecordStore(client)
			bar := progressbar.Default(int64(len(drafts)), "importing")
			imported := 0
			for _, draft := range drafts {
				if _, err := records.Add(ctx, draft); err != nil {
					return fmt.Errorf("import stopped after %d records: %w", imported, err)
				}
				imported++
				_ = bar.Add(1)
			}

			cmd.Println(cli.FormatSuccess(fmt.Sprintf("Imported %d records from %d files", imported, len(files))))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&dryRun, "dry-run", "d", false, "preview the import without saving")
	cmd.Flags().StringVar(&category, "category", "Uncategorized", "category assigned to imported records")
	return cmd
}

// expandPatterns resolves globs, keeping literal paths that exist.
func expandPatterns(patterns []string) ([]string, error) {
	var files []string
	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %s: %w", pattern, err)
		}
		if len(matches) == 0 {
			if _, statErr := os.Stat(pattern); statErr == nil {
				files = append(files, pattern)
			} else {
				slog.Warn("no files found matching pattern", "pattern", pattern)
			}
			continue
		}
		files = append(files, matches...)
	}
	return files, nil
}
