package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zskulcsar/code-duplication-scanner/internal/config"
	"github.com/zskulcsar/code-duplication-scanner/internal/obfuscate"
)

// sourceExt is the obfuscator's source file extension. This command does
// its own minimal file discovery; a richer ignore-rule-filtered copy into
// outputDir can layer on top without changing the orchestrator.
const sourceExt = ".py"

func newObfuscateCmd() *cobra.Command {
	var (
		input   string
		output  string
		dryRun  bool
		cfgPath string
	)

	cmd := &cobra.Command{
		Use:   "obfuscate",
		Short: "Rename every project-owned identifier to an opaque token",
		Long: `obfuscate indexes --input, builds the deterministic rename map, and writes
the transformed project to --output. --input and --output must not be the
same directory and must not nest; --output must not already exist as a
non-empty directory.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runObfuscate(input, output, cfgPath, dryRun)
		},
	}

	cmd.Flags().StringVar(&input, "input", "", "directory containing the project to obfuscate")
	cmd.Flags().StringVar(&output, "output", "", "directory to write the transformed project to")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "compute and validate the transform without writing any file")
	cmd.Flags().StringVar(&cfgPath, "config", "", "project root to load .pyobfuscate/config.yaml from (default: output)")
	cmd.MarkFlagRequired("input")
	cmd.MarkFlagRequired("output")

	return cmd
}

func runObfuscate(input, output, cfgPath string, dryRun bool) error {
	if err := validateDirs(input, output); err != nil {
		return err
	}

	if cfgPath == "" {
		cfgPath = output
	}
	cfg, err := config.LoadWithEnv(cfgPath, os.Getenv)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if !dryRun {
		if err := copyTree(input, output); err != nil {
			return fmt.Errorf("copy project: %w", err)
		}
	}

	walkRoot := output
	if dryRun {
		walkRoot = input
	}
	files, err := discoverSources(walkRoot)
	if err != nil {
		return fmt.Errorf("discover sources: %w", err)
	}

	summary := obfuscate.NewOrchestrator().TransformWithOptions(walkRoot, files, obfuscate.Options{DryRun: dryRun})
	printSummary(summary, cfg)
	if summary.Failed {
		return summary.Err
	}
	return nil
}

// validateDirs enforces the CLI's own validation rules: input must exist,
// output must not already be a non-empty directory, and neither may nest
// inside the other.
func validateDirs(input, output string) error {
	in, err := filepath.Abs(input)
	if err != nil {
		return err
	}
	info, err := os.Stat(in)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("input %q is not a directory", input)
	}

	out, err := filepath.Abs(output)
	if err != nil {
		return err
	}
	if entries, err := os.ReadDir(out); err == nil && len(entries) > 0 {
		return fmt.Errorf("output %q already exists and is not empty", output)
	}

	rel, err := filepath.Rel(in, out)
	if err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return fmt.Errorf("output %q must not be nested inside input %q", output, input)
	}
	rel, err = filepath.Rel(out, in)
	if err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return fmt.Errorf("input %q must not be nested inside output %q", input, output)
	}
	return nil
}

func copyTree(src, dst string) error {
	return filepath.WalkDir(src, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		return copyFile(path, target)
	})
}

func copyFile(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	_, err = io.Copy(out, in)
	return err
}

// discoverSources walks root for Python source files, returning
// project-relative forward-slash paths in the shape the Orchestrator
// expects. It does not apply .gitignore rules.
func discoverSources(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == ".git" || d.Name() == "__pycache__" || d.Name() == ".pyobfuscate" {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(path, sourceExt) {
			rel, err := filepath.Rel(root, path)
			if err != nil {
				return err
			}
			files = append(files, filepath.ToSlash(rel))
		}
		return nil
	})
	return files, err
}

func printSummary(s *obfuscate.TransformSummary, cfg *config.Config) {
	fmt.Printf("run_id=%s\n", s.RunID)
	fmt.Printf("python_files_discovered=%d python_files_processed=%d python_files_unchanged=%d\n",
		s.PythonFilesDiscovered, s.PythonFilesProcessed, s.PythonFilesUnchanged)
	fmt.Printf("symbols_discovered=%d symbols_renamed=%d symbols_skipped_external=%d symbols_renamed_likely_local=%d dynamic_name_rewrites=%d\n",
		s.SymbolsDiscovered, s.SymbolsRenamed, s.SymbolsSkippedExternal, s.SymbolsRenamedLikelyLocal, s.DynamicNameRewrites)
	if cfg.WarnLevel != "error" {
		for _, w := range s.Warnings {
			fmt.Printf("warning: %s:%d:%d %s: %s\n", w.File, w.Line, w.Column, w.Symbol, w.Message)
		}
	}
	if s.Failed {
		fmt.Printf("status=failure error=%v\n", s.Err)
		return
	}
	fmt.Println("status=success")
}
