package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"rosterfill/core/config"
	"rosterfill/core/logger"
	"rosterfill/core/match"
	"rosterfill/core/output"
	"rosterfill/core/tabio"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the match command
	referencePath string
	targetPath    string
	referenceKey  string
	targetKey     string
	copySpecs     []string
	outputPath    string
	exportFormat  string
	reportFormat  string
	yesConfirm    bool
)

// matchCmd joins the target roster against the reference list and exports
// the filled result.
var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Fill the target roster from the reference list and export it",
	Long: `Match every row of the target roster against the reference list by key
column and copy the configured reference columns into the output.

Any parameter not given as a flag is collected interactively on a terminal:
pick files, pick key columns, configure column mappings, choose the output
format.

Examples:
  # Fully interactive session
  rosterfill match

  # Copy name over the dept column, append phone as a new column
  rosterfill match -r full.xlsx -t masked.csv \
    --reference-key id --target-key uid \
    -c name=dept -c phone

  # Non-interactive export to CSV, overwriting an existing output file
  rosterfill match -r full.xlsx -t masked.csv \
    --reference-key id --target-key uid -c name -f csv -o filled.csv --yes`,
	RunE: runMatch,
}

func init() {
	matchCmd.Flags().StringVarP(&referencePath, "reference", "r", "", "Path to the complete reference list (csv/xlsx)")
	matchCmd.Flags().StringVarP(&targetPath, "target", "t", "", "Path to the roster being filled (csv/xlsx)")
	matchCmd.Flags().StringVar(&referenceKey, "reference-key", "", "Join key column in the reference list")
	matchCmd.Flags().StringVar(&targetKey, "target-key", "", "Join key column in the target roster")
	matchCmd.Flags().StringArrayVarP(&copySpecs, "copy", "c", nil, "Column to copy: SRC appends a new column, SRC=DST overwrites DST (repeatable)")
	matchCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: target path with the configured suffix)")
	matchCmd.Flags().StringVarP(&exportFormat, "format", "f", "", "Export format, xlsx or csv (default from config)")
	matchCmd.Flags().StringVar(&reportFormat, "report", "", "Report format: table, json or yaml (default: auto-detect)")
	matchCmd.Flags().BoolVarP(&yesConfirm, "yes", "y", false, "Overwrite the output file without confirmation")

	RootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, args []string) error {
	start := time.Now()

	// Load configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	l = logger.WithRunID(l, uuid.NewString())

	report, err := output.ParseFormat(reportFormat)
	if err != nil {
		return err
	}

	in := bufio.NewReader(os.Stdin)

	refPath, err := ensurePath(in, referencePath, "complete reference list", "reference")
	if err != nil {
		return err
	}
	tgtPath, err := ensurePath(in, targetPath, "target roster", "target")
	if err != nil {
		return err
	}

	reference, err := tabio.Load(refPath, cfg.Files)
	if err != nil {
		return fmt.Errorf("failed to load reference list: %w", err)
	}
	l.Info("Loaded reference list",
		zap.String("path", refPath),
		zap.Int("rows", reference.Len()),
		zap.Int("columns", reference.Columns()),
	)

	target, err := tabio.Load(tgtPath, cfg.Files)
	if err != nil {
		return fmt.Errorf("failed to load target roster: %w", err)
	}
	l.Info("Loaded target roster",
		zap.String("path", tgtPath),
		zap.Int("rows", target.Len()),
		zap.Int("columns", target.Columns()),
	)

	refKey, err := ensureKey(in, referenceKey, "reference list", reference.Headers, "reference-key")
	if err != nil {
		return err
	}
	tgtKey, err := ensureKey(in, targetKey, "target roster", target.Headers, "target-key")
	if err != nil {
		return err
	}

	mappings, err := collectMappings(in, copySpecs, reference.Headers, target.Headers)
	if err != nil {
		return err
	}

	spec := match.Spec{
		Reference:    reference,
		Target:       target,
		ReferenceKey: refKey,
		TargetKey:    tgtKey,
		Mappings:     mappings,
	}
	if err := spec.Validate(); err != nil {
		return err
	}

	plan := match.BuildPlan(target.Headers, spec.Mappings)
	if dups := plan.DuplicateWrites(); len(dups) > 0 {
		l.Warn("Multiple mappings write to the same column, the last one wins",
			zap.Strings("columns", dups))
	}

	outPath, err := chooseOutput(in, cfg, tgtPath)
	if err != nil {
		return err
	}

	if _, err := os.Stat(outPath); err == nil {
		ok, err := confirmOverwrite(in, outPath)
		if err != nil {
			return err
		}
		if !ok {
			l.Warn("Export cancelled, nothing was written", zap.String("output", outPath))
			return nil
		}
	}

	result := match.Run(spec, plan)

	if err := tabio.Save(outPath, result.Output, cfg.Files); err != nil {
		return fmt.Errorf("failed to save output: %w", err)
	}

	l.Info("Export complete",
		zap.String("output", outPath),
		zap.Int("total", result.Summary.Total),
		zap.Int("matched", result.Summary.Matched),
		zap.Int("unmatched", result.Summary.Unmatched),
		zap.Duration("duration", time.Since(start)),
	)

	formatter := output.NewFormatter(output.DetectFormat(string(report)))
	return formatter.Format(os.Stdout, matchReport{
		ReferencePath: refPath,
		TargetPath:    tgtPath,
		OutputPath:    outPath,
		Format:        strings.TrimPrefix(strings.ToLower(filepath.Ext(outPath)), "."),
		Total:         result.Summary.Total,
		Matched:       result.Summary.Matched,
		Unmatched:     result.Summary.Unmatched,
		Appended:      plan.Added,
		Duration:      time.Since(start).Round(time.Millisecond).String(),
	})
}

// matchReport is the operator-facing summary of one export run.
type matchReport struct {
	ReferencePath string   `json:"reference_path"`
	TargetPath    string   `json:"target_path"`
	OutputPath    string   `json:"output_path"`
	Format        string   `json:"format"`
	Total         int      `json:"total_rows"`
	Matched       int      `json:"matched_rows"`
	Unmatched     int      `json:"unmatched_rows"`
	Appended      []string `json:"appended_columns,omitempty"`
	Duration      string   `json:"duration"`
}

// collectMappings turns --copy flags into mapping entries, or runs the
// interactive mapping editor when none were given.
func collectMappings(in *bufio.Reader, specs []string, refHeaders, targetHeaders []string) ([]match.Mapping, error) {
	if len(specs) > 0 {
		mappings := make([]match.Mapping, 0, len(specs))
		for _, s := range specs {
			m, err := parseCopySpec(s)
			if err != nil {
				return nil, err
			}
			mappings = append(mappings, m)
		}
		return mappings, nil
	}
	if !stdinIsTerminal() {
		return nil, errors.New("no column mappings: pass at least one --copy or run interactively")
	}
	return editMappings(in, refHeaders, targetHeaders)
}

// parseCopySpec parses one --copy value. Bare SRC appends a new column
// named after the source; SRC=DST overwrites the existing column DST.
func parseCopySpec(s string) (match.Mapping, error) {
	src, dst, found := strings.Cut(s, "=")
	src = strings.TrimSpace(src)
	dst = strings.TrimSpace(dst)
	if src == "" {
		return match.Mapping{}, fmt.Errorf("invalid --copy %q: source column is empty", s)
	}
	if !found || dst == "" {
		return match.Mapping{Source: src, Mode: match.ModeAppend}, nil
	}
	return match.Mapping{Source: src, Destination: dst, Mode: match.ModeOverwrite}, nil
}

// newColumnOption is the destination picker entry standing in for "append a
// new column named after the source".
const newColumnOption = "(new column)"

// editMappings walks the operator through mapping rows: pick the reference
// column to take values from, pick the target column to write into (or a
// new column), pick the fill mode.
func editMappings(in *bufio.Reader, refHeaders, targetHeaders []string) ([]match.Mapping, error) {
	destinations := append([]string{newColumnOption}, targetHeaders...)

	var mappings []match.Mapping
	for {
		src, err := promptChoice(in, "Reference column to copy from:", refHeaders, 0)
		if err != nil {
			return nil, err
		}

		dst, err := promptChoice(in, "Target column to write into:", destinations, 0)
		if err != nil {
			return nil, err
		}

		m := match.Mapping{Source: src, Mode: match.ModeAppend}
		if dst != newColumnOption {
			mode, err := promptChoice(in, "Fill mode:",
				[]string{string(match.ModeOverwrite), string(match.ModeAppend)}, 0)
			if err != nil {
				return nil, err
			}
			m = match.Mapping{Source: src, Destination: dst, Mode: match.Mode(mode)}
		}
		mappings = append(mappings, m)

		more, err := promptYesNo(in, "Add another mapping?", false)
		if err != nil {
			return nil, err
		}
		if !more {
			return mappings, nil
		}
	}
}

// chooseOutput resolves the output path, collecting format and path
// interactively when not given as flags: a format choice plus a pre-filled
// output filename.
func chooseOutput(in *bufio.Reader, cfg *config.Config, targetPath string) (string, error) {
	name := exportFormat
	if name == "" {
		name = cfg.Files.Format
	}
	format, err := tabio.ParseFormat(name)
	if err != nil {
		return "", err
	}

	if outputPath != "" {
		return outputPath, nil
	}

	interactive := stdinIsTerminal()
	if interactive && exportFormat == "" {
		def := 0
		if format == tabio.FormatCSV {
			def = 1
		}
		choice, err := promptChoice(in, "Output format:",
			[]string{string(tabio.FormatXLSX), string(tabio.FormatCSV)}, def)
		if err != nil {
			return "", err
		}
		format = tabio.Format(choice)
	}

	defaultPath := tabio.DefaultOutputPath(targetPath, format, cfg.Files.Suffix)
	if !interactive {
		return defaultPath, nil
	}
	path, err := promptLine(in, fmt.Sprintf("Output path [%s]: ", defaultPath))
	if err != nil {
		return "", err
	}
	if path == "" {
		return defaultPath, nil
	}
	return path, nil
}

// confirmOverwrite prompts before replacing an existing output file, or
// uses the --yes flag.
func confirmOverwrite(in *bufio.Reader, path string) (bool, error) {
	if yesConfirm {
		return true, nil
	}
	if !stdinIsTerminal() {
		return false, fmt.Errorf("output file %s already exists: pass --yes to overwrite", path)
	}
	answer, err := promptLine(in, fmt.Sprintf("Output file %s exists. Type 'yes' to overwrite: ", path))
	if err != nil {
		return false, err
	}
	return answer == "yes", nil
}
