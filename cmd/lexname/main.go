// Package main provides the CLI entrypoint for lexname.
package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/lexname/internal/config"
	"github.com/verte-zerg/lexname/internal/historyui"
	"github.com/verte-zerg/lexname/internal/language"
	"github.com/verte-zerg/lexname/internal/model"
	"github.com/verte-zerg/lexname/internal/render"
	"github.com/verte-zerg/lexname/internal/store"
	"github.com/verte-zerg/lexname/internal/tui"
	"github.com/verte-zerg/lexname/internal/username"
	"github.com/verte-zerg/lexname/internal/wordsource"
)

const (
	defaultLangs  = "all"
	defaultCount  = 40
	defaultCase   = "lowercase"
	defaultNumber = "none"
	defaultMinLen = 3
)

var (
	generateLangs  string
	generateCount  int
	generateCase   string
	generateNumber string
	generateMinLen int
	generatePlain  bool

	historyLast int
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "lexname",
		Short:         "ASCII username generator",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runGenerateCmd,
	}

	rootCmd.Flags().StringVar(&generateLangs, "langs", defaultLangs, "comma-separated language codes, or 'all'")
	rootCmd.Flags().IntVar(&generateCount, "count", defaultCount, "usernames per batch")
	rootCmd.Flags().StringVar(&generateCase, "case", defaultCase, "case style: lowercase, uppercase, capitalize")
	rootCmd.Flags().StringVar(&generateNumber, "number", defaultNumber, "number suffix: none, 1digit, 2digit, 3digit")
	rootCmd.Flags().IntVar(&generateMinLen, "min-len", defaultMinLen, "minimum word length")
	rootCmd.Flags().BoolVar(&generatePlain, "plain", false, "print the batch to stdout instead of the TUI")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newLangsCmd())
	rootCmd.AddCommand(newHistoryCmd())

	return rootCmd
}

func runGenerateCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "langs", &generateLangs, fileCfg.Generate.Langs)
	applyIntConfig(cmd, "count", &generateCount, fileCfg.Generate.Count)
	applyStringConfig(cmd, "case", &generateCase, fileCfg.Generate.Case)
	applyStringConfig(cmd, "number", &generateNumber, fileCfg.Generate.Number)
	applyIntConfig(cmd, "min-len", &generateMinLen, fileCfg.Generate.MinLen)

	style, langs, err := buildSettings()
	if err != nil {
		return err
	}

	source := wordsource.NewLayered(config.DefaultWordListDir())

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		logErrf("failed to open history db, continuing without history: %v\n", err)
		st = nil
	}
	if st != nil {
		defer func() {
			if cerr := st.Close(); cerr != nil {
				logErrf("failed to close db: %v\n", cerr)
			}
		}()
	}

	if generatePlain {
		return runPlain(source, st, langs, style)
	}

	model := tui.NewModel(source, st, langs, generateCount, style)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func buildSettings() (username.Style, []string, error) {
	caseStyle, err := username.ParseCaseStyle(generateCase)
	if err != nil {
		return username.Style{}, nil, err
	}
	numberStyle, err := username.ParseNumberStyle(generateNumber)
	if err != nil {
		return username.Style{}, nil, err
	}
	if generateCount <= 0 {
		return username.Style{}, nil, fmt.Errorf("--count must be > 0")
	}
	if generateMinLen <= 0 {
		return username.Style{}, nil, fmt.Errorf("--min-len must be > 0")
	}

	langs, err := resolveLangs(generateLangs)
	if err != nil {
		return username.Style{}, nil, err
	}

	style := username.Style{
		Case:   caseStyle,
		Number: numberStyle,
		MinLen: generateMinLen,
	}
	return style, langs, nil
}

func runPlain(source username.Source, st *store.Store, langs []string, style username.Style) error {
	gen := username.New(source)
	gen.OnProgress = func(done, total int) {
		logErrf("Generating username %d/%d...\n", done, total)
	}
	gen.OnLookupError = func(lang string, err error) {
		logErrf("failed to fetch words for %q: %v\n", lang, err)
	}

	entries, err := gen.Generate(context.Background(), langs, generateCount, style)
	if err != nil {
		return err
	}

	if st != nil {
		_, err := st.InsertBatch(context.Background(), model.Batch{
			GeneratedAt: time.Now().UTC(),
			Count:       generateCount,
			CaseStyle:   style.Case.String(),
			NumberStyle: style.Number.String(),
			MinLen:      style.MinLen,
			Langs:       langs,
			Entries:     entries,
		})
		if err != nil {
			logErrf("failed to save batch: %v\n", err)
		}
	}

	rows := make([][]string, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, []string{entry.Username, entry.LangName})
	}
	for _, line := range render.Table([]string{"Username", "Language"}, rows, nil, terminalWidth()) {
		fmt.Println(line)
	}
	return nil
}

func resolveLangs(value string) ([]string, error) {
	value = strings.TrimSpace(strings.ToLower(value))
	if value == "" || value == defaultLangs {
		return language.Codes(), nil
	}
	parts := strings.Split(value, ",")
	langs := make([]string, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if _, ok := seen[part]; ok {
			continue
		}
		seen[part] = struct{}{}
		langs = append(langs, part)
	}
	if err := language.Validate(langs); err != nil {
		return nil, err
	}
	return langs, nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newLangsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "langs",
		Short: "List supported languages",
		Args:  cobra.NoArgs,
		RunE:  runLangsCmd,
	}
}

func runLangsCmd(cmd *cobra.Command, _ []string) error {
	source := wordsource.NewLayered(config.DefaultWordListDir())
	rows := make([][]string, 0, 19)
	for _, code := range language.Codes() {
		origin := "embedded"
		if source.HasLocal(code) {
			origin = "local"
		}
		rows = append(rows, []string{code, language.Name(code), origin})
	}
	lines := render.Table([]string{"Code", "Language", "Word list"}, rows, nil, terminalWidth())
	for _, line := range lines {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Browse generated batches",
		Args:  cobra.NoArgs,
		RunE:  runHistoryCmd,
	}
	cmd.Flags().IntVar(&historyLast, "last", 0, "limit to last N batches")
	return cmd
}

func runHistoryCmd(_ *cobra.Command, _ []string) error {
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	model := historyui.NewModel(st, historyLast)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run history TUI: %w", err)
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 0
	}
	return width
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# lexname configuration
# Uncomment a value to enable it. CLI flags override config values.

[generate]
# langs = %q           # Comma-separated language codes, or "all"
# count = %d             # Usernames per batch
# case = %q      # Case style: lowercase, uppercase, capitalize
# number = %q         # Number suffix: none, 1digit, 2digit, 3digit
# min-len = %d            # Minimum word length
`,
		defaultLangs,
		defaultCount,
		defaultCase,
		defaultNumber,
		defaultMinLen,
	)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
