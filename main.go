package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/atotto/clipboard"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// Patterns
	inputPattern  string
	outputPattern string
	prefixString  string

	// Safety
	createBackup bool
	assumeYes    bool
	dryRun       bool

	// Listing
	showHidden bool
	noIgnore   bool

	// Output
	previewLimit    int
	copyToClipboard bool
	verbose         bool

	// Interactive Mode
	interactiveMode bool

	cfgFile string // optional config file path flag
)

// version is the application version, set via ldflags.
var version string = "dev" // Default for local builds

var rootCmd = &cobra.Command{
	Use:   "renamr [DIRECTORY]",
	Short: "Renamr renames files in a directory in bulk using bracket patterns.",
	Long: `Renamr matches file names against an input pattern with [Variable]
placeholders, captures the variable values per file, and substitutes them
into an output pattern to compute new names. It previews the rename plan,
asks for confirmation, and copies each file into a per-run backup
directory before moving it.

Example:
  renamr ./photos -i "[Prefix]_[NR].png" -o "Result_[NR].png"`,
	Version: version,
	Args:    cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		// initConfig is called via cobra.OnInitialize

		// --- Determine target directory: argument or interactive picker ---
		targetDir := "."
		if len(args) == 1 {
			targetDir = args[0]
		} else if interactiveMode {
			dir, err := runInteractiveDirPicker()
			if err != nil {
				fmt.Fprintf(os.Stderr, "Interactive mode error: %v\n", err)
				os.Exit(1)
			}
			if dir == "" {
				// User aborted interactive selection
				os.Exit(0)
			}
			targetDir = dir
		}

		info, err := os.Stat(targetDir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error accessing directory %s: %v\n", targetDir, err)
			os.Exit(1)
		}
		if !info.IsDir() {
			fmt.Fprintf(os.Stderr, "Error: %s is not a directory\n", targetDir)
			os.Exit(1)
		}
		targetDir = filepath.Clean(targetDir)

		if prefixString != "" && (inputPattern != "" || outputPattern != "") {
			fmt.Fprintln(os.Stderr, "Error: --prefix cannot be combined with --input/--output patterns")
			os.Exit(1)
		}

		// --- Prompt for missing patterns in interactive mode ---
		if prefixString == "" && inputPattern == "" {
			if !interactiveMode {
				fmt.Fprintln(os.Stderr, "Error: an input pattern is required (-i) unless --prefix or --interactive is used")
				os.Exit(1)
			}
			inputPattern, err = promptLine("Input pattern (e.g. [Prefix]_[NR].png): ")
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			if inputPattern == "" {
				fmt.Fprintln(os.Stderr, "Error: input pattern must not be empty")
				os.Exit(1)
			}
			outputPattern, err = promptLine("Output pattern (empty keeps original names): ")
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
		}

		opts := Options{
			CreateBackup:        createBackup,
			RequireConfirmation: !assumeYes,
			PreviewLimit:        previewLimit,
			DryRun:              dryRun,
			Verbose:             verbose,
		}

		// --- List candidates and build the plan ---
		files, err := ListCandidates(targetDir, ListOptions{ShowHidden: showHidden, NoIgnore: noIgnore})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		var plan *RenamePlan
		if prefixString != "" {
			plan = BuildPrefixPlan(targetDir, files, prefixString)
		} else {
			compiled, err := Compile(inputPattern)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: invalid input pattern: %v\n", err)
				os.Exit(1)
			}
			if verbose {
				fmt.Printf("Compiled pattern %q (glob pre-filter %q), %d candidate file(s)\n",
					inputPattern, compiled.Glob(), len(files))
			}
			narrowed := FilterByGlob(files, compiled.Glob())
			matches := MatchCandidates(narrowed, compiled)
			plan = BuildPlan(targetDir, matches, outputPattern, compiled)
		}

		if len(plan.Candidates) == 0 {
			fmt.Println("No files matched, nothing to do.")
			os.Exit(0)
		}
		if plan.CountNoOps() == len(plan.Candidates) {
			fmt.Print(renderPreview(plan, opts.PreviewLimit))
			fmt.Println("All matched files already have their target name, nothing to do.")
			os.Exit(0)
		}

		// --- Preview and confirmation ---
		fmt.Print(renderPreview(plan, opts.PreviewLimit))
		if opts.DryRun {
			fmt.Println("Dry run: no files will be renamed.")
		}
		if opts.RequireConfirmation && !opts.DryRun {
			proceed, err := confirmProceed(len(plan.Candidates))
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			if !proceed {
				fmt.Println("Aborted, no files were renamed.")
				os.Exit(0)
			}
		}

		// --- Execute ---
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		var bar *progressbar.ProgressBar
		if !verbose && !opts.DryRun && len(plan.Candidates) > 1 {
			bar = progressbar.Default(int64(len(plan.Candidates)), "Renaming")
		}
		results := Execute(ctx, plan, opts, func(r ExecutionResult) {
			// BackupFailed is an extra warning record, not a candidate
			// being finished; don't advance the bar for it.
			if bar != nil && r.Outcome != BackupFailed {
				_ = bar.Add(1)
			}
			if verbose {
				fmt.Println(resultLine(r))
			}
		})
		if bar != nil {
			_ = bar.Finish()
			fmt.Println()
		}
		if ctx.Err() != nil {
			fmt.Fprintln(os.Stderr, "Interrupted; completed renames remain in effect.")
		}

		// --- Report ---
		report := renderReport(results, opts.DryRun)
		if copyToClipboard {
			if err := clipboard.WriteAll(report); err != nil {
				fmt.Fprintf(os.Stderr, "Error writing to clipboard: %v\n", err)
				fmt.Println("\n--- Report (clipboard failed) ---")
				fmt.Println(report)
			} else {
				fmt.Print(report)
				fmt.Println("Report copied to clipboard.")
			}
		} else {
			fmt.Print(report)
		}

		if Summarize(results).Failed > 0 {
			os.Exit(1)
		}
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// --- Flag Definitions & Viper Binding ---

	// Patterns
	rootCmd.Flags().StringVarP(&inputPattern, "input", "i", "", `Input pattern with [Variable] placeholders (e.g. "[Prefix]_[NR].png")`)
	rootCmd.Flags().StringVarP(&outputPattern, "output", "o", "", `Output pattern built from captured variables (empty keeps original names)`)
	rootCmd.Flags().StringVar(&prefixString, "prefix", "", "Prefix mode: prepend this to every file not already carrying it")

	// Safety
	rootCmd.Flags().BoolVar(&createBackup, "backup", true, "Copy files into a per-run _backup_<timestamp> directory before renaming")
	viper.BindPFlag("backup", rootCmd.Flags().Lookup("backup"))
	rootCmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Skip the confirmation prompt")
	rootCmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Show what would be renamed without touching any file")

	// Listing
	rootCmd.Flags().BoolVarP(&showHidden, "hidden", "H", false, "Include hidden files as rename candidates")
	viper.BindPFlag("hidden", rootCmd.Flags().Lookup("hidden"))
	rootCmd.Flags().BoolVar(&noIgnore, "no-ignore", false, "Don't respect a .gitignore in the target directory")
	viper.BindPFlag("no_ignore", rootCmd.Flags().Lookup("no-ignore"))

	// Output
	rootCmd.Flags().IntVar(&previewLimit, "preview-limit", 10, "Maximum preview lines before confirmation (0 for no limit)")
	viper.BindPFlag("preview_limit", rootCmd.Flags().Lookup("preview-limit"))
	rootCmd.Flags().BoolVarP(&copyToClipboard, "clipboard", "c", false, "Copy the result report to the clipboard")
	viper.BindPFlag("clipboard", rootCmd.Flags().Lookup("clipboard"))
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Per-file status lines during execution instead of a progress bar")

	// Interactive Mode
	rootCmd.Flags().BoolVar(&interactiveMode, "interactive", false, "Pick the target directory with a fuzzy finder and prompt for patterns")
	viper.BindPFlag("interactive", rootCmd.Flags().Lookup("interactive"))

	// Viper defaults (config file < env < flags)
	viper.SetDefault("backup", true)
	viper.SetDefault("preview_limit", 10)
	viper.SetDefault("hidden", false)
	viper.SetDefault("no_ignore", false)
	viper.SetDefault("clipboard", false)
	viper.SetDefault("interactive", false)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home/.config/renamr with name "config" (without extension).
		viper.AddConfigPath(filepath.Join(home, ".config", "renamr"))
		viper.AddConfigPath(".") // Also look in current directory
		viper.SetConfigName("config")
		viper.SetConfigType("toml")
	}

	viper.AutomaticEnv() // read in environment variables that match RENAMR_*
	viper.SetEnvPrefix("RENAMR")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	if err := viper.ReadInConfig(); err == nil {
		if verbose {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	} else if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
		fmt.Fprintf(os.Stderr, "Error reading config file: %s\n", err)
	}

	// Flags win over config/env; pull config values only for flags the
	// user didn't set explicitly.
	if !rootCmd.Flags().Changed("backup") {
		createBackup = viper.GetBool("backup")
	}
	if !rootCmd.Flags().Changed("preview-limit") {
		previewLimit = viper.GetInt("preview_limit")
	}
	if !rootCmd.Flags().Changed("hidden") {
		showHidden = viper.GetBool("hidden")
	}
	if !rootCmd.Flags().Changed("no-ignore") {
		noIgnore = viper.GetBool("no_ignore")
	}
	if !rootCmd.Flags().Changed("clipboard") {
		copyToClipboard = viper.GetBool("clipboard")
	}
	if !rootCmd.Flags().Changed("interactive") {
		interactiveMode = viper.GetBool("interactive")
	}
}

func main() {
	rootCmd.Execute()
}
