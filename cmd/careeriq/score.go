package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/dshills/careeriq/internal/profile"
	"github.com/dshills/careeriq/internal/render"
	"github.com/dshills/careeriq/internal/report"
	"github.com/dshills/careeriq/internal/schema"
	"github.com/dshills/careeriq/internal/snapshot"
	"github.com/dshills/careeriq/internal/store"
)

const storeTimeout = 30 * time.Second

type scoreFlags struct {
	format        string
	out           string
	profileName   string
	profileFile   string
	minScore      int
	minClaims     int
	minCategories int
	targetRoles   []string
	databaseURL   string
	userID        string
	initSchema    bool
	maxMissions   int
	failUnder     bool
	strict        bool
	verbose       bool

	// Set when the matching threshold flag was given, so 0 is a valid override.
	minScoreSet      bool
	minClaimsSet     bool
	minCategoriesSet bool
}

func newScoreCmd() *cobra.Command {
	f := &scoreFlags{}

	cmd := &cobra.Command{
		Use:   "score [vault-file]",
		Short: "Score a vault snapshot and list prioritized missions",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f.minScoreSet = cmd.Flags().Changed("min-score")
			f.minClaimsSet = cmd.Flags().Changed("min-claims")
			f.minCategoriesSet = cmd.Flags().Changed("min-categories")
			return runScore(cmd.Context(), args, f, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.format, "format", "json", "Output format: json or md")
	flags.StringVar(&f.out, "out", "", "Output file path (default: stdout)")
	flags.StringVar(&f.profileName, "profile", "default", "Built-in profile name")
	flags.StringVar(&f.profileFile, "profile-file", "", "Load the profile from a YAML file instead")
	flags.IntVar(&f.minScore, "min-score", 0, "Override the profile's minimum score")
	flags.IntVar(&f.minClaims, "min-claims", 0, "Override the profile's minimum item count")
	flags.IntVar(&f.minCategories, "min-categories", 0, "Override the profile's minimum category count")
	flags.StringSliceVar(&f.targetRoles, "target-role", nil, "Target role titles (may be repeated; replaces roles in the snapshot)")
	flags.StringVar(&f.databaseURL, "database-url", os.Getenv("DATABASE_URL"), "PostgreSQL URL to load the vault from")
	flags.StringVar(&f.userID, "user", "", "User UUID to load from the database")
	flags.BoolVar(&f.initSchema, "init-schema", false, "Create the vault tables before loading (with --user)")
	flags.IntVar(&f.maxMissions, "max-missions", 0, "Maximum missions to list (0 = all)")
	flags.BoolVar(&f.failUnder, "fail-under", false, "Exit 2 if the vault is below the minimum score")
	flags.BoolVar(&f.strict, "strict", false, "Exit 5 if the snapshot fails validation")
	flags.BoolVar(&f.verbose, "verbose", false, "Log processing steps to stderr")

	return cmd
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func runScore(ctx context.Context, args []string, f *scoreFlags, stdout, stderr io.Writer) error {
	logger := newLogger(stderr, f.verbose)

	if f.format != "json" && f.format != "md" {
		return exitError(3, "unknown format: %s", f.format)
	}

	// 1. Profile and threshold overrides
	prof, err := loadProfile(f)
	if err != nil {
		return exitError(3, "failed to load profile: %v", err)
	}
	thresholds := prof.Thresholds
	if f.minScoreSet {
		thresholds.MinimumScore = f.minScore
	}
	if f.minClaimsSet {
		thresholds.MinimumClaims = f.minClaims
	}
	if f.minCategoriesSet {
		thresholds.MinimumCategories = f.minCategories
	}
	thresholds = thresholds.WithDefaults()
	logger.Debug("profile loaded", "profile", prof.Name,
		"min_score", thresholds.MinimumScore,
		"min_claims", thresholds.MinimumClaims,
		"min_categories", thresholds.MinimumCategories)

	// 2. Snapshot
	snap, err := loadSnapshot(ctx, args, f, logger)
	if err != nil {
		return err
	}
	logger.Debug("snapshot loaded", "source", snap.Source, "items", len(snap.Items), "target_roles", len(snap.TargetRoles))

	// 3. Shape validation
	if verrs := schema.ValidateSnapshot(snap); len(verrs) > 0 {
		for _, e := range verrs {
			logger.Warn("snapshot validation", "path", e.Path, "error", e.Message)
		}
		if f.strict {
			return exitError(5, "snapshot failed validation (%d errors)", len(verrs))
		}
	}

	// 4. Score and rank
	rep := report.Build(snap, report.Options{
		Tool:            "careeriq",
		Version:         version,
		Profile:         prof.Name,
		Thresholds:      &thresholds,
		TargetRoles:     f.targetRoles,
		MaxMissions:     f.maxMissions,
		QuickWinMinutes: prof.QuickWinMinutes,
	})
	if verrs := schema.ValidateReport(rep); len(verrs) > 0 {
		for _, e := range verrs {
			logger.Error("report invariant", "path", e.Path, "error", e.Message)
		}
		return exitError(5, "report failed validation (%d errors)", len(verrs))
	}
	logger.Debug("scored", "score", rep.Strength.OverallScore, "level", rep.Level, "missions", len(rep.Missions))

	// 5. Output
	var output string
	switch f.format {
	case "json":
		data, err := json.MarshalIndent(rep, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal output: %w", err)
		}
		output = string(data) + "\n"
	case "md":
		output = render.Markdown(rep)
	}

	if f.out != "" {
		logger.Debug("writing output", "path", f.out)
		if err := os.WriteFile(f.out, []byte(output), 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else {
		fmt.Fprint(stdout, output)
	}

	if f.failUnder && !rep.Strength.IsStrongEnough {
		return exitError(2, "vault score %d is below minimum %d", rep.Strength.OverallScore, rep.Thresholds.MinimumScore)
	}
	return nil
}

func loadProfile(f *scoreFlags) (*profile.Profile, error) {
	if f.profileFile != "" {
		return profile.LoadFile(f.profileFile)
	}
	return profile.LoadBuiltin(f.profileName)
}

func loadSnapshot(ctx context.Context, args []string, f *scoreFlags, logger *slog.Logger) (*snapshot.Snapshot, error) {
	switch {
	case len(args) == 1 && f.userID != "":
		return nil, exitError(3, "give either a vault file or --user, not both")
	case f.initSchema && f.userID == "":
		return nil, exitError(3, "--init-schema requires --user")
	case len(args) == 1:
		return loadFromFile(args[0], f, logger)
	case f.userID != "":
		return loadFromStore(ctx, f, logger)
	default:
		return nil, exitError(3, "no vault given: pass a vault file or --user with --database-url")
	}
}

func loadFromFile(path string, f *scoreFlags, logger *slog.Logger) (*snapshot.Snapshot, error) {
	logger.Debug("loading snapshot file", "path", path)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, exitError(3, "failed to load vault: %v", err)
	}
	format := snapshot.FormatForPath(path)

	verrs, err := schema.ValidateDocument(data, format)
	if err != nil {
		return nil, exitError(3, "failed to parse vault %s: %v", path, err)
	}
	if len(verrs) > 0 {
		for _, e := range verrs {
			logger.Warn("document validation", "path", e.Path, "error", e.Message)
		}
		if f.strict {
			return nil, exitError(5, "vault document failed validation (%d errors)", len(verrs))
		}
	}

	snap, err := snapshot.Parse(data, format)
	if err != nil {
		return nil, exitError(3, "failed to load vault %s: %v", path, err)
	}
	snap.Source = path
	return snap, nil
}

func loadFromStore(ctx context.Context, f *scoreFlags, logger *slog.Logger) (*snapshot.Snapshot, error) {
	userID, err := uuid.Parse(f.userID)
	if err != nil {
		return nil, exitError(3, "invalid --user %q: %v", f.userID, err)
	}
	if f.databaseURL == "" {
		return nil, exitError(3, "--user requires --database-url or DATABASE_URL")
	}

	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	logger.Debug("connecting to database")
	db, err := store.Connect(ctx, f.databaseURL)
	if err != nil {
		return nil, exitError(4, "database error: %v", err)
	}
	defer db.Close()

	if f.initSchema {
		logger.Debug("ensuring schema")
		if err := db.EnsureSchema(ctx); err != nil {
			return nil, exitError(4, "database error: %v", err)
		}
	}

	snap, err := db.LoadSnapshot(ctx, userID)
	if err != nil {
		return nil, exitError(4, "failed to load vault for %s: %v", userID, err)
	}
	return snap, nil
}
