package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/nice-elevateai/elevateai-go/client"
	"github.com/nice-elevateai/elevateai-go/internal/logger"
)

const usageText = `Syntax:

  elevateai <elevateAI base url> <api token> [flags]

Runs the demo: declare an interaction, upload --media-file, wait until it is
processed, then print the punctuated transcript and the AI results.

Run "elevateai --help" for the per-operation sub-commands.`

var (
	cfg client.Config

	baseURL, apiToken string
	debug, jsonLogs   bool
	logLevel          string

	pollInterval      time.Duration
	pollMaxAttempts   int
	pollTimeout       time.Duration
	tolerateTransient bool
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := NewRootCmd()
	if err := cmd.ExecuteContext(ctx); err != nil {
		stop()
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	var demo declareFlags

	rootCmd := &cobra.Command{
		Use:           "elevateai <baseUrl> <apiToken>",
		Short:         "Submit audio to ElevateAI and fetch transcripts and AI results",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
				log.Warn().Err(err).Msg("ignoring unreadable .env file")
			}

			level := logger.ParseLevel(logLevel)
			if debug {
				level = zerolog.DebugLevel
			}
			logger.InitConsole(level, jsonLogs)

			return loadConfig(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 {
				fmt.Fprintln(cmd.OutOrStdout(), usageText)
				return nil
			}
			cfg.BaseURL, cfg.APIToken = args[0], args[1]
			return runDemo(cmd, demo)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&baseURL, "base-url", client.DefaultBaseURL, "ElevateAI API base URL (env ELEVATEAI_BASE_URL)")
	pf.StringVar(&apiToken, "api-token", "", "API token (env ELEVATEAI_API_TOKEN)")
	pf.BoolVarP(&debug, "debug", "d", false, "Enable debug logging and HTTP dumps")
	pf.BoolVar(&jsonLogs, "json-logs", false, "Emit logs as JSON lines")
	pf.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	pf.DurationVar(&pollInterval, "poll-interval", time.Minute, "Pause between status polls")
	pf.IntVar(&pollMaxAttempts, "poll-max-attempts", 120, "Maximum status polls (0 = unbounded)")
	pf.DurationVar(&pollTimeout, "poll-timeout", 0, "Overall wait limit (0 = none)")
	pf.BoolVar(&tolerateTransient, "tolerate-transient", false, "Keep polling through 5xx/network status errors")

	demo.bind(rootCmd, "sample.wav")

	rootCmd.AddCommand(newDeclareCmd())
	rootCmd.AddCommand(newUploadCmd())
	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newAwaitCmd())
	rootCmd.AddCommand(newTranscriptsCmd())
	rootCmd.AddCommand(newAIResultsCmd())

	return rootCmd
}

// loadConfig reads ELEVATEAI_* variables, then applies explicitly set flags.
func loadConfig(cmd *cobra.Command) error {
	c, err := client.LoadConfig()
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("base-url") {
		c.BaseURL = baseURL
	}
	if flags.Changed("api-token") {
		c.APIToken = apiToken
	}
	if debug {
		c.Debug = true
	}
	if flags.Changed("poll-interval") {
		c.PollInterval = pollInterval
	}
	if flags.Changed("poll-max-attempts") {
		c.PollMaxAttempts = pollMaxAttempts
	}
	if flags.Changed("poll-timeout") {
		c.PollTimeout = pollTimeout
	}
	if flags.Changed("tolerate-transient") {
		c.PollTolerateTransient = tolerateTransient
	}
	cfg = c
	return nil
}

func newClient() (*client.Client, error) {
	return client.NewFromConfig(cfg)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// declareFlags are shared by the demo and the declare sub-command.
type declareFlags struct {
	language, vertical, mode string
	mediaURI, mediaFile      string
	originalFileName         string
	externalID               string
}

func (f *declareFlags) bind(cmd *cobra.Command, mediaFile string) {
	fl := cmd.Flags()
	fl.StringVar(&f.language, "language", client.DefaultLanguageTag, "Language tag")
	fl.StringVar(&f.vertical, "vertical", client.DefaultVertical, "Vertical")
	fl.StringVar(&f.mode, "mode", client.DefaultAudioTranscriptionMode, "Audio transcription mode")
	fl.StringVar(&f.mediaFile, "media-file", mediaFile, "Local media file to upload")
	fl.StringVar(&f.originalFileName, "original-file-name", "", "Original file name (defaults to the media file's base name)")
	fl.StringVar(&f.externalID, "external-id", "", "External identifier (defaults to a random UUID)")
}

func (f declareFlags) request() client.DeclareRequest {
	name := f.originalFileName
	if name == "" && f.mediaFile != "" {
		name = filepath.Base(f.mediaFile)
	}
	ext := f.externalID
	if ext == "" {
		ext = uuid.NewString()
	}
	return client.DeclareRequest{
		LanguageTag:            f.language,
		Vertical:               f.vertical,
		AudioTranscriptionMode: f.mode,
		MediaURI:               f.mediaURI,
		OriginalFileName:       name,
		ExternalIdentifier:     ext,
	}
}

// runDemo walks the full lifecycle: declare, upload, wait, fetch results.
func runDemo(cmd *cobra.Command, f declareFlags) error {
	c, err := newClient()
	if err != nil {
		return err
	}
	defer func() { _ = c.Close() }()
	ctx := cmd.Context()

	// 1. Declare
	it, err := c.Declare(ctx, f.request())
	if err != nil {
		return fmt.Errorf("declare: %w", err)
	}
	log.Info().Str("interaction_id", it.InteractionIdentifier).Str("external_id", it.ExternalIdentifier).Msg("interaction declared")

	// 2. Upload media file
	ok, err := c.Upload(ctx, it, f.mediaFile)
	if err != nil {
		return fmt.Errorf("upload: %w", err)
	}
	if ok {
		it.MediaFile = f.mediaFile
	} else {
		log.Warn().Str("interaction_id", it.InteractionIdentifier).Str("media_file", f.mediaFile).Msg("upload rejected by server")
	}

	// 3. Wait for processing completion
	policy := cfg.PollPolicy()
	log.Info().Str("interaction_id", it.InteractionIdentifier).Dur("interval", policy.Interval).Int("max_attempts", policy.MaxAttempts).Msg("waiting for processing")
	status, err := c.AwaitProcessed(ctx, it, policy)
	it.Status = status
	if err != nil {
		return fmt.Errorf("await %s: %w", it.InteractionIdentifier, err)
	}

	// 4. Fetch results
	tx, err := c.Transcripts(ctx, it, true)
	if err != nil {
		return err
	}
	ai, err := c.AIResults(ctx, it)
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), map[string]any{
		"interaction": it,
		"transcripts": tx,
		"aiResults":   ai,
	})
}

func newDeclareCmd() *cobra.Command {
	var f declareFlags
	var confirm bool

	cmd := &cobra.Command{
		Use:   "declare",
		Short: "Declare an interaction, optionally uploading media",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()

			req := f.request()
			req.MediaFile = f.mediaFile
			req.Confirm = confirm

			start := time.Now()
			it, err := c.Declare(cmd.Context(), req)
			if err != nil {
				log.Error().Err(err).Dur("elapsed", time.Since(start)).Msg("declare failed")
				if it == nil {
					return err
				}
			}
			if perr := printJSON(cmd.OutOrStdout(), it); perr != nil {
				return perr
			}
			return err
		},
	}
	f.bind(cmd, "")
	cmd.Flags().StringVar(&f.mediaURI, "media-uri", "", "Direct download URL for the media (skips upload)")
	cmd.Flags().BoolVar(&confirm, "confirm", false, "Fetch the status once after declaring")
	return cmd
}

func newUploadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "upload <interactionId> <mediaFile>",
		Short: "Upload a local media file for a declared interaction",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()

			ok, err := c.Upload(cmd.Context(), client.ByID(args[0]), args[1])
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("upload of %s rejected", args[1])
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Upload accepted")
			return nil
		},
	}
}

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <interactionId>",
		Short: "Print the lifecycle status of an interaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()
			s, err := c.Status(ctx, client.ByID(args[0]))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), s)
			return nil
		},
	}
}

func newAwaitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "await <interactionId>",
		Short: "Poll until the interaction is processed or fails",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()

			start := time.Now()
			s, err := c.AwaitProcessed(cmd.Context(), client.ByID(args[0]), cfg.PollPolicy())
			if err != nil {
				log.Error().Err(err).Str("interaction_id", args[0]).Str("status", string(s)).Dur("elapsed", time.Since(start)).Msg("await failed")
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), s)
			return nil
		},
	}
}

func newTranscriptsCmd() *cobra.Command {
	var punctuated bool
	cmd := &cobra.Command{
		Use:   "transcripts <interactionId>",
		Short: "Print the transcript of a processed interaction as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()

			tx, err := c.Transcripts(cmd.Context(), client.ByID(args[0]), punctuated)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), tx)
		},
	}
	cmd.Flags().BoolVar(&punctuated, "punctuated", true, "Fetch the punctuated variant")
	return cmd
}

func newAIResultsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ai-results <interactionId>",
		Short: "Print the AI results of a processed interaction as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			defer func() { _ = c.Close() }()

			ai, err := c.AIResults(cmd.Context(), client.ByID(args[0]))
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), ai)
		},
	}
}
