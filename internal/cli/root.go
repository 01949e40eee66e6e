// Package cli implements the command-line interface.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/ytget/yt-downloader-cli/internal/config"
	"github.com/ytget/yt-downloader-cli/internal/constant"
	"github.com/ytget/yt-downloader-cli/internal/download"
	"github.com/ytget/yt-downloader-cli/internal/key"
	"github.com/ytget/yt-downloader-cli/internal/log"
	"github.com/ytget/yt-downloader-cli/internal/options"
	"github.com/ytget/yt-downloader-cli/internal/ui"
)

// NewRootCmd builds the command tree over deps
func NewRootCmd(deps *Dependencies) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   constant.App + " [flags] URL",
		Short: "Download online videos and convert them with ffmpeg",
		Long: constant.DisplayName + " downloads videos, audio and playlists through yt-dlp\n" +
			"and converts them to the requested container with ffmpeg.",
		Example: "  " + constant.App + " https://youtube.com/watch?v=dQw4w9WgXcQ\n" +
			"  " + constant.App + " -q 720p -f mkv -o ~/Videos URL\n" +
			"  " + constant.App + " -a -f mp3 URL\n" +
			"  " + constant.App + " -p 'https://youtube.com/playlist?list=...'\n" +
			"  " + constant.App + " -l URL",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				return usageErrorf("accepts at most 1 URL, received %d", len(args))
			}
			return nil
		},
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if lo.Must(cmd.Flags().GetBool("version")) {
				return printVersion(cmd.OutOrStdout(), deps.Settings.IsColored(), true)
			}
			return runDownload(cmd, deps, args)
		},
	}

	rootCmd.SetOut(deps.Out)
	rootCmd.SetErr(deps.Err)
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &UsageError{Err: err}
	})

	flags := rootCmd.Flags()
	flags.Bool("version", false, "Print the application version")

	flags.StringP("output", "o", deps.Settings.GetDownloadDirectory(), "Output directory")
	lo.Must0(deps.Settings.BindPFlag(key.DownloadDirectory, flags.Lookup("output")))

	flags.StringP("quality", "q", deps.Settings.GetQuality(), "Video quality: "+strings.Join(options.QualityChoices(), ", "))
	lo.Must0(deps.Settings.BindPFlag(key.DownloadQuality, flags.Lookup("quality")))
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("quality", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return options.QualityChoices(), cobra.ShellCompDirectiveNoFileComp
	}))

	flags.StringP("format", "f", deps.Settings.GetFormat(), "Output format: "+strings.Join(options.FormatChoices(), ", "))
	lo.Must0(deps.Settings.BindPFlag(key.DownloadFormat, flags.Lookup("format")))
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return options.FormatChoices(), cobra.ShellCompDirectiveNoFileComp
	}))

	flags.String("format-id", "", "Exact yt-dlp format id (see -l), overrides the quality")

	flags.String("on-error", string(deps.Settings.GetOnError()), "Playlist item failure policy: continue, abort")
	lo.Must0(deps.Settings.BindPFlag(key.DownloadOnError, flags.Lookup("on-error")))
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("on-error", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return onErrorChoices(deps.Settings), cobra.ShellCompDirectiveNoFileComp
	}))

	flags.BoolP("audio-only", "a", false, "Download audio only")
	flags.BoolP("playlist", "p", false, "Download every video of a playlist URL")
	flags.BoolP("list-formats", "l", false, "List available formats without downloading")

	rootCmd.AddCommand(
		newVersionCmd(deps),
		newCheckCmd(deps),
		newSetupCmd(deps),
		newConfigCmd(deps),
	)

	return rootCmd
}

func runDownload(cmd *cobra.Command, deps *Dependencies, args []string) error {
	var (
		settings    = deps.Settings
		ctx         = cmd.Context()
		console     = ui.NewConsole(deps.Out, deps.Err, settings.IsColored())
		audioOnly   = lo.Must(cmd.Flags().GetBool("audio-only"))
		playlist    = lo.Must(cmd.Flags().GetBool("playlist"))
		listFormats = lo.Must(cmd.Flags().GetBool("list-formats"))
		formatID    = lo.Must(cmd.Flags().GetString("format-id"))
	)

	if onError := cmd.Flags().Lookup("on-error"); onError.Changed {
		policy := config.OnErrorPolicy(strings.ToLower(strings.TrimSpace(onError.Value.String())))
		if !lo.Contains(settings.GetOnErrorOptions(), policy) {
			return usageErrorf("unsupported on-error policy %q (valid choices: %s)",
				onError.Value.String(), strings.Join(onErrorChoices(settings), ", "))
		}
	}

	if settings.ShowBanner() {
		console.Banner()
	}

	url, err := resolveURL(deps, args)
	if err != nil {
		return err
	}

	ffmpegLocation := settings.GetFFmpegLocation()
	transcoder := deps.NewTranscoder(ffmpegLocation)
	service := download.NewService(
		deps.NewExtractor(ffmpegLocation),
		deps.Inspector,
		deps.Playlists,
		transcoder,
		console,
	)

	if listFormats {
		if _, err := service.ListFormats(ctx, url); err != nil {
			return fmt.Errorf("error listing formats: %w", err)
		}
		return nil
	}

	hasFFmpeg := transcoder.Available()
	plan, err := options.Map(options.Input{
		OutputDir:        settings.GetDownloadDirectory(),
		Quality:          settings.GetQuality(),
		Format:           settings.GetFormat(),
		AudioOnly:        audioOnly,
		Playlist:         playlist,
		FilenameTemplate: settings.GetFilenameTemplate(),
		FormatID:         formatID,
		HasFFmpeg:        hasFFmpeg,
	})
	if err != nil {
		return &UsageError{Err: err}
	}

	if !hasFFmpeg {
		console.Warn("FFmpeg not found. Some format conversions may not work properly.")
		console.Warn("For best results, install FFmpeg and add it to your PATH, or run `" + constant.App + " setup`.")
	}

	console.Info("Source: " + url)
	if plan.FormatID != "" {
		console.Info("Format ID: " + plan.FormatID)
	} else {
		console.Info("Quality: " + string(plan.Quality))
	}
	console.Info("Requested Format: " + strings.ToUpper(string(plan.Format)))

	log.Infof("download requested: url=%s quality=%s format=%s audio=%t playlist=%t",
		url, plan.Quality, plan.Format, plan.AudioOnly, plan.Playlist)

	_, err = service.Run(ctx, download.Request{
		URL:       url,
		Plan:      plan,
		OutputDir: settings.GetDownloadDirectory(),
		OnError:   settings.GetOnError(),
	})
	return err
}

func onErrorChoices(settings *config.Settings) []string {
	return lo.Map(settings.GetOnErrorOptions(), func(p config.OnErrorPolicy, _ int) string { return string(p) })
}

// resolveURL returns the positional URL or asks for one
func resolveURL(deps *Dependencies, args []string) (string, error) {
	var url string
	if len(args) > 0 {
		url = strings.TrimSpace(args[0])
	}

	if url == "" && deps.PromptURL != nil && deps.Settings.PromptURL() {
		answer, err := deps.PromptURL()
		if err != nil {
			return "", err
		}
		url = answer
	}

	if url == "" {
		return "", usageErrorf("no URL provided")
	}
	return url, nil
}

// Execute runs the CLI and exits the process on error
func Execute() {
	deps := DefaultDependencies()
	rootCmd := NewRootCmd(deps)

	if deps.Settings.IsColored() {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()

	handleErr(rootCmd, err)
}

func handleErr(cmd *cobra.Command, err error) {
	if err == nil {
		return
	}

	log.Error(err)
	_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", ui.IconError, strings.Trim(err.Error(), " \n"))

	code := ExitCode(err)
	if code == ExitUsage {
		_, _ = fmt.Fprintf(os.Stderr, "Run '%s --help' for usage.\n", cmd.CommandPath())
	}
	os.Exit(code)
}
