package cli

import (
	"github.com/spf13/cobra"

	"github.com/ytget/yt-downloader-cli/internal/ui"
)

func newSetupCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "setup",
		Short: "Install yt-dlp, ffmpeg and ffprobe",
		Long:  "Download yt-dlp, ffmpeg and ffprobe into the user cache so downloads and conversions work without a system install.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			console := ui.NewConsole(cmd.OutOrStdout(), cmd.ErrOrStderr(), deps.Settings.IsColored())

			err := deps.Install(cmd.Context(), func(name string) {
				console.Info("Installing " + name + "...")
			})
			if err != nil {
				return err
			}

			console.Success(ui.IconSuccess + " Tools installed successfully")
			return nil
		},
	}
}
