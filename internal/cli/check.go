package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ytget/yt-downloader-cli/internal/constant"
	"github.com/ytget/yt-downloader-cli/internal/platform"
	"github.com/ytget/yt-downloader-cli/internal/ui"
)

// toolRequirement describes an external binary and what it is used for
type toolRequirement struct {
	name    string
	purpose string
}

var requiredTools = []toolRequirement{
	{platform.YtDlpCommand, "downloads"},
	{platform.FFmpegCommand, "audio extraction, merging and conversion"},
	{platform.FFprobeCommand, "conversion progress"},
}

func newCheckCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Report which external tools are available",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			console := ui.NewConsole(cmd.OutOrStdout(), cmd.ErrOrStderr(), deps.Settings.IsColored())

			missing := 0
			for _, tool := range requiredTools {
				path := deps.LookupTool(tool.name)
				if path == "" {
					missing++
					console.Warn(fmt.Sprintf("%s %-8s not found (%s)", ui.IconError, tool.name, tool.purpose))
					continue
				}
				console.Success(fmt.Sprintf("%s %-8s %s", ui.IconSuccess, tool.name, path))
			}

			if location := deps.Settings.GetFFmpegLocation(); location != "" {
				transcoder := deps.NewTranscoder(location)
				if transcoder.Available() {
					console.Success(fmt.Sprintf("%s configured ffmpeg location %s", ui.IconSuccess, location))
				} else {
					console.Warn(fmt.Sprintf("%s configured ffmpeg location %s has no ffmpeg", ui.IconError, location))
				}
			}

			if missing > 0 {
				console.Info(fmt.Sprintf("Run `%s setup` to install missing tools.", constant.App))
			}
			return nil
		},
	}
}
