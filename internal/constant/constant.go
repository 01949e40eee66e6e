// Package constant holds application identifiers and build metadata.
package constant

const (
	// App is used for config/log paths, the env prefix and the CLI name.
	App = "yt-downloader"

	// DisplayName is shown in the banner and help output.
	DisplayName = "YT Downloader"
)

// Build metadata, set via -ldflags "-X github.com/ytget/yt-downloader-cli/internal/constant.Version=X.Y.Z".
var (
	Version  = "dev"
	Revision = "unknown"
	BuiltAt  = ""
)
