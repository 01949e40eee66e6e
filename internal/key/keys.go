// Package key lists the configuration keys understood by viper.
package key

const (
	DownloadDirectory        = "download.directory"
	DownloadQuality          = "download.quality"
	DownloadFormat           = "download.format"
	DownloadFilenameTemplate = "download.filename_template"
	DownloadOnError          = "download.on_error"
)

const (
	FFmpegLocation = "ffmpeg.location"
)

const (
	CliColored   = "cli.colored"
	CliPromptURL = "cli.prompt_url"
	CliBanner    = "cli.banner"
)

const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJSON  = "logs.json"
)
