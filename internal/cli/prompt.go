package cli

import (
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"

	"github.com/ytget/yt-downloader-cli/internal/ui"
)

// promptURL asks for a URL when stdin is a terminal
func promptURL() (string, error) {
	if !ui.IsTerminal(os.Stdin) {
		return "", nil
	}

	var response string
	input := survey.Input{
		Message: "Enter YouTube URL:",
		Help:    "A video or playlist link, e.g. https://youtube.com/watch?v=...",
	}
	if err := survey.AskOne(&input, &response); err != nil {
		return "", err
	}
	return strings.TrimSpace(response), nil
}
