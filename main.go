package main

import (
	"github.com/samber/lo"

	"github.com/ytget/yt-downloader-cli/internal/cli"
	"github.com/ytget/yt-downloader-cli/internal/config"
	"github.com/ytget/yt-downloader-cli/internal/log"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cli.Execute()
}
