// Package platform glues the program to its external tooling: yt-dlp through
// go-ytdlp for downloads, ytget/ytdlp for playlist enumeration, kkdai/youtube
// for metadata and format listings, and filesystem helpers.
package platform
