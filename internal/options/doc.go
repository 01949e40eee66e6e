// Package options translates user-facing quality and format tokens into the
// download plan handed to yt-dlp: format selector, postprocessing and the
// optional ffmpeg conversion step.
package options
