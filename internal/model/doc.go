// Package model defines the data passed between the CLI, the download
// invoker and the extraction adapters: per-item tasks, playlists, media
// metadata and the run summary.
package model
