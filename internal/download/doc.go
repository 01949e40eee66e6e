// Package download runs the download pipeline: it resolves a URL into one or
// more items, hands each to the extraction library, converts the result with
// ffmpeg when the requested container needs it, and reports every step.
// Items are processed one after another.
package download
