package platform

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ytget/ytdlp/v2"

	"github.com/ytget/yt-downloader-cli/internal/model"
)

// Timeout constants
const (
	DefaultParseTimeout = 60 * time.Second
)

// URL parameters and separators
const (
	PlaylistParam  = "list="
	ParamSeparator = "&"
)

// Default values
const (
	DefaultDuration     = "Unknown"
	DefaultPlaylistName = "Unknown Playlist"
)

// URL templates
const (
	YouTubeVideoURLTemplate = "https://www.youtube.com/watch?v=%s"
)

// Playlist title constants
const (
	MinPrefixLength = 10
	PlaylistSuffix  = " Playlist"
)

// playlistFetcher lists the videos of a playlist id
type playlistFetcher func(ctx context.Context, playlistID string) ([]*model.PlaylistVideo, error)

// PlaylistResolver enumerates playlist entries through ytget/ytdlp
type PlaylistResolver struct {
	timeout time.Duration
	fetch   playlistFetcher
}

// NewPlaylistResolver creates a resolver backed by the ytdlp library
func NewPlaylistResolver() *PlaylistResolver {
	return &PlaylistResolver{
		timeout: DefaultParseTimeout,
		fetch:   fetchWithLibrary,
	}
}

func fetchWithLibrary(ctx context.Context, playlistID string) ([]*model.PlaylistVideo, error) {
	d := ytdlp.New()
	items, err := d.GetPlaylistItemsAll(ctx, playlistID, 0)
	if err != nil {
		return nil, err
	}

	videos := make([]*model.PlaylistVideo, 0, len(items))
	for _, it := range items {
		videos = append(videos, &model.PlaylistVideo{
			ID:       it.VideoID,
			Title:    it.Title,
			Duration: DefaultDuration,
			URL:      fmt.Sprintf(YouTubeVideoURLTemplate, it.VideoID),
		})
	}
	return videos, nil
}

// IsPlaylistURL reports whether url carries a playlist id
func (r *PlaylistResolver) IsPlaylistURL(url string) bool {
	return ExtractPlaylistID(url) != ""
}

// ParsePlaylist resolves url into its ordered list of videos
func (r *PlaylistResolver) ParsePlaylist(ctx context.Context, url string) (*model.Playlist, error) {
	playlistID := ExtractPlaylistID(url)
	if playlistID == "" {
		return nil, fmt.Errorf("invalid playlist URL: %s", url)
	}

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	videos, err := r.fetch(ctx, playlistID)
	if err != nil {
		return nil, fmt.Errorf("failed to get playlist items: %w", err)
	}

	playlist := model.NewPlaylist(url)
	playlist.ID = playlistID
	for _, v := range videos {
		playlist.AddVideo(v)
	}
	playlist.Title = extractPlaylistTitle(videos)

	return playlist, nil
}

// ExtractPlaylistID extracts the playlist ID from the list= query parameter
func ExtractPlaylistID(url string) string {
	idx := strings.Index(url, PlaylistParam)
	if idx < 0 {
		return ""
	}
	// list= must start a query parameter, not be the tail of another name
	if idx > 0 && url[idx-1] != '?' && url[idx-1] != '&' {
		return ""
	}
	id := url[idx+len(PlaylistParam):]
	if i := strings.Index(id, ParamSeparator); i >= 0 {
		id = id[:i]
	}
	if i := strings.Index(id, "#"); i >= 0 {
		id = id[:i]
	}
	return id
}

// extractPlaylistTitle generates a title for the playlist based on videos
func extractPlaylistTitle(videos []*model.PlaylistVideo) string {
	if len(videos) == 0 {
		return DefaultPlaylistName
	}
	if len(videos) > 1 {
		commonPrefix := findCommonPrefix(videos[0].Title, videos[1].Title)
		if len(commonPrefix) > MinPrefixLength {
			return strings.TrimSpace(commonPrefix) + PlaylistSuffix
		}
	}
	return videos[0].Title + PlaylistSuffix
}

// findCommonPrefix finds the common prefix between two strings
func findCommonPrefix(s1, s2 string) string {
	minLen := min(len(s1), len(s2))
	for i := 0; i < minLen; i++ {
		if s1[i] != s2[i] {
			return s1[:i]
		}
	}
	return s1[:minLen]
}
