package platform

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ytget/yt-downloader-cli/internal/model"
)

func TestNewPlaylistResolver(t *testing.T) {
	resolver := NewPlaylistResolver()

	if resolver == nil {
		t.Fatal("resolver should not be nil")
	}
	if resolver.timeout != DefaultParseTimeout {
		t.Errorf("expected timeout %v, got %v", DefaultParseTimeout, resolver.timeout)
	}
}

func TestExtractPlaylistID(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		expected string
	}{
		{"playlist page", "https://www.youtube.com/playlist?list=PL1234567890", "PL1234567890"},
		{"watch with list", "https://www.youtube.com/watch?v=abc&list=PLxyz&index=2", "PLxyz"},
		{"list with fragment", "https://www.youtube.com/playlist?list=PLfrag#top", "PLfrag"},
		{"single video", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", ""},
		{"short link", "https://youtu.be/dQw4w9WgXcQ", ""},
		{"list= inside another parameter", "https://example.com/watch?whitelist=abc", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractPlaylistID(tt.url); got != tt.expected {
				t.Errorf("ExtractPlaylistID(%q) = %q, expected %q", tt.url, got, tt.expected)
			}
			resolver := NewPlaylistResolver()
			if resolver.IsPlaylistURL(tt.url) != (tt.expected != "") {
				t.Errorf("IsPlaylistURL(%q) disagrees with ExtractPlaylistID", tt.url)
			}
		})
	}
}

func TestParsePlaylist(t *testing.T) {
	var requested string
	resolver := &PlaylistResolver{
		timeout: time.Second,
		fetch: func(ctx context.Context, playlistID string) ([]*model.PlaylistVideo, error) {
			requested = playlistID
			if _, ok := ctx.Deadline(); !ok {
				t.Error("expected fetch context to carry the timeout")
			}
			return []*model.PlaylistVideo{
				{ID: "a", Title: "Lecture Series Part 1", URL: "https://www.youtube.com/watch?v=a"},
				{ID: "b", Title: "Lecture Series Part 2", URL: "https://www.youtube.com/watch?v=b"},
				{ID: "c", Title: "Lecture Series Part 3", URL: "https://www.youtube.com/watch?v=c"},
			}, nil
		},
	}

	playlist, err := resolver.ParsePlaylist(context.Background(), "https://www.youtube.com/playlist?list=PLabc")
	if err != nil {
		t.Fatalf("ParsePlaylist returned error: %v", err)
	}

	if requested != "PLabc" {
		t.Errorf("expected fetch for PLabc, got %q", requested)
	}
	if playlist.ID != "PLabc" || playlist.TotalVideos != 3 {
		t.Errorf("unexpected playlist %+v", playlist)
	}
	if playlist.Title != "Lecture Series Part"+PlaylistSuffix {
		t.Errorf("unexpected title %q", playlist.Title)
	}
}

func TestParsePlaylist_Errors(t *testing.T) {
	fetchErr := errors.New("boom")
	resolver := &PlaylistResolver{fetch: func(context.Context, string) ([]*model.PlaylistVideo, error) {
		return nil, fetchErr
	}}

	if _, err := resolver.ParsePlaylist(context.Background(), "https://www.youtube.com/watch?v=abc"); err == nil {
		t.Error("expected error for URL without playlist id")
	}

	_, err := resolver.ParsePlaylist(context.Background(), "https://www.youtube.com/playlist?list=PLabc")
	if !errors.Is(err, fetchErr) {
		t.Errorf("expected wrapped fetch error, got %v", err)
	}
}

func TestFindCommonPrefix(t *testing.T) {
	tests := []struct {
		s1, s2   string
		expected string
	}{
		{"hello world", "hello there", "hello "},
		{"abc", "xyz", ""},
		{"same", "same", "same"},
		{"short", "shorter", "short"},
		{"", "anything", ""},
	}

	for _, test := range tests {
		if got := findCommonPrefix(test.s1, test.s2); got != test.expected {
			t.Errorf("findCommonPrefix(%q, %q) = %q, expected %q", test.s1, test.s2, got, test.expected)
		}
	}
}

func TestExtractPlaylistTitle(t *testing.T) {
	tests := []struct {
		name     string
		videos   []*model.PlaylistVideo
		expected string
	}{
		{"empty", nil, DefaultPlaylistName},
		{"single", []*model.PlaylistVideo{{Title: "Only One"}}, "Only One" + PlaylistSuffix},
		{"short prefix", []*model.PlaylistVideo{{Title: "Song A"}, {Title: "Song B"}}, "Song A" + PlaylistSuffix},
		{"long prefix", []*model.PlaylistVideo{{Title: "Go Tutorial Episode 1"}, {Title: "Go Tutorial Episode 2"}}, "Go Tutorial Episode" + PlaylistSuffix},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractPlaylistTitle(tt.videos); got != tt.expected {
				t.Errorf("extractPlaylistTitle() = %q, expected %q", got, tt.expected)
			}
		})
	}
}
