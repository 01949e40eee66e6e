package model

import (
	"time"
)

// PlaylistVideo is a single entry of a playlist
type PlaylistVideo struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Duration string `json:"duration"`
	URL      string `json:"url"`
}

// Playlist is an ordered list of videos resolved from one source URL
type Playlist struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	URL         string           `json:"url"`
	Videos      []*PlaylistVideo `json:"videos"`
	TotalVideos int              `json:"total_videos"`
	CreatedAt   time.Time        `json:"created_at"`
}

// NewPlaylist creates an empty playlist for url
func NewPlaylist(url string) *Playlist {
	return &Playlist{
		URL:       url,
		Videos:    make([]*PlaylistVideo, 0),
		CreatedAt: time.Now(),
	}
}

// AddVideo appends a video to the playlist
func (p *Playlist) AddVideo(video *PlaylistVideo) {
	p.Videos = append(p.Videos, video)
	p.TotalVideos = len(p.Videos)
}

// URLs returns the video URLs in playlist order
func (p *Playlist) URLs() []string {
	urls := make([]string, 0, len(p.Videos))
	for _, v := range p.Videos {
		urls = append(urls, v.URL)
	}
	return urls
}
