package models

// Playlist is the persisted background-music selection
type Playlist struct {
	// ID is the streaming service's playlist identifier
	ID string `json:"id"`

	// Name is the display name of the playlist
	Name string `json:"name"`
}

// PlaylistSummary is one playlist search result
type PlaylistSummary struct {
	// ID is the streaming service's playlist identifier
	ID string `json:"id"`

	// Name is the display name of the playlist
	Name string `json:"name"`

	// OwnerName is the display name of the playlist owner
	OwnerName string `json:"ownerName"`

	// TrackCount is the number of tracks in the playlist
	TrackCount int `json:"trackCount"`

	// CoverURL is the playlist cover image, if any
	CoverURL string `json:"coverUrl,omitempty"`
}

// NowPlaying describes the track the bridge currently reports
type NowPlaying struct {
	// TrackName is the name of the current track
	TrackName string `json:"trackName"`

	// ArtistNames is the comma-joined artist list
	ArtistNames string `json:"artistNames"`

	// Playing indicates whether playback is active
	Playing bool `json:"playing"`
}
