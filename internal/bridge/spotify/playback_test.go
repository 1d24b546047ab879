package spotify

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/pecas-dev/twistcaller/internal/models"
	"github.com/pecas-dev/twistcaller/internal/repositories/settings"
)

func (s *ClientTestSuite) TestSearchPlaylistsParsesResults() {
	s.saveTokens("access", s.now.Add(time.Hour))

	s.apiHandler = func(w http.ResponseWriter, r *http.Request) {
		s.Equal("/v1/search", r.URL.Path)
		q := r.URL.Query()
		s.Equal("party", q.Get("q"))
		s.Equal("playlist", q.Get("type"))
		s.Equal("8", q.Get("limit"))

		// The service can hand back null entries
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"playlists": {
				"items": [
					{
						"id": "pl1",
						"name": "Party Hits",
						"owner": {"display_name": "DJ Host"},
						"tracks": {"total": 42},
						"images": [{"url": "https://img.example/pl1.jpg"}]
					},
					null,
					{
						"id": "pl2",
						"name": "Chill",
						"owner": {"display_name": ""},
						"tracks": {"total": 7},
						"images": []
					}
				]
			}
		}`))
	}

	results, err := s.client.SearchPlaylists(s.ctx, "party")
	s.Require().NoError(err)

	s.Require().Len(results, 2)
	s.Equal(&models.PlaylistSummary{
		ID:         "pl1",
		Name:       "Party Hits",
		OwnerName:  "DJ Host",
		TrackCount: 42,
		CoverURL:   "https://img.example/pl1.jpg",
	}, results[0])
	s.Equal("pl2", results[1].ID)
	s.Empty(results[1].CoverURL)
}

func (s *ClientTestSuite) TestPlayUsesSelectedPlaylistAndActiveDevice() {
	s.saveTokens("access", s.now.Add(time.Hour))
	err := s.client.SelectPlaylist(s.ctx, &models.Playlist{ID: "pl1", Name: "Party Hits"})
	s.Require().NoError(err)

	var playBody map[string]string
	s.apiHandler = func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/me/player/devices":
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"devices": [
				{"id": "idle-device", "is_active": false},
				{"id": "living-room", "is_active": true}
			]}`))
		case "/v1/me/player/play":
			s.Equal(http.MethodPut, r.Method)
			s.Equal("living-room", r.URL.Query().Get("device_id"))
			s.Require().NoError(json.NewDecoder(r.Body).Decode(&playBody))
			w.WriteHeader(http.StatusNoContent)
		default:
			s.Failf("unexpected request", "path %s", r.URL.Path)
		}
	}

	err = s.client.Play(s.ctx)
	s.Require().NoError(err)
	s.Equal("spotify:playlist:pl1", playBody["context_uri"])
}

func (s *ClientTestSuite) TestNowPlaying() {
	s.saveTokens("access", s.now.Add(time.Hour))

	s.apiHandler = func(w http.ResponseWriter, r *http.Request) {
		s.Equal("/v1/me/player", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"is_playing": true,
			"item": {
				"name": "Twist and Shout",
				"artists": [{"name": "The Beatles"}, {"name": "Someone Else"}]
			}
		}`))
	}

	np, err := s.client.NowPlaying(s.ctx)
	s.Require().NoError(err)
	s.Equal("Twist and Shout", np.TrackName)
	s.Equal("The Beatles, Someone Else", np.ArtistNames)
	s.True(np.Playing)
}

func (s *ClientTestSuite) TestNowPlayingNoActivePlayer() {
	s.saveTokens("access", s.now.Add(time.Hour))

	s.apiHandler = func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}

	np, err := s.client.NowPlaying(s.ctx)
	s.Require().NoError(err)
	s.Empty(np.TrackName)
	s.False(np.Playing)

	playing, err := s.client.IsPlaying(s.ctx)
	s.Require().NoError(err)
	s.False(playing)
}

func (s *ClientTestSuite) TestSetVolumeRange() {
	s.Require().Error(s.client.SetVolume(s.ctx, -1))
	s.Require().Error(s.client.SetVolume(s.ctx, 101))

	s.saveTokens("access", s.now.Add(time.Hour))
	s.apiHandler = func(w http.ResponseWriter, r *http.Request) {
		s.Equal("/v1/me/player/volume", r.URL.Path)
		s.Equal("35", r.URL.Query().Get("volume_percent"))
		w.WriteHeader(http.StatusNoContent)
	}
	s.Require().NoError(s.client.SetVolume(s.ctx, 35))
}

func (s *ClientTestSuite) TestSelectPlaylistPersists() {
	err := s.client.SelectPlaylist(s.ctx, &models.Playlist{ID: "pl9", Name: "Warmup"})
	s.Require().NoError(err)

	output, err := s.settings.GetPlaylist(s.ctx, &settings.GetPlaylistInput{})
	s.Require().NoError(err)
	s.Equal("pl9", output.Playlist.ID)
}
