package spotify

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/pecas-dev/twistcaller/internal/models"
)

const searchLimit = 8

// searchReply is the subset of the search endpoint's reply we read.
// The items array can contain nulls, so entries are pointers.
type searchReply struct {
	Playlists struct {
		Items []*struct {
			ID    string `json:"id"`
			Name  string `json:"name"`
			Owner struct {
				DisplayName string `json:"display_name"`
			} `json:"owner"`
			Tracks struct {
				Total int `json:"total"`
			} `json:"tracks"`
			Images []struct {
				URL string `json:"url"`
			} `json:"images"`
		} `json:"items"`
	} `json:"playlists"`
}

// SearchPlaylists searches the catalog by name
func (c *Client) SearchPlaylists(ctx context.Context, query string) ([]*models.PlaylistSummary, error) {
	if query == "" {
		return nil, errors.New("query cannot be empty")
	}

	q := url.Values{}
	q.Set("q", query)
	q.Set("type", "playlist")
	q.Set("limit", strconv.Itoa(searchLimit))

	resp, err := c.do(ctx, http.MethodGet, "/v1/search?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	var reply searchReply
	if err := decodeOrError(resp, &reply); err != nil {
		return nil, err
	}

	results := make([]*models.PlaylistSummary, 0, searchLimit)
	for _, item := range reply.Playlists.Items {
		if item == nil || item.ID == "" {
			continue
		}

		summary := &models.PlaylistSummary{
			ID:         item.ID,
			Name:       item.Name,
			OwnerName:  item.Owner.DisplayName,
			TrackCount: item.Tracks.Total,
		}
		if len(item.Images) > 0 {
			summary.CoverURL = item.Images[0].URL
		}
		results = append(results, summary)
	}

	return results, nil
}
