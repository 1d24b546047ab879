package challenge

import "github.com/pecas-dev/twistcaller/internal/models"

// catalog is the fixed set of challenges. Hosts can disable entries but
// not add their own.
var catalog = []models.Challenge{
	{ID: 1, Text: "Hold for 10 seconds!", Icon: "⏱️"},
	{ID: 2, Text: "Eyes closed for next move!", Icon: "👁️"},
	{ID: 3, Text: "Switch spots with another player!", Icon: "🔄"},
	{ID: 4, Text: "Freeze! Everyone hold position for 5 seconds!", Icon: "🧊"},
	{ID: 5, Text: "Double move - place two limbs!", Icon: "✌️"},
	{ID: 6, Text: "Spin 360° before your next move!", Icon: "🌀"},
	{ID: 7, Text: "Touch your nose while in position!", Icon: "👃"},
	{ID: 8, Text: "Balance on one foot only!", Icon: "🦩"},
	{ID: 9, Text: "Make this move in slow motion!", Icon: "🐌"},
	{ID: 10, Text: "Wild card - choose any spot!", Icon: "🎲"},
}

// knownChallenge reports whether the given ID exists in the catalog
func knownChallenge(id int) bool {
	for _, c := range catalog {
		if c.ID == id {
			return true
		}
	}
	return false
}
