package roster

// GetPlayersInput contains parameters for retrieving the roster
type GetPlayersInput struct{}

// GetPlayersOutput contains the ordered player list.
// Players is empty (never nil) when no roster has been saved yet.
type GetPlayersOutput struct {
	Players []string
}

// SavePlayersInput contains the ordered player list to persist
type SavePlayersInput struct {
	Players []string
}
