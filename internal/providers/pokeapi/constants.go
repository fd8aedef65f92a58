package pokeapi

import "time"

const (
	defaultBaseURL     = "https://pokeapi.co/api/v2"
	defaultHTTPTimeout = 30 * time.Second
	defaultDelay       = 100 * time.Millisecond

	// Highest pokemon ID the detail endpoint serves.
	maxPokemonID = 1010

	// Page size requested from list endpoints; the upstream default.
	defaultListLimit = 20
)

// Resource names served by this provider.
const (
	ResourcePokemonDetails = "pokemon_details"
	ResourceBerries        = "berries"
	ResourceAbilities      = "abilities"
	ResourceMoves          = "moves"
	ResourceTypes          = "types"
)
