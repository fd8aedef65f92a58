package config

const (
	envPokemonResources = "POKEMON_RESOURCES"
	envPokemonLimit     = "POKEMON_LIMIT"
	envPokeAPIBaseURL   = "POKEAPI_BASE_URL"

	defaultPokeAPIBaseURL = "https://pokeapi.co/api/v2"
	defaultPokemonDataset = "pokemon_data"
)

var defaultPokemonResources = []string{"pokemon_details"}

// PokemonConfig controls the PokeAPI pipeline run.
type PokemonConfig struct {
	BaseURL   string
	Dataset   string
	Resources []string
	// Limit caps the pokemon_details sequence; zero means no cap.
	Limit int
}

func loadPokemon() PokemonConfig {
	return PokemonConfig{
		BaseURL:   envOrDefault(envPokeAPIBaseURL, defaultPokeAPIBaseURL),
		Dataset:   defaultPokemonDataset,
		Resources: listEnvOrDefault(envPokemonResources, defaultPokemonResources),
		Limit:     intEnvOrDefault(envPokemonLimit, 0),
	}
}
