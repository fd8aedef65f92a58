package pokeapi

import (
	"context"
	"time"

	domainpoke "game-data-pipeline/internal/domain/pokeapi"
	"game-data-pipeline/internal/logging"
	"game-data-pipeline/internal/pipeline"
	"game-data-pipeline/internal/providers"
)

// Sources returns every PokeAPI sequence keyed by resource name.
func (c *Client) Sources() map[string]pipeline.Source {
	return map[string]pipeline.Source{
		ResourcePokemonDetails: c.PokemonDetails(),
		ResourceBerries:        c.Berries(),
		ResourceAbilities:      c.Abilities(),
		ResourceMoves:          c.Moves(),
		ResourceTypes:          c.Types(),
	}
}

// PokemonDetails yields one flattened record per pokemon, iterating IDs from
// 1 up to the known maximum in ascending order. A failed ID is logged and
// skipped. Callers cap the sequence with providers.WithLimit.
func (c *Client) PokemonDetails() pipeline.Source {
	return providers.NewSequence(ResourcePokemonDetails, domainpoke.PokemonColumns, func(ctx context.Context, emit func(pipeline.Record) error) error {
		first := true
		for id := 1; id <= maxPokemonID; id++ {
			if err := c.paceAfterFirst(ctx, &first); err != nil {
				return err
			}
			var payload pokemonResponse
			start := time.Now()
			err := c.getJSON(ctx, c.pokemonURL(id), &payload)
			c.observe(ctx, ResourcePokemonDetails, start, err)
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				logging.Warn(c.logger, "pokemon fetch failed", logging.FieldItem, id, "error", err)
				continue
			}
			if err := emit(mapPokemon(payload).Row()); err != nil {
				return err
			}
		}
		return nil
	})
}

// Berries yields one flattened record per berry from the list endpoint.
func (c *Client) Berries() pipeline.Source {
	return c.listDetailSequence(ResourceBerries, "berry", domainpoke.BerryColumns, func(ctx context.Context, url string) (pipeline.Record, error) {
		var payload berryResponse
		if err := c.getJSON(ctx, url, &payload); err != nil {
			return nil, err
		}
		return mapBerry(payload).Row(), nil
	})
}

// Abilities yields one flattened record per ability from the list endpoint.
func (c *Client) Abilities() pipeline.Source {
	return c.listDetailSequence(ResourceAbilities, "ability", domainpoke.AbilityColumns, func(ctx context.Context, url string) (pipeline.Record, error) {
		var payload abilityResponse
		if err := c.getJSON(ctx, url, &payload); err != nil {
			return nil, err
		}
		return mapAbility(payload).Row(), nil
	})
}

// Moves yields one flattened record per move from the list endpoint.
func (c *Client) Moves() pipeline.Source {
	return c.listDetailSequence(ResourceMoves, "move", domainpoke.MoveColumns, func(ctx context.Context, url string) (pipeline.Record, error) {
		var payload moveResponse
		if err := c.getJSON(ctx, url, &payload); err != nil {
			return nil, err
		}
		return mapMove(payload).Row(), nil
	})
}

// Types yields one flattened record per type from the list endpoint.
func (c *Client) Types() pipeline.Source {
	return c.listDetailSequence(ResourceTypes, "type", domainpoke.TypeColumns, func(ctx context.Context, url string) (pipeline.Record, error) {
		var payload typeResponse
		if err := c.getJSON(ctx, url, &payload); err != nil {
			return nil, err
		}
		return mapType(payload).Row(), nil
	})
}

// listDetailSequence drives a list endpoint, then one detail request per list
// entry in list order. A failed detail fetch is logged and that entry is
// skipped; a failed list fetch logs and yields an empty sequence.
func (c *Client) listDetailSequence(resource, kind string, columns []string, item func(ctx context.Context, url string) (pipeline.Record, error)) pipeline.Source {
	return providers.NewSequence(resource, columns, func(ctx context.Context, emit func(pipeline.Record) error) error {
		start := time.Now()
		entries, err := c.fetchList(ctx, kind)
		c.observe(ctx, resource, start, err)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			logging.Warn(c.logger, "list fetch failed", logging.FieldResource, resource, "error", err)
			return nil
		}

		first := true
		for _, entry := range entries {
			if err := c.paceAfterFirst(ctx, &first); err != nil {
				return err
			}
			start := time.Now()
			rec, err := item(ctx, entry.URL)
			c.observe(ctx, resource, start, err)
			if err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				logging.Warn(c.logger, "detail fetch failed",
					logging.FieldResource, resource,
					logging.FieldItem, entry.Name,
					"error", err,
				)
				continue
			}
			if err := emit(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

// paceAfterFirst applies the fixed delay before every request but the first.
func (c *Client) paceAfterFirst(ctx context.Context, first *bool) error {
	if *first {
		*first = false
		return nil
	}
	return c.pace(ctx)
}
