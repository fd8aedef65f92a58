package pokeapi

import domainpoke "game-data-pipeline/internal/domain/pokeapi"

func mapPokemon(p pokemonResponse) domainpoke.PokemonDetail {
	types := make([]string, 0, len(p.Types))
	for _, t := range p.Types {
		types = append(types, t.Type.Name)
	}
	abilities := make([]string, 0, len(p.Abilities))
	for _, a := range p.Abilities {
		abilities = append(abilities, a.Ability.Name)
	}
	moves := make([]string, 0, len(p.Moves))
	for _, m := range p.Moves {
		moves = append(moves, m.Move.Name)
	}
	stats := make(map[string]int64, len(p.Stats))
	for _, s := range p.Stats {
		stats[s.Stat.Name] = s.BaseStat
	}

	return domainpoke.PokemonDetail{
		ID:                 p.ID,
		Name:               p.Name,
		Height:             p.Height,
		Weight:             p.Weight,
		BaseExperience:     p.BaseExperience,
		IsDefault:          p.IsDefault,
		Order:              p.Order,
		Species:            p.Species.Name,
		Types:              types,
		Abilities:          abilities,
		Moves:              moves,
		Stats:              stats,
		SpriteFrontDefault: p.Sprites.FrontDefault,
		SpriteBackDefault:  p.Sprites.BackDefault,
		SpriteFrontShiny:   p.Sprites.FrontShiny,
		SpriteBackShiny:    p.Sprites.BackShiny,
	}
}

func mapBerry(b berryResponse) domainpoke.Berry {
	flavors := make(map[string]int64, len(b.Flavors))
	for _, f := range b.Flavors {
		flavors[f.Flavor.Name] = f.Potency
	}

	var item *string
	if b.Item != nil {
		name := b.Item.Name
		item = &name
	}

	return domainpoke.Berry{
		ID:               b.ID,
		Name:             b.Name,
		GrowthTime:       b.GrowthTime,
		MaxHarvest:       b.MaxHarvest,
		NaturalGiftPower: b.NaturalGiftPower,
		Size:             b.Size,
		Smoothness:       b.Smoothness,
		SoilDryness:      b.SoilDryness,
		Firmness:         b.Firmness.Name,
		Flavors:          flavors,
		Item:             item,
	}
}

func mapAbility(a abilityResponse) domainpoke.Ability {
	pokemon := make([]string, 0, len(a.Pokemon))
	for _, p := range a.Pokemon {
		pokemon = append(pokemon, p.Pokemon.Name)
	}

	effect, shortEffect := firstEffect(a.EffectEntries)
	return domainpoke.Ability{
		ID:           a.ID,
		Name:         a.Name,
		IsMainSeries: a.IsMainSeries,
		Generation:   a.Generation.Name,
		Effect:       effect,
		ShortEffect:  shortEffect,
		Pokemon:      pokemon,
	}
}

func mapMove(m moveResponse) domainpoke.Move {
	effect, shortEffect := firstEffect(m.EffectEntries)
	return domainpoke.Move{
		ID:           m.ID,
		Name:         m.Name,
		Accuracy:     m.Accuracy,
		EffectChance: m.EffectChance,
		PP:           m.PP,
		Priority:     m.Priority,
		Power:        m.Power,
		DamageClass:  m.DamageClass.Name,
		Type:         m.Type.Name,
		Generation:   m.Generation.Name,
		Effect:       effect,
		ShortEffect:  shortEffect,
	}
}

func mapType(t typeResponse) domainpoke.TypeRecord {
	pokemon := make([]string, 0, len(t.Pokemon))
	for _, p := range t.Pokemon {
		pokemon = append(pokemon, p.Pokemon.Name)
	}

	return domainpoke.TypeRecord{
		ID:               t.ID,
		Name:             t.Name,
		Generation:       t.Generation.Name,
		DoubleDamageFrom: names(t.DamageRelations.DoubleDamageFrom),
		DoubleDamageTo:   names(t.DamageRelations.DoubleDamageTo),
		HalfDamageFrom:   names(t.DamageRelations.HalfDamageFrom),
		HalfDamageTo:     names(t.DamageRelations.HalfDamageTo),
		NoDamageFrom:     names(t.DamageRelations.NoDamageFrom),
		NoDamageTo:       names(t.DamageRelations.NoDamageTo),
		Pokemon:          pokemon,
	}
}

// firstEffect takes the first effect-description entry, or nil when the
// source leaves the list empty.
func firstEffect(entries []effectEntry) (*string, *string) {
	if len(entries) == 0 {
		return nil, nil
	}
	effect := entries[0].Effect
	shortEffect := entries[0].ShortEffect
	return &effect, &shortEffect
}

func names(resources []namedResource) []string {
	out := make([]string, 0, len(resources))
	for _, r := range resources {
		out = append(out, r.Name)
	}
	return out
}
