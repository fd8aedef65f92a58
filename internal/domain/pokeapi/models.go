package pokeapi

import "game-data-pipeline/internal/pipeline"

// PokemonColumns declares the pokemon_details table shape.
var PokemonColumns = []string{
	"id", "name", "height", "weight", "base_experience", "is_default",
	"order", "species", "types", "abilities", "moves", "stats",
	"sprite_front_default", "sprite_back_default", "sprite_front_shiny",
	"sprite_back_shiny",
}

// PokemonDetail is the flattened per-pokemon record.
type PokemonDetail struct {
	ID                 int64
	Name               string
	Height             int64
	Weight             int64
	BaseExperience     int64
	IsDefault          bool
	Order              int64
	Species            string
	Types              []string
	Abilities          []string
	Moves              []string
	Stats              map[string]int64
	SpriteFrontDefault *string
	SpriteBackDefault  *string
	SpriteFrontShiny   *string
	SpriteBackShiny    *string
}

func (p PokemonDetail) Row() pipeline.Record {
	return pipeline.Record{
		"id":                   p.ID,
		"name":                 p.Name,
		"height":               p.Height,
		"weight":               p.Weight,
		"base_experience":      p.BaseExperience,
		"is_default":           p.IsDefault,
		"order":                p.Order,
		"species":              p.Species,
		"types":                p.Types,
		"abilities":            p.Abilities,
		"moves":                p.Moves,
		"stats":                p.Stats,
		"sprite_front_default": nullableString(p.SpriteFrontDefault),
		"sprite_back_default":  nullableString(p.SpriteBackDefault),
		"sprite_front_shiny":   nullableString(p.SpriteFrontShiny),
		"sprite_back_shiny":    nullableString(p.SpriteBackShiny),
	}
}

// BerryColumns declares the berries table shape.
var BerryColumns = []string{
	"id", "name", "growth_time", "max_harvest", "natural_gift_power", "size",
	"smoothness", "soil_dryness", "firmness", "flavors", "item",
}

// Berry is the flattened berry record.
type Berry struct {
	ID               int64
	Name             string
	GrowthTime       int64
	MaxHarvest       int64
	NaturalGiftPower int64
	Size             int64
	Smoothness       int64
	SoilDryness      int64
	Firmness         string
	Flavors          map[string]int64
	Item             *string
}

func (b Berry) Row() pipeline.Record {
	return pipeline.Record{
		"id":                 b.ID,
		"name":               b.Name,
		"growth_time":        b.GrowthTime,
		"max_harvest":        b.MaxHarvest,
		"natural_gift_power": b.NaturalGiftPower,
		"size":               b.Size,
		"smoothness":         b.Smoothness,
		"soil_dryness":       b.SoilDryness,
		"firmness":           b.Firmness,
		"flavors":            b.Flavors,
		"item":               nullableString(b.Item),
	}
}

// AbilityColumns declares the abilities table shape.
var AbilityColumns = []string{
	"id", "name", "is_main_series", "generation", "effect", "short_effect",
	"pokemon",
}

// Ability is the flattened ability record. Effect fields take the first
// effect-description entry when present.
type Ability struct {
	ID           int64
	Name         string
	IsMainSeries bool
	Generation   string
	Effect       *string
	ShortEffect  *string
	Pokemon      []string
}

func (a Ability) Row() pipeline.Record {
	return pipeline.Record{
		"id":             a.ID,
		"name":           a.Name,
		"is_main_series": a.IsMainSeries,
		"generation":     a.Generation,
		"effect":         nullableString(a.Effect),
		"short_effect":   nullableString(a.ShortEffect),
		"pokemon":        a.Pokemon,
	}
}

// MoveColumns declares the moves table shape.
var MoveColumns = []string{
	"id", "name", "accuracy", "effect_chance", "pp", "priority", "power",
	"damage_class", "type", "generation", "effect", "short_effect",
}

// Move is the flattened move record. Accuracy, effect chance and power are
// null for moves the source API leaves unset.
type Move struct {
	ID           int64
	Name         string
	Accuracy     *int64
	EffectChance *int64
	PP           int64
	Priority     int64
	Power        *int64
	DamageClass  string
	Type         string
	Generation   string
	Effect       *string
	ShortEffect  *string
}

func (m Move) Row() pipeline.Record {
	return pipeline.Record{
		"id":            m.ID,
		"name":          m.Name,
		"accuracy":      nullableInt(m.Accuracy),
		"effect_chance": nullableInt(m.EffectChance),
		"pp":            m.PP,
		"priority":      m.Priority,
		"power":         nullableInt(m.Power),
		"damage_class":  m.DamageClass,
		"type":          m.Type,
		"generation":    m.Generation,
		"effect":        nullableString(m.Effect),
		"short_effect":  nullableString(m.ShortEffect),
	}
}

// TypeColumns declares the types table shape.
var TypeColumns = []string{
	"id", "name", "generation", "double_damage_from", "double_damage_to",
	"half_damage_from", "half_damage_to", "no_damage_from", "no_damage_to",
	"pokemon",
}

// TypeRecord is the flattened type record with its damage-relation name lists.
type TypeRecord struct {
	ID               int64
	Name             string
	Generation       string
	DoubleDamageFrom []string
	DoubleDamageTo   []string
	HalfDamageFrom   []string
	HalfDamageTo     []string
	NoDamageFrom     []string
	NoDamageTo       []string
	Pokemon          []string
}

func (t TypeRecord) Row() pipeline.Record {
	return pipeline.Record{
		"id":                 t.ID,
		"name":               t.Name,
		"generation":         t.Generation,
		"double_damage_from": t.DoubleDamageFrom,
		"double_damage_to":   t.DoubleDamageTo,
		"half_damage_from":   t.HalfDamageFrom,
		"half_damage_to":     t.HalfDamageTo,
		"no_damage_from":     t.NoDamageFrom,
		"no_damage_to":       t.NoDamageTo,
		"pokemon":            t.Pokemon,
	}
}

func nullableString(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func nullableInt(i *int64) any {
	if i == nil {
		return nil
	}
	return *i
}
