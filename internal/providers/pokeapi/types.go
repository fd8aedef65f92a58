package pokeapi

const providerName = "pokeapi"

type namedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type listResponse struct {
	Count   int             `json:"count"`
	Results []namedResource `json:"results"`
}

type pokemonResponse struct {
	ID             int64           `json:"id"`
	Name           string          `json:"name"`
	Height         int64           `json:"height"`
	Weight         int64           `json:"weight"`
	BaseExperience int64           `json:"base_experience"`
	IsDefault      bool            `json:"is_default"`
	Order          int64           `json:"order"`
	Species        namedResource   `json:"species"`
	Types          []typeSlot      `json:"types"`
	Abilities      []abilitySlot   `json:"abilities"`
	Moves          []moveSlot      `json:"moves"`
	Stats          []statEntry     `json:"stats"`
	Sprites        spritesResponse `json:"sprites"`
}

type typeSlot struct {
	Slot int           `json:"slot"`
	Type namedResource `json:"type"`
}

type abilitySlot struct {
	Ability namedResource `json:"ability"`
}

type moveSlot struct {
	Move namedResource `json:"move"`
}

type statEntry struct {
	BaseStat int64         `json:"base_stat"`
	Stat     namedResource `json:"stat"`
}

type spritesResponse struct {
	FrontDefault *string `json:"front_default"`
	BackDefault  *string `json:"back_default"`
	FrontShiny   *string `json:"front_shiny"`
	BackShiny    *string `json:"back_shiny"`
}

type berryResponse struct {
	ID               int64          `json:"id"`
	Name             string         `json:"name"`
	GrowthTime       int64          `json:"growth_time"`
	MaxHarvest       int64          `json:"max_harvest"`
	NaturalGiftPower int64          `json:"natural_gift_power"`
	Size             int64          `json:"size"`
	Smoothness       int64          `json:"smoothness"`
	SoilDryness      int64          `json:"soil_dryness"`
	Firmness         namedResource  `json:"firmness"`
	Flavors          []flavorEntry  `json:"flavors"`
	Item             *namedResource `json:"item"`
}

type flavorEntry struct {
	Potency int64         `json:"potency"`
	Flavor  namedResource `json:"flavor"`
}

type effectEntry struct {
	Effect      string        `json:"effect"`
	ShortEffect string        `json:"short_effect"`
	Language    namedResource `json:"language"`
}

type abilityResponse struct {
	ID            int64         `json:"id"`
	Name          string        `json:"name"`
	IsMainSeries  bool          `json:"is_main_series"`
	Generation    namedResource `json:"generation"`
	EffectEntries []effectEntry `json:"effect_entries"`
	Pokemon       []pokemonSlot `json:"pokemon"`
}

type pokemonSlot struct {
	Pokemon namedResource `json:"pokemon"`
}

type moveResponse struct {
	ID            int64         `json:"id"`
	Name          string        `json:"name"`
	Accuracy      *int64        `json:"accuracy"`
	EffectChance  *int64        `json:"effect_chance"`
	PP            int64         `json:"pp"`
	Priority      int64         `json:"priority"`
	Power         *int64        `json:"power"`
	DamageClass   namedResource `json:"damage_class"`
	Type          namedResource `json:"type"`
	Generation    namedResource `json:"generation"`
	EffectEntries []effectEntry `json:"effect_entries"`
}

type typeResponse struct {
	ID              int64           `json:"id"`
	Name            string          `json:"name"`
	Generation      namedResource   `json:"generation"`
	DamageRelations damageRelations `json:"damage_relations"`
	Pokemon         []pokemonSlot   `json:"pokemon"`
}

type damageRelations struct {
	DoubleDamageFrom []namedResource `json:"double_damage_from"`
	DoubleDamageTo   []namedResource `json:"double_damage_to"`
	HalfDamageFrom   []namedResource `json:"half_damage_from"`
	HalfDamageTo     []namedResource `json:"half_damage_to"`
	NoDamageFrom     []namedResource `json:"no_damage_from"`
	NoDamageTo       []namedResource `json:"no_damage_to"`
}
