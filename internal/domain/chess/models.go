package chess

import (
	"time"

	"game-data-pipeline/internal/pipeline"
)

// ProfileColumns declares the players_profiles table shape.
var ProfileColumns = []string{
	"username", "player_id", "name", "title", "followers", "country",
	"location", "status", "is_streamer", "verified", "joined", "last_online",
	"url", "avatar",
}

// PlayerProfile is the flattened chess.com player profile record.
type PlayerProfile struct {
	Username   string
	PlayerID   int64
	Name       *string
	Title      *string
	Followers  int64
	Country    *string
	Location   *string
	Status     string
	IsStreamer bool
	Verified   bool
	Joined     int64
	LastOnline int64
	URL        string
	Avatar     *string
}

func (p PlayerProfile) Row() pipeline.Record {
	return pipeline.Record{
		"username":    p.Username,
		"player_id":   p.PlayerID,
		"name":        nullableString(p.Name),
		"title":       nullableString(p.Title),
		"followers":   p.Followers,
		"country":     nullableString(p.Country),
		"location":    nullableString(p.Location),
		"status":      p.Status,
		"is_streamer": p.IsStreamer,
		"verified":    p.Verified,
		"joined":      p.Joined,
		"last_online": p.LastOnline,
		"url":         p.URL,
		"avatar":      nullableString(p.Avatar),
	}
}

// GameColumns declares the players_games table shape.
var GameColumns = []string{
	"username", "url", "end_time", "rated", "time_class", "time_control",
	"rules", "eco", "white_username", "white_rating", "white_result",
	"black_username", "black_rating", "black_result", "pgn",
}

// GameRecord is one finished game from a player's monthly archive.
type GameRecord struct {
	Username      string
	URL           string
	EndTime       int64
	Rated         bool
	TimeClass     string
	TimeControl   string
	Rules         string
	ECO           *string
	WhiteUsername string
	WhiteRating   int64
	WhiteResult   string
	BlackUsername string
	BlackRating   int64
	BlackResult   string
	PGN           string
}

func (g GameRecord) Row() pipeline.Record {
	return pipeline.Record{
		"username":       g.Username,
		"url":            g.URL,
		"end_time":       g.EndTime,
		"rated":          g.Rated,
		"time_class":     g.TimeClass,
		"time_control":   g.TimeControl,
		"rules":          g.Rules,
		"eco":            nullableString(g.ECO),
		"white_username": g.WhiteUsername,
		"white_rating":   g.WhiteRating,
		"white_result":   g.WhiteResult,
		"black_username": g.BlackUsername,
		"black_rating":   g.BlackRating,
		"black_result":   g.BlackResult,
		"pgn":            g.PGN,
	}
}

// OnlineStatusColumns declares the players_online_status table shape.
var OnlineStatusColumns = []string{"username", "last_online", "checked_at", "is_online"}

// OnlineStatus records whether a player looked active at probe time.
type OnlineStatus struct {
	Username   string
	LastOnline int64
	CheckedAt  time.Time
	IsOnline   bool
}

func (s OnlineStatus) Row() pipeline.Record {
	return pipeline.Record{
		"username":    s.Username,
		"last_online": s.LastOnline,
		"checked_at":  s.CheckedAt,
		"is_online":   s.IsOnline,
	}
}

// ArchiveColumns declares the players_archives table shape.
var ArchiveColumns = []string{"username", "url", "month"}

// Archive is one monthly archive URL available for a player.
type Archive struct {
	Username string
	URL      string
	Month    string
}

func (a Archive) Row() pipeline.Record {
	return pipeline.Record{
		"username": a.Username,
		"url":      a.URL,
		"month":    a.Month,
	}
}

func nullableString(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}
