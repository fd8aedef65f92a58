package chesscom

import (
	"strings"
	"time"

	"game-data-pipeline/internal/domain/chess"
)

func mapProfile(username string, p profileResponse) chess.PlayerProfile {
	name := username
	if p.Username != "" {
		name = p.Username
	}
	return chess.PlayerProfile{
		Username:   name,
		PlayerID:   p.PlayerID,
		Name:       p.Name,
		Title:      p.Title,
		Followers:  p.Followers,
		Country:    countryCode(p.Country),
		Location:   p.Location,
		Status:     p.Status,
		IsStreamer: p.IsStreamer,
		Verified:   p.Verified,
		Joined:     p.Joined,
		LastOnline: p.LastOnline,
		URL:        p.URL,
		Avatar:     p.Avatar,
	}
}

func mapOnlineStatus(username string, p profileResponse, checkedAt time.Time) chess.OnlineStatus {
	lastOnline := time.Unix(p.LastOnline, 0).UTC()
	return chess.OnlineStatus{
		Username:   username,
		LastOnline: p.LastOnline,
		CheckedAt:  checkedAt,
		IsOnline:   p.LastOnline > 0 && checkedAt.Sub(lastOnline) <= onlineWindow,
	}
}

func mapGame(username string, g gameResponse) chess.GameRecord {
	return chess.GameRecord{
		Username:      username,
		URL:           g.URL,
		EndTime:       g.EndTime,
		Rated:         g.Rated,
		TimeClass:     g.TimeClass,
		TimeControl:   g.TimeControl,
		Rules:         g.Rules,
		ECO:           g.ECO,
		WhiteUsername: g.White.Username,
		WhiteRating:   g.White.Rating,
		WhiteResult:   g.White.Result,
		BlackUsername: g.Black.Username,
		BlackRating:   g.Black.Rating,
		BlackResult:   g.Black.Result,
		PGN:           g.PGN,
	}
}

func mapArchive(username, url string) chess.Archive {
	return chess.Archive{
		Username: username,
		URL:      url,
		Month:    archiveMonth(url),
	}
}

// archiveMonth extracts the trailing YYYY/MM from an archive URL.
func archiveMonth(url string) string {
	parts := strings.Split(strings.TrimSuffix(url, "/"), "/")
	if len(parts) < 2 {
		return ""
	}
	return parts[len(parts)-2] + "/" + parts[len(parts)-1]
}

// countryCode reduces the profile's country URL to its trailing ISO code.
func countryCode(url string) *string {
	trimmed := strings.TrimSuffix(url, "/")
	if trimmed == "" {
		return nil
	}
	idx := strings.LastIndex(trimmed, "/")
	code := trimmed[idx+1:]
	if code == "" {
		return nil
	}
	return &code
}
