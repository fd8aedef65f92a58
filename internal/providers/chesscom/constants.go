package chesscom

import "time"

const (
	defaultBaseURL     = "https://api.chess.com/pub"
	defaultHTTPTimeout = 30 * time.Second
	defaultDelay       = 100 * time.Millisecond

	// A player counts as online when last_online is within this window of the
	// probe time.
	onlineWindow = 5 * time.Minute
)

// Resource names served by this provider.
const (
	ResourceProfiles     = "players_profiles"
	ResourceGames        = "players_games"
	ResourceOnlineStatus = "players_online_status"
	ResourceArchives     = "players_archives"
)
