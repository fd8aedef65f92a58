package chesscom

const providerName = "chesscom"

type profileResponse struct {
	PlayerID   int64   `json:"player_id"`
	Username   string  `json:"username"`
	Name       *string `json:"name"`
	Title      *string `json:"title"`
	Followers  int64   `json:"followers"`
	Country    string  `json:"country"`
	Location   *string `json:"location"`
	LastOnline int64   `json:"last_online"`
	Joined     int64   `json:"joined"`
	Status     string  `json:"status"`
	IsStreamer bool    `json:"is_streamer"`
	Verified   bool    `json:"verified"`
	URL        string  `json:"url"`
	Avatar     *string `json:"avatar"`
}

type archivesResponse struct {
	Archives []string `json:"archives"`
}

type monthlyGamesResponse struct {
	Games []gameResponse `json:"games"`
}

type gameResponse struct {
	URL         string             `json:"url"`
	PGN         string             `json:"pgn"`
	TimeControl string             `json:"time_control"`
	EndTime     int64              `json:"end_time"`
	Rated       bool               `json:"rated"`
	TimeClass   string             `json:"time_class"`
	Rules       string             `json:"rules"`
	ECO         *string            `json:"eco"`
	White       playerSideResponse `json:"white"`
	Black       playerSideResponse `json:"black"`
}

type playerSideResponse struct {
	Username string `json:"username"`
	Rating   int64  `json:"rating"`
	Result   string `json:"result"`
}
