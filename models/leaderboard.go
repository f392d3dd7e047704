package models

// TodayEntry is one ranked row of the daily leaderboard.
type TodayEntry struct {
	UserID    string `json:"user_id"`
	UserName  string `json:"user_name"`
	Score     int    `json:"score"`
	TimeTaken int    `json:"time_taken"`
	Rank      int    `json:"rank"`
	Date      string `json:"date"`
}

// AllTimeEntry is one ranked row of the cumulative leaderboard, aggregated
// across every daily record a user has posted.
type AllTimeEntry struct {
	UserID      string `json:"user_id"`
	UserName    string `json:"user_name"`
	TotalScore  int    `json:"total_score"`
	BestScore   int    `json:"best_score"`
	GamesPlayed int    `json:"games_played"`
	Rank        int    `json:"rank"`
}
