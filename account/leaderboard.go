package account

import (
	"io"
	"sort"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Leaderboard returns every account ordered by wins, then total score,
// then username.
func (s *FileStore) Leaderboard() []Account {
	list := s.accounts()
	sort.Slice(list, func(i, j int) bool {
		if list[i].Wins != list[j].Wins {
			return list[i].Wins > list[j].Wins
		}
		if list[i].TotalScore != list[j].TotalScore {
			return list[i].TotalScore > list[j].TotalScore
		}
		return list[i].Username < list[j].Username
	})
	return list
}

// LeaderboardEntry is the export form of one ranked account. Passwords
// never leave the store.
type LeaderboardEntry struct {
	Rank        int    `json:"rank"`
	Username    string `json:"username"`
	GamesPlayed int    `json:"gamesPlayed"`
	Wins        int    `json:"wins"`
	TotalScore  int    `json:"totalScore"`
}

// ExportLeaderboard writes the ranked standings to w as JSON.
func (s *FileStore) ExportLeaderboard(w io.Writer) error {
	ranked := s.Leaderboard()
	entries := make([]LeaderboardEntry, len(ranked))
	for i, acct := range ranked {
		entries[i] = LeaderboardEntry{
			Rank:        i + 1,
			Username:    acct.Username,
			GamesPlayed: acct.GamesPlayed,
			Wins:        acct.Wins,
			TotalScore:  acct.TotalScore,
		}
	}
	encoded, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(append(encoded, '\n'))
	return err
}
