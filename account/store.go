// Package account keeps the per-user credential and statistics records
// behind a store abstraction: read-all at open, upsert by username, and
// atomic whole-file replace on every change.
package account

import (
	"bufio"
	"crypto/subtle"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/awesome-cap/hashmap"
	log "github.com/sirupsen/logrus"

	"github.com/unodesk/engine/consts"
)

// Account is one line of the account file:
// username,password,gamesPlayed,wins,totalScore. The password field holds
// an Argon2id hash, or a plaintext value in files from older builds.
type Account struct {
	Username    string
	Password    string
	GamesPlayed int
	Wins        int
	TotalScore  int
}

// Store is the capability surface the engine needs from account storage.
type Store interface {
	Authenticate(username, password string) (Account, error)
	Register(username, password string) (Account, error)
	Get(username string) (Account, bool)
	RecordResult(username string, won bool, score int) error
	Leaderboard() []Account
}

// FileStore is the flat-file Store. Records live in an in-memory map
// loaded wholesale at open; every mutation rewrites the file through a
// temp-file-then-rename swap.
type FileStore struct {
	path  string
	cache *hashmap.HashMap
}

func NewFileStore(path string) (*FileStore, error) {
	store := &FileStore{path: path, cache: hashmap.New()}
	if err := store.loadAll(); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *FileStore) loadAll() error {
	file, err := os.Open(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		acct, err := parseAccount(line)
		if err != nil {
			log.Warnf("skipping unreadable account line %q: %v", line, err)
			continue
		}
		s.cache.Set(acct.Username, acct)
	}
	return scanner.Err()
}

// parseAccount splits a record into username, password, and the three
// trailing counters. Encoded password hashes contain commas, so the
// password is everything between the first comma and the last three.
func parseAccount(line string) (Account, error) {
	parts := strings.Split(line, ",")
	if len(parts) < 5 {
		return Account{}, fmt.Errorf("expected at least 5 fields, got %d", len(parts))
	}
	games, err := strconv.Atoi(parts[len(parts)-3])
	if err != nil {
		return Account{}, err
	}
	wins, err := strconv.Atoi(parts[len(parts)-2])
	if err != nil {
		return Account{}, err
	}
	score, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		return Account{}, err
	}
	return Account{
		Username:    parts[0],
		Password:    strings.Join(parts[1:len(parts)-3], ","),
		GamesPlayed: games,
		Wins:        wins,
		TotalScore:  score,
	}, nil
}

func (s *FileStore) Get(username string) (Account, bool) {
	v, ok := s.cache.Get(username)
	if !ok {
		return Account{}, false
	}
	return v.(Account), true
}

// Register creates a new account with a hashed password and persists it.
func (s *FileStore) Register(username, password string) (Account, error) {
	if strings.ContainsAny(username, ",:") {
		return Account{}, consts.NewErr(1, false, "Username may not contain ',' or ':'. ")
	}
	if _, ok := s.cache.Get(username); ok {
		return Account{}, consts.ErrUserExists
	}
	hash, err := HashPassword(password)
	if err != nil {
		return Account{}, err
	}
	acct := Account{Username: username, Password: hash}
	s.cache.Set(username, acct)
	if err := s.flush(); err != nil {
		return Account{}, err
	}
	return acct, nil
}

// Authenticate verifies the password against the stored hash, falling
// back to a direct comparison for legacy plaintext records.
func (s *FileStore) Authenticate(username, password string) (Account, error) {
	acct, ok := s.Get(username)
	if !ok {
		return Account{}, consts.ErrUnknownUser
	}
	if IsHashed(acct.Password) {
		match, err := VerifyPassword(password, acct.Password)
		if err != nil {
			return Account{}, err
		}
		if !match {
			return Account{}, consts.ErrWrongPassword
		}
		return acct, nil
	}
	if subtle.ConstantTimeCompare([]byte(password), []byte(acct.Password)) != 1 {
		return Account{}, consts.ErrWrongPassword
	}
	return acct, nil
}

// RecordResult folds one finished game into the player's statistics and
// rewrites the file. Unknown usernames get a fresh record so a finished
// game is never lost.
func (s *FileStore) RecordResult(username string, won bool, score int) error {
	acct, ok := s.Get(username)
	if !ok {
		acct = Account{Username: username}
	}
	acct.GamesPlayed++
	if won {
		acct.Wins++
	}
	acct.TotalScore += score
	s.cache.Set(username, acct)
	return s.flush()
}

func (s *FileStore) accounts() []Account {
	list := make([]Account, 0)
	s.cache.Foreach(func(e *hashmap.Entry) {
		list = append(list, e.Value().(Account))
	})
	return list
}

// flush rewrites the whole file atomically: write a sibling temp file,
// then rename it over the original.
func (s *FileStore) flush() error {
	list := s.accounts()
	sort.Slice(list, func(i, j int) bool {
		return list[i].Username < list[j].Username
	})

	tmp := s.path + ".tmp"
	file, err := os.Create(tmp)
	if err != nil {
		return err
	}
	out := bufio.NewWriter(file)
	for _, acct := range list {
		fmt.Fprintf(out, "%s,%s,%d,%d,%d\n",
			acct.Username, acct.Password, acct.GamesPlayed, acct.Wins, acct.TotalScore)
	}
	if err := out.Flush(); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}
