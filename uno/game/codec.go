package game

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/unodesk/engine/consts"
	"github.com/unodesk/engine/uno/card"
	"github.com/unodesk/engine/uno/event"
)

// Save file grammar, one snapshot per file:
//
//	Current Index:<int>
//	Current Card:<COLOR> <RANK>        wild-family cards omit the color
//	Current direction:<true|false>
//	<username>:<COLOR_RANK>,...        one line per player
//	Deck:<undrawn comma list>;<discarded comma list>
//
// Bot status is re-derived on load from the "Bot" username prefix.
// Malformed records are skipped with a warning; the load fails only when
// nothing usable remains.

const (
	saveFilePrefix = "UnoSave_"
	saveTimeFormat = "20060102150405"

	keyIndex     = "Current Index:"
	keyCard      = "Current Card:"
	keyDirection = "Current direction:"
	keyDeck      = "Deck:"
)

// Serialize writes the session snapshot to w.
func (s *Session) Serialize(w io.Writer) error {
	out := bufio.NewWriter(w)
	fmt.Fprintf(out, "%s%d\n", keyIndex, s.cycler.Current())
	fmt.Fprintf(out, "%s%s\n", keyCard, s.currentCard.Label())
	fmt.Fprintf(out, "%s%t\n", keyDirection, s.cycler.Clockwise())
	for _, player := range s.players {
		fmt.Fprintf(out, "%s:%s\n", player.Username(), joinTokens(player.Hand()))
	}
	fmt.Fprintf(out, "%s%s;%s\n", keyDeck, joinTokens(s.deck.UndrawnCards()), joinTokens(s.deck.DiscardedCards()))
	return out.Flush()
}

// SaveToDir snapshots the session into a timestamped file under dir,
// creating the directory as needed, and returns the file's path. A failed
// save leaves the in-memory session untouched.
func (s *Session) SaveToDir(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, saveFilePrefix+time.Now().Format(saveTimeFormat)+".txt")
	file, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if err := s.Serialize(file); err != nil {
		file.Close()
		return "", err
	}
	if err := file.Close(); err != nil {
		return "", err
	}
	s.log.Infof("session saved to %s", path)
	return path, nil
}

func joinTokens(cards []card.Card) string {
	tokens := make([]string, len(cards))
	for i, c := range cards {
		tokens[i] = c.Token()
	}
	return strings.Join(tokens, ",")
}

// Deserialize rebuilds a session from a snapshot. When owner is non-empty
// and differs from the snapshot's human player, the load is refused with
// no state built. Unreadable lines are skipped with a warning.
func Deserialize(r io.Reader, owner string, events *event.Events, opts ...Option) (*Session, error) {
	var (
		index      int
		clockwise  = true
		current    card.Card
		hasCurrent bool
		players    []*Player
		deck       *Deck
	)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		switch {
		case strings.HasPrefix(line, keyIndex):
			parsed, err := strconv.Atoi(strings.TrimSpace(line[len(keyIndex):]))
			if err != nil {
				log.Warnf("skipping unreadable index line %q: %v", line, err)
				continue
			}
			index = parsed
		case strings.HasPrefix(line, keyCard):
			parsed, err := card.Parse(line[len(keyCard):])
			if err != nil {
				log.Warnf("skipping unreadable current card line %q: %v", line, err)
				continue
			}
			current = parsed
			hasCurrent = true
		case strings.HasPrefix(line, keyDirection):
			parsed, err := strconv.ParseBool(strings.TrimSpace(line[len(keyDirection):]))
			if err != nil {
				log.Warnf("skipping unreadable direction line %q: %v", line, err)
				continue
			}
			clockwise = parsed
		case strings.HasPrefix(line, keyDeck):
			deck = parseDeck(line[len(keyDeck):])
		default:
			player, err := parsePlayer(line)
			if err != nil {
				log.Warnf("skipping unreadable player line %q: %v", line, err)
				continue
			}
			players = append(players, player)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(players) == 0 {
		return nil, consts.ErrNoPlayers
	}
	if owner != "" {
		human := humanPlayer(players)
		if human == nil || human.Username() != owner {
			return nil, consts.ErrWrongOwner
		}
	}
	if deck == nil {
		log.Warnf("snapshot has no deck line, restoring with empty piles")
		deck = RestoreDeck(nil, nil)
	}
	if !hasCurrent {
		// Fall back to the discard top; a snapshot with neither is unusable.
		discarded := deck.DiscardedCards()
		if len(discarded) == 0 {
			return nil, consts.ErrNoCurrentCard
		}
		current = discarded[len(discarded)-1]
	}

	return RestoreSession(players, deck, current, index, clockwise, events, opts...)
}

// LoadSession reads a snapshot file for the given account.
func LoadSession(path, owner string, events *event.Events, opts ...Option) (*Session, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return Deserialize(file, owner, events, opts...)
}

func parsePlayer(line string) (*Player, error) {
	username, handData, found := strings.Cut(line, ":")
	username = strings.TrimSpace(username)
	if !found || username == "" {
		return nil, fmt.Errorf("player line missing username")
	}
	bot := strings.HasPrefix(username, consts.BotNamePrefix)
	return RestorePlayer(username, bot, parseHand(handData)), nil
}

func parseHand(handData string) []card.Card {
	var hand []card.Card
	for _, token := range splitTokens(handData) {
		parsed, err := card.Parse(token)
		if err != nil {
			log.Warnf("skipping unreadable card token %q: %v", token, err)
			continue
		}
		hand = append(hand, parsed)
	}
	return hand
}

func parseDeck(deckData string) *Deck {
	undrawnData, discardData, _ := strings.Cut(deckData, ";")
	return RestoreDeck(parseHand(undrawnData), parseHand(discardData))
}

func splitTokens(data string) []string {
	var tokens []string
	for _, token := range strings.Split(data, ",") {
		if trimmed := strings.TrimSpace(token); trimmed != "" {
			tokens = append(tokens, trimmed)
		}
	}
	return tokens
}

func humanPlayer(players []*Player) *Player {
	for _, player := range players {
		if !player.IsBot() {
			return player
		}
	}
	return nil
}
