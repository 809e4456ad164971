package main

import (
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/unodesk/engine/account"
	"github.com/unodesk/engine/config"
	"github.com/unodesk/engine/consts"
	"github.com/unodesk/engine/gamelog"
	"github.com/unodesk/engine/uno/card/color"
	"github.com/unodesk/engine/uno/event"
	"github.com/unodesk/engine/uno/game"
	"github.com/unodesk/engine/uno/ui"
)

var botNames = []string{
	"Annie", "Braum", "Caitlyn", "Draven",
	"Ezreal", "Fiora", "Graves", "Heimerdinger",
	"Ivern", "Jinx", "Kled", "Lulu",
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	store, err := account.NewFileStore(cfg.UsersFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "account store:", err)
		os.Exit(1)
	}

	ui.MessageWriter{}.Welcome()
	acct := login(store)

	for {
		choice := ui.PromptString("1) New game  2) Load game  3) Leaderboard  4) Quit")
		switch choice {
		case "1":
			runNewGame(cfg, store, acct)
		case "2":
			runLoadGame(cfg, store, acct)
		case "3":
			if err := store.ExportLeaderboard(color.Stdout); err != nil {
				ui.Printfln("Leaderboard unavailable: %v", err)
			}
		case "4":
			return
		default:
			ui.Println("Unknown choice")
		}
	}
}

func login(store account.Store) account.Account {
	for {
		username := ui.PromptString("Username:")
		if strings.HasPrefix(username, consts.BotNamePrefix) {
			ui.Printfln("Usernames may not start with '%s'", consts.BotNamePrefix)
			continue
		}
		password := ui.PromptString("Password:")
		acct, err := store.Authenticate(username, password)
		if err == nil {
			ui.Printfln("Welcome back, %s!", acct.Username)
			return acct
		}
		if err == consts.ErrUnknownUser {
			if ui.PromptString("Unknown username. Register it? (y/n)") == "y" {
				acct, err = store.Register(username, password)
				if err == nil {
					ui.Printfln("Welcome, %s!", acct.Username)
					return acct
				}
			} else {
				continue
			}
		}
		ui.Printfln("Login failed: %v", err)
	}
}

func tablePlayers(humanName string, bots int) []*game.Player {
	players := []*game.Player{game.NewPlayer(humanName, false)}
	names := append([]string(nil), botNames...)
	rand.Shuffle(len(names), func(i, j int) { names[i], names[j] = names[j], names[i] })
	if bots > len(names) {
		bots = len(names)
	}
	for _, name := range names[:bots] {
		players = append(players, game.NewPlayer(consts.BotNamePrefix+" "+name, true))
	}
	return players
}

func sessionOptions(store account.Store, logger *gamelog.Logger) []game.Option {
	return []game.Option{
		game.WithStatsRecorder(store),
		game.WithLogger(logger),
		game.WithColorChooser(ui.ColorPrompter{}),
	}
}

func runNewGame(cfg config.Config, store account.Store, acct account.Account) {
	logger := gamelog.New(cfg.LogDir, "GameSessionLog")
	defer logger.Close()

	events := event.NewEvents()
	ui.Attach(events)
	session, err := game.NewSession(tablePlayers(acct.Username, cfg.Bots), events, sessionOptions(store, logger)...)
	if err != nil {
		ui.Printfln("Could not start game: %v", err)
		return
	}
	drive(session, cfg)
}

func runLoadGame(cfg config.Config, store account.Store, acct account.Account) {
	path := ui.PromptString("Save file path:")
	logger := gamelog.New(cfg.LogDir, "GameSessionLog")
	defer logger.Close()

	events := event.NewEvents()
	ui.Attach(events)
	session, err := game.LoadSession(path, acct.Username, events, sessionOptions(store, logger)...)
	if err != nil {
		ui.Printfln("Could not load game: %v", err)
		return
	}
	drive(session, cfg)
}

func drive(session *game.Session, cfg config.Config) {
	for !session.IsGameOver() {
		player := session.CurrentPlayer()
		if player.IsBot() {
			session.PlayBotTurn(player)
			// Pacing only; the turn already resolved synchronously.
			time.Sleep(cfg.BotDelay)
			continue
		}
		humanTurn(session, player, cfg)
	}
}

func humanTurn(session *game.Session, player *game.Player, cfg config.Config) {
	showTable(session, player)
	for {
		choice := ui.PromptString("p) Play a card  d) Draw  u) Declare UNO  s) Save  q) Quit")
		switch choice {
		case "p":
			playable := player.PlayableCards(session.CurrentCard(), session.CurrentColor())
			if len(playable) == 0 {
				ui.Println("None of your cards are playable; draw instead.")
				continue
			}
			session.PlayCard(ui.PromptCardSelection(playable), player)
			return
		case "d":
			drawn, playable := session.DrawCardForPlayer(player)
			if !playable {
				return
			}
			ui.Printfln("You drew %s.", drawn)
			if ui.PromptString("Play it? (y/n)") == "y" {
				session.PlayCard(drawn, player)
			} else {
				session.NextTurn()
			}
			return
		case "u":
			session.DeclareUno(player)
		case "s":
			if path, err := session.SaveToDir(cfg.SavesDir); err != nil {
				ui.Printfln("Save failed: %v", err)
			} else {
				ui.Printfln("Saved to %s", path)
			}
		case "q":
			os.Exit(0)
		default:
			ui.Println("Unknown choice")
		}
	}
}

func showTable(session *game.Session, player *game.Player) {
	lines := []string{
		fmt.Sprintf("Current card: %s", session.CurrentCard()),
	}
	if override := session.CurrentColor(); override != color.None {
		lines = append(lines, fmt.Sprintf("Current color: %s", override.Paint(override.String())))
	}
	for _, other := range session.Players() {
		if other != player {
			lines = append(lines, fmt.Sprintf("%s holds %d card(s)", other.Username(), other.HandSize()))
		}
	}
	lines = append(lines, fmt.Sprintf("Your hand: %v", player.Hand()))
	ui.Printlns(lines)
}
