package config

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gametool/models"

	"gopkg.in/yaml.v3"
)

//go:embed games.yaml
var defaultGames []byte

type gamesFile struct {
	Games []*models.Game `yaml:"games"`
}

// GameCatalog is the registry of games known to the tool
type GameCatalog struct {
	games    []*models.Game
	byName   map[string]*models.Game
	byNumber map[int]*models.Game
}

// LoadGames reads the catalogue from path, or the embedded default when path is empty
func LoadGames(path string) (*GameCatalog, error) {
	if path == "" {
		return ParseGames(defaultGames)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read games file: %w", err)
	}
	return ParseGames(data)
}

// ParseGames builds a catalogue from YAML
func ParseGames(data []byte) (*GameCatalog, error) {
	var file gamesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse games: %w", err)
	}

	catalog := &GameCatalog{
		byName:   make(map[string]*models.Game),
		byNumber: make(map[int]*models.Game),
	}
	for i, game := range file.Games {
		if game == nil || game.Name == "" {
			return nil, fmt.Errorf("game %d has no name", i)
		}
		key := strings.ToUpper(game.Name)
		if _, exists := catalog.byName[key]; exists {
			return nil, fmt.Errorf("duplicate game name %s", game.Name)
		}
		if _, exists := catalog.byNumber[game.Number]; exists {
			return nil, fmt.Errorf("duplicate game number %d", game.Number)
		}
		if game.BoardPrice.IsNegative() {
			return nil, fmt.Errorf("game %s has a negative board price", game.Name)
		}
		if game.Picks > game.Pool {
			return nil, fmt.Errorf("game %s picks %d numbers from a pool of %d", game.Name, game.Picks, game.Pool)
		}

		catalog.games = append(catalog.games, game)
		catalog.byName[key] = game
		catalog.byNumber[game.Number] = game
	}

	return catalog, nil
}

// GameByName looks a game up by name, ignoring case
func (c *GameCatalog) GameByName(name string) (*models.Game, error) {
	game, ok := c.byName[strings.ToUpper(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %s", models.ErrUnknownGame, name)
	}
	return game, nil
}

// GameByNumber looks a game up by its product number
func (c *GameCatalog) GameByNumber(number int) (*models.Game, error) {
	game, ok := c.byNumber[number]
	if !ok {
		return nil, fmt.Errorf("%w: number %d", models.ErrUnknownGame, number)
	}
	return game, nil
}

// Games returns every game in catalogue order
func (c *GameCatalog) Games() []*models.Game {
	return c.games
}
