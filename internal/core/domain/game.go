package domain

import "go.trai.ch/zerr"

// Game identifies one of the supported Bethesda titles. The value doubles as
// the short identifier accepted on the CLI and used in cache keys.
type Game string

const (
	GameMorrowind  Game = "morrowind"
	GameOblivion   Game = "oblivion"
	GameSkyrim     Game = "skyrim"
	GameSkyrimSE   Game = "skyrimse"
	GameSkyrimVR   Game = "skyrimvr"
	GameFallout3   Game = "fallout3"
	GameFalloutNV  Game = "falloutnv"
	GameFallout4   Game = "fallout4"
	GameFallout4VR Game = "fallout4vr"
	GameStarfield  Game = "starfield"
)

// gameInfo carries the upstream masterlist repository name and the xEdit
// variant recommended for cleaning dirty plugins of that title.
type gameInfo struct {
	repo         string
	cleaningTool string
}

var games = map[Game]gameInfo{
	GameMorrowind:  {repo: "morrowind", cleaningTool: "TES3Edit"},
	GameOblivion:   {repo: "oblivion", cleaningTool: "TES4Edit"},
	GameSkyrim:     {repo: "skyrim", cleaningTool: "TES5Edit"},
	GameSkyrimSE:   {repo: "skyrimse", cleaningTool: "SSEEdit"},
	GameSkyrimVR:   {repo: "skyrimvr", cleaningTool: "SSEEdit"},
	GameFallout3:   {repo: "fallout3", cleaningTool: "FO3Edit"},
	GameFalloutNV:  {repo: "falloutnv", cleaningTool: "FNVEdit"},
	GameFallout4:   {repo: "fallout4", cleaningTool: "FO4Edit"},
	GameFallout4VR: {repo: "fallout4vr", cleaningTool: "FO4Edit"},
	GameStarfield:  {repo: "starfield", cleaningTool: "xEdit"},
}

// ParseGame converts a user-supplied identifier into a Game.
func ParseGame(s string) (Game, error) {
	g := Game(s)
	if _, ok := games[g]; !ok {
		return "", zerr.With(zerr.Wrap(ErrUnknownGame, "failed to parse game identifier"), "game", s)
	}
	return g, nil
}

// Games returns all supported titles in a stable order.
func Games() []Game {
	return []Game{
		GameMorrowind, GameOblivion,
		GameSkyrim, GameSkyrimSE, GameSkyrimVR,
		GameFallout3, GameFalloutNV, GameFallout4, GameFallout4VR,
		GameStarfield,
	}
}

// Repo returns the upstream masterlist repository name for the game.
func (g Game) Repo() string {
	return games[g].repo
}

// CleaningTool returns the xEdit variant users should run against dirty
// plugins of this title.
func (g Game) CleaningTool() string {
	return games[g].cleaningTool
}

// String implements fmt.Stringer.
func (g Game) String() string {
	return string(g)
}
