package lottery

import (
	"github.com/loterias-lab/backend/internal/entity"
)

type ExtraKind int

const (
	ExtraNone ExtraKind = iota
	ExtraTeam
	ExtraMonth
)

type Config struct {
	GameType entity.GameType
	Name     string

	DrawnCount    int
	MinPickCount  int
	MaxPickCount  int
	MinNumber     int
	MaxNumber     int
	HasSecondary  bool
	CloverCount   int
	MaxClover     int
	Extra         ExtraKind
	MinPrizeMatch int
	// CaixaSlug is the path segment of the game in the Caixa API.
	CaixaSlug string
}

var configs = map[entity.GameType]Config{
	entity.MegaSena: {
		GameType: entity.MegaSena, Name: "Mega-Sena",
		DrawnCount: 6, MinPickCount: 6, MaxPickCount: 15, MinNumber: 1, MaxNumber: 60,
		MinPrizeMatch: 4, CaixaSlug: "megasena",
	},
	entity.Lotofacil: {
		GameType: entity.Lotofacil, Name: "Lotofácil",
		DrawnCount: 15, MinPickCount: 15, MaxPickCount: 25, MinNumber: 1, MaxNumber: 25,
		MinPrizeMatch: 11, CaixaSlug: "lotofacil",
	},
	entity.Quina: {
		GameType: entity.Quina, Name: "Quina",
		DrawnCount: 5, MinPickCount: 5, MaxPickCount: 15, MinNumber: 1, MaxNumber: 80,
		MinPrizeMatch: 2, CaixaSlug: "quina",
	},
	entity.Lotomania: {
		GameType: entity.Lotomania, Name: "Lotomania",
		DrawnCount: 20, MinPickCount: 50, MaxPickCount: 50, MinNumber: 0, MaxNumber: 99,
		MinPrizeMatch: 15, CaixaSlug: "lotomania",
	},
	entity.DuplaSena: {
		GameType: entity.DuplaSena, Name: "Dupla Sena",
		DrawnCount: 6, MinPickCount: 6, MaxPickCount: 15, MinNumber: 1, MaxNumber: 50,
		HasSecondary: true, MinPrizeMatch: 3, CaixaSlug: "duplasena",
	},
	entity.Timemania: {
		GameType: entity.Timemania, Name: "Timemania",
		DrawnCount: 7, MinPickCount: 10, MaxPickCount: 10, MinNumber: 1, MaxNumber: 80,
		Extra: ExtraTeam, MinPrizeMatch: 3, CaixaSlug: "timemania",
	},
	entity.DiaDeSorte: {
		GameType: entity.DiaDeSorte, Name: "Dia de Sorte",
		DrawnCount: 7, MinPickCount: 7, MaxPickCount: 15, MinNumber: 1, MaxNumber: 31,
		Extra: ExtraMonth, MinPrizeMatch: 4, CaixaSlug: "diadesorte",
	},
	entity.MaisMilionaria: {
		GameType: entity.MaisMilionaria, Name: "+Milionária",
		DrawnCount: 6, MinPickCount: 6, MaxPickCount: 6, MinNumber: 1, MaxNumber: 50,
		CloverCount: 2, MaxClover: 6, MinPrizeMatch: 4, CaixaSlug: "maismilionaria",
	},
}

var Months = []string{
	"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

func ConfigOf(gameType entity.GameType) (Config, bool) {
	cfg, ok := configs[gameType]
	return cfg, ok
}

// IsPrizeWorthy classifies a match count against the minimum-match table.
// Lotomania also pays when no number matches.
func IsPrizeWorthy(gameType entity.GameType, matchCount int) bool {
	cfg, ok := configs[gameType]
	if !ok {
		return false
	}

	if gameType == entity.Lotomania {
		return matchCount == 0 || matchCount >= cfg.MinPrizeMatch
	}

	return matchCount >= cfg.MinPrizeMatch
}

func (c Config) InRange(n int) bool {
	return n >= c.MinNumber && n <= c.MaxNumber
}
