package entity

import "github.com/loterias-lab/backend/pkg/enum"

type GameType string

var (
	MegaSena       = enum.New(GameType("megasena"))
	Lotofacil      = enum.New(GameType("lotofacil"))
	Quina          = enum.New(GameType("quina"))
	Lotomania      = enum.New(GameType("lotomania"))
	DuplaSena      = enum.New(GameType("duplasena"))
	Timemania      = enum.New(GameType("timemania"))
	DiaDeSorte     = enum.New(GameType("diadasorte"))
	MaisMilionaria = enum.New(GameType("maismilionaria"))
)

// AllGameTypes returns every supported game type in a stable order.
func AllGameTypes() []GameType {
	return enum.Values[GameType]()
}
