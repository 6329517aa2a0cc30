package ttt

import "fmt"

type Mark uint8
type Player uint8

// Enum for the cell contents
const (
	Blank Mark = iota
	Cross
	Naught
)

// Enum for the players, Crosses always moves first
const (
	Crosses Player = iota
	Naughts
)

// Mark placed by this player. Every player has a mark, but not every mark
// belongs to a player (Blank), so there is no conversion the other way.
func (p Player) Mark() Mark {
	switch p {
	case Crosses:
		return Cross
	case Naughts:
		return Naught
	}
	panic(fmt.Sprintf("ttt: invalid player %d", p))
}

func (p Player) Opponent() Player {
	if p == Crosses {
		return Naughts
	}
	return Crosses
}

func (p Player) String() string {
	switch p {
	case Crosses:
		return "Crosses"
	case Naughts:
		return "Naughts"
	}
	return fmt.Sprintf("Player(%d)", uint8(p))
}

func (m Mark) String() string {
	switch m {
	case Blank:
		return "Blank"
	case Cross:
		return "Cross"
	case Naught:
		return "Naught"
	}
	return fmt.Sprintf("Mark(%d)", uint8(m))
}

// Single character used by the notation and the board printout
func (m Mark) Rune() rune {
	switch m {
	case Cross:
		return 'x'
	case Naught:
		return 'o'
	}
	return '.'
}
