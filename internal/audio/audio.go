// Package audio synthesizes the game's sound cues.
package audio

// Cue is a sound the game asks to play.
type Cue int

const (
	CueShoot Cue = iota
	CueEnemyHit
	CueEnemyDestroyed
	CueDeath
	CuePowerUp
	CueSelect
)

func (c Cue) String() string {
	switch c {
	case CueShoot:
		return "shoot"
	case CueEnemyHit:
		return "enemy-hit"
	case CueEnemyDestroyed:
		return "enemy-destroyed"
	case CueDeath:
		return "death"
	case CuePowerUp:
		return "power-up"
	case CueSelect:
		return "select"
	default:
		return "unknown"
	}
}

// Cues lists every cue.
var Cues = []Cue{CueShoot, CueEnemyHit, CueEnemyDestroyed, CueDeath, CuePowerUp, CueSelect}

// Player plays cues. Play must not block the caller.
type Player interface {
	Play(c Cue)
}

// Silent discards every cue.
type Silent struct{}

// Play does nothing.
func (Silent) Play(Cue) {}
