package poker

// Outcome is the result of a showdown from the hero's point of view.
type Outcome int8

const (
	Lose Outcome = -1
	Tie  Outcome = 0
	Win  Outcome = 1
)

func (o Outcome) String() string {
	switch o {
	case Win:
		return "win"
	case Tie:
		return "tie"
	default:
		return "lose"
	}
}

// Compare decides a showdown between two strengths from the same Ranker.
// Every comparison in the module goes through here so the direction of the
// ordering lives in one place.
func Compare(hero, villain Strength) Outcome {
	switch {
	case hero > villain:
		return Win
	case hero < villain:
		return Lose
	default:
		return Tie
	}
}
