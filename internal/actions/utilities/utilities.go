// Package utilities implements roll, sum and vote.
package utilities

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/footprint-tools/cmdtree/internal/dispatchers"
	"github.com/footprint-tools/cmdtree/internal/domain"
)

const (
	maxDice  = 100
	maxSides = 1000
)

type Deps struct {
	// Intn returns a number in [0, n).
	Intn func(n int) int
}

func DefaultDeps() Deps {
	return Deps{Intn: rand.IntN}
}

// Roll handles `roll [count=1] [sides=6]`.
func Roll(deps Deps) dispatchers.HandlerFunc {
	return func(sender domain.Sender, args []any) error {
		count := args[0].(int)
		sides := args[1].(int)

		if count < 1 || count > maxDice {
			sender.SendMessage(fmt.Sprintf("You can roll between 1 and %d dice.", maxDice))
			return nil
		}
		if sides < 2 || sides > maxSides {
			sender.SendMessage(fmt.Sprintf("Dice need between 2 and %d sides.", maxSides))
			return nil
		}

		rolls := make([]string, count)
		total := 0
		for i := range rolls {
			n := deps.Intn(sides) + 1
			total += n
			rolls[i] = strconv.Itoa(n)
		}

		if count == 1 {
			sender.SendMessage(fmt.Sprintf("You rolled a %d (d%d).", total, sides))
			return nil
		}
		sender.SendMessage(fmt.Sprintf("You rolled %s = %d (%dd%d).", strings.Join(rolls, " + "), total, count, sides))
		return nil
	}
}

// Sum handles `sum <numbers...>`.
func Sum(_ Deps) dispatchers.HandlerFunc {
	return func(sender domain.Sender, args []any) error {
		numbers := args[0].([]int64)

		var total int64
		for _, n := range numbers {
			if (n > 0 && total > math.MaxInt64-n) || (n < 0 && total < math.MinInt64-n) {
				sender.SendMessage("The sum does not fit in a 64-bit integer.")
				return nil
			}
			total += n
		}
		sender.SendMessage(fmt.Sprintf("Sum of %d number(s): %d", len(numbers), total))
		return nil
	}
}

// Vote handles `vote <ballots...>`.
func Vote(_ Deps) dispatchers.HandlerFunc {
	return func(sender domain.Sender, args []any) error {
		ballots := args[0].([]bool)

		yes := 0
		for _, b := range ballots {
			if b {
				yes++
			}
		}
		no := len(ballots) - yes

		verdict := "tie"
		switch {
		case yes > no:
			verdict = "passed"
		case no > yes:
			verdict = "rejected"
		}
		sender.SendMessage(fmt.Sprintf("%d yes, %d no: %s.", yes, no, verdict))
		return nil
	}
}
