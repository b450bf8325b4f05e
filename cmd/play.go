package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/they4kman/voxsweep/game"
)

type command struct {
	name  string
	coord game.Coord
}

var commandAliases = map[string]string{
	"r":      "reveal",
	"reveal": "reveal",
	"f":      "flag",
	"flag":   "flag",
	"c":      "chord",
	"chord":  "chord",
	"n":      "new",
	"new":    "new",
	"p":      "print",
	"print":  "print",
	"q":      "quit",
	"quit":   "quit",
}

func parseCommand(line string) (command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return command{}, fmt.Errorf("empty command")
	}

	name, isValid := commandAliases[strings.ToLower(fields[0])]
	if !isValid {
		return command{}, fmt.Errorf("unknown command %q", fields[0])
	}

	switch name {
	case "reveal", "flag", "chord":
	default:
		return command{name: name}, nil
	}

	if len(fields) != 4 {
		return command{}, fmt.Errorf("%s needs x y z", name)
	}
	var xyz [3]int
	for i, field := range fields[1:] {
		n, err := strconv.Atoi(field)
		if err != nil {
			return command{}, fmt.Errorf("invalid coordinate %q", field)
		}
		xyz[i] = n
	}
	return command{name: name, coord: game.Coord{X: xyz[0], Y: xyz[1], Z: xyz[2]}}, nil
}

const helpText = `commands: r x y z (reveal), f x y z (flag), c x y z (chord), n (new round), p (print), q (quit)`

// interact reads commands from in until quit or EOF
func interact(in io.Reader, out io.Writer, session *game.Session) error {
	fmt.Fprintln(out, helpText)
	render(out, session)

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		cmd, err := parseCommand(scanner.Text())
		if err != nil {
			fmt.Fprintln(out, err)
			continue
		}

		switch cmd.name {
		case "quit":
			return nil
		case "print":
		case "new":
			config := session.Config()
			config.Seed = nil
			if err := session.Reset(config); err != nil {
				fmt.Fprintln(out, err)
			}
		case "flag":
			if err := session.ToggleFlag(cmd.coord); err != nil {
				fmt.Fprintln(out, err)
				continue
			}
		case "reveal", "chord":
			action := game.ClickAt(cmd.coord)
			if cmd.name == "chord" {
				action = game.MiddleClickAt(cmd.coord)
			}
			outcome, err := session.Apply(action)
			if err != nil {
				fmt.Fprintln(out, err)
				continue
			}
			describeOutcome(out, outcome)
		}

		render(out, session)
	}
	return scanner.Err()
}

// autoplay lets director play until the round ends or it runs out of moves.
// A batch of moves rejected as a whole ends autoplay with the last rejection.
func autoplay(out io.Writer, session *game.Session, director game.Director, delay time.Duration) error {
	director.Init(session)
	defer director.End()

	log := game.Log.WithField("seed", session.Seed())

	for !session.Status().IsTerminal() {
		actions := director.Act()
		if len(actions) == 0 {
			log.Warn("director has no moves left")
			break
		}

		var lastErr error
		numApplied := 0
		for _, action := range actions {
			if session.Status().IsTerminal() {
				break
			}
			outcome, err := session.Apply(action)
			if err != nil {
				log.WithError(err).WithField("action", action.String()).Warn("director move rejected")
				lastErr = err
				continue
			}
			numApplied++
			log.WithFields(logrus.Fields{
				"action":   action.String(),
				"outcome":  outcome.Kind.String(),
				"revealed": len(outcome.Revealed),
			}).Debug("director moved")

			if delay > 0 {
				time.Sleep(delay)
			}
		}

		if numApplied == 0 && lastErr != nil {
			render(out, session)
			return fmt.Errorf("director stopped in %v: %w", session.Status(), lastErr)
		}
	}

	render(out, session)
	return nil
}

func describeOutcome(out io.Writer, outcome game.RevealOutcome) {
	switch outcome.Kind {
	case game.OutcomeRevealed:
		fmt.Fprintf(out, "revealed %d cells\n", len(outcome.Revealed))
	case game.OutcomeExploded:
		fmt.Fprintf(out, "BOOM at %v\n", outcome.Coord)
	default:
		fmt.Fprintf(out, "%v: %v\n", outcome.Coord, outcome.Kind)
	}
}

// render prints the board one z-layer at a time
func render(out io.Writer, session *game.Session) {
	bounds := session.Bounds()
	views := session.Cells()
	counts := session.Counts()

	fmt.Fprintf(out, "%03d mines left   %d/%d revealed   %s\n",
		counts.Mines-counts.Flagged, counts.Revealed, counts.Total-counts.Mines, session.Status())

	row := make([]byte, 0, 2*bounds.Width)
	for z := 0; z < bounds.Depth; z++ {
		fmt.Fprintf(out, "z=%d\n", z)
		for y := 0; y < bounds.Height; y++ {
			row = row[:0]
			for x := 0; x < bounds.Width; x++ {
				if x > 0 {
					row = append(row, ' ')
				}
				idx := x + y*bounds.Width + z*bounds.Width*bounds.Height
				row = append(row, cellSymbol(views[idx]))
			}
			fmt.Fprintf(out, "  %s\n", row)
		}
	}
}

// cellSymbol draws counts above 9 as letters: a = 10 … q = 26
func cellSymbol(view game.CellView) byte {
	switch view.State {
	case game.Exploded:
		return '*'
	case game.Flagged:
		if view.WrongFlag {
			return 'x'
		}
		return 'F'
	case game.Revealed:
		switch {
		case view.NumMines == 0:
			return '.'
		case view.NumMines < 10:
			return '0' + view.NumMines
		default:
			return 'a' + view.NumMines - 10
		}
	}
	if view.IsMine {
		return 'O'
	}
	return '#'
}
