package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"sequence/experiments/metrics"
	"sequence/game"
)

// Human is a controller that asks a person for moves on a terminal.
type Human struct {
	in     *bufio.Reader
	out    io.Writer
	closed bool
}

func NewHuman(in io.Reader, out io.Writer) *Human {
	return &Human{in: bufio.NewReader(in), out: out}
}

// Closed reports whether the person quit or the input ended.
func (h *Human) Closed() bool {
	return h.closed
}

func (h *Human) ChooseMove(gs *game.GameState) (game.Move, metrics.DecisionMetric) {
	p := gs.CurrentPlayer()
	for {
		RenderBoard(h.out, gs.Board)
		h.showHand(gs.Board, p)

		i, ok := h.pick("card", len(p.Hand))
		if !ok {
			return game.Move{}, metrics.DecisionMetric{}
		}
		card := p.Hand[i]

		targets := gs.Board.ValidMoves(card, p.ID)
		if len(targets) == 0 {
			fmt.Fprintf(h.out, "%s has no legal target and is discarded\n", card)
			return game.Discard(card), metrics.DecisionMetric{}
		}

		RenderBoard(h.out, gs.Board, targets...)
		target, ok, back := h.pickTarget(card, targets)
		if back {
			continue
		}
		if !ok {
			return game.Move{}, metrics.DecisionMetric{}
		}
		if card.IsRemoval() {
			return game.Remove(card, target), metrics.DecisionMetric{}
		}
		return game.Place(card, target), metrics.DecisionMetric{}
	}
}

func (h *Human) showHand(b *game.Board, p *game.Player) {
	fmt.Fprintf(h.out, "%s, your hand:\n", p.Name)
	for i, card := range p.Hand {
		n := len(b.ValidMoves(card, p.ID))
		note := fmt.Sprintf("%d moves", n)
		if kind := card.Kind(); kind != game.NormalCard {
			note = kind.String() + ", " + note
		}
		if n == 0 {
			note += "  DEAD"
		}
		fmt.Fprintf(h.out, "%2d) %-4s %s\n", i+1, card, note)
	}
}

func (h *Human) readLine(prompt string) (string, bool) {
	fmt.Fprint(h.out, prompt)
	line, err := h.in.ReadString('\n')
	line = strings.TrimSpace(line)
	if (err != nil && line == "") || strings.EqualFold(line, "q") {
		h.closed = true
		return "", false
	}
	return line, true
}

// pick reads a 1-based choice and returns it 0-based.
func (h *Human) pick(what string, n int) (int, bool) {
	for {
		line, ok := h.readLine(fmt.Sprintf("%s [1-%d, q to quit]> ", what, n))
		if !ok {
			return 0, false
		}
		i, err := strconv.Atoi(line)
		if err == nil && i >= 1 && i <= n {
			return i - 1, true
		}
		fmt.Fprintf(h.out, "invalid %s %q\n", what, line)
	}
}

// pickTarget accepts a list number or "row,col". "b" goes back to the hand.
func (h *Human) pickTarget(card game.Card, targets []game.Point) (target game.Point, ok, back bool) {
	for i, t := range targets {
		fmt.Fprintf(h.out, "%2d) %s\n", i+1, t)
	}
	for {
		line, ok := h.readLine(fmt.Sprintf("cell for %s [1-%d or row,col, b to go back]> ", card, len(targets)))
		if !ok {
			return game.Point{}, false, false
		}
		if strings.EqualFold(line, "b") {
			return game.Point{}, false, true
		}

		var p game.Point
		if _, err := fmt.Sscanf(line, "%d,%d", &p.Row, &p.Col); err == nil {
			for _, t := range targets {
				if t == p {
					return p, true, false
				}
			}
		} else if i, err := strconv.Atoi(line); err == nil && i >= 1 && i <= len(targets) {
			return targets[i-1], true, false
		}
		fmt.Fprintf(h.out, "invalid cell %q\n", line)
	}
}
