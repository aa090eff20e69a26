package experiments

import (
	"fmt"
	"io"

	"sequence/experiments/metrics"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Stats is the head to head record of one matchup.
type Stats struct {
	A, B       metrics.AgentConfig
	Games      int
	WinsA      int
	WinsB      int
	Exhausted  int
	Unfinished int
	TotalMoves int
}

func (s Stats) AvgMoves() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.TotalMoves) / float64(s.Games)
}

// Summarize tallies game records per matchup, in matchup order.
func Summarize(matchUps [][2]metrics.AgentConfig, games []metrics.GameRecord) []Stats {
	stats := make([]Stats, len(matchUps))
	for i, m := range matchUps {
		stats[i] = Stats{A: m[0], B: m[1]}
	}

	for _, g := range games {
		for i := range stats {
			s := &stats[i]
			if !(g.Agent1 == s.A.ID && g.Agent2 == s.B.ID) && !(g.Agent1 == s.B.ID && g.Agent2 == s.A.ID) {
				continue
			}
			s.Games++
			s.TotalMoves += g.TotalMoves

			winner := 0
			switch g.Winner {
			case 1:
				winner = g.Agent1
			case 2:
				winner = g.Agent2
			}
			switch {
			case winner == s.A.ID:
				s.WinsA++
			case winner == s.B.ID:
				s.WinsB++
			case g.Phase == "exhausted":
				s.Exhausted++
			default:
				s.Unfinished++
			}
			break
		}
	}
	return stats
}

// RenderStats prints the matchup results as a table.
func RenderStats(w io.Writer, title string, stats []Stats) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle(title)
	t.AppendHeader(table.Row{"Agent A", "Agent B", "Games", "A wins", "B wins", "Exhausted", "Unfinished", "Avg moves"})
	for _, s := range stats {
		t.AppendRow(table.Row{
			fmt.Sprintf("%d:%s", s.A.ID, s.A.Tier),
			fmt.Sprintf("%d:%s", s.B.ID, s.B.Tier),
			s.Games, s.WinsA, s.WinsB, s.Exhausted, s.Unfinished,
			fmt.Sprintf("%.1f", s.AvgMoves()),
		})
	}
	t.SetStyle(table.StyleLight)
	t.Style().Title.Align = text.AlignCenter
	t.Render()
}
