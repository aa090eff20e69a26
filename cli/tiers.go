package cli

import (
	"time"

	"sequence/agent"
)

// TierInfo is how a computer opponent is presented to a person.
type TierInfo struct {
	Name        string
	Description string
	Thinking    time.Duration // pause before the opponent's move is shown
}

var TierNames = map[agent.Tier]TierInfo{
	agent.Baseline:  {Name: "Suppandi", Description: "Plays with basic strategy", Thinking: 500 * time.Millisecond},
	agent.Tactical:  {Name: "Chacha Chaudhary", Description: "Smart tactical player", Thinking: 1500 * time.Millisecond},
	agent.Strategic: {Name: "Chanakya", Description: "Master strategist", Thinking: 2500 * time.Millisecond},
}
