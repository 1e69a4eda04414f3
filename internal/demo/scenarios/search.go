package scenarios

import (
	"time"

	"github.com/zhubert/wachat/internal/demo"
)

// Search filters the conversation list, opens a match and searches its messages.
var Search = &demo.Scenario{
	Name:        "search",
	Description: "Filter conversations and search messages",
	Width:       120,
	Height:      32,
	Setup:       demo.DefaultSetup(),
	Steps: []demo.Step{
		demo.Wait(1 * time.Second),

		demo.Annotate("Filter by name or last message"),
		demo.KeyWithDesc("/", "Search conversations"),
		demo.Type("mike"),
		demo.Wait(1 * time.Second),

		demo.KeyWithDesc("enter", "Open the match"),
		demo.Wait(1 * time.Second),

		demo.Annotate("Search inside the conversation"),
		demo.KeyWithDesc("ctrl+f", "Search messages"),
		demo.Type("game"),
		demo.Wait(1500 * time.Millisecond),

		demo.KeyWithDesc("esc", "Close"),
		demo.Wait(1 * time.Second),
	},
}
