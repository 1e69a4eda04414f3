package scenarios

import (
	"time"

	"github.com/zhubert/wachat/internal/demo"
)

// ConversationReply walks the full lifecycle of a message to Sarah:
// sent, delivered, read, then her scripted reply with the footer toast.
var ConversationReply = &demo.Scenario{
	Name:        "conv1-reply",
	Description: "Send to Sarah and watch ticks and the reply arrive",
	Width:       120,
	Height:      32,
	Setup:       demo.DefaultSetup(),
	Steps: []demo.Step{
		demo.Wait(1 * time.Second),

		demo.Annotate("Open the conversation with Sarah"),
		demo.KeyWithDesc("enter", "Open conv1"),
		demo.Wait(500 * time.Millisecond),

		demo.TypeWithDesc("Here are the results, take a look!", "Compose"),
		demo.Wait(500 * time.Millisecond),

		demo.Annotate("Sent: a single tick"),
		demo.KeyWithDesc("enter", "Send"),
		demo.Wait(1 * time.Second),

		demo.Annotate("Delivered after one second"),
		demo.Advance(1 * time.Second),

		demo.Annotate("Read: the ticks turn blue"),
		demo.Advance(1500 * time.Millisecond),

		demo.Annotate("Sarah replies"),
		demo.Advance(2500 * time.Millisecond),

		demo.Wait(2 * time.Second),
	},
}
