// Package scenarios contains the built-in demo scenarios.
package scenarios

import (
	"github.com/zhubert/wachat/internal/demo"
)

// All returns all available scenarios.
func All() []*demo.Scenario {
	return []*demo.Scenario{
		ConversationReply,
		Search,
		Themes,
	}
}

// Get returns a scenario by name, or nil if not found.
func Get(name string) *demo.Scenario {
	for _, s := range All() {
		if s.Name == name {
			return s
		}
	}
	return nil
}
