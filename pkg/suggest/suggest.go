// Package suggest proposes output key combinations that no existing rule
// in a profile maps to yet.
//
// A combination is identified by its signature: the output key code plus
// the sorted, comma-joined modifier set. Two output events with the same
// key and the same modifiers, in any order, share a signature and collide.
//
// Suggestions prefer the two "hyper" classes, all four left-hand modifiers
// or all four right-hand modifiers, over a fixed pool of keys. Nothing is
// reserved: running Suggest twice before saving returns the same answer.
package suggest

import (
	"sort"
	"strings"

	"github.com/Oliyy/karabiner-cli/pkg/types"
)

// KeyPool is the ordered list of candidate output keys.
var KeyPool = strings.Split("abcdefghijklmnopqrstuvwxyz0123456789", "")

var (
	// HyperLeft is every left-hand modifier, sorted.
	HyperLeft = canonical([]string{"left_command", "left_option", "left_control", "left_shift"})

	// HyperRight is every right-hand modifier, sorted.
	HyperRight = canonical([]string{"right_command", "right_option", "right_control", "right_shift"})
)

// Suggestion is an unused output combination.
type Suggestion struct {
	Key       string
	Modifiers []string
}

// Signature returns the collision key for an output key and modifier set.
func Signature(key string, modifiers []string) string {
	return key + ":" + strings.Join(canonical(modifiers), ",")
}

// EventSignature returns the signature of an output event. Events without
// a key code (consumer keys, shell commands) use the empty key.
func EventSignature(e types.ToEvent) string {
	return Signature(e.KeyCode, e.Modifiers)
}

// UsedSignatures collects the signature of every "to" event of every
// manipulator across rules.
func UsedSignatures(rules []types.Rule) map[string]struct{} {
	used := make(map[string]struct{})
	for _, rule := range rules {
		for _, m := range rule.Manipulators {
			for _, to := range m.To {
				used[EventSignature(to)] = struct{}{}
			}
		}
	}
	return used
}

// Suggest returns the first combination from the key pool, trying the
// left-hand class before the right-hand class for each key, whose
// signature is not used by rules. It returns false when the pool is
// exhausted; callers fall back to manual entry.
func Suggest(rules []types.Rule) (Suggestion, bool) {
	used := UsedSignatures(rules)

	for _, key := range KeyPool {
		for _, class := range [][]string{HyperLeft, HyperRight} {
			if _, taken := used[Signature(key, class)]; taken {
				continue
			}
			return Suggestion{
				Key:       key,
				Modifiers: append([]string(nil), class...),
			}, true
		}
	}

	return Suggestion{}, false
}

// ToEvent returns the suggestion as an output event.
func (s Suggestion) ToEvent() types.ToEvent {
	return types.ToEvent{
		KeyCode:   s.Key,
		Modifiers: append(types.ModifierList(nil), s.Modifiers...),
	}
}

func canonical(modifiers []string) []string {
	sorted := append([]string(nil), modifiers...)
	sort.Strings(sorted)
	return sorted
}
