// Package commands provides high-level command implementations for
// karabiner-cli.
//
// Each command is implemented in its own subdirectory:
//   - list/     - ListRules command
//   - add/      - AddRule command
//   - watch/    - WatchRules command
//   - internal/ - loading and profile resolution shared by all commands
//
// This file re-exports the command functions.
package commands

import (
	"context"

	"github.com/Oliyy/karabiner-cli/pkg/commands/add"
	"github.com/Oliyy/karabiner-cli/pkg/commands/internal"
	"github.com/Oliyy/karabiner-cli/pkg/commands/list"
	"github.com/Oliyy/karabiner-cli/pkg/commands/watch"
	"github.com/Oliyy/karabiner-cli/pkg/report"
)

// Target names the karabiner.json a command works on.
type Target = internal.Target

// ListRules reports the rules of the active profile.
type ListRulesOptions = list.ListRulesOptions

func ListRules(opts ListRulesOptions) (*report.Report, error) {
	return list.ListRules(opts)
}

// AddRule interactively appends a rule to the active profile.
type AddRuleOptions = add.AddRuleOptions
type AddRuleResult = add.AddRuleResult

func AddRule(opts AddRuleOptions) (*AddRuleResult, error) {
	return add.AddRule(opts)
}

// WatchRules re-lists the rules whenever the file changes.
type WatchRulesOptions = watch.WatchRulesOptions

func WatchRules(ctx context.Context, opts WatchRulesOptions) error {
	return watch.WatchRules(ctx, opts)
}
