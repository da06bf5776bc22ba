package list

import (
	"github.com/Oliyy/karabiner-cli/pkg/commands/internal"
	"github.com/Oliyy/karabiner-cli/pkg/logging"
	"github.com/Oliyy/karabiner-cli/pkg/report"
)

// ListRulesOptions defines the options for the ListRules command.
type ListRulesOptions struct {
	internal.Target
}

// ListRules loads the configuration and reports the active profile's rules.
func ListRules(opts ListRulesOptions) (*report.Report, error) {
	log := logging.GetLogger("core.commands")
	log.Debug().Str("command", "ListRules").Str("path", opts.Path).Msg("Executing command")

	opened, err := internal.Open(opts.Target)
	if err != nil {
		return nil, err
	}

	r := report.Build(opts.Path, opened.Profile, opened.Session.Rules(opened.Profile))

	log.Info().Str("command", "ListRules").Str("profile", r.Profile).Int("ruleCount", len(r.Rules)).Msg("Command finished")
	return &r, nil
}
