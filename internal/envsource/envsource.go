// Package envsource turns prefixed environment variables into the target and
// option declarations the assembler consumes.
//
// Three variable forms are recognized:
//
//	PROM_SCRAPE_<NAME>    ;-separated address list for target <NAME>
//	PROM_OPTIONS_<NAME>   ;-separated key=value options for target <NAME>
//	PROM_GLOBAL_OPTIONS   ;-separated key=value global options
//
// A target's name is derived from the variable suffix; an address variable
// and an options variable sharing a suffix describe the same target. All
// other environment variables are ignored.
package envsource

import (
	"context"
	"os"
	"sort"
	"strings"

	"github.com/autometrics-dev/render-prometheus/internal/ctxlog"
	"github.com/autometrics-dev/render-prometheus/internal/promcfg"
)

const (
	scrapePrefix  = "PROM_SCRAPE_"
	optionsPrefix = "PROM_OPTIONS_"
	globalVar     = "PROM_GLOBAL_OPTIONS"
)

// Source enumerates a fixed snapshot of environment entries. The zero source
// is not usable; construct with New or FromEnviron.
type Source struct {
	environ []string
}

// New returns a source backed by the process environment.
func New() *Source {
	return FromEnviron(os.Environ())
}

// FromEnviron returns a source backed by the given KEY=VALUE entries. Tests
// use this to inject an environment without touching the process.
func FromEnviron(environ []string) *Source {
	return &Source{environ: environ}
}

// Inputs is everything the environment contributes to one assembly run.
type Inputs struct {
	GlobalOptions []promcfg.OptionEntry
	Targets       []*promcfg.TargetDeclaration
}

// Load walks the environment snapshot and builds the assembly inputs.
//
// The process environment has no contractual ordering, so targets are sorted
// by derived name to keep the emitted job list stable across runs. An
// options variable without a matching address variable is a validation
// error: silently dropping operator input would hide typos.
func (s *Source) Load(ctx context.Context) (*Inputs, error) {
	logger := ctxlog.FromContext(ctx)

	inputs := &Inputs{}
	addresses := make(map[string][]string)
	options := make(map[string][]promcfg.OptionEntry)

	for _, kv := range s.environ {
		name, value, found := strings.Cut(kv, "=")
		if !found {
			continue
		}

		switch {
		case name == globalVar:
			entries, err := promcfg.ParseOptions(value)
			if err != nil {
				return nil, err
			}
			inputs.GlobalOptions = entries
			logger.Debug("Global options variable parsed.", "count", len(entries))

		case strings.HasPrefix(name, optionsPrefix):
			target, err := TargetName(name)
			if err != nil {
				return nil, err
			}
			entries, err := promcfg.ParseOptions(value)
			if err != nil {
				return nil, err
			}
			options[target] = entries

		case strings.HasPrefix(name, scrapePrefix):
			target, err := TargetName(name)
			if err != nil {
				return nil, err
			}
			addresses[target] = splitAddresses(value)
		}
	}

	names := make([]string, 0, len(addresses))
	for name := range addresses {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		decl, err := promcfg.NewTargetDeclaration(name, addresses[name], options[name])
		if err != nil {
			return nil, err
		}
		inputs.Targets = append(inputs.Targets, decl)
		delete(options, name)
	}

	for orphan := range options {
		return nil, promcfg.Validation(optionsPrefix+orphan, "options variable has no matching %s%s address variable", scrapePrefix, orphan)
	}

	logger.Debug("Environment scanned.", "targets", len(inputs.Targets), "global_options", len(inputs.GlobalOptions))
	return inputs, nil
}

// TargetName derives a target name from a scrape or options variable name:
// the suffix after the prefix, lowercased. A name that carries neither
// prefix is a validation error.
func TargetName(variable string) (string, error) {
	var suffix string
	switch {
	case strings.HasPrefix(variable, scrapePrefix):
		suffix = strings.TrimPrefix(variable, scrapePrefix)
	case strings.HasPrefix(variable, optionsPrefix):
		suffix = strings.TrimPrefix(variable, optionsPrefix)
	default:
		return "", promcfg.Validation(variable, "variable name is missing the %s or %s prefix", scrapePrefix, optionsPrefix)
	}
	if suffix == "" {
		return "", promcfg.Validation(variable, "variable name has an empty target suffix")
	}
	return strings.ToLower(suffix), nil
}

// splitAddresses splits a ;-separated address list, dropping empty entries
// from trailing separators. Validation happens in NewTargetDeclaration.
func splitAddresses(value string) []string {
	var out []string
	for _, addr := range strings.Split(value, ";") {
		addr = strings.TrimSpace(addr)
		if addr != "" {
			out = append(out, addr)
		}
	}
	return out
}
