// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/tfctl/wordle/internal/meta"
)

const (
	// DefaultDict is the dictionary used when none is configured.
	DefaultDict = "words.txt"

	// DefaultLimit is the default result capacity, in words.
	DefaultLimit = 100
)

// NewDictFlag constructs the --dict flag. Its value comes from, in order, the
// command line, WORDLE_DICT, the namespaced config key, the global config key
// and finally DefaultDict.
func NewDictFlag(m meta.Meta) *cli.StringFlag {
	flag := &cli.StringFlag{
		Name:    "dict",
		Aliases: []string{"d"},
		Usage:   "dictionary path or s3://bucket/key[?region=...&profile=...]",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("WORDLE_DICT"),
		),
		Value: DefaultDict,
	}
	NameSpacedValueChainFromConfigFile(m.Namespace, m.ConfigFile, flag.Name, &flag.Sources)
	return flag
}

// NewLimitFlag constructs the --limit flag, the number of result slots.
func NewLimitFlag(m meta.Meta) *cli.IntFlag {
	flag := &cli.IntFlag{
		Name:    "limit",
		Aliases: []string{"l"},
		Usage:   "maximum number of words returned",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("WORDLE_LIMIT"),
		),
		Value: DefaultLimit,
		Validator: func(value int) error {
			return FlagValidators(value, NonNegativeValidator)
		},
	}
	NameSpacedValueChainFromConfigFile(m.Namespace, m.ConfigFile, flag.Name, &flag.Sources)
	return flag
}

// NewOutputFlags constructs the flags that control how results are printed.
func NewOutputFlags(m meta.Meta) (flags []cli.Flag) {
	output := &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output format (text, json, yaml, raw)",
		Value:   "text",
		Validator: func(value string) error {
			return FlagValidators(value, OutputValidator)
		},
	}
	NameSpacedValueChainFromConfigFile(m.Namespace, m.ConfigFile, output.Name, &output.Sources)

	columns := &cli.IntFlag{
		Name:  "columns",
		Usage: "words per row in text output",
		Value: 1,
		Validator: func(value int) error {
			return FlagValidators(value, NonNegativeValidator)
		},
	}
	NameSpacedValueChainFromConfigFile(m.Namespace, m.ConfigFile, columns.Name, &columns.Sources)

	flags = []cli.Flag{
		output,
		columns,
		&cli.BoolFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "enable colored text output",
			Value:   false,
		},
		&cli.BoolFlag{
			Name:    "titles",
			Aliases: []string{"t"},
			Usage:   "show titles with text output",
			Value:   false,
		},
	}

	return
}

// NameSpacedValueChainFromConfigFile appends namespaced and global config
// file sources for name to chain. It does nothing without a config file.
func NameSpacedValueChainFromConfigFile(ns, path, name string, chain *cli.ValueSourceChain) {
	if path == "" {
		return
	}

	if ns != "" {
		chain.Chain = append(chain.Chain, yaml.YAML(ns+"."+name, altsrc.StringSourcer(path)))
	}
	chain.Chain = append(chain.Chain, yaml.YAML(name, altsrc.StringSourcer(path)))
}
