// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/wordle/internal/meta"
)

const bashCompletionScript = `# bash completion for wordle
# Fallback if bash-completion is not installed
if ! declare -F _get_comp_words_by_ref >/dev/null 2>&1; then
  _get_comp_words_by_ref() {
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}
  }
fi

_wordle()
{
    local cur prev cmd opts
    COMPREPLY=()
    _get_comp_words_by_ref -n : cur prev

    local output="--output -o --columns --color -c --titles -t"

    if [[ "$prev" == "--output" || "$prev" == "-o" ]]; then
        COMPREPLY=( $(compgen -W "text json yaml raw" -- "$cur") )
        return 0
    fi

    if [[ "$prev" == "--dict" || "$prev" == "-d" ]]; then
        COMPREPLY=( $(compgen -f -- "$cur") )
        return 0
    fi

    if [[ ${COMP_CWORD} -eq 1 && "$cur" != -* ]]; then
        COMPREPLY=( $(compgen -W "explain info play completion" -- "$cur") )
        return 0
    fi

    cmd=${COMP_WORDS[1]}
    case "$cmd" in
        explain)
            opts="$output"
            ;;
        info)
            opts="--dict -d --top $output"
            ;;
        play)
            opts="--dict -d --limit -l --columns"
            ;;
        completion)
            COMPREPLY=( $(compgen -W "bash zsh" -- "$cur") )
            return 0
            ;;
        *)
            opts="--dict -d --limit -l $output --help --version"
            ;;
    esac

    if [[ "$cur" == -* ]]; then
        COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
    fi
    return 0
}

complete -F _wordle wordle
`

const zshCompletionScript = `#compdef wordle

_wordle() {
  local -a cmds
  cmds=(
    'explain:show how a query is parsed'
    'info:describe the dictionary'
    'play:filter interactively'
    'completion:generate shell completion script'
  )

  local -a output
  output=(
  '(-o --output)'{-o,--output}'[output format]:format:(text json yaml raw)'
  '--columns[words per row in text output]:columns'
  '(-c --color)'{-c,--color}'[enable colored text]'
  '(-t --titles)'{-t,--titles}'[show titles]'
  )

  local -a dict
  dict=(
  '(-d --dict)'{-d,--dict}'[dictionary path or s3 url]:dictionary:_files'
  )

  case $words[2] in
    explain)
      _arguments -C $output '1:required' '2:forbidden' '3:placement'
      ;;
    info)
      _arguments -C $dict $output '--top[letters listed per position]:top'
      ;;
    play)
      _arguments -C $dict '(-l --limit)'{-l,--limit}'[maximum words]:limit' '--columns[words per row]:columns'
      ;;
    completion)
      _arguments '1: :((bash zsh))'
      ;;
    *)
      if (( CURRENT == 2 )) && [[ $words[CURRENT] != -* ]]; then
        _describe -t commands 'wordle commands' cmds
      fi
      _arguments -C $dict $output '(-l --limit)'{-l,--limit}'[maximum words]:limit'
      ;;
  esac
}

# If this file is sourced directly (not autoloaded via fpath), ensure compsys
# is initialized and register the completion
if ! typeset -f compdef >/dev/null 2>&1; then
  autoload -Uz compinit && compinit -i
fi
compdef _wordle wordle
`

func completionCommandAction(ctx context.Context, cmd *cli.Command) error {
	shell := ""
	if args := cmd.Args().Slice(); len(args) > 0 {
		shell = args[0]
	}

	w := stdout(cmd)
	switch shell {
	case "bash":
		fmt.Fprint(w, bashCompletionScript)
	case "zsh":
		fmt.Fprint(w, zshCompletionScript)
	case "":
		// Try to detect from SHELL or print usage.
		sh := os.Getenv("SHELL")
		switch {
		case strings.HasSuffix(sh, "zsh"):
			fmt.Fprint(w, zshCompletionScript)
		case strings.HasSuffix(sh, "bash"):
			fmt.Fprint(w, bashCompletionScript)
		default:
			fmt.Fprintln(stderr(cmd), "usage: wordle completion [bash|zsh]")
		}
	default:
		return fmt.Errorf("%w: unsupported shell %q", ErrUsage, shell)
	}
	return nil
}

func completionCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     "generate shell completion script",
		UsageText: "wordle completion [bash|zsh]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: completionCommandAction,
	}
}
