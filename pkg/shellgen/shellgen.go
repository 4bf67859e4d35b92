// pkg/shellgen/shellgen.go

// Package shellgen emits the snippet that wires the dotkit prompt into an
// interactive shell. Every snippet is run through a real shell parser
// before it leaves the process; we never hand the user an unparseable
// hook.
package shellgen

import (
	"context"
	"strings"

	cerr "github.com/cockroachdb/errors"
	"mvdan.cc/sh/v3/syntax"

	"github.com/dotkit/dotkit/pkg/kit_err"
)

const bashHook = `# dotkit prompt hook (bash)
__dotkit_prompt() {
  DOTKIT_VCS="$(dotkit prompt 2>/dev/null)"
}
if [[ "$PROMPT_COMMAND" != *__dotkit_prompt* ]]; then
  PROMPT_COMMAND="__dotkit_prompt${PROMPT_COMMAND:+;$PROMPT_COMMAND}"
fi
PS1='\u@\h:\w$DOTKIT_VCS\$ '
`

const zshHook = `# dotkit prompt hook (zsh)
autoload -Uz add-zsh-hook
__dotkit_prompt() {
  DOTKIT_VCS="$(dotkit prompt 2>/dev/null)"
}
add-zsh-hook precmd __dotkit_prompt
setopt PROMPT_SUBST
PROMPT='%n@%m:%~$DOTKIT_VCS%# '
`

// Hook returns the prompt-integration snippet for the given shell.
func Hook(shell string) (string, error) {
	var snippet string
	switch strings.ToLower(shell) {
	case "bash":
		snippet = bashHook
	case "zsh":
		snippet = zshHook
	default:
		return "", kit_err.NewExpectedErrorf(context.Background(), "unsupported shell %q (bash and zsh only)", shell)
	}

	if err := validate(snippet); err != nil {
		return "", cerr.Wrap(err, "generated hook does not parse")
	}
	return snippet, nil
}

// validate parses the snippet with the bash dialect, which covers both
// emitted hooks (the zsh-only builtins are plain words to the parser).
func validate(snippet string) error {
	parser := syntax.NewParser(syntax.Variant(syntax.LangBash))
	_, err := parser.Parse(strings.NewReader(snippet), "hook.sh")
	return err
}
