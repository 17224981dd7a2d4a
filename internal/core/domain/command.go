package domain

import (
	"regexp"
	"strings"
)

const (
	// QuietMarker at the start of a command template suppresses the progress echo.
	QuietMarker = '@'
	// CommentMarker at the start of a rendered command turns it into a no-op.
	CommentMarker = '#'
)

var variableRef = regexp.MustCompile(`\$\(([^)]*)\)`)

// EchoMode records whether a command is announced before it is dispatched.
type EchoMode uint8

const (
	// EchoUnresolved means the template has not been inspected yet.
	EchoUnresolved EchoMode = iota
	// EchoEnabled means the rendered command is printed before dispatch.
	EchoEnabled
	// EchoSilenced means the template carried the quiet marker.
	EchoSilenced
)

// Command is one command template belonging to a target.
// Templates reference variables as $(NAME).
type Command struct {
	template string
	echo     EchoMode
}

// NewCommand creates a Command from a raw template.
func NewCommand(template string) *Command {
	return &Command{template: template}
}

// Template returns the stored template. Once the echo mode is resolved the
// quiet marker is no longer part of it.
func (c *Command) Template() string {
	return c.template
}

// EchoMode returns the current echo state without resolving it.
func (c *Command) EchoMode() EchoMode {
	return c.echo
}

// Echo reports whether the command should be announced, resolving the echo
// mode on first use.
func (c *Command) Echo() bool {
	c.resolveEcho()
	return c.echo == EchoEnabled
}

// Render substitutes every variable reference with its value from env.
// Undefined variables render as the empty string.
func (c *Command) Render(env *Environment) string {
	c.resolveEcho()
	return variableRef.ReplaceAllStringFunc(c.template, func(ref string) string {
		name := variableRef.FindStringSubmatch(ref)[1]
		return env.Fetch(name, "")
	})
}

func (c *Command) resolveEcho() {
	if c.echo != EchoUnresolved {
		return
	}
	c.echo = EchoEnabled
	if strings.HasPrefix(c.template, string(QuietMarker)) {
		c.echo = EchoSilenced
		c.template = c.template[1:]
	}
}

// IsComment reports whether a rendered command is a comment line that must not
// be dispatched.
func IsComment(rendered string) bool {
	return strings.HasPrefix(strings.TrimLeft(rendered, " \t"), string(CommentMarker))
}

// CommandOutcome describes one command invocation.
type CommandOutcome struct {
	// Line is the rendered command text.
	Line string
	// Dispatched is false for comment lines and dry runs.
	Dispatched bool
	// ExitCode is the shell's completion status; -1 when the process could not be started.
	ExitCode int
}

// Succeeded reports whether the command was skipped or exited with status zero.
func (o CommandOutcome) Succeeded() bool {
	return !o.Dispatched || o.ExitCode == 0
}
