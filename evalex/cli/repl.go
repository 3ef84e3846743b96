package cli

// A terminal REPL for interactive expression evaluation.

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	prtxt "github.com/jedib0t/go-pretty/v6/text"
	"github.com/npillmayer/evalex"
)

// Some global defaults
var welcomeMessage = "Welcome to %s [V%s]"
var promptTemplate = "%s> " // Sprintf template, colored below; kept in a var to avoid a vet printf false positive
var stdprompt = prtxt.FgGreen.Sprint(promptTemplate)

const toolname = "evalex"
const version = "0.1 experimental"

// repl is a readline-driven REPL session. It owns the constant registry the
// session's expressions are evaluated against.
type repl struct {
	readline *readline.Instance
	consts   *evalex.ConstantRegistry
}

func newRepl() *repl {
	return &repl{
		readline: newReadline(),
		consts:   evalex.NewConstantRegistry(),
	}
}

// Create a readline instance.
func newReadline() *readline.Instance {
	histfile := fmt.Sprintf("%s/%s-repl-history.tmp", os.TempDir(), toolname)
	prompt := fmt.Sprintf(stdprompt, toolname)
	rl, err := readline.NewEx(&readline.Config{
		Prompt:            prompt,
		HistoryFile:       histfile,
		AutoComplete:      replCompleter,
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		panic(err)
	}
	return rl
}

// Completer-tree for interactive sub-commands
var replCompleter = readline.NewPrefixCompleter(
	readline.PcItem("help"),
	readline.PcItem("bye"),
	readline.PcItem("check"),
	readline.PcItem("ids"),
)

// displayCommands prints a help message with available commands.
func (repl *repl) displayCommands(out io.Writer) {
	io.WriteString(out, fmt.Sprintf(welcomeMessage, toolname, version))
	io.WriteString(out, `

evalex will interpret the following statements:

  help               : print this message
  bye                : quit application
  <expression>       : evaluate an arithmetic expression, e.g. (1+a)*2
  <name> = <expr>    : evaluate <expr> and define constant <name>
  check <expression> : check an expression for structural validity only
  ids <expression>   : list the constant names an expression references

`)
}

// Prompt enters the REPL and executes commands until EOF or 'bye'.
func (repl *repl) Prompt() {
	defer repl.readline.Close()
	io.WriteString(repl.readline.Stderr(),
		fmt.Sprintf(welcomeMessage+"\n", toolname, version))
	for {
		line, err := repl.readline.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		} else if err == io.EOF {
			break
		}
		line = strings.TrimSpace(line)
		switch {
		case line == "":
			// do nothing
		case line == "help":
			repl.displayCommands(repl.readline.Stderr())
		case line == "bye":
			println("> goodbye!")
			return
		default:
			repl.InterpretCommand(line)
		}
	}
}

// InterpretCommand evaluates a single REPL statement and prints the result
// or the failure, with its error tier.
func (repl *repl) InterpretCommand(command string) {
	command = strings.Trim(command, "\x00")
	out, err := repl.interpret(command)
	if err != nil {
		_, stderr := repl.Outputs()
		fmt.Fprintf(stderr, "> %s\n", err.Error())
		return
	}
	stdout, _ := repl.Outputs()
	fmt.Fprintf(stdout, "> %s\n", out)
}

// Outputs returns stdout and stderr of this REPL.
func (repl *repl) Outputs() (io.Writer, io.Writer) {
	return repl.readline.Stdout(), repl.readline.Stderr()
}

func (repl *repl) interpret(command string) (string, error) {
	if rest, ok := trimKeyword(command, "check"); ok {
		x, err := evalex.New(rest, evalex.SyntaxOnly())
		if err != nil {
			return "", err
		}
		if _, err := x.Evaluate(nil); err != nil {
			return "", err
		}
		return "ok", nil
	}
	if rest, ok := trimKeyword(command, "ids"); ok {
		x, err := evalex.New(rest)
		if err != nil {
			return "", err
		}
		return strings.Join(x.ReferencedIdentifiers(), ", "), nil
	}
	if name, exprtext, ok := splitDefinition(command); ok {
		v, err := repl.evaluate(exprtext)
		if err != nil {
			return "", err
		}
		if err := repl.consts.Define(name, v); err != nil {
			return "", err
		}
		return fmt.Sprintf("%s = %g", name, v), nil
	}
	v, err := repl.evaluate(command)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%g", v), nil
}

func (repl *repl) evaluate(exprtext string) (float64, error) {
	x, err := evalex.New(exprtext)
	if err != nil {
		return 0, err
	}
	return x.Evaluate(repl.consts)
}

func trimKeyword(line string, keyword string) (string, bool) {
	if strings.HasPrefix(line, keyword+" ") {
		return strings.TrimSpace(line[len(keyword)+1:]), true
	}
	return line, false
}

// splitDefinition recognizes lines of the form "name = expression".
func splitDefinition(line string) (string, string, bool) {
	idx := strings.Index(line, "=")
	if idx <= 0 {
		return "", "", false
	}
	name := strings.TrimSpace(line[:idx])
	exprtext := strings.TrimSpace(line[idx+1:])
	if name == "" || exprtext == "" || !isName(name) {
		return "", "", false
	}
	return name, exprtext, true
}

func isName(s string) bool {
	for i, r := range s {
		if r == '_' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' {
			continue
		}
		if i > 0 && r >= '0' && r <= '9' {
			continue
		}
		return false
	}
	return true
}
