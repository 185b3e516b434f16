package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/peterh/liner"
	"golang.org/x/term"

	knight "github.com/knight-lang/knight-go"
)

const (
	appName     = "knight"
	historyFile = ".knight_history"
	promptMain  = "==> "
	promptCont  = "... "
)

var (
	banner   = fmt.Sprintf("Knight %s REPL\nCtrl+C cancels input, Ctrl+D exits. Type :quit to exit.", knight.Version)
	helpText = `
REPL commands:
  :env     List defined variables
  :help    Show this help
  :quit    Exit the REPL
`
)

func red(s string) string   { return "\x1b[31m" + s + "\x1b[0m" }
func green(s string) string { return "\x1b[32m" + s + "\x1b[0m" }
func blue(s string) string  { return "\x1b[94m" + s + "\x1b[0m" }

func main() {
	var (
		expr    = flag.String("e", "", "run this expression instead of a file")
		dump    = flag.Bool("a", false, "print the dump form of the final value")
		version = flag.Bool("version", false, "print the version and exit")
	)
	flag.Usage = usage
	flag.Parse()

	if *version {
		fmt.Println(knight.Version)
		return
	}

	switch {
	case *expr != "":
		if flag.NArg() > 0 {
			fmt.Fprintf(os.Stderr, "%s: -e and a script file are mutually exclusive\n", appName)
			os.Exit(2)
		}
		os.Exit(runSource("<expression>", *expr, *dump))

	case flag.NArg() == 1:
		file := flag.Arg(0)
		src, err := os.ReadFile(file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: cannot read %s: %v\n", appName, file, err)
			os.Exit(1)
		}
		os.Exit(runSource(file, string(src), *dump))

	case flag.NArg() > 1:
		usage()
		os.Exit(2)

	case term.IsTerminal(int(os.Stdin.Fd())):
		os.Exit(repl())

	default:
		src, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: reading stdin: %v\n", appName, err)
			os.Exit(1)
		}
		os.Exit(runSource("<stdin>", string(src), *dump))
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `Knight %s

Usage:
  %s [flags] [file.kn]

Runs the program from the file, from -e, or from stdin. With no program
and an interactive stdin, starts the REPL.

Flags:
  -e <expr>   run this expression instead of a file
  -a          print the dump form of the final value
  -version    print the version and exit
`, knight.Version, appName)
}

// runSource executes one program and maps its outcome to an exit status:
// the QUIT code when the program quit, 1 on failure, 0 otherwise.
func runSource(name, src string, dump bool) int {
	v, err := knight.New().Run(src)
	if err != nil {
		var exit *knight.ExitError
		if errors.As(err, &exit) {
			return exit.Code
		}
		fmt.Fprintln(os.Stderr, red(knight.WrapErrorWithName(err, name, src).Error()))
		return 1
	}
	if dump {
		fmt.Println(v.Dump())
	}
	return 0
}

// -----------------------------------------------------------------------------
// repl
// -----------------------------------------------------------------------------

func repl() int {
	fmt.Println(banner)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	// One interpreter for the whole session: variables persist across lines.
	ip := knight.New()

	for {
		code, ok := readByParseProbe(ln, promptMain, promptCont)
		if !ok {
			fmt.Println()
			break
		}

		trimmed := strings.TrimSpace(code)
		if strings.HasPrefix(trimmed, ":") {
			if done, status := replCommand(ip, trimmed); done {
				return status
			}
			continue
		}
		if trimmed == "" {
			continue
		}

		v, err := ip.Run(code)
		if err != nil {
			var exit *knight.ExitError
			if errors.As(err, &exit) {
				return exit.Code
			}
			fmt.Fprintln(os.Stderr, red(knight.WrapErrorWithSource(err, code).Error()))
			continue
		}
		fmt.Println(blue(v.Dump()))
		ln.AppendHistory(strings.ReplaceAll(code, "\n", " "))
	}

	return 0
}

func replCommand(ip *knight.Interpreter, cmd string) (done bool, status int) {
	switch strings.ToLower(cmd) {
	case ":quit":
		return true, 0
	case ":env":
		names := ip.Env().Names()
		if len(names) == 0 {
			fmt.Println("(empty environment)")
			break
		}
		for _, name := range names {
			if v, ok := ip.Env().Get(name); ok {
				fmt.Printf("%s = %s\n", green(name), blue(v.Dump()))
			}
		}
	case ":help":
		fmt.Print(helpText)
	default:
		fmt.Printf("unknown command. Type :help for commands.\n")
	}
	return false, 0
}

// readByParseProbe keeps prompting until the accumulated input parses as one
// complete value, so multi-line strings and half-typed operators continue on
// the next line instead of erroring.
func readByParseProbe(ln *liner.State, prompt, cont string) (string, bool) {
	var b strings.Builder

	for {
		var line string
		var err error
		if b.Len() == 0 {
			line, err = ln.Prompt(prompt)
		} else {
			line, err = ln.Prompt(cont)
		}
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if err != nil {
			return "", true
		}

		if b.Len() == 0 && strings.TrimSpace(line) == "" {
			return "", true
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if _, perr := knight.Parse(src); perr == nil || !knight.IsIncomplete(perr) {
			return src, true
		}
	}
}
