package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"golang.org/x/exp/rand"

	"github.com/gramtools/gram/cfg"
	"github.com/gramtools/gram/gen"
	"github.com/gramtools/gram/lint"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2020–2023 The gram authors

*/

// main() starts an interactive CLI ("G.REPL") where users enter grammar
// rules and commands. Rule lines accumulate in a buffer; ':'-commands run
// the analysis, lint and generation machinery over the buffered grammar.
func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	initf := flag.String("init", "", "Grammar file to load on startup")
	flag.Parse()
	tracer().SetTraceLevel(tracing.TraceLevelFromString(*tlevel))
	pterm.Info.Println("Welcome to G.REPL") // colored welcome message
	//
	repl, err := readline.New("grepl> ")
	if err != nil {
		tracer().Errorf(err.Error())
		return
	}
	intp := &Intp{repl: repl}
	if *initf != "" {
		intp.loadFile(*initf)
	}
	pterm.Info.Println("Enter grammar rules, :help for commands, <ctrl>D to quit")
	intp.REPL()
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
	pterm.Warning.Prefix = pterm.Prefix{
		Text:  "  Warning",
		Style: pterm.NewStyle(pterm.BgYellow, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	repl   *readline.Instance
	buffer []string // grammar source lines entered so far
	seed   uint64   // 0 = unseeded
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if strings.HasPrefix(line, ":") {
			if quit := intp.Execute(line); quit {
				break
			}
			continue
		}
		intp.buffer = append(intp.buffer, line)
	}
	println("Good bye!")
}

// Execute runs one ':'-command. It returns true to quit the REPL.
func (intp *Intp) Execute(line string) bool {
	args := strings.Fields(line)
	switch args[0] {
	case ":quit", ":q":
		return true
	case ":help", ":h":
		intp.help()
	case ":show":
		for _, l := range intp.buffer {
			fmt.Println(l)
		}
	case ":clear":
		intp.buffer = nil
		pterm.Info.Println("grammar cleared")
	case ":load":
		if len(args) < 2 {
			pterm.Error.Println("usage: :load <file>")
			break
		}
		intp.loadFile(args[1])
	case ":check":
		intp.check()
	case ":sets":
		intp.sets()
	case ":gen":
		n := 1
		if len(args) > 1 {
			if k, err := strconv.Atoi(args[1]); err == nil && k > 0 {
				n = k
			}
		}
		intp.generate(n)
	case ":seed":
		if len(args) < 2 {
			pterm.Error.Println("usage: :seed <number>")
			break
		}
		s, err := strconv.ParseUint(args[1], 10, 64)
		if err != nil {
			pterm.Error.Println("seed must be a number")
			break
		}
		intp.seed = s
	case ":start":
		g := cfg.FromString(intp.source())
		pterm.Info.Println("start symbol: " + g.Start())
	default:
		pterm.Error.Println("unknown command " + args[0])
	}
	return false
}

func (intp *Intp) help() {
	fmt.Println(`Grammar rules are entered directly, e.g.  E -> T '+' E | T
Commands:
  :show           print the current grammar
  :clear          discard the current grammar
  :load <file>    replace the grammar with a file's contents
  :check          report undefined / unreachable / left-recursive symbols
  :sets           print nullable, FIRST- and FOLLOW-sets
  :gen [n]        sample n example sentences (default 1)
  :seed <k>       fix the random seed for :gen
  :start          print the resolved start symbol
  :quit           leave`)
}

func (intp *Intp) source() string {
	return strings.Join(intp.buffer, "\n")
}

func (intp *Intp) loadFile(filename string) {
	data, err := ioutil.ReadFile(filename)
	if err != nil {
		pterm.Error.Println("cannot read " + filename)
		return
	}
	intp.buffer = strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	g := cfg.FromString(intp.source())
	pterm.Info.Println(fmt.Sprintf("loaded %d productions, signature %s", g.Size(), g.Signature()))
}

func (intp *Intp) check() {
	diags := lint.Check(intp.source())
	if len(diags) == 0 {
		pterm.Info.Println("grammar is clean")
		return
	}
	for _, d := range diags {
		msg := fmt.Sprintf("line %d: %s", d.Range.StartLine+1, d.Message)
		if d.Severity == lint.Error {
			pterm.Error.Println(msg)
		} else {
			pterm.Warning.Println(msg)
		}
	}
}

func (intp *Intp) sets() {
	g := cfg.FromString(intp.source())
	if g.IsEmpty() {
		pterm.Warning.Println("no grammar yet")
		return
	}
	ga := cfg.Analyze(g)
	fmt.Printf("nullable: %s\n", strings.Join(ga.Nullable(), " "))
	for _, n := range g.Defined() {
		fmt.Printf("FIRST(%s)  = %s\n", n, cfg.SetString(ga.First(n)))
	}
	for _, n := range g.Defined() {
		fmt.Printf("FOLLOW(%s) = %s\n", n, cfg.SetString(ga.Follow(n)))
	}
}

func (intp *Intp) generate(n int) {
	g := cfg.FromString(intp.source())
	var rng *rand.Rand
	if intp.seed != 0 {
		rng = rand.New(rand.NewSource(intp.seed))
	}
	generator := gen.NewGenerator(g, gen.DefaultPolicy(), rng)
	for i := 0; i < n; i++ {
		fmt.Println(generator.Sentence(gen.DefaultStart, gen.DefaultMaxDepth))
	}
}
