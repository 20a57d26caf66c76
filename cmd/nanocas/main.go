// Command nanocas is a single-shot command line front end to the
// expression engine: parse one expression, print its LaTeX rendering,
// and — once every free variable is bound via repeated -var name=value
// flags — its numeric value too. Grounded on ivy.go's flag-based main
// (flag parsing into a shared config, read source, report errors to
// stderr with a nonzero exit code) but single-shot only: there is no
// REPL, no -I include paths, and no interactive stdin loop, since this
// is a thin exerciser for the library, not a desk calculator in its
// own right.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/anbrusi/nanocas/config"
	"github.com/anbrusi/nanocas/eval"
	"github.com/anbrusi/nanocas/expand"
	"github.com/anbrusi/nanocas/latex"
	"github.com/anbrusi/nanocas/multinode"
	"github.com/anbrusi/nanocas/parse"
)

// bindingFlags collects repeated -var name=value flags; flag.Value lets
// a single flag.Flag accumulate more than one occurrence, which the
// stdlib flag package has no built-in support for.
type bindingFlags []string

func (b *bindingFlags) String() string { return strings.Join(*b, ",") }

func (b *bindingFlags) Set(s string) error {
	*b = append(*b, s)
	return nil
}

var (
	radix     = flag.Int("radix", 1000, "bignum radix stored in the configuration (the expression pipeline does not read it)")
	oneChar   = flag.Bool("onechar", false, "treat each lowercase letter as its own variable")
	degrees   = flag.Bool("degrees", false, "evaluate trig functions in degrees instead of radians")
	round     = flag.Int("round", -1, "round numeric literals to this many decimals (-1 disables rounding)")
	multiForm = flag.Bool("multinode", false, "render the multinode form instead of the binary form")
	doExpand  = flag.Bool("expand", false, "expand the multinode form distributively before rendering (implies -multinode)")
	vars      bindingFlags
	debugOpts bindingFlags
)

func init() {
	flag.Var(&vars, "var", "bind a free variable as name=value; may be repeated")
	flag.Var(&debugOpts, "debug", "turn on a named debug trace (\"tokens\", \"expand\"); may be repeated")
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: nanocas [flags] expression\n")
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 1 {
		usage()
		os.Exit(2)
	}

	cfg := config.New(*radix)
	if *oneChar {
		cfg.SetVariableMode(config.OneChar)
	}
	if *degrees {
		cfg.SetAngleUnit(config.Degrees)
	}
	if *round >= 0 {
		cfg.SetRoundDecimals(*round)
	}
	for _, name := range debugOpts {
		cfg.SetDebug(name, true)
	}

	if err := run(cfg, flag.Arg(0)); err != nil {
		fmt.Fprintln(os.Stderr, "nanocas:", err)
		os.Exit(1)
	}
}

// run parses src once and exercises Lexer -> Parser -> [Multinode ->
// Expander] -> LatexEmitter -> Evaluator, printing the LaTeX rendering
// unconditionally and the numeric (or boolean) value only once every
// free variable collected by the parser has a binding.
func run(cfg *config.Config, src string) error {
	root, free, err := parse.Parse(src, cfg)
	if err != nil {
		return errors.Wrap(err, "parsing expression")
	}

	display := root
	if *multiForm || *doExpand {
		multi, err := multinode.ToMultinode(root)
		if err != nil {
			return errors.Wrap(err, "building multinode tree")
		}
		if *doExpand {
			multi = expand.Expand(multi, cfg)
		}
		display = multi
		root, err = multinode.FromMultinode(multi)
		if err != nil {
			return errors.Wrap(err, "rebuilding binary tree")
		}
	}

	fmt.Println(latex.Emit(display))

	bindings, ok, err := parseBindings(free, vars)
	if err != nil {
		return errors.Wrap(err, "parsing variable bindings")
	}
	if !ok {
		return nil
	}

	result, err := eval.Eval(root, bindings, cfg)
	if err != nil {
		return errors.Wrap(err, "evaluating expression")
	}
	if result.IsBool {
		fmt.Println(result.Bool)
	} else {
		fmt.Println(result.Num)
	}
	return nil
}

// parseBindings turns "name=value" flags into a Bindings map, reporting
// ok == false (no error) when some variable the parser collected in free
// is still unbound, since an incomplete binding set means run should
// print LaTeX only and skip evaluation rather than fail.
func parseBindings(free []string, flags bindingFlags) (eval.Bindings, bool, error) {
	bindings := make(eval.Bindings, len(flags))
	for _, arg := range flags {
		name, text, ok := strings.Cut(arg, "=")
		if !ok {
			return nil, false, errors.Errorf("malformed binding %q, want name=value", arg)
		}
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, false, errors.Wrapf(err, "value of %q", name)
		}
		bindings[name] = f
	}

	for _, name := range free {
		if _, ok := bindings[name]; !ok {
			return nil, false, nil
		}
	}
	return bindings, true, nil
}
