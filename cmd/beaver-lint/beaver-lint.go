package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/lestrrat-go/beaver"
	"github.com/lestrrat-go/beaver/encoding"
	"github.com/lestrrat-go/beaver/internal/cliutil"
)

type cmdopts struct {
	Tokens   bool   `long:"tokens" description:"print the tokens instead of the document"`
	Tree     bool   `long:"tree" description:"print the node tree instead of the document"`
	ASCII    bool   `long:"ascii" description:"reject non-ASCII text"`
	Encoding string `long:"encoding" description:"decode the input from this charset"`
	Trace    bool   `long:"trace" description:"log parser state transitions to stderr"`
	Version  bool   `long:"version"`
}

func main() {
	os.Exit(_main(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func showVersion(out io.Writer) {
	fmt.Fprintf(out, "beaver-lint: using beaver version %s\n", beaver.Version)
}

func showUsage(out io.Writer) {
	fmt.Fprintf(out, `Usage : beaver-lint [options] HTMLfiles ...
	Parse the HTML files and output the result of the parsing
	--tokens : print the tokens
	--tree : print the node tree
	--ascii : reject non-ASCII characters in text
	--encoding NAME : decode the input from NAME
	--trace : log parser state transitions to stderr
	--version : display the version of the HTML library used
`)
}

func _main(argv []string, stdin *os.File, stdout, stderr io.Writer) int {
	opts := cmdopts{}
	args, err := flags.ParseArgs(&opts, argv)
	if err != nil {
		showUsage(stderr)
		return 1
	}

	if opts.Version {
		showVersion(stdout)
		return 0
	}

	var inputs []string
	switch {
	case len(args) > 0: // filename present
		inputs = args
	case !cliutil.IsTty(stdin):
		inputs = []string{"-"}
	default:
		showUsage(stderr)
		return 1
	}

	var options []beaver.ParseOption
	if opts.ASCII {
		options = append(options, beaver.WithASCIIText(true))
	}
	if opts.Trace {
		options = append(options, beaver.WithLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))))
	}
	p := beaver.NewParser(options...)

	for _, fn := range inputs {
		buf, err := readInput(fn, stdin)
		if err != nil {
			fmt.Fprintf(stderr, "%s\n", err)
			return 1
		}

		if opts.Encoding != "" {
			buf, err = encoding.Decode(opts.Encoding, buf)
			if err != nil {
				fmt.Fprintf(stderr, "%s\n", err)
				return 1
			}
		}

		if err := lint(context.Background(), p, opts, buf, stdout); err != nil {
			fmt.Fprintf(stderr, "%s\n", err)
			return 1
		}
	}
	return 0
}

func readInput(fn string, stdin io.Reader) ([]byte, error) {
	if fn == "-" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(fn)
}

func lint(ctx context.Context, p *beaver.Parser, opts cmdopts, buf []byte, out io.Writer) error {
	switch {
	case opts.Tokens:
		tokens, err := p.Tokenize(ctx, buf)
		if err != nil {
			return err
		}
		for _, tok := range tokens {
			if _, err := fmt.Fprintln(out, tok); err != nil {
				return err
			}
		}
		return nil
	case opts.Tree:
		tree, err := p.ParseTree(ctx, buf)
		if err != nil {
			return err
		}
		return tree.Dump(out)
	default:
		doc, err := p.Parse(ctx, buf)
		if err != nil {
			return err
		}

		d := beaver.Dumper{}
		if err := d.DumpDoc(out, doc); err != nil {
			return err
		}
		_, err = fmt.Fprintln(out)
		return err
	}
}
