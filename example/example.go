package main

import (
	"flag"
	"io"
	"log"
	"os"

	"github.com/pkg/errors"
	tbrowser "github.com/tsuyuni/t-browser"
)

type options struct {
	file  string
	query string
}

func parseFlags() options {
	fileDefault, _ := os.LookupEnv("TBROWSER_FILE")
	queryDefault, _ := os.LookupEnv("TBROWSER_QUERY")

	file := flag.String("f", fileDefault, "Markup file to parse, stdin when empty (can be set via TBROWSER_FILE environment variable)")
	query := flag.String("q", queryDefault, "Selector such as 'div.note > a' to print instead of the whole tree (can be set via TBROWSER_QUERY environment variable)")

	flag.Parse()

	return options{file: *file, query: *query}
}

func readMarkup(file string, stdin io.Reader) (string, error) {
	if file == "" {
		data, err := io.ReadAll(stdin)

		if err != nil {
			return "", errors.Wrap(err, "reading stdin")
		}

		return string(data), nil
	}

	data, err := os.ReadFile(file)

	if err != nil {
		return "", errors.Wrapf(err, "reading %s", file)
	}

	return string(data), nil
}

func run(opts options, stdin io.Reader, out io.Writer) error {
	markup, err := readMarkup(opts.file, stdin)

	if err != nil {
		return err
	}

	root := tbrowser.Parse(markup)

	if opts.query == "" {
		return root.Dump(out)
	}

	selector, err := tbrowser.Compile(opts.query)

	if err != nil {
		return err
	}

	for _, tag := range selector.Match(root) {
		if err = tag.Dump(out); err != nil {
			return err
		}
	}

	return nil
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("tbrowser: ")

	if err := run(parseFlags(), os.Stdin, os.Stdout); err != nil {
		log.Fatal(err)
	}
}
