package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	log "log/slog"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/markkurossi/tabulate"
	"github.com/pkg/errors"
	"github.com/zeebo/sha256"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		log.Error("hash failed", "err", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("sha256", flag.ContinueOnError)
	quiet := fs.Bool("q", false, "do not print the prompt")
	trace := fs.Bool("trace", false, "print the running state after every chunk")
	if err := fs.Parse(args); errors.Is(err, flag.ErrHelp) {
		return nil
	} else if err != nil {
		return err
	}

	if fs.NArg() > 0 {
		return hashFiles(fs.Args(), *trace, stdout)
	}

	if !*quiet {
		fmt.Fprint(stdout, "Enter text: ")
	}

	line, err := readLine(stdin)
	if err != nil {
		return err
	}

	var digest string
	if *trace {
		fmt.Fprintln(stdout)
		digest, err = traceTable([]byte(line), stdout)
	} else {
		digest, err = sha256.HashString(line)
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(stdout, "SHA-256 hash:", digest)
	return nil
}

// readLine reads one line of UTF-8 text without its line ending.
func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err == io.EOF {
		if line == "" {
			return "", errors.New("no input")
		}
	} else if err != nil {
		return "", errors.Wrap(err, "read input")
	}

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")

	if !utf8.ValidString(line) {
		return "", errors.New("input is not valid UTF-8")
	}
	return line, nil
}

func hashFiles(paths []string, trace bool, stdout io.Writer) error {
	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("File").SetAlign(tabulate.ML)
	tab.Header("SHA-256").SetAlign(tabulate.ML)

	for _, path := range paths {
		var digest string
		var err error
		if trace {
			fmt.Fprintln(stdout, path)
			digest, err = traceFile(path, stdout)
		} else {
			digest, err = hashFile(path)
		}
		if err != nil {
			return err
		}

		row := tab.Row()
		row.Column(path)
		row.Column(digest)
	}

	tab.Print(stdout)
	return nil
}

func hashFile(path string) (string, error) {
	fh, err := os.Open(path)
	if err != nil {
		return "", errors.WithStack(err)
	}
	defer func() { _ = fh.Close() }()

	h := sha256.New()
	if _, err := io.Copy(h, fh); err != nil {
		return "", errors.Wrapf(err, "hash %s", path)
	}
	return h.HexDigest()
}

func traceFile(path string, stdout io.Writer) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.WithStack(err)
	}
	return traceTable(data, stdout)
}

// traceTable prints the running state after every chunk of data.
func traceTable(data []byte, w io.Writer) (string, error) {
	tab := tabulate.New(tabulate.UnicodeLight)
	tab.Header("Chunk").SetAlign(tabulate.MR)
	tab.Header("State").SetAlign(tabulate.ML)

	digest, err := sha256.Trace(data, func(chunk int, st sha256.State) {
		row := tab.Row()
		row.Column(fmt.Sprint(chunk))
		row.Column(st.String())
	})
	if err != nil {
		return "", err
	}

	tab.Print(w)
	return digest, nil
}
