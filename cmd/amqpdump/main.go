package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/amqp-codec/codec"
)

func main() {
	var (
		typeName    = flag.String("type", "table", "What to decode: table, array, value, shortstr, longstr, decimal, bits:N or a field type name")
		hexArg      = flag.String("hex", "", "Hex encoded input")
		file        = flag.String("file", "", "Read input from file")
		raw         = flag.Bool("raw", false, "Input is binary rather than hex")
		format      = flag.String("format", "tree", "Output format: tree or yaml")
		configPath  = flag.String("config", "", "YAML config file")
		verbose     = flag.Bool("v", false, "Log decoder diagnostics to stderr")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	cfg := Default()
	if *configPath != "" {
		loaded, err := LoadFile(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	// explicit flags win over the config file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "type":
			cfg.Type = *typeName
		case "format":
			cfg.Format = *format
		case "v":
			cfg.Verbose = *verbose
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if cfg.Verbose {
		log, err := zap.NewDevelopment()
		if err == nil {
			codec.SetLogger(log)
			defer func() { _ = log.Sync() }()
		}
	}

	if *interactive {
		if err := runInteractive(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	input, err := readInput(*hexArg, *file)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Usage: amqpdump [-type table] -hex <hex>")
		fmt.Fprintln(os.Stderr, "       amqpdump [-type table] [-raw] -file <path>")
		fmt.Fprintln(os.Stderr, "       <producer> | amqpdump [-type value] [-format yaml]")
		fmt.Fprintln(os.Stderr, "       amqpdump -i  (interactive mode)")
		fmt.Fprintf(os.Stderr, "\nError: %v\n", err)
		os.Exit(1)
	}

	if err := run(os.Stdout, cfg, input, *raw); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func readInput(hexArg, file string) ([]byte, error) {
	switch {
	case hexArg != "":
		return []byte(hexArg), nil
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("read file: %w", err)
		}
		return data, nil
	case !term.IsTerminal(int(os.Stdin.Fd())):
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	return nil, fmt.Errorf("no input: use -hex, -file or pipe data to stdin")
}

// run decodes input and writes the rendered values and a summary to w. Values
// decoded before a failure are still printed.
func run(w io.Writer, cfg *Config, input []byte, raw bool) error {
	data := input
	if !raw {
		var err error
		if data, err = parseHex(string(input)); err != nil {
			return err
		}
	}

	t, err := parseTarget(cfg.Type)
	if err != nil {
		return err
	}

	values, read, decodeErr := decodeAll(data, t, cfg.codecOptions()...)

	switch cfg.Format {
	case formatYAML:
		if err := renderYAML(w, values); err != nil {
			return err
		}
	default:
		fmt.Fprint(w, renderTree(values, plainPalette))
	}
	fmt.Fprintln(w, summary(len(values), read, int64(len(data))))

	if decodeErr != nil {
		return fmt.Errorf("at offset %d: %w", read, decodeErr)
	}
	return nil
}
