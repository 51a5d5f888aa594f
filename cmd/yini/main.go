// Command yini is a toolbox for YINI configuration files: convert
// them to JSON, rewrite them in canonical form, merge several files,
// look up individual values, or import TOML.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/urfave/cli/v2"

	"github.com/yini-lang/yini-go"
)

func main() {
	app := &cli.App{
		Name:  "yini",
		Usage: "work with YINI configuration files",
		Commands: []*cli.Command{
			{
				Name:      "json",
				Usage:     "parse a YINI file and print it as JSON",
				ArgsUsage: "<file>",
				Action:    cmdJSON,
			},
			{
				Name:      "fmt",
				Usage:     "rewrite a YINI file in canonical form",
				ArgsUsage: "<file>",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "write", Aliases: []string{"w"}, Usage: "write the result back to the file instead of stdout"},
				},
				Action: cmdFmt,
			},
			{
				Name:      "merge",
				Usage:     "merge two or more YINI files and print the result",
				ArgsUsage: "<file> <file>...",
				Action:    cmdMerge,
			},
			{
				Name:      "get",
				Usage:     "print a single value, addressed by a dotted path",
				ArgsUsage: "<file> <section.path.key>",
				Action:    cmdGet,
			},
			{
				Name:      "from-toml",
				Usage:     "convert a TOML file to YINI",
				ArgsUsage: "<file>",
				Action:    cmdFromTOML,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "yini:", err)
		os.Exit(1)
	}
}

// readInput returns the contents of the named file, or of stdin when
// the name is "-".
func readInput(name string) (string, error) {
	if name == "-" {
		data, err := io.ReadAll(os.Stdin)
		return string(data), err
	}
	data, err := os.ReadFile(name)
	return string(data), err
}

func parseArg(c *cli.Context) (*yini.Document, error) {
	if c.NArg() < 1 {
		return nil, fmt.Errorf("expected a file argument")
	}
	text, err := readInput(c.Args().First())
	if err != nil {
		return nil, err
	}
	return yini.Parse(text)
}

func cmdJSON(c *cli.Context) error {
	doc, err := parseArg(c)
	if err != nil {
		return err
	}
	out, err := json.MarshalIndent(doc.Root().Interface(), "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func cmdFmt(c *cli.Context) error {
	doc, err := parseArg(c)
	if err != nil {
		return err
	}
	if c.Bool("write") {
		if c.Args().First() == "-" {
			return fmt.Errorf("cannot use --write with stdin")
		}
		return doc.WriteFile(c.Args().First())
	}
	fmt.Print(doc.Serialize())
	return nil
}

func cmdMerge(c *cli.Context) error {
	if c.NArg() < 2 {
		return fmt.Errorf("expected at least two file arguments")
	}
	doc, err := yini.ParseFile(c.Args().First())
	if err != nil {
		return err
	}
	for _, name := range c.Args().Tail() {
		text, err := readInput(name)
		if err != nil {
			return err
		}
		if err := doc.Merge(text); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	fmt.Print(doc.Serialize())
	return nil
}

func cmdGet(c *cli.Context) error {
	if c.NArg() != 2 {
		return fmt.Errorf("expected a file and a dotted path")
	}
	doc, err := parseArg(c)
	if err != nil {
		return err
	}

	parts := strings.Split(c.Args().Get(1), ".")
	section := doc.Root()
	for _, name := range parts[:len(parts)-1] {
		sub, ok := section.LookupChild(name)
		if !ok {
			return fmt.Errorf("section not found: %s", name)
		}
		section = sub
	}

	value, err := section.Get(parts[len(parts)-1])
	if err != nil {
		return err
	}
	if s, err := value.AsString(); err == nil {
		fmt.Println(s)
		return nil
	}
	out, err := json.Marshal(value.Interface())
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func cmdFromTOML(c *cli.Context) error {
	if c.NArg() < 1 {
		return fmt.Errorf("expected a file argument")
	}
	text, err := readInput(c.Args().First())
	if err != nil {
		return err
	}

	var data map[string]any
	if err := toml.Unmarshal([]byte(text), &data); err != nil {
		return fmt.Errorf("parsing TOML: %w", err)
	}

	doc := yini.NewDocument()
	if err := doc.Root().FromInterface(data); err != nil {
		return err
	}
	fmt.Print(doc.Serialize())
	return nil
}
