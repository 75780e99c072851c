// Command jsonschema validates a JSON instance document against a JSON
// Schema document, reading either JSON or YAML input and printing a
// rendered report.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/schemacore/jsonschema"
	"github.com/schemacore/jsonschema/value"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	switch os.Args[1] {
	case "validate":
		validateCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "jsonschema validate -schema <file> -instance <file> [-draft 2020-12] [-output basic]")
}

func validateCmd(args []string) {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	schemaPath := fs.String("schema", "", "path to the schema document (JSON or YAML)")
	instancePath := fs.String("instance", "", "path to the instance document (JSON or YAML)")
	draftName := fs.String("draft", "2020-12", "draft to validate as: 6, 7, 2019-09, 2020-12")
	outputName := fs.String("output", "basic", "output format: flag, basic, detailed, verbose")
	if err := fs.Parse(args); err != nil {
		os.Exit(2)
	}
	if *schemaPath == "" || *instancePath == "" {
		fs.Usage()
		os.Exit(2)
	}

	draft, err := parseDraft(*draftName)
	if err != nil {
		log.Fatalf("jsonschema: %v", err)
	}
	format, err := parseOutputFormat(*outputName)
	if err != nil {
		log.Fatalf("jsonschema: %v", err)
	}

	schemaDoc, err := loadDocument(*schemaPath)
	if err != nil {
		log.Fatalf("jsonschema: reading schema: %v", err)
	}
	instDoc, err := loadDocument(*instancePath)
	if err != nil {
		log.Fatalf("jsonschema: reading instance: %v", err)
	}

	opts := jsonschema.DefaultOptions()
	opts.ValidatingAs = draft
	opts.OutputFormat = format

	compiled, err := jsonschema.Compile(schemaDoc, "", opts)
	if err != nil {
		log.Fatalf("jsonschema: compiling schema: %v", err)
	}

	result := compiled.Validate(instDoc)
	fmt.Print(result.Render(format))
	if !result.Valid {
		os.Exit(1)
	}
}

// loadDocument reads a JSON or YAML file (by extension) and decodes it into
// a value.Node. YAML goes through the any-tree adapter, since YAML has no
// streaming TokenSource in this module; JSON is decoded directly with
// value.DecodeBytes.
func loadDocument(path string) (value.Node, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return value.Node{}, err
	}
	if isYAMLPath(path) {
		var v any
		if err := yaml.Unmarshal(raw, &v); err != nil {
			return value.Node{}, err
		}
		return value.FromAny(v), nil
	}
	return value.DecodeBytes(raw)
}

func isYAMLPath(path string) bool {
	for _, ext := range []string{".yaml", ".yml"} {
		if len(path) >= len(ext) && path[len(path)-len(ext):] == ext {
			return true
		}
	}
	return false
}

func parseDraft(name string) (jsonschema.Draft, error) {
	switch name {
	case "6", "draft6", "draft-06":
		return jsonschema.Draft6, nil
	case "7", "draft7", "draft-07":
		return jsonschema.Draft7, nil
	case "2019-09", "draft2019-09":
		return jsonschema.Draft2019_09, nil
	case "2020-12", "draft2020-12", "":
		return jsonschema.Draft2020_12, nil
	default:
		return 0, fmt.Errorf("unrecognized draft %q", name)
	}
}

func parseOutputFormat(name string) (jsonschema.OutputFormat, error) {
	switch name {
	case "flag":
		return jsonschema.Flag, nil
	case "basic", "":
		return jsonschema.Basic, nil
	case "detailed":
		return jsonschema.Detailed, nil
	case "verbose":
		return jsonschema.Verbose, nil
	default:
		return 0, fmt.Errorf("unrecognized output format %q", name)
	}
}
