package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
)

func usage() {
	out := flag.CommandLine.Output()
	fmt.Fprintf(out, "Usage: %s [flags] <command> [file]\n\n", os.Args[0])
	fmt.Fprintln(out, "Commands:")
	fmt.Fprintln(out, "  print <file>   print the UDShaper state as a text report (default)")
	fmt.Fprintln(out, "  json <file>    print the decoded state as JSON")
	fmt.Fprintln(out, "  yaml <file>    print the decoded state as YAML")
	fmt.Fprintln(out, "  hosts          list the known host profiles")
	fmt.Fprintln(out, "  mcp            serve the decoder over MCP on stdio")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Supported state versions: %s\n\n", strings.Join(supportedVersions(), ", "))
	fmt.Fprintln(out, "Flags:")
	flag.PrintDefaults()
}

func main() {
	log.SetPrefix("udshaper-state: ")

	hostsPath := flag.String("hosts", "", "TOML file with additional [[host]] profiles")
	hostName := flag.String("host", DefaultHost, "host profile that wrote the file")
	encName := flag.String("encoding", string(EncodingScalar), "version tag encoding: tuple or scalar")
	format := flag.String("format", formatText, "output format for print: text, json or yaml")
	verbose := flag.Bool("v", false, "hex dump the host header and state to stderr")
	flag.Usage = usage
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}

	hosts, err := loadHosts(*hostsPath)
	if err != nil {
		log.Fatalf("could not load host profiles: %v", err)
	}
	enc, err := parseEncoding(*encName)
	if err != nil {
		log.Fatal(err)
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "print", "json", "yaml":
	case "hosts":
		listHosts(hosts)
		return
	case "mcp":
		runMCP(hosts, enc)
		return
	default:
		// A bare path prints the report.
		if len(args) != 1 {
			log.Fatalf("unknown command %q", cmd)
		}
		cmd, rest = "print", args
	}

	if len(rest) != 1 {
		log.Fatalf("%s expects exactly one file argument", cmd)
	}
	if cmd != "print" {
		*format = cmd
	}

	host, err := hosts.lookup(*hostName)
	if err != nil {
		log.Fatal(err)
	}
	if err := printState(rest[0], host, enc, *format, *verbose); err != nil {
		log.Fatalf("%v", err)
	}
}

func printState(path string, host HostProfile, enc VersionEncoding, format string, verbose bool) error {
	data, s, err := decodeFile(path, host, enc)
	if verbose && data != nil {
		if dumpErr := dumpBlob(os.Stderr, data, host); dumpErr != nil {
			log.Printf("[dump] %v", dumpErr)
		}
	}
	if err != nil {
		return err
	}
	log.Printf("[decode] %s: version %s, %d %s slots, %d trailing bytes",
		path, s.Version, len(s.Modulators.Slots), s.Modulators.Kind, s.TrailingBytes)
	return writeState(os.Stdout, s, format)
}

func listHosts(hosts HostRegistry) {
	for _, name := range hosts.names() {
		h := hosts[name]
		fmt.Printf("%-12s marker %q, header offset %d", h.Name, h.Marker, h.HeaderOffset)
		if h.Description != "" {
			fmt.Printf(", %s", h.Description)
		}
		fmt.Println()
	}
}
