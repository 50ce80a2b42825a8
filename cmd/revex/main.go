// Command revex compiles a YAML route manifest into Go URL-reversal
// code, or prints the normalized templates of a single pattern.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/cypreess/revex/pkg/revex"
	"github.com/cypreess/revex/reverse"
)

var (
	routesFile  = flag.String("routes", "", "Path to the YAML route manifest")
	outputFile  = flag.String("output", "", "Path for the generated Go file")
	packageName = flag.String("package", "", "Go package name for generated code (overrides the manifest)")
	printFlag   = flag.Bool("print", false, "Print normalized templates for the pattern arguments instead of generating code")
	helpFlag    = flag.Bool("help", false, "Show help message")
	version     = flag.Bool("version", false, "Print version information")
)

const (
	appVersion = "1.0.0"
	appName    = "revex"
)

func main() {
	flag.Parse()

	if *helpFlag {
		printHelp()
		return
	}

	if *version {
		fmt.Printf("%s version %s\n", appName, appVersion)
		return
	}

	if *printFlag {
		if flag.NArg() == 0 {
			fmt.Fprintf(os.Stderr, "Error: -print requires at least one pattern argument\n\n")
			printHelp()
			os.Exit(1)
		}
		if err := printTemplates(flag.Args()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *routesFile == "" || *outputFile == "" {
		fmt.Fprintf(os.Stderr, "Error: -routes and -output flags are required\n\n")
		printHelp()
		os.Exit(1)
	}

	if err := generate(*routesFile, *outputFile, *packageName); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// printTemplates normalizes each pattern and prints its templates, one
// per line with the ordered parameter names.
func printTemplates(patterns []string) error {
	for _, p := range patterns {
		templates, err := revex.Normalize(p)
		if err != nil {
			return fmt.Errorf("pattern %q: %w", p, err)
		}
		fmt.Printf("%s\n", p)
		if len(templates) == 0 {
			fmt.Println("  (no reversal)")
			continue
		}
		for _, t := range templates {
			params := strings.Join(t.Params, ", ")
			fmt.Printf("  %-40q [%s]\n", t.Format, params)
		}
	}
	return nil
}

// generate compiles a manifest into a generated Go file.
func generate(routesPath, outputPath, pkg string) error {
	manifest, err := reverse.LoadManifest(routesPath)
	if err != nil {
		return err
	}

	if pkg == "" {
		pkg = manifest.Package
	}
	if pkg == "" {
		return fmt.Errorf("no package name: set -package or the manifest's package field")
	}

	routes := make([]revex.Route, 0, len(manifest.Routes))
	for _, r := range manifest.Routes {
		routes = append(routes, revex.Route{Name: r.Name, Pattern: r.Pattern})
	}

	if err := revex.GenerateReverser(revex.Options{
		Routes:     routes,
		OutputFile: outputPath,
		Package:    pkg,
	}); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Generated %s (%d routes)\n", outputPath, len(routes))
	return nil
}

func printHelp() {
	fmt.Printf(`%s - compile URL route patterns into Go reversal code

Usage:
  %s -routes routes.yaml -output reversers.go [-package name]
  %s -print 'articles/(?P<slug>[a-z-]+)/'

Flags:
`, appName, appName, appName)
	flag.PrintDefaults()
	fmt.Print(`
Manifest format (YAML):
  package: routes
  routes:
    - name: article_detail
      pattern: articles/(?P<slug>[a-z-]+)/
`)
}
