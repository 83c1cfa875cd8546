package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/katalvlaran/truthdiscovery/result"
)

// printResult writes a Result in the requested format (text, json) to stdout.
func printResult(res *result.Result, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(res)

	case "text", "":
		printResultText(res)
		return nil

	default:
		return fmt.Errorf("unknown output format %q (want text or json)", format)
	}
}

func printResultText(res *result.Result) {
	sources := make([]string, 0, len(res.Trust))
	for s := range res.Trust {
		sources = append(sources, s)
	}
	sort.Strings(sources)

	fmt.Println("trust:")
	for _, s := range sources {
		fmt.Printf("  %s: %.6f\n", s, res.Trust[s])
	}

	variables := make([]string, 0, len(res.Belief))
	for v := range res.Belief {
		variables = append(variables, v)
	}
	sort.Strings(variables)

	fmt.Println("belief:")
	for _, v := range variables {
		values := make([]string, 0, len(res.Belief[v]))
		for val := range res.Belief[v] {
			values = append(values, val)
		}
		sort.Strings(values)

		fmt.Printf("  %s:\n", v)
		for _, val := range values {
			fmt.Printf("    %s: %.6f\n", val, res.Belief[v][val])
		}
	}

	if res.Iterations != nil {
		fmt.Printf("iterations: %d\n", *res.Iterations)
	}
	fmt.Printf("time_taken: %.6fs\n", res.TimeTaken)
}
