// Command analyzer prints a structural report of a workbook, and
// optionally compares it against a previously generated dataset.
package main

import (
	"flag"
	"fmt"
	"os"

	"cmicli/internal/analysis"
)

func main() {
	in := flag.String("in", "", "workbook to analyze (.xlsx)")
	compare := flag.String("compare", "", "optional dataset JSON to compare the workbook against")
	flag.Parse()

	if *in == "" {
		flag.Usage()
		os.Exit(1)
	}
	if _, err := os.Stat(*in); err != nil {
		fmt.Printf("ERROR: File not found: %s\n", *in)
		os.Exit(1)
	}

	report, err := analysis.Analyze(*in)
	if err != nil {
		fmt.Printf("ERROR: Error analyzing file: %v\n", err)
		os.Exit(1)
	}
	report.Write(os.Stdout)

	if *compare != "" {
		comparison, err := analysis.Compare(*in, *compare)
		if err != nil {
			fmt.Printf("ERROR: Error comparing files: %v\n", err)
			os.Exit(1)
		}
		comparison.Write(os.Stdout)
	}
}
