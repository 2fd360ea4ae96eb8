// Copyright 2026 multiversion Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command mvinfo prints the CPU capabilities seen by the multiversion
// dispatcher and evaluates target specifications against the running
// processor.
//
// Usage:
//
//	mvinfo [flags] [target-spec ...]
//
// Without arguments it prints the host architecture and the probe table.
// With arguments, each one is parsed as a target specification and checked
// against the live CPU.
//
// Examples:
//
//	mvinfo
//	mvinfo x86_64+avx2+fma "[arm|aarch64]+neon"
//	mvinfo -static x86_64+sse4.2
//	mvinfo -quiet x86_64+avx512f && echo fast path available
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"text/tabwriter"

	"github.com/isgasho/multiversion"
	"github.com/isgasho/multiversion/internal/cpu"
)

var (
	static = flag.Bool("static", false, "use static (build-time) feature detection instead of live probing")
	quiet  = flag.Bool("quiet", false, "no output; exit 0 iff every given target spec matches the host")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: mvinfo [flags] [target-spec ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints dispatcher-visible CPU capabilities, or evaluates target\n")
		fmt.Fprintf(os.Stderr, "specifications (e.g. \"x86_64+avx2\" or \"[arm|aarch64]+neon\") against\n")
		fmt.Fprintf(os.Stderr, "the running processor.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	detector := multiversion.Adaptive()
	if *static {
		detector = multiversion.Static()
	}

	if flag.NArg() == 0 {
		if *quiet {
			return
		}
		printHost()
		return
	}

	allMatch := true
	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	for _, arg := range flag.Args() {
		target, err := multiversion.ParseTarget(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "mvinfo: %v\n", err)
			os.Exit(2)
		}
		matched := matches(target, detector)
		allMatch = allMatch && matched
		if !*quiet {
			fmt.Fprintf(w, "%s\t%s\n", target, verdict(matched))
		}
	}
	if !*quiet {
		w.Flush()
	}
	if !allMatch {
		os.Exit(1)
	}
}

// matches evaluates one parsed specification against the host by building a
// single-entry table over it.
func matches(target multiversion.Target, detector multiversion.Detector) bool {
	table := multiversion.NewTable[bool]().
		Target(target, true).
		Default(false).
		Detector(detector).
		MustBuild()
	return table.Select()
}

func verdict(matched bool) string {
	if matched {
		return "match"
	}
	return "no match"
}

func printHost() {
	host, ok := multiversion.HostArchitecture()
	archName := "unsupported (" + runtime.GOARCH + ")"
	if ok {
		archName = host.String()
	}
	fmt.Printf("architecture: %s (GOARCH=%s)\n", archName, runtime.GOARCH)
	if cpu.Disabled() {
		fmt.Println("adaptive dispatch disabled via MULTIVERSION_NO_DISPATCH")
	}

	names := cpu.Names()
	if len(names) == 0 {
		fmt.Println("no feature probes on this architecture; dispatch always selects defaults")
		return
	}
	fmt.Println("\nfeatures:")
	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	for _, name := range names {
		fmt.Fprintf(w, "  %s\t%s\n", name, verdict(cpu.Supported(name)))
	}
	w.Flush()
}
