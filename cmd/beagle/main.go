package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/agiangrant/beagle"
	"github.com/agiangrant/beagle/cmd/beagle/commands"
)

// GLFW must be driven from the main thread.
func init() {
	runtime.LockOSThread()
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var err error
	switch cmd {
	case "run":
		err = commands.Run(args)
	case "probe":
		err = commands.Probe(args, os.Stdout)
	case "init":
		err = commands.Init(args, os.Stdout)
	case "version", "-v", "--version":
		fmt.Printf("beagle version %s\n", beagle.Version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`beagle - native OpenGL/GLFW binding engine

Usage: beagle <command> [options]

Commands:
  run       Open the window and run the engine until it is closed
  probe     Report which GLFW and OpenGL entry points a library exports
  init      Write a default beagle.toml
  version   Print version information
  help      Show this help message

Examples:
  beagle init                          Create beagle.toml in the current directory
  beagle run -demo                     Run with the textured quad demo
  beagle run -profile cpu              Run and write a CPU profile
  beagle probe                         Probe the default libraries
  beagle probe -lib /opt/mesa/libGL.so.1 -i
                                       Browse the slots of a specific library`)
}
