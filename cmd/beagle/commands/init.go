package commands

import (
	"flag"
	"fmt"
	"io"

	"github.com/agiangrant/beagle"
)

// Init implements the 'beagle init' command
func Init(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	path := fs.String("config", beagle.ConfigFile, "Path of the configuration file to create")
	if err := fs.Parse(args); err != nil {
		return err
	}

	target := beagle.ResolveConfigPath(*path)
	created, err := beagle.CreateConfig(target)
	if err != nil {
		return err
	}
	if !created {
		fmt.Fprintf(out, "%s already exists, leaving it unchanged\n", target)
		return nil
	}
	fmt.Fprintf(out, "Created %s\n", target)
	return nil
}
