package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hupe1980/classmap/atom"
)

func init() {
	rootCmd.AddCommand(newLookupCmd())
}

func newLookupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <bundle> <class> <name>",
		Short: "Resolve an attribute name to its member and slot index",
		Long: `The lookup command resolves one attribute name through a class map.

Example:
  classmapctl lookup people.yaml Person age`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(cmd, args[0], args[1], args[2])
		},
	}
}

func runLookup(cmd *cobra.Command, bundle, class, name string) error {
	cat, err := newLoader().Load(cmd.Context(), bundle)
	if err != nil {
		return err
	}
	defer func() { _ = cat.Close() }()

	c, ok := cat.Class(class)
	if !ok {
		return fmt.Errorf("class %q not found in %s", class, bundle)
	}
	d, idx, ok := c.Member(name)
	if !ok {
		return fmt.Errorf("%w: %s.%s", atom.ErrUnknownAttribute, class, name)
	}

	out := cmd.OutOrStdout()
	if jsonOut {
		return printJSON(out, memberInfo{Index: idx, Name: name, Kind: d.Kind(), Observed: c.Observed(name)})
	}
	_, err = fmt.Fprintf(out, "%s.%s: index %d, kind %s\n", class, name, idx, d.Kind())
	return err
}
