package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/hupe1980/classmap"
	"github.com/hupe1980/classmap/atom"
)

func init() {
	rootCmd.AddCommand(newInspectCmd())
}

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <bundle>",
		Short: "Show the class map layout of every class in a bundle",
		Long: `The inspect command compiles a bundle and prints, per class, its
members with their slot indices plus the class map's capacity, load factor,
memory footprint and probe statistics.

Example:
  classmapctl inspect people.yaml
  classmapctl --root ./catalogs inspect people.json.zst --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, args[0])
		},
	}
}

type memberInfo struct {
	Index    uint32 `json:"index"`
	Name     string `json:"name"`
	Kind     string `json:"kind"`
	Observed bool   `json:"observed,omitempty"`
}

type classInfo struct {
	Name    string         `json:"name"`
	Members []memberInfo   `json:"members"`
	Layout  classmap.Stats `json:"layout"`
}

type bundleInfo struct {
	Name     string      `json:"name"`
	Checksum string      `json:"checksum"`
	Classes  []classInfo `json:"classes"`
}

func describeClass(c *atom.Class) classInfo {
	info := classInfo{Name: c.Name(), Layout: c.Map().Stats()}
	for i, name := range c.Names() {
		d, _, _ := c.Member(name)
		info.Members = append(info.Members, memberInfo{
			Index:    uint32(i),
			Name:     name,
			Kind:     d.Kind(),
			Observed: c.Observed(name),
		})
	}
	return info
}

func runInspect(cmd *cobra.Command, bundle string) error {
	cat, err := newLoader().Load(cmd.Context(), bundle)
	if err != nil {
		return err
	}
	defer func() { _ = cat.Close() }()

	info := bundleInfo{Name: cat.Name, Checksum: fmt.Sprintf("%08x", cat.Checksum)}
	for _, c := range cat.Classes {
		info.Classes = append(info.Classes, describeClass(c))
	}

	out := cmd.OutOrStdout()
	if jsonOut {
		return printJSON(out, info)
	}
	return printBundle(out, info)
}

func printBundle(out io.Writer, info bundleInfo) error {
	fmt.Fprintf(out, "%s (crc32c %s, %d classes)\n", info.Name, info.Checksum, len(info.Classes))
	for _, c := range info.Classes {
		l := c.Layout
		fmt.Fprintf(out, "\n%s: %d/%d slots, load %.2f, %d bytes, probe max %d mean %.2f\n",
			c.Name, l.Count, l.Capacity, l.LoadFactor, l.ByteSize, l.MaxProbe, l.MeanProbe)

		tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		for _, m := range c.Members {
			fmt.Fprintf(tw, "  %d\t%s\t%s\n", m.Index, m.Name, m.Kind)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}
	return nil
}
