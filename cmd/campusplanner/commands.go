package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/campusplanner/building"
	"github.com/katalvlaran/campusplanner/campus"
	"github.com/katalvlaran/campusplanner/expr"
)

// energyBill is the postfix expression shown at the end of the demo.
var energyBill = []string{"100", "0.18", "*", "50", "+", "1.12", "*"}

func newDemoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:         "demo",
		Annotations: usesCampus(),
		Short:       "Walk through indexes, traversals, shortest paths, backbone and expression evaluation",
		Args:        cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.demo(cmd.OutOrStdout())
		},
	}
}

func (a *app) demo(w io.Writer) error {
	c := a.campus

	fmt.Fprintln(w, "=== BST & AVL ===")
	fmt.Fprintln(w, "BST inorder:")
	printBuildings(w, c.SortedPlain())
	fmt.Fprintln(w, "AVL inorder:")
	printBuildings(w, c.Sorted())
	balanced, plain := c.Heights()
	fmt.Fprintln(w, "BST height:", plain)
	fmt.Fprintln(w, "AVL height:", balanced)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "=== GRAPH ===")
	first, ok := c.BuildingAt(0)
	if !ok {
		fmt.Fprintln(w, "(no buildings)")
	} else {
		order, err := c.BreadthFirst(first.ID)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, "BFS:", building.IDs(order))

		if order, err = c.DepthFirst(first.ID); err != nil {
			return err
		}
		fmt.Fprintln(w, "DFS:", building.IDs(order))

		dist, err := c.Distances(first.ID)
		if err != nil {
			return err
		}
		parts := make([]string, c.Len())
		for v := range parts {
			b, _ := c.BuildingAt(v)
			d, reached := dist[b.ID]
			if !reached {
				parts[v] = "inf"
				continue
			}
			parts[v] = num(d)
		}
		fmt.Fprintf(w, "Dijkstra: [%s]\n", strings.Join(parts, " "))

		links, total, err := c.Backbone()
		if err != nil {
			return err
		}
		parts = parts[:0]
		for _, l := range links {
			parts = append(parts, fmt.Sprintf("%d-%d(%s)", l.From.ID, l.To.ID, num(l.Distance)))
		}
		fmt.Fprintf(w, "MST: [%s]\n", strings.Join(parts, " "))
		fmt.Fprintln(w, "MST total:", num(total))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "=== Expression Tree ===")
	tree, err := expr.Build(energyBill)
	if err != nil {
		return err
	}
	bill, err := tree.Eval()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Energy Bill: %.2f\n", bill)

	return nil
}

func newFindCmd(a *app) *cobra.Command {
	var (
		id     int
		prefix string
	)
	cmd := &cobra.Command{
		Use:         "find",
		Annotations: usesCampus(),
		Short:       "Find buildings by id or by name prefix (all buildings when no flag is given)",
		Args:        cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			switch {
			case cmd.Flags().Changed("id"):
				b, ok := a.campus.Lookup(id)
				if !ok {
					return fmt.Errorf("%w: %d", campus.ErrUnknownBuilding, id)
				}
				fmt.Fprintln(w, b)
			case cmd.Flags().Changed("prefix"):
				found := a.campus.WithPrefix(prefix)
				if len(found) == 0 {
					fmt.Fprintf(w, "no building name starts with %q\n", prefix)
					return nil
				}
				printBuildings(w, found)
			default:
				printBuildings(w, a.campus.Sorted())
			}

			return nil
		},
	}
	cmd.Flags().IntVar(&id, "id", 0, "building id")
	cmd.Flags().StringVar(&prefix, "prefix", "", "case-insensitive name prefix")
	cmd.MarkFlagsMutuallyExclusive("id", "prefix")

	return cmd
}

func newTourCmd(a *app) *cobra.Command {
	var (
		from int
		mode string
	)
	cmd := &cobra.Command{
		Use:         "tour",
		Annotations: usesCampus(),
		Short:       "List the buildings reachable from a start building",
		Args:        cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			start, err := a.defaultID(cmd, "from", from)
			if err != nil {
				return err
			}
			var order []building.Building
			switch mode {
			case "bfs":
				order, err = a.campus.BreadthFirst(start)
			case "dfs":
				order, err = a.campus.DepthFirst(start)
			default:
				return fmt.Errorf("unknown tour mode %q (want bfs or dfs)", mode)
			}
			if err != nil {
				return err
			}
			printBuildings(cmd.OutOrStdout(), order)

			return nil
		},
	}
	cmd.Flags().IntVar(&from, "from", 0, "start building id (default: first building)")
	cmd.Flags().StringVar(&mode, "mode", "bfs", "bfs or dfs")

	return cmd
}

func newRouteCmd(a *app) *cobra.Command {
	var from, to int
	cmd := &cobra.Command{
		Use:         "route",
		Annotations: usesCampus(),
		Short:       "Shortest road path between two buildings",
		Args:        cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := a.campus.Route(from, to)
			if err != nil {
				return err
			}
			names := make([]string, len(r.Stops))
			for i, b := range r.Stops {
				names[i] = fmt.Sprintf("%s [%d]", b.Name, b.ID)
			}
			w := cmd.OutOrStdout()
			fmt.Fprintln(w, "Route:", strings.Join(names, " -> "))
			fmt.Fprintln(w, "Distance:", num(r.Distance))

			return nil
		},
	}
	cmd.Flags().IntVar(&from, "from", 0, "start building id")
	cmd.Flags().IntVar(&to, "to", 0, "destination building id")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")

	return cmd
}

func newNearbyCmd(a *app) *cobra.Command {
	var (
		from, hops int
		closed     []int
	)
	cmd := &cobra.Command{
		Use:         "nearby",
		Short:       "Buildings within a number of roads of a start building",
		Annotations: usesCampus(),
		Args:        cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			start, err := a.defaultID(cmd, "from", from)
			if err != nil {
				return err
			}
			stops, err := a.campus.Nearby(start, hops, closed...)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, s := range stops {
				fmt.Fprintf(w, "  %d: %s\n", s.Hops, s.Building)
			}

			return nil
		},
	}
	cmd.Flags().IntVar(&from, "from", 0, "start building id (default: first building)")
	cmd.Flags().IntVar(&hops, "hops", 1, "maximum number of roads")
	cmd.Flags().IntSliceVar(&closed, "closed", nil, "building ids that cannot be entered")

	return cmd
}

func newBackboneCmd(a *app) *cobra.Command {
	var (
		method string
		root   int
	)
	cmd := &cobra.Command{
		Use:         "backbone",
		Annotations: usesCampus(),
		Short:       "Minimum total-length set of roads connecting the campus",
		Args:        cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				links []campus.Link
				total float64
				err   error
			)
			switch method {
			case "kruskal":
				links, total, err = a.campus.Backbone()
			case "prim":
				var start int
				if start, err = a.defaultID(cmd, "root", root); err != nil {
					return err
				}
				links, total, err = a.campus.BackboneFrom(start)
			default:
				return fmt.Errorf("unknown backbone method %q (want kruskal or prim)", method)
			}
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, l := range links {
				fmt.Fprintf(w, "  %s [%d] - %s [%d]: %s\n", l.From.Name, l.From.ID, l.To.Name, l.To.ID, num(l.Distance))
			}
			fmt.Fprintln(w, "Total:", num(total))

			return nil
		},
	}
	cmd.Flags().StringVar(&method, "method", "kruskal", "kruskal or prim")
	cmd.Flags().IntVar(&root, "root", 0, "root building id for prim (default: first building)")

	return cmd
}

func newEvalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval <postfix tokens...>",
		Short: `Evaluate a postfix expression, e.g. eval 100 0.18 '*' 50 +`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := expr.Parse(strings.Join(args, " "))
			if err != nil {
				return err
			}
			v, err := tree.Eval()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", tree, num(v))

			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "campusplanner v%s (%s)\n", version, commit)
			return nil
		},
	}
}

func printBuildings(w io.Writer, bs []building.Building) {
	for _, b := range bs {
		fmt.Fprintln(w, " ", b)
	}
}

// num formats a float with the fewest digits that round-trip.
func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
