package campus

import (
	"errors"
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/campusplanner/bfs"
	"github.com/katalvlaran/campusplanner/building"
	"github.com/katalvlaran/campusplanner/dfs"
	"github.com/katalvlaran/campusplanner/dijkstra"
	"github.com/katalvlaran/campusplanner/prim_kruskal"
)

// BreadthFirst lists the buildings reachable from startID in BFS order.
func (c *Campus) BreadthFirst(startID int) ([]building.Building, error) {
	start, err := c.vertex(startID)
	if err != nil {
		return nil, err
	}
	res, err := bfs.BFS(c.graph, start)
	if err != nil {
		return nil, err
	}

	return c.toBuildings(res.Order), nil
}

// Nearby lists the buildings at most hops roads away from startID in BFS
// order, with their road count. Roads into a building listed in closed are
// not taken; the start itself is always included.
func (c *Campus) Nearby(startID, hops int, closed ...int) ([]Stop, error) {
	if hops < 0 {
		return nil, fmt.Errorf("%w: hops %d", ErrBadHops, hops)
	}
	start, err := c.vertex(startID)
	if err != nil {
		return nil, err
	}
	blocked := bitset.New(uint(len(c.buildings)))
	for _, id := range closed {
		v, err := c.vertex(id)
		if err != nil {
			return nil, err
		}
		blocked.Set(uint(v))
	}

	var stops []Stop
	_, err = bfs.BFS(c.graph, start,
		bfs.WithMaxDepth(hops),
		bfs.WithFilterNeighbor(func(_, next int) bool {
			return hops > 0 && !blocked.Test(uint(next))
		}),
		bfs.WithOnVisit(func(v, depth int) error {
			stops = append(stops, Stop{Building: c.buildings[v], Hops: depth})
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}

	return stops, nil
}

// DepthFirst lists the buildings reachable from startID in DFS discovery
// order.
func (c *Campus) DepthFirst(startID int) ([]building.Building, error) {
	start, err := c.vertex(startID)
	if err != nil {
		return nil, err
	}
	res, err := dfs.DFS(c.graph, start)
	if err != nil {
		return nil, err
	}

	return c.toBuildings(res.Order), nil
}

// Route returns the shortest road path between two buildings.
// Returns ErrNoRoute when toID cannot be reached from fromID.
func (c *Campus) Route(fromID, toID int) (*Route, error) {
	src, err := c.vertex(fromID)
	if err != nil {
		return nil, err
	}
	dst, err := c.vertex(toID)
	if err != nil {
		return nil, err
	}

	res, err := dijkstra.Dijkstra(c.graph, src)
	if err != nil {
		return nil, err
	}
	path, err := res.PathTo(dst)
	if errors.Is(err, dijkstra.ErrUnreachable) {
		return nil, fmt.Errorf("%w: %d to %d", ErrNoRoute, fromID, toID)
	}
	if err != nil {
		return nil, err
	}

	c.log.Debug().Int("from", fromID).Int("to", toID).Int("stops", len(path)).Msg("route computed")

	return &Route{Stops: c.toBuildings(path), Distance: res.Dist[dst]}, nil
}

// Distances returns the shortest road distance from fromID to every
// reachable building, keyed by building id.
func (c *Campus) Distances(fromID int) (map[int]float64, error) {
	src, err := c.vertex(fromID)
	if err != nil {
		return nil, err
	}
	res, err := dijkstra.Dijkstra(c.graph, src)
	if err != nil {
		return nil, err
	}

	out := make(map[int]float64, len(c.buildings))
	for v, d := range res.Dist {
		if res.Reachable(v) {
			out[c.buildings[v].ID] = d
		}
	}

	return out, nil
}

// Backbone returns the minimum set of roads connecting every building
// (Kruskal, acceptance order) and its total length. A campus split into
// several parts yields one tree per part.
func (c *Campus) Backbone() ([]Link, float64, error) {
	return c.backbone(prim_kruskal.WithMethod(prim_kruskal.MethodKruskal))
}

// BackboneFrom grows the backbone from rootID with Prim's algorithm.
// Unlike Backbone it fails with prim_kruskal.ErrDisconnected when some
// building is unreachable.
func (c *Campus) BackboneFrom(rootID int) ([]Link, float64, error) {
	root, err := c.vertex(rootID)
	if err != nil {
		return nil, 0, err
	}

	return c.backbone(prim_kruskal.WithMethod(prim_kruskal.MethodPrim), prim_kruskal.WithRoot(root))
}

func (c *Campus) backbone(opts ...prim_kruskal.Option) ([]Link, float64, error) {
	edges, total, err := prim_kruskal.Compute(c.graph, opts...)
	if err != nil {
		return nil, 0, err
	}
	links := make([]Link, len(edges))
	for i, e := range edges {
		links[i] = Link{From: c.buildings[e.From], To: c.buildings[e.To], Distance: e.Weight}
	}

	return links, total, nil
}

// Loop returns the buildings of one closed road loop, or nil when the road
// network is a forest.
func (c *Campus) Loop() ([]building.Building, error) {
	cycle, err := dfs.FindCycle(c.graph)
	if err != nil || cycle == nil {
		return nil, err
	}

	return c.toBuildings(cycle), nil
}
