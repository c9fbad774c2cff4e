package campus

import (
	"fmt"
	"slices"
	"strings"

	"github.com/armon/go-radix"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/campusplanner/avl"
	"github.com/katalvlaran/campusplanner/bst"
	"github.com/katalvlaran/campusplanner/building"
	"github.com/katalvlaran/campusplanner/core"
)

var validate = validator.New()

// Campus is a fixed set of buildings plus the roads between them.
type Campus struct {
	log       zerolog.Logger
	buildings []building.Building // vertex index → building
	vertexOf  map[int]int         // building id → vertex index
	balanced  *avl.Tree
	plain     *bst.Tree
	names     *radix.Tree // lowercase name → []int ids, ascending
	graph     *core.Graph
}

// New validates buildings and indexes them. Vertex indices follow the input
// order.
// Complexity: O(n log n) plus O(n·h) for the plain tree.
func New(buildings []building.Building, opts ...Option) (*Campus, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	c := &Campus{
		log:       cfg.Logger.With().Str("component", "campus").Logger(),
		buildings: make([]building.Building, 0, len(buildings)),
		vertexOf:  make(map[int]int, len(buildings)),
		balanced:  avl.New(),
		plain:     bst.New(),
		names:     radix.New(),
	}

	for _, b := range buildings {
		if err := validate.Struct(b); err != nil {
			return nil, fmt.Errorf("%w: id %d: %v", ErrInvalidBuilding, b.ID, err)
		}
		if _, dup := c.vertexOf[b.ID]; dup {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateBuilding, b.ID)
		}
		c.vertexOf[b.ID] = len(c.buildings)
		c.buildings = append(c.buildings, b)
		c.balanced.Insert(b)
		c.plain.Insert(b)
		c.indexName(b)
	}

	g, err := core.NewGraph(len(c.buildings))
	if err != nil {
		return nil, err
	}
	c.graph = g

	c.log.Debug().
		Int("buildings", len(c.buildings)).
		Int("avl_height", c.balanced.Height()).
		Int("bst_height", c.plain.Height()).
		Msg("campus indexed")

	return c, nil
}

func (c *Campus) indexName(b building.Building) {
	key := strings.ToLower(b.Name)
	var ids []int
	if v, ok := c.names.Get(key); ok {
		ids = v.([]int)
	}
	ids = append(ids, b.ID)
	slices.Sort(ids)
	c.names.Insert(key, ids)
}

// Connect adds an undirected road of the given length between two buildings.
func (c *Campus) Connect(fromID, toID int, distance float64) error {
	u, err := c.vertex(fromID)
	if err != nil {
		return err
	}
	v, err := c.vertex(toID)
	if err != nil {
		return err
	}
	if err = c.graph.AddEdge(u, v, distance); err != nil {
		return fmt.Errorf("campus: road %d-%d: %w", fromID, toID, err)
	}
	c.log.Debug().Int("from", fromID).Int("to", toID).Float64("distance", distance).Msg("road added")

	return nil
}

func (c *Campus) vertex(id int) (int, error) {
	v, ok := c.vertexOf[id]
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrUnknownBuilding, id)
	}

	return v, nil
}

// VertexOf returns the graph vertex assigned to a building id.
func (c *Campus) VertexOf(id int) (int, bool) {
	v, ok := c.vertexOf[id]

	return v, ok
}

// BuildingAt returns the building assigned to a graph vertex.
func (c *Campus) BuildingAt(vertex int) (building.Building, bool) {
	if vertex < 0 || vertex >= len(c.buildings) {
		return building.Building{}, false
	}

	return c.buildings[vertex], true
}

// Len returns the number of buildings.
func (c *Campus) Len() int {
	return len(c.buildings)
}

// Roads returns the number of roads added so far.
func (c *Campus) Roads() int {
	return c.graph.EdgeCount()
}

// Graph returns a copy of the road graph.
func (c *Campus) Graph() *core.Graph {
	return c.graph.Clone()
}

// Lookup finds a building by id in the balanced index.
// Complexity: O(log n).
func (c *Campus) Lookup(id int) (building.Building, bool) {
	return c.balanced.Search(id)
}

// WithPrefix returns the buildings whose lowercase name starts with the
// lowercase prefix, ordered by name and then by id.
func (c *Campus) WithPrefix(prefix string) []building.Building {
	var out []building.Building
	c.names.WalkPrefix(strings.ToLower(prefix), func(_ string, v interface{}) bool {
		for _, id := range v.([]int) {
			b, _ := c.balanced.Search(id)
			out = append(out, b)
		}
		return false
	})

	return out
}

// Sorted lists every building in ascending id order.
func (c *Campus) Sorted() []building.Building {
	return c.balanced.InOrder()
}

// SortedPlain lists every building from the unbalanced tree; the order is
// the same as Sorted.
func (c *Campus) SortedPlain() []building.Building {
	return c.plain.InOrder()
}

// Heights reports the height of the balanced index and of the plain tree
// built from the same insertion sequence.
func (c *Campus) Heights() (balanced, plain int) {
	return c.balanced.Height(), c.plain.Height()
}

func (c *Campus) toBuildings(vertices []int) []building.Building {
	out := make([]building.Building, len(vertices))
	for i, v := range vertices {
		out[i] = c.buildings[v]
	}

	return out
}
