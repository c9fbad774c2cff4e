package campus

import "github.com/katalvlaran/campusplanner/building"

// SampleBuildings returns the six demo buildings in insertion order.
func SampleBuildings() []building.Building {
	return []building.Building{
		{ID: 101, Name: "Admin", Details: "Administrative block"},
		{ID: 102, Name: "Library", Details: "Library building"},
		{ID: 103, Name: "CSE", Details: "Computer Science Dept"},
		{ID: 104, Name: "ECE", Details: "Electronics Dept"},
		{ID: 105, Name: "Cafeteria", Details: "Student canteen"},
		{ID: 106, Name: "Gym", Details: "Sports complex"},
	}
}

// SampleRoads returns the demo road network between SampleBuildings.
func SampleRoads() []Road {
	return []Road{
		{From: 101, To: 102, Distance: 5},
		{From: 101, To: 103, Distance: 10},
		{From: 103, To: 104, Distance: 6},
		{From: 103, To: 105, Distance: 4},
		{From: 105, To: 106, Distance: 3},
	}
}

// Sample builds the demo campus.
func Sample(opts ...Option) (*Campus, error) {
	return build(SampleBuildings(), SampleRoads(), opts...)
}

func build(buildings []building.Building, roads []Road, opts ...Option) (*Campus, error) {
	c, err := New(buildings, opts...)
	if err != nil {
		return nil, err
	}
	for _, r := range roads {
		if err = c.Connect(r.From, r.To, r.Distance); err != nil {
			return nil, err
		}
	}

	return c, nil
}
