package campus_test

import (
	"fmt"

	"github.com/katalvlaran/campusplanner/campus"
)

func ExampleCampus_Route() {
	c, err := campus.Sample()
	if err != nil {
		fmt.Println(err)
		return
	}
	r, _ := c.Route(101, 106)
	for _, b := range r.Stops {
		fmt.Print(b.Name, " ")
	}
	fmt.Println(r.Distance)
	// Output: Admin CSE Cafeteria Gym 17
}

func ExampleCampus_Backbone() {
	c, _ := campus.Sample()
	links, total, _ := c.Backbone()
	for _, l := range links {
		fmt.Printf("%s-%s %.0f\n", l.From.Name, l.To.Name, l.Distance)
	}
	fmt.Println("total:", total)
	// Output:
	// Cafeteria-Gym 3
	// CSE-Cafeteria 4
	// Admin-Library 5
	// CSE-ECE 6
	// Admin-CSE 10
	// total: 28
}
