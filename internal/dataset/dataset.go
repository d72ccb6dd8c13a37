package dataset

import "sort"

// Passenger is a single immutable row of the Titanic table. Age and Embarked
// are missing for some passengers; a nil Age is excluded from age aggregates
// but the passenger still counts toward totals.
type Passenger struct {
	ID       int
	Survived bool
	Sex      string
	Class    int
	Age      *float64
	Fare     float64
	Embarked string
}

// Dataset is the in-memory passenger table. It is loaded once at startup and
// never mutated afterwards, so unsynchronized concurrent reads are safe.
type Dataset struct {
	passengers []Passenger
}

func New(passengers []Passenger) *Dataset {
	return &Dataset{passengers: passengers}
}

func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.passengers)
}

func (d *Dataset) Empty() bool {
	return d.Len() == 0
}

// Passengers returns the underlying rows. Callers must not modify the slice.
func (d *Dataset) Passengers() []Passenger {
	if d == nil {
		return nil
	}
	return d.passengers
}

// Classes returns the sorted distinct class labels present in the table.
func (d *Dataset) Classes() []int {
	seen := make(map[int]bool)
	var classes []int
	for _, p := range d.Passengers() {
		if !seen[p.Class] {
			seen[p.Class] = true
			classes = append(classes, p.Class)
		}
	}
	sort.Ints(classes)
	return classes
}
