package vehicles

import "fmt"

// Category determines the field set, storage table and sort allow-list
// used everywhere downstream. It is carried alongside a record and is
// never re-inferred after assembly.
type Category string

const (
	Aviation   Category = "aviation"
	Ground     Category = "ground"
	Helicopter Category = "helicopters"
)

var Categories = []Category{Aviation, Ground, Helicopter}

// Table returns the storage table backing the category. Table names
// come from this closed enumeration only, they are never derived from
// client input.
func (c Category) Table() string {
	return string(c)
}

func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case Aviation, Ground, Helicopter:
		return Category(s), nil
	}
	return "", fmt.Errorf("unknown category '%s'", s)
}
