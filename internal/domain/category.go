package domain

// CategoryOption is one entry of the category catalog. Label and value are
// identical; the split exists for select-style UI consumers.
type CategoryOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// CategoryOptions returns the fixed category catalog in declared order.
func CategoryOptions() []CategoryOption {
	names := []string{
		"Entertainment",
		"Services",
		"Health",
		"Education",
		"Work",
		"Home",
		"Transport",
		"Others",
	}
	options := make([]CategoryOption, len(names))
	for i, n := range names {
		options[i] = CategoryOption{Label: n, Value: n}
	}
	return options
}
