package activity

// RecentLimit is how many activities the dashboard shows.
const RecentLimit = 5

// TypeCount is the number of activities of one type.
type TypeCount struct {
	Type  Type
	Count int
}

// Tally counts activities per type, in the order of Types.
// Every type is present, including those with zero activities.
func Tally(types []Type) []TypeCount {
	counts := make(map[Type]int, len(Types))
	for _, t := range types {
		counts[t]++
	}

	out := make([]TypeCount, len(Types))
	for i, t := range Types {
		out[i] = TypeCount{Type: t, Count: counts[t]}
	}
	return out
}

// Recent returns how many leading activities of a collection of size n the
// dashboard lists.
func Recent(n int) int {
	if n < RecentLimit {
		return n
	}
	return RecentLimit
}
