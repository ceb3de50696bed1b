package lottery

import "sort"

// Normalize returns a sorted copy of numbers without duplicates.
func Normalize(numbers []int) []int {
	result := make([]int, 0, len(numbers))
	seen := make(map[int]struct{}, len(numbers))
	for _, n := range numbers {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		result = append(result, n)
	}

	sort.Ints(result)
	return result
}

func HasDuplicates(numbers []int) bool {
	seen := make(map[int]struct{}, len(numbers))
	for _, n := range numbers {
		if _, ok := seen[n]; ok {
			return true
		}
		seen[n] = struct{}{}
	}

	return false
}

// IntersectionSize counts the distinct numbers present in both a and b.
func IntersectionSize(a, b []int) int {
	set := toSet(b)
	count := 0
	for n := range toSet(a) {
		if _, ok := set[n]; ok {
			count++
		}
	}

	return count
}

// IsSubset reports whether every number of sub is contained in super.
func IsSubset(sub, super []int) bool {
	set := toSet(super)
	for _, n := range sub {
		if _, ok := set[n]; !ok {
			return false
		}
	}

	return true
}

// Union returns the sorted distinct numbers of all the sets.
func Union(sets ...[]int) []int {
	all := []int{}
	for _, s := range sets {
		all = append(all, s...)
	}

	return Normalize(all)
}

func toSet(numbers []int) map[int]struct{} {
	set := make(map[int]struct{}, len(numbers))
	for _, n := range numbers {
		set[n] = struct{}{}
	}

	return set
}
