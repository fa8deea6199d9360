package palette

import "math"

// Distance returns the squared Euclidean distance between two colors.
func Distance(c1, c2 Color) int {
	r := int(c1.R) - int(c2.R)
	g := int(c1.G) - int(c2.G)
	b := int(c1.B) - int(c2.B)
	return r*r + g*g + b*b
}

// ClosestPair returns the indices i < j of the two buckets whose averages
// are closest, along with their distance. Buckets are scanned by ascending
// i then ascending j and the first pair found wins a tie. It returns -1, -1
// if there are fewer than two buckets.
func ClosestPair(buckets []*Bucket) (int, int, int) {
	p1, p2 := -1, -1
	min := math.MaxInt32
	for i := 0; i < len(buckets)-1; i++ {
		for j := i + 1; j < len(buckets); j++ {
			if d := Distance(buckets[i].Average(), buckets[j].Average()); d < min {
				min, p1, p2 = d, i, j
			}
		}
	}
	if p1 < 0 {
		return -1, -1, 0
	}
	return p1, p2, min
}

// MergePair returns a new list with buckets i and j merged into one bucket
// at position i. Bucket j is dropped and everything else keeps its order.
func MergePair(buckets []*Bucket, i, j int) []*Bucket {
	if i > j {
		i, j = j, i
	}
	out := make([]*Bucket, 0, len(buckets)-1)
	for k, b := range buckets {
		switch k {
		case i:
			out = append(out, b.Merge(buckets[j]))
		case j:
		default:
			out = append(out, b)
		}
	}
	return out
}

// MergeClosest merges the two closest buckets. Lists with fewer than two
// buckets are returned as is.
func MergeClosest(buckets []*Bucket) []*Bucket {
	i, j, _ := ClosestPair(buckets)
	if i < 0 {
		return buckets
	}
	return MergePair(buckets, i, j)
}
