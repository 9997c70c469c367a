package geometry

// reduceSides merges every window [s, 0, s] of ray crossing sides into a
// single s. A ray grazing a notch crosses two edges joined by a collinear
// edge, which must count once. The merge is a single left-to-right pass.
func reduceSides(sides []int) []int {
	out := make([]int, 0, len(sides))
	for i := 0; i < len(sides); {
		if i+2 < len(sides) && sides[i+1] == 0 && sides[i] == sides[i+2] {
			out = append(out, sides[i])
			i += 3
			continue
		}
		out = append(out, sides[i])
		i++
	}
	return out
}

// windingSum adds up reduced sides and corrects once for a grazed notch
// that straddles the start of the edge enumeration.
func windingSum(sides []int) int {
	n := len(sides)
	if n == 0 {
		return 0
	}

	sum := 0
	for _, s := range sides {
		sum += s
	}

	var first, second, secondLast, last int
	if n == 1 {
		first = sides[0]
	} else {
		first, second = sides[0], sides[1]
		secondLast, last = sides[n-2], sides[n-1]
	}

	switch {
	case last == 0 && secondLast == first:
		sum -= secondLast
	case first == 0 && last == second:
		sum -= last
	}
	return sum
}
