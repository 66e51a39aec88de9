package generator

type ratio struct {
	num int
	den int
}

// Tokens outside the table fall back to square.
var aspectRatios = map[string]ratio{
	"1:1":  {1, 1},
	"16:9": {16, 9},
	"9:16": {9, 16},
	"4:3":  {4, 3},
}

// dimensionsFor scales the aspect ratio so that the shorter side equals
// base exactly; the longer side is truncated to an integer.
func dimensionsFor(base int, aspect string) (width, height int) {
	r, ok := aspectRatios[aspect]
	if !ok {
		r = ratio{1, 1}
	}
	if r.num >= r.den {
		height = base
		width = base * r.num / r.den
	} else {
		width = base
		height = base * r.den / r.num
	}
	return width, height
}
