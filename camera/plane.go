package camera

// Blank is the symbol of an empty cell.
const Blank = ' '

// plane is the frame buffer: width*height cells in row-major order with the
// origin at the top left. Only Camera touches it.
type plane struct {
	width, height int
	cells         []rune
}

func newPlane(width, height int) plane {
	p := plane{width: width, height: height, cells: make([]rune, width*height)}
	p.clear()
	return p
}

func (p *plane) clear() {
	for i := range p.cells {
		p.cells[i] = Blank
	}
}

func (p *plane) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < p.width && y < p.height
}

// set drops writes outside the plane.
func (p *plane) set(x, y int, r rune) {
	if !p.inBounds(x, y) {
		return
	}
	p.cells[y*p.width+x] = r
}

func (p *plane) at(x, y int) rune {
	if !p.inBounds(x, y) {
		return Blank
	}
	return p.cells[y*p.width+x]
}

func (p *plane) row(y int) []rune {
	return p.cells[y*p.width : (y+1)*p.width]
}

// copyText writes runes from (x, y) onwards, wrapping into following rows and
// stopping at the end of the plane.
func (p *plane) copyText(x, y int, text string) {
	if x < 0 || y < 0 {
		return
	}
	i := y*p.width + x
	for _, r := range text {
		if i >= len(p.cells) {
			return
		}
		p.cells[i] = r
		i++
	}
}
