package mirrorbad

//mutty:mirror
type Alias = int

//mutty:include
func Free() int {
	return 0
}

type Plain struct {
	N int
}

//mutty:include
func (p Plain) Sum() int {
	return p.N
}

//mutty:mirror
type Ok struct {
	N int
}
