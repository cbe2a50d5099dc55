package mirrorbasic

//mutty:mirror
type Point struct {
	X int
	Y int
}

//mutty:mirror
type Account struct {
	ID   string `json:"id"`
	Tags []string
	//mutty:default 3
	Retries int
	Scores  map[string]int
	secret  string
}

// Sum adds both coordinates.
//
//mutty:include
func (p Point) Sum() int {
	return p.X + p.Y
}

func (p Point) Untagged() int {
	return 0
}

//mutty:mirror
type Empty struct {
	hidden int
}
