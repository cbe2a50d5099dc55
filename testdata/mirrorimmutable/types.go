package mirrorimmutable

import "github.com/Orange-Icepop/ReverseMutty/coll"

//mutty:mirror
type Snapshot struct {
	Names coll.List[string]
	Index coll.Map[string, int]
	Count int
}

// Size reports the number of indexed names.
//
//mutty:include
func (s Snapshot) Size() int {
	return s.Index.Len()
}
