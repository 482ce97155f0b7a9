package core

// Entity is a dense actor index into the fixed-capacity stores
// Identity and lifetime are owned by the host; zero is a valid actor
type Entity uint32

// Index returns the entity as a slice index
func (e Entity) Index() int {
	return int(e)
}
