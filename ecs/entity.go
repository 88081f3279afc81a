package ecs

import "strconv"

// Entity packs a slot id (low 32 bits) and the slot generation (high 32 bits).
// The zero Entity is never handed out.
type Entity uint64

const entityIDBits = 32

func makeEntity(id, gen uint32) Entity {
	return Entity(uint64(gen)<<entityIDBits | uint64(id))
}

func (e Entity) id() uint32 {
	return uint32(e)
}

func (e Entity) generation() uint32 {
	return uint32(uint64(e) >> entityIDBits)
}

func (e Entity) String() string {
	return strconv.FormatUint(uint64(e.id()), 10) + "v" + strconv.FormatUint(uint64(e.generation()), 10)
}

func (e Entity) Valid() bool {
	return e.id() > 0
}
