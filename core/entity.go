package core

// Entity is an opaque handle; all entity state lives in component stores
type Entity uint64

// NoEntity is never issued by a world
const NoEntity Entity = 0
