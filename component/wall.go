package component

// WallComponent marks level geometry; walls are always Immovable
type WallComponent struct{}
