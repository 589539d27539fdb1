package qmap

// Worldspawn wraps brushes in a worldspawn entity, the entity that
// carries a level's static geometry.
func Worldspawn(brushes []*Brush) *Entity {
	return &Entity{
		Parameters: map[string]string{"classname": "worldspawn"},
		Brushes:    brushes,
	}
}
