package renderer

// SortIDCache hands out dense ids for shader names and texture handles so
// materials can be ordered by render state with integer comparisons. Not safe
// for concurrent use; it is only touched from the render thread.
type SortIDCache struct {
	ids      map[string]int
	next     int
	textures map[uint32]int
}

// ShaderIDs is the cache materials use for their sort ids
var ShaderIDs = NewSortIDCache()

// NewSortIDCache creates an empty cache. Id 0 is reserved for the unnamed shader.
func NewSortIDCache() *SortIDCache {
	return &SortIDCache{
		ids:      map[string]int{"": 0},
		next:     1,
		textures: map[uint32]int{0: 0},
	}
}

// ShaderID returns the cached id or assigns the next one
func (c *SortIDCache) ShaderID(name string) int {
	if id, exists := c.ids[name]; exists {
		return id
	}

	id := c.next
	c.ids[name] = id
	c.next++
	return id
}

// TextureID returns the dense id of a texture handle. Handle 0, no texture,
// keeps id 0.
func (c *SortIDCache) TextureID(handle uint32) int {
	if id, exists := c.textures[handle]; exists {
		return id
	}

	id := len(c.textures)
	c.textures[handle] = id
	return id
}

// Len returns the number of shaders with an id, the unnamed shader included
func (c *SortIDCache) Len() int {
	return len(c.ids)
}

// Clear forgets every id. Materials recompute theirs on the next SortID call.
func (c *SortIDCache) Clear() {
	c.ids = map[string]int{"": 0}
	c.next = 1
	c.textures = map[uint32]int{0: 0}
}
