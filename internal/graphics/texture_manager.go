package graphics

import "sync"

// TextureCache loads each texture path once. The empty path maps to the
// procedural checker.
type TextureCache struct {
	mu       sync.Mutex
	textures map[string]*Texture
}

func NewTextureCache() *TextureCache {
	return &TextureCache{textures: make(map[string]*Texture)}
}

// Get returns the cached texture for path, loading it on first use.
func (c *TextureCache) Get(path string) (*Texture, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if tex, ok := c.textures[path]; ok {
		return tex, nil
	}
	var tex *Texture
	if path == "" {
		tex = NewTexture(DefaultChecker())
	} else {
		var err error
		if tex, err = LoadTexture(path); err != nil {
			return nil, err
		}
	}
	c.textures[path] = tex
	return tex, nil
}

// Len returns the number of cached textures.
func (c *TextureCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.textures)
}

// Delete frees every cached texture.
func (c *TextureCache) Delete() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for path, tex := range c.textures {
		tex.Delete()
		delete(c.textures, path)
	}
}
