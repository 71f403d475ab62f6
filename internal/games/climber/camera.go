package climber

import "github.com/vovakirdan/tui-climber/internal/config"

// Camera tracks the actor upward-only and converts between world and view
// coordinates. Y is the world coordinate of the top of the view; climbing
// drives it negative.
type Camera struct {
	Y float64

	worldH       float64
	followOffset float64 // Keeps the actor in the lower portion of the view
	maxY         float64 // Camera never scrolls below its starting position
}

// NewCamera creates a camera at the world origin.
func NewCamera(world config.ClimberWorld) *Camera {
	return &Camera{
		worldH:       world.Height,
		followOffset: world.Height * 0.3,
	}
}

// Update follows the actor upward. The camera never moves down, which is
// what produces the one-way scrolling.
func (c *Camera) Update(a *Actor) {
	target := a.Y - (c.worldH - c.followOffset)
	if target < c.Y {
		c.Y = target
	}
	if c.Y > c.maxY {
		c.Y = c.maxY
	}
}

// WorldToViewY converts a world y to a view-relative y.
func (c *Camera) WorldToViewY(worldY float64) float64 {
	return worldY - c.Y
}

// ViewToWorldY converts a view-relative y to a world y.
func (c *Camera) ViewToWorldY(viewY float64) float64 {
	return viewY + c.Y
}

// Frontier returns the world y the generator must have platforms above:
// the top of the view minus a lookahead buffer.
func (c *Camera) Frontier(buffer float64) float64 {
	return c.Y - buffer
}

// CleanupThreshold returns the world y below which platforms are out of
// play: the bottom of the view plus a margin.
func (c *Camera) CleanupThreshold(margin float64) float64 {
	return c.Y + c.worldH + margin
}

// ScrollDistance returns how far the camera has climbed from its start.
func (c *Camera) ScrollDistance() float64 {
	return c.maxY - c.Y
}

// IsBelowView reports whether the actor has fallen out of the bottom of the
// view by more than margin.
func (c *Camera) IsBelowView(a *Actor, margin float64) bool {
	return a.Feet() > c.Y+c.worldH+margin
}

// IsVisible reports whether a world y span [y, y+height] intersects the view.
func (c *Camera) IsVisible(worldY, height float64) bool {
	viewY := c.WorldToViewY(worldY)
	return viewY+height >= 0 && viewY <= c.worldH
}
