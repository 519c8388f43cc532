package core

// Color is a semantic color role for a screen cell.
// The platform layer maps each role to a concrete terminal color through
// the active theme, so games never deal with palettes.
type Color uint8

// Color roles used by the maze renderer.
const (
	ColorDefault    Color = iota
	ColorBackground       // Open field
	ColorWall             // Solid maze wall
	ColorEdge             // Wall cell bordering the gap
	ColorBall             // Player ball
	ColorText             // HUD and overlay text
	ColorAccent           // Titles and highlights
	ColorDim              // Secondary text, box borders
	ColorDanger           // Lost lives, game over title
)
