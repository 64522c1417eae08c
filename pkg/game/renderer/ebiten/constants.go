package ebiten

import "image/color"

// Color palette for the game - brighter colors for visibility
var (
	colorBackground      = color.RGBA{26, 26, 46, 255}    // Dark blue-gray
	colorMapBackground   = color.RGBA{15, 15, 26, 255}    // Darker for the arena floor
	colorFloorGrid       = color.RGBA{30, 30, 48, 255}    // Faint grid lines
	colorSpawnCell       = color.RGBA{40, 32, 48, 255}    // Enemy spawn floors
	colorPlayer          = color.RGBA{0, 255, 0, 255}     // Bright green
	colorWall            = color.RGBA{60, 60, 80, 255}    // Wall fill
	colorWallEdge        = color.RGBA{180, 180, 200, 255} // Light gray-blue outline
	colorDoorClosed      = color.RGBA{255, 255, 0, 255}   // Bright yellow
	colorDoorOpen        = color.RGBA{0, 220, 0, 255}     // Bright green
	colorLever           = color.RGBA{100, 220, 255, 255} // Cyan
	colorLeverLocked     = color.RGBA{120, 120, 140, 255} // Medium gray
	colorKey             = color.RGBA{100, 150, 255, 255} // Bright blue
	colorItem            = color.RGBA{220, 170, 255, 255} // Bright purple
	colorMedkit          = color.RGBA{255, 90, 110, 255}  // Red cross
	colorEnemy           = color.RGBA{255, 80, 80, 255}   // Bright red
	colorEnemyTurret     = color.RGBA{255, 165, 0, 255}   // Orange
	colorEnemyKamikaze   = color.RGBA{255, 150, 255, 255} // Bright pink
	colorProjectile      = color.RGBA{255, 255, 150, 255} // Pale yellow
	colorEnemyProjectile = color.RGBA{255, 120, 60, 255}  // Orange-red
	colorHealthBack      = color.RGBA{60, 20, 20, 220}    // Dark red
	colorHealthFront     = color.RGBA{0, 220, 80, 255}    // Green
	colorHealthLow       = color.RGBA{255, 80, 80, 255}   // Red
	colorSubtle          = color.RGBA{120, 130, 180, 255} // Soft blue-purple-gray
	colorText            = color.RGBA{200, 210, 245, 255} // Soft off-white with blue-purple tint
	colorAction          = color.RGBA{180, 150, 250, 255} // Blue-purple
	colorDenied          = color.RGBA{255, 100, 100, 255} // Bright red
	colorPanelBackground = color.RGBA{30, 30, 50, 220}    // Semi-transparent dark

	// Callout colors
	ColorCalloutInfo    = color.RGBA{200, 200, 255, 255} // Light blue for info
	ColorCalloutSuccess = color.RGBA{100, 255, 150, 255} // Green for success
	ColorCalloutDanger  = color.RGBA{255, 120, 120, 255} // Red for damage
	ColorCalloutItem    = color.RGBA{220, 170, 255, 255} // Purple for items
)

// Tile size constraints; a tile is one world unit
const (
	defaultTileSize = 40
	minTileSize     = 16
	maxTileSize     = 96
	tileSizeStep    = 4
	baseFontSize    = 16.0 // Base font size at default tile size
)

// HUD layout
const (
	hudPadding     = 10
	messageLines   = 5
	healthBarWidth = 200
	calloutSeconds = 0.8
	hitShakeTime   = 0.25
	hitShakeAmount = 8
)
