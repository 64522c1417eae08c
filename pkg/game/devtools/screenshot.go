package devtools

import (
	"fmt"
	"html"
	"io"
	"os"
	"strings"
	"time"

	"topdown/pkg/game/levelgen"
	"topdown/pkg/game/renderer"
	"topdown/pkg/game/state"
)

// glyphClasses maps raster styles to CSS classes
var glyphClasses = map[renderer.TextStyle]string{
	renderer.StyleNormal:      "void",
	renderer.StyleFloor:       "floor",
	renderer.StyleWall:        "wall",
	renderer.StylePlayer:      "player",
	renderer.StyleEnemy:       "enemy",
	renderer.StyleProjectile:  "projectile",
	renderer.StyleDoorClosed:  "door-closed",
	renderer.StyleDoorOpen:    "door-open",
	renderer.StyleLever:       "lever",
	renderer.StyleLeverLocked: "lever-locked",
	renderer.StyleItem:        "item",
}

// SaveScreenshotHTML saves the arena view as a timestamped HTML file and
// returns its name
func SaveScreenshotHTML(g *state.Game) (string, error) {
	timestamp := time.Now().Format("20060102-150405")
	filename := fmt.Sprintf("screenshot-%s.html", timestamp)

	var b strings.Builder
	if err := WriteScreenshotHTML(&b, g); err != nil {
		return "", err
	}
	if err := os.WriteFile(filename, []byte(b.String()), 0644); err != nil {
		return "", fmt.Errorf("write screenshot: %w", err)
	}
	return filename, nil
}

// WriteScreenshotHTML renders the arena raster, player health and the message
// log as a standalone HTML page
func WriteScreenshotHTML(w io.Writer, g *state.Game) error {
	var page strings.Builder

	page.WriteString(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Top-down arena - Screenshot</title>
    <style>
        body {
            background-color: #1a1a2e;
            color: #eee;
            font-family: 'Courier New', monospace;
            padding: 20px;
        }
        .header {
            color: #bb86fc;
            font-size: 18px;
            margin-bottom: 10px;
        }
        .status {
            color: #888;
            margin-bottom: 20px;
        }
        .map-container {
            background-color: #0f0f1a;
            padding: 20px;
            border-radius: 8px;
            display: inline-block;
            margin: 20px 0;
        }
        .map-row {
            white-space: pre;
            line-height: 1.2;
            font-size: 16px;
        }
        .player { color: #00ff00; font-weight: bold; }
        .enemy { color: #ff4444; }
        .projectile { color: #ffff88; }
        .wall { color: #666; }
        .floor { color: #444; }
        .door-closed { color: #ffff00; font-weight: bold; }
        .door-open { color: #00aa00; }
        .lever { color: #00ffff; }
        .lever-locked { color: #666; }
        .item { color: #bb86fc; font-weight: bold; }
        .void { color: #1a1a2e; }
        .messages {
            margin-top: 20px;
            border-top: 1px solid #333;
            padding-top: 10px;
        }
        .message { color: #ccc; margin: 5px 0; }
    </style>
</head>
<body>
`)

	// Header
	page.WriteString(fmt.Sprintf(`    <div class="header">%s</div>`+"\n", html.EscapeString(levelgen.Title(g.Level))))
	if p := g.PlayerActor(); p != nil {
		page.WriteString(fmt.Sprintf(`    <div class="status">HP %.0f/%.0f, enemies left: %d</div>`+"\n",
			p.Health(), p.MaxHealth(), g.EnemiesRemaining()))
	}

	// Map container
	page.WriteString(`    <div class="map-container">` + "\n")
	if g.Arena.Width() > 0 && g.Arena.Height() > 0 {
		r := renderer.ArenaRaster(g)
		for _, row := range r.Cells {
			page.WriteString(`        <div class="map-row">`)
			for _, gl := range row {
				class, ok := glyphClasses[gl.Style]
				if !ok {
					class = "floor"
				}
				page.WriteString(fmt.Sprintf(`<span class="%s">%s</span>`, class, html.EscapeString(string(gl.Rune))))
			}
			page.WriteString("</div>\n")
		}
	}
	page.WriteString(`    </div>` + "\n")

	// Messages
	if len(g.Messages) > 0 {
		page.WriteString(`    <div class="messages">` + "\n")
		for _, msg := range g.Messages {
			page.WriteString(fmt.Sprintf(`        <div class="message">%s</div>`+"\n", html.EscapeString(renderer.StripMarkup(msg))))
		}
		page.WriteString(`    </div>` + "\n")
	}

	page.WriteString(`</body>
</html>
`)

	_, err := io.WriteString(w, page.String())
	return err
}
