package server

import "github.com/ironsheep/xstitch/internal/imaging"

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func pathProperty(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": description,
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Source Photos
		{
			Name:        "image_load",
			Description: "Load a photo and return its dimensions, format, number of distinct colors and the stitch grid size it yields at a given width.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty("Absolute path to the image file"),
					"width": map[string]interface{}{
						"type":        "integer",
						"description": "Stitches per row used to compute the grid height. Default 120",
						"default":     120,
					},
				},
				"required": []string{"path"},
			},
		},

		{
			Name:        "image_sample_floss",
			Description: "Average the photo pixels that become one stitch at a given width and return the closest floss.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty("Absolute path to the image file"),
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate in photo pixels (0-based, from left)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate in photo pixels (0-based, from top)",
					},
					"width": map[string]interface{}{
						"type":        "integer",
						"description": "Stitches per row the photo will be scaled to. Default 120",
						"default":     120,
					},
				},
				"required": []string{"path", "x", "y"},
			},
		},

		{
			Name:        "image_unload",
			Description: "Forget a cached photo so the next call reads the file again, e.g. after it was edited. Without a path, every cached photo is dropped.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty("Absolute path to the image file. Omit to drop all photos"),
				},
			},
		},

		// Patterns
		{
			Name:        "pattern_create",
			Description: "Convert a photo into a printable cross-stitch scheme (symbol grid plus floss legend) and save it as an image. Returns the floss list with stitch counts.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":   pathProperty("Absolute path to the source photo"),
					"output": pathProperty("Where to write the scheme; the extension selects the format. Default scheme.png next to the photo"),
					"region": map[string]interface{}{
						"type":        "string",
						"enum":        imaging.Regions,
						"description": "Use only a named part of the photo",
					},
					"crop": map[string]interface{}{
						"type":        "object",
						"description": "Use only this rectangle of the photo (x2, y2 exclusive)",
						"properties": map[string]interface{}{
							"x1": map[string]interface{}{"type": "integer"},
							"y1": map[string]interface{}{"type": "integer"},
							"x2": map[string]interface{}{"type": "integer"},
							"y2": map[string]interface{}{"type": "integer"},
						},
						"required": []string{"x1", "y1", "x2", "y2"},
					},
					"width": map[string]interface{}{
						"type":        "integer",
						"description": "Number of stitches per row. Default 120",
						"default":     120,
					},
					"max_colors": map[string]interface{}{
						"type":        "integer",
						"description": "Maximum number of flosses. Default 15",
						"default":     15,
					},
					"dpi": map[string]interface{}{
						"type":        "integer",
						"description": "Print resolution. Default 300",
						"default":     300,
					},
					"enhance": map[string]interface{}{
						"type":        "boolean",
						"description": "Equalize the photo's brightness before conversion. Default true",
						"default":     true,
					},
					"workers": map[string]interface{}{
						"type":        "integer",
						"description": "Goroutines used for floss matching. Default number of CPUs",
					},
				},
				"required": []string{"path"},
			},
		},

		// Flosses
		{
			Name:        "floss_match",
			Description: "Find the closest catalog floss for one or more hex colors (e.g., \"#C80000\").",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color": map[string]interface{}{
						"type":        "string",
						"description": "Hex color to match",
					},
					"colors": map[string]interface{}{
						"type":        "array",
						"items":       map[string]interface{}{"type": "string"},
						"description": "Several hex colors to match",
					},
				},
			},
		},
		{
			Name:        "floss_lookup",
			Description: "Get the name, color and pattern symbol of a floss by its catalog number.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"id": map[string]interface{}{
						"type":        "string",
						"description": "Floss number, e.g. \"310\" or \"B5200\"",
					},
				},
				"required": []string{"id"},
			},
		},
		{
			Name:        "floss_catalog",
			Description: "List catalog flosses in catalog order, optionally filtered by a case-insensitive substring of the number or name.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"query": map[string]interface{}{
						"type":        "string",
						"description": "Substring to look for in floss numbers and names",
					},
					"limit": map[string]interface{}{
						"type":        "integer",
						"description": "Maximum number of flosses to return. Default all",
					},
				},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return success(req.ID, map[string]interface{}{
		"tools": GetToolDefinitions(),
	})
}
