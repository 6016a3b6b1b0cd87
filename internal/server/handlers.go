package server

import (
	"encoding/json"
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/ironsheep/xstitch/internal/floss"
	"github.com/ironsheep/xstitch/internal/imaging"
	"github.com/ironsheep/xstitch/internal/palette"
	"github.com/ironsheep/xstitch/internal/pattern"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "pattern_create").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return failure(req.ID, codeInvalidParams, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		log.Printf("Tool %s failed: %v", params.Name, err)
		return failure(req.ID, codeToolFailure, "Tool execution failed", err.Error())
	}

	return success(req.ID, map[string]interface{}{
		"content": []map[string]interface{}{
			{
				"type": "text",
				"text": mustMarshalJSON(result),
			},
		},
	})
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	case "image_load":
		return s.handleImageLoad(args)
	case "image_unload":
		return s.handleImageUnload(args)
	case "image_sample_floss":
		return s.handleImageSampleFloss(args)
	case "pattern_create":
		return s.handlePatternCreate(args)
	case "floss_match":
		return s.handleFlossMatch(args)
	case "floss_lookup":
		return s.handleFlossLookup(args)
	case "floss_catalog":
		return s.handleFlossCatalog(args)
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// decodeArgs unmarshals tool arguments, treating a missing object as empty.
func decodeArgs(args json.RawMessage, v interface{}) error {
	if len(args) == 0 || string(args) == "null" {
		return nil
	}
	if err := json.Unmarshal(args, v); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}

// === Image Handlers ===

type imageLoadArgs struct {
	Path  string `json:"path"`
	Width int    `json:"width"`
}

type imageLoadResult struct {
	*imaging.ImageInfo
	StitchWidth  int `json:"stitch_width"`
	StitchHeight int `json:"stitch_height"`
	Colors       int `json:"colors"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	a := imageLoadArgs{Width: pattern.DefaultOptions().Width}
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, fmt.Errorf("path is required")
	}
	if a.Width <= 0 {
		return nil, fmt.Errorf("invalid width %d: must be positive", a.Width)
	}

	info, err := imaging.LoadImageInfo(s.cache, a.Path)
	if err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return &imageLoadResult{
		ImageInfo:    info,
		StitchWidth:  a.Width,
		StitchHeight: info.StitchRows(a.Width),
		Colors:       palette.CountColors(img),
	}, nil
}

type imageSampleFlossArgs struct {
	Path  string `json:"path"`
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Width int    `json:"width"`
}

type imageSampleFlossResult struct {
	Region imaging.Region `json:"region"`
	Color  string         `json:"color"`
	Floss  flossInfo      `json:"floss"`
	DeltaE float64        `json:"delta_e"`
}

// handleImageSampleFloss averages the source pixels that form the stitch at
// (x, y) and matches the result against the catalog.
func (s *Server) handleImageSampleFloss(args json.RawMessage) (interface{}, error) {
	a := imageSampleFlossArgs{Width: pattern.DefaultOptions().Width}
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	region, err := imaging.StitchRegion(img, a.X, a.Y, a.Width)
	if err != nil {
		return nil, err
	}
	avg, err := imaging.AverageColor(img, region)
	if err != nil {
		return nil, err
	}

	c := floss.RGBFromColor(avg)
	e := s.matcher.Closest(c, nil)
	return &imageSampleFlossResult{
		Region: region,
		Color:  c.Hex(),
		Floss:  newFlossInfo(e),
		DeltaE: c.DeltaE(e.Color),
	}, nil
}

type imageUnloadArgs struct {
	Path string `json:"path"`
}

type imageUnloadResult struct {
	Evicted int `json:"evicted"`
	Cached  int `json:"cached"`
}

// handleImageUnload drops one photo, or every photo when no path is given, so
// that the next tool call decodes the file again.
func (s *Server) handleImageUnload(args json.RawMessage) (interface{}, error) {
	var a imageUnloadArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}

	before := s.cache.Len()
	if a.Path == "" {
		s.cache.Clear()
	} else {
		s.cache.Evict(a.Path)
	}
	res := &imageUnloadResult{Evicted: before - s.cache.Len(), Cached: s.cache.Len()}
	log.Printf("Unloaded %d photos, %d still cached", res.Evicted, res.Cached)
	return res, nil
}

// === Pattern Handlers ===

type patternCreateArgs struct {
	Path      string          `json:"path"`
	Output    string          `json:"output"`
	Region    string          `json:"region"`
	Crop      *imaging.Region `json:"crop"`
	Width     int             `json:"width"`
	MaxColors int             `json:"max_colors"`
	DPI       int             `json:"dpi"`
	Enhance   *bool           `json:"enhance"`
	Workers   int             `json:"workers"`
}

type patternCreateResult struct {
	Output       string         `json:"output"`
	SchemeWidth  int            `json:"scheme_width"`
	SchemeHeight int            `json:"scheme_height"`
	Report       pattern.Report `json:"report"`
}

func (s *Server) handlePatternCreate(args json.RawMessage) (interface{}, error) {
	var a patternCreateArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, fmt.Errorf("path is required")
	}
	if a.Output == "" {
		a.Output = filepath.Join(filepath.Dir(a.Path), "scheme.png")
	}

	opts := pattern.DefaultOptions()
	if a.Width != 0 {
		opts.Width = a.Width
	}
	if a.MaxColors != 0 {
		opts.MaxColors = a.MaxColors
	}
	if a.DPI != 0 {
		opts.DPI = a.DPI
	}
	if a.Enhance != nil {
		opts.Enhance = *a.Enhance
	}
	if a.Workers != 0 {
		opts.Workers = a.Workers
	}

	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	if img, err = imaging.SelectRegion(img, a.Region, a.Crop); err != nil {
		return nil, err
	}
	res, err := pattern.Build(img, s.matcher.Catalog(), opts)
	if err != nil {
		return nil, err
	}
	if err := imaging.Save(a.Output, res.Scheme); err != nil {
		return nil, err
	}
	log.Printf("Pattern %dx%d with %d flosses written to %s", res.Columns(), res.Rows(), len(res.Entries), a.Output)

	return &patternCreateResult{
		Output:       a.Output,
		SchemeWidth:  res.Scheme.Bounds().Dx(),
		SchemeHeight: res.Scheme.Bounds().Dy(),
		Report:       res.Report(),
	}, nil
}

// === Floss Handlers ===

// flossInfo is the JSON form of a catalog entry with its pattern markings.
type flossInfo struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Hex       string `json:"hex"`
	RGB       [3]int `json:"rgb"`
	Symbol    string `json:"symbol"`
	TextColor string `json:"text_color"`
}

func newFlossInfo(e floss.Entry) flossInfo {
	return flossInfo{
		ID:        e.ID,
		Name:      e.Name,
		Hex:       e.Color.Hex(),
		RGB:       [3]int{int(e.Color.R), int(e.Color.G), int(e.Color.B)},
		Symbol:    pattern.Symbol(e.Color),
		TextColor: pattern.TextColor(e.Color).Hex(),
	}
}

type flossMatchArgs struct {
	Color  string   `json:"color"`
	Colors []string `json:"colors"`
}

type flossMatch struct {
	Query    string    `json:"query"`
	Floss    flossInfo `json:"floss"`
	Distance int       `json:"distance"`
	DeltaE   float64   `json:"delta_e"`
}

func (s *Server) handleFlossMatch(args json.RawMessage) (interface{}, error) {
	var a flossMatchArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	queries := a.Colors
	if a.Color != "" {
		queries = append([]string{a.Color}, queries...)
	}
	if len(queries) == 0 {
		return nil, fmt.Errorf("color or colors is required")
	}

	cache := make(floss.MatchCache)
	matches := make([]flossMatch, 0, len(queries))
	for _, q := range queries {
		c, err := floss.ParseHex(q)
		if err != nil {
			return nil, err
		}
		e := s.matcher.Closest(c, cache)
		matches = append(matches, flossMatch{
			Query:    c.Hex(),
			Floss:    newFlossInfo(e),
			Distance: floss.Distance(c, e.Color),
			DeltaE:   c.DeltaE(e.Color),
		})
	}
	return map[string]interface{}{"matches": matches}, nil
}

type flossLookupArgs struct {
	ID string `json:"id"`
}

func (s *Server) handleFlossLookup(args json.RawMessage) (interface{}, error) {
	var a flossLookupArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	e, err := s.matcher.Catalog().Get(a.ID)
	if err != nil {
		return nil, err
	}
	return newFlossInfo(e), nil
}

type flossCatalogArgs struct {
	Query string `json:"query"`
	Limit int    `json:"limit"`
}

func (s *Server) handleFlossCatalog(args json.RawMessage) (interface{}, error) {
	var a flossCatalogArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Limit < 0 {
		return nil, fmt.Errorf("invalid limit %d", a.Limit)
	}

	catalog := s.matcher.Catalog()
	query := strings.ToLower(a.Query)
	flosses := make([]flossInfo, 0)
	for i := 0; i < catalog.Len(); i++ {
		e := catalog.At(i)
		if query != "" && !strings.Contains(strings.ToLower(e.Name), query) &&
			!strings.Contains(strings.ToLower(e.ID), query) {
			continue
		}
		flosses = append(flosses, newFlossInfo(e))
		if a.Limit > 0 && len(flosses) == a.Limit {
			break
		}
	}
	return map[string]interface{}{
		"total":   catalog.Len(),
		"count":   len(flosses),
		"flosses": flosses,
	}, nil
}
