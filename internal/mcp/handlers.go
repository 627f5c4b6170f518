package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ziadkadry99/cosmic-code/internal/particles"
)

type simulationResult struct {
	Width     float64              `json:"width"`
	Height    float64              `json:"height"`
	Steps     int                  `json:"steps"`
	Particles []particles.Particle `json:"particles"`
}

func (s *Server) handleHighlightCode(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	code, err := request.RequireString("code")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: code"), nil
	}

	out := string(s.hl.Highlight(code))
	if request.GetBool("include_css", false) {
		out += "\n<style>\n" + s.hl.CSS() + "</style>\n"
	}
	return mcp.NewToolResultText(out), nil
}

func (s *Server) handleSimulateParticles(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	width, err := request.RequireFloat("width")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: width"), nil
	}
	height, err := request.RequireFloat("height")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: height"), nil
	}
	if width > maxDimension || height > maxDimension {
		return mcp.NewToolResultError(fmt.Sprintf("canvas larger than %dx%d", maxDimension, maxDimension)), nil
	}

	count := request.GetInt("count", particles.DefaultCount)
	if count > maxCount {
		return mcp.NewToolResultError(fmt.Sprintf("count must be at most %d", maxCount)), nil
	}
	steps := request.GetInt("steps", 1)
	if steps < 0 || steps > maxSteps {
		return mcp.NewToolResultError(fmt.Sprintf("steps must be between 0 and %d", maxSteps)), nil
	}
	seed := request.GetInt("seed", 0)
	if seed < 0 {
		return mcp.NewToolResultError("seed must not be negative"), nil
	}

	bounds := particles.Bounds{Width: width, Height: height}
	sim, err := particles.NewSeeded(count, bounds, uint64(seed), particles.WithWrap(s.wrap))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("creating simulation: %v", err)), nil
	}
	for i := 0; i < steps; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		sim.Advance()
	}

	data, err := json.Marshal(simulationResult{
		Width:     width,
		Height:    height,
		Steps:     steps,
		Particles: sim.Particles(),
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encoding result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
