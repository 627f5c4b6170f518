package mcp

import "github.com/mark3labs/mcp-go/mcp"

// Limits on simulate_particles arguments.
const (
	maxCount     = 1000
	maxSteps     = 10000
	maxDimension = 16384
)

var highlightCodeTool = mcp.NewTool("highlight_code",
	mcp.WithDescription("Syntax-highlight source code as HTML with prefixed CSS classes. Returns the markup fragment."),
	mcp.WithString("code",
		mcp.Required(),
		mcp.Description("Source code to highlight"),
	),
	mcp.WithBoolean("include_css",
		mcp.Description("Append the theme stylesheet after the markup"),
	),
)

var simulateParticlesTool = mcp.NewTool("simulate_particles",
	mcp.WithDescription("Run the drifting particle field for a number of steps and return the final positions as JSON."),
	mcp.WithNumber("count",
		mcp.Description("Number of particles (default 100)"),
	),
	mcp.WithNumber("width",
		mcp.Required(),
		mcp.Description("Canvas width in pixels"),
	),
	mcp.WithNumber("height",
		mcp.Required(),
		mcp.Description("Canvas height in pixels"),
	),
	mcp.WithNumber("steps",
		mcp.Description("Number of steps to advance (default 1)"),
	),
	mcp.WithNumber("seed",
		mcp.Description("Seed for the initial layout (default 0)"),
	),
)
