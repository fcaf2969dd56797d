package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	_ "embed"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func newMCPServer(hosts HostRegistry, defaultEnc VersionEncoding) *server.MCPServer {
	s := server.NewMCPServer(
		"UDShaper state",
		"1.0.0",
		server.WithToolCapabilities(false),
	)

	layoutTool := mcp.NewTool("udshaper_describe-layout",
		mcp.WithDescription("Returns the byte layout of every UDShaper state version the decoder supports."),
	)
	s.AddTool(layoutTool, layoutToolHandler)

	hostsTool := mcp.NewTool("udshaper_list-hosts",
		mcp.WithDescription("Lists the host profiles (marker and header offset) used to locate the plugin state."),
	)
	s.AddTool(hostsTool, hostsToolHandler(hosts))

	decodeTool := mcp.NewTool("udshaper_decode-state",
		mcp.WithDescription("Decodes the UDShaper plugin state embedded in a host preset or project file and returns it as JSON."),
		mcp.WithString("path", mcp.Required(), mcp.Description("Path of the preset or project file.")),
		mcp.WithString("encoding", mcp.Description("Version tag encoding, tuple or scalar. Defaults to "+string(defaultEnc)+".")),
		mcp.WithString("host", mcp.Description("Host profile that wrote the file. Defaults to "+DefaultHost+".")),
	)
	s.AddTool(decodeTool, decodeToolHandler(hosts, defaultEnc))

	return s
}

func runMCP(hosts HostRegistry, defaultEnc VersionEncoding) {
	s := newMCPServer(hosts, defaultEnc)

	log.Println("Starting UDShaper state MCP server...")

	if err := server.ServeStdio(s); err != nil {
		log.Printf("Server error: %v\n", err)
	}
}

func decodeToolHandler(hosts HostRegistry, defaultEnc VersionEncoding) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		path, err := request.RequireString("path")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		enc, err := parseEncoding(request.GetString("encoding", string(defaultEnc)))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		host, err := hosts.lookup(request.GetString("host", DefaultHost))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		log.Println("[mcp] Decoding", path, "with host", host.Name, "encoding", enc)

		_, s, err := decodeFile(path, host, enc)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		asJson, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal state to JSON: %w", err)
		}
		return mcp.NewToolResultText(string(asJson)), nil
	}
}

func hostsToolHandler(hosts HostRegistry) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		log.Println("[mcp] Handling host list request.")

		var b strings.Builder
		for _, name := range hosts.names() {
			h := hosts[name]
			fmt.Fprintf(&b, "%s: marker %q, header offset %d\n", h.Name, h.Marker, h.HeaderOffset)
		}
		return mcp.NewToolResultText(b.String()), nil
	}
}

//go:embed state_layout.txt
var stateLayoutDoc string

func layoutToolHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	log.Println("[mcp] Handling layout description request.")

	return mcp.NewToolResultText(stateLayoutDoc), nil
}
