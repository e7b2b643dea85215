package mcp

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"starfolio/internal/application/commands"
	"starfolio/internal/domain"
	"starfolio/internal/ports"
)

// RegisterReadTools adds the portfolio tools to the MCP server. The
// portfolio is static, so every tool is read-only.
func RegisterReadTools(s *server.MCPServer, content ports.ContentSource, exporter ports.SceneExporter) {
	s.AddTool(listViewsTool(), listViewsHandler(content))
	s.AddTool(showPanelTool(), showPanelHandler(content))
	s.AddTool(starMapTool(), starMapHandler(content, exporter))
	s.AddTool(linksTool(), linksHandler(content))
	s.AddTool(searchTool(), searchHandler(content))
}

// --- list_views ---

func listViewsTool() mcp.Tool {
	return mcp.NewTool("list_views",
		mcp.WithDescription("List the portfolio panels in navigation order with the star that leads to each."),
	)
}

func listViewsHandler(content ports.ContentSource) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		entries, err := commands.NewListViewsCommand(content, "").Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatEntries(entries, formatView)
	}
}

// --- show_panel ---

func showPanelTool() mcp.Tool {
	return mcp.NewTool("show_panel",
		mcp.WithDescription("Render a panel as markdown."),
		mcp.WithString("view",
			mcp.Description("Panel to render: home, projects, technical or writings. Defaults to home."),
		),
		mcp.WithString("tab",
			mcp.Description("Writings shelf to show (books or games). Only valid with view=writings."),
		),
	)
}

func showPanelHandler(content ports.ContentSource) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewShowPanelCommand(content,
			req.GetString("view", ""),
			req.GetString("tab", ""),
		)
		panel, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(panel.Markdown), nil
	}
}

// --- star_map ---

func starMapTool() mcp.Tool {
	return mcp.NewTool("star_map",
		mcp.WithDescription("Render a constellation as SVG for a given active panel."),
		mcp.WithString("active",
			mcp.Description("Active panel whose star glows. Defaults to home."),
		),
		mcp.WithString("hovered",
			mcp.Description("Panel whose star is under the pointer, showing its labels."),
		),
		mcp.WithString("sky",
			mcp.Description("Constellation to draw: nav (default) or background."),
		),
	)
}

func starMapHandler(content ports.ContentSource, exporter ports.SceneExporter) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var buf bytes.Buffer
		cmd := commands.NewExportSkyCommand(content, exporter, &buf,
			req.GetString("sky", ""),
			"svg",
			req.GetString("active", ""),
		)
		cmd.Hovered = req.GetString("hovered", "")
		if _, err := cmd.Execute(ctx); err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(buf.String()), nil
	}
}

// --- links ---

func linksTool() mcp.Tool {
	return mcp.NewTool("links",
		mcp.WithDescription("List the résumé and profile links."),
	)
}

func linksHandler(content ports.ContentSource) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		links, err := commands.NewListLinksCommand(content).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatEntries(links, formatLink)
	}
}

// --- search ---

func searchTool() mcp.Tool {
	return mcp.NewTool("search",
		mcp.WithDescription("Fuzzy search skills, projects and writing topics. Returns the panel each match is on."),
		mcp.WithString("query",
			mcp.Description("Search query, at least two characters"),
			mcp.Required(),
		),
	)
}

func searchHandler(content ports.ContentSource) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query := req.GetString("query", "")
		if query == "" {
			return toolError(fmt.Errorf("query is required"))
		}

		results, err := commands.NewSearchCommand(content, query).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if len(results) == 0 {
			return mcp.NewToolResultText("No results found."), nil
		}

		var sb strings.Builder
		for _, r := range results {
			where := r.View.String()
			if r.Tab != "" {
				where += "/" + r.Tab
			}
			fmt.Fprintf(&sb, "%-20s  %s  %s\n", where, r.Title, r.Text)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatEntries[T any](entries []T, format func(T) string) (*mcp.CallToolResult, error) {
	if len(entries) == 0 {
		return mcp.NewToolResultText("No results."), nil
	}
	var sb strings.Builder
	for _, e := range entries {
		sb.WriteString(format(e))
		sb.WriteByte('\n')
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func formatView(e commands.ViewEntry) string {
	return fmt.Sprintf("%-10s  %-20s  %s (%s)", e.View, e.Title, e.Star, e.Group)
}

func formatLink(l domain.Link) string {
	return fmt.Sprintf("%-8s  %s", l.Kind, l.URL)
}
