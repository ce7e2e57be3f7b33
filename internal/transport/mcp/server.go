// Package mcp exposes a read-only view of the notes over the Model Context
// Protocol so assistants can browse them.
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/heartmarshall/ainotes/internal/domain"
)

type noteReader interface {
	List(ctx context.Context) ([]domain.Note, error)
	Get(ctx context.Context, id int64) (*domain.Note, error)
}

// NoteResult is the JSON shape of a note in tool results.
type NoteResult struct {
	ID      int64   `json:"id"`
	Content string  `json:"content"`
	Summary *string `json:"summary,omitempty"`
}

// NewServer creates an MCP server with the list_notes and get_note tools.
func NewServer(notes noteReader, version string, logger *slog.Logger) *server.MCPServer {
	log := logger.With("handler", "mcp")

	s := server.NewMCPServer(
		"ainotes",
		version,
		server.WithToolCapabilities(false),
	)

	s.AddTool(
		mcp.NewTool("list_notes",
			mcp.WithDescription("List every note with its content and stored AI summary, oldest first."),
		),
		handleListNotes(notes, log),
	)

	s.AddTool(
		mcp.NewTool("get_note",
			mcp.WithDescription("Get a single note by its numeric ID."),
			mcp.WithNumber("id",
				mcp.Required(),
				mcp.Description("The note ID"),
			),
		),
		handleGetNote(notes, log),
	)

	return s
}

// NewHandler wraps the server in the streamable HTTP transport.
func NewHandler(s *server.MCPServer) http.Handler {
	return server.NewStreamableHTTPServer(s)
}

func handleListNotes(notes noteReader, log *slog.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		list, err := notes.List(ctx)
		if err != nil {
			log.ErrorContext(ctx, "list notes", slog.String("error", err.Error()))
			return mcp.NewToolResultError("failed to list notes"), nil
		}

		results := make([]NoteResult, len(list))
		for i := range list {
			results[i] = toResult(&list[i])
		}
		return jsonResult(results)
	}
}

func handleGetNote(notes noteReader, log *slog.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := req.RequireInt("id")
		if err != nil || id <= 0 {
			return mcp.NewToolResultError("id must be a positive integer"), nil
		}

		n, err := notes.Get(ctx, int64(id))
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return mcp.NewToolResultError(fmt.Sprintf("note %d not found", id)), nil
			}
			log.ErrorContext(ctx, "get note", slog.Int("note_id", id), slog.String("error", err.Error()))
			return mcp.NewToolResultError("failed to get note"), nil
		}

		return jsonResult(toResult(n))
	}
}

func toResult(n *domain.Note) NoteResult {
	return NoteResult{ID: n.ID, Content: n.Content, Summary: n.Summary}
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("mcp.jsonResult: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}
