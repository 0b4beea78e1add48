package mcp

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/felixgeelhaar/mcp-go"

	"github.com/felixgeelhaar/speclint/internal/infrastructure/wiring"
	"github.com/felixgeelhaar/speclint/pkg/application"
)

// Server exposes the lint services as MCP tools.
type Server struct {
	mcpServer *mcp.Server
	lintSvc   *application.LintService
	batchSvc  *application.BatchService
	root      string
}

var (
	Version     = "dev"
	BuildCommit = "unknown"
	BuildDate   = "unknown"
)

// mcpErr returns a user-friendly error for MCP clients.
func mcpErr(friendly string) error {
	return errors.New(friendly)
}

// NewServer exposes the lint services as MCP tools.
func NewServer(services *wiring.AppServices) (*Server, error) {
	if services == nil || services.Lint == nil || services.Batch == nil {
		return nil, fmt.Errorf("services initialization returned nil")
	}

	info := mcp.ServerInfo{
		Name:    "speclint",
		Version: Version,
	}

	s := &Server{
		mcpServer: mcp.NewServer(info,
			mcp.WithTitle("speclint MCP Server"),
			mcp.WithDescription("speclint scores specification documents for completeness, traceability and coverage."),
			mcp.WithBuildInfo(BuildCommit, BuildDate),
			mcp.WithInstructions("Use speclint_lint_file for one document and speclint_lint_dir for every *.spec.yaml in a directory. Each report lists messages and remediation hints."),
		),
		lintSvc:  services.Lint,
		batchSvc: services.Batch,
		root:     services.Config.Root,
	}

	s.registerTools()
	return s, nil
}

type LintFileArgs struct {
	Path string `json:"path" jsonschema:"description=Path to a specification document"`
}

type LintDirArgs struct {
	Dir string `json:"dir" jsonschema:"description=Directory containing *.spec.yaml documents"`
}

func (s *Server) registerTools() {
	s.mcpServer.Tool("speclint_lint_file").
		Description("Score a single specification document and return its messages and hints").
		Handler(s.handleLintFile)

	s.mcpServer.Tool("speclint_lint_dir").
		Description("Score every specification document in a directory and return the mean and pass verdict").
		Handler(s.handleLintDir)
}

func (s *Server) handleLintFile(ctx context.Context, args LintFileArgs) (any, error) {
	if args.Path == "" {
		return nil, mcpErr("A document path is required.")
	}
	path := s.resolve(args.Path)
	if info, err := os.Stat(path); err != nil || info.IsDir() {
		return nil, mcpErr(fmt.Sprintf("Document %s not found.", args.Path))
	}
	return s.lintSvc.LintFile(ctx, path), nil
}

func (s *Server) handleLintDir(ctx context.Context, args LintDirArgs) (any, error) {
	dir := args.Dir
	if dir == "" {
		dir = "."
	}
	summary, err := s.batchSvc.Run(ctx, s.resolve(dir), nil)
	if err != nil {
		if errors.Is(err, application.ErrDirectoryNotFound) {
			return nil, mcpErr(fmt.Sprintf("Directory %s not found.", dir))
		}
		return nil, mcpErr("Failed to lint directory.")
	}
	return summary, nil
}

// resolve makes relative paths relative to the repository root.
func (s *Server) resolve(p string) string {
	if filepath.IsAbs(p) || s.root == "" {
		return p
	}
	return filepath.Join(s.root, p)
}

func (s *Server) ServeStdio(ctx context.Context) error {
	return mcp.ServeStdio(ctx, s.mcpServer)
}

func (s *Server) ServeHTTP(ctx context.Context, addr string) error {
	return mcp.ServeHTTP(ctx, s.mcpServer, addr, mcp.WithDefaultCORS())
}

func (s *Server) ServeWebSocket(ctx context.Context, addr string) error {
	return mcp.ServeWebSocket(ctx, s.mcpServer, addr)
}
