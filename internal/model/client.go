// Package model provides the gRPC client to the external model service that
// interprets free-form utterances and synthesizes preparation plans.
package model

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/connectivity"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/keepalive"

	"github.com/prepcoach/prepcoach/internal/conversation"
	"github.com/prepcoach/prepcoach/internal/domain"
	"github.com/prepcoach/prepcoach/internal/planner"
	"github.com/prepcoach/prepcoach/internal/proto/coach"
	"github.com/prepcoach/prepcoach/internal/search"
)

var (
	errConnectionShutdown       = errors.New("connection shutdown")
	errConnectionStateUnchanged = errors.New("connection state did not change")
	errEmptyPlan                = errors.New("model returned an empty plan")
)

// Client is a gRPC client to the model service. It satisfies both the
// conversation interpreter and the planner generator interfaces.
type Client struct {
	conn   *grpc.ClientConn
	client coach.CoachServiceClient
	addr   string
	logger *slog.Logger
}

// ClientConfig holds configuration for the gRPC client.
type ClientConfig struct {
	Address          string
	ConnectTimeout   time.Duration
	RequestTimeout   time.Duration
	KeepaliveTime    time.Duration
	KeepaliveTimeout time.Duration
}

// DefaultClientConfig returns default configuration.
func DefaultClientConfig() ClientConfig {
	return ClientConfig{
		Address:          "localhost:50051",
		ConnectTimeout:   5 * time.Second,
		RequestTimeout:   30 * time.Second,
		KeepaliveTime:    2 * time.Minute,
		KeepaliveTimeout: 10 * time.Second,
	}
}

// NewClient creates a gRPC client to the model service and verifies the
// connection is usable before returning.
func NewClient(addr string, logger *slog.Logger) (*Client, error) {
	if logger == nil {
		logger = slog.Default()
	}

	cfg := DefaultClientConfig()
	if addr != "" {
		cfg.Address = addr
	}

	kacp := keepalive.ClientParameters{
		Time:                cfg.KeepaliveTime,
		Timeout:             cfg.KeepaliveTimeout,
		PermitWithoutStream: false,
	}

	// Build client connection (no network I/O yet).
	conn, err := grpc.NewClient(cfg.Address,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithKeepaliveParams(kacp),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to model service at %s: %w", cfg.Address, err)
	}

	// Force a connection attempt during startup so we fail fast on bad endpoints.
	connectCtx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()
	if err := waitForReady(connectCtx, conn); err != nil {
		if closeErr := conn.Close(); closeErr != nil {
			logger.Warn("failed to close gRPC connection after readiness failure", "error", closeErr)
		}
		return nil, fmt.Errorf("model service at %s not ready: %w", cfg.Address, err)
	}

	logger.Info("connected to model service", "address", cfg.Address)

	return &Client{
		conn:   conn,
		client: coach.NewCoachServiceClient(conn),
		addr:   cfg.Address,
		logger: logger,
	}, nil
}

func waitForReady(ctx context.Context, conn *grpc.ClientConn) error {
	for {
		state := conn.GetState()
		switch state {
		case connectivity.Ready:
			return nil
		case connectivity.Idle:
			conn.Connect()
		case connectivity.Shutdown:
			return errConnectionShutdown
		}

		if !conn.WaitForStateChange(ctx, state) {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("%w from %s", errConnectionStateUnchanged, state)
		}
	}
}

// Close closes the gRPC connection.
func (c *Client) Close() {
	if c.conn != nil {
		if err := c.conn.Close(); err != nil {
			c.logger.Warn("failed to close gRPC connection", "error", err)
		}
	}
}

// Health checks whether the model service is reachable.
func (c *Client) Health(ctx context.Context) error {
	if _, err := c.client.Health(ctx, &coach.HealthRequest{}); err != nil {
		return fmt.Errorf("model health check failed: %w", err)
	}
	return nil
}

// Interpret asks the model to resolve one turn of user text into selection
// values. The extractor sanitizes the result before applying it, so values
// outside the closed sets are dropped there, not here.
func (c *Client) Interpret(ctx context.Context, phase domain.Phase, text string) (conversation.Update, error) {
	resp, err := c.client.Interpret(ctx, &coach.InterpretRequest{
		Phase: string(phase),
		Text:  text,
	})
	if err != nil {
		return conversation.Update{}, fmt.Errorf("interpret request failed: %w", err)
	}

	up := conversation.Update{
		SkillLevel:    domain.SkillLevel(resp.GetSkillLevel()),
		LearningStyle: domain.LearningStyle(resp.GetLearningStyle()),
		Confirmed:     resp.GetConfirmed(),
		Intent:        resp.GetIntent(),
	}
	for _, d := range resp.GetDomains() {
		up.Domains = append(up.Domains, domain.Domain(d))
	}
	return up, nil
}

// GeneratePlan asks the model to synthesize the plan text from the finalized
// selections and the research links.
func (c *Client) GeneratePlan(ctx context.Context, sel domain.Selections, research planner.Research) (string, error) {
	req := &coach.GeneratePlanRequest{
		SkillLevel:    string(sel.SkillLevel),
		LearningStyle: string(sel.LearningStyle),
		TargetRole:    sel.TargetRole,
		Companies:     sel.Companies,
	}
	for _, d := range sel.Domains {
		req.Domains = append(req.Domains, string(d))
		req.Research = append(req.Research, &coach.DomainResources{
			Domain: string(d),
			Links:  toProtoLinks(research[d]),
		})
	}

	resp, err := c.client.GeneratePlan(ctx, req)
	if err != nil {
		return "", fmt.Errorf("generate plan request failed: %w", err)
	}
	if resp.GetPlan() == "" {
		return "", errEmptyPlan
	}
	return resp.GetPlan(), nil
}

func toProtoLinks(links []search.Link) []*coach.ResourceLink {
	out := make([]*coach.ResourceLink, 0, len(links))
	for _, l := range links {
		out = append(out, &coach.ResourceLink{
			Title:   l.Title,
			Url:     l.URL,
			Snippet: l.Snippet,
		})
	}
	return out
}
