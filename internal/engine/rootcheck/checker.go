// Package rootcheck decides whether filesystem paths are TFVC workspace mapping roots.
package rootcheck

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"go.trai.ch/tfroot/internal/core/domain"
	"go.trai.ch/tfroot/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

var _ ports.RootChecker = (*Checker)(nil)

// Checker implements ports.RootChecker with a query-driven classification cache.
//
// A cache miss asks the workspace provider once and stores every mapping root of the
// returned workspace, so later queries for sibling roots and for paths below them are
// answered without another lookup. Concurrent misses for the same canonical path share
// a single provider call.
type Checker struct {
	provider      ports.WorkspaceProvider
	canonicalizer ports.Canonicalizer
	logger        ports.Logger
	tracer        trace.Tracer
	cache         *cache
	lookups       singleflight.Group
}

// NewChecker creates a new Checker. A nil tracer disables tracing.
func NewChecker(
	provider ports.WorkspaceProvider,
	canonicalizer ports.Canonicalizer,
	matcher ports.PathMatcher,
	logger ports.Logger,
	tracer trace.Tracer,
) *Checker {
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("")
	}
	return &Checker{
		provider:      provider,
		canonicalizer: canonicalizer,
		logger:        logger,
		tracer:        tracer,
		cache:         newCache(matcher),
	}
}

// IsRoot reports whether path is exactly the local root of a workspace mapping.
//
// Paths that cannot be canonicalized are logged, reported as not being a root and
// not cached. A failed provider lookup is logged and cached like "no workspace".
func (c *Checker) IsRoot(ctx context.Context, path string) bool {
	c.logger.Debug(fmt.Sprintf("root check requested for %s", path))

	canonical, err := c.canonicalizer.Canonicalize(path)
	if err != nil {
		c.logger.Error(err)
		return false
	}

	if v := c.cache.infer(canonical); v != verdictUnknown {
		c.logger.Debug(fmt.Sprintf("%s served from cache", canonical))
		return v == verdictRoot
	}

	// The flight outlives any single caller, so it must not inherit one caller's cancellation.
	flightCtx := context.WithoutCancel(ctx)
	res, _, _ := c.lookups.Do(canonical, func() (any, error) {
		return c.lookup(flightCtx, canonical), nil
	})

	root, _ := res.(bool)
	return root
}

// lookup asks the provider about canonical and records the answer.
func (c *Checker) lookup(ctx context.Context, canonical string) bool {
	// Another flight may have classified this path since the caller's cache miss.
	if v := c.cache.infer(canonical); v != verdictUnknown {
		return v == verdictRoot
	}

	ctx, span := c.tracer.Start(ctx, "workspace.lookup", trace.WithAttributes(
		attribute.String("path", canonical),
	))
	defer span.End()

	ws, err := c.provider.LookupWorkspace(ctx, canonical)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		c.logger.Error(zerr.With(zerr.Wrap(err, domain.ErrWorkspaceLookupFailed.Error()), "path", canonical))
		// A provider that cannot answer is treated as reporting no workspace.
		c.cache.store(domain.NotUnderVCS, canonical)
		return false
	}

	if ws == nil {
		span.SetAttributes(attribute.Bool("workspace", false))
		c.cache.store(domain.NotUnderVCS, canonical)
		return false
	}

	roots := c.canonicalRoots(ws)
	c.cache.store(domain.MappingRoot, roots...)

	isRoot := false
	under := false
	for _, root := range roots {
		if canonical == root {
			isRoot = true
			break
		}
		if c.cache.matcher.IsUnder(canonical, root) {
			under = true
		}
	}
	if !isRoot && !under {
		c.cache.store(domain.OutsideMappings, canonical)
	}

	span.SetAttributes(
		attribute.String("workspace", ws.Name),
		attribute.Int("mappings", len(roots)),
		attribute.Bool("root", isRoot),
	)
	return isRoot
}

// canonicalRoots canonicalizes the local path of every non-cloaked mapping.
// Mappings that cannot be resolved are logged and skipped.
func (c *Checker) canonicalRoots(ws *domain.Workspace) []string {
	locals := ws.LocalRoots()
	roots := make([]string, 0, len(locals))
	for _, local := range locals {
		root, err := c.canonicalizer.Canonicalize(local)
		if err != nil {
			c.logger.Error(zerr.With(err, "workspace", ws.Name))
			continue
		}
		roots = append(roots, root)
	}
	return roots
}

// IsVCSDir reports whether the final element of path is the TFVC metadata directory.
func (c *Checker) IsVCSDir(path string) bool {
	return IsVCSDir(path)
}

// SupportedVCS returns the identity token of the handled version control system.
func (c *Checker) SupportedVCS() string {
	return domain.VCSKey
}

// IsVCSDir reports whether the final element of path equals the TFVC metadata directory
// name, ignoring case.
func IsVCSDir(path string) bool {
	trimmed := strings.TrimRight(path, `/\`)
	if trimmed == "" {
		return false
	}
	if i := strings.LastIndexAny(trimmed, `/\`); i >= 0 {
		trimmed = trimmed[i+1:]
	}
	return strings.EqualFold(trimmed, domain.ControlDirName)
}
