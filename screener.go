// Copyright 2025 TalentSift
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package screener ranks candidate documents against a job description by
// semantic similarity and partitions them into a shortlist.
//
// This file is the top-level facade: it wires an embedding provider, the
// vector cache, and the ranking engine into one handle with a single
// lifecycle.
package screener

import (
	"context"
	"log/slog"

	"github.com/talentsift/screener/ai"
	"github.com/talentsift/screener/ai/openai"
	"github.com/talentsift/screener/core"
	"github.com/talentsift/screener/ranking"
	"github.com/talentsift/screener/storage"
	"github.com/talentsift/screener/storage/badger"
)

// Screener owns an embedding provider, an optional persistent vector cache,
// and the ranking engine built on top of them. Construct once per process;
// the embedding model behind the provider is the expensive part.
type Screener struct {
	provider ai.EmbedderProvider
	cache    storage.VectorCache
	engine   *ranking.Engine
	logger   *slog.Logger
}

// ScreenerOption configures a Screener.
type ScreenerOption func(*screenerOptions)

type screenerOptions struct {
	aiConfig *ai.Config
	cacheDir string
	poolSize int
}

// WithAIConfig sets the embedding service configuration.
// Default is ai.DefaultConfig().
func WithAIConfig(cfg *ai.Config) ScreenerOption {
	return func(o *screenerOptions) {
		o.aiConfig = cfg
	}
}

// WithCacheDir enables the persistent vector cache at the given directory.
// Without it, caching is in-memory only and lives for the process.
func WithCacheDir(dir string) ScreenerOption {
	return func(o *screenerOptions) {
		o.cacheDir = dir
	}
}

// WithPoolSize sets the scoring worker pool size.
func WithPoolSize(size int) ScreenerOption {
	return func(o *screenerOptions) {
		o.poolSize = size
	}
}

// New creates a Screener wired to an OpenAI-compatible embedding service.
func New(opts ...ScreenerOption) (*Screener, error) {
	options := &screenerOptions{
		aiConfig: ai.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(options)
	}

	provider, err := openai.NewProvider(options.aiConfig)
	if err != nil {
		return nil, err
	}

	var cache storage.VectorCache
	cachedOpts := []ai.CachedOption{}
	if options.cacheDir != "" {
		c, err := badger.OpenCache(options.cacheDir, false)
		if err != nil {
			provider.Close()
			return nil, err
		}
		cache = c
		cachedOpts = append(cachedOpts, ai.WithPersistentCache(cache))
	}
	embedder := ai.NewCachedEmbedder(provider.Embedder(), provider.ModelID(), cachedOpts...)

	engineOpts := []ranking.Option{}
	if options.poolSize > 0 {
		engineOpts = append(engineOpts, ranking.WithPoolSize(options.poolSize))
	}
	engine, err := ranking.NewEngine(embedder, engineOpts...)
	if err != nil {
		if cache != nil {
			cache.Close()
		}
		provider.Close()
		return nil, err
	}

	return &Screener{
		provider: provider,
		cache:    cache,
		engine:   engine,
		logger:   slog.Default(),
	}, nil
}

// Rank scores documents against queryText with the given configuration.
func (s *Screener) Rank(ctx context.Context, queryText string, docs []core.Document, cfg core.RankConfig) (*core.ResultSet, error) {
	return s.engine.Rank(ctx, queryText, docs, cfg)
}

// RankWithMonitor ranks with observation hooks.
func (s *Screener) RankWithMonitor(ctx context.Context, queryText string, docs []core.Document, cfg core.RankConfig, monitor ranking.Monitor) (*core.ResultSet, error) {
	return s.engine.RankWithMonitor(ctx, queryText, docs, cfg, monitor)
}

// Close releases the engine, cache, and provider.
func (s *Screener) Close() error {
	s.engine.Release()

	var firstErr error
	if s.cache != nil {
		if err := s.cache.Close(); err != nil {
			firstErr = err
		}
	}
	if err := s.provider.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}
