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


package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	screener "github.com/talentsift/screener"
	"github.com/talentsift/screener/ai"
	"github.com/talentsift/screener/core"
	"github.com/talentsift/screener/export"
	"github.com/talentsift/screener/ingest"
	"github.com/talentsift/screener/textproc"
)

func main() {
	app := &cli.App{
		Name:  "screener",
		Usage: "Rank resumes against a job description by semantic similarity",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "warn",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "rank",
				Usage:     "Score and shortlist resumes against a job description",
				ArgsUsage: "[resume files...]",
				Action:    rankCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "query",
						Aliases: []string{"q"},
						Usage:   "Job description text",
					},
					&cli.StringFlag{
						Name:  "query-file",
						Usage: "File containing the job description",
					},
					&cli.StringFlag{
						Name:    "dir",
						Aliases: []string{"d"},
						Usage:   "Directory of resume files (.pdf, .txt, .md)",
					},
					&cli.IntFlag{
						Name:    "threshold",
						Aliases: []string{"t"},
						Usage:   "Minimum match percent to shortlist",
						Value:   75,
					},
					&cli.StringSliceFlag{
						Name:    "require",
						Aliases: []string{"r"},
						Usage:   "Required keyword (repeatable); shortlist needs at least one match",
					},
					&cli.IntFlag{
						Name:  "top-sentences",
						Usage: "Supporting sentences reported per resume",
						Value: 3,
					},
					&cli.IntFlag{
						Name:  "keywords",
						Usage: "Keyword set size per document",
						Value: 15,
					},
					&cli.BoolFlag{
						Name:  "lexical",
						Usage: "Blend a lexical overlap signal into the score",
					},
					&cli.IntFlag{
						Name:  "pool",
						Usage: "Scoring worker pool size (0 = auto)",
					},
					&cli.StringFlag{
						Name:  "csv",
						Usage: "Write shortlisted candidates to this CSV file",
					},
					&cli.StringFlag{
						Name:  "cache",
						Usage: "Directory for the persistent embedding cache",
					},
					&cli.StringFlag{
						Name:  "embedding-host",
						Usage: "Embedding service host URL",
						Value: "http://localhost:11434/v1",
					},
					&cli.StringFlag{
						Name:  "embedding-model",
						Usage: "Embedding model name",
						Value: "all-minilm",
					},
					&cli.BoolFlag{
						Name:  "verbose-sentences",
						Usage: "Print the top supporting sentences per resume",
					},
				},
			},
			{
				Name:      "keywords",
				Usage:     "Print the extracted keyword set of a file",
				ArgsUsage: "<file>",
				Action:    keywordsCommand,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "top",
						Usage: "Number of keywords to extract",
						Value: 15,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func rankCommand(c *cli.Context) error {
	queryText, err := resolveQuery(c)
	if err != nil {
		return err
	}

	loader := ingest.NewLoader()
	var docs []core.Document
	if dir := c.String("dir"); dir != "" {
		docs, err = loader.LoadDir(dir)
		if err != nil {
			return err
		}
	}
	if c.Args().Len() > 0 {
		docs = append(docs, loader.LoadFiles(c.Args().Slice()...)...)
	}

	opts := []screener.ScreenerOption{
		screener.WithAIConfig(ai.NewConfig(
			ai.WithHost(c.String("embedding-host")),
			ai.WithEmbeddingModel(c.String("embedding-model")),
		)),
	}
	if cacheDir := c.String("cache"); cacheDir != "" {
		opts = append(opts, screener.WithCacheDir(cacheDir))
	}
	if pool := c.Int("pool"); pool > 0 {
		opts = append(opts, screener.WithPoolSize(pool))
	}

	s, err := screener.New(opts...)
	if err != nil {
		return err
	}
	defer s.Close()

	cfg := core.NewRankConfig(
		core.WithThreshold(c.Int("threshold")),
		core.WithRequiredKeywords(c.StringSlice("require")...),
		core.WithTopSentences(c.Int("top-sentences")),
		core.WithKeywordTopN(c.Int("keywords")),
		core.WithLexical(c.Bool("lexical")),
	)

	set, err := s.RankWithMonitor(c.Context, queryText, docs, cfg, &progressMonitor{logger: slog.Default()})
	if err != nil {
		return err
	}

	if err := export.WriteTable(os.Stdout, set); err != nil {
		return err
	}
	if c.Bool("verbose-sentences") {
		printSentences(set)
	}

	if csvPath := c.String("csv"); csvPath != "" {
		if err := export.SaveCSV(csvPath, set.Shortlisted()); err != nil {
			return err
		}
		fmt.Printf("\nWrote %s\n", csvPath)
	}
	return nil
}

func keywordsCommand(c *cli.Context) error {
	if c.Args().Len() != 1 {
		return fmt.Errorf("expected exactly one file argument")
	}

	doc := ingest.NewLoader().LoadFiles(c.Args().First())[0]
	for _, kw := range textproc.Keywords(doc.Text, c.Int("top")) {
		fmt.Println(kw)
	}
	return nil
}

// resolveQuery reads the job description from --query or --query-file.
func resolveQuery(c *cli.Context) (string, error) {
	if q := c.String("query"); strings.TrimSpace(q) != "" {
		return q, nil
	}
	if path := c.String("query-file"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("reading query file: %w", err)
		}
		return string(data), nil
	}
	return "", fmt.Errorf("a job description is required: pass --query or --query-file")
}

func printSentences(set *core.ResultSet) {
	for _, r := range set.Records {
		if len(r.Sentences) == 0 {
			continue
		}
		fmt.Printf("\n%s:\n", r.Document.Name)
		for _, m := range r.Sentences {
			fmt.Printf("  [%.2f] %s\n", m.Score, m.Sentence)
		}
	}
}

// progressMonitor logs per-document progress during a run.
type progressMonitor struct {
	logger *slog.Logger
}

func (m *progressMonitor) Start(_ string, documents int) {
	m.logger.Info("ranking started", "documents", documents)
}

func (m *progressMonitor) QueryPrepared(keywords []string) {
	m.logger.Debug("query prepared", "keywords", keywords)
}

func (m *progressMonitor) DocumentScored(record *core.ScoreRecord) {
	m.logger.Info("scored", "document", record.Document.Name,
		"score", record.Score, "state", record.State.String())
}

func (m *progressMonitor) DocumentFailed(name string, err error) {
	m.logger.Warn("scoring failed", "document", name, "err", err)
}

func (m *progressMonitor) Finish(set *core.ResultSet) {
	m.logger.Info("ranking finished",
		"records", len(set.Records), "shortlisted", len(set.Shortlisted()), "failures", len(set.Failures))
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
