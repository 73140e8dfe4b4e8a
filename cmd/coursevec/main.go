// Copyright 2025 Poiesic Systems
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
	"context"
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/poiesic/coursevec"
	"github.com/poiesic/coursevec/ai"
	"github.com/poiesic/coursevec/ai/openai"
	"github.com/poiesic/coursevec/core"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "coursevec",
		Usage: "Semantic index over course catalog JSON files",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "build",
				Usage:  "Build the index from a catalog JSON file",
				Action: buildCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "json",
						Usage: "Path to the catalog JSON file",
						Value: "cursos_filtrados.json",
					},
					&cli.StringFlag{
						Name:    "out",
						Aliases: []string{"o"},
						Usage:   "Output directory for the index",
						Value:   "rag_index",
					},
					&cli.StringFlag{
						Name:     "model",
						Usage:    "Embedding model name",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "embedding-host",
						Usage: "Embedding service host URL",
						Value: "http://localhost:11434/v1",
					},
					&cli.StringFlag{
						Name:  "campo",
						Usage: "Force this campo value on every snippet",
					},
					&cli.StringFlag{
						Name:  "chunker",
						Usage: "Chunking strategy for prose fields (window, bullets)",
						Value: "window",
					},
					&cli.StringFlag{
						Name:  "cache",
						Usage: "Directory for the on-disk embedding cache (disabled when empty)",
					},
				},
			},
			{
				Name:      "query",
				Usage:     "Query the index and print matching snippets as JSON lines",
				ArgsUsage: "<query text>",
				Action:    queryCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "index",
						Aliases: []string{"i"},
						Usage:   "Directory holding a built index",
						Value:   "rag_index",
					},
					&cli.StringFlag{
						Name:     "model",
						Usage:    "Embedding model name (must match the build)",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "embedding-host",
						Usage: "Embedding service host URL",
						Value: "http://localhost:11434/v1",
					},
					&cli.IntFlag{
						Name:    "k",
						Aliases: []string{"n"},
						Usage:   "Number of results to return",
						Value:   5,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newEmbedder(c *cli.Context) (ai.Embedder, error) {
	cfg := ai.NewConfig(
		ai.WithEmbeddingHost(c.String("embedding-host")),
		ai.WithEmbeddingModel(c.String("model")),
	)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid embedding configuration: %w", err)
	}
	return openai.NewEmbedder(cfg)
}

func buildCommand(c *cli.Context) error {
	ctx := context.Background()

	chunker := c.String("chunker")
	if chunker != "window" && chunker != "bullets" {
		return fmt.Errorf("invalid chunker %q: must be window or bullets", chunker)
	}

	embedder, err := newEmbedder(c)
	if err != nil {
		return err
	}

	cfg := coursevec.BuildConfig{
		CorpusPath: c.String("json"),
		IndexDir:   c.String("out"),
		Model:      c.String("model"),
		Campo:      c.String("campo"),
		Bullets:    chunker == "bullets",
		CachePath:  c.String("cache"),
	}

	count, err := coursevec.BuildIndex(ctx, embedder, cfg)
	if err != nil {
		return fmt.Errorf("build failed: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Indexed %d snippets into %s\n", count, cfg.IndexDir)
	return nil
}

// resultLine is the JSONL record printed per query hit: the snippet metadata
// with the similarity score inlined.
type resultLine struct {
	core.Snippet
	Score float32 `json:"score"`
}

func queryCommand(c *cli.Context) error {
	ctx := context.Background()

	query := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
	if query == "" {
		return fmt.Errorf("query text is required")
	}

	embedder, err := newEmbedder(c)
	if err != nil {
		return err
	}

	results, err := coursevec.Query(ctx, embedder, query, coursevec.QueryConfig{
		IndexDir: c.String("index"),
		TopK:     c.Int("k"),
	})
	if err != nil {
		return fmt.Errorf("query failed: %w", err)
	}

	enc := json.NewEncoder(os.Stdout)
	for _, result := range results {
		line := resultLine{Snippet: *result.Snippet, Score: result.Score}
		if err := enc.Encode(&line); err != nil {
			return err
		}
	}
	return nil
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
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

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
