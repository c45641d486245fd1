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

	"github.com/urfave/cli/v2"

	"github.com/poiesic/lattice"
	"github.com/poiesic/lattice/ai"
	"github.com/poiesic/lattice/core"
	"github.com/poiesic/lattice/knowledge"
	"github.com/poiesic/lattice/storage/badger"
)

func main() {
	app := &cli.App{
		Name:  "lattice",
		Usage: "Knowledge graph extraction from document pages",
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
				Name:   "extract",
				Usage:  "Extract a knowledge graph from a document's pages",
				Action: extractCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "document",
						Usage:    "Document identifier",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "pages",
						Usage:    "Path to a JSON file of pages: [{pageNumber, text, summary}]",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "domain",
						Usage: "Domain hint passed to the extraction agents",
					},
					&cli.StringFlag{
						Name:  "taxonomy-file",
						Usage: "Path to a taxonomy text file for concept mapping",
					},
					&cli.StringFlag{
						Name:  "host",
						Usage: "Reasoning backend host URL",
						Value: "http://localhost:11434/v1",
					},
					&cli.StringFlag{
						Name:  "model",
						Usage: "Reasoning backend model name",
						Value: "qwen2.5:3b",
					},
					&cli.Float64Flag{
						Name:  "min-confidence",
						Usage: "Drop extracted fragments below this confidence",
						Value: 0,
					},
					&cli.BoolFlag{
						Name:  "summarize",
						Usage: "Generate summaries for pages that lack one",
					},
					&cli.BoolFlag{
						Name:  "stop-on-error",
						Usage: "Abort the document on the first failing agent",
					},
				},
			},
			{
				Name:   "stats",
				Usage:  "Print stored graph element counts",
				Action: statsCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func extractCommand(c *cli.Context) error {
	ctx := context.Background()

	pages, err := loadPages(c.String("pages"))
	if err != nil {
		return fmt.Errorf("failed to load pages: %w", err)
	}

	taxonomy := ""
	if path := c.String("taxonomy-file"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read taxonomy file: %w", err)
		}
		taxonomy = string(data)
	}

	aiConfig := ai.NewConfig(
		ai.WithHost(c.String("host")),
		ai.WithModel(c.String("model")),
		ai.WithMinConfidence(c.Float64("min-confidence")),
	)
	if err := aiConfig.Validate(); err != nil {
		return fmt.Errorf("invalid AI configuration: %w", err)
	}

	engine, err := lattice.NewEngine(c.String("db"), lattice.WithAIConfig(aiConfig))
	if err != nil {
		return fmt.Errorf("failed to open engine: %w", err)
	}
	defer engine.Close()

	if c.Bool("summarize") {
		summarizer := engine.Provider().Summarizer()
		for i := range pages {
			if pages[i].Summary != "" {
				continue
			}
			summary, err := summarizer.GenerateSummary(ctx, pages[i].ExtractedText)
			if err != nil {
				return fmt.Errorf("failed to summarize page %d: %w", pages[i].PageNumber, err)
			}
			pages[i].Summary = summary
		}
	}

	constructor, err := engine.NewConstructor()
	if err != nil {
		return fmt.Errorf("failed to create constructor: %w", err)
	}
	defer constructor.Close()

	result, err := constructor.ExtractKnowledge(ctx, knowledge.Request{
		DocumentID:  c.String("document"),
		Pages:       pages,
		Domain:      c.String("domain"),
		Taxonomy:    taxonomy,
		StopOnError: c.Bool("stop-on-error"),
	})
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	if err := constructor.SaveKnowledge(ctx, result); err != nil {
		return fmt.Errorf("failed to save knowledge: %w", err)
	}

	fmt.Printf("Document:      %s\n", result.DocumentID)
	fmt.Printf("Pages:         %d\n", result.Pages)
	fmt.Printf("Concepts:      %d\n", len(result.Concepts))
	fmt.Printf("Entities:      %d\n", len(result.Entities))
	fmt.Printf("Relationships: %d\n", len(result.Relationships))
	fmt.Printf("Correlations:  %d\n", len(result.Correlations))
	return nil
}

func statsCommand(c *cli.Context) error {
	backend, err := badger.OpenBackend(c.String("db"), false)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer backend.Close()

	repo, err := badger.NewGraphRepository(backend)
	if err != nil {
		return fmt.Errorf("failed to create repository: %w", err)
	}
	defer repo.Close()

	stats, err := repo.Stats(context.Background())
	if err != nil {
		return fmt.Errorf("failed to read stats: %w", err)
	}

	fmt.Printf("Concepts:      %d\n", stats.Concepts)
	fmt.Printf("Entities:      %d\n", stats.Entities)
	fmt.Printf("Relationships: %d\n", stats.Relationships)
	fmt.Printf("Correlations:  %d\n", stats.Correlations)
	return nil
}

// pageFile is the wire shape of one page in the --pages JSON file.
type pageFile struct {
	PageNumber int    `json:"pageNumber"`
	Text       string `json:"text"`
	Summary    string `json:"summary"`
}

func loadPages(path string) ([]core.Page, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw []pageFile
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("pages file %s contains no pages", path)
	}

	pages := make([]core.Page, 0, len(raw))
	for _, p := range raw {
		if strings.TrimSpace(p.Text) == "" {
			return nil, fmt.Errorf("page %d has no text", p.PageNumber)
		}
		pages = append(pages, core.Page{
			PageNumber:    p.PageNumber,
			ExtractedText: p.Text,
			Summary:       p.Summary,
		})
	}
	return pages, nil
}

func setupLogger(c *cli.Context) error {
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
