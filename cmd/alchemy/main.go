// Command alchemy is an interactive content generation assistant. Type a
// request to run the full workflow; follow up with feedback ("make it
// shorter") to refine the latest result.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	ai "github.com/spetersoncode/alchemy"
	"github.com/spetersoncode/alchemy/refine"
	"github.com/spetersoncode/alchemy/session"
	"github.com/spetersoncode/alchemy/workflow"
	"github.com/spetersoncode/alchemy/writer"
)

var reader = bufio.NewReader(os.Stdin)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}
	setupLogging(cfg.LogLevel)

	ctx := context.Background()
	chain, err := cfg.BuildChain(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create providers: %v\n", err)
		os.Exit(1)
	}

	images := cfg.BuildImages()
	search := cfg.BuildSearch()

	engine := workflow.NewEngine(workflow.Config{
		LLM:    chain,
		Images: images,
		Search: search,
	})
	var imageAgent *writer.ImageAgent
	if images != nil {
		imageAgent = writer.NewImageAgent(chain, images)
	}
	sess := session.New(engine, refine.New(chain, imageAgent))

	fmt.Println("╔════════════════════════════════════════╗")
	fmt.Println("║      alchemy - content assistant       ║")
	fmt.Println("╚════════════════════════════════════════╝")
	fmt.Println()
	fmt.Printf("Providers: %v\n", chain.Providers())
	if search == nil {
		fmt.Println("Web research: disabled (set SERP_API_KEY to enable)")
	}
	if images == nil {
		fmt.Println("Image generation: disabled (set OPENAI_API_KEY to enable)")
	}
	fmt.Println()
	fmt.Println("Type a request, or /help for commands.")
	fmt.Println()

	for {
		fmt.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "/") {
			if quit := handleCommand(ctx, sess, line); quit {
				return
			}
			continue
		}

		out := sess.Handle(ctx, line, ai.IntentUnknown)
		printOutput(out)
	}
}

// handleCommand processes a slash command; true means exit.
func handleCommand(ctx context.Context, sess *session.Session, line string) bool {
	fields := strings.Fields(line)
	switch fields[0] {
	case "/quit", "/exit":
		return true
	case "/help":
		fmt.Println("Commands:")
		fmt.Println("  /as <blog|social|image|strategy|research> <request>   force an intent")
		fmt.Println("  /history       list recent requests")
		fmt.Println("  /back <n>      restore request n from history")
		fmt.Println("  /quit          exit")
	case "/history":
		entries := sess.History()
		if len(entries) == 0 {
			fmt.Println("No history yet.")
			return false
		}
		for i, e := range entries {
			status := "ok"
			if !e.Output.Success {
				status = "failed"
			}
			fmt.Printf("  [%d] (%s, %s) %s\n", i, e.Intent, status, e.Query)
		}
	case "/back":
		if len(fields) < 2 {
			fmt.Println("Usage: /back <n>")
			return false
		}
		i, err := strconv.Atoi(fields[1])
		if err != nil {
			fmt.Println("Usage: /back <n>")
			return false
		}
		out, ok := sess.Back(i)
		if !ok {
			fmt.Println("No such history entry.")
			return false
		}
		fmt.Println("Restored. Refinements now apply to:")
		printOutput(out)
	case "/as":
		if len(fields) < 3 {
			fmt.Println("Usage: /as <intent> <request>")
			return false
		}
		hint, ok := ai.ParseIntent(fields[1])
		if !ok {
			fmt.Printf("Unknown intent %q.\n", fields[1])
			return false
		}
		query := strings.Join(fields[2:], " ")
		printOutput(sess.Handle(ctx, query, hint))
	default:
		fmt.Printf("Unknown command %s. Try /help.\n", fields[0])
	}
	return false
}

func printOutput(out *ai.FinalOutput) {
	fmt.Println()
	if !out.Success {
		fmt.Printf("✗ %s\n", out.Err)
		for _, e := range out.Metadata.Errors {
			fmt.Printf("  %s: %s\n", e.Step, e.Message)
		}
		fmt.Println()
		return
	}

	switch a := out.Content.(type) {
	case *ai.BlogPost:
		fmt.Printf("── %s ──\n", a.Title)
		fmt.Printf("Meta: %s\n", a.MetaDescription)
		fmt.Printf("Words: %d  Provider: %s\n\n", a.WordCount, a.Provider)
		fmt.Println(a.Body)
	case *ai.SocialPost:
		fmt.Println(a.Body)
		fmt.Printf("\nCharacters: %d  Engagement: %.1f/10  Provider: %s\n", a.CharacterCount, a.EngagementScore, a.Provider)
		if a.Image != nil {
			fmt.Printf("Image: %s\n", a.Image.URL)
		} else if a.ImageError != "" {
			fmt.Printf("Image unavailable: %s\n", a.ImageError)
		}
	case *ai.GeneratedImage:
		fmt.Printf("Image: %s\n", a.URL)
		fmt.Printf("Prompt: %s\n", a.Prompt)
		if a.RevisedPrompt != "" {
			fmt.Printf("Revised prompt: %s\n", a.RevisedPrompt)
		}
	case *ai.StrategyBrief:
		fmt.Printf("── Content brief: %s ──\n\n", a.Topic)
		fmt.Println(a.Brief)
	}

	if out.Research != nil && len(out.Research.Sources) > 0 {
		fmt.Printf("\nSources (%d):\n", len(out.Research.Sources))
		for i, s := range out.Research.Sources {
			fmt.Printf("  [%d] %s — %s\n", i+1, s.Title, s.URL)
		}
	}
	if qs := out.Metadata.QualityScores; qs != nil {
		fmt.Printf("\nQuality: %.1f/10\n", qs.Overall)
	}
	fmt.Println()
}

func setupLogging(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
}
