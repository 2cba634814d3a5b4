// Package alchemy provides the core types and provider contracts for a
// multi-step content-generation pipeline.
//
// Given a free-text request, the pipeline classifies intent, optionally
// performs web research, generates one typed content artifact (blog post,
// social post, image, or strategy brief), optionally scores quality, and
// finalizes a single structured result. Follow-up requests can refine a
// previously produced artifact instead of starting over.
//
// # Core Interfaces
//
//   - [Gateway]: a single language-model backend (Anthropic, OpenAI, Google)
//   - [ImageProvider]: text-to-image generation
//   - [Searcher]: web search for the research step
//
// Concrete gateways live under provider/; the fallback package chains them
// so one logical call survives individual backend failures.
//
// # Basic Usage
//
// Build a fallback chain and run the workflow engine:
//
//	llm := fallback.New(
//	    anthropic.New(os.Getenv("ANTHROPIC_API_KEY")),
//	    openai.New(os.Getenv("OPENAI_API_KEY")),
//	)
//
//	engine := workflow.NewEngine(workflow.Config{
//	    LLM:    llm,
//	    Images: openai.NewImageClient(os.Getenv("OPENAI_API_KEY")),
//	    Search: serp.New(os.Getenv("SERP_API_KEY")),
//	})
//
//	out := engine.Run(ctx, "Write a blog post about sustainable marketing", alchemy.IntentUnknown)
//	if out.Success {
//	    fmt.Println(out.Content)
//	}
//
// Run never returns an error: failures are recorded in the output's
// metadata and surfaced through Success and Err.
//
// # Higher-Level Packages
//
//   - [github.com/spetersoncode/alchemy/workflow]: the state-machine engine
//   - [github.com/spetersoncode/alchemy/refine]: edit previously produced artifacts
//   - [github.com/spetersoncode/alchemy/session]: per-user session with request history
package alchemy
