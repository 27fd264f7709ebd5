// README: One-shot demo: builds a trip prompt from env and prints the model's reply.
package main

import (
	"context"
	"fmt"
	"os"

	"travelrelay/internal/config"
	"travelrelay/internal/modules/completion"
	"travelrelay/internal/modules/prompt"
	"travelrelay/internal/types"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ctx := context.Background()
	llm, closeLLM, err := completion.New(ctx, cfg.LLM)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize completion provider: %v\n", err)
		os.Exit(1)
	}
	defer closeLLM()

	req := prompt.Request{
		Destination: fieldFromEnv("DEMO_DESTINATION"),
		Days:        fieldFromEnv("DEMO_DAYS"),
		Budget:      fieldFromEnv("DEMO_BUDGET"),
		Preferences: fieldFromEnv("DEMO_PREFERENCES"),
		Prompt:      fieldFromEnv("DEMO_PROMPT"),
	}
	res, err := prompt.Resolve(req)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if res.Refused {
		fmt.Println(prompt.RefusalMessage)
		return
	}

	fmt.Printf("Prompt: %s\n", res.Prompt)
	reply, err := llm.Complete(ctx, res.Prompt)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Reply: %s\n", reply)
}

func fieldFromEnv(key string) types.Field {
	if v, ok := os.LookupEnv(key); ok {
		return types.Text(v)
	}
	return types.Field{}
}
