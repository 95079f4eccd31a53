package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	capabilityx "github.com/tanpawarit/Chative-Support-Intent-Routing/agent/capability"
	intentx "github.com/tanpawarit/Chative-Support-Intent-Routing/agent/intent"
	orchestratorx "github.com/tanpawarit/Chative-Support-Intent-Routing/agent/orchestrator"
	replyx "github.com/tanpawarit/Chative-Support-Intent-Routing/agent/reply"
	ticketlogx "github.com/tanpawarit/Chative-Support-Intent-Routing/agent/ticketlog"
	configx "github.com/tanpawarit/Chative-Support-Intent-Routing/pkg/config"
	_ "github.com/tanpawarit/Chative-Support-Intent-Routing/pkg/logger/autoload"
	openrouterx "github.com/tanpawarit/Chative-Support-Intent-Routing/pkg/openrouter"
)

type AppConfig struct {
	PolishReplies bool `envconfig:"POLISH_REPLIES" split_words:"true" default:"false"`
}

func main() {
	appCfg := configx.MustNew[AppConfig]("SUPPORT")

	ticketCfg := configx.MustNew[ticketlogx.Config]("TICKETLOG")
	var tickets ticketlogx.Store = ticketlogx.NopStore{}
	if strings.TrimSpace(ticketCfg.DSN) != "" {
		store, err := ticketlogx.NewBunStore(*ticketCfg)
		if err != nil {
			log.Fatal().Err(err).Msg("open ticket log")
		}
		defer store.Close()
		tickets = store
	}

	registry, products, err := capabilityx.DefaultSet(tickets)
	if err != nil {
		log.Fatal().Err(err).Msg("build capability registry")
	}
	classifier := intentx.NewClassifier(products, registry.Overview())

	var polisher *replyx.Polisher
	if appCfg.PolishReplies {
		orCfg := configx.MustNew[openrouterx.Config]("OPENROUTER")
		polisher = replyx.NewPolisher(openrouterx.NewClient(*orCfg), orCfg.Model)
	}

	agent, err := orchestratorx.New(registry, classifier, polisher)
	if err != nil {
		log.Fatal().Err(err).Msg("build orchestrator")
	}

	runLoop(agent)
}

func runLoop(agent *orchestratorx.Orchestrator) {
	fmt.Println("🤖 Welcome to E-commerce Customer Support!")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("I can help you with:")
	fmt.Println("• Order status & tracking (e.g., 'What is the status of order ORD123?')")
	fmt.Println("• Order issues & complaints (e.g., 'My order ORD123 arrived damaged')")
	fmt.Println("• Product information (e.g., 'Tell me about the laptop')")
	fmt.Println("• Company policies (e.g., 'What is your return policy?')")
	fmt.Println("• General inquiries & support (e.g., 'What are your business hours?')")
	fmt.Println("\nType 'help' for examples or 'exit' to quit.")
	fmt.Println(strings.Repeat("=", 60))

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("\nYou: ")
		if !scanner.Scan() {
			fmt.Println("\nBot: Goodbye!")
			return
		}
		input := strings.TrimSpace(scanner.Text())

		switch strings.ToLower(input) {
		case "exit":
			fmt.Println("Bot: Thank you for contacting our support! Have a great day!")
			return
		case "help":
			printHelp()
			continue
		case "":
			fmt.Println("Bot: Please type a question or 'help' for examples.")
			continue
		}

		response, err := agent.HandleQuery(context.Background(), input)
		if err != nil {
			log.Error().Err(err).Msg("turn failed")
			fmt.Println("Bot: I encountered an unexpected error. Please try again or contact technical support.")
			continue
		}
		fmt.Printf("Bot: %s\n", response)
	}
}

func printHelp() {
	fmt.Println("\nBot: Here are some example queries you can try:")
	fmt.Println("📦 Order Status:")
	fmt.Println("  • 'Check status of order ORD123'")
	fmt.Println("  • 'Where is my order ORD456?'")
	fmt.Println("⚠️ Order Issues:")
	fmt.Println("  • 'I ordered ORD789 but didn't receive it'")
	fmt.Println("  • 'My order ORD123 arrived damaged'")
	fmt.Println("🛍️ Product Information:")
	fmt.Println("  • 'What is the price of the laptop?'")
	fmt.Println("  • 'Is the mouse in stock?'")
	fmt.Println("📋 Policies:")
	fmt.Println("  • 'What is your return policy?'")
	fmt.Println("💬 General Inquiries:")
	fmt.Println("  • 'What are your business hours?'")
	fmt.Println("  • 'How can I contact customer support?'")
}
