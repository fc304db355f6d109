package main

import (
	"context"
	"log"
	"net/http"

	httpadapter "github.com/PabloGalante/longevity-agent/internal/adapters/http"
	"github.com/PabloGalante/longevity-agent/internal/adapters/llm"
	firestoresource "github.com/PabloGalante/longevity-agent/internal/adapters/storage/firestore"
	memstore "github.com/PabloGalante/longevity-agent/internal/adapters/storage/memory"
	"github.com/PabloGalante/longevity-agent/internal/app/chat"
	"github.com/PabloGalante/longevity-agent/internal/config"
	"github.com/PabloGalante/longevity-agent/internal/domain"
	"github.com/PabloGalante/longevity-agent/internal/knowledge"
	"github.com/PabloGalante/longevity-agent/internal/telemetry"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()

	_, _, cleanup, err := telemetry.Init(ctx)
	if err != nil {
		log.Fatalf("error initializing telemetry: %v", err)
	}
	defer cleanup()

	// Knowledge base: built-in defaults, JSON file, or Firestore
	var kb *knowledge.Base
	switch cfg.KnowledgeSource {
	case config.KnowledgeFile:
		log.Printf("[KB] Loading knowledge base from file (%s)", cfg.KnowledgeFile)
		kb = loadKnowledge(ctx, knowledge.NewFileSource(cfg.KnowledgeFile))

	case config.KnowledgeFirestore:
		log.Printf("[KB] Loading knowledge base from Firestore (project=%s)", cfg.GCPProjectID)
		source, err := firestoresource.NewKnowledgeSource(ctx, cfg.GCPProjectID)
		if err != nil {
			log.Fatalf("error initializing Firestore knowledge source: %v", err)
		}
		defer source.Close()
		kb = loadKnowledge(ctx, source)

	default:
		log.Println("[KB] Using built-in knowledge base")
		kb = knowledge.NewDefaultBase()
	}

	// LLM backend: mock, OpenAI or Vertex
	var llmClient domain.LLMClient
	switch cfg.LLMBackend {
	case config.LLMBackendOpenAI:
		log.Println("[LLM] Using OpenAI client")
		llmClient = llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel)
		if cfg.OpenAIAPIKey == "" {
			log.Println("[LLM] OPENAI_API_KEY is not set; turns will answer with the support notice")
		}

	case config.LLMBackendVertex:
		log.Println("[LLM] Using Vertex LLM client")
		llmClient, err = llm.NewVertexClient(ctx, cfg.GCPProjectID, cfg.GCPLocation, cfg.VertexModel)
		if err != nil {
			log.Fatalf("error initializing Vertex LLM client: %v", err)
		}

	default:
		log.Println("[LLM] Using MOCK LLM client")
		llmClient = llm.NewMockLLM()
	}

	sessions := memstore.NewSessionStore(cfg.SessionTimeout)
	sessions.StartSweeper(ctx, cfg.SweepInterval)

	svc := chat.NewService(llmClient, sessions, kb, cfg.LLMTimeout)
	handler := httpadapter.NewServer(svc)

	addr := ":" + cfg.Port
	log.Println("Longevity Agent API listening on", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatal(err)
	}
}

func loadKnowledge(ctx context.Context, source domain.KnowledgeSource) *knowledge.Base {
	sups, err := source.LoadSupplements(ctx)
	if err != nil {
		log.Fatalf("error loading knowledge base: %v", err)
	}
	return knowledge.NewBase(sups)
}
