package chat

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/PabloGalante/longevity-agent/internal/adapters/llm"
	"github.com/PabloGalante/longevity-agent/internal/app/goals"
	"github.com/PabloGalante/longevity-agent/internal/app/recommend"
	"github.com/PabloGalante/longevity-agent/internal/domain"
	"github.com/PabloGalante/longevity-agent/internal/knowledge"
	"github.com/PabloGalante/longevity-agent/internal/observability"
)

const (
	// promptHistoryTurns bounds how much history reaches the generation call.
	promptHistoryTurns = 10

	generationTemperature = 0.7
	generationMaxTokens   = 800

	notConfiguredReply = "I'm sorry, but I'm not currently configured to process messages. " +
		"Please contact support to set up the language model integration."

	apologyPrefix = "I apologize, but I encountered an error processing your request: "
)

// Service orchestrates one chat turn: session load, goal extraction,
// knowledge filtering, response generation, recommendation extraction and
// session persistence.
type Service struct {
	llmClient  domain.LLMClient
	sessions   domain.SessionStore
	kb         *knowledge.Base
	detector   *goals.Detector
	llmTimeout time.Duration
	now        func() time.Time

	// turnLocks serializes concurrent turns for the same session id so a
	// racing pair cannot lose each other's appends.
	turnLocks sync.Map // domain.SessionID -> *sync.Mutex

	tracer          trace.Tracer
	turns           metric.Int64Counter
	generationFails metric.Int64Counter
	recsEmitted     metric.Int64Counter
}

// NewService wires the turn pipeline. llmTimeout bounds each delegate call;
// zero disables the explicit timeout.
func NewService(llmClient domain.LLMClient, sessions domain.SessionStore, kb *knowledge.Base, llmTimeout time.Duration) *Service {
	meter := otel.Meter("longevity-agent")

	turns, _ := meter.Int64Counter("chat.turns")
	generationFails, _ := meter.Int64Counter("chat.generation_failures")
	recsEmitted, _ := meter.Int64Counter("chat.recommendations_emitted")

	return &Service{
		llmClient:       llmClient,
		sessions:        sessions,
		kb:              kb,
		detector:        goals.NewDetector(llmClient),
		llmTimeout:      llmTimeout,
		now:             time.Now,
		tracer:          otel.Tracer("longevity-agent"),
		turns:           turns,
		generationFails: generationFails,
		recsEmitted:     recsEmitted,
	}
}

type TurnInput struct {
	SessionID domain.SessionID
	Message   string
}

type TurnOutput struct {
	SessionID      domain.SessionID
	Response       string
	Recommendation *domain.Recommendation
}

// ProcessTurn runs the full pipeline for one incoming message. Component
// failures degrade per policy: only a generation failure alters the visible
// answer; goal detection and extraction failures degrade to empty results so
// the turn always completes with a well-formed output.
func (s *Service) ProcessTurn(ctx context.Context, in TurnInput) (*TurnOutput, error) {
	unlock := s.lockSession(in.SessionID)
	defer unlock()

	ctx, span := s.tracer.Start(ctx, "chat.turn",
		trace.WithAttributes(attribute.String("session.id", string(in.SessionID))))
	defer span.End()

	s.turns.Add(ctx, 1)

	log := observability.LoggerFromContext(ctx).With("session_id", in.SessionID)
	log.Info("processing turn", "message_len", len(in.Message))

	sess, err := s.sessions.GetOrCreate(in.SessionID)
	if err != nil {
		return nil, err
	}

	sess.AppendMessage(&domain.Message{
		ID:        domain.MessageID(uuid.NewString()),
		Role:      domain.RoleUser,
		Content:   in.Message,
		CreatedAt: s.now(),
	})

	if !s.llmClient.Configured() {
		log.Warn("llm client not configured, answering with support notice")
		return s.finishTurn(ctx, sess, notConfiguredReply, nil)
	}

	// Secondary classification call. The window includes the message just
	// appended, matching the prompt the detector renders around it.
	dctx := ctx
	if s.llmTimeout > 0 {
		var cancel context.CancelFunc
		dctx, cancel = context.WithTimeout(ctx, s.llmTimeout)
		defer cancel()
	}
	detected := s.detector.Detect(dctx, in.Message, sess.Messages)
	sess.MergeGoals(detected)
	log.Info("goals detected", "turn_goals", detected, "session_goals", sess.IdentifiedGoals)

	relevant := s.kb.FindForGoals(detected)

	responseText, err := s.generate(ctx, sess, relevant)
	if err != nil {
		log.Error("response generation failed", "error", err)
		s.generationFails.Add(ctx, 1)
		span.RecordError(err)
		return s.finishTurn(ctx, sess, apologyPrefix+err.Error(), nil)
	}

	rec := recommend.Extract(responseText, relevant, s.now())
	if rec != nil {
		s.recsEmitted.Add(ctx, 1)
		log.Info("recommendations extracted", "count", len(rec.Supplements))
	}

	return s.finishTurn(ctx, sess, responseText, rec)
}

// generate builds the full conversational prompt and delegates to the LLM.
func (s *Service) generate(ctx context.Context, sess *domain.Session, relevant []*domain.Supplement) (string, error) {
	if s.llmTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.llmTimeout)
		defer cancel()
	}

	return s.llmClient.Complete(ctx, domain.CompletionRequest{
		System:      llm.BuildSystemPrompt(relevant),
		Messages:    llm.HistoryWindow(sess.Messages, promptHistoryTurns),
		Temperature: generationTemperature,
		MaxTokens:   generationMaxTokens,
	})
}

// finishTurn records the assistant reply (and payload, if any) on the
// session, persists it, and shapes the caller-facing result. Error replies
// go through here too so the conversation log stays consistent.
func (s *Service) finishTurn(ctx context.Context, sess *domain.Session, reply string, rec *domain.Recommendation) (*TurnOutput, error) {
	sess.AppendMessage(&domain.Message{
		ID:        domain.MessageID(uuid.NewString()),
		Role:      domain.RoleAssistant,
		Content:   reply,
		CreatedAt: s.now(),
	})
	if rec != nil {
		sess.Recommendations = append(sess.Recommendations, rec)
	}

	if err := s.sessions.Put(sess.ID, sess); err != nil {
		return nil, err
	}

	observability.LoggerFromContext(ctx).Info("turn completed",
		"session_id", sess.ID,
		"messages", len(sess.Messages),
		"recommended", rec != nil,
	)

	return &TurnOutput{
		SessionID:      sess.ID,
		Response:       reply,
		Recommendation: rec,
	}, nil
}

// ActiveSessions reports the live session count for the health endpoint.
func (s *Service) ActiveSessions() int {
	return s.sessions.ActiveCount()
}

func (s *Service) lockSession(id domain.SessionID) func() {
	v, _ := s.turnLocks.LoadOrStore(id, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
