package council

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ai-council-be/internal/pkg/logger"
	"ai-council-be/pkg/agents"
	"ai-council-be/pkg/llm"

	"github.com/google/uuid"
)

const (
	SeatsPerCouncil     = 4
	DefaultHistoryLimit = 20
)

const (
	RoleUser   = "USER"
	RoleAgent  = "AGENT"
	RoleSystem = "SYSTEM"
)

var (
	ErrSeatCount    = errors.New("council must have exactly 4 agents")
	ErrUnknownAgent = errors.New("unknown agent")
	ErrEmptyMessage = errors.New("message content cannot be empty")
)

type Seat struct {
	AgentID      string
	CustomPrompt string
}

// HistoryMessage is one persisted transcript row as the orchestrator needs it.
type HistoryMessage struct {
	Role    string
	AgentID string
	Content string
}

type StoredMessage struct {
	ID        uuid.UUID
	Content   string
	CreatedAt time.Time
}

type AgentReply struct {
	AgentID    string
	Content    string
	TokensUsed int
	Cost       float64
}

type AgentResponse struct {
	AgentId    string  `json:"agentId"`
	AgentName  string  `json:"agentName"`
	Content    string  `json:"content"`
	TokensUsed int     `json:"tokensUsed"`
	Cost       float64 `json:"cost"`
	MessageId  string  `json:"messageId"`
	Model      string  `json:"-"`
}

// Transcript is the append-only message log of a council.
type Transcript interface {
	// RecentMessages returns at most limit rows, oldest first.
	RecentMessages(ctx context.Context, councilID uuid.UUID, limit int) ([]HistoryMessage, error)
	AppendUserMessage(ctx context.Context, councilID uuid.UUID, content string) (*StoredMessage, error)
	AppendAgentReply(ctx context.Context, councilID uuid.UUID, reply AgentReply) (*StoredMessage, error)
}

// Instrumentation receives per-reply timings and turn outcomes.
type Instrumentation interface {
	ObserveAgentReply(agentID string, elapsed time.Duration, err error)
	TurnFinished(final TurnState)
}

type nopInstrumentation struct{}

func (nopInstrumentation) ObserveAgentReply(string, time.Duration, error) {}
func (nopInstrumentation) TurnFinished(TurnState)                         {}

type Turn struct {
	CouncilID uuid.UUID
	Seats     []Seat
	Message   string
	// OnUserMessage fires once the user's message is stored, before any agent runs.
	OnUserMessage func(*StoredMessage)
}

type TurnResult struct {
	UserMessage *StoredMessage
	Responses   []AgentResponse
	Final       TurnState
}

// TurnError reports where a turn stopped. Replies persisted before the failure stay persisted.
type TurnError struct {
	State TurnState
	Slot  int
	Err   error
}

func (e *TurnError) Error() string {
	if e.Slot > 0 {
		return fmt.Sprintf("council turn failed in %s at agent %d: %v", e.State, e.Slot, e.Err)
	}
	return fmt.Sprintf("council turn failed in %s: %v", e.State, e.Err)
}

func (e *TurnError) Unwrap() error { return e.Err }

type Orchestrator struct {
	catalog      *agents.Catalog
	completer    llm.Completer
	transcript   Transcript
	historyLimit int
	instr        Instrumentation
	logger       logger.ILogger
}

type Option func(*Orchestrator)

func WithHistoryLimit(n int) Option {
	return func(o *Orchestrator) {
		if n > 0 {
			o.historyLimit = n
		}
	}
}

func WithInstrumentation(i Instrumentation) Option {
	return func(o *Orchestrator) {
		if i != nil {
			o.instr = i
		}
	}
}

func NewOrchestrator(catalog *agents.Catalog, completer llm.Completer, transcript Transcript, log logger.ILogger, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		catalog:      catalog,
		completer:    completer,
		transcript:   transcript,
		historyLimit: DefaultHistoryLimit,
		instr:        nopInstrumentation{},
		logger:       log,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

type seated struct {
	agent  agents.Agent
	custom string
}

// run is the per-turn state. It is never shared between turns.
type run struct {
	turn      Turn
	state     TurnState
	seats     []seated
	history   []llm.Message
	user      *StoredMessage
	responses []AgentResponse
	pending   *llm.CompletionResult
	err       *TurnError
}

func (r *run) slot() int { return len(r.responses) + 1 }

// Respond runs one turn to TurnComplete or Failed. Agents reply strictly in seat order and
// each sees the replies produced before it in the same turn.
func (o *Orchestrator) Respond(ctx context.Context, turn Turn) (*TurnResult, error) {
	r := &run{turn: turn, state: AwaitingUserMessage}
	for !r.state.Terminal() {
		r.state = o.step(ctx, r)
	}
	o.instr.TurnFinished(r.state)

	result := &TurnResult{UserMessage: r.user, Responses: r.responses, Final: r.state}
	if r.err != nil {
		o.logger.Error("CouncilOrchestrator", "Turn aborted", map[string]interface{}{
			"council_id":        turn.CouncilID.String(),
			"state":             r.err.State.String(),
			"slot":              r.err.Slot,
			"replies_persisted": len(r.responses),
			"error":             r.err.Err,
		})
		return result, r.err
	}
	return result, nil
}

func (o *Orchestrator) fail(r *run, slot int, err error) TurnState {
	r.err = &TurnError{State: r.state, Slot: slot, Err: err}
	return Failed
}

func (o *Orchestrator) step(ctx context.Context, r *run) TurnState {
	switch r.state {
	case AwaitingUserMessage:
		return o.prepare(ctx, r)
	case PersistUserMessage:
		msg, err := o.transcript.AppendUserMessage(ctx, r.turn.CouncilID, r.turn.Message)
		if err != nil {
			return o.fail(r, 0, err)
		}
		r.user = msg
		if r.turn.OnUserMessage != nil {
			r.turn.OnUserMessage(msg)
		}
		return GenerateAgentReply
	case GenerateAgentReply:
		return o.generate(ctx, r)
	case PersistAgentReply:
		return o.persist(ctx, r)
	default:
		return o.fail(r, 0, fmt.Errorf("unexpected state %s", r.state))
	}
}

func (o *Orchestrator) prepare(ctx context.Context, r *run) TurnState {
	if r.turn.Message == "" {
		return o.fail(r, 0, ErrEmptyMessage)
	}
	if len(r.turn.Seats) != SeatsPerCouncil {
		return o.fail(r, 0, ErrSeatCount)
	}
	r.seats = make([]seated, 0, SeatsPerCouncil)
	for _, s := range r.turn.Seats {
		a, ok := o.catalog.GetByID(s.AgentID)
		if !ok {
			return o.fail(r, 0, fmt.Errorf("%w: %s", ErrUnknownAgent, s.AgentID))
		}
		r.seats = append(r.seats, seated{agent: a, custom: s.CustomPrompt})
	}

	// Loaded before the new message is stored, so history never contains it.
	history, err := o.transcript.RecentMessages(ctx, r.turn.CouncilID, o.historyLimit)
	if err != nil {
		return o.fail(r, 0, err)
	}
	r.history = HistoryContext(o.catalog, history)
	return PersistUserMessage
}

func (o *Orchestrator) generate(ctx context.Context, r *run) TurnState {
	seat := r.seats[len(r.responses)]
	started := time.Now()

	res, err := o.completer.Complete(ctx, llm.CompletionRequest{
		SystemPrompt: SystemPrompt(seat.agent, seat.custom),
		UserPrompt:   UserPrompt(r.turn.Message, r.responses),
		History:      AgentContext(r.history, r.turn.Message, r.responses),
		Model:        string(seat.agent.Model),
		Temperature:  seat.agent.Temperature,
	})
	o.instr.ObserveAgentReply(seat.agent.Id, time.Since(started), err)
	if err != nil {
		return o.fail(r, r.slot(), err)
	}
	r.pending = res
	return PersistAgentReply
}

func (o *Orchestrator) persist(ctx context.Context, r *run) TurnState {
	seat := r.seats[len(r.responses)]
	res := r.pending
	r.pending = nil

	msg, err := o.transcript.AppendAgentReply(ctx, r.turn.CouncilID, AgentReply{
		AgentID:    seat.agent.Id,
		Content:    res.Content,
		TokensUsed: res.TokensUsed,
		Cost:       res.EstimatedCost,
	})
	if err != nil {
		return o.fail(r, r.slot(), err)
	}

	r.responses = append(r.responses, AgentResponse{
		AgentId:    seat.agent.Id,
		AgentName:  seat.agent.Name,
		Content:    res.Content,
		TokensUsed: res.TokensUsed,
		Cost:       res.EstimatedCost,
		MessageId:  msg.ID.String(),
		Model:      res.Model,
	})

	o.logger.Debug("CouncilOrchestrator", "Agent reply persisted", map[string]interface{}{
		"council_id": r.turn.CouncilID.String(),
		"agent_id":   seat.agent.Id,
		"slot":       len(r.responses),
		"tokens":     res.TokensUsed,
	})

	if len(r.responses) == len(r.seats) {
		return TurnComplete
	}
	return GenerateAgentReply
}
