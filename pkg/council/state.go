package council

// TurnState is a step of a single chat turn. Turns are not resumable.
type TurnState int

const (
	AwaitingUserMessage TurnState = iota
	PersistUserMessage
	GenerateAgentReply
	PersistAgentReply
	TurnComplete
	Failed
)

var stateNames = map[TurnState]string{
	AwaitingUserMessage: "awaiting_user_message",
	PersistUserMessage:  "persist_user_message",
	GenerateAgentReply:  "generate_agent_reply",
	PersistAgentReply:   "persist_agent_reply",
	TurnComplete:        "turn_complete",
	Failed:              "failed",
}

func (s TurnState) String() string {
	if n, ok := stateNames[s]; ok {
		return n
	}
	return "unknown"
}

func (s TurnState) Terminal() bool {
	return s == TurnComplete || s == Failed
}
