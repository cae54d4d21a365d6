package constant

import "time"

// Client -> server events.
const (
	EventJoinCouncil  = "join_council"
	EventSendMessage  = "send_message"
	EventLeaveCouncil = "leave_council"
)

// Server -> client events.
const (
	EventJoinedCouncil      = "joined_council"
	EventUserMessage        = "user_message"
	EventAgentTyping        = "agent_typing"
	EventAgentResponse      = "agent_response"
	EventAllAgentsResponded = "all_agents_responded"
	EventError              = "error"
)

const (
	CouncilRoomPrefix = "council-"
	AgentsPerCouncil  = 4

	DefaultAgentResponseDelay = 500 * time.Millisecond
)

// Gateway error messages.
const (
	MsgTokenRequired      = "Authentication token required"
	MsgTokenInvalid       = "Invalid or expired token"
	MsgInvalidFrame       = "Invalid message format"
	MsgJoinFailed         = "Failed to join council"
	MsgSendFailed         = "Failed to process message"
	MsgUnknownEventPrefix = "Unknown event: "
)

func CouncilRoom(councilID string) string {
	return CouncilRoomPrefix + councilID
}
