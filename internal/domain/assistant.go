package domain

// Role distinguishes the two sides of the open-ended assistant chat.
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// AssistantMessage is one turn in the assistant chat. The history is
// append-only except for the final model message, whose Content grows
// monotonically while a streaming response accumulates.
type AssistantMessage struct {
	Role    Role
	Content string
}
