package service

type AssistantService interface {
	// Chat forwards a user message to the completion service. When the model
	// invokes the farm-data tool, the service performs the database write and
	// requests one follow-up completion for the user-facing reply.
	Chat(message string, userID uint, promptAddition string) (string, error)
}
