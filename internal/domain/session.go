package domain

// BotState is a chat user's place in the bot conversation
type BotState string

const (
	StateIdle           BotState = "idle"
	StateWaitingWord    BotState = "waiting_word"
	StateWaitingMeaning BotState = "waiting_meaning"
	StateQuiz           BotState = "quiz"
)

// StateData holds temporary data for a user's current state
type StateData struct {
	State       BotState
	CurrentWord string
	Question    *Question
	Focus       bool
}
