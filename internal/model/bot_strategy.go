package model

// Bot strategy constants
const (
	BotStrategyGreedy = "greedy"
)

// ValidBotStrategies returns all valid bot strategy names
func ValidBotStrategies() []string {
	return []string{BotStrategyGreedy}
}
