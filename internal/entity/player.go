package entity

const botName = "bot"

// Player - one side of an interactive match.
type Player struct {
	Name string `json:"name"`
	Mark string `json:"mark,omitempty"`
}

func NewHumanPlayer(name, mark string) *Player {
	return &Player{Name: name, Mark: mark}
}

func NewBotPlayer(mark string) *Player {
	return &Player{Name: botName, Mark: mark}
}

func (that *Player) IsBot() bool {
	return that.Name == botName
}
