package game

// Quest is a delivery an NPC offers to players.
type Quest struct {
	Item         string `json:"item"`
	Amount       int    `json:"amount"`
	RewardItem   string `json:"rewardItem"`
	RewardAmount int    `json:"rewardAmount"`
	Description  string `json:"description"`
}

type NPC struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	X        int      `json:"x"`
	Y        int      `json:"y"`
	Health   int      `json:"health"`
	Damage   int      `json:"damage"`
	Dialogue []string `json:"dialogue"`
	Quest    *Quest   `json:"quest,omitempty"`
}
