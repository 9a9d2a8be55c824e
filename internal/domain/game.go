package domain

import (
	"sort"
	"time"
)

// Phase - stage of the round cycle
type Phase string

const (
	PhasePlayerActions Phase = "PLAYER_ACTIONS"
	PhaseMarket        Phase = "MARKET_PHASE"
)

const (
	MinPlayers = 2
	MaxPlayers = 4

	GameCodeLength = 6
	GameCodeChars  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	// ActiveObjectiveCount objectives are sampled from the catalog at creation
	ActiveObjectiveCount = 3
)

// Game is the single shared document of a match. The game code is the
// primary key; players reference it by GameCode.
type Game struct {
	Code    string `json:"code"`
	HostID  string `json:"hostId"`
	Started bool   `json:"started"`
	Ended   bool   `json:"ended"`

	PlayerIDs []string `json:"playerIds"`

	Phase               Phase  `json:"phase"`
	CurrentPlayerTurnID string `json:"currentPlayerTurnId"` // empty outside the action phase
	Round               int    `json:"round"`
	RoundStartPlayerID  string `json:"roundStartPlayerId"`

	PlayersFinishedTurn   []string `json:"playersFinishedTurn"`
	PlayersFinishedMarket []string `json:"playersFinishedMarket"`

	CropPrices           map[string]int `json:"cropPrices"`
	TemporaryPriceBoosts map[string]int `json:"temporaryPriceBoosts"` // cleared every round

	LastEvent        string `json:"lastEvent"` // event id, empty if none this round
	SupplyCostActive bool   `json:"supplyCostActive"`
	PricesHalved     bool   `json:"pricesHalved"`

	ActiveObjectives []string `json:"activeObjectives"`

	// Denormalized mirror of Player.ObjectivesClaimed kept for older clients;
	// the per-player lists are authoritative.
	ClaimedObjectivesByPlayer map[string][]string `json:"claimedObjectivesByPlayer"`

	CreatedAt time.Time `json:"createdAt"`
}

// NewGame creates a fresh game document with base market prices.
func NewGame(code, hostID string, objectiveIDs []string) *Game {
	prices := make(map[string]int, len(Crops))
	for _, c := range Crops {
		prices[c.ID] = c.BasePrice
	}
	return &Game{
		Code:                      code,
		HostID:                    hostID,
		PlayerIDs:                 []string{},
		Phase:                     PhasePlayerActions,
		Round:                     1,
		PlayersFinishedTurn:       []string{},
		PlayersFinishedMarket:     []string{},
		CropPrices:                prices,
		TemporaryPriceBoosts:      map[string]int{},
		ActiveObjectives:          objectiveIDs,
		ClaimedObjectivesByPlayer: map[string][]string{},
		CreatedAt:                 time.Now(),
	}
}

// IsMember reports whether id belongs to the game's membership.
func (g *Game) IsMember(id string) bool {
	for _, pid := range g.PlayerIDs {
		if pid == id {
			return true
		}
	}
	return false
}

// NextAfter returns the member that follows id in lexicographic order of
// player ids, wrapping around. Returns empty string for empty membership.
func (g *Game) NextAfter(id string) string {
	if len(g.PlayerIDs) == 0 {
		return ""
	}
	sorted := append([]string(nil), g.PlayerIDs...)
	sort.Strings(sorted)
	for i, pid := range sorted {
		if pid == id {
			return sorted[(i+1)%len(sorted)]
		}
	}
	// id not in membership (removed mid-round): fall back to first sorted member
	return sorted[0]
}

// AllFinishedTurn reports whether every member ended their action turn.
func (g *Game) AllFinishedTurn() bool {
	return len(g.PlayersFinishedTurn) >= len(g.PlayerIDs)
}

// AllFinishedMarket reports whether every member ended the market phase.
func (g *Game) AllFinishedMarket() bool {
	return len(g.PlayersFinishedMarket) >= len(g.PlayerIDs)
}

// MarkFinishedTurn adds id to the finished-turn set (idempotent).
func (g *Game) MarkFinishedTurn(id string) {
	g.PlayersFinishedTurn = appendUnique(g.PlayersFinishedTurn, id)
}

// MarkFinishedMarket adds id to the finished-market set (idempotent).
func (g *Game) MarkFinishedMarket(id string) {
	g.PlayersFinishedMarket = appendUnique(g.PlayersFinishedMarket, id)
}

// RemoveMember drops id from membership and both finished-sets.
func (g *Game) RemoveMember(id string) {
	g.PlayerIDs = removeString(g.PlayerIDs, id)
	g.PlayersFinishedTurn = removeString(g.PlayersFinishedTurn, id)
	g.PlayersFinishedMarket = removeString(g.PlayersFinishedMarket, id)
	delete(g.ClaimedObjectivesByPlayer, id)
}

// EffectivePrice returns the sale price for a crop this round: base market
// price plus any temporary boost, halved (floor 1) while PricesHalved is set.
func (g *Game) EffectivePrice(cropID string) int {
	price := g.CropPrices[cropID] + g.TemporaryPriceBoosts[cropID]
	if g.PricesHalved {
		price /= 2
	}
	if price < 1 {
		price = 1
	}
	return price
}

// Clone returns a deep copy of the game document.
func (g *Game) Clone() *Game {
	cp := *g
	cp.PlayerIDs = append([]string(nil), g.PlayerIDs...)
	cp.PlayersFinishedTurn = append([]string(nil), g.PlayersFinishedTurn...)
	cp.PlayersFinishedMarket = append([]string(nil), g.PlayersFinishedMarket...)
	cp.ActiveObjectives = append([]string(nil), g.ActiveObjectives...)
	cp.CropPrices = copyIntMap(g.CropPrices)
	cp.TemporaryPriceBoosts = copyIntMap(g.TemporaryPriceBoosts)
	cp.ClaimedObjectivesByPlayer = make(map[string][]string, len(g.ClaimedObjectivesByPlayer))
	for k, v := range g.ClaimedObjectivesByPlayer {
		cp.ClaimedObjectivesByPlayer[k] = append([]string(nil), v...)
	}
	return &cp
}

func copyIntMap(m map[string]int) map[string]int {
	cp := make(map[string]int, len(m))
	for k, v := range m {
		cp[k] = v
	}
	return cp
}

func appendUnique(list []string, id string) []string {
	for _, v := range list {
		if v == id {
			return list
		}
	}
	return append(list, id)
}

func removeString(list []string, id string) []string {
	out := make([]string, 0, len(list))
	for _, v := range list {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
