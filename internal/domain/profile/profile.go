package profile

// XPPerLevel is the amount of XP that separates two consecutive levels.
const XPPerLevel = 100

// Equip slots available on a profile. Every profile carries all three
// keys, an empty value means nothing is equipped in that slot.
const (
	SlotFrame = "frame"
	SlotTheme = "theme"
	SlotTitle = "title"
)

var Slots = []string{SlotFrame, SlotTheme, SlotTitle}

// Profile is the per-user progression and economy record. It is stored
// as a single JSON blob and mutated only through the ledger operations
// below, which take a value and return a new value.
type Profile struct {
	XP             int               `json:"xp"`
	Level          int               `json:"level"`
	Credits        int               `json:"credits"`
	Streak         int               `json:"streak"`
	GamesPlayed    int               `json:"gamesPlayed"`
	CorrectAnswers int               `json:"correctAnswers"`
	Achievements   []string          `json:"achievements"`
	PurchasedItems []string          `json:"purchasedItems"`
	EquippedItems  map[string]string `json:"equippedItems"`
}

// New returns the zero-state profile a user gets on first access.
func New() Profile {
	return Profile{
		XP:             0,
		Level:          1,
		Credits:        0,
		Streak:         0,
		GamesPlayed:    0,
		CorrectAnswers: 0,
		Achievements:   []string{},
		PurchasedItems: []string{},
		EquippedItems: map[string]string{
			SlotFrame: "",
			SlotTheme: "",
			SlotTitle: "",
		},
	}
}

// LevelForXP derives the level from total XP. The rule supports
// multi-level jumps in a single award.
func LevelForXP(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return xp/XPPerLevel + 1
}

func (p Profile) AddXP(amount int) Profile {
	if amount < 0 {
		amount = 0
	}
	p.XP += amount
	p.Level = LevelForXP(p.XP)
	return p
}

func (p Profile) AddCredits(amount int) Profile {
	if amount < 0 {
		amount = 0
	}
	p.Credits += amount
	return p
}

// SpendCredits is the only ledger path that decrements the balance. The
// caller must have checked the balance, the clamp here keeps the
// non-negative invariant even so.
func (p Profile) SpendCredits(amount int) Profile {
	if amount < 0 {
		amount = 0
	}
	p.Credits -= amount
	if p.Credits < 0 {
		p.Credits = 0
	}
	return p
}

func (p Profile) IncrementStreak() Profile {
	p.Streak++
	return p
}

func (p Profile) ResetStreak() Profile {
	p.Streak = 0
	return p
}

func (p Profile) IncrementGamesPlayed() Profile {
	p.GamesPlayed++
	return p
}

func (p Profile) IncrementCorrectAnswers() Profile {
	p.CorrectAnswers++
	return p
}

// UnlockAchievement appends the id to the achievement set. Unlocking an
// already-unlocked achievement is a no-op, not an error.
func (p Profile) UnlockAchievement(id string) Profile {
	if p.HasAchievement(id) {
		return p
	}
	achievements := make([]string, 0, len(p.Achievements)+1)
	achievements = append(achievements, p.Achievements...)
	p.Achievements = append(achievements, id)
	return p
}

func (p Profile) HasAchievement(id string) bool {
	for _, a := range p.Achievements {
		if a == id {
			return true
		}
	}
	return false
}

// AddPurchasedItem appends the item id to the owned set, deduplicated.
func (p Profile) AddPurchasedItem(id string) Profile {
	if p.Owns(id) {
		return p
	}
	items := make([]string, 0, len(p.PurchasedItems)+1)
	items = append(items, p.PurchasedItems...)
	p.PurchasedItems = append(items, id)
	return p
}

func (p Profile) Owns(itemID string) bool {
	for _, it := range p.PurchasedItems {
		if it == itemID {
			return true
		}
	}
	return false
}

// EquipItem places an owned item into a slot. Ownership and slot
// validity are the shop ledger's to check.
func (p Profile) EquipItem(slot, itemID string) Profile {
	equipped := make(map[string]string, len(p.EquippedItems))
	for k, v := range p.EquippedItems {
		equipped[k] = v
	}
	equipped[slot] = itemID
	p.EquippedItems = equipped
	return p
}

// Normalize restores every profile invariant: non-negative counters,
// level consistent with XP, deduplicated collections and all equip
// slots present. Applied on every load and before every store.
func (p Profile) Normalize() Profile {
	if p.XP < 0 {
		p.XP = 0
	}
	if p.Credits < 0 {
		p.Credits = 0
	}
	if p.Streak < 0 {
		p.Streak = 0
	}
	if p.GamesPlayed < 0 {
		p.GamesPlayed = 0
	}
	if p.CorrectAnswers < 0 {
		p.CorrectAnswers = 0
	}
	p.Level = LevelForXP(p.XP)
	p.Achievements = dedup(p.Achievements)
	p.PurchasedItems = dedup(p.PurchasedItems)

	equipped := make(map[string]string, len(Slots))
	for _, slot := range Slots {
		equipped[slot] = p.EquippedItems[slot]
	}
	p.EquippedItems = equipped
	return p
}

func dedup(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
