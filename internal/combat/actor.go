package combat

// Actor holds the health, block, and status bookkeeping shared by the
// player and enemies.
type Actor struct {
	Name     string
	HP       int
	MaxHP    int
	Block    int
	Statuses StatusSet
}

func (a *Actor) Alive() bool {
	return a.HP > 0
}

// TakeDamage applies incoming damage, consuming Block before HP.
// Returns the HP actually removed and the amount Block absorbed.
func (a *Actor) TakeDamage(amount int) (hpLost, blocked int) {
	if amount <= 0 {
		return 0, 0
	}
	if a.Block > 0 {
		blocked = a.Block
		if blocked > amount {
			blocked = amount
		}
		a.Block -= blocked
		amount -= blocked
	}
	if amount > a.HP {
		amount = a.HP
	}
	a.HP -= amount
	return amount, blocked
}

// LoseHP removes HP directly, bypassing Block. Used for poison ticks
// and self-damage effects. Returns the HP actually removed.
func (a *Actor) LoseHP(amount int) int {
	if amount <= 0 {
		return 0
	}
	if amount > a.HP {
		amount = a.HP
	}
	a.HP -= amount
	return amount
}

// GainBlock adds to current Block. Block accumulates; only the owner's
// start-of-turn transition resets it.
func (a *Actor) GainBlock(amount int) {
	if amount <= 0 {
		return
	}
	a.Block += amount
}

// Heal restores HP up to MaxHP. Returns the HP actually restored.
func (a *Actor) Heal(amount int) int {
	if amount <= 0 {
		return 0
	}
	if a.HP+amount > a.MaxHP {
		amount = a.MaxHP - a.HP
	}
	a.HP += amount
	return amount
}
