package combat

import (
	"fmt"

	"deckfall/internal/log"
)

// --- Card effect resolution ---

// runEffects resolves a card's effect list in order. A terminal outcome
// reached mid-list stops the remaining entries; lifesteal accumulated up
// to that point still heals.
func (s *Session) runEffects(card *CardInstance, target *Enemy, doubled bool) error {
	pool := 0
	var err error
	for _, eff := range card.Def.Effects {
		if s.Over() {
			break
		}
		if err = s.applyEffect(eff, card, target, doubled, &pool); err != nil {
			break
		}
	}
	if pool > 0 && s.Player.Alive() {
		healed := s.Player.Heal(pool)
		if healed > 0 {
			s.log(log.NewHealEvent(s.Turn(), s.Phase.String(), "player", healed, s.Player.HP))
		}
	}
	return err
}

func (s *Session) applyEffect(eff Effect, card *CardInstance, target *Enemy, doubled bool, pool *int) error {
	turn, phase := s.Turn(), s.Phase.String()
	switch eff.Op {
	case OpDamage:
		s.applyDamageEffect(eff, card, target, doubled, pool)

	case OpBlock:
		amount := eff.Value + s.Player.Statuses.Get(StatusDexterity)
		if amount < 0 {
			amount = 0
		}
		s.Player.GainBlock(amount)
		s.log(log.NewBlockEvent(turn, phase, "player", amount, s.Player.Block))

	case OpDraw:
		s.drawCards(eff.Value)

	case OpDebuff:
		for _, t := range s.effectTargets(eff, target) {
			if !t.Alive() {
				continue
			}
			total := t.Statuses.Add(eff.Status, eff.Value)
			s.log(log.NewStatusEvent(turn, phase, t.Name, string(eff.Status), eff.Value, total))
		}

	case OpBuff:
		total := s.Player.Statuses.Add(eff.Status, eff.Value)
		s.log(log.NewStatusEvent(turn, phase, "player", string(eff.Status), eff.Value, total))

	case OpTempBuff:
		total := s.Player.Statuses.Add(eff.Status, eff.Value)
		s.Player.RegisterReversal(&s.Player.Actor, eff.Status, eff.Value)
		s.log(log.NewStatusEvent(turn, phase, "player", string(eff.Status), eff.Value, total))

	case OpGainEnergy:
		before := s.Player.Energy
		s.Player.Energy += eff.Value
		if s.Player.Energy < 0 {
			s.Player.Energy = 0
		}
		if delta := s.Player.Energy - before; delta != 0 {
			s.log(log.NewEnergyEvent(turn, phase, delta, s.Player.Energy))
		}

	case OpLoseHP:
		lost := s.Player.LoseHP(eff.Value)
		s.log(log.NewDamageEvent(turn, phase, card.Def.Name, "player", lost, 0))
		s.checkOutcome()

	case OpAddCopy:
		cp := card.Clone(s.Player.NextCardID())
		s.Player.Discard = append(s.Player.Discard, cp)
		s.log(log.NewAddCardEvent(turn, phase, cp.String(), "discard"))

	case OpAddCard:
		def, err := s.lib.Card(eff.CardID)
		if err != nil {
			return err
		}
		ci := &CardInstance{ID: s.Player.NextCardID(), Def: def}
		s.Player.Discard = append(s.Player.Discard, ci)
		s.log(log.NewAddCardEvent(turn, phase, ci.String(), "discard"))

	case OpRegisterPower:
		s.Player.Powers[eff.Power] += eff.Value
		s.log(log.NewPowerEvent(turn, string(eff.Power), eff.Value, s.Player.Powers[eff.Power]))

	case OpNoMoreDraw:
		s.Player.NoDraw = true

	case OpExhaustRandom:
		if len(s.Player.Hand) == 0 {
			return nil
		}
		ci := s.Player.Hand[s.rng.Intn(len(s.Player.Hand))]
		s.Player.RemoveFromHand(ci)
		s.exhaustCard(ci, "exhausted at random")

	case OpSecondWind:
		s.applySecondWind(eff)

	case OpAddRandomAttack:
		ids := s.lib.AttackCardIDs()
		if len(ids) == 0 {
			return nil
		}
		def, err := s.lib.Card(ids[s.rng.Intn(len(ids))])
		if err != nil {
			return err
		}
		ci := &CardInstance{ID: s.Player.NextCardID(), Def: def}
		s.Player.Hand = append(s.Player.Hand, ci)
		s.log(log.NewAddCardEvent(turn, phase, ci.String(), "hand"))

	case OpPlayTopDraw:
		return s.playTopDraw()

	case OpPutOnDraw:
		ci := s.Player.PopDiscard()
		if ci == nil {
			return nil
		}
		s.Player.PushDraw(ci)
		s.log(log.NewReturnToDrawEvent(turn, ci.String(), "discard"))

	case OpPutBack:
		if len(s.Player.Hand) == 0 {
			return nil
		}
		ci := s.Player.Hand[len(s.Player.Hand)-1]
		s.Player.RemoveFromHand(ci)
		s.Player.PushDraw(ci)
		s.log(log.NewReturnToDrawEvent(turn, ci.String(), "hand"))

	default:
		return fmt.Errorf("unhandled effect op %v", eff.Op)
	}
	return nil
}

// applyDamageEffect deals a damage descriptor's hits. The base is fixed
// once from value, ramp, strength, weak and the attack doubler; the
// vulnerable bonus is fixed per target. Each hit is then applied
// sequentially against the target's live Block and HP.
func (s *Session) applyDamageEffect(eff Effect, card *CardInstance, target *Enemy, doubled bool, pool *int) {
	base := eff.Value + card.RampBonus + s.Player.Statuses.Get(StatusStrength)
	if s.Player.Statuses.Get(StatusWeak) > 0 {
		base = base * 3 / 4
	}
	if base < 0 {
		base = 0
	}
	if doubled {
		base *= 2
	}

	hits := eff.Times
	if hits < 1 {
		hits = 1
	}
	for _, t := range s.effectTargets(eff, target) {
		if !t.Alive() {
			continue
		}
		dmg := base
		if t.Statuses.Get(StatusVulnerable) > 0 {
			dmg = dmg * 3 / 2
		}
		for h := 0; h < hits; h++ {
			if s.Over() || !t.Alive() {
				break
			}
			hpLost, blocked := t.TakeDamage(dmg)
			if eff.Lifesteal {
				*pool += hpLost
			}
			s.log(log.NewDamageEvent(s.Turn(), s.Phase.String(), "player", t.Name, hpLost, blocked))
			if !t.Alive() {
				s.log(log.NewEnemyDownEvent(s.Turn(), s.Phase.String(), t.Name))
				s.checkOutcome()
			}
		}
		if s.Over() {
			break
		}
	}
}

// applySecondWind exhausts every non-attack card in hand, gaining block
// for each one exhausted.
func (s *Session) applySecondWind(eff Effect) {
	for _, ci := range snapshotHand(s.Player) {
		if ci.Def.Type == CardTypeAttack {
			continue
		}
		s.Player.RemoveFromHand(ci)
		s.exhaustCard(ci, "second wind")
		amount := eff.Value + s.Player.Statuses.Get(StatusDexterity)
		if amount < 0 {
			amount = 0
		}
		s.Player.GainBlock(amount)
		s.log(log.NewBlockEvent(s.Turn(), s.Phase.String(), "player", amount, s.Player.Block))
	}
}

// playTopDraw plays the top card of the draw pile against a random
// living enemy, then exhausts it. The card costs no energy but counts
// as played for attack counters. Unplayable cards are exhausted without
// resolving.
func (s *Session) playTopDraw() error {
	ci := s.Player.PopDraw()
	if ci == nil {
		return nil
	}
	if ci.Def.Unplayable {
		s.exhaustCard(ci, "played from draw")
		return nil
	}

	var tgt *Enemy
	if living := s.livingEnemies(); len(living) > 0 {
		tgt = living[s.rng.Intn(len(living))]
	}
	tgtName := ""
	if tgt != nil {
		tgtName = tgt.Name
	}
	s.log(log.NewCardPlayedEvent(s.Turn(), ci.Def.ID, ci.String(), tgtName, 0))

	doubled := false
	if ci.Def.Type == CardTypeAttack {
		s.Player.AttacksPlayed++
		s.fireRelics(TriggerPlayAttack, nil)
		doubled = s.Player.Relics.AttackDoubled()
	}
	err := s.runEffects(ci, tgt, doubled)
	if ci.Def.RampUp > 0 {
		ci.RampBonus += ci.Def.RampUp
		s.Player.WriteBackRamp(ci)
	}
	s.exhaustCard(ci, "played from draw")
	return err
}

// effectTargets resolves a descriptor's target mode. A missing or dead
// explicit target yields no targets, making the descriptor a no-op.
func (s *Session) effectTargets(eff Effect, target *Enemy) []*Enemy {
	if eff.Target == TargetAll {
		return s.Enemies
	}
	if target == nil {
		return nil
	}
	return []*Enemy{target}
}

func (s *Session) livingEnemies() []*Enemy {
	var out []*Enemy
	for _, e := range s.Enemies {
		if e.Alive() {
			out = append(out, e)
		}
	}
	return out
}

// --- Shared zone helpers ---

// drawCards draws up to n cards, reshuffling the discard pile into the
// draw pile as needed. Stops early when both piles are empty or drawing
// is disabled for the turn.
func (s *Session) drawCards(n int) {
	if s.Player.NoDraw {
		return
	}
	for i := 0; i < n; i++ {
		card, reshuffled := s.Player.DrawOne(s.rng)
		if reshuffled > 0 {
			s.log(log.NewReshuffleEvent(s.Turn(), s.Phase.String(), reshuffled))
		}
		if card == nil {
			return
		}
		s.log(log.NewDrawEvent(s.Turn(), s.Phase.String(), card.String()))
	}
}

// exhaustCard moves an already-removed card into the exhaust pile and
// fires the exhaust relic trigger. Callers remove the card from its
// source zone first.
func (s *Session) exhaustCard(ci *CardInstance, reason string) {
	s.Player.Exhaust = append(s.Player.Exhaust, ci)
	s.log(log.NewExhaustEvent(s.Turn(), s.Phase.String(), ci.String(), reason))
	s.fireRelics(TriggerExhaust, nil)
}

// --- Enemy intent resolution ---

// executeIntent resolves one enemy's chosen intent. Ritual converts to
// strength before the intent itself resolves.
func (s *Session) executeIntent(e *Enemy, intent Intent) {
	turn := s.Turn()
	if r := e.Statuses.Get(StatusRitual); r > 0 {
		total := e.Statuses.Add(StatusStrength, r)
		s.log(log.NewStatusEvent(turn, s.Phase.String(), e.Name, string(StatusStrength), r, total))
	}

	s.log(log.NewEnemyActionEvent(turn, e.Name, intent.String()))

	switch intent.Kind {
	case IntentAttack, IntentAttackDebuff:
		dmg := e.hitDamage(intent, &s.Player.Actor)
		for h := 0; h < intent.Hits(); h++ {
			if s.Over() || !e.Alive() {
				break
			}
			hpLost, blocked := s.Player.TakeDamage(dmg)
			s.log(log.NewDamageEvent(turn, s.Phase.String(), e.Name, "player", hpLost, blocked))
			if hpLost > 0 {
				s.fireRelics(TriggerDamaged, e)
			}
			s.checkOutcome()
		}
		if intent.Kind == IntentAttackDebuff && !s.Over() && e.Alive() {
			total := s.Player.Statuses.Add(intent.Status, intent.Value)
			s.log(log.NewStatusEvent(turn, s.Phase.String(), "player", string(intent.Status), intent.Value, total))
		}

	case IntentBlock:
		amount := intent.Block + e.Statuses.Get(StatusDexterity)
		if amount < 0 {
			amount = 0
		}
		e.GainBlock(amount)
		s.log(log.NewBlockEvent(turn, s.Phase.String(), e.Name, amount, e.Block))
		if intent.Status != "" && intent.Value != 0 {
			total := e.Statuses.Add(intent.Status, intent.Value)
			s.log(log.NewStatusEvent(turn, s.Phase.String(), e.Name, string(intent.Status), intent.Value, total))
		}

	case IntentBuff:
		total := e.Statuses.Add(intent.Status, intent.Value)
		s.log(log.NewStatusEvent(turn, s.Phase.String(), e.Name, string(intent.Status), intent.Value, total))

	case IntentDebuff:
		total := s.Player.Statuses.Add(intent.Status, intent.Value)
		s.log(log.NewStatusEvent(turn, s.Phase.String(), "player", string(intent.Status), intent.Value, total))
	}
}
