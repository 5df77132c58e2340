package filler

import (
	"math"
	"slices"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

// scoredCandidate is one sampled word together with its look-ahead score
// and the hypothetically filtered domains of the unfilled crossing slots.
// The filtered domains are applied only if the candidate wins the step and
// gets committed.
type scoredCandidate struct {
	word     string
	score    float64
	filtered map[int][]string
}

// Solve runs the fill search to completion. It returns true when every
// searched slot holds a word, false when a dead end cannot be backjumped
// out of or the step bound is hit. A refreshRate > 0 logs the grid every
// that many fills; it has no effect on the search itself.
func (p *Puzzle) Solve(refreshRate int) bool {
	worklist := lo.Filter(p.slots, func(s *Slot, _ int) bool {
		return s.length > minPatternLength
	})
	p.steps = 0
	step := 1
	for len(worklist) > 0 {
		p.steps++
		if p.maxSteps > 0 && p.steps > p.maxSteps {
			log.Debug().Int("maxsteps", p.maxSteps).Msg("step bound hit, giving up")
			return false
		}

		// Minimum remaining values; ties go to the earlier slot.
		best := 0
		for i, s := range worklist {
			if s.Count() < worklist[best].Count() {
				best = i
			}
		}
		slot := worklist[best]

		if slot.Count() == 0 {
			undone, ok := p.backjump(slot)
			if !ok {
				log.Debug().Int("slot", slot.id).Msg("no backjump target; giving up")
				return false
			}
			worklist = append(worklist, undone...)
			continue
		}

		cand := p.chooseWord(slot)
		slot.Fill(cand.word, step)
		for id, domain := range cand.filtered {
			p.slots[id].UpdateOptions(domain)
		}
		worklist = slices.Delete(worklist, best, best+1)

		log.Debug().Int("step", step).Int("slot", slot.id).
			Str("word", cand.word).Float64("score", cand.score).Msg("filled")
		if refreshRate > 0 && step%refreshRate == 0 {
			log.Info().Msgf("step %d:\n%s", step, p.grid.Render())
		}
		step++
	}
	return true
}

// chooseWord samples a bounded subset of the slot's domain and scores each
// candidate by how many options it would leave the slot's unfilled
// crossing slots: the product over those slots of log(1 + filtered domain
// size). A candidate that would empty a crossing domain scores zero.
// Scores come from a snapshot of the crossing domains; nothing is mutated
// until the winner is committed.
func (p *Puzzle) chooseWord(slot *Slot) scoredCandidate {
	samples := min(slot.Count(), maxWordPoolLength)
	seen := make(map[int]bool, samples)
	sampled := make([]int, 0, samples)
	for i := 0; i < samples; i++ {
		idx := p.rng.Intn(slot.Count())
		if !seen[idx] {
			seen[idx] = true
			sampled = append(sampled, idx)
		}
	}

	best := scoredCandidate{score: -1}
	for _, idx := range sampled {
		word := slot.domain[idx]
		score := 1.0
		filtered := make(map[int][]string)
		for _, dep := range slot.Dependents() {
			cross := p.slots[dep.SlotID]
			if cross.stamp > 0 || cross.length <= minPatternLength {
				continue
			}
			options := cross.FilterOptions(word, slot)
			filtered[cross.id] = options
			score *= math.Log1p(float64(len(options)))
		}
		if score > best.score {
			best = scoredCandidate{word: word, score: score, filtered: filtered}
		}
	}
	return best
}

// backjump recovers from a dead-ended slot. The target search tries two
// strategies in order: the most recently filled crossing dependent, then a
// whole-puzzle scan of conflict-marked slots. With a target in hand, the
// conflict set is undone newest first, the target's domain is pruned
// against the remaining fixed letters, and every other touched slot is
// restored from its full pool. The undone slots are returned so the
// caller can re-queue them.
func (p *Puzzle) backjump(deadEnd *Slot) ([]*Slot, bool) {
	deadEnd.MarkConflicted()

	target := p.nearestFilledDependent(deadEnd)
	if target == nil {
		// Nothing crossing the dead end is filled; the jam is older than
		// its own neighborhood.
		deadEnd.RestoreOptions()
		target = p.globalConflictedScan()
	}
	if target == nil {
		return nil, false
	}
	log.Debug().Int("deadend", deadEnd.id).Int("target", target.id).
		Int("stamp", target.stamp).Msg("backjumping")

	set := p.conflictSet(target)
	slices.SortFunc(set, func(a, b *Slot) int { return b.stamp - a.stamp })
	inSet := make(map[int]bool, len(set))
	for _, s := range set {
		inSet[s.id] = true
	}

	freed := make(map[int]struct{})
	for _, s := range set {
		for _, id := range s.Undo() {
			if p.slots[id].length > minPatternLength && !inSet[id] {
				freed[id] = struct{}{}
			}
		}
	}
	for _, s := range set {
		if s == target {
			s.PruneOptions()
		} else {
			s.RestoreOptions()
		}
	}
	for id := range freed {
		p.slots[id].RestoreOptions()
	}
	return set, true
}

// nearestFilledDependent picks the most recently filled slot crossing s,
// or nil if none of them is filled.
func (p *Puzzle) nearestFilledDependent(s *Slot) *Slot {
	var target *Slot
	for _, dep := range s.Dependents() {
		cross := p.slots[dep.SlotID]
		if cross.stamp > 0 && (target == nil || cross.stamp > target.stamp) {
			target = cross
		}
	}
	return target
}

// globalConflictedScan picks the most recently filled slot, anywhere in
// the puzzle, that carries a conflict mark and is long enough to search.
func (p *Puzzle) globalConflictedScan() *Slot {
	var target *Slot
	for _, s := range p.slots {
		if s.length <= minPatternLength || s.stamp == 0 || !s.Conflicted() {
			continue
		}
		if target == nil || s.stamp > target.stamp {
			target = s
		}
	}
	return target
}

// conflictSet walks crossing dependents breadth-first from the target,
// following only edges to slots filled strictly later, and collects the
// closure that has to be undone together.
func (p *Puzzle) conflictSet(target *Slot) []*Slot {
	seen := map[int]bool{target.id: true}
	set := []*Slot{target}
	for frontier := []*Slot{target}; len(frontier) > 0; {
		cur := frontier[0]
		frontier = frontier[1:]
		for _, dep := range cur.Dependents() {
			cross := p.slots[dep.SlotID]
			if seen[cross.id] || cross.stamp <= cur.stamp {
				continue
			}
			seen[cross.id] = true
			set = append(set, cross)
			frontier = append(frontier, cross)
		}
	}
	return set
}
