package systems

import (
	"testing"

	"github.com/automoto/arena-duel/components"
	cfg "github.com/automoto/arena-duel/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestSnapshotWithoutMatch(t *testing.T) {
	snap := TakeSnapshot(donburi.NewWorld())
	if snap.Winner != components.NoWinner {
		t.Errorf("expected no winner, got %d", snap.Winner)
	}
	if snap.Attack != nil || len(snap.Hazards) != 0 {
		t.Errorf("expected empty snapshot, got %+v", snap)
	}
}

func TestKeyboardPollerIgnoresUnknownSlot(t *testing.T) {
	var p KeyboardPoller
	if p.ActionPressed(2, cfg.ActionAttack) || p.ActionPressed(-1, cfg.ActionAttack) {
		t.Error("unknown slot reported a pressed action")
	}
}

func TestPlaySFXQueuesAndDrains(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	PlaySFX(e, cfg.SoundAttackFire)
	PlaySFX(e, cfg.SoundNone)
	PlaySFX(e, cfg.SoundMatchEnd)

	sink := &countingSink{}
	NewUpdateAudio(sink)(e)

	if len(sink.played) != 2 || sink.played[0] != cfg.SoundAttackFire || sink.played[1] != cfg.SoundMatchEnd {
		t.Errorf("unexpected sounds %v", sink.played)
	}
	if n := len(GetOrCreateAudio(e).PendingSFX); n != 0 {
		t.Errorf("queue not drained, %d left", n)
	}
}

type countingSink struct {
	played []cfg.SoundID
}

func (c *countingSink) Play(s cfg.SoundID) { c.played = append(c.played, s) }
func (c *countingSink) Close() error       { return nil }
