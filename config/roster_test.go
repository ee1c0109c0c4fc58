package config

import (
	"errors"
	"strings"
	"testing"
)

func TestEmbeddedRoster(t *testing.T) {
	if len(Roster.Fighters) != 2 {
		t.Fatalf("expected 2 fighters, got %d", len(Roster.Fighters))
	}
	first, second := Roster.Fighters[0], Roster.Fighters[1]
	if first.Name != "Pikachu" || first.Attack != AttackLightning || first.X != 50 {
		t.Errorf("unexpected first fighter: %+v", first)
	}
	if second.Name != "Charmander" || second.Attack != AttackFire || second.X != 650 {
		t.Errorf("unexpected second fighter: %+v", second)
	}
}

func TestParseRosterRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{
			name: "one fighter",
			doc:  "fighters:\n  - {name: A, attack: fire, x: 0}\n",
			want: errRosterSize.Error(),
		},
		{
			name: "unknown attack",
			doc:  "fighters:\n  - {name: A, attack: ice, x: 0}\n  - {name: B, attack: fire, x: 0}\n",
			want: "unknown attack type",
		},
		{
			name: "outside arena",
			doc:  "fighters:\n  - {name: A, attack: fire, x: 750}\n  - {name: B, attack: fire, x: 0}\n",
			want: "outside arena",
		},
		{
			name: "missing name",
			doc:  "fighters:\n  - {attack: fire, x: 0}\n  - {name: B, attack: fire, x: 0}\n",
			want: "missing name",
		},
		{
			name: "not yaml",
			doc:  "fighters: [",
			want: "parse roster",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRoster([]byte(tt.doc))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestParseRosterSizeErrorIsSentinel(t *testing.T) {
	_, err := ParseRoster([]byte("fighters: []\n"))
	if !errors.Is(err, errRosterSize) {
		t.Errorf("expected errRosterSize, got %v", err)
	}
}

func TestAttackTypeSound(t *testing.T) {
	if AttackLightning.Sound() != SoundAttackLightning {
		t.Error("lightning should map to the thunder sound")
	}
	if AttackFire.Sound() != SoundAttackFire {
		t.Error("fire should map to the fireball sound")
	}
	if AttackType("ice").Sound() != SoundNone {
		t.Error("unknown attack types have no sound")
	}
}
