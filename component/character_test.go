package component

import "testing"

func TestStageOfHP(t *testing.T) {
	tests := []struct {
		hp, maxHP int
		want      HPStage
	}{
		{100, 100, HPHealthy},
		{120, 100, HPHealthy},
		{99, 100, HPLightInjury},
		{75, 100, HPLightInjury},
		{74, 100, HPInjured},
		{50, 100, HPInjured},
		{49, 100, HPSerious},
		{25, 100, HPSerious},
		{24, 100, HPCritical},
		{1, 100, HPCritical},
		{0, 100, HPDead},
		{10, 0, HPDead},
	}
	for _, tt := range tests {
		if got := StageOfHP(tt.hp, tt.maxHP); got != tt.want {
			t.Errorf("StageOfHP(%d, %d) = %s, want %s", tt.hp, tt.maxHP, got, tt.want)
		}
	}
	if HPDead.RecoveryCoeff() != 0 || HPInjured.RecoveryCoeff() != 0.75 {
		t.Error("unexpected recovery coefficients")
	}
}

func TestStageOfBonds(t *testing.T) {
	tests := map[int]BondsStage{
		100: BondsFull,
		99:  BondsEnriched,
		90:  BondsEnriched,
		85:  BondsGood,
		70:  BondsStable,
		65:  BondsMaintained,
		50:  BondsHalved,
		41:  BondsUnstable,
		30:  BondsThin,
		20:  BondsDanger,
		19:  BondsVanishing,
		1:   BondsVanishing,
		0:   BondsIsolated,
	}
	for bonds, want := range tests {
		if got := StageOfBonds(bonds); got != want {
			t.Errorf("StageOfBonds(%d) = %d, want %d", bonds, got, want)
		}
	}
}

func TestRestState(t *testing.T) {
	if RestNeed(RestActive) != 255 || RestNeed(RestFull) != 0 {
		t.Errorf("RestNeed = %v/%v, want 255/0", RestNeed(RestActive), RestNeed(RestFull))
	}
	if RestBonus(RestFull) != 0.5 || RestBonus(RestState(7)) != 0 {
		t.Error("unexpected rest bonus")
	}
	r, ok := ParseRestState("sleep")
	if !ok || r != RestSleep {
		t.Errorf("ParseRestState(sleep) = %v, %v", r, ok)
	}
	if _, ok := ParseRestState("nap"); ok {
		t.Error("parsed unknown rest state")
	}
}
