package allocation

import "testing"

func TestClassifyProximity(t *testing.T) {
	optima := Optima{
		Happiness: Optimum{Criterion: MaxHappiness, Allocation: Allocation{Apples: 20, Trees: 7}, Utility: 600},
		Wood:      Optimum{Criterion: MaxWood, Allocation: Allocation{Apples: 0, Trees: 12}, Utility: 384},
		Apples:    Optimum{Criterion: MaxApples, Allocation: Allocation{Apples: 50, Trees: 0}, Utility: 393},
	}

	tests := []struct {
		name    string
		current Allocation
		utility float64
		want    Proximity
	}{
		{"near happiness", Allocation{Apples: 10, Trees: 10}, 580, NearHappiness},
		{"exactly at threshold", Allocation{Apples: 10, Trees: 10}, 570, NearHappiness},
		{"happiness wins over wood", Allocation{Apples: 0, Trees: 12}, 599, NearHappiness},
		{"near wood", Allocation{Apples: 2, Trees: 12}, 400, NearWood},
		{"wood below threshold", Allocation{Apples: 6, Trees: 11}, 400, Balanced},
		{"near apples", Allocation{Apples: 48, Trees: 0}, 390, NearApples},
		{"apples below threshold", Allocation{Apples: 47, Trees: 0}, 390, Balanced},
		{"balanced", Allocation{Apples: 30, Trees: 5}, 500, Balanced},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyProximity(tt.current, tt.utility, optima)
			if got != tt.want {
				t.Errorf("ClassifyProximity(%+v, %v) = %v, want %v", tt.current, tt.utility, got, tt.want)
			}
		})
	}
}

func TestProximityStrings(t *testing.T) {
	want := map[Proximity]string{
		NearHappiness: "near-optimal happiness",
		NearWood:      "near-optimal wood",
		NearApples:    "near-optimal apples",
		Balanced:      "balanced / unoptimized",
	}
	for p, s := range want {
		if p.String() != s {
			t.Errorf("%d.String() = %q, want %q", p, p.String(), s)
		}
		if p.Advice() == "" {
			t.Errorf("%v has no advice text", p)
		}
	}
}
