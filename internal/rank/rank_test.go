package rank

import "testing"

func TestForPoints(t *testing.T) {
	cases := []struct {
		points int
		want   string
	}{
		{-1, "Worthless Maggot"},
		{0, "Pathetic Loser"},
		{49, "Pathetic Loser"},
		{50, "Struggling Worm"},
		{9999, "Ascended Titan"},
		{10000, "Immortal God"},
		{123456, "Immortal God"},
	}

	for _, tc := range cases {
		if got := ForPoints(tc.points); got.Name != tc.want {
			t.Fatalf("ForPoints(%d) = %s, want %s", tc.points, got.Name, tc.want)
		}
	}
}

func TestTiersStrictlyAscending(t *testing.T) {
	for i := 1; i < len(Tiers); i++ {
		if Tiers[i].MinPoints <= Tiers[i-1].MinPoints {
			t.Fatalf("tier %q floor %d not above %q floor %d",
				Tiers[i].Name, Tiers[i].MinPoints, Tiers[i-1].Name, Tiers[i-1].MinPoints)
		}
	}
}

func TestToNext(t *testing.T) {
	prog := ToNext(0)
	if prog.Current.Name != "Pathetic Loser" {
		t.Fatalf("current = %s", prog.Current.Name)
	}
	if prog.Next == nil || prog.Next.Name != "Struggling Worm" {
		t.Fatalf("unexpected next: %+v", prog.Next)
	}
	if prog.PointsNeeded != 50 {
		t.Fatalf("points needed = %d, want 50", prog.PointsNeeded)
	}

	// 顶级段位没有下一级，差距为 0
	top := ToNext(20000)
	if top.Next != nil {
		t.Fatalf("expected no next tier at top, got %+v", top.Next)
	}
	if top.PointsNeeded != 0 {
		t.Fatalf("points needed at top = %d, want 0", top.PointsNeeded)
	}
}
