package schedule

import "testing"

func TestHasOverlapEmptySet(t *testing.T) {
	candidate := mustInterval(t, "10:00", "10:30")

	if HasOverlap(candidate, nil) {
		t.Fatalf("empty set must never overlap")
	}
}

func TestHasOverlapCases(t *testing.T) {
	existing := []Interval{mustInterval(t, "10:00", "10:30")}

	cases := []struct {
		name string
		from string
		to   string
		want bool
	}{
		{name: "starts inside existing", from: "10:15", to: "10:45", want: true},
		{name: "ends inside existing", from: "09:45", to: "10:15", want: true},
		{name: "contains existing", from: "09:00", to: "11:00", want: true},
		{name: "contained by existing", from: "10:10", to: "10:20", want: true},
		{name: "identical", from: "10:00", to: "10:30", want: true},
		{name: "adjacent before", from: "09:30", to: "10:00", want: false},
		{name: "adjacent after", from: "10:30", to: "11:00", want: false},
		{name: "disjoint", from: "12:00", to: "12:30", want: false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			candidate := mustInterval(t, c.from, c.to)
			if got := HasOverlap(candidate, existing); got != c.want {
				t.Fatalf("HasOverlap(%v) = %v, want %v", candidate, got, c.want)
			}
		})
	}
}

func TestHasOverlapScansWholeSet(t *testing.T) {
	existing := []Interval{
		mustInterval(t, "09:00", "09:30"),
		mustInterval(t, "14:00", "14:30"),
	}

	if !HasOverlap(mustInterval(t, "14:15", "14:45"), existing) {
		t.Fatalf("overlap with a later entry must be detected")
	}
	if HasOverlap(mustInterval(t, "11:00", "11:30"), existing) {
		t.Fatalf("gap between bookings must not overlap")
	}
}
