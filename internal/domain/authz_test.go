package domain

import "testing"

func TestOwnerOrRoles(t *testing.T) {
	cases := []struct {
		name     string
		owner    int64
		req      int64
		role     string
		elevated []string
		want     bool
	}{
		{"owner passes regardless of role", 42, 42, "passenger", []string{"staff", "admin"}, true},
		{"elevated role passes for other owner", 42, 99, "staff", []string{"staff", "admin"}, true},
		{"admin passes for other owner", 42, 99, "admin", []string{"staff", "admin"}, true},
		{"plain passenger blocked for other owner", 42, 99, "passenger", []string{"staff", "admin"}, false},
		{"no elevated roles means owner only", 42, 99, "admin", nil, false},
		{"zero owner never matches", 0, 0, "passenger", nil, false},
		{"role match is case-insensitive", 42, 99, " Staff ", []string{"staff"}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := OwnerOrRoles(tc.owner, tc.req, tc.role, tc.elevated...); got != tc.want {
				t.Fatalf("OwnerOrRoles(%d, %d, %q, %v)=%v, want %v",
					tc.owner, tc.req, tc.role, tc.elevated, got, tc.want)
			}
		})
	}
}
