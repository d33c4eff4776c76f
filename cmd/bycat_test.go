package cmd

import "testing"

type fakeCategoryLister struct {
	cats []string
}

func (f fakeCategoryLister) DistinctCategories() ([]string, error) {
	return f.cats, nil
}

func TestNearestCategory(t *testing.T) {
	lister := fakeCategoryLister{cats: []string{"food", "transit", "health"}}

	tests := []struct {
		name string
		miss string
		want string
	}{
		{"typo", "fod", "food"},
		{"case slip", "Transit", "transit"},
		{"too far", "subscriptions", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := nearestCategory(lister, tt.miss); got != tt.want {
				t.Errorf("nearestCategory(%q) = %q, want %q", tt.miss, got, tt.want)
			}
		})
	}
}
