package team

import "testing"

func TestDisplayName(t *testing.T) {
	t.Parallel()

	if got := SeoulDynasty.DisplayName(); got != "Seoul Dynasty" {
		t.Fatalf("unexpected display name: %s", got)
	}
	if got := ID("TORONTO_DEFIANT").DisplayName(); got != "TORONTO_DEFIANT" {
		t.Fatalf("expected raw id for unknown team, got=%s", got)
	}
}

func TestAll_ReturnsEveryTeamInOrder(t *testing.T) {
	t.Parallel()

	items := All()
	if len(items) != 12 {
		t.Fatalf("expected 12 teams, got=%d", len(items))
	}
	if items[0].ID != BostonUprising || items[11].ID != ShanghaiDragons {
		t.Fatalf("unexpected team order: first=%s last=%s", items[0].ID, items[11].ID)
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			t.Fatalf("invalid team %s: %v", item.ID, err)
		}
	}

	items[0].Name = "changed"
	if got, _ := Get(BostonUprising); got.Name != "Boston Uprising" {
		t.Fatalf("team table mutated through All: %s", got.Name)
	}
}
