package memory

import (
	"context"
	"testing"

	billing "theater-billing/internal/billing/domain"
)

func TestCatalogRepository_ReturnsCopies(t *testing.T) {
	seed := billing.Catalog{"hamlet": {Name: "Hamlet", Type: billing.PlayTypeTragedy}}
	repo := NewCatalogRepository(seed)
	seed["othello"] = billing.Play{Name: "Othello", Type: billing.PlayTypeTragedy}

	ctx := context.Background()
	catalog, err := repo.Catalog(ctx)
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	if len(catalog) != 1 {
		t.Fatalf("seed mutation leaked into repository: %v", catalog)
	}
	catalog["lear"] = billing.Play{Name: "King Lear", Type: billing.PlayTypeTragedy}

	if err := repo.Save(ctx, "as-like", billing.Play{Name: "As You Like It", Type: billing.PlayTypeComedy}); err != nil {
		t.Fatalf("save: %v", err)
	}
	again, err := repo.Catalog(ctx)
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	if _, ok := again["lear"]; ok {
		t.Fatalf("caller mutation leaked into repository")
	}
	if again["as-like"].Type != billing.PlayTypeComedy {
		t.Fatalf("saved play missing: %v", again)
	}
	if err := repo.Save(ctx, "", billing.Play{}); err == nil {
		t.Fatalf("expected error for empty id")
	}
}
