package outletsRepo

import (
	"context"
	"errors"
	"testing"

	"fieldtrack/models"
)

func TestMemoryOutletRepo(t *testing.T) {
	repo := NewMemoryOutletRepo()
	repo.Save(models.Outlet{ID: "O1", Name: "Corner Tavern", Active: true})

	got, err := repo.GetByID(context.Background(), "O1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Name != "Corner Tavern" {
		t.Errorf("Name = %q", got.Name)
	}

	if _, err := repo.GetByID(context.Background(), "O2"); !errors.Is(err, ErrOutletNotFound) {
		t.Errorf("err = %v, want ErrOutletNotFound", err)
	}
}
