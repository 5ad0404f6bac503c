package persist

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestMigrationsEmbedded(t *testing.T) {
	entries, err := fs.ReadDir(migrations, "migrations")
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) == 0 || entries[0].Name() != "00001_journal.sql" {
		t.Fatalf("embedded migrations = %v", entries)
	}
	body, err := fs.ReadFile(migrations, "migrations/00001_journal.sql")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"-- +goose Up", "-- +goose Down", "CREATE TABLE shots", "CREATE TABLE impacts"} {
		if !strings.Contains(string(body), want) {
			t.Fatalf("migration lacks %q", want)
		}
	}
}

func TestBatchReset(t *testing.T) {
	var b Batch
	v := uuid.New()
	b.Shots = append(b.Shots, ShotRecord{Volley: v, Weapon: "double_barrel"})
	b.Impacts = append(b.Impacts,
		ImpactRecord{Volley: v, Kind: ImpactHit},
		ImpactRecord{Volley: v, Kind: ImpactBurnout},
	)
	if b.Len() != 3 {
		t.Fatalf("len = %d", b.Len())
	}
	shots := cap(b.Shots)
	b.Reset()
	if b.Len() != 0 || cap(b.Shots) != shots {
		t.Fatal("reset should empty the batch and keep its storage")
	}
}
