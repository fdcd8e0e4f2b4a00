package state

import (
	"os"
	"path/filepath"
	"testing"
)

func TestPrefs_PersistAndReload(t *testing.T) {
	dir := t.TempDir()

	p := OpenPrefs(dir)
	if p.TenantID() != "" || p.Locale() != "" {
		t.Fatalf("prefs nuevas no vacías: %q %q", p.TenantID(), p.Locale())
	}

	p.SetTenantID("tenant-a")
	p.SetLocale("tr")

	// otra instancia lee lo persistido
	q := OpenPrefs(dir)
	if q.TenantID() != "tenant-a" {
		t.Errorf("TenantID = %q", q.TenantID())
	}
	if q.Locale() != "tr" {
		t.Errorf("Locale = %q", q.Locale())
	}
}

func TestPrefs_CorruptFileIgnored(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, prefsFile), []byte("{corrupto"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	p := OpenPrefs(dir)
	if p.TenantID() != "" {
		t.Errorf("TenantID = %q, un archivo corrupto debe ignorarse", p.TenantID())
	}
	// y se puede volver a escribir
	p.SetTenantID("tenant-b")
	if OpenPrefs(dir).TenantID() != "tenant-b" {
		t.Error("no se pudo reescribir tras corrupción")
	}
}
