package keyring

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/yllada/tabdeck/common"
)

func TestLocalKeyring_RoundTrip(t *testing.T) {
	k := newLocalAt(t.TempDir())

	if err := k.Store("vpn-password", "hunter2"); err != nil {
		t.Fatalf("Store() error = %v", err)
	}

	got, err := k.Get("vpn-password")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != "hunter2" {
		t.Errorf("Get() = %q, want hunter2", got)
	}

	if !k.Exists("vpn-password") {
		t.Error("Exists() = false for stored secret")
	}

	if err := k.Delete("vpn-password"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := k.Get("vpn-password"); !errors.Is(err, common.ErrCredentialsNotFound) {
		t.Errorf("Get() after delete error = %v, want ErrCredentialsNotFound", err)
	}
}

func TestLocalKeyring_PersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()

	k := newLocalAt(dir)
	if err := k.Store("token", "abc123"); err != nil {
		t.Fatal(err)
	}

	k2 := newLocalAt(dir)
	got, err := k2.Get("token")
	if err != nil {
		t.Fatalf("Get() from second instance error = %v", err)
	}
	if got != "abc123" {
		t.Errorf("Get() = %q, want abc123", got)
	}
}

func TestLocalKeyring_FileIsEncrypted(t *testing.T) {
	dir := t.TempDir()
	k := newLocalAt(dir)
	if err := k.Store("token", "super-secret-value"); err != nil {
		t.Fatal(err)
	}

	raw, err := os.ReadFile(k.file)
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Contains(raw, []byte("super-secret-value")) {
		t.Error("credentials file contains the plaintext secret")
	}
}

func TestKeyring_EmptyKeyRejected(t *testing.T) {
	k := newLocalAt(t.TempDir())

	if err := k.Store("", "value"); err == nil {
		t.Error("Store with empty key succeeded")
	}
	if err := k.Store("key", ""); err == nil {
		t.Error("Store with empty value succeeded")
	}
	if _, err := k.Get(""); err == nil {
		t.Error("Get with empty key succeeded")
	}
	if err := k.Delete(""); err == nil {
		t.Error("Delete with empty key succeeded")
	}
}

func TestKeyring_Backend(t *testing.T) {
	k := newLocalAt(t.TempDir())
	if k.Backend() != BackendLocal {
		t.Errorf("Backend() = %q, want %q", k.Backend(), BackendLocal)
	}
}

func TestForPlugin_Namespacing(t *testing.T) {
	k := newLocalAt(t.TempDir())

	alpha := k.ForPlugin("Alpha")
	beta := k.ForPlugin("Beta")

	if err := alpha.Store("token", "alpha-secret"); err != nil {
		t.Fatal(err)
	}

	if _, err := beta.Get("token"); !errors.Is(err, common.ErrCredentialsNotFound) {
		t.Error("plugin Beta can read plugin Alpha's secret")
	}

	got, err := alpha.Get("token")
	if err != nil || got != "alpha-secret" {
		t.Errorf("alpha.Get() = %q, %v", got, err)
	}

	if err := alpha.Delete("token"); err != nil {
		t.Fatal(err)
	}
	if _, err := alpha.Get("token"); !errors.Is(err, common.ErrCredentialsNotFound) {
		t.Error("secret survived namespaced delete")
	}
}
