// Package keyring provides secure secret storage for plugins.
// It uses the system keyring when available, falling back to encrypted
// local file storage when not.
package keyring

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	gokeyring "github.com/zalando/go-keyring"

	"github.com/yllada/tabdeck/common"
)

// serviceName is the identifier used in the system keyring.
const serviceName = "tabdeck"

// Backend names reported by Backend().
const (
	BackendSystem = "system"
	BackendLocal  = "encrypted file"
)

// Keyring stores plugin secrets. One instance is shared by the whole
// application; plugins see it through namespaced views.
type Keyring struct {
	useLocal bool

	mu    sync.RWMutex
	local map[string]string
	file  string
	key   []byte
}

var _ common.SecretStore = (*Keyring)(nil)

// New probes the system keyring and falls back to the encrypted local
// file under the config directory when the probe fails.
func New() *Keyring {
	k := &Keyring{}

	testKey := "tabdeck-test-init"
	if err := gokeyring.Set(serviceName, testKey, "test"); err == nil {
		gokeyring.Delete(serviceName, testKey)
		common.LogInfo("Using system keyring for secrets")
		return k
	}

	common.LogWarn("System keyring unavailable, using encrypted local storage")
	dir, err := common.GetConfigDir()
	if err != nil {
		dir = "."
	}
	k.initLocal(dir)
	return k
}

// newLocalAt builds a file-backed keyring rooted at dir. Used by tests
// and by the fallback path.
func newLocalAt(dir string) *Keyring {
	k := &Keyring{}
	k.initLocal(dir)
	return k
}

func (k *Keyring) initLocal(dir string) {
	k.useLocal = true
	os.MkdirAll(dir, 0o700)
	k.file = filepath.Join(dir, ".credentials")

	// Key derived from machine-specific data, so the file is useless
	// when copied to another host.
	hostname, _ := os.Hostname()
	keyData := fmt.Sprintf("tabdeck-%s-%s-%d", hostname, machineID(), os.Getuid())
	hash := sha256.Sum256([]byte(keyData))
	k.key = hash[:]

	k.local = make(map[string]string)
	k.loadLocal()
}

func machineID() string {
	data, err := os.ReadFile("/etc/machine-id")
	if err == nil {
		return strings.TrimSpace(string(data))
	}
	return "default-machine-id"
}

func (k *Keyring) loadLocal() {
	data, err := os.ReadFile(k.file)
	if err != nil {
		return
	}
	decrypted, err := k.decrypt(data)
	if err != nil {
		common.LogWarn("Ignoring unreadable credentials file: %v", err)
		return
	}
	json.Unmarshal(decrypted, &k.local)
}

func (k *Keyring) saveLocal() error {
	k.mu.RLock()
	data, err := json.Marshal(k.local)
	k.mu.RUnlock()
	if err != nil {
		return err
	}

	encrypted, err := k.encrypt(data)
	if err != nil {
		return err
	}
	return os.WriteFile(k.file, encrypted, 0o600)
}

func (k *Keyring) encrypt(plaintext []byte) ([]byte, error) {
	block, err := aes.NewCipher(k.key)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}

	ciphertext := gcm.Seal(nonce, nonce, plaintext, nil)
	return []byte(base64.StdEncoding.EncodeToString(ciphertext)), nil
}

func (k *Keyring) decrypt(data []byte) ([]byte, error) {
	ciphertext, err := base64.StdEncoding.DecodeString(string(data))
	if err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(k.key)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	if len(ciphertext) < gcm.NonceSize() {
		return nil, errors.New("ciphertext too short")
	}
	nonce, ciphertext := ciphertext[:gcm.NonceSize()], ciphertext[gcm.NonceSize():]
	return gcm.Open(nil, nonce, ciphertext, nil)
}

// Backend reports which storage backs this keyring.
func (k *Keyring) Backend() string {
	if k.useLocal {
		return BackendLocal
	}
	return BackendSystem
}

// Store saves a secret.
func (k *Keyring) Store(key, value string) error {
	if key == "" {
		return errors.New("secret key cannot be empty")
	}
	if value == "" {
		return errors.New("secret value cannot be empty")
	}

	if k.useLocal {
		k.mu.Lock()
		k.local[key] = value
		k.mu.Unlock()
		return k.saveLocal()
	}

	if err := gokeyring.Set(serviceName, key, value); err != nil {
		// The system keyring went away mid-session; switch to the file.
		common.LogWarn("System keyring write failed, switching to local storage: %v", err)
		dir, derr := common.GetConfigDir()
		if derr != nil {
			dir = "."
		}
		k.initLocal(dir)
		k.mu.Lock()
		k.local[key] = value
		k.mu.Unlock()
		return k.saveLocal()
	}
	return nil
}

// Get retrieves a secret, returning common.ErrCredentialsNotFound when
// absent.
func (k *Keyring) Get(key string) (string, error) {
	if key == "" {
		return "", errors.New("secret key cannot be empty")
	}

	if k.useLocal {
		k.mu.RLock()
		value, exists := k.local[key]
		k.mu.RUnlock()
		if !exists {
			return "", common.ErrCredentialsNotFound
		}
		return value, nil
	}

	value, err := gokeyring.Get(serviceName, key)
	if err != nil {
		return "", common.ErrCredentialsNotFound
	}
	return value, nil
}

// Delete removes a secret. Deleting an absent secret is not an error.
func (k *Keyring) Delete(key string) error {
	if key == "" {
		return errors.New("secret key cannot be empty")
	}

	if k.useLocal {
		k.mu.Lock()
		delete(k.local, key)
		k.mu.Unlock()
		return k.saveLocal()
	}

	gokeyring.Delete(serviceName, key)
	return nil
}

// Exists checks whether a secret is stored.
func (k *Keyring) Exists(key string) bool {
	_, err := k.Get(key)
	return err == nil
}

// pluginStore namespaces a plugin's secrets so plugins cannot read each
// other's values.
type pluginStore struct {
	parent *Keyring
	prefix string
}

var _ common.SecretStore = (*pluginStore)(nil)

// ForPlugin returns the namespaced secret store handed to a plugin
// through its host.
func (k *Keyring) ForPlugin(pluginName string) common.SecretStore {
	return &pluginStore{parent: k, prefix: "plugin/" + pluginName + "/"}
}

func (p *pluginStore) Store(key, value string) error {
	return p.parent.Store(p.prefix+key, value)
}

func (p *pluginStore) Get(key string) (string, error) {
	return p.parent.Get(p.prefix + key)
}

func (p *pluginStore) Delete(key string) error {
	return p.parent.Delete(p.prefix + key)
}
