package keys

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Store is a simple local-first key directory. Each named entry holds an
// armored keypair:
//
//	<dir>/<name>/private.pem  (0600)
//	<dir>/<name>/public.pem
//
// Ed25519 only. No external services, no encryption at rest; the store is
// a convenience over the same armored files a caller could manage by hand.
type Store struct {
	Directory string
}

// Entry describes one stored keypair.
type Entry struct {
	Name        string
	Compact     string
	Fingerprint string
}

// DefaultDirectory returns ~/.dsigo/keys.
func DefaultDirectory() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".dsigo", "keys"), nil
}

// Open returns a Store rooted at directory, falling back to
// DefaultDirectory when directory is empty.
func Open(directory string) (*Store, error) {
	if directory == "" {
		var err error
		directory, err = DefaultDirectory()
		if err != nil {
			return nil, err
		}
	}
	return &Store{Directory: directory}, nil
}

// CheckName validates a store entry name: [A-Za-z0-9_-]+ only.
func CheckName(name string) error {
	if name == "" {
		return errors.New("name cannot be empty")
	}
	for _, char := range name {
		if (char >= 'a' && char <= 'z') || (char >= 'A' && char <= 'Z') || (char >= '0' && char <= '9') || char == '-' || char == '_' {
			continue
		}
		return fmt.Errorf("invalid character %q in name", char)
	}
	return nil
}

func (s *Store) privatePath(name string) string {
	return filepath.Join(s.Directory, name, "private.pem")
}

func (s *Store) publicPath(name string) string {
	return filepath.Join(s.Directory, name, "public.pem")
}

// Create generates a fresh keypair under name and writes both armored
// files. Without overwrite, an existing entry is an error.
func (s *Store) Create(name string, overwrite bool) (*Export, error) {
	if err := CheckName(name); err != nil {
		return nil, err
	}
	kp, err := Generate()
	if err != nil {
		return nil, err
	}
	exp, err := kp.Export()
	if err != nil {
		return nil, err
	}
	if err := s.writeEntry(name, exp, overwrite); err != nil {
		return nil, err
	}
	return exp, nil
}

// Import stores an existing keypair under name.
func (s *Store) Import(name string, kp *KeyPair, overwrite bool) (*Export, error) {
	if err := CheckName(name); err != nil {
		return nil, err
	}
	exp, err := kp.Export()
	if err != nil {
		return nil, err
	}
	if err := s.writeEntry(name, exp, overwrite); err != nil {
		return nil, err
	}
	return exp, nil
}

func (s *Store) writeEntry(name string, exp *Export, overwrite bool) error {
	dir := filepath.Join(s.Directory, name)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}
	if err := writeFileExclusive(s.privatePath(name), exp.PrivateArmor, 0o600, overwrite); err != nil {
		return err
	}
	return writeFileExclusive(s.publicPath(name), exp.PublicArmor, 0o644, overwrite)
}

func writeFileExclusive(path string, data []byte, perm os.FileMode, overwrite bool) error {
	flags := os.O_WRONLY | os.O_CREATE
	if overwrite {
		flags |= os.O_TRUNC
	} else {
		flags |= os.O_EXCL
	}
	file, err := os.OpenFile(path, flags, perm)
	if err != nil {
		return err
	}
	if _, err := file.Write(data); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// Load reads the named keypair back into memory.
func (s *Store) Load(name string) (*KeyPair, error) {
	if err := CheckName(name); err != nil {
		return nil, err
	}
	privArmor, err := os.ReadFile(s.privatePath(name))
	if err != nil {
		return nil, err
	}
	priv, err := LoadPrivate(privArmor)
	if err != nil {
		return nil, fmt.Errorf("key %q: %w", name, err)
	}
	return FromSeed(priv.Seed())
}

// Export returns the persistable representations of the named keypair.
func (s *Store) Export(name string) (*Export, error) {
	kp, err := s.Load(name)
	if err != nil {
		return nil, err
	}
	return kp.Export()
}

// List enumerates stored entries sorted by name. Entries whose public key
// cannot be read are skipped.
func (s *Store) List() ([]Entry, error) {
	dirEntries, err := os.ReadDir(s.Directory)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var names []string
	for _, de := range dirEntries {
		if de.IsDir() {
			names = append(names, de.Name())
		}
	}
	sort.Strings(names)

	var result []Entry
	for _, name := range names {
		pubArmor, rerr := os.ReadFile(s.publicPath(name))
		if rerr != nil {
			continue
		}
		pub, perr := LoadPublic(pubArmor)
		if perr != nil {
			continue
		}
		compact, cerr := CompactID(pub)
		if cerr != nil {
			continue
		}
		result = append(result, Entry{
			Name:        strings.TrimSpace(name),
			Compact:     compact,
			Fingerprint: Fingerprint(pub),
		})
	}
	return result, nil
}
