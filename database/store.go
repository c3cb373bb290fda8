package database

import (
	"bufio"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Data file names, one positional text file per record type.
const (
	UsersFile        = "users_data.txt"
	ItemsFile        = "items_data.txt"
	SuppliersFile    = "suppliers_data.txt"
	RequisitionsFile = "purchase_requisition_data.txt"
	OrdersFile       = "purchase_order_data.txt"
	PaymentsFile     = "payments_data.txt"
	SalesFile        = "sales_data.txt"
	HistoryFile      = "history_data.txt"
)

// Store owns the data directory. Reads are soft: a missing file reads as
// empty and IO errors are logged instead of returned, so one corrupt file
// never takes the whole service down. Writes report their errors. Each
// file carries its own mutex, so handlers running on different files do
// not serialise against each other.
type Store struct {
	dir   string
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewStore(dir string) *Store {
	return &Store{dir: dir, locks: make(map[string]*sync.Mutex)}
}

func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) Path(name string) string {
	return filepath.Join(s.dir, name)
}

func (s *Store) fileLock(name string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[name]
	if !ok {
		l = &sync.Mutex{}
		s.locks[name] = l
	}
	return l
}

// ReadLines returns every non blank line of the file.
func (s *Store) ReadLines(name string) []string {
	l := s.fileLock(name)
	l.Lock()
	defer l.Unlock()
	return s.readLines(name)
}

func (s *Store) readLines(name string) []string {
	f, err := os.Open(s.Path(name))
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("store: read %s: %v", name, err)
		}
		return nil
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		log.Printf("store: read %s: %v", name, err)
	}
	return lines
}

// AppendLine adds one line to the end of the file, creating it on first use.
func (s *Store) AppendLine(name, line string) error {
	l := s.fileLock(name)
	l.Lock()
	defer l.Unlock()

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(s.Path(name), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = f.WriteString(line + "\n")
	return err
}

// WriteLines replaces the whole file with the given lines.
func (s *Store) WriteLines(name string, lines []string) error {
	l := s.fileLock(name)
	l.Lock()
	defer l.Unlock()
	return s.writeLines(name, lines)
}

func (s *Store) writeLines(name string, lines []string) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	var sb strings.Builder
	for _, line := range lines {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return os.WriteFile(s.Path(name), []byte(sb.String()), 0o644)
}

// Update runs a read-modify-write on the file under its lock. The apply
// function returns the new content and whether anything changed; when
// nothing changed the file is left untouched.
func (s *Store) Update(name string, apply func(lines []string) ([]string, bool)) (bool, error) {
	l := s.fileLock(name)
	l.Lock()
	defer l.Unlock()

	lines := s.readLines(name)
	next, changed := apply(lines)
	if !changed {
		return false, nil
	}
	if err := s.writeLines(name, next); err != nil {
		return false, err
	}
	return true, nil
}
