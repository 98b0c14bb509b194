package organizer

import (
	"path/filepath"
	"strconv"
	"strings"
)

// Dedupe returns the first free file name for base in dir: "base.ext" when
// it does not exist, else "base-1.ext", "base-2.ext", and so on. exists is
// called with the full candidate path.
func Dedupe(dir, base, ext string, exists func(path string) bool) string {
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	name := base + ext
	for i := 1; exists(filepath.Join(dir, name)); i++ {
		name = base + "-" + strconv.Itoa(i) + ext
	}
	return name
}

// Reservations tracks the target paths handed out during one run so that
// planning without copying yields the same names a real run would. It is not
// safe for concurrent use.
type Reservations struct {
	paths map[string]struct{}
}

// NewReservations returns an empty set.
func NewReservations() *Reservations {
	return &Reservations{paths: make(map[string]struct{})}
}

// Reserve records path as taken.
func (r *Reservations) Reserve(path string) {
	r.paths[filepath.Clean(path)] = struct{}{}
}

// Reserved reports whether path was handed out in this run.
func (r *Reservations) Reserved(path string) bool {
	_, ok := r.paths[filepath.Clean(path)]
	return ok
}

// Len returns the number of reserved paths.
func (r *Reservations) Len() int { return len(r.paths) }

// Probe combines the reservations with an existence check for Dedupe.
func (r *Reservations) Probe(exists func(path string) bool) func(path string) bool {
	return func(path string) bool {
		return r.Reserved(path) || exists(path)
	}
}
