package vocab

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"sync"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Course distinguishes parallel textbooks for the same class.
type Course string

const (
	CourseNone   Course = ""
	CourseE      Course = "e"
	CourseG      Course = "g"
	CourseFrench Course = "französisch"
)

func parseCourse(token string) Course {
	switch strings.ToLower(token) {
	case "e":
		return CourseE
	case "g":
		return CourseG
	case "französisch", "franzoesisch":
		return CourseFrench
	}
	return CourseNone
}

// Entry is one cleaned vocabulary pair. En may hold multiple accepted
// variants separated by "/".
type Entry struct {
	Classe int    `json:"classe"`
	Page   int    `json:"page"`
	De     string `json:"de"`
	En     string `json:"en"`
}

// FileDescriptor identifies a page-specific CSV file. Classe, Page and
// Course are derived from the path, never from file content.
type FileDescriptor struct {
	Classe int
	Page   int
	Course Course
	Path   string
	Label  string
}

// ErrNoData is reported when the vocabulary root contains no CSV files at
// all. Callers surface it as an informational message, not a crash.
var ErrNoData = errors.New("no vocabulary CSV files found")

// pageFile matches klasse<N>[_<course>]_page<M>.csv base names.
var pageFile = regexp.MustCompile(`(?i)^klasse(\d+)(?:_(e|g|französisch|franzoesisch))?_page(\d+)\.csv$`)

// Loader discovers and parses vocabulary CSVs under a root directory.
// Discovery and per-file parse results are cached until ClearCache.
type Loader struct {
	root string

	mu         sync.Mutex
	discovered bool
	files      []FileDescriptor
	totalCSVs  int
	rows       map[string][]Entry
	warnings   map[string]string
}

func NewLoader(root string) *Loader {
	return &Loader{
		root:     root,
		rows:     make(map[string][]Entry),
		warnings: make(map[string]string),
	}
}

// Discover walks the root for CSV files and classifies page-specific ones by
// their path. Files not following the naming convention are counted but
// excluded from page-exact selection.
func (l *Loader) Discover() ([]FileDescriptor, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.discoverLocked()
}

func (l *Loader) discoverLocked() ([]FileDescriptor, error) {
	if l.discovered {
		if l.totalCSVs == 0 {
			return nil, ErrNoData
		}
		return l.files, nil
	}

	var files []FileDescriptor
	total := 0

	err := filepath.WalkDir(l.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // unreadable subtree contributes nothing
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".csv") {
			return nil
		}
		total++
		if desc, ok := classifyPath(path); ok {
			files = append(files, desc)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(files, func(i, j int) bool {
		a, b := files[i], files[j]
		if a.Classe != b.Classe {
			return a.Classe < b.Classe
		}
		if a.Course != b.Course {
			return a.Course < b.Course
		}
		return a.Page < b.Page
	})

	l.files = files
	l.totalCSVs = total
	l.discovered = true

	if total == 0 {
		return nil, ErrNoData
	}
	return files, nil
}

// classifyPath extracts classe/page/course from a candidate path. The parent
// directory must carry the same klasse<N>[_<course>] name as the file.
func classifyPath(path string) (FileDescriptor, bool) {
	base := filepath.Base(path)
	m := pageFile.FindStringSubmatch(base)
	if m == nil {
		return FileDescriptor{}, false
	}

	classe, err := strconv.Atoi(m[1])
	if err != nil {
		return FileDescriptor{}, false
	}
	page, err := strconv.Atoi(m[3])
	if err != nil {
		return FileDescriptor{}, false
	}
	course := parseCourse(m[2])

	wantDir := fmt.Sprintf("klasse%d", classe)
	if m[2] != "" {
		wantDir += "_" + strings.ToLower(m[2])
	}
	if !strings.EqualFold(filepath.Base(filepath.Dir(path)), wantDir) {
		return FileDescriptor{}, false
	}

	label := fmt.Sprintf("Klasse %d", classe)
	switch course {
	case CourseE:
		label += " (E)"
	case CourseG:
		label += " (G)"
	case CourseFrench:
		label += " (Französisch)"
	}
	label += fmt.Sprintf(" – Seite %d", page)

	return FileDescriptor{
		Classe: classe,
		Page:   page,
		Course: course,
		Path:   path,
		Label:  label,
	}, true
}

// Load parses a single CSV, applying delimiter/encoding fallbacks, header
// synonym mapping and row cleanup. Results are cached per path. An
// unreadable file contributes zero rows and a warning, never an error.
func (l *Loader) Load(path string) []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loadLocked(path)
}

func (l *Loader) loadLocked(path string) []Entry {
	if cached, ok := l.rows[path]; ok {
		return cached
	}

	entries, warning := parseFile(path)
	if warning != "" {
		l.warnings[path] = warning
	}
	l.rows[path] = entries
	return entries
}

// Select returns only rows whose (classe, page) exactly equals the request.
// Classe and page come from the file path, overriding whatever the file
// content declared; this exactness is a hard contract relied on by every
// game. Returns an empty slice when nothing matches.
func (l *Loader) Select(classe int, course Course, page int) []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	files, err := l.discoverLocked()
	if err != nil {
		return nil
	}

	var out []Entry
	seen := make(map[Entry]bool)
	for _, f := range files {
		if f.Classe != classe || f.Course != course || f.Page != page {
			continue
		}
		for _, e := range l.loadLocked(f.Path) {
			// Path-derived values win over in-file ones.
			e.Classe = f.Classe
			e.Page = f.Page
			if seen[e] {
				continue
			}
			seen[e] = true
			out = append(out, e)
		}
	}
	return out
}

// Classes lists the distinct classes available, sorted ascending.
func (l *Loader) Classes() []int {
	l.mu.Lock()
	defer l.mu.Unlock()

	files, err := l.discoverLocked()
	if err != nil {
		return nil
	}
	seen := make(map[int]bool)
	var out []int
	for _, f := range files {
		if !seen[f.Classe] {
			seen[f.Classe] = true
			out = append(out, f.Classe)
		}
	}
	sort.Ints(out)
	return out
}

// Courses lists the courses available for a class. CourseNone is included
// when files without a course suffix exist.
func (l *Loader) Courses(classe int) []Course {
	l.mu.Lock()
	defer l.mu.Unlock()

	files, err := l.discoverLocked()
	if err != nil {
		return nil
	}
	seen := make(map[Course]bool)
	var out []Course
	for _, f := range files {
		if f.Classe == classe && !seen[f.Course] {
			seen[f.Course] = true
			out = append(out, f.Course)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Pages lists the pages available for a class/course, sorted ascending.
func (l *Loader) Pages(classe int, course Course) []int {
	l.mu.Lock()
	defer l.mu.Unlock()

	files, err := l.discoverLocked()
	if err != nil {
		return nil
	}
	seen := make(map[int]bool)
	var out []int
	for _, f := range files {
		if f.Classe == classe && f.Course == course && !seen[f.Page] {
			seen[f.Page] = true
			out = append(out, f.Page)
		}
	}
	sort.Ints(out)
	return out
}

// SourceCounts reports, per source file, how many rows the current selection
// draws from it. Feeds the debug overview only.
func (l *Loader) SourceCounts(classe int, course Course, page int) map[string]int {
	l.mu.Lock()
	defer l.mu.Unlock()

	files, err := l.discoverLocked()
	if err != nil {
		return nil
	}
	out := make(map[string]int)
	for _, f := range files {
		if f.Classe != classe || f.Course != course || f.Page != page {
			continue
		}
		if n := len(l.loadLocked(f.Path)); n > 0 {
			out[f.Path] = n
		}
	}
	return out
}

// Warnings returns one message per file that failed to parse, sorted by path.
func (l *Loader) Warnings() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	paths := make([]string, 0, len(l.warnings))
	for p := range l.warnings {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	out := make([]string, 0, len(paths))
	for _, p := range paths {
		out = append(out, l.warnings[p])
	}
	return out
}

// ClearCache drops all cached discovery and parse results. Round state is
// untouched; it is superseded separately when its input fingerprint changes.
func (l *Loader) ClearCache() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.discovered = false
	l.files = nil
	l.totalCSVs = 0
	l.rows = make(map[string][]Entry)
	l.warnings = make(map[string]string)
}

// parseFile reads one CSV with encoding (UTF-8, then Latin-1) and delimiter
// (sniffed, then the alternative) fallbacks before declaring it unreadable.
func parseFile(path string) ([]Entry, string) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Sprintf("%s: %v", path, err)
	}

	var texts []string
	if utf8.Valid(raw) {
		texts = append(texts, string(raw))
	}
	if decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(raw); err == nil {
		texts = append(texts, string(decoded))
	}

	var lastErr error
	for _, text := range texts {
		for _, delim := range delimiterCandidates(text) {
			records, err := readRecords(text, delim)
			if err != nil {
				lastErr = err
				continue
			}
			if entries, ok := mapRecords(records); ok {
				return entries, ""
			}
		}
	}

	if lastErr != nil {
		return nil, fmt.Sprintf("%s: unreadable under every delimiter/encoding: %v", path, lastErr)
	}
	return nil, fmt.Sprintf("%s: no usable rows", path)
}

// delimiterCandidates sniffs the likelier delimiter from the first line and
// returns both, likelier first.
func delimiterCandidates(text string) []rune {
	first := text
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		first = text[:i]
	}
	if strings.Count(first, ";") > strings.Count(first, ",") {
		return []rune{';', ','}
	}
	return []rune{',', ';'}
}

func readRecords(text string, delim rune) ([][]string, error) {
	r := csv.NewReader(strings.NewReader(text))
	r.Comma = delim
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	return r.ReadAll()
}

// headerIndex maps heterogeneous column headers onto the canonical schema.
// Matching is case-insensitive and synonym-aware; the en column accepts the
// French-medium synonyms too.
func headerIndex(header []string) map[string]int {
	idx := make(map[string]int)
	for i, col := range header {
		switch strings.ToLower(strings.TrimSpace(col)) {
		case "klasse", "class", "classe":
			idx["classe"] = i
		case "page", "seite", "pg":
			idx["page"] = i
		case "de", "deutsch", "german":
			idx["de"] = i
		case "en", "englisch", "english", "fr", "französisch", "franzoesisch", "french":
			idx["en"] = i
		}
	}
	return idx
}

// mapRecords converts raw records to entries. Missing columns are
// synthesized empty rather than failing, so partially-malformed files
// degrade to contributing no usable rows. Returns ok=false when the header
// yields neither a de nor an en column, which signals the delimiter guess
// was wrong.
func mapRecords(records [][]string) ([]Entry, bool) {
	if len(records) == 0 {
		return nil, false
	}

	idx := headerIndex(records[0])
	if _, ok := idx["de"]; !ok {
		if _, ok := idx["en"]; !ok {
			return nil, false
		}
	}

	field := func(rec []string, name string) string {
		i, ok := idx[name]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	entries := make([]Entry, 0, len(records)-1)
	seen := make(map[Entry]bool)
	for _, rec := range records[1:] {
		de := field(rec, "de")
		en := field(rec, "en")
		if de == "" || en == "" {
			continue
		}

		// Invalid numbers leave the sentinel; such rows only survive
		// page-exact selection through the path override.
		e := Entry{Classe: -1, Page: -1, De: de, En: en}
		if n, err := strconv.Atoi(field(rec, "classe")); err == nil {
			e.Classe = n
		}
		if n, err := strconv.Atoi(field(rec, "page")); err == nil {
			e.Page = n
		}

		if seen[e] {
			continue
		}
		seen[e] = true
		entries = append(entries, e)
	}
	return entries, true
}
