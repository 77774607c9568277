package tabular

import (
	"bufio"
	"encoding/csv"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/bytedance/sonic"
	"github.com/gabriel-vasile/mimetype"
	"github.com/klauspost/compress/gzip"
	"github.com/saintfish/chardet"
	"golang.org/x/net/html/charset"
)

// jsonAPI keeps integer literals distinct from floats.
var jsonAPI = sonic.Config{UseNumber: true}.Froze()

var gzipMagic = []byte{0x1f, 0x8b}

// sniffSize bounds how much input is inspected for charset detection.
const sniffSize = 4096

func checkExists(path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &NotFoundError{Path: path}
		}
		return valueError("load", "Error reading file %s: %v", path, err)
	}
	return nil
}

// LoadCSV reads a CSV file with a header row. Gzip-compressed input is
// detected from its magic bytes.
func LoadCSV(path string) (*Frame, error) {
	if err := checkExists(path); err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, valueError("load_csv", "Failed to parse CSV file %s: %v", path, err)
	}
	defer file.Close()

	frame, err := readCSV(file)
	if err != nil {
		return nil, valueError("load_csv", "Failed to parse CSV file %s: %v", path, err)
	}
	return frame, nil
}

func readCSV(r io.Reader) (*Frame, error) {
	br := bufio.NewReader(r)
	if magic, err := br.Peek(len(gzipMagic)); err == nil && string(magic) == string(gzipMagic) {
		gz, err := gzip.NewReader(br)
		if err != nil {
			return nil, err
		}
		defer gz.Close()
		return parseCSV(utf8Reader(bufio.NewReader(gz)))
	}
	return parseCSV(utf8Reader(br))
}

// utf8Reader transcodes input that is not UTF-8 using the charset chardet
// reports, falling back to windows-1252.
func utf8Reader(br *bufio.Reader) io.Reader {
	sample, _ := br.Peek(sniffSize)
	if validUTF8Prefix(sample, len(sample) == sniffSize) {
		return br
	}

	enc, _ := charset.Lookup("windows-1252")
	if result, err := chardet.NewTextDetector().DetectBest(sample); err == nil && result != nil {
		if detected, _ := charset.Lookup(strings.ToLower(result.Charset)); detected != nil {
			enc = detected
		}
	}
	return enc.NewDecoder().Reader(br)
}

// validUTF8Prefix ignores a rune cut off at the end of a truncated sample.
func validUTF8Prefix(sample []byte, truncated bool) bool {
	if utf8.Valid(sample) {
		return true
	}
	if !truncated {
		return false
	}
	for cut := 1; cut < utf8.UTFMax && cut <= len(sample); cut++ {
		if utf8.Valid(sample[:len(sample)-cut]) {
			return true
		}
	}
	return false
}

func parseCSV(r io.Reader) (*Frame, error) {
	reader := csv.NewReader(r)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, errors.New("No columns to parse from file")
	}

	header := records[0]
	seen := make(map[string]bool, len(header))
	for _, name := range header {
		if seen[name] {
			return nil, errors.New("duplicate column " + name)
		}
		seen[name] = true
	}

	body := records[1:]
	frame := Empty()
	for i, name := range header {
		raw := make([]string, len(body))
		for r, rec := range body {
			raw[r] = rec[i]
		}
		frame.add(inferStrings(name, raw))
	}
	frame.rows = len(body)
	return frame, nil
}

// LoadJSON reads and decodes a JSON file. Integer literals decode as
// int64 once converted by FromJSON.
func LoadJSON(path string) (interface{}, error) {
	if err := checkExists(path); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, valueError("load_json", "Error reading file %s: %v", path, err)
	}

	var parsed interface{}
	if err := jsonAPI.Unmarshal(data, &parsed); err != nil {
		return nil, valueError("load_json", "Failed to parse JSON file %s: %v", path, err)
	}
	return parsed, nil
}

// Load reads a CSV or JSON file into a frame, choosing the parser from
// the detected content type and falling back to the extension.
func Load(path string) (*Frame, error) {
	if err := checkExists(path); err != nil {
		return nil, err
	}

	if isJSON(path) {
		data, err := LoadJSON(path)
		if err != nil {
			return nil, err
		}
		return FromJSON(data)
	}
	return LoadCSV(path)
}

func isJSON(path string) bool {
	mtype, err := mimetype.DetectFile(path)
	if err == nil {
		switch {
		case mtype.Is("application/json"):
			return true
		case mtype.Is("application/gzip"), mtype.Is("text/csv"):
			return false
		}
	}
	return strings.EqualFold(filepath.Ext(path), ".json")
}
