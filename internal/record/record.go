// Package record reads the input record of a cipher run from disk.
//
// Structured files (.yml, .yaml, .json, .toml, .env) are decoded with
// cleanenv, so VIC_* environment variables may override any field. Every
// other file is read in the line format: agent ID, date, phrase, anagram and
// message on five consecutive lines.
package record

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"
	"vic/pkg/domain"
	"vic/pkg/serrors"

	"github.com/go-faster/errors"
	"github.com/ilyakaznacheev/cleanenv"
)

// lineFields names the line-format fields in file order.
var lineFields = []string{"agent ID", "date", "phrase", "anagram", "message"} //nolint: gochecknoglobals

// anagramLine is the index of the line whose surrounding spaces are significant.
const anagramLine = 3

// Read loads the record stored at path.
func Read(path string) (*domain.Record, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml", ".json", ".toml", ".env":
		var rec domain.Record
		if err := cleanenv.ReadConfig(path, &rec); err != nil {
			return nil, serrors.Wrap(serrors.ErrInvalidRecord, err, "could not read record %s", path)
		}

		return &rec, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrInvalidRecord, errors.Wrap(err, "open"), "could not read record %s", path)
	}
	defer func() { _ = f.Close() }()

	rec, err := Parse(f)
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}

	return rec, nil
}

// Parse reads a line-format record. Lines are trimmed of surrounding
// whitespace except the anagram line, which only loses its line terminator.
func Parse(r io.Reader) (*domain.Record, error) {
	scanner := bufio.NewScanner(r)
	lines := make([]string, 0, len(lineFields))
	for len(lines) < len(lineFields) && scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if len(lines) != anagramLine {
			line = strings.TrimSpace(line)
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, serrors.Wrap(serrors.ErrInvalidRecord, errors.Wrap(err, "scan"), "could not read record")
	}
	if len(lines) < len(lineFields) {
		return nil, serrors.With(serrors.ErrInvalidRecord,
			"record has %d lines, missing %s", len(lines), lineFields[len(lines)])
	}

	return &domain.Record{
		AgentID: lines[0],
		Date:    lines[1],
		Phrase:  lines[2],
		Anagram: lines[3],
		Message: lines[4],
	}, nil
}
