// Package loader reads question bank files: plain text split into sections
// by blank lines, where a section starting with "Вопрос" carries the next
// question and a section starting with "Ответ" carries its answer.
package loader

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/Fergoth/chat-bots-4/internal/quiz"
	"github.com/Fergoth/chat-bots-4/internal/security"
	"github.com/Fergoth/chat-bots-4/pkg/errors"
)

const (
	questionPrefix = "Вопрос"
	answerPrefix   = "Ответ"
)

// EncodingByName resolves a config value to a text encoding. The classic
// quiz files are KOI8-R; utf-8 needs no transform and maps to nil.
func EncodingByName(name string) (encoding.Encoding, error) {
	switch strings.ToLower(name) {
	case "", "utf-8", "utf8":
		return nil, nil
	case "koi8-r", "koi8r":
		return charmap.KOI8R, nil
	case "windows-1251", "cp1251":
		return charmap.Windows1251, nil
	default:
		return nil, errors.New(errors.ErrCodeValidation, fmt.Sprintf("unsupported questions encoding %q", name))
	}
}

// LoadDir parses every regular file in dir and returns the concatenated
// question/answer pairs. enc may be nil for UTF-8 input.
func LoadDir(dir string, enc encoding.Encoding) ([]quiz.Pair, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeLoadError, "failed to read questions directory")
	}

	var pairs []quiz.Pair
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		filePairs, err := LoadFile(path, enc)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, filePairs...)
	}

	return pairs, nil
}

// LoadFile parses a single question file.
func LoadFile(path string, enc encoding.Encoding) ([]quiz.Pair, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeLoadError, "failed to open questions file")
	}
	defer f.Close()

	var r io.Reader = f
	if enc != nil {
		r = transform.NewReader(f, enc.NewDecoder())
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeLoadError, fmt.Sprintf("failed to read %s", path))
	}

	pairs, err := Parse(string(data))
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeLoadError, fmt.Sprintf("malformed questions file %s", path))
	}
	return pairs, nil
}

// Parse splits the file text on blank lines and pairs up question and
// answer sections in order. Sections with other prefixes (sources, authors,
// comments) are skipped. A question must be followed by an answer before
// the next question or the end of file.
func Parse(text string) ([]quiz.Pair, error) {
	var pairs []quiz.Pair
	var question string

	for _, section := range strings.Split(text, "\n\n") {
		section = strings.TrimSpace(section)
		switch {
		case strings.HasPrefix(section, questionPrefix):
			if question != "" {
				return nil, fmt.Errorf("question %q has no answer", question)
			}
			body, err := sectionBody(section)
			if err != nil {
				return nil, err
			}
			question = body
		case strings.HasPrefix(section, answerPrefix):
			if question == "" {
				body, _ := sectionBody(section)
				return nil, fmt.Errorf("answer %q has no question", body)
			}
			body, err := sectionBody(section)
			if err != nil {
				return nil, err
			}
			pairs = append(pairs, quiz.Pair{
				Question: security.StripHTML(question),
				Answer:   security.StripHTML(body),
			})
			question = ""
		}
	}

	if question != "" {
		return nil, fmt.Errorf("question %q has no answer", question)
	}

	return pairs, nil
}

// sectionBody drops the tag line ("Вопрос 1:", "Ответ:") and returns the
// text below it.
func sectionBody(section string) (string, error) {
	_, body, ok := strings.Cut(section, "\n")
	if !ok {
		return "", fmt.Errorf("section %q has no body", section)
	}
	return body, nil
}
