package loader

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

const wellFormed = `Чемпионат:
Тестовый турнир

Вопрос 1:
Столица Франции?

Ответ:
Париж

Автор:
Составитель

Вопрос 2:
Сколько будет дважды два?

Ответ:
Четыре (умножаем честно)
`

func TestParse_WellFormed(t *testing.T) {
	pairs, err := Parse(wellFormed)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if len(pairs) != 2 {
		t.Fatalf("Parse() returned %d pairs, want 2", len(pairs))
	}

	if pairs[0].Question != "Столица Франции?" || pairs[0].Answer != "Париж" {
		t.Errorf("first pair = %+v", pairs[0])
	}
	if pairs[1].Question != "Сколько будет дважды два?" || pairs[1].Answer != "Четыре (умножаем честно)" {
		t.Errorf("second pair = %+v", pairs[1])
	}

	for _, p := range pairs {
		if p.Answer == "" {
			t.Errorf("question %q mapped to empty answer", p.Question)
		}
	}
}

func TestParse_MultilineQuestion(t *testing.T) {
	text := "Вопрос 1:\nПервая строка\nвторая строка\n\nОтвет:\nОтвет\n"
	pairs, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(pairs) != 1 {
		t.Fatalf("Parse() returned %d pairs, want 1", len(pairs))
	}
	if pairs[0].Question != "Первая строка\nвторая строка" {
		t.Errorf("question = %q", pairs[0].Question)
	}
}

func TestParse_StripsHTML(t *testing.T) {
	text := "Вопрос 1:\n<b>Вопрос</b>\n\nОтвет:\n<i>Ответ</i>\n"
	pairs, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if pairs[0].Question != "Вопрос" || pairs[0].Answer != "Ответ" {
		t.Errorf("pair = %+v, want tags stripped", pairs[0])
	}
}

func TestParse_Malformed(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "Question without answer at EOF", text: "Вопрос 1:\nТекст вопроса\n"},
		{name: "Two questions in a row", text: "Вопрос 1:\nПервый\n\nВопрос 2:\nВторой\n\nОтвет:\nОтвет\n"},
		{name: "Answer without question", text: "Ответ:\nОтвет ниоткуда\n"},
		{name: "Question tag without body", text: "Вопрос 1:\n\nОтвет:\nОтвет\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(tt.text); err == nil {
				t.Error("Parse() expected error, got nil")
			}
		})
	}
}

func TestEncodingByName(t *testing.T) {
	if enc, err := EncodingByName("utf-8"); err != nil || enc != nil {
		t.Errorf("EncodingByName(utf-8) = %v, %v, want nil, nil", enc, err)
	}
	if enc, err := EncodingByName("koi8-r"); err != nil || enc != charmap.KOI8R {
		t.Errorf("EncodingByName(koi8-r) = %v, %v, want KOI8R, nil", enc, err)
	}
	if _, err := EncodingByName("ebcdic"); err == nil {
		t.Error("EncodingByName(ebcdic) expected error, got nil")
	}
}

func TestLoadDir_KOI8R(t *testing.T) {
	dir := t.TempDir()

	encoded, _, err := transform.String(charmap.KOI8R.NewEncoder(), wellFormed)
	if err != nil {
		t.Fatalf("failed to encode fixture: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "tour1.txt"), []byte(encoded), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	pairs, err := LoadDir(dir, charmap.KOI8R)
	if err != nil {
		t.Fatalf("LoadDir() error = %v", err)
	}
	if len(pairs) != 2 {
		t.Fatalf("LoadDir() returned %d pairs, want 2", len(pairs))
	}
	if pairs[0].Answer != "Париж" {
		t.Errorf("first answer = %q, want %q", pairs[0].Answer, "Париж")
	}
}

func TestLoadDir_Missing(t *testing.T) {
	if _, err := LoadDir(filepath.Join(t.TempDir(), "nope"), nil); err == nil {
		t.Error("LoadDir() on missing dir expected error, got nil")
	}
}
