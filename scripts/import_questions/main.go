// Converts an .xlsx question bank (question in the first column, answer in
// the second) into the text format the loader reads, in the encoding the
// bots are configured for.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/transform"

	"github.com/Fergoth/chat-bots-4/internal/loader"
	"github.com/Fergoth/chat-bots-4/internal/security"
)

func main() {
	input := flag.String("in", "", "path to the .xlsx file")
	output := flag.String("out", "questions.txt", "path of the generated questions file")
	encName := flag.String("encoding", "koi8-r", "output encoding (koi8-r, windows-1251, utf-8)")
	flag.Parse()

	if *input == "" {
		log.Fatal("-in is required")
	}

	enc, err := loader.EncodingByName(*encName)
	if err != nil {
		log.Fatal(err)
	}

	f, err := excelize.OpenFile(*input)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	out, err := os.Create(*output)
	if err != nil {
		log.Fatal(err)
	}
	defer out.Close()

	var w io.Writer = out
	if enc != nil {
		tw := transform.NewWriter(out, enc.NewEncoder())
		defer tw.Close()
		w = tw
	}

	total := 0
	for _, sheetName := range f.GetSheetList() {
		rows, err := f.GetRows(sheetName)
		if err != nil {
			log.Fatalf("failed to read sheet %s: %v", sheetName, err)
		}

		for i, row := range rows {
			if i == 0 || len(row) < 2 { // Skip header or incomplete rows
				continue
			}

			question := security.SanitizeCell(row[0])
			answer := security.SanitizeCell(row[1])
			if question == "" || answer == "" {
				fmt.Printf("Skipping row %d of sheet %s: empty question or answer\n", i+1, sheetName)
				continue
			}

			total++
			_, err := fmt.Fprintf(w, "Вопрос %d:\n%s\n\nОтвет:\n%s\n\n", total, question, answer)
			if err != nil {
				log.Fatalf("failed to write row %d of sheet %s: %v", i+1, sheetName, err)
			}
		}
	}

	fmt.Printf("Successfully exported %d questions to %s.\n", total, *output)
}
