package console

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/rs/zerolog/log"
	"github.com/sergi/go-diff/diffmatchpatch"
	"gitlab.com/kennelworks/dogdex/internal/types"
	"gitlab.com/kennelworks/dogdex/internal/util"
)

// PrintDogs prints a table with one row per dog
func PrintDogs(dogs []types.Dog) {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Name", "Breed", "Age"})

	for _, dog := range dogs {
		breed := dog.Breed
		if breed == "" {
			breed = "-"
		}
		t.AppendRow(table.Row{dog.Name, breed, dog.Age})
	}

	t.AppendFooter(table.Row{
		text.Bold.Sprint("TOTAL"),
		"",
		fmt.Sprintf("%d", len(dogs)),
	})
	t.Render()
}

// PrintLoadError prints the error kind and its chained message
func PrintLoadError(status types.LoadStatus, err error) {
	fmt.Println(text.FgRed.Sprintf("⚠ %s:", status))
	fmt.Println(util.PrefixLines(err.Error(), text.FgRed.Sprint("|")+" "))
	fmt.Println()
}

// PrintCheck prints the difference between the file content and its
// canonical re-encoding, or a note when there is none.
func PrintCheck(original, canonical string, noColor bool) {
	if original == canonical {
		fmt.Println(text.FgGreen.Sprint("✅ file matches its canonical form"))
		return
	}

	var message string
	if noColor {
		var err error
		message, err = util.ComputeDiff(original, canonical)
		if err != nil {
			log.Panic().Err(err).Msg("failed to compute diff")
		}
	} else {
		dmp := diffmatchpatch.New()
		diffs := dmp.DiffMain(original, canonical, true)
		message = dmp.DiffPrettyText(diffs)
	}

	fmt.Println(text.FgYellow.Sprint("File differs from its canonical form:"))
	fmt.Print(message)
}
