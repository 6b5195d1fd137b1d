package console

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strings"
	"sync"
	"testing"

	apperrors "gitlab.com/kennelworks/dogdex/internal/errors"
	"gitlab.com/kennelworks/dogdex/internal/types"
)

// captureOutput captures stdout and stderr during the execution of a function
func captureOutput(f func()) (string, string) {
	// save original stdout and stderr
	originalStdout := os.Stdout
	originalStderr := os.Stderr

	rOut, wOut, _ := os.Pipe()
	rErr, wErr, _ := os.Pipe()

	os.Stdout = wOut
	os.Stderr = wErr

	defer func() {
		// restore stdout & stderr
		os.Stdout = originalStdout
		os.Stderr = originalStderr
	}()

	outC := make(chan string)
	errC := make(chan string)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		var buf bytes.Buffer
		wg.Done()
		_, _ = io.Copy(&buf, rOut)
		outC <- buf.String()
	}()

	wg.Add(1)
	go func() {
		var buf bytes.Buffer
		wg.Done()
		_, _ = io.Copy(&buf, rErr)
		errC <- buf.String()
	}()

	f()

	wOut.Close()
	wErr.Close()
	wg.Wait()

	stdout := <-outC
	stderr := <-errC

	return stdout, stderr
}

func TestPrintDogs(t *testing.T) {
	dogs := []types.Dog{
		{Name: "Rex", Age: 3},
		{Name: "Bella", Breed: "Beagle", Age: 5},
	}

	stdout, _ := captureOutput(func() {
		PrintDogs(dogs)
	})

	for _, want := range []string{"Rex", "Bella", "Beagle", "TOTAL", "2"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("PrintDogs() output missing %q:\n%s", want, stdout)
		}
	}
}

func TestPrintLoadError(t *testing.T) {
	err := &apperrors.FileReadError{Path: "missing.json", Err: errors.New("no such file or directory")}

	stdout, _ := captureOutput(func() {
		PrintLoadError(types.StatusAccessError, err)
	})

	if !strings.Contains(stdout, "ACCESS ERROR") {
		t.Errorf("PrintLoadError() output missing error kind:\n%s", stdout)
	}
	if !strings.Contains(stdout, "missing.json") {
		t.Errorf("PrintLoadError() output missing path:\n%s", stdout)
	}
}

func TestPrintCheck_NoDifferences(t *testing.T) {
	content := "[\n  {\n    \"name\": \"Rex\"\n  }\n]\n"

	stdout, _ := captureOutput(func() {
		PrintCheck(content, content, true)
	})

	if !strings.Contains(stdout, "matches its canonical form") {
		t.Errorf("PrintCheck() output missing match note:\n%s", stdout)
	}
}

func TestPrintCheck_UnifiedDiff(t *testing.T) {
	original := "[{\"name\":\"Rex\"}]\n"
	canonical := "[\n  {\n    \"name\": \"Rex\"\n  }\n]\n"

	stdout, _ := captureOutput(func() {
		PrintCheck(original, canonical, true)
	})

	if !strings.Contains(stdout, "differs from its canonical form") {
		t.Errorf("PrintCheck() output missing header:\n%s", stdout)
	}
	if !strings.Contains(stdout, "--- file") || !strings.Contains(stdout, "+++ canonical") {
		t.Errorf("PrintCheck() output missing unified diff markers:\n%s", stdout)
	}
}
