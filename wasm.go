//go:build js && wasm

package main

import (
	"bytes"
	"fmt"
	"syscall/js"

	"github.com/cottand/tinfer/frontend/ilerr"
	"github.com/cottand/tinfer/frontend/infer"
	"github.com/cottand/tinfer/tinfer"
	"github.com/pkg/errors"
)

func main() {
	js.Global().Set("InferAndShowTypes", js.FuncOf(inferAndShowTypes))

	// wait indefinitely so that Go does not terminate execution
	// and the function remains available
	<-make(chan struct{})
}

// inferAndShowTypes interprets a script building an expression and returns
// its text report, or the reason it does not type
func inferAndShowTypes(_ js.Value, args []js.Value) (ret any) {
	defer func() {
		if r := recover(); r != nil {
			ret = "inference panicked: " + fmt.Sprint(r)
		}
	}()
	if len(args) < 1 {
		return "expected a script to run"
	}

	out := &bytes.Buffer{}
	program, err := tinfer.LoadScript("playground.go", args[0].String(), out)
	if err != nil {
		return fmt.Sprintf("the script could not be loaded:\n\n%s", err)
	}
	report, err := tinfer.Run(program, tinfer.RunSettings{Keying: infer.KeyByNode})
	if err != nil {
		var ileErr ilerr.IleError
		if errors.As(err, &ileErr) {
			return "the program does not type:\n" + ilerr.FormatWithCode(ileErr)
		}
		return fmt.Sprintf("inference failed:\n%s", err)
	}
	if err := report.Write(out, tinfer.FormatText); err != nil {
		return fmt.Sprintf("could not render the report:\n%s", err)
	}
	return out.String()
}
