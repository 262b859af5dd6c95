//go:build js && wasm
// +build js,wasm

package main

import (
	"encoding/json"
	"fmt"
	"syscall/js"

	"github.com/MeKo-Tech/hslconv/internal/colorspace"
)

// ConvertRequest is an HSL color sent from JS.
type ConvertRequest struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

// hslToRGB is called from JavaScript with a JSON encoded ConvertRequest.
func hslToRGB(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return map[string]interface{}{"error": "missing arguments"}
	}

	var req ConvertRequest
	if err := json.Unmarshal([]byte(args[0].String()), &req); err != nil {
		return map[string]interface{}{"error": fmt.Sprintf("failed to parse request: %v", err)}
	}

	rgb := colorspace.NewHSL(req.H, req.S, req.L).ToRGB()
	n := rgb.SRGB()
	return map[string]interface{}{
		"r":    int(rgb.R),
		"g":    int(rgb.G),
		"b":    int(rgb.B),
		"hex":  rgb.Hex(),
		"srgb": []interface{}{n[0], n[1], n[2]},
	}
}

func main() {
	c := make(chan struct{})

	js.Global().Set("hslconvToRGB", js.FuncOf(hslToRGB))

	fmt.Println("hslconv WASM module loaded")
	<-c
}
