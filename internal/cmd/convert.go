package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/MeKo-Tech/hslconv/internal/colorspace"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert an HSL color to RGB",
	Long: `Convert a single HSL color to RGB and print the result.

Without flags the color hsl(120, 1, 0.5) is converted, which yields pure green.`,
	RunE: runConvert,
}

// Output formats accepted by --format.
const (
	formatText = "text"
	formatHex  = "hex"
	formatSRGB = "srgb"
	formatJSON = "json"
)

var outputFormats = []string{formatText, formatHex, formatSRGB, formatJSON}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().Float64("hue", 120, "Hue in degrees [0, 360]")
	convertCmd.Flags().Float64("saturation", 1, "Saturation [0, 1]")
	convertCmd.Flags().Float64("lightness", 0.5, "Lightness [0, 1]")
	convertCmd.Flags().StringP("format", "f", formatText, "Output format: "+strings.Join(outputFormats, ", "))

	bindFlags := []struct {
		key  string
		flag string
	}{
		{"convert.hue", "hue"},
		{"convert.saturation", "saturation"},
		{"convert.lightness", "lightness"},
		{"convert.format", "format"},
	}

	for _, bf := range bindFlags {
		if err := viper.BindPFlag(bf.key, convertCmd.Flags().Lookup(bf.flag)); err != nil {
			panic(fmt.Sprintf("failed to bind flag %s: %v", bf.flag, err))
		}
	}
}

func runConvert(cmd *cobra.Command, args []string) error {
	hue := viper.GetFloat64("convert.hue")
	saturation := viper.GetFloat64("convert.saturation")
	lightness := viper.GetFloat64("convert.lightness")
	format := viper.GetString("convert.format")

	if logger == nil {
		initLogging()
	}

	if !validFormat(format) {
		return fmt.Errorf("invalid format %q: must be one of %s", format, strings.Join(outputFormats, ", "))
	}

	hsl := colorspace.NewHSL(hue, saturation, lightness)
	rgb := hsl.ToRGB()

	logger.Debug("Converted color", "hsl", hsl.String(), "rgb", rgb.String(), "format", format)

	if err := writeRGB(cmd.OutOrStdout(), hsl, rgb, format); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	return nil
}

func validFormat(format string) bool {
	for _, f := range outputFormats {
		if f == format {
			return true
		}
	}
	return false
}

// convertResult is the JSON document written by --format=json.
type convertResult struct {
	Hue        float64    `json:"hue"`
	Saturation float64    `json:"saturation"`
	Lightness  float64    `json:"lightness"`
	R          uint8      `json:"r"`
	G          uint8      `json:"g"`
	B          uint8      `json:"b"`
	Hex        string     `json:"hex"`
	SRGB       [3]float64 `json:"srgb"`
}

func writeRGB(w io.Writer, hsl colorspace.HSL, rgb colorspace.RGB, format string) error {
	switch format {
	case formatHex:
		_, err := fmt.Fprintln(w, rgb.Hex())
		return err
	case formatSRGB:
		n := rgb.SRGB()
		_, err := fmt.Fprintf(w, "%.6f %.6f %.6f\n", n[0], n[1], n[2])
		return err
	case formatJSON:
		return json.NewEncoder(w).Encode(convertResult{
			Hue:        hsl.H,
			Saturation: hsl.S,
			Lightness:  hsl.L,
			R:          rgb.R,
			G:          rgb.G,
			B:          rgb.B,
			Hex:        rgb.Hex(),
			SRGB:       rgb.SRGB(),
		})
	default:
		_, err := fmt.Fprintln(w, rgb.String())
		return err
	}
}
