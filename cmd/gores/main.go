// Command gores generates cutting patterns for the gores of an airship
// envelope shaped by an airfoil profile.
//
// With no arguments it reads gores_config.json from the working directory,
// loads the airfoil file it names and writes the gore drawing.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/soypat/gore"
	"github.com/soypat/gore/airfoil"
	"github.com/soypat/gore/config"
	"github.com/soypat/gore/render"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/spatial/r2"
)

type flags struct {
	config   string
	confgen  bool
	confshow bool
	output   string
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("gores: ")
	if err := newCommand().Execute(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:           "gores",
		Short:         "Generate airship envelope gores from an airfoil profile",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if f.confgen {
				if err := config.WriteDefault(f.config); err != nil {
					return err
				}
				log.Printf("wrote default configuration to %s", f.config)
				return nil
			}
			cfg, err := config.Load(f.config)
			if err != nil {
				return err
			}
			if f.output != "" {
				cfg.OutputFile = f.output
			}
			if f.confshow {
				b, err := json.MarshalIndent(cfg.Settings(), "", "    ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(b))
			}
			return run(cfg)
		},
	}
	cmd.Flags().StringVarP(&f.config, "config", "c", config.DefaultFile, "config file name and path")
	cmd.Flags().BoolVar(&f.confgen, "confgen", false, "write a config file with all options set to their defaults")
	cmd.Flags().BoolVar(&f.confshow, "confshow", false, "print configuration before generating files")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output file name (overrides config file option)")
	return cmd
}

func run(cfg config.Config) error {
	parms, err := cfg.Parms()
	if err != nil {
		return err
	}
	profile, err := airfoil.Open(cfg.AirfoilInput, cfg.Format())
	if err != nil {
		return err
	}
	if cfg.AirfoilName != "" || profile.Name() == "" {
		name := cfg.AirfoilName
		if name == "" {
			name = cfg.AirfoilInput
		}
		profile, err = gore.NewProfile(name, profile.Points())
		if err != nil {
			return err
		}
	}
	if cfg.EnvelopeLength > 0 {
		profile, err = profile.Scale(cfg.EnvelopeLength / profile.Chord())
		if err != nil {
			return err
		}
	}
	env, err := gore.Build(profile, parms)
	if err != nil {
		return err
	}
	log.Printf("%s: %d stations, gore length %.4g, max radius %.4g, volume %.4g, fabric area %.4g",
		profile.Name(), env.Hull.Len(), env.Outline.Length(), env.Hull.MaxRadius(),
		env.Hull.Volume(), env.FabricArea())

	sheet, err := render.NewSheet(env, sheetParms(cfg, profile.Name()))
	if err != nil {
		return err
	}
	pages, err := sheet.CreateSVG(cfg.OutputFile)
	if err != nil {
		return err
	}
	for _, page := range pages {
		log.Printf("wrote %s", page)
	}
	if cfg.DXFOutput != "" {
		if err := render.CreateDXF(cfg.DXFOutput, env.Outline, cfg.OutputScale); err != nil {
			return err
		}
		log.Printf("wrote %s", cfg.DXFOutput)
	}
	if cfg.STLOutput != "" {
		if err := render.CreateSTL(cfg.STLOutput, render.NewHullRenderer(env.Hull, parms.Gore.Gores)); err != nil {
			return err
		}
		log.Printf("wrote %s", cfg.STLOutput)
	}
	if cfg.PlotOutput != "" {
		if err := render.CreatePlot(cfg.PlotOutput, env); err != nil {
			return err
		}
		log.Printf("wrote %s", cfg.PlotOutput)
	}
	if cfg.ShadeOutput != "" {
		if err := render.CreateShadedPNG(cfg.ShadeOutput, render.NewHullRenderer(env.Hull, parms.Gore.Gores), 1920, 1080); err != nil {
			return err
		}
		log.Printf("wrote %s", cfg.ShadeOutput)
	}
	return nil
}

func sheetParms(cfg config.Config, name string) render.SheetParms {
	// Validated by config.Load.
	w, h, _ := config.ParsePageSize(cfg.PageSize)
	return render.SheetParms{
		Width:             w,
		Height:            h,
		Units:             cfg.Units,
		Scale:             cfg.OutputScale,
		Margin:            cfg.PageMargin,
		Clearance:         cfg.CuttingClearance,
		GoresDrawn:        cfg.GoresDrawn,
		BaseAirfoil:       cfg.DrawBaseAirfoil,
		Name:              name,
		DrawName:          cfg.DrawAirfoilName,
		FontSize:          cfg.NameFontSize,
		Centerlines:       cfg.DrawCenterline,
		LengthLines:       cfg.DrawLengthLines,
		LengthPitch:       cfg.LengthLinesPitch,
		StationLabels:     cfg.DrawStationLabels,
		Margins:           cfg.DrawMargins,
		TextBox:           cfg.DrawTextBox,
		TextBoxSize:       r2.Vec{X: cfg.TextBoxWidth, Y: cfg.TextBoxHeight},
		Info:              cfg.DrawingInfo,
		ConstructionWidth: cfg.ConstructionLineWidth,
		SolidWidth:        cfg.SolidLineWidth,
		Color:             cfg.LineColor,
	}
}
